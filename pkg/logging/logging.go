package logging

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

type Options struct {
	// Debug lowers the level to debug and adds the caller of every event
	Debug bool
	// JSON writes raw zerolog JSON lines instead of the console format
	JSON bool
	// Color enables escape sequences in the console format
	Color bool
}

// NewContext attaches a logger writing to w to ctx. Packages log through
// zerolog.Ctx(ctx) and never build loggers themselves.
func NewContext(ctx context.Context, w io.Writer, opts Options) context.Context {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !opts.Color,
			TimeFormat: "15:04:05.000",
			PartsOrder: []string{
				zerolog.TimestampFieldName,
				zerolog.LevelFieldName,
				"caller",
				zerolog.MessageFieldName,
			},
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).Level(level).Hook(CustomTimeHook{})
	if opts.Debug {
		logger = logger.Hook(CustomCallerHook{WithColor: opts.Color && !opts.JSON})
	}

	return logger.WithContext(ctx)
}

type CustomTimeHook struct {
	Format string
}

func (t CustomTimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if t.Format == "" {
		// millisecond precision with no timezone
		e.Str(zerolog.TimestampFieldName, time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	} else {
		e.Str(zerolog.TimestampFieldName, time.Now().Format(t.Format))
	}
}

type CustomCallerHook struct {
	WithColor bool
}

// callerDepth skips Run, Event.msg and Event.Msg (or Msgf).
const callerDepth = 3

func (c CustomCallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return
	}

	pkg := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		pkg, _ = GetPackageAndFuncFromFuncName(fn.Name())
	}

	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

func GetPackageAndFuncFromFuncName(name string) (pkg, function string) {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}

	firstDot := strings.IndexByte(name[lastSlash:], '.')
	if firstDot < 0 {
		return name, ""
	}
	firstDot += lastSlash

	pkg = name[:firstDot]
	function = name[firstDot+1:]

	if strings.Contains(pkg, ".(") {
		splt := strings.SplitN(pkg, ".(", 2)
		pkg = splt[0]
		function = "(" + splt[1] + "." + function
	}

	return pkg, function
}

func FormatCaller(pkg, path string, number int, colorize bool) string {
	p := FileNameOfPath(path)
	if colorize {
		p = color.New(color.Bold).Sprint(p)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", number)
		sep := color.New(color.Faint).Sprint(":")

		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, p, sep, num)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, p, number)
}

func FileNameOfPath(path string) string {
	tot := strings.Split(path, "/")
	if len(tot) > 1 {
		return tot[len(tot)-1]
	}

	return path
}
