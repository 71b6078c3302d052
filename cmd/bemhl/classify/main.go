package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/config"
	"github.com/walteh/bemhl/pkg/highlight"
	"github.com/walteh/bemhl/pkg/position"
	"github.com/walteh/bemhl/pkg/stylesheet"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatANSI = "ansi"
)

type Handler struct {
	fs      afero.Fs
	out     io.Writer
	format  string
	rng     string
	legend  bool
	noColor bool
}

func NewClassifyCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "classify [FILE|DIR]...",
		Short: "classify the class names of markup files",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().StringVar(&me.format, "format", FormatText, "output format: text, json or ansi")
	cmd.Flags().StringVar(&me.rng, "range", "", "only scan the byte range START:END of each file")
	cmd.Flags().BoolVar(&me.legend, "legend", false, "print the colour legend before ansi output")
	cmd.Flags().BoolVar(&me.noColor, "no-color", false, "disable colours in ansi output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context(), config.FromContext(cmd.Context()), args)
	}

	return cmd
}

// FileResult is one entry of the json output.
type FileResult struct {
	Path  string     `json:"path"`
	Spans []bem.Span `json:"spans"`
}

func (me *Handler) Run(ctx context.Context, cfg *config.Config, args []string) error {
	switch me.format {
	case FormatText, FormatJSON, FormatANSI:
	default:
		return errors.Errorf("unknown format %q", me.format)
	}

	rng, err := ParseRange(me.rng)
	if err != nil {
		return err
	}

	files, err := me.expand(ctx, cfg, args)
	if err != nil {
		return err
	}

	var renderer *highlight.Renderer
	if me.format == FormatANSI {
		palette, err := cfg.Palette()
		if err != nil {
			return errors.Errorf("building palette: %w", err)
		}
		renderer = highlight.NewRenderer(palette, !me.noColor && !color.NoColor)
		if me.legend {
			if err := renderer.Legend(me.out); err != nil {
				return errors.Errorf("writing legend: %w", err)
			}
		}
	}

	var (
		errs    error
		results = []FileResult{}
	)
	for _, path := range files {
		content, err := afero.ReadFile(me.fs, path)
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("reading %s: %w", path, err))
			continue
		}
		text := string(content)

		tokens, err := bem.ClassifyTokens(text, rng)
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("classifying %s: %w", path, err))
			continue
		}

		zerolog.Ctx(ctx).Debug().Str("path", path).Int("tokens", len(tokens)).Msg("classified")

		switch me.format {
		case FormatText:
			if err := me.writeText(ctx, path, text, tokens); err != nil {
				return err
			}
		case FormatANSI:
			if err := renderer.Render(ctx, me.out, text, tokens); err != nil {
				return errors.Errorf("rendering %s: %w", path, err)
			}
		case FormatJSON:
			res := FileResult{Path: path, Spans: make([]bem.Span, len(tokens))}
			for i, tok := range tokens {
				res.Spans[i] = tok.Span()
			}
			results = append(results, res)
		}
	}

	if me.format == FormatJSON {
		enc := json.NewEncoder(me.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return errors.Errorf("encoding results: %w", err)
		}
	}

	return errs
}

// expand replaces directory arguments with the markup files below them.
func (me *Handler) expand(ctx context.Context, cfg *config.Config, args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := me.fs.Stat(arg)
		if err != nil {
			return nil, errors.Errorf("checking %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := stylesheet.Glob(ctx, me.fs, arg, cfg.Markup.Patterns, config.DefaultMarkupPatterns)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func (me *Handler) writeText(ctx context.Context, path, text string, tokens []bem.ClassifiedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	idx := position.NewIndex(text)
	tabWidth := config.TabWidthFor(ctx, path)

	for _, tok := range tokens {
		line := idx.LineOf(tok.Offset)
		col := position.DisplayColumn(idx.LineText(line), tok.Offset-idx.LineStart(line), tabWidth)
		if _, err := fmt.Fprintf(me.out, "%s:%d:%d: %s %s\n", path, line+1, col, tok.Category, tok.Text); err != nil {
			return errors.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// ParseRange parses "START:END" byte offsets. An empty string means the
// whole document.
func ParseRange(s string) (*bem.Range, error) {
	if s == "" {
		return nil, nil
	}

	start, end, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.Errorf("range %q: expected START:END", s)
	}

	a, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return nil, errors.Errorf("range start %q: %w", start, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return nil, errors.Errorf("range end %q: %w", end, err)
	}

	return &bem.Range{Start: a, End: b}, nil
}
