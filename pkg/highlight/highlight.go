// Package highlight draws classified class names on a terminal, one
// background colour per category.
package highlight

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/position"
)

var ErrUnknownColor = errors.Base("unknown color")

// Palette maps each category to the background drawn behind its spans.
type Palette map[bem.Category]color.Attribute

func DefaultPalette() Palette {
	return Palette{
		bem.Block:    color.BgBlue,
		bem.Element:  color.BgRed,
		bem.Modifier: color.BgGreen,
		bem.Qa:       color.BgYellow,
		bem.Js:       color.BgCyan,
	}
}

var colorNames = map[string]color.Attribute{
	"black":      color.BgBlack,
	"red":        color.BgRed,
	"green":      color.BgGreen,
	"yellow":     color.BgYellow,
	"blue":       color.BgBlue,
	"magenta":    color.BgMagenta,
	"cyan":       color.BgCyan,
	"white":      color.BgWhite,
	"hi-black":   color.BgHiBlack,
	"hi-red":     color.BgHiRed,
	"hi-green":   color.BgHiGreen,
	"hi-yellow":  color.BgHiYellow,
	"hi-blue":    color.BgHiBlue,
	"hi-magenta": color.BgHiMagenta,
	"hi-cyan":    color.BgHiCyan,
	"hi-white":   color.BgHiWhite,
}

// ParseColor resolves a colour name such as "blue" or "hi-cyan" to its
// background attribute.
func ParseColor(name string) (color.Attribute, error) {
	attr, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("%q: %w", name, ErrUnknownColor)
	}
	return attr, nil
}

// With returns a copy of the palette with overrides applied.
func (p Palette) With(overrides map[bem.Category]string) (Palette, error) {
	out := make(Palette, len(p))
	for c, attr := range p {
		out[c] = attr
	}
	for c, name := range overrides {
		attr, err := ParseColor(name)
		if err != nil {
			return nil, errors.Errorf("color for %s: %w", c, err)
		}
		out[c] = attr
	}
	return out, nil
}

type Renderer struct {
	Palette Palette
	// Color forces escape sequences on or off, independent of the terminal
	Color bool
}

func NewRenderer(p Palette, colorize bool) *Renderer {
	return &Renderer{Palette: p, Color: colorize}
}

func (r *Renderer) paint(c bem.Category, s string) string {
	attr, ok := r.Palette[c]
	if !r.Color || !ok {
		return s
	}
	painter := color.New(attr, color.FgBlack)
	painter.EnableColor()
	return painter.Sprint(s)
}

// Render writes text to w with every token painted. Tokens that overlap an
// earlier token are written as plain text.
func (r *Renderer) Render(ctx context.Context, w io.Writer, text string, tokens []bem.ClassifiedToken) error {
	sorted := make([]bem.ClassifiedToken, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	var b strings.Builder
	b.Grow(len(text))

	var last position.RawPosition
	cursor, skipped, painted := 0, 0, false
	for _, tok := range sorted {
		if tok.Offset < 0 || tok.End() > len(text) || (painted && tok.HasRangeOverlapWith(last)) {
			skipped++
			continue
		}
		b.WriteString(text[cursor:tok.Offset])
		b.WriteString(r.paint(tok.Category, text[tok.Offset:tok.End()]))
		cursor, last, painted = tok.End(), tok.RawPosition, true
	}
	b.WriteString(text[cursor:])

	if skipped > 0 {
		zerolog.Ctx(ctx).Warn().Int("skipped", skipped).Msg("skipped overlapping tokens")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Errorf("writing highlighted text: %w", err)
	}
	return nil
}

// Legend writes one painted line per category, using its display name.
func (r *Renderer) Legend(w io.Writer) error {
	for _, c := range bem.Categories {
		if _, err := io.WriteString(w, r.paint(c, c.DisplayName())+"\n"); err != nil {
			return errors.Errorf("writing legend: %w", err)
		}
	}
	return nil
}
