package semantic_tokens

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/bemhl/pkg/config"
	"github.com/walteh/bemhl/pkg/position"
	"github.com/walteh/bemhl/pkg/semtok"
)

type Handler struct {
	fs  afero.Fs
	out io.Writer
	rng string
}

func NewSemanticTokensCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "semantic-tokens FILE",
		Short: "print the LSP semantic tokens of a markup file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&me.rng, "range", "", "zero-based LINE:CHAR-LINE:CHAR range, as sent by semanticTokens/range")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context(), config.FromContext(cmd.Context()), args[0])
	}

	return cmd
}

// Output mirrors the legend a server would announce next to the
// SemanticTokens result.
type Output struct {
	Legend semtok.Legend `json:"legend"`
	Data   []uint32      `json:"data"`
}

func (me *Handler) Run(ctx context.Context, cfg *config.Config, path string) error {
	legend, err := cfg.Legend()
	if err != nil {
		return errors.Errorf("building legend: %w", err)
	}

	content, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	var tokens []semtok.Token
	if me.rng == "" {
		tokens, err = semtok.GetTokensForText(ctx, content)
	} else {
		var rng position.Range
		rng, err = ParseRange(me.rng)
		if err != nil {
			return err
		}
		tokens, err = semtok.GetTokensForRange(ctx, content, rng)
	}
	if err != nil {
		return errors.Errorf("semantic tokens for %s: %w", path, err)
	}

	enc := json.NewEncoder(me.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Output{Legend: legend, Data: semtok.Encode(tokens, string(content))}); err != nil {
		return errors.Errorf("encoding output: %w", err)
	}
	return nil
}

// ParseRange parses "LINE:CHAR-LINE:CHAR".
func ParseRange(s string) (position.Range, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return position.Range{}, errors.Errorf("range %q: expected LINE:CHAR-LINE:CHAR", s)
	}

	a, err := parsePlace(start)
	if err != nil {
		return position.Range{}, err
	}
	b, err := parsePlace(end)
	if err != nil {
		return position.Range{}, err
	}

	return position.Range{Start: a, End: b}, nil
}

func parsePlace(s string) (position.Place, error) {
	line, char, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return position.Place{}, errors.Errorf("place %q: expected LINE:CHAR", s)
	}
	l, err := strconv.Atoi(line)
	if err != nil {
		return position.Place{}, errors.Errorf("line %q: %w", line, err)
	}
	c, err := strconv.Atoi(char)
	if err != nil {
		return position.Place{}, errors.Errorf("character %q: %w", char, err)
	}
	return position.Place{Line: l, Character: c}, nil
}
