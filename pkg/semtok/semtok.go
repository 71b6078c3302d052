/*
Core Functions:
-------------

	       Input
	         |
	         v
	  +------------+
	  |  Markup    |
	  |  Text      |
	  +------------+
	         |
	  bem.ClassifyTokens
	         |
	         v
	  +------------+
	  | Classified |
	  |   Spans    |
	  +------------+
	         |
	Convert to Tokens
	         |
	         v
	  +------------+
	  | Semantic   |
	  | Tokens     |
	  +------------+
*/
package semtok

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/position"
)

// GetTokensForText returns semantic tokens for the given markup text.
// This is the main entry point for semantic token generation.
//
//	Example:
//	   tokens, err := GetTokensForText(ctx, []byte(`<div class="card">`))
//	   if err != nil {
//	       return err
//	   }
//	   // Use tokens...
func GetTokensForText(ctx context.Context, content []byte) ([]Token, error) {
	return tokensFor(ctx, string(content), nil)
}

// GetTokensForRange returns semantic tokens for a specific range of the text.
// This is used for the visible region of an editor. Token offsets stay
// absolute to content.
func GetTokensForRange(ctx context.Context, content []byte, ranged position.Range) ([]Token, error) {
	text := string(content)
	idx := position.NewIndex(text)

	start, err := idx.Offset(ranged.Start)
	if err != nil {
		return nil, errors.Errorf("resolving range start: %w", err)
	}
	end, err := idx.Offset(ranged.End)
	if err != nil {
		return nil, errors.Errorf("resolving range end: %w", err)
	}

	return tokensFor(ctx, text, &bem.Range{Start: start, End: end})
}

func tokensFor(ctx context.Context, text string, rng *bem.Range) ([]Token, error) {
	classified, err := bem.ClassifyTokens(text, rng)
	if err != nil {
		return nil, errors.Errorf("classifying: %w", err)
	}

	seen := make(map[string]bool, len(classified))
	tokens := make([]Token, 0, len(classified))
	for _, tok := range classified {
		mod := ModifierNone
		if !seen[tok.Text] {
			mod = ModifierDeclaration
			seen[tok.Text] = true
		}
		tokens = append(tokens, Token{
			Type:     TokenTypeFor(tok.Category),
			Modifier: mod,
			Range:    tok.RawPosition,
		})
	}

	zerolog.Ctx(ctx).Debug().
		Int("token_count", len(tokens)).
		Int("distinct_classes", len(seen)).
		Msg("generated semantic tokens")

	return tokens, nil
}
