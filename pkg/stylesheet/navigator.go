// Package stylesheet resolves a class name to the Sass file that defines it.
//
// The selected text of an editor is looked up in the project tree and the
// first .scss file whose name starts with it wins:
//
//	selected token ----+
//	                   v
//	             +-----------+     +--------+
//	             | Navigator | <-- | Finder |  (afero + doublestar)
//	             +-----------+     +--------+
//	                   |
//	                   v
//	        first candidate whose base name
//	         starts with the token (sorted)
package stylesheet

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrEmptyToken   = errors.Base("empty class name")
	ErrNoStylesheet = errors.Base("no stylesheet found")
)

type Navigator struct {
	Finder   Finder
	Root     string
	Patterns []string
	// MatchPartials lets card match _card.scss
	MatchPartials bool
}

func NewNavigator(finder Finder, root string, patterns []string, matchPartials bool) *Navigator {
	return &Navigator{
		Finder:        finder,
		Root:          root,
		Patterns:      patterns,
		MatchPartials: matchPartials,
	}
}

// Resolve returns the stylesheet for token.
func (n *Navigator) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.WithStack(ErrEmptyToken)
	}

	candidates, err := n.Finder.FindStylesheets(ctx, n.Root, n.Patterns)
	if err != nil {
		return "", errors.Errorf("listing stylesheets: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("token", token).
		Int("candidates", len(candidates)).
		Msg("resolving stylesheet")

	match, ok := Pick(token, candidates, n.MatchPartials)
	if !ok {
		return "", errors.Errorf("%q among %d candidates: %w", token, len(candidates), ErrNoStylesheet)
	}

	return match, nil
}

// Pick returns the first candidate, in the given order, whose base name
// starts with token.
func Pick(token string, candidates []string, matchPartials bool) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, c := range candidates {
		name := filepath.Base(c)
		if strings.HasPrefix(name, token) {
			return c, true
		}
		if matchPartials && strings.HasPrefix(strings.TrimPrefix(name, "_"), token) {
			return c, true
		}
	}
	return "", false
}
