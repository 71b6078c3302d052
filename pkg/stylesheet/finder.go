package stylesheet

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DefaultPatterns matches Sass sources anywhere below the root.
var DefaultPatterns = []string{"**/*.scss", "**/*.sass"}

// Finder is responsible for finding stylesheet files below a root directory
type Finder interface {
	// FindStylesheets returns every file below root whose slash separated
	// path relative to root matches one of the doublestar patterns
	FindStylesheets(ctx context.Context, root string, patterns []string) ([]string, error)
}

// FSFinder walks an afero filesystem.
type FSFinder struct {
	fs afero.Fs
}

func NewFSFinder(fs afero.Fs) *FSFinder {
	return &FSFinder{fs: fs}
}

// FindStylesheets implements Finder. Results are sorted and unique.
func (f *FSFinder) FindStylesheets(ctx context.Context, root string, patterns []string) ([]string, error) {
	return Glob(ctx, f.fs, root, patterns, DefaultPatterns)
}

// Glob walks root and returns the files matching any of patterns, or
// fallback when patterns is empty. It is shared with the markup walker.
func Glob(ctx context.Context, fs afero.Fs, root string, patterns, fallback []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = fallback
	}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}
	}

	var found []string
	err := afero.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return errors.Errorf("relative path of %s: %w", p, err)
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				found = append(found, p)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}
