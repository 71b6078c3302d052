package config

import (
	"context"
	"strconv"

	"github.com/editorconfig/editorconfig-core-go/v2"
	"github.com/rs/zerolog"
)

const DefaultTabWidth = 4

// TabWidthFor returns the tab width .editorconfig files assign to path,
// falling back to indent_size and then DefaultTabWidth.
func TabWidthFor(ctx context.Context, path string) int {
	def, err := editorconfig.GetDefinitionForFilename(path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("reading editorconfig")
		return DefaultTabWidth
	}

	if def.TabWidth > 0 {
		return def.TabWidth
	}
	if n, err := strconv.Atoi(def.IndentSize); err == nil && n > 0 {
		return n
	}

	return DefaultTabWidth
}
