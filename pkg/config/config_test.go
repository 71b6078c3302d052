package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/highlight"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		expectError bool
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_hcl",
			file: "/repo/.bemhl.hcl",
			config: `
markup {
  patterns = ["Views/**/*.cshtml"]
}

stylesheets {
  root           = "wwwroot/scss"
  patterns       = ["**/*.scss"]
  match_partials = true
}

colors {
  block = "hi-blue"
  qa    = "magenta"
}

semantic_tokens {
  js = "bemJs"
}
`,
			validate: func(t *testing.T, cfg *Config) {
				require.Equal(t, []string{"Views/**/*.cshtml"}, cfg.Markup.Patterns)
				require.Equal(t, "/repo/wwwroot/scss", cfg.Stylesheets.Root)
				require.Equal(t, []string{"**/*.scss"}, cfg.Stylesheets.Patterns)
				require.True(t, cfg.Stylesheets.MatchPartials)

				palette, err := cfg.Palette()
				require.NoError(t, err)
				require.Equal(t, color.BgHiBlue, palette[bem.Block])
				require.Equal(t, color.BgMagenta, palette[bem.Qa])
				require.Equal(t, color.BgRed, palette[bem.Element])

				legend, err := cfg.Legend()
				require.NoError(t, err)
				require.Equal(t, "bemJs", legend.TokenTypes[3])
			},
		},
		{
			name: "valid_yaml",
			file: "/repo/.bemhl.yaml",
			config: `
stylesheets:
  root: /abs/styles
  match_partials: true
colors:
  element: yellow
`,
			validate: func(t *testing.T, cfg *Config) {
				require.Equal(t, DefaultMarkupPatterns, cfg.Markup.Patterns)
				require.Equal(t, "/abs/styles", cfg.Stylesheets.Root)
				require.Equal(t, []string{"**/*.scss", "**/*.sass"}, cfg.Stylesheets.Patterns)
				require.Equal(t, "yellow", cfg.Colors.Element)
			},
		},
		{
			name:   "empty_yaml_uses_defaults",
			file:   "/repo/.bemhl.yml",
			config: "",
			validate: func(t *testing.T, cfg *Config) {
				require.Equal(t, "/repo", cfg.Stylesheets.Root)
				require.Equal(t, DefaultMarkupPatterns, cfg.Markup.Patterns)
			},
		},
		{
			name: "upper_case_yaml_extension",
			file: "/repo/.bemhl.YAML",
			config: `
markup:
  patterns: ["**/*.cshtml"]
`,
			validate: func(t *testing.T, cfg *Config) {
				require.Equal(t, []string{"**/*.cshtml"}, cfg.Markup.Patterns)
			},
		},
		{
			name: "duplicate_token_type",
			file: "/repo/.bemhl.hcl",
			config: `
semantic_tokens {
  js = "bem"
  qa = "bem"
}
`,
			expectError: true,
		},
		{
			name: "unknown_yaml_field",
			file: "/repo/.bemhl.yaml",
			config: `
stylesheets:
  folder: styles
`,
			expectError: true,
		},
		{
			name: "unknown_color",
			file: "/repo/.bemhl.hcl",
			config: `
colors {
  block = "chartreuse"
}
`,
			expectError: true,
		},
		{
			name: "empty_pattern",
			file: "/repo/.bemhl.hcl",
			config: `
markup {
  patterns = [""]
}
`,
			expectError: true,
		},
		{
			name:        "invalid_hcl",
			file:        "/repo/.bemhl.hcl",
			config:      `markup {`,
			expectError: true,
		},
		{
			name: "unknown_hcl_block",
			file: "/repo/.bemhl.hcl",
			config: `
scripts {
  root = "js"
}
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.file, []byte(tt.config), 0644))

			cfg, err := Load(fs, tt.file)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope/.bemhl.hcl")
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Markup.Patterns = []string{" "}
	cfg.Stylesheets.Patterns = []string{""}
	cfg.Colors.Js = "nope"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markup: empty pattern")
	assert.Contains(t, err.Error(), "stylesheets: empty pattern")
	assert.ErrorIs(t, err, highlight.ErrUnknownColor)
}

func TestDiscover(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, path, err := Discover(fs, "/site")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "/site", cfg.Stylesheets.Root)

	require.NoError(t, afero.WriteFile(fs, "/site/.bemhl.yml", []byte("stylesheets:\n  root: scss\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/site/.bemhl.hcl", []byte("stylesheets {\n  root = \"sass\"\n}\n"), 0644))

	cfg, path, err = Discover(fs, "/site")
	require.NoError(t, err)
	assert.Equal(t, "/site/.bemhl.hcl", path)
	assert.Equal(t, "/site/sass", cfg.Stylesheets.Root)
}

func TestNavigatorFromConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/site/scss/_card.scss", []byte(".card{}"), 0644))

	cfg := Default()
	cfg.Stylesheets.Root = "/site/scss"
	cfg.Stylesheets.MatchPartials = true

	got, err := cfg.Navigator(fs).Resolve(context.Background(), "card")
	require.NoError(t, err)
	assert.Equal(t, "/site/scss/_card.scss", got)
}

func TestTabWidthFor(t *testing.T) {
	dir := t.TempDir()
	editorconfig := `root = true

[*.cshtml]
tab_width = 2

[*.razor]
indent_size = 8
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".editorconfig"), []byte(editorconfig), 0644))

	ctx := context.Background()
	assert.Equal(t, 2, TabWidthFor(ctx, filepath.Join(dir, "Index.cshtml")))
	assert.Equal(t, 8, TabWidthFor(ctx, filepath.Join(dir, "App.razor")))
	assert.Equal(t, DefaultTabWidth, TabWidthFor(ctx, filepath.Join(dir, "page.html")))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))

	cfg := Default()
	cfg.Stylesheets.MatchPartials = true
	assert.Same(t, cfg, FromContext(NewContext(ctx, cfg)))
}
