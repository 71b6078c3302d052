package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/highlight"
	"github.com/walteh/bemhl/pkg/semtok"
	"github.com/walteh/bemhl/pkg/stylesheet"
)

// FileNames are looked up, in order, by Discover.
var FileNames = []string{".bemhl.hcl", ".bemhl.yaml", ".bemhl.yml"}

// DefaultMarkupPatterns are the files classified when a directory is given.
var DefaultMarkupPatterns = []string{"**/*.cshtml", "**/*.razor", "**/*.html"}

// 📝 Config file structure
type Config struct {
	// 📄 Which files count as markup when walking a directory
	Markup *MarkupBlock `json:"markup,omitempty" hcl:"markup,block" yaml:"markup,omitempty"`

	// 🎯 Where go-to-stylesheet looks for Sass files
	Stylesheets *StylesheetsBlock `json:"stylesheets,omitempty" hcl:"stylesheets,block" yaml:"stylesheets,omitempty"`

	// 🎨 Background colour names per category
	Colors *CategoryNames `json:"colors,omitempty" hcl:"colors,block" yaml:"colors,omitempty"`

	// 🔧 LSP token type names per category
	SemanticTokens *CategoryNames `json:"semantic_tokens,omitempty" hcl:"semantic_tokens,block" yaml:"semantic_tokens,omitempty"`
}

type MarkupBlock struct {
	Patterns []string `json:"patterns,omitempty" hcl:"patterns,optional" yaml:"patterns,omitempty"`
}

type StylesheetsBlock struct {
	Root          string   `json:"root,omitempty" hcl:"root,optional" yaml:"root,omitempty"`
	Patterns      []string `json:"patterns,omitempty" hcl:"patterns,optional" yaml:"patterns,omitempty"`
	MatchPartials bool     `json:"match_partials,omitempty" hcl:"match_partials,optional" yaml:"match_partials,omitempty"`
}

// CategoryNames holds one optional string per category.
type CategoryNames struct {
	Block    string `json:"block,omitempty" hcl:"block,optional" yaml:"block,omitempty"`
	Element  string `json:"element,omitempty" hcl:"element,optional" yaml:"element,omitempty"`
	Modifier string `json:"modifier,omitempty" hcl:"modifier,optional" yaml:"modifier,omitempty"`
	Js       string `json:"js,omitempty" hcl:"js,optional" yaml:"js,omitempty"`
	Qa       string `json:"qa,omitempty" hcl:"qa,optional" yaml:"qa,omitempty"`
}

// Map returns the names that are set.
func (n *CategoryNames) Map() map[bem.Category]string {
	out := map[bem.Category]string{}
	if n == nil {
		return out
	}
	for c, v := range map[bem.Category]string{
		bem.Block:    n.Block,
		bem.Element:  n.Element,
		bem.Modifier: n.Modifier,
		bem.Js:       n.Js,
		bem.Qa:       n.Qa,
	} {
		if v != "" {
			out[c] = v
		}
	}
	return out
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Markup == nil {
		cfg.Markup = &MarkupBlock{}
	}
	if len(cfg.Markup.Patterns) == 0 {
		cfg.Markup.Patterns = append([]string(nil), DefaultMarkupPatterns...)
	}
	if cfg.Stylesheets == nil {
		cfg.Stylesheets = &StylesheetsBlock{}
	}
	if cfg.Stylesheets.Root == "" {
		cfg.Stylesheets.Root = "."
	}
	if len(cfg.Stylesheets.Patterns) == 0 {
		cfg.Stylesheets.Patterns = append([]string(nil), stylesheet.DefaultPatterns...)
	}
	if cfg.Colors == nil {
		cfg.Colors = &CategoryNames{}
	}
	if cfg.SemanticTokens == nil {
		cfg.SemanticTokens = &CategoryNames{}
	}
}

// 📝 Load config from file (supports YAML and HCL)
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
	default:
		parser := hclparse.NewParser()
		hclFile, diags := parser.ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, errors.Errorf("parsing HCL: %s", diags.Error())
		}

		ctx := &hcl.EvalContext{
			Variables: map[string]cty.Value{},
		}

		diags = gohcl.DecodeBody(hclFile.Body, ctx, &cfg)
		if diags.HasErrors() {
			return nil, errors.Errorf("decoding HCL: %s", diags.Error())
		}
	}

	cfg.applyDefaults()

	// a relative stylesheet root is relative to the config file
	if !filepath.IsAbs(cfg.Stylesheets.Root) {
		cfg.Stylesheets.Root = filepath.Join(filepath.Dir(path), cfg.Stylesheets.Root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating %s: %w", path, err)
	}

	return &cfg, nil
}

// Discover loads the first config file found in dir, or returns the defaults
// when there is none.
func Discover(fs afero.Fs, dir string) (*Config, string, error) {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if _, err := fs.Stat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, "", errors.Errorf("checking %s: %w", p, err)
		}
		cfg, err := Load(fs, p)
		if err != nil {
			return nil, "", err
		}
		return cfg, p, nil
	}

	cfg := Default()
	cfg.Stylesheets.Root = dir
	return cfg, "", nil
}

// Validate reports every problem in the config at once.
func (cfg *Config) Validate() error {
	var errs error

	if cfg.Markup == nil || cfg.Stylesheets == nil {
		return errors.New("config has no defaults applied")
	}

	for _, p := range cfg.Markup.Patterns {
		if strings.TrimSpace(p) == "" {
			errs = multierr.Append(errs, errors.New("markup: empty pattern"))
		}
	}
	for _, p := range cfg.Stylesheets.Patterns {
		if strings.TrimSpace(p) == "" {
			errs = multierr.Append(errs, errors.New("stylesheets: empty pattern"))
		}
	}
	if _, err := highlight.DefaultPalette().With(cfg.Colors.Map()); err != nil {
		errs = multierr.Append(errs, errors.Errorf("colors: %w", err))
	}
	if _, err := semtok.NewLegend(cfg.SemanticTokens.Map()); err != nil {
		errs = multierr.Append(errs, errors.Errorf("semantic_tokens: %w", err))
	}

	return errs
}

// Palette returns the configured highlight palette.
func (cfg *Config) Palette() (highlight.Palette, error) {
	return highlight.DefaultPalette().With(cfg.Colors.Map())
}

// Legend returns the configured semantic token legend.
func (cfg *Config) Legend() (semtok.Legend, error) {
	return semtok.NewLegend(cfg.SemanticTokens.Map())
}

// Navigator builds the go-to-stylesheet navigator described by the config.
func (cfg *Config) Navigator(fs afero.Fs) *stylesheet.Navigator {
	return stylesheet.NewNavigator(
		stylesheet.NewFSFinder(fs),
		cfg.Stylesheets.Root,
		cfg.Stylesheets.Patterns,
		cfg.Stylesheets.MatchPartials,
	)
}
