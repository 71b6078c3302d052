package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/bemhl/cmd/bemhl/classify"
	goto_sass "github.com/walteh/bemhl/cmd/bemhl/goto-sass"
	semantic_tokens "github.com/walteh/bemhl/cmd/bemhl/semantic-tokens"
	"github.com/walteh/bemhl/pkg/config"
	"github.com/walteh/bemhl/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	debug      bool
	jsonLogs   bool
}

func run() error {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "bemhl",
		Short:         "Classify and highlight BEM class names in markup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (.hcl, .yaml or .yml); discovered in the working directory when empty")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonLogs, "log-json", false, "write logs as JSON lines")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := flags.setup(cmd.Context(), afero.NewOsFs())
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(classify.NewClassifyCommand())
	rootCmd.AddCommand(semantic_tokens.NewSemanticTokensCommand())
	rootCmd.AddCommand(goto_sass.NewGotoSassCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

// setup attaches the logger and the loaded config to ctx.
func (me *rootFlags) setup(ctx context.Context, fs afero.Fs) (context.Context, error) {
	ctx = logging.NewContext(ctx, os.Stderr, logging.Options{
		Debug: me.debug,
		JSON:  me.jsonLogs,
		Color: !color.NoColor,
	})
	ctx = zerolog.Ctx(ctx).With().Str("run_id", uuid.NewString()).Logger().WithContext(ctx)

	var (
		cfg  *config.Config
		path = me.configPath
		err  error
	)
	if path != "" {
		cfg, err = config.Load(fs, path)
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			return nil, errors.Errorf("getting working directory: %w", werr)
		}
		cfg, path, err = config.Discover(fs, wd)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", path).Msg("config loaded")

	return config.NewContext(ctx, cfg), nil
}
