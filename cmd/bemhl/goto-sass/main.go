package goto_sass

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/bemhl/pkg/bem"
	"github.com/walteh/bemhl/pkg/config"
)

var ErrNoToken = errors.Base("no class name at offset")

type Handler struct {
	fs     afero.Fs
	out    io.Writer
	offset int
	token  string
}

func NewGotoSassCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs(), offset: -1}

	cmd := &cobra.Command{
		Use:   "goto-sass [FILE]",
		Short: "print the stylesheet that defines a class name",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.Flags().IntVar(&me.offset, "offset", -1, "byte offset of the class name in FILE")
	cmd.Flags().StringVar(&me.token, "token", "", "class name to look up instead of reading FILE")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		file := ""
		if len(args) > 0 {
			file = args[0]
		}
		return me.Run(cmd.Context(), config.FromContext(cmd.Context()), file)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, cfg *config.Config, file string) error {
	token := me.token
	if token == "" {
		if file == "" || me.offset < 0 {
			return errors.New("either --token or FILE with --offset is required")
		}

		content, err := afero.ReadFile(me.fs, file)
		if err != nil {
			return errors.Errorf("reading %s: %w", file, err)
		}

		tok, ok := bem.TokenAt(string(content), me.offset)
		if !ok {
			return errors.Errorf("%s@%d: %w", file, me.offset, ErrNoToken)
		}
		token = tok.Text

		zerolog.Ctx(ctx).Debug().Str("token", token).Stringer("category", tok.Category).Msg("token under cursor")
	}

	path, err := cfg.Navigator(me.fs).Resolve(ctx, token)
	if err != nil {
		return errors.Errorf("resolving %q: %w", token, err)
	}

	if _, err := fmt.Fprintln(me.out, path); err != nil {
		return errors.Errorf("writing output: %w", err)
	}
	return nil
}
