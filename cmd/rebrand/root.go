package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/rebrand"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the flags shared by the command
type rootOpts struct {
	dir   string
	debug bool
}

// newRootCmd creates the rebrand command
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "rebrand",
		Short: "Rebrand the blog from Malti Tool Platform to DvTools",
		Long: `rebrand rewrites every app/blog/**/page.mdx file under the target directory,
replacing "` + rebrand.OldProductName + `" with "` + rebrand.NewProductName + `" and "` + rebrand.OldDomain + `" with "` + rebrand.NewDomain + `".
Only files whose content changes are written. Files that fail are reported and
skipped; they do not change the exit status.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, opts)
			ctx = log.NewContext(ctx, log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx)))

			if _, err := rebrand.Run(ctx, rebrand.DefaultOptions(opts.dir)); err != nil {
				return errors.Errorf("running rebrand: %w", err)
			}

			return nil
		},
	}

	addRootFlags(cmd, opts)
	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "directory the blog pattern is resolved against")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and returns the command
// context carrying the logger
func setupLogging(cmd *cobra.Command, opts *rootOpts) context.Context {
	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}
	zlog := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return zlog.WithContext(cmd.Context())
}
