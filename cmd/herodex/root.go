package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"herodex/internal/catalog"
	"herodex/internal/config"
	"herodex/internal/logger"
	"herodex/internal/server"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the herodex command.
//
// The optional positional argument is the listen port. It takes precedence
// over the PORT environment variable, which takes precedence over the
// configured default.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "herodex [port]",
		Short: "Herodex - browse the comic character catalog",
		Long: `Herodex serves a paged, searchable list of comic characters from the
catalog API. Credentials are read from PUB_API_KEY and PRI_API_KEY; the page
size from DB_QUERY_LIMIT.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if len(args) == 1 {
				opts = append(opts, config.WithPort(args[0]))
			}
			return run(cmd.Context(), opts...)
		},
	}
	cmd.SetVersionTemplate("Herodex version {{.Version}}\n")
	return cmd
}

// run loads configuration, initializes logging and serves until SIGINT or
// SIGTERM.
func run(parent context.Context, opts ...config.Option) error {
	cfg, err := config.Load(opts...)
	if err != nil {
		if errors.Is(err, catalog.ErrConfiguration) {
			log.Error().Err(err).Msg("API Key is not set")
		}
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, Version)
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
