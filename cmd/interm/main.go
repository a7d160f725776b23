package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dpouris/interm/internal/config"
	"github.com/dpouris/interm/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "interm:", err)
		os.Exit(1)
	}
}

type globalOptions struct {
	envFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "interm",
		Short:         "Redraw a fixed block of terminal lines in place",
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// if we got this far, CLI parsing worked just fine; no
			// need to show usage for runtime errors
			cmd.SilenceUsage = true
		},
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load INTERM_* settings from a dotenv file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from INTERM_LOG_LEVEL)")

	cmd.AddCommand(newDemoCmd(opts), newRunCmd(opts))
	return cmd
}

// load resolves configuration and builds the stderr logger.
func (o *globalOptions) load(stderr io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.logLevel != "" {
		level, err := config.ParseLevel(o.logLevel)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg.LogLevel = level
	}
	return cfg, logging.New(stderr, cfg.LogLevel), nil
}

// interrupted reports whether err only says the run was cancelled.
func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, context.Canceled)
}
