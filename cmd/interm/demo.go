package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dpouris/interm"
	"github.com/dpouris/interm/internal/termio"
	"github.com/dpouris/interm/internal/workload"
)

type demoOptions struct {
	lines  int
	steps  int
	tick   time.Duration
	keep   bool
	jitter bool
}

func newDemoCmd(global *globalOptions) *cobra.Command {
	opts := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run simulated downloads, one progress line each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, global, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.lines, "lines", "l", 0, "Number of downloads (default from INTERM_LINES)")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "Progress steps per download (default from INTERM_STEPS)")
	cmd.Flags().DurationVar(&opts.tick, "tick", 0, "Delay between steps (default from INTERM_TICK)")
	cmd.Flags().BoolVar(&opts.keep, "keep", false, "Keep the progress lines instead of clearing them")
	cmd.Flags().BoolVar(&opts.jitter, "jitter", true, "Give every download a different speed")
	return cmd
}

func runDemo(cmd *cobra.Command, global *globalOptions, opts *demoOptions) error {
	ctx := cmd.Context()
	cfg, logger, err := global.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("lines") {
		cfg.Lines = opts.lines
	}
	if flags.Changed("steps") {
		cfg.Steps = opts.steps
	}
	if flags.Changed("tick") {
		cfg.Tick = opts.tick
	}
	if flags.Changed("keep") {
		cfg.ClearOnExit = !opts.keep
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	term := termio.NewTerminal(out)
	if !term.IsTTY() {
		logger.Warn("output is not a terminal; escape sequences are written as is")
	}
	profile := termenv.NewOutput(out).EnvColorProfile()

	labels := make([]string, cfg.Lines)
	for i := range labels {
		labels[i] = fmt.Sprintf("Download %d", i)
	}

	cleared := false
	err = interm.Run(out, labels, func(b *interm.Block) error {
		shared := workload.NewShared(b, term.Width())
		runErr := workload.RunDownloads(ctx, shared, workload.Options{
			Steps:   cfg.Steps,
			Tick:    cfg.Tick,
			Jitter:  opts.jitter,
			Profile: profile,
			Logger:  logger,
		})
		if runErr == nil && cfg.ClearOnExit {
			cleared = true
			return shared.Do(func(b *interm.Block) error { return b.ClearAll() })
		}
		return errors.Join(runErr, parkBelow(shared))
	}, interm.WithLogger(logger))

	if !cleared {
		fmt.Fprintln(out)
	}
	if interrupted(ctx, err) {
		logger.Info("interrupted")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, termenv.String("All downloads complete!").Foreground(profile.Color("6")))
	return nil
}

// parkBelow leaves the cursor on the last row so the next output starts
// after the block.
func parkBelow(shared *workload.Shared) error {
	return shared.Do(func(b *interm.Block) error {
		return b.GotoIndex(b.Len() - 1)
	})
}
