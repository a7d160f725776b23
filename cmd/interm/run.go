package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpouris/interm"
	"github.com/dpouris/interm/internal/script"
	"github.com/dpouris/interm/internal/termio"
	"github.com/dpouris/interm/internal/workload"
)

func newRunCmd(global *globalOptions) *cobra.Command {
	var lines []string
	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Drive a block from a Lua script",
		Long: `Run a Lua script against a block built from the --line values.

The script loads the "interm" module, which exposes lines(), content(i),
update(i, text[, clear]), move_to(i), clear_line(), clear_all(), sleep(ms)
and log(msg). Rows are numbered from 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, logger, err := global.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				lines = []string{"", "", ""}
			}
			out := cmd.OutOrStdout()
			term := termio.NewTerminal(out)

			err = interm.Run(out, lines, func(b *interm.Block) error {
				shared := workload.NewShared(b, term.Width())
				runErr := script.NewRunner(shared, logger).RunFile(ctx, args[0])
				return errors.Join(runErr, parkBelow(shared))
			}, interm.WithLogger(logger))
			fmt.Fprintln(out)
			if interrupted(ctx, err) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringArrayVar(&lines, "line", nil, "Initial content of a line; repeat for more lines (default: 3 empty lines)")
	return cmd
}
