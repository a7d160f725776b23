package workload

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/dpouris/interm"
	"github.com/dpouris/interm/internal/progress"
	"github.com/dpouris/interm/internal/termio"
)

// Options controls a download run.
type Options struct {
	Steps   int
	Tick    time.Duration
	Jitter  bool
	Profile termenv.Profile
	Logger  *slog.Logger
}

// Download simulates one transfer on slot, redrawing it after every step.
// The lock is released before each sleep so other downloads can draw.
func Download(ctx context.Context, shared *Shared, slot interm.Slot, opts Options) error {
	label := slot.Content()
	if opts.Steps <= 0 {
		return shared.Update(slot, progress.Complete(label, opts.Profile), true)
	}
	tick := opts.Tick
	if opts.Jitter && tick > 0 {
		tick = time.Duration(rand.Int64N(int64(2*tick))) + tick/2
	}
	for i := 0; i <= opts.Steps; i++ {
		fraction := float64(i) / float64(opts.Steps)
		if err := shared.Update(slot, progress.Bar(label, fraction), true); err != nil {
			return err
		}
		if i == opts.Steps {
			break
		}
		if err := sleep(ctx, tick); err != nil {
			if uerr := shared.Update(slot, progress.Failed(label, err, opts.Profile), true); uerr != nil {
				return uerr
			}
			return err
		}
	}
	return shared.Update(slot, progress.Complete(label, opts.Profile), true)
}

// RunDownloads starts one Download per slot and waits for all of them. The
// first failure cancels the rest.
func RunDownloads(ctx context.Context, shared *Shared, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, slot := range shared.Slots() {
		g.Go(func() error {
			start := time.Now()
			if err := Download(ctx, shared, slot, opts); err != nil {
				logger.Debug("download stopped", "slot", slot.Row(), "err", err)
				return err
			}
			logger.Debug("download complete", "slot", slot.Row(), "elapsed", time.Since(start))
			return nil
		})
	}
	return g.Wait()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func fit(content string, width int) string {
	content = termio.SingleLine(content)
	if width <= 0 {
		return content
	}
	// Leave the last column free so the terminal never auto-wraps.
	return termio.Truncate(content, width-1)
}
