package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anivanovic/timerbar/pkg/stats"
	"github.com/anivanovic/timerbar/pkg/timerbar"
)

type demoFlags struct {
	steps        int
	interval     time.Duration
	suffixFormat string
	unit         uint64
	fit          bool
}

func NewDemoCommand(app *App) *cobra.Command {
	f := &demoFlags{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Animate a bar over a number of steps",
		Long:  "Drive a bar from the first to the last step, rewriting the line on every step",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = app.NewCmdRun(func(ctx context.Context, appCtx AppContext, args []string) error {
		return runDemo(ctx, appCtx, f)
	})
	cmd.Flags().IntVarP(&f.steps, "steps", "s", 20, "Total number of steps")
	cmd.Flags().DurationVar(&f.interval, "interval", 100*time.Millisecond, "Time spent on each step")
	cmd.Flags().StringVar(&f.suffixFormat, "suffix-format", "count", "Progress text after the bar [none,count,percent,bytes]")
	cmd.Flags().Uint64Var(&f.unit, "unit", 1<<20, "Bytes per step for the bytes suffix format")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "Size the bar to fill the terminal width")

	return cmd
}

func runDemo(ctx context.Context, appCtx AppContext, f *demoFlags) error {
	if f.interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", f.interval)
	}
	format, err := stats.ParseFormat(f.suffixFormat)
	if err != nil {
		return err
	}

	cfg := appCtx.cfg.Bar.Timerbar(f.steps)
	suffix := cfg.SuffixText
	if f.fit {
		// reserve room for the widest progress text, the one of the last step
		cfg.SuffixText += stats.Text(format, stats.Step{Current: f.steps, Total: f.steps, Unit: f.unit})
		cfg.BarWidth = fitWidth(terminalWidth(appCtx.out), cfg)
		cfg.SuffixText = suffix
	}
	bar, err := timerbar.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	log := appCtx.log.With(zap.String("run", uuid.NewString()))
	log.Info("demo started", zap.Int("steps", f.steps), zap.Stringer("suffix", format))

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for step := 0; ; step++ {
		if format != stats.FormatNone {
			bar.SetSuffix(suffix + stats.Text(format, stats.Step{Current: step, Total: f.steps, Unit: f.unit}))
		}
		if err := appCtx.printer.Live(bar.RenderAtStep(step)); err != nil {
			return fmt.Errorf("write bar: %w", err)
		}
		if step >= f.steps {
			break
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				log.Info("demo interrupted", zap.Int("step", step))
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}

	log.Info("demo finished", zap.Int("steps", f.steps))
	return nil
}
