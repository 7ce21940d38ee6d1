package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anivanovic/timerbar/pkg/timerbar"
)

type renderFlags struct {
	steps     int
	step      int
	fit       bool
	noNewline bool
}

func NewRenderCommand(app *App) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render --steps <total> --step <current>",
		Short: "Render the bar for one step",
		Long: `Render the bar for one step and print it. Call it once per iteration of a
shell loop, e.g.

  for i in $(seq 0 10); do printf '\r%s' "$(timerbar render -s 10 -i $i -n)"; sleep 1; done`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = app.NewCmdRun(func(ctx context.Context, appCtx AppContext, args []string) error {
		return runRender(ctx, appCtx, f)
	})
	cmd.Flags().IntVarP(&f.steps, "steps", "s", 0, "Total number of steps")
	cmd.Flags().IntVarP(&f.step, "step", "i", 0, "Current step")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "Size the bar to fill the terminal width")
	cmd.Flags().BoolVarP(&f.noNewline, "no-newline", "n", false, "Do not print a trailing newline")
	_ = cmd.MarkFlagRequired("steps")

	return cmd
}

func runRender(_ context.Context, appCtx AppContext, f *renderFlags) error {
	cfg := appCtx.cfg.Bar.Timerbar(f.steps)
	if f.fit {
		cfg.BarWidth = fitWidth(terminalWidth(appCtx.out), cfg)
	}

	bar, err := timerbar.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	text := bar.RenderAtStep(f.step)
	appCtx.log.Debug("rendered",
		zap.Int("step", f.step),
		zap.Int("steps", f.steps),
		zap.Int("filled", bar.FillCount(f.step)))
	if f.noNewline {
		appCtx.printer.Infof("%s", text)
		return nil
	}
	appCtx.printer.Info(text)
	return nil
}
