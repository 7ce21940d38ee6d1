package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anivanovic/timerbar/pkg/config"
	"github.com/anivanovic/timerbar/pkg/logger"
	"github.com/anivanovic/timerbar/pkg/printer"
	"github.com/anivanovic/timerbar/pkg/timerbar"
)

type (
	App struct {
		v       *viper.Viper
		cfgPath string
		rootCmd *cobra.Command
	}

	AppContext struct {
		log     *zap.Logger
		printer printer.Printer
		cfg     config.Config
		out     io.Writer
	}
)

func NewApp() *App {
	rootCmd := &cobra.Command{
		Use:          "timerbar",
		Short:        "Render text progress bars",
		Long:         "Render a fixed width text progress bar for a process with a known number of steps",
		SilenceUsage: true,
	}
	app := &App{
		v:       config.New(),
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("log-level", "l", "info", "App logging level ["+logger.Levels+"]")
	flags.String("log-format", "color", "Logging format ["+logger.Formats+"]")
	flags.StringVar(&app.cfgPath, "config", "", "Config file location")
	app.bind("log.level", flags.Lookup("log-level"))
	app.bind("log.format", flags.Lookup("log-format"))
	app.addBarFlags(flags)

	rootCmd.AddCommand(NewRenderCommand(app))
	rootCmd.AddCommand(NewDemoCommand(app))
	rootCmd.AddCommand(NewVersionCommand())

	return app
}

func (a *App) addBarFlags(flags *pflag.FlagSet) {
	flags.IntP("width", "w", timerbar.DefaultWidth, "Number of fillable cells")
	flags.String("blank", timerbar.DefaultBlank, "Glyph for the unfilled part of the bar")
	flags.String("filled", timerbar.DefaultFilled, "Glyph for the filled part, cycled if longer than one character")
	flags.String("left", timerbar.DefaultLeftBorder, "Left border")
	flags.String("right", timerbar.DefaultRightBorder, "Right border")
	flags.String("prefix", "", "Text before the bar")
	flags.String("suffix", "", "Text after the bar")
	flags.Bool("fill-before-action", false, "Count the rendered step as done")

	a.bind("bar.width", flags.Lookup("width"))
	a.bind("bar.blank", flags.Lookup("blank"))
	a.bind("bar.filled", flags.Lookup("filled"))
	a.bind("bar.left", flags.Lookup("left"))
	a.bind("bar.right", flags.Lookup("right"))
	a.bind("bar.prefix", flags.Lookup("prefix"))
	a.bind("bar.suffix", flags.Lookup("suffix"))
	a.bind("bar.fill_before_action", flags.Lookup("fill-before-action"))
}

func (a *App) bind(key string, flag *pflag.Flag) {
	cobra.CheckErr(a.v.BindPFlag(key, flag))
}

func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) ExecuteContext(ctx context.Context) error {
	return a.rootCmd.ExecuteContext(ctx)
}

// NewCmdRun resolves configuration and logging once flags are parsed and
// then calls fn with a context that is cancelled on SIGINT or SIGTERM.
func (a *App) NewCmdRun(
	fn func(ctx context.Context, appCtx AppContext, args []string) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.Read(a.v, a.cfgPath); err != nil {
			return fmt.Errorf("could not resolve configuration: %w", err)
		}
		cfg, err := config.Load(a.v)
		if err != nil {
			return fmt.Errorf("could not resolve configuration: %w", err)
		}

		l, err := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()
		timerbar.SetLogger(l.Named("timerbar"))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		appCtx := AppContext{
			log:     l.Named(cmd.Name()),
			printer: printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr()),
			cfg:     cfg,
			out:     cmd.OutOrStdout(),
		}
		l.Debug("configuration resolved",
			zap.String("config", a.v.ConfigFileUsed()),
			zap.Any("bar", cfg.Bar))
		return fn(ctx, appCtx, args)
	}
}
