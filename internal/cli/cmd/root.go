// Package cmd provides Cobra CLI commands for tvfocus.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tvfocus/internal/cli"
	"github.com/bnema/tvfocus/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "tvfocus",
		Short: "Directional focus navigation for remote-driven interfaces",
		Long: `tvfocus moves keyboard-less focus around a screen the way a TV remote does.

A focus manager owns the controls of a scene. Pans on the touch surface move
focus to the nearest enabled control inside a 25 degree cone; clicks activate
the focused control; the menu button activates the scene's back control.
Scenes stack: entering one disables the manager below it.

Scenes are described in TOML files. Use 'tvfocus demo' to drive them with
the keyboard, or 'tvfocus replay' to run a recorded gesture script against
them and check where focus ends up.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			opts := rootOpts
			opts.LogToFile = cmd.Name() == "demo"

			var err error
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootOpts.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/tvfocus/config.toml)")
	flags.StringVar(&rootOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&rootOpts.LogFormat, "log-format", "", "log format: console, json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
