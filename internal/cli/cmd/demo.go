package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tvfocus/internal/cli"
	"github.com/bnema/tvfocus/internal/cli/model"
	"github.com/bnema/tvfocus/internal/infrastructure/config"
	"github.com/bnema/tvfocus/internal/infrastructure/scenefile"
	"github.com/bnema/tvfocus/internal/logging"
	"github.com/bnema/tvfocus/internal/ui/focus"
	"github.com/bnema/tvfocus/internal/ui/mainloop"
	"github.com/bnema/tvfocus/internal/ui/scene"
)

var demoWatch bool

var demoCmd = &cobra.Command{
	Use:   "demo [scene files...]",
	Short: "Drive scenes with a keyboard remote",
	Long: `Open the scenes in a full-screen terminal UI and navigate them like a TV remote.

Arrow keys (or hjkl) swipe the touch surface, enter clicks, esc presses menu
and p presses play/pause. The mouse wheel swipes up and down, and a left
click taps the surface at the pointer. The first scene file is entered at
startup; the others are reachable through goto controls.

Without arguments the scene files come from demo.scenes in the config.
With --watch, saved scene files are rebuilt in place and config changes
apply to scenes entered afterwards. Logs go to the log file.

Examples:
  tvfocus demo examples/menu.toml examples/settings.toml
  tvfocus demo --watch`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVarP(&demoWatch, "watch", "w", false, "reload scene files and config when they change")
}

func runDemo(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Context()
	log := logging.FromContext(ctx)

	paths := args
	if len(paths) == 0 {
		paths = app.Config.Demo.Scenes
	}
	defs, err := loadScenes(paths)
	if err != nil {
		return err
	}
	opts, err := buildOptions(app.Config)
	if err != nil {
		return err
	}

	director := scene.NewDirector(ctx, focus.NewStack(ctx), opts)
	if err := director.Register(defs...); err != nil {
		return err
	}
	if _, err := director.Enter(ctx, defs[0].Name); err != nil {
		return err
	}

	m := model.NewDemoModel(ctx, app.Theme, director, remoteOptions(app.Config)...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if demoWatch || app.Config.Demo.Watch {
		stop, err := watchDemo(ctx, app, p, director, m, paths)
		if err != nil {
			return err
		}
		defer stop()
	}

	log.Info().Strs("scenes", paths).Str("log_file", app.LogFile).Msg("demo started")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// watchDemo reloads scene files and config while the demo runs. Watcher
// goroutines only post tasks; the reload itself runs in the update loop.
func watchDemo(
	ctx context.Context,
	app *cli.App,
	p *tea.Program,
	director *scene.Director,
	m *model.DemoModel,
	paths []string,
) (func(), error) {
	log := logging.FromContext(ctx)
	coalescer := mainloop.NewCoalescer(mainloop.ProgramPoster(p.Send))

	watcher, err := scenefile.NewWatcher(app.Logger, paths...)
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	go watcher.Run(watchCtx, func(path string) {
		coalescer.Post(path, func() {
			reloadScene(ctx, director, m, path)
		})
	})

	if app.Configs.ConfigFileUsed() != "" {
		app.Configs.OnConfigChange(func(cfg *config.Config) {
			coalescer.Post("config", func() {
				opts, err := buildOptions(cfg)
				if err != nil {
					m.SetStatus("config: " + err.Error())
					return
				}
				director.SetOptions(opts)
				m.SetStatus("config reloaded, applies to scenes entered from now on")
			})
		})
		if err := app.Configs.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch failed")
		}
	}

	return func() {
		cancel()
		coalescer.Close()
		_ = watcher.Close()
	}, nil
}

func reloadScene(ctx context.Context, director *scene.Director, m *model.DemoModel, path string) {
	log := logging.FromContext(ctx)

	def, err := scene.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("scene reload failed, keeping previous")
		m.SetStatus("reload failed: " + err.Error())
		return
	}

	s, err := director.Replace(ctx, def)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("scene", def.Name).Msg("scene replace failed")
		m.SetStatus("reload failed: " + err.Error())
	case s == nil:
		m.SetStatus("updated " + def.Name)
	default:
		m.SetStatus("reloaded " + def.Name)
	}
}
