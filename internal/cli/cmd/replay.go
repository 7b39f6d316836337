package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tvfocus/internal/application/usecase"
	"github.com/bnema/tvfocus/internal/cli/styles"
	"github.com/bnema/tvfocus/internal/ui/scene"
)

var (
	replayScenes []string
	replayJSON   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a gesture script against scenes",
	Long: `Run the steps of a gesture script against the scenes and print what focus did.

Scripts are TOML files with [[steps]] entries: pan, swipe, click, menu,
play_pause, enter_scene, exit_scene and expect. Failed expect steps are
listed at the end and make the command exit with status 1.

Examples:
  tvfocus replay examples/walk.toml --scene examples/menu.toml --scene examples/settings.toml
  tvfocus replay walk.toml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringArrayVarP(&replayScenes, "scene", "s", nil, "scene file (repeatable, default demo.scenes)")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "output as JSON")
}

func runReplay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	script, err := scene.LoadScript(args[0])
	if err != nil {
		return err
	}

	paths := replayScenes
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

	uc := usecase.NewReplayGesturesUseCase(opts, remoteOptions(app.Config)...)
	out, err := uc.Execute(app.Context(), usecase.ReplayInput{Scenes: defs, Script: script})
	if err != nil {
		return err
	}

	renderer := styles.NewReplayRenderer(app.Theme)
	if replayJSON {
		data, err := renderer.RenderJSON(out)
		if err != nil {
			return err
		}
		fmt.Println(data)
	} else {
		fmt.Println(renderer.Render(script.Name, out))
	}

	if !out.Passed() {
		return fmt.Errorf("replay %s: %d expectation(s) failed", script.Name, len(out.Failures))
	}
	return nil
}
