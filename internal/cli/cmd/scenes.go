package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/tvfocus/internal/infrastructure/config"
	"github.com/bnema/tvfocus/internal/ui/focus"
	"github.com/bnema/tvfocus/internal/ui/input"
	"github.com/bnema/tvfocus/internal/ui/scene"
)

var errNoScenes = errors.New("no scene files: pass them with --scene or set demo.scenes in the config")

// loadScenes parses every scene file. The first one is the entry scene.
func loadScenes(paths []string) ([]*scene.Definition, error) {
	if len(paths) == 0 {
		return nil, errNoScenes
	}

	defs := make([]*scene.Definition, 0, len(paths))
	for _, p := range paths {
		def, err := scene.Load(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// buildOptions maps the navigation config onto scene build defaults.
func buildOptions(cfg *config.Config) (scene.BuildOptions, error) {
	action, err := focus.ParsePlayPauseAction(cfg.Navigation.PlayPauseAction)
	if err != nil {
		return scene.BuildOptions{}, fmt.Errorf("navigation.play_pause_action: %w", err)
	}
	return scene.BuildOptions{
		PanThreshold:    cfg.Navigation.PanThreshold,
		PlayPauseAction: action,
		ArmPan:          cfg.Navigation.ArmPanOnFirstFocus,
	}, nil
}

func remoteOptions(cfg *config.Config) []input.RemoteOption {
	return []input.RemoteOption{
		input.WithSwipe(cfg.Remote.SwipeDistance, cfg.Remote.SwipeSteps),
	}
}
