package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/logging"
	"github.com/bnema/tvfocus/internal/ui/focus"
	"github.com/bnema/tvfocus/internal/ui/input"
	"github.com/bnema/tvfocus/internal/ui/scene"
	"github.com/bnema/tvfocus/internal/ui/widget"
)

// TraceKind classifies a replay trace entry.
type TraceKind string

const (
	TraceScene    TraceKind = "scene"
	TraceFocus    TraceKind = "focus"
	TraceActivate TraceKind = "activate"
	TraceExpect   TraceKind = "expect"
)

// TraceEntry is one observable effect of a script step.
type TraceEntry struct {
	Step   int       `json:"step"`
	Action string    `json:"action"`
	Kind   TraceKind `json:"kind"`
	Scene  string    `json:"scene"`
	From   string    `json:"from,omitempty"`
	To     string    `json:"to,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// ReplayGesturesUseCase replays a gesture script against a set of scenes
// and records what the focus engine did.
type ReplayGesturesUseCase struct {
	build  scene.BuildOptions
	remote []input.RemoteOption
}

// NewReplayGesturesUseCase creates a new ReplayGesturesUseCase.
func NewReplayGesturesUseCase(build scene.BuildOptions, remote ...input.RemoteOption) *ReplayGesturesUseCase {
	return &ReplayGesturesUseCase{
		build:  build,
		remote: remote,
	}
}

// ReplayInput contains the scenes and the script to run.
type ReplayInput struct {
	Scenes []*scene.Definition
	Script *scene.Script
}

// ReplayOutput contains the trace and the final engine state.
type ReplayOutput struct {
	Trace    []TraceEntry `json:"trace"`
	Failures []string     `json:"failures,omitempty"`

	Scene   string `json:"scene"`
	Focused string `json:"focused"`
	Depth   int    `json:"depth"`
}

// Passed reports whether every expect step matched.
func (o *ReplayOutput) Passed() bool {
	return len(o.Failures) == 0
}

// replayRun is the state of one Execute call.
type replayRun struct {
	out      *ReplayOutput
	step     int
	action   string
	director *scene.Director
	remote   *input.Remote
	events   *input.Dispatcher
	watched  map[string]bool
}

// Execute builds the scenes, enters the script's first scene and runs every
// step. Expect mismatches are reported in Failures; structural problems
// such as an unknown scene abort the replay with an error.
func (uc *ReplayGesturesUseCase) Execute(ctx context.Context, in ReplayInput) (*ReplayOutput, error) {
	log := logging.FromContext(ctx)

	if in.Script == nil {
		return nil, errors.New("replay: script is required")
	}
	if len(in.Scenes) == 0 || in.Scenes[0] == nil {
		return nil, errors.New("replay: at least one scene is required")
	}
	if err := in.Script.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	run := &replayRun{
		out:     &ReplayOutput{Trace: []TraceEntry{}},
		action:  "start",
		watched: make(map[string]bool),
	}

	opts := uc.build
	hook := opts.OnActivate
	opts.OnActivate = func(s *scene.Scene, w widget.Widget) {
		run.record(TraceActivate, s.Name(), "", w.ID(), "")
		if hook != nil {
			hook(s, w)
		}
	}

	stack := focus.NewStack(ctx)
	run.director = scene.NewDirector(ctx, stack, opts)
	if err := run.director.Register(in.Scenes...); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	run.director.OnChange(run.sceneChanged)

	run.events = input.NewDispatcher(ctx, input.StackResolver(stack))
	run.remote = input.NewRemote(run.events, uc.remote...)

	start := in.Script.Scene
	if start == "" {
		start = in.Scenes[0].Name
	}
	if _, err := run.director.Enter(ctx, start); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	for i, step := range in.Script.Steps {
		run.step, run.action = i+1, step.Action
		for n := 0; n < step.Times(); n++ {
			if err := run.apply(ctx, step); err != nil {
				return nil, fmt.Errorf("replay step %d (%s): %w", i+1, step.Action, err)
			}
		}
	}

	run.out.Scene, run.out.Focused, run.out.Depth = run.state()

	log.Info().
		Str("script", in.Script.Name).
		Int("steps", len(in.Script.Steps)).
		Int("trace", len(run.out.Trace)).
		Int("failures", len(run.out.Failures)).
		Msg("replay finished")

	return run.out, nil
}

func (r *replayRun) apply(ctx context.Context, step scene.Step) error {
	switch step.Action {
	case scene.ActionPan:
		r.events.OnPanStart(vector(step.Path[0]))
		for _, p := range step.Path[1:] {
			r.events.OnPanMove(vector(p))
		}
		r.events.OnPanEnd(vector(step.Path[len(step.Path)-1]))
	case scene.ActionSwipe:
		r.remote.Swipe(step.Angle)
	case scene.ActionClick:
		if step.X != nil && step.Y != nil {
			r.events.OnClick(entity.Point{X: *step.X, Y: *step.Y})
		} else {
			r.remote.Select()
		}
	case scene.ActionMenu:
		r.remote.Menu()
	case scene.ActionPlayPause:
		r.remote.PlayPause()
	case scene.ActionEnterScene:
		if _, err := r.director.Enter(ctx, step.Scene); err != nil {
			return err
		}
	case scene.ActionExitScene:
		if r.director.Exit(ctx) == nil {
			r.record(TraceScene, "", "", "", "nothing to exit")
		}
	case scene.ActionExpect:
		r.expect(step)
	default:
		return fmt.Errorf("%w: %q", scene.ErrUnknownAction, step.Action)
	}
	return nil
}

func (r *replayRun) expect(step scene.Step) {
	name, focused, depth := r.state()

	var mismatches []string
	if step.Focused != nil && *step.Focused != focused {
		mismatches = append(mismatches, fmt.Sprintf("focused %q, got %q", *step.Focused, focused))
	}
	if step.Scene != "" && step.Scene != name {
		mismatches = append(mismatches, fmt.Sprintf("scene %q, got %q", step.Scene, name))
	}
	if step.Depth != nil && *step.Depth != depth {
		mismatches = append(mismatches, fmt.Sprintf("depth %d, got %d", *step.Depth, depth))
	}

	if len(mismatches) == 0 {
		r.record(TraceExpect, name, "", "", "ok")
		return
	}
	for _, m := range mismatches {
		r.out.Failures = append(r.out.Failures, fmt.Sprintf("step %d: expected %s", r.step, m))
		r.record(TraceExpect, name, "", "", "expected "+m)
	}
}

func (r *replayRun) sceneChanged(s *scene.Scene) {
	if s == nil {
		r.record(TraceScene, "", "", "", "depth=0")
		return
	}

	if id := s.Manager().ID(); !r.watched[id] {
		r.watched[id] = true
		name := s.Name()
		s.Manager().OnFocusChange(func(from, to focus.Control) {
			r.record(TraceFocus, name, scene.IDOf(from), scene.IDOf(to), "")
		})
	}

	r.record(TraceScene, s.Name(), "", s.FocusedID(), fmt.Sprintf("depth=%d", r.director.Depth()))
}

func (r *replayRun) state() (name, focused string, depth int) {
	depth = r.director.Depth()
	if s := r.director.Current(); s != nil {
		return s.Name(), s.FocusedID(), depth
	}
	return "", "", depth
}

func (r *replayRun) record(kind TraceKind, sceneName, from, to, detail string) {
	r.out.Trace = append(r.out.Trace, TraceEntry{
		Step:   r.step,
		Action: r.action,
		Kind:   kind,
		Scene:  sceneName,
		From:   from,
		To:     to,
		Detail: detail,
	})
}

func vector(p [2]float64) entity.Vector {
	return entity.Vector{DX: p[0], DY: p[1]}
}
