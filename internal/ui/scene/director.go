package scene

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/tvfocus/internal/logging"
	"github.com/bnema/tvfocus/internal/ui/focus"
	"github.com/bnema/tvfocus/internal/ui/widget"
)

// Director runs the scene lifecycle on a focus stack: entering a scene
// pushes its manager, exiting pops it. Activating a scene's back control
// exits the scene; activating a control with a goto enters another scene.
type Director struct {
	stack   *focus.Stack
	library map[string]*Definition
	opts    BuildOptions
	scenes  []*Scene

	onChange []func(current *Scene)

	ctx context.Context
}

// NewDirector creates a director over stack. opts.OnActivate still runs for
// every activation, before navigation is handled.
func NewDirector(ctx context.Context, stack *focus.Stack, opts BuildOptions) *Director {
	return &Director{
		stack:   stack,
		library: make(map[string]*Definition),
		opts:    opts,
		ctx:     logging.WithComponent(ctx, "scene"),
	}
}

// Register adds definitions to the library, replacing same-named ones.
func (d *Director) Register(defs ...*Definition) error {
	for _, def := range defs {
		if def == nil {
			continue
		}
		if err := def.Validate(); err != nil {
			return err
		}
		d.library[def.Name] = def
	}
	return nil
}

// Names returns the registered scene names, sorted.
func (d *Director) Names() []string {
	names := make([]string, 0, len(d.library))
	for name := range d.library {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stack returns the focus stack the director drives.
func (d *Director) Stack() *focus.Stack {
	return d.stack
}

// OnChange registers a callback invoked with the current scene after every
// enter, exit or replace. The scene is nil once the last one exits.
func (d *Director) OnChange(fn func(current *Scene)) {
	if fn != nil {
		d.onChange = append(d.onChange, fn)
	}
}

// Current returns the top scene, or nil.
func (d *Director) Current() *Scene {
	if len(d.scenes) == 0 {
		return nil
	}
	return d.scenes[len(d.scenes)-1]
}

// Depth returns the number of live scenes.
func (d *Director) Depth() int {
	return len(d.scenes)
}

// SetOptions replaces the options used for scenes entered from now on.
// Scenes already on the stack keep their managers.
func (d *Director) SetOptions(opts BuildOptions) {
	d.opts = opts
}

// Path returns the names of the active scenes, bottom first.
func (d *Director) Path() []string {
	names := make([]string, len(d.scenes))
	for i, s := range d.scenes {
		names[i] = s.Name()
	}
	return names
}

// Enter builds the named scene and pushes it.
func (d *Director) Enter(ctx context.Context, name string) (*Scene, error) {
	def, ok := d.library[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
	}

	s, err := def.Build(ctx, d.buildOptions())
	if err != nil {
		return nil, fmt.Errorf("enter scene %s: %w", name, err)
	}

	d.scenes = append(d.scenes, s)
	d.stack.Push(s.manager)

	logging.FromContext(d.ctx).Info().
		Str("scene", name).
		Int("depth", len(d.scenes)).
		Msg("entered scene")

	d.notify()
	return s, nil
}

// Exit pops the top scene and returns it, or nil when there is none.
func (d *Director) Exit(_ context.Context) *Scene {
	log := logging.FromContext(d.ctx)

	top := d.Current()
	if top == nil {
		return nil
	}
	if d.stack.Current() != top.manager {
		log.Warn().Str("scene", top.Name()).Msg("focus stack top is not the current scene, refusing to exit")
		return nil
	}

	d.stack.Pop()
	d.scenes[len(d.scenes)-1] = nil
	d.scenes = d.scenes[:len(d.scenes)-1]

	log.Info().Str("scene", top.Name()).Int("depth", len(d.scenes)).Msg("exited scene")

	d.notify()
	return top
}

// Replace registers def and, when the top scene has the same name, rebuilds
// it in place. Focus is kept on the control with the same id if it still
// exists. Scenes further down keep their built state.
func (d *Director) Replace(ctx context.Context, def *Definition) (*Scene, error) {
	if err := d.Register(def); err != nil {
		return nil, err
	}

	top := d.Current()
	if top == nil || top.Name() != def.Name {
		return nil, nil
	}

	focusedID := top.FocusedID()
	if d.Exit(ctx) == nil {
		return nil, fmt.Errorf("replace scene %s: top scene could not exit", def.Name)
	}

	s, err := d.Enter(ctx, def.Name)
	if err != nil {
		return nil, err
	}
	if w, ok := s.Widget(focusedID); ok {
		s.manager.SetFocusedNode(w)
	}

	logging.FromContext(d.ctx).Info().Str("scene", def.Name).Msg("reloaded scene")
	return s, nil
}

func (d *Director) buildOptions() BuildOptions {
	opts := d.opts
	opts.OnActivate = d.handleActivate
	return opts
}

func (d *Director) handleActivate(s *Scene, w widget.Widget) {
	if d.opts.OnActivate != nil {
		d.opts.OnActivate(s, w)
	}

	switch {
	case s.IsBack(w):
		if d.Current() == s {
			d.Exit(d.ctx)
		}
	case s.GotoFor(w) != "":
		if _, err := d.Enter(d.ctx, s.GotoFor(w)); err != nil {
			logging.FromContext(d.ctx).Error().Err(err).Str("control", w.ID()).Msg("goto failed")
		}
	}
}

func (d *Director) notify() {
	current := d.Current()
	for _, fn := range d.onChange {
		fn(current)
	}
}
