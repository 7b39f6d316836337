package scene

import (
	"context"
	"fmt"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/logging"
	"github.com/bnema/tvfocus/internal/ui/focus"
	"github.com/bnema/tvfocus/internal/ui/widget"
)

// BuildOptions carries the defaults applied where a definition is silent,
// and the activation hook.
type BuildOptions struct {
	PanThreshold    float64
	PlayPauseAction focus.PlayPauseAction
	// ArmPan re-enables pan tracking after the first control is focused.
	ArmPan bool

	// OnActivate runs after any widget of the scene is activated.
	OnActivate func(s *Scene, w widget.Widget)
}

// DefaultBuildOptions returns the engine defaults.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		PanThreshold: focus.DefaultPanThreshold,
		ArmPan:       true,
	}
}

// Scene is a built definition: live widgets and their manager.
type Scene struct {
	def        *Definition
	manager    *focus.Manager
	widgets    []widget.Widget
	containers []*widget.Container
	byID       map[string]widget.Widget
}

// Build creates the widgets and manager of d and applies initial focus.
func (d *Definition) Build(ctx context.Context, opts BuildOptions) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	action := opts.PlayPauseAction
	if d.PlayPauseAction != "" {
		action, _ = focus.ParsePlayPauseAction(d.PlayPauseAction)
	}
	threshold := opts.PanThreshold
	if d.PanThreshold != nil {
		threshold = *d.PanThreshold
	}
	armPan := opts.ArmPan
	if d.ArmPan != nil {
		armPan = *d.ArmPan
	}

	ctx = logging.WithScene(ctx, d.Name)
	s := &Scene{
		def:  d,
		byID: make(map[string]widget.Widget, len(d.Controls)),
		manager: focus.NewManager(ctx,
			focus.WithPlayPauseAction(action),
			focus.WithPanThreshold(threshold),
		),
	}

	containers := make(map[string]*widget.Container, len(d.Containers))
	for _, cd := range d.Containers {
		c := widget.NewContainer(cd.ID, entity.Rect{X: cd.X, Y: cd.Y, W: cd.W, H: cd.H})
		containers[cd.ID] = c
		s.containers = append(s.containers, c)
	}

	for _, cd := range d.Controls {
		w, err := newWidget(cd)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", d.Name, err)
		}
		if cd.Container != "" {
			if _, err := containers[cd.Container].Add(w); err != nil {
				return nil, fmt.Errorf("scene %s: %w", d.Name, err)
			}
		}

		w.OnActivate(func() {
			if opts.OnActivate != nil {
				opts.OnActivate(s, w)
			}
		})

		s.widgets = append(s.widgets, w)
		s.byID[cd.ID] = w
		s.manager.AddControl(w)
	}

	if d.Back != "" {
		s.manager.SetBackControl(s.byID[d.Back])
	}

	if w, ok := s.byID[d.Initial]; ok {
		s.manager.SetFocusedNode(w)
	}
	if s.manager.FocusedControl() == nil {
		s.manager.FindFirstFocusableControl()
		if armPan {
			s.manager.SetPanControlActive(false)
		}
	}

	logging.FromContext(ctx).Debug().
		Str("manager_id", s.manager.ID()).
		Int("controls", len(s.widgets)).
		Str("focused", s.FocusedID()).
		Msg("built scene")

	return s, nil
}

func newWidget(cd ControlDef) (widget.Widget, error) {
	kind, err := widget.ParseKind(cd.Kind)
	if err != nil {
		return nil, fmt.Errorf("control %s: %w: %q", cd.ID, ErrUnknownKind, cd.Kind)
	}

	label := cd.Label
	if label == "" {
		label = cd.ID
	}
	bounds := entity.Rect{X: cd.X, Y: cd.Y, W: cd.W, H: cd.H}

	var w widget.Widget
	switch kind {
	case widget.KindButton:
		w = widget.NewButton(cd.ID, label, bounds)
	case widget.KindSlider:
		sl := widget.NewSlider(cd.ID, label, bounds)
		if cd.Value != nil {
			sl.SetValue(*cd.Value)
		}
		w = sl
	case widget.KindTextField:
		tf := widget.NewTextField(cd.ID, label, bounds)
		tf.SetText(cd.Text)
		w = tf
	}

	if cd.Enabled != nil {
		w.SetEnabled(*cd.Enabled)
	}
	return w, nil
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.def.Name
}

// Definition returns the definition the scene was built from.
func (s *Scene) Definition() *Definition {
	return s.def
}

// Manager returns the scene's focus manager.
func (s *Scene) Manager() *focus.Manager {
	return s.manager
}

// Widgets returns the scene widgets in definition order.
func (s *Scene) Widgets() []widget.Widget {
	return s.widgets
}

// Containers returns the scene containers.
func (s *Scene) Containers() []*widget.Container {
	return s.containers
}

// Widget looks up a widget by id.
func (s *Scene) Widget(id string) (widget.Widget, bool) {
	w, ok := s.byID[id]
	return w, ok
}

// IsBack reports whether w is the scene's back control.
func (s *Scene) IsBack(w widget.Widget) bool {
	return s.def.Back != "" && w.ID() == s.def.Back
}

// GotoFor returns the scene entered when w is activated, if any.
func (s *Scene) GotoFor(w widget.Widget) string {
	for _, cd := range s.def.Controls {
		if cd.ID == w.ID() {
			return cd.Goto
		}
	}
	return ""
}

// FocusedID returns the id of the focused widget, or "".
func (s *Scene) FocusedID() string {
	return IDOf(s.manager.FocusedNode())
}

// IDOf returns the widget id of a focus node or control, or "".
func IDOf(node any) string {
	if p, ok := node.(*focus.Proxy); ok {
		node = p.Control()
	}
	if w, ok := node.(widget.Widget); ok {
		return w.ID()
	}
	return ""
}
