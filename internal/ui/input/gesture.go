package input

import (
	"context"

	"github.com/bnema/tvfocus/internal/domain/entity"
	"github.com/bnema/tvfocus/internal/logging"
	"github.com/bnema/tvfocus/internal/ui/focus"
)

//go:generate mockgen -source=gesture.go -destination=mocks/mock_target.go -package=mocks

// Target consumes remote events. *focus.Manager implements it.
type Target interface {
	PanStart(translation entity.Vector)
	PanMove(translation entity.Vector)
	PanEnd(translation entity.Vector)
	Click(at entity.Point)
	MenuButton()
	PlayPauseButton()
}

var _ Target = (*focus.Manager)(nil)

// Resolver returns the live target, or nil when there is none.
type Resolver func() Target

// StackResolver resolves to the current manager of stack.
func StackResolver(stack *focus.Stack) Resolver {
	return func() Target {
		if m := stack.Current(); m != nil {
			return m
		}
		return nil
	}
}

// Dispatcher routes remote events to whichever target is live when the
// event arrives.
type Dispatcher struct {
	resolve Resolver

	// Observer for every delivered event.
	onDispatch func(Event)

	ctx context.Context
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(ctx context.Context, resolve Resolver) *Dispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating gesture dispatcher")

	return &Dispatcher{
		resolve: resolve,
		ctx:     logging.WithComponent(ctx, "input"),
	}
}

// SetOnDispatch sets a callback invoked after each delivered event.
func (d *Dispatcher) SetOnDispatch(fn func(Event)) {
	d.onDispatch = fn
}

// Dispatch delivers ev to the live target and reports whether one existed.
func (d *Dispatcher) Dispatch(ev Event) bool {
	log := logging.FromContext(d.ctx)

	var target Target
	if d.resolve != nil {
		target = d.resolve()
	}
	if target == nil {
		log.Debug().Str("event", ev.Kind.String()).Msg("no live target, dropping event")
		return false
	}

	switch ev.Kind {
	case EventPanStart:
		target.PanStart(ev.Translation)
	case EventPanMove:
		target.PanMove(ev.Translation)
	case EventPanEnd:
		target.PanEnd(ev.Translation)
	case EventClick:
		target.Click(ev.At)
	case EventMenuButton:
		target.MenuButton()
	case EventPlayPauseButton:
		target.PlayPauseButton()
	default:
		log.Warn().Int("kind", int(ev.Kind)).Msg("unknown event kind")
		return false
	}

	log.Trace().Str("event", ev.String()).Msg("dispatched event")
	if d.onDispatch != nil {
		d.onDispatch(ev)
	}
	return true
}

// OnPanStart delivers the start of a pan gesture.
func (d *Dispatcher) OnPanStart(translation entity.Vector) {
	d.Dispatch(Event{Kind: EventPanStart, Translation: translation})
}

// OnPanMove delivers a pan update.
func (d *Dispatcher) OnPanMove(translation entity.Vector) {
	d.Dispatch(Event{Kind: EventPanMove, Translation: translation})
}

// OnPanEnd delivers the end of a pan gesture.
func (d *Dispatcher) OnPanEnd(translation entity.Vector) {
	d.Dispatch(Event{Kind: EventPanEnd, Translation: translation})
}

// OnClick delivers a click/select press.
func (d *Dispatcher) OnClick(at entity.Point) {
	d.Dispatch(Event{Kind: EventClick, At: at})
}

// OnMenuButton delivers a menu button press.
func (d *Dispatcher) OnMenuButton() {
	d.Dispatch(Event{Kind: EventMenuButton})
}

// OnPlayPauseButton delivers a play/pause button press.
func (d *Dispatcher) OnPlayPauseButton() {
	d.Dispatch(Event{Kind: EventPlayPauseButton})
}
