package input

import (
	"fmt"

	"github.com/bnema/tvfocus/internal/domain/entity"
)

// EventKind identifies a raw remote event.
type EventKind int

const (
	EventPanStart EventKind = iota
	EventPanMove
	EventPanEnd
	EventClick
	EventMenuButton
	EventPlayPauseButton
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventPanStart:
		return "pan-start"
	case EventPanMove:
		return "pan-move"
	case EventPanEnd:
		return "pan-end"
	case EventClick:
		return "click"
	case EventMenuButton:
		return "menu"
	case EventPlayPauseButton:
		return "play-pause"
	default:
		return "unknown"
	}
}

// Event is one raw input event from the remote. Translation is set for pan
// events (cumulative since the pan began); At is set for clicks.
type Event struct {
	Kind        EventKind
	Translation entity.Vector
	At          entity.Point
}

// String formats the event for traces.
func (e Event) String() string {
	switch e.Kind {
	case EventPanStart, EventPanMove, EventPanEnd:
		return fmt.Sprintf("%s(%.0f,%.0f)", e.Kind, e.Translation.DX, e.Translation.DY)
	case EventClick:
		return fmt.Sprintf("%s(%.0f,%.0f)", e.Kind, e.At.X, e.At.Y)
	default:
		return e.Kind.String()
	}
}
