package focus

import (
	"context"
	"sync"

	"github.com/bnema/tvfocus/internal/logging"
)

// Stack nests managers as scenes come and go. The top manager is the only
// enabled one. Like Manager, a Stack belongs to the UI loop.
type Stack struct {
	managers []*Manager
	ctx      context.Context
}

// NewStack creates an empty stack.
func NewStack(ctx context.Context) *Stack {
	return &Stack{ctx: logging.WithComponent(ctx, "focus-stack")}
}

var (
	sharedStack     *Stack
	sharedStackOnce sync.Once
)

// SharedStack returns the process-wide stack. Prefer passing a Stack
// explicitly; this exists for code that has no way to receive one.
func SharedStack() *Stack {
	sharedStackOnce.Do(func() {
		sharedStack = NewStack(context.Background())
	})
	return sharedStack
}

// Push disables the current top and makes m the enabled top.
func (s *Stack) Push(m *Manager) {
	if m == nil {
		return
	}
	if top := s.Current(); top != nil {
		top.SetEnabled(false)
	}
	s.managers = append(s.managers, m)
	m.SetEnabled(true)

	logging.FromContext(s.ctx).Debug().
		Str("manager_id", m.ID()).
		Int("depth", len(s.managers)).
		Msg("pushed focus manager")
}

// Pop removes and returns the top manager, disabled, and enables the one
// below it. A touch the popped manager handed to a control is released.
// It returns nil on an empty stack.
func (s *Stack) Pop() *Manager {
	n := len(s.managers)
	if n == 0 {
		return nil
	}

	popped := s.managers[n-1]
	s.managers[n-1] = nil
	s.managers = s.managers[:n-1]
	popped.SetEnabled(false)

	if top := s.Current(); top != nil {
		top.SetEnabled(true)
	}

	logging.FromContext(s.ctx).Debug().
		Str("manager_id", popped.ID()).
		Int("depth", len(s.managers)).
		Msg("popped focus manager")

	return popped
}

// Current returns the top manager, or nil.
func (s *Stack) Current() *Manager {
	if len(s.managers) == 0 {
		return nil
	}
	return s.managers[len(s.managers)-1]
}

// Len returns the number of managers on the stack.
func (s *Stack) Len() int {
	return len(s.managers)
}
