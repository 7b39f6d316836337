// Package mainloop serializes work onto the UI loop.
//
// Focus managers and the scene stack are owned by the bubbletea update
// loop. Goroutines such as file watchers must not touch them directly;
// they post tasks that the loop runs between input events.
package mainloop

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// TaskMsg carries a posted task into the bubbletea update loop.
type TaskMsg struct {
	Fn func()
}

// Run executes msg if it is a TaskMsg and reports whether it was one.
// Models call it first thing in Update.
func Run(msg tea.Msg) bool {
	task, ok := msg.(TaskMsg)
	if !ok {
		return false
	}
	if task.Fn != nil {
		task.Fn()
	}
	return true
}

// ProgramPoster returns a post function that hands tasks to a running
// bubbletea program.
func ProgramPoster(send func(tea.Msg)) func(func()) {
	return func(fn func()) {
		send(TaskMsg{Fn: fn})
	}
}

// Coalescer merges bursts of same-key tasks: only the latest task posted
// for a key before the loop gets to it runs.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	closed    bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

// Post schedules fn under key, replacing a not-yet-run task with the same
// key. Safe for concurrent use.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() {
		c.mu.Lock()
		if c.closed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// Pending returns the number of keys waiting to run.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Close drops queued work and ignores later posts.
func (c *Coalescer) Close() {
	c.mu.Lock()
	c.closed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
