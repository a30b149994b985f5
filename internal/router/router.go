// Package router manages the stack of TUI screens.
package router

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is one full-area view: home, play, summary.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHint is a footer key-binding hint.
type KeyHint struct {
	Key         string
	Description string
}

// KeyHintProvider is an optional interface for screens with custom footer hints.
type KeyHintProvider interface {
	KeyHints() []KeyHint
}

// PushMsg requests the router to push a new screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg requests the router to pop the current screen off the stack.
type PopMsg struct{}

// Router is a stack of screens; the top one receives messages and renders.
type Router struct {
	stack []Screen
}

// New creates a router with the given initial screen.
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if only the root remains.
func (r *Router) Pop() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Active returns the top screen on the stack.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return r.Push(msg.Screen)
	case PopMsg:
		r.Pop()
		return nil
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
