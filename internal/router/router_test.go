package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen records whether Init ran and echoes its name.
type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string        { return s.name }
func (s *stubScreen) Title() string                        { return s.name }

func TestRouter_PushPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 || r.Active() != Screen(root) {
		t.Fatal("router should start with the root screen active")
	}

	child := &stubScreen{name: "child"}
	r.Update(PushMsg{Screen: child})
	if !child.inited {
		t.Error("pushed screen's Init was not called")
	}
	if r.Active() != Screen(child) {
		t.Error("pushed screen should be active")
	}

	r.Update(PopMsg{})
	if r.Active() != Screen(root) {
		t.Error("pop should return to the root")
	}

	// The root never pops.
	r.Update(PopMsg{})
	if r.Depth() != 1 {
		t.Errorf("depth = %d after popping root, want 1", r.Depth())
	}
}

func TestRouter_ViewRendersActive(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	r.Update(PushMsg{Screen: &stubScreen{name: "top"}})
	if got := r.View(80, 24); got != "top" {
		t.Errorf("View = %q, want the active screen's output", got)
	}
}
