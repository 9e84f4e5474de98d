package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studialabs/studia/internal/screen"
)

// stubScreen is a minimal screen for router tests.
type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestPushPop(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	r := New(a)

	if r.Depth() != 1 || r.Active() != a {
		t.Fatalf("initial stack wrong: depth=%d", r.Depth())
	}

	r.Push(b)
	if r.Depth() != 2 || r.Active() != b {
		t.Errorf("after push: depth=%d active=%s", r.Depth(), r.Active().Title())
	}
	if !b.inited {
		t.Error("push did not init the screen")
	}

	r.Pop()
	if r.Depth() != 1 || r.Active() != a {
		t.Errorf("after pop: depth=%d", r.Depth())
	}
}

func TestPop_NeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{name: "a"})

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	c := &stubScreen{name: "c"}
	r := New(a)
	r.Push(b)

	r.Replace(c)
	if r.Depth() != 2 || r.Active() != c {
		t.Fatalf("after replace: depth=%d active=%s", r.Depth(), r.Active().Title())
	}
	if !c.inited {
		t.Error("replace did not init the screen")
	}

	// Popping after replace lands on the original base, not b.
	r.Pop()
	if r.Active() != a {
		t.Errorf("after pop: active=%s, want a", r.Active().Title())
	}
}

func TestUpdate_NavigationMessages(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	r := New(a)

	r.Update(PushScreenMsg{Screen: b})
	if r.Active() != b {
		t.Error("PushScreenMsg not handled")
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{name: "c"}})
	if r.Active().Title() != "c" {
		t.Error("ReplaceScreenMsg not handled")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != a {
		t.Error("PopScreenMsg not handled")
	}
}
