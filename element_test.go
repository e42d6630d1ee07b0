package ornata

import (
	"testing"

	"github.com/saren071/ornata-public-sub003/pkg/style"
)

func TestEl_Defaults(t *testing.T) {
	e := El("box")

	if e.Component() != "box" {
		t.Errorf("Component = %q, want %q", e.Component(), "box")
	}
	if e.Key() != "" {
		t.Errorf("Key = %q, want empty", e.Key())
	}
	if len(e.States()) != 0 {
		t.Errorf("States = %v, want empty", e.States())
	}
	if e.Text() != "" {
		t.Errorf("Text = %q, want empty", e.Text())
	}
	if len(e.Children()) != 0 {
		t.Errorf("Children = %d, want 0", len(e.Children()))
	}
}

func TestEl_Options(t *testing.T) {
	a := El("item")
	b := El("item")
	e := El("list",
		WithKey("sidebar-list"),
		WithText("two items"),
		WithStates(style.StateFocus),
		WithChildren(a, b),
	)

	if e.Key() != "sidebar-list" {
		t.Errorf("Key = %q", e.Key())
	}
	if e.Text() != "two items" {
		t.Errorf("Text = %q", e.Text())
	}
	if !e.States().Has(style.StateFocus) {
		t.Error("States missing focus")
	}
	if len(e.Children()) != 2 || e.Children()[0] != a || e.Children()[1] != b {
		t.Errorf("Children = %v, want [a b] in order", e.Children())
	}
}

func TestEl_WithStatesAccumulates(t *testing.T) {
	e := El("box",
		WithStates(style.StateHover),
		WithStates(style.StateFocus, style.StateHover),
	)

	s := e.States()
	if len(s) != 2 || !s.Has(style.StateHover) || !s.Has(style.StateFocus) {
		t.Errorf("States = %v, want {focus hover}", s)
	}
}

func TestEl_WithChildrenAppends(t *testing.T) {
	first := El("a")
	second := El("b")
	e := El("box", WithChildren(first), WithChildren(second))

	kids := e.Children()
	if len(kids) != 2 || kids[0] != first || kids[1] != second {
		t.Errorf("Children = %v, want both in call order", kids)
	}
}
