package ornata

import (
	"github.com/saren071/ornata-public-sub003/pkg/style"
)

// Element is one node in a declarative frame description: a component name
// the cascade resolves styles for, the states active on it, optional text
// content, and child elements. Build one fresh per frame with El; the
// pipeline never mutates it and never holds it past the frame.
type Element struct {
	component string
	key       string
	states    style.StateSet
	text      string
	children  []*Element
}

// Option is a constructor-time setting applied by El.
type Option func(*Element)

// El creates an element for the named component with the given options.
func El(component string, opts ...Option) *Element {
	e := &Element{component: component}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithKey sets an explicit reconciliation key. Elements without one are
// keyed by their position in the tree, which is stable only while siblings
// keep their order; give lists of reorderable children explicit keys.
func WithKey(key string) Option {
	return func(e *Element) {
		e.key = key
	}
}

// WithStates marks the given state flags active on the element.
func WithStates(flags ...style.StateFlag) Option {
	return func(e *Element) {
		if e.states == nil {
			e.states = style.States(flags...)
			return
		}
		for _, f := range flags {
			e.states = e.states.With(f)
		}
	}
}

// WithText sets the element's text content. A childless element with text
// measures as that text's cell dimensions when its size is auto.
func WithText(content string) Option {
	return func(e *Element) {
		e.text = content
	}
}

// WithChildren appends child elements.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.children = append(e.children, children...)
	}
}

// Component returns the component name styles are resolved under.
func (e *Element) Component() string {
	return e.component
}

// Key returns the explicit reconciliation key, or "" when positional.
func (e *Element) Key() string {
	return e.key
}

// States returns the active state flags. Callers must not mutate the set.
func (e *Element) States() style.StateSet {
	return e.states
}

// Text returns the text content, or "" for a pure container.
func (e *Element) Text() string {
	return e.text
}

// Children returns the child elements. Callers must not mutate the slice.
func (e *Element) Children() []*Element {
	return e.children
}
