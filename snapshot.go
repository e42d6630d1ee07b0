package ornata

import (
	"github.com/saren071/ornata-public-sub003/pkg/vdom"
)

// Snapshot converts an element tree into a keyed vdom snapshot. Explicit
// element keys carry over; elements without one receive positional keys.
// Active states are folded into the node's props, so a state flip on an
// otherwise unchanged element diffs as a props update. Returns an error
// when two elements carry the same explicit key.
func Snapshot(root *Element) (*vdom.Tree, error) {
	return vdom.NewTree(vnode(root))
}

// vnode builds the vdom node for one element and its descendants.
func vnode(e *Element) *vdom.Node {
	if e == nil {
		return nil
	}
	n := &vdom.Node{
		Key: vdom.Key(e.key),
		Props: vdom.Props{
			Component: e.component,
			Text:      e.text,
			Attrs:     stateAttrs(e),
		},
	}
	for _, child := range e.children {
		n.Children = append(n.Children, vnode(child))
	}
	return n
}

// stateAttrs encodes the element's active states as a props attribute, nil
// when no states are set. The canonical form is order-independent, so equal
// state sets always compare equal.
func stateAttrs(e *Element) map[string]string {
	if len(e.states) == 0 {
		return nil
	}
	return map[string]string{"states": e.states.Canonical()}
}
