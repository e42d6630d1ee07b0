package vdom

import "maps"

// Key identifies a node within a tree snapshot. Keys are unique per tree and
// stable across snapshots for nodes the caller keys explicitly.
type Key string

// Props is the renderable content of a node, compared by value during
// diffing. Component names the element kind, Text carries leaf content, and
// Attrs holds anything else the renderer consumes.
type Props struct {
	Component string
	Text      string
	Attrs     map[string]string
}

// Equal reports whether two prop bags hold the same values.
func (p Props) Equal(o Props) bool {
	return p.Component == o.Component &&
		p.Text == o.Text &&
		maps.Equal(p.Attrs, o.Attrs)
}

func (p Props) clone() Props {
	p.Attrs = maps.Clone(p.Attrs)
	return p
}

// Node is one element of a snapshot: a key, a prop bag, and ordered
// children.
type Node struct {
	Key      Key
	Props    Props
	Children []*Node
}

// shallow returns a childless copy, the form AddNode patches carry.
func (n *Node) shallow() *Node {
	return &Node{Key: n.Key, Props: n.Props.clone()}
}

// deepClone copies the node and its entire subtree.
func (n *Node) deepClone() *Node {
	c := n.shallow()
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.deepClone()
		}
	}
	return c
}
