package vdom

import (
	"fmt"
	"strconv"
)

// Tree is a keyed snapshot of a component tree: a root node plus an index
// for O(1) key lookup. Every key in the index is reachable exactly once from
// the root, and every node except the root has exactly one parent.
//
// A Tree is not safe for concurrent mutation; snapshots under Diff must be
// frozen for the duration of the call.
type Tree struct {
	root    *Node
	keyMap  map[Key]*Node
	parents map[Key]Key

	// seq counts registrations ever made; it salts generated keys whose
	// positional slot is taken by an explicit key.
	seq uint64
}

// NewTree indexes root into a snapshot, taking ownership of the nodes.
// Nodes without an explicit key are assigned a positional one derived from
// the parent key and sibling index, so identical structures produce
// identical keys across frames. A duplicate explicit key is an error.
func NewTree(root *Node) (*Tree, error) {
	t := &Tree{
		keyMap:  make(map[Key]*Node),
		parents: make(map[Key]Key),
	}
	if root == nil {
		return t, nil
	}
	if err := t.register(root, "", 0, true); err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// register indexes node and its subtree, assigning keys to unkeyed nodes.
func (t *Tree) register(node *Node, parentKey Key, index int, isRoot bool) error {
	t.seq++
	if node.Key == "" {
		node.Key = t.positionalKey(parentKey, index, isRoot)
	} else if _, taken := t.keyMap[node.Key]; taken {
		return fmt.Errorf("duplicate key %q in tree", node.Key)
	}
	t.keyMap[node.Key] = node
	if !isRoot {
		t.parents[node.Key] = parentKey
	}
	for i, child := range node.Children {
		if err := t.register(child, node.Key, i, false); err != nil {
			return err
		}
	}
	return nil
}

// positionalKey derives a key from the node's position. When an explicit key
// occupies the positional slot, a sequence key stands in.
func (t *Tree) positionalKey(parentKey Key, index int, isRoot bool) Key {
	k := Key("0")
	if !isRoot {
		k = parentKey + "." + Key(strconv.Itoa(index))
	}
	for {
		if _, taken := t.keyMap[k]; !taken {
			return k
		}
		k = Key("#" + strconv.FormatUint(t.seq, 10))
		t.seq++
	}
}

// Root returns the snapshot's root node, nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Get returns the node with the given key.
func (t *Tree) Get(key Key) (*Node, bool) {
	n, ok := t.keyMap[key]
	return n, ok
}

// Len returns the number of nodes in the snapshot.
func (t *Tree) Len() int { return len(t.keyMap) }

// Clone deep-copies the snapshot so one side can be mutated, typically by
// Apply, while the other stays frozen.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		keyMap:  make(map[Key]*Node, len(t.keyMap)),
		parents: make(map[Key]Key, len(t.parents)),
		seq:     t.seq,
	}
	if t.root != nil {
		c.root = t.root.deepClone()
		c.index(c.root, "", true)
	}
	return c
}

// index rebuilds the key and parent maps over an already-keyed subtree.
func (t *Tree) index(node *Node, parentKey Key, isRoot bool) {
	t.keyMap[node.Key] = node
	if !isRoot {
		t.parents[node.Key] = parentKey
	}
	for _, child := range node.Children {
		t.index(child, node.Key, false)
	}
}

// unindex drops node and its subtree from the key and parent maps.
func (t *Tree) unindex(node *Node) {
	delete(t.keyMap, node.Key)
	delete(t.parents, node.Key)
	for _, child := range node.Children {
		t.unindex(child)
	}
}

// Equal reports whether two snapshots have the same structure, keys, and
// props.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	return nodesEqual(t.root, o.root)
}

func nodesEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Key != b.Key || !a.Props.Equal(b.Props) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !nodesEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
