package vdom

import "github.com/samber/lo"

// Diff computes the patches that transform the old snapshot into the new
// one. Both trees must be frozen for the duration of the call; emitted
// patches carry copies, never aliases into either tree.
//
// Patches come out in an order safe for sequential application: additions
// (parents before children), moves, and prop updates for surviving nodes
// first, removals of dead nodes last, deepest first. When the root key
// changes, or a surviving key sits under a different parent in each
// snapshot, the diff collapses to a single ReplaceRoot.
func Diff(old, new *Tree) []Patch {
	if new == nil {
		return nil
	}
	if old == nil || old.root == nil || new.root == nil {
		if old != nil && old.root == nil && new.root == nil {
			return nil
		}
		return replaceAll(new)
	}
	if old.root.Key != new.root.Key || reparented(old, new) {
		return replaceAll(new)
	}

	var patches []Patch
	diffNode(old, new.root, &patches)
	removeDead(old.root, new, &patches)
	return patches
}

// replaceAll collapses the diff to one ReplaceRoot carrying a copy of the
// new snapshot.
func replaceAll(new *Tree) []Patch {
	var root *Node
	if new.root != nil {
		root = new.root.deepClone()
	}
	return []Patch{ReplaceRoot(root)}
}

// reparented reports whether any key present in both snapshots sits under a
// different parent in each. Sibling reorders are patchable; parent changes
// are not, and force a rebuild.
func reparented(old, new *Tree) bool {
	for key, parent := range new.parents {
		if _, survives := old.keyMap[key]; !survives {
			continue
		}
		oldParent, ok := old.parents[key]
		if !ok || oldParent != parent {
			return true
		}
	}
	return false
}

// diffNode emits patches for node's props and children, then recurses, so
// additions appear before anything touching the added subtree.
//
// Child positions are judged against a replay of the sibling list, not the
// old tree directly: dead siblings still occupy slots until the trailing
// removals run, so a position that looks settled in the old tree can be
// wrong at its point in the patch sequence. Mirroring the application state
// keys every emitted position to the list the patch will actually meet.
func diffNode(old *Tree, node *Node, patches *[]Patch) {
	var sim []Key
	if oldNode, survives := old.keyMap[node.Key]; survives {
		if !oldNode.Props.Equal(node.Props) {
			*patches = append(*patches, UpdateProps(node.Key, node.Props.clone()))
		}
		sim = lo.Map(oldNode.Children, func(c *Node, _ int) Key { return c.Key })
	}
	for i, child := range node.Children {
		if _, survives := old.keyMap[child.Key]; !survives {
			*patches = append(*patches, AddNode(node.Key, i, child.shallow()))
			sim = insertKey(sim, child.Key, i)
		} else if cur := lo.IndexOf(sim, child.Key); cur != i {
			*patches = append(*patches, MoveNode(child.Key, i))
			sim = moveKey(sim, cur, i)
		}
		diffNode(old, child, patches)
	}
}

// insertKey inserts key at position, clamped to the list bounds.
func insertKey(keys []Key, key Key, position int) []Key {
	if position < 0 {
		position = 0
	}
	if position > len(keys) {
		position = len(keys)
	}
	keys = append(keys, "")
	copy(keys[position+1:], keys[position:])
	keys[position] = key
	return keys
}

// moveKey relocates the key at from to position to, with the same
// remove-then-insert semantics the move patch applies.
func moveKey(keys []Key, from, to int) []Key {
	key := keys[from]
	keys = append(keys[:from], keys[from+1:]...)
	return insertKey(keys, key, to)
}

// removeDead walks the old tree post-order and emits a removal for every key
// the new snapshot no longer has. Children go before their parents, so each
// removal still finds its key attached.
func removeDead(node *Node, new *Tree, patches *[]Patch) {
	for _, child := range node.Children {
		removeDead(child, new, patches)
	}
	if _, survives := new.keyMap[node.Key]; !survives {
		*patches = append(*patches, RemoveNode(node.Key))
	}
}
