package vdom

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/saren071/ornata-public-sub003/internal/debug"
)

// Apply mutates the snapshot in place, replaying patches in order. The first
// failing patch stops the batch: it has no effect itself, earlier patches
// remain applied, and the returned error names the operation and key. A
// caller recovering from a failed batch typically rebuilds through a
// ReplaceRoot diff.
func Apply(tree *Tree, patches []Patch) error {
	for _, p := range patches {
		if err := applyPatch(tree, p); err != nil {
			debug.Log("vdom apply failed",
				"op", p.Op.String(),
				"key", string(p.Key))
			return err
		}
	}
	return nil
}

func applyPatch(tree *Tree, p Patch) error {
	switch p.Op {
	case OpAddNode:
		return applyAdd(tree, p)
	case OpRemoveNode:
		return applyRemove(tree, p)
	case OpUpdateProps:
		return applyUpdate(tree, p)
	case OpMoveNode:
		return applyMove(tree, p)
	case OpReplaceRoot:
		return applyReplace(tree, p)
	default:
		return fmt.Errorf("unknown patch op %d", p.Op)
	}
}

func applyAdd(tree *Tree, p Patch) error {
	if p.Node == nil || p.Node.Key == "" {
		return fmt.Errorf("add-node: patch carries no keyed node")
	}
	parent, ok := tree.keyMap[p.ParentKey]
	if !ok {
		return missingKey(OpAddNode, p.ParentKey)
	}
	if _, taken := tree.keyMap[p.Node.Key]; taken {
		return duplicateKey(OpAddNode, p.Node.Key)
	}

	node := p.Node.shallow()
	parent.Children = insertChild(parent.Children, node, p.Position)
	tree.keyMap[node.Key] = node
	tree.parents[node.Key] = p.ParentKey
	tree.seq++
	return nil
}

func applyRemove(tree *Tree, p Patch) error {
	node, ok := tree.keyMap[p.Key]
	if !ok {
		return missingKey(OpRemoveNode, p.Key)
	}
	if node == tree.root {
		tree.root = nil
		clear(tree.keyMap)
		clear(tree.parents)
		return nil
	}

	parent := tree.keyMap[tree.parents[p.Key]]
	idx := lo.IndexOf(parent.Children, node)
	parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
	tree.unindex(node)
	return nil
}

func applyUpdate(tree *Tree, p Patch) error {
	node, ok := tree.keyMap[p.Key]
	if !ok {
		return missingKey(OpUpdateProps, p.Key)
	}
	node.Props = p.Props.clone()
	return nil
}

func applyMove(tree *Tree, p Patch) error {
	node, ok := tree.keyMap[p.Key]
	if !ok {
		return missingKey(OpMoveNode, p.Key)
	}
	if node == tree.root {
		// The root has no siblings to reorder among.
		return nil
	}

	parent := tree.keyMap[tree.parents[p.Key]]
	idx := lo.IndexOf(parent.Children, node)
	children := append(parent.Children[:idx], parent.Children[idx+1:]...)
	parent.Children = insertChild(children, node, p.Position)
	return nil
}

func applyReplace(tree *Tree, p Patch) error {
	var root *Node
	if p.Node != nil {
		root = p.Node.deepClone()
	}
	replacement, err := NewTree(root)
	if err != nil {
		return err
	}
	tree.root = replacement.root
	tree.keyMap = replacement.keyMap
	tree.parents = replacement.parents
	tree.seq += replacement.seq
	return nil
}

// insertChild inserts node at position, clamped to the sibling list bounds.
func insertChild(children []*Node, node *Node, position int) []*Node {
	if position < 0 {
		position = 0
	}
	if position > len(children) {
		position = len(children)
	}
	children = append(children, nil)
	copy(children[position+1:], children[position:])
	children[position] = node
	return children
}
