package vdom

// Op discriminates the patch variants.
type Op uint8

const (
	OpAddNode Op = iota
	OpRemoveNode
	OpUpdateProps
	OpMoveNode
	OpReplaceRoot
)

// String returns the operation's wire name.
func (op Op) String() string {
	switch op {
	case OpAddNode:
		return "add-node"
	case OpRemoveNode:
		return "remove-node"
	case OpUpdateProps:
		return "update-props"
	case OpMoveNode:
		return "move-node"
	case OpReplaceRoot:
		return "replace-root"
	default:
		return "unknown"
	}
}

// Patch is one reconciliation step. Op selects the variant; the remaining
// fields carry its payload as documented on the constructors.
type Patch struct {
	Op        Op
	Key       Key   // subject node (set for every op except ReplaceRoot)
	ParentKey Key   // AddNode: parent to insert under
	Position  int   // AddNode, MoveNode: target sibling index
	Props     Props // UpdateProps: replacement props
	Node      *Node // AddNode: childless node; ReplaceRoot: full subtree
}

// AddNode inserts node under parentKey at the given sibling position. The
// node travels childless; descendants arrive as their own AddNode patches,
// parents first.
func AddNode(parentKey Key, position int, node *Node) Patch {
	return Patch{
		Op:        OpAddNode,
		Key:       node.Key,
		ParentKey: parentKey,
		Position:  position,
		Node:      node,
	}
}

// RemoveNode detaches the node with the given key along with its subtree.
func RemoveNode(key Key) Patch {
	return Patch{Op: OpRemoveNode, Key: key}
}

// UpdateProps replaces the props of the node with the given key.
func UpdateProps(key Key, props Props) Patch {
	return Patch{Op: OpUpdateProps, Key: key, Props: props}
}

// MoveNode reorders the node to a new index among its siblings.
func MoveNode(key Key, position int) Patch {
	return Patch{Op: OpMoveNode, Key: key, Position: position}
}

// ReplaceRoot discards the tree and installs node, with its subtree, as the
// new root. A nil node empties the tree.
func ReplaceRoot(node *Node) Patch {
	return Patch{Op: OpReplaceRoot, Node: node}
}
