package vdom

import (
	"errors"
	"testing"
)

func TestApply_RoundTrip(t *testing.T) {
	type tc struct {
		old, new *Node
	}

	tests := map[string]tc{
		"props change": {
			old: n("r", "root", n("a", "1")),
			new: n("r", "root", n("a", "2")),
		},
		"append child": {
			old: n("", "root", n("", "a")),
			new: n("", "root", n("", "a"), n("", "b")),
		},
		"drop last child": {
			old: n("", "root", n("", "a"), n("", "b")),
			new: n("", "root", n("", "a")),
		},
		"keyed shuffle": {
			old: n("r", "root", n("a", "1"), n("b", "2"), n("c", "3")),
			new: n("r", "root", n("c", "3"), n("a", "1"), n("b", "2")),
		},
		"keyed reversal": {
			old: n("r", "root", n("a", "1"), n("b", "2"), n("c", "3"), n("d", "4")),
			new: n("r", "root", n("d", "4"), n("c", "3"), n("b", "2"), n("a", "1")),
		},
		"move around dead sibling": {
			old: n("r", "root", n("x", "dead"), n("a", "1"), n("b", "2")),
			new: n("r", "root", n("b", "2"), n("a", "1"), n("y", "new")),
		},
		"nested mixed": {
			old: n("r", "root",
				n("panel", "p", n("item1", "1"), n("item2", "2")),
				n("footer", "f"),
			),
			new: n("r", "root",
				n("panel", "p", n("item2", "2"), n("item1", "1"), n("item3", "3")),
			),
		},
		"root replaced": {
			old: n("screen-a", "root", n("x", "1")),
			new: n("screen-b", "root", n("y", "2", n("z", "3"))),
		},
		"reparent rebuild": {
			old: n("r", "root", n("a", "1", n("item", "x")), n("b", "2")),
			new: n("r", "root", n("a", "1"), n("b", "2", n("item", "x"))),
		},
		"grow a subtree": {
			old: n("r", "root"),
			new: n("r", "root", n("a", "1", n("b", "2", n("c", "3")))),
		},
		"shrink to bare root": {
			old: n("r", "root", n("a", "1", n("b", "2"))),
			new: n("r", "root"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			old := buildTree(t, tt.old)
			new := buildTree(t, tt.new)

			target := old.Clone()
			patches := Diff(old, new)
			if err := Apply(target, patches); err != nil {
				t.Fatalf("Apply: %v (patches %+v)", err, patches)
			}
			if !target.Equal(new) {
				t.Errorf("applied tree does not match the target\npatches: %+v", patches)
			}
		})
	}
}

func TestApply_ConvergedDiffIsEmpty(t *testing.T) {
	old := buildTree(t, n("r", "root", n("a", "1"), n("b", "2")))
	new := buildTree(t, n("r", "root", n("b", "2"), n("a", "3"), n("c", "4")))

	target := old.Clone()
	if err := Apply(target, Diff(old, new)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	again := Diff(target, new)
	if len(again) != 0 {
		t.Fatalf("converged trees still diff: %+v", again)
	}
	if err := Apply(target, again); err != nil {
		t.Fatalf("Apply(empty): %v", err)
	}
	if !target.Equal(new) {
		t.Error("tree drifted after applying an empty diff")
	}
}

func TestApply_MissingKeyErrors(t *testing.T) {
	type tc struct {
		patch  Patch
		wantOp Op
	}

	tests := map[string]tc{
		"remove missing": {
			patch:  RemoveNode("ghost"),
			wantOp: OpRemoveNode,
		},
		"update missing": {
			patch:  UpdateProps("ghost", Props{Text: "x"}),
			wantOp: OpUpdateProps,
		},
		"move missing": {
			patch:  MoveNode("ghost", 0),
			wantOp: OpMoveNode,
		},
		"add under missing parent": {
			patch:  AddNode("ghost", 0, n("z", "z")),
			wantOp: OpAddNode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := buildTree(t, n("r", "root", n("a", "1")))
			err := Apply(tree, []Patch{tt.patch})
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			var rerr *ReconciliationError
			if !errors.As(err, &rerr) {
				t.Fatalf("error type = %T, want *ReconciliationError", err)
			}
			if rerr.Op != tt.wantOp || rerr.Key != "ghost" {
				t.Errorf("error = %s %q, want %s \"ghost\"", rerr.Op, rerr.Key, tt.wantOp)
			}
		})
	}
}

func TestApply_DuplicateAdd(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1")))

	err := Apply(tree, []Patch{AddNode("r", 1, n("a", "again"))})
	var rerr *ReconciliationError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *ReconciliationError", err)
	}
	if rerr.Op != OpAddNode || rerr.Key != "a" {
		t.Errorf("error = %s %q, want add-node \"a\"", rerr.Op, rerr.Key)
	}
	if tree.Len() != 2 {
		t.Errorf("Len = %d after failed add, want 2", tree.Len())
	}
}

func TestApply_TransactionalPerPatch(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1"), n("b", "2")))

	err := Apply(tree, []Patch{
		UpdateProps("a", Props{Component: "box", Text: "updated"}),
		RemoveNode("ghost"),
		UpdateProps("b", Props{Component: "box", Text: "never"}),
	})
	if err == nil {
		t.Fatal("expected the batch to fail")
	}

	a, _ := tree.Get("a")
	if a.Props.Text != "updated" {
		t.Errorf("a.Text = %q, want %q (patch before the failure sticks)", a.Props.Text, "updated")
	}
	b, _ := tree.Get("b")
	if b.Props.Text != "2" {
		t.Errorf("b.Text = %q, want %q (patch after the failure never runs)", b.Props.Text, "2")
	}
}

func TestApply_RemoveRoot(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1")))

	if err := Apply(tree, []Patch{RemoveNode("r")}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tree.Root() != nil {
		t.Error("root survived its own removal")
	}
	if tree.Len() != 0 {
		t.Errorf("Len = %d, want 0", tree.Len())
	}
}

func TestApply_MoveRootIsNoOp(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1")))
	want := tree.Clone()

	if err := Apply(tree, []Patch{MoveNode("r", 5)}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !tree.Equal(want) {
		t.Error("moving the root changed the tree")
	}
}

func TestApply_ReplaceRootKeysSubtree(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1")))

	if err := Apply(tree, []Patch{ReplaceRoot(n("", "fresh", n("", "kid")))}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tree.Len())
	}
	if _, ok := tree.Get("0"); !ok {
		t.Error("replacement root did not receive a positional key")
	}
	if _, ok := tree.Get("0.0"); !ok {
		t.Error("replacement child did not receive a positional key")
	}

	if err := Apply(tree, []Patch{ReplaceRoot(nil)}); err != nil {
		t.Fatalf("Apply(nil root): %v", err)
	}
	if tree.Root() != nil || tree.Len() != 0 {
		t.Error("nil replacement should empty the tree")
	}
}

func TestApply_AddPositionClamped(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1")))

	patches := []Patch{
		AddNode("r", 99, n("z", "z")),
		AddNode("r", -5, n("w", "w")),
	}
	if err := Apply(tree, patches); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got := make([]Key, 0, 3)
	for _, child := range tree.Root().Children {
		got = append(got, child.Key)
	}
	want := []Key{"w", "a", "z"}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("children[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApply_DoesNotAliasPatchProps(t *testing.T) {
	tree := buildTree(t, n("r", "root", n("a", "1")))

	attrs := map[string]string{"state": "idle"}
	if err := Apply(tree, []Patch{UpdateProps("a", Props{Attrs: attrs})}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	attrs["state"] = "mutated"
	a, _ := tree.Get("a")
	if a.Props.Attrs["state"] != "idle" {
		t.Errorf("attrs = %v, mutated through the patch's map", a.Props.Attrs)
	}
}
