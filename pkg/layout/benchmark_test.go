package layout

import (
	"testing"

	"github.com/saren071/ornata-public-sub003/pkg/backend"
)

// fanout builds a tree where every container has n children down to the
// given depth, alternating row and column direction per level. Children
// grow equally, so every rect depends on a flex pass.
func fanout(n, depth int) *Node {
	root := NewNode(DefaultStyle())
	var build func(parent *Node, depth int, row bool)
	build = func(parent *Node, depth int, row bool) {
		if depth == 0 {
			return
		}
		dir := Column
		if row {
			dir = Row
		}
		parent.Style.Direction = dir
		for i := 0; i < n; i++ {
			child := NewNode(DefaultStyle())
			child.Style.FlexGrow = 1
			parent.AddChild(child)
			build(child, depth-1, !row)
		}
	}
	build(root, depth, true)
	return root
}

// wideRow builds a single non-wrapping row of fixed-size cells.
func wideRow(cells int) *Node {
	root := NewNode(DefaultStyle())
	root.Style.Direction = Row
	root.Style.Wrap = WrapNoWrap
	for i := 0; i < cells; i++ {
		cell := NewNode(DefaultStyle())
		cell.Style.Width = Fixed(8)
		cell.Style.Height = Fixed(4)
		root.AddChild(cell)
	}
	return root
}

// flagAll marks the whole tree dirty so a pass cannot take the clean-subtree
// skip anywhere.
func flagAll(n *Node) {
	n.SetDirty(true)
	for _, c := range n.Children {
		flagAll(c)
	}
}

// benchFullRecalc measures complete passes over an all-dirty tree.
func benchFullRecalc(b *testing.B, root *Node, w, h int) {
	Calculate(root, w, h)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flagAll(root)
		Calculate(root, w, h)
	}
}

func BenchmarkCalculate_SmallTree(b *testing.B) {
	benchFullRecalc(b, fanout(3, 3), 120, 40) // 40 nodes
}

func BenchmarkCalculate_LargeTree(b *testing.B) {
	benchFullRecalc(b, fanout(4, 4), 200, 60) // 341 nodes
}

func BenchmarkCalculate_WideRow(b *testing.B) {
	benchFullRecalc(b, wideRow(512), 4096, 64)
}

func BenchmarkCalculate_DirtyLeafVsFullTree(b *testing.B) {
	b.Run("full", func(b *testing.B) {
		benchFullRecalc(b, fanout(4, 4), 200, 60)
	})

	b.Run("leaf", func(b *testing.B) {
		root := fanout(4, 4)
		leaf := root
		for len(leaf.Children) > 0 {
			leaf = leaf.Children[0]
		}
		Calculate(root, 200, 60)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			leaf.MarkDirty()
			Calculate(root, 200, 60)
		}
	})
}

func BenchmarkCalculate_Allocations(b *testing.B) {
	root := wideRow(16)
	Calculate(root, 160, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flagAll(root)
		Calculate(root, 160, 8)
	}
}

func BenchmarkEngine_CachedPass(b *testing.B) {
	engine := NewEngine()
	root := wideRow(64)
	bounds := NewRect(0, 0, 800, 800)
	engine.Calculate(root, bounds, backend.Terminal)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Calculate(root, bounds, backend.Terminal)
	}
}

func BenchmarkEngine_Recompute(b *testing.B) {
	engine := NewEngine()
	root := wideRow(64)
	bounds := NewRect(0, 0, 800, 800)
	engine.Calculate(root, bounds, backend.Terminal)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flagAll(root)
		engine.Calculate(root, bounds, backend.Terminal)
	}
}
