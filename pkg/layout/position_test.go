package layout

import "testing"

func TestCalculate_PositionAbsolute_Insets(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(50)
	root.style.Direction = Row

	// Static sibling flows as if the absolute child did not exist.
	static := newTestNode(DefaultStyle())
	static.style.Width = Fixed(30)
	static.style.Height = Fixed(50)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(10)
	abs.style.Top = Fixed(5)
	abs.style.Width = Fixed(20)
	abs.style.Height = Fixed(10)

	root.AddChild(abs, static)
	Calculate(root, 200, 200)

	want := NewRect(10, 5, 20, 10)
	if abs.layout.Rect != want {
		t.Errorf("absolute child rect = %+v, want %+v", abs.layout.Rect, want)
	}
	if static.layout.Rect.X != 0 {
		t.Errorf("static sibling X = %d, want 0 (absolute child bypasses flow)",
			static.layout.Rect.X)
	}
}

func TestCalculate_PositionAbsolute_RightBottom(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(50)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Right = Fixed(10)
	abs.style.Bottom = Fixed(5)
	abs.style.Width = Fixed(20)
	abs.style.Height = Fixed(10)

	root.AddChild(abs)
	Calculate(root, 200, 200)

	want := NewRect(70, 35, 20, 10)
	if abs.layout.Rect != want {
		t.Errorf("rect = %+v, want %+v", abs.layout.Rect, want)
	}
}

func TestCalculate_PositionAbsolute_InsetDerivedSize(t *testing.T) {
	// Opposing insets with auto dimensions derive the size.
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(50)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(10)
	abs.style.Right = Fixed(10)
	abs.style.Top = Fixed(5)
	abs.style.Bottom = Fixed(5)

	root.AddChild(abs)
	Calculate(root, 200, 200)

	want := NewRect(10, 5, 80, 40)
	if abs.layout.Rect != want {
		t.Errorf("rect = %+v, want %+v", abs.layout.Rect, want)
	}
}

func TestCalculate_PositionAbsolute_NearestPositionedAncestor(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(100)
	root.style.Direction = Row

	spacer := newTestNode(DefaultStyle())
	spacer.style.Width = Fixed(30)
	spacer.style.Height = Fixed(100)

	anchor := newTestNode(DefaultStyle())
	anchor.style.Position = PositionRelative
	anchor.style.Width = Fixed(50)
	anchor.style.Height = Fixed(100)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(5)
	abs.style.Top = Fixed(5)
	abs.style.Width = Fixed(10)
	abs.style.Height = Fixed(10)

	anchor.AddChild(abs)
	root.AddChild(spacer, anchor)
	Calculate(root, 200, 200)

	// Insets resolve against the anchor's border box at (30, 0).
	want := NewRect(35, 5, 10, 10)
	if abs.layout.Rect != want {
		t.Errorf("rect = %+v, want %+v", abs.layout.Rect, want)
	}
}

func TestCalculate_PositionAbsolute_FallsBackToRoot(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(100)

	// Static, so it does not establish a containing rect.
	mid := newTestNode(DefaultStyle())
	mid.style.Width = Fixed(50)
	mid.style.Height = Fixed(50)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(60)
	abs.style.Top = Fixed(60)
	abs.style.Width = Fixed(10)
	abs.style.Height = Fixed(10)

	mid.AddChild(abs)
	root.AddChild(mid)
	Calculate(root, 200, 200)

	// Outside mid's 50x50 box but valid against the root.
	want := NewRect(60, 60, 10, 10)
	if abs.layout.Rect != want {
		t.Errorf("rect = %+v, want %+v", abs.layout.Rect, want)
	}
}

func TestCalculate_PositionAbsolute_PercentInsets(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(200)
	root.style.Height = Fixed(100)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Percent(10)
	abs.style.Top = Percent(10)
	abs.style.Width = Percent(50)
	abs.style.Height = Fixed(10)

	root.AddChild(abs)
	Calculate(root, 300, 300)

	want := NewRect(20, 10, 100, 10)
	if abs.layout.Rect != want {
		t.Errorf("rect = %+v, want %+v", abs.layout.Rect, want)
	}
}

func TestCalculate_PositionAbsolute_Margin(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(50)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(10)
	abs.style.Top = Fixed(0)
	abs.style.Width = Fixed(20)
	abs.style.Height = Fixed(10)
	abs.style.Margin = EdgeAll(5)

	root.AddChild(abs)
	Calculate(root, 200, 200)

	want := NewRect(15, 5, 20, 10)
	if abs.layout.Rect != want {
		t.Errorf("rect = %+v, want %+v", abs.layout.Rect, want)
	}
}

func TestCalculate_PositionRelative_Offset(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(50)
	root.style.Direction = Row

	before := newTestNode(DefaultStyle())
	before.style.Width = Fixed(30)
	before.style.Height = Fixed(50)

	rel := newTestNode(DefaultStyle())
	rel.style.Position = PositionRelative
	rel.style.Left = Fixed(5)
	rel.style.Top = Fixed(3)
	rel.style.Width = Fixed(40)
	rel.style.Height = Fixed(50)

	after := newTestNode(DefaultStyle())
	after.style.Width = Fixed(20)
	after.style.Height = Fixed(50)

	root.AddChild(before, rel, after)
	Calculate(root, 200, 200)

	// Flows to (30, 0), then shifts by the insets.
	if rel.layout.Rect.X != 35 || rel.layout.Rect.Y != 3 {
		t.Errorf("relative child at (%d, %d), want (35, 3)",
			rel.layout.Rect.X, rel.layout.Rect.Y)
	}
	// The following sibling keeps its flow position.
	if after.layout.Rect.X != 70 {
		t.Errorf("next sibling X = %d, want 70 (unaffected by relative shift)",
			after.layout.Rect.X)
	}
}

func TestCalculate_PositionRelative_InsetPrecedence(t *testing.T) {
	type tc struct {
		left, right, top, bottom Value
		wantX, wantY             int
	}

	tests := map[string]tc{
		"right and bottom shift negative": {
			left: Auto(), right: Fixed(4), top: Auto(), bottom: Fixed(2),
			wantX: -4, wantY: -2,
		},
		"left wins over right": {
			left: Fixed(5), right: Fixed(4), top: Auto(), bottom: Auto(),
			wantX: 5, wantY: 0,
		},
		"top wins over bottom": {
			left: Auto(), right: Auto(), top: Fixed(3), bottom: Fixed(9),
			wantX: 0, wantY: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := newTestNode(DefaultStyle())
			root.style.Width = Fixed(100)
			root.style.Height = Fixed(50)

			rel := newTestNode(DefaultStyle())
			rel.style.Position = PositionRelative
			rel.style.Left = tt.left
			rel.style.Right = tt.right
			rel.style.Top = tt.top
			rel.style.Bottom = tt.bottom
			rel.style.Width = Fixed(10)
			rel.style.Height = Fixed(10)

			root.AddChild(rel)
			Calculate(root, 200, 200)

			if rel.layout.Rect.X != tt.wantX || rel.layout.Rect.Y != tt.wantY {
				t.Errorf("position = (%d, %d), want (%d, %d)",
					rel.layout.Rect.X, rel.layout.Rect.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCalculate_AbsoluteFollowsAnchorMove(t *testing.T) {
	// A clean absolute subtree must re-place when its positioned ancestor
	// moves, even though no node in the subtree is dirty.
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(100)
	root.style.Height = Fixed(100)
	root.style.Direction = Row

	spacer := newTestNode(DefaultStyle())
	spacer.style.Width = Fixed(30)
	spacer.style.Height = Fixed(100)

	anchor := newTestNode(DefaultStyle())
	anchor.style.Position = PositionRelative
	anchor.style.Width = Fixed(50)
	anchor.style.Height = Fixed(100)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(5)
	abs.style.Top = Fixed(0)
	abs.style.Width = Fixed(10)
	abs.style.Height = Fixed(10)

	anchor.AddChild(abs)
	root.AddChild(spacer, anchor)
	Calculate(root, 200, 200)

	if abs.layout.Rect.X != 35 {
		t.Fatalf("initial abs.X = %d, want 35", abs.layout.Rect.X)
	}

	// Widen the spacer; the anchor and the absolute child stay clean.
	s := spacer.style
	s.Width = Fixed(40)
	spacer.SetStyle(s)

	Calculate(root, 200, 200)

	if abs.layout.Rect.X != 45 {
		t.Errorf("abs.X = %d, want 45 (follows anchor move)", abs.layout.Rect.X)
	}
}
