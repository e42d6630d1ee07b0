package ornata

import (
	"github.com/saren071/ornata-public-sub003/internal/debug"
	"github.com/saren071/ornata-public-sub003/pkg/backend"
	"github.com/saren071/ornata-public-sub003/pkg/layout"
	"github.com/saren071/ornata-public-sub003/pkg/style"
	"github.com/saren071/ornata-public-sub003/pkg/vdom"
)

// Pipeline runs the per-frame presentation stages for one output target:
// resolve styles, translate them to layout inputs, lay out, snapshot, and
// diff against the previous frame. It owns the resolver, the layout engine,
// and the last snapshot. A Pipeline is single-threaded; run concurrent
// frames on separate Pipelines (they may share a Resolver, which is
// concurrency-safe).
type Pipeline struct {
	resolver *style.Resolver
	engine   *layout.Engine
	backend  backend.ID

	prev     *vdom.Tree
	lastRoot layout.Handle
}

// NewPipeline creates a pipeline for the given output target. A nil resolver
// gets a fresh one; pass a shared resolver to reuse one style cache across
// several targets.
func NewPipeline(resolver *style.Resolver, id backend.ID) *Pipeline {
	if resolver == nil {
		resolver = style.NewResolver()
	}
	return &Pipeline{
		resolver: resolver,
		engine:   layout.NewEngine(),
		backend:  id,
	}
}

// Resolver returns the style resolver. Load theme sheets through it.
func (p *Pipeline) Resolver() *style.Resolver {
	return p.resolver
}

// Engine returns the layout engine, for registering constraints and reading
// stats or the damage region.
func (p *Pipeline) Engine() *layout.Engine {
	return p.engine
}

// Frame is the output of one RenderFrame call: everything a renderer adapter
// needs to bring its host objects up to date.
type Frame struct {
	// Layout is the root's computed box, nil when the frame was empty.
	Layout *layout.Layout

	// Boxes maps every snapshot key to its positioned rect.
	Boxes map[vdom.Key]layout.Rect

	// Snapshot is the frame's frozen vdom tree. The pipeline diffs the next
	// frame against it; callers must not mutate it.
	Snapshot *vdom.Tree

	// Patches transforms the previous frame's snapshot into this one.
	Patches []vdom.Patch

	// Diagnostics collects style-to-layout translation problems. Cascade
	// problems accumulate on the resolver instead.
	Diagnostics []style.Diagnostic
}

// RenderFrame renders one frame: resolves a style per distinct (component,
// states) pair in parallel, lays the element tree out within bounds, and
// diffs the resulting snapshot against the previous frame's. A nil root
// renders an empty frame whose patches clear the previous content. The only
// failure is an element tree with duplicate explicit keys; a failed frame
// leaves the pipeline's state untouched.
func (p *Pipeline) RenderFrame(root *Element, bounds layout.Rect) (*Frame, error) {
	snapshot, err := Snapshot(root)
	if err != nil {
		return nil, err
	}

	frame := &Frame{
		Boxes:    make(map[vdom.Key]layout.Rect),
		Snapshot: snapshot,
	}

	if root != nil {
		node := p.buildLayoutTree(root, p.resolveAll(root), frame)
		frame.Layout = p.engine.Calculate(node, bounds, p.backend)
		collectBoxes(snapshot.Root(), node, frame.Boxes)

		// The frame's layout tree is fresh each call, so the previous root's
		// cache entry can never be hit again.
		if p.lastRoot != 0 {
			p.engine.Invalidate(p.lastRoot)
		}
		p.lastRoot = node.LayoutHandle()
	} else if p.lastRoot != 0 {
		p.engine.Invalidate(p.lastRoot)
		p.lastRoot = 0
	}

	frame.Patches = vdom.Diff(p.prev, snapshot)
	p.prev = snapshot

	debug.Log("frame rendered",
		"backend", string(p.backend),
		"boxes", len(frame.Boxes),
		"patches", len(frame.Patches))
	return frame, nil
}

// resolveKey identifies one distinct (component, states) resolution.
type resolveKey struct {
	component string
	states    string
}

// resolveAll resolves every distinct (component, states) pair in the tree
// through the parallel batch path.
func (p *Pipeline) resolveAll(root *Element) map[resolveKey]*style.ResolvedStyle {
	var queries []style.Query
	seen := make(map[resolveKey]bool)
	walkElements(root, func(e *Element) {
		k := resolveKey{component: e.component, states: e.states.Canonical()}
		if !seen[k] {
			seen[k] = true
			queries = append(queries, style.Query{Component: e.component, States: e.states})
		}
	})

	results := p.resolver.ResolveMany(queries)
	resolved := make(map[resolveKey]*style.ResolvedStyle, len(queries))
	for i, q := range queries {
		resolved[resolveKey{component: q.Component, states: q.States.Canonical()}] = results[i]
	}
	return resolved
}

// buildLayoutTree mirrors the element tree as layout nodes, translating each
// element's resolved style and attaching text measurement to text leaves.
func (p *Pipeline) buildLayoutTree(e *Element, resolved map[resolveKey]*style.ResolvedStyle, frame *Frame) *layout.Node {
	rs := resolved[resolveKey{component: e.component, states: e.states.Canonical()}]
	ls, diags := Translate(e.component, rs)
	frame.Diagnostics = append(frame.Diagnostics, diags...)

	node := layout.NewNode(ls)
	if e.text != "" && len(e.children) == 0 {
		node.SetMeasure(layout.TextMeasure(e.text))
	}
	for _, child := range e.children {
		node.AddChild(p.buildLayoutTree(child, resolved, frame))
	}
	return node
}

// walkElements visits e and all descendants depth-first.
func walkElements(e *Element, fn func(*Element)) {
	fn(e)
	for _, child := range e.children {
		walkElements(child, fn)
	}
}

// collectBoxes records each snapshot key's computed rect. The snapshot and
// the layout tree mirror the same element tree, so their shapes agree.
func collectBoxes(vn *vdom.Node, node *layout.Node, boxes map[vdom.Key]layout.Rect) {
	boxes[vn.Key] = node.Layout.Rect
	for i, child := range vn.Children {
		collectBoxes(child, node.Children[i], boxes)
	}
}
