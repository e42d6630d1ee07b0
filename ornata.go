package ornata

import (
	"github.com/saren071/ornata-public-sub003/pkg/backend"
	"github.com/saren071/ornata-public-sub003/pkg/layout"
	"github.com/saren071/ornata-public-sub003/pkg/style"
	"github.com/saren071/ornata-public-sub003/pkg/vdom"
)

// The pipeline's vocabulary lives in focused packages; this file re-exports
// what a typical program touches so importing ornata alone suffices.

// Stylesheet building blocks.
type (
	Sheet         = style.Sheet
	Rule          = style.Rule
	Block         = style.Block
	Declaration   = style.Declaration
	StateFlag     = style.StateFlag
	StateSet      = style.StateSet
	StyleValue    = style.Value
	Color         = style.Color
	Diagnostic    = style.Diagnostic
	Resolver      = style.Resolver
	ResolvedStyle = style.ResolvedStyle
)

// State flags the runtime sets itself. Any string works as a flag; these
// just name the common ones.
const (
	StateHover    = style.StateHover
	StateFocus    = style.StateFocus
	StateActive   = style.StateActive
	StateDisabled = style.StateDisabled
	StateWarn     = style.StateWarn
)

// Geometry and reconciliation surface consumed from a Frame.
type (
	Rect     = layout.Rect
	Size     = layout.Size
	Handle   = layout.Handle
	Key      = vdom.Key
	Node     = vdom.Node
	Patch    = vdom.Patch
	Op       = vdom.Op
	Tree     = vdom.Tree
	Registry = vdom.Registry
)

// Patch operations, for adapters switching on Patch.Op.
const (
	OpAddNode     = vdom.OpAddNode
	OpRemoveNode  = vdom.OpRemoveNode
	OpUpdateProps = vdom.OpUpdateProps
	OpMoveNode    = vdom.OpMoveNode
	OpReplaceRoot = vdom.OpReplaceRoot
)

// Output targets.
type (
	Backend   = backend.Backend
	BackendID = backend.ID
)

const (
	Terminal = backend.Terminal
	Window   = backend.Window
)

// Constructors

func NewResolver() *Resolver { return style.NewResolver() }

func NewRegistry() *Registry { return vdom.NewRegistry() }

func States(flags ...StateFlag) StateSet { return style.States(flags...) }

func Decl(property string, v StyleValue) Declaration { return style.Decl(property, v) }

func NewBlock(states StateSet, decls ...Declaration) Block {
	return style.NewBlock(states, decls...)
}

func Length(n int) StyleValue { return style.Length(n) }

func Keyword(word string) StyleValue { return style.Keyword(word) }

func Number(n float64) StyleValue { return style.Number(n) }

func ColorValue(c Color) StyleValue { return style.ColorValue(c) }

func RGB(r, g, b uint8) Color { return style.RGB(r, g, b) }

func MustColor(s string) Color { return style.MustColor(s) }

func NewRect(x, y, width, height int) Rect { return layout.NewRect(x, y, width, height) }

func NewHandle() Handle { return layout.NewHandle() }

func NewTree(root *Node) (*Tree, error) { return vdom.NewTree(root) }

// Apply replays a patch stream against a retained snapshot, as a renderer
// adapter does with its mirror of the last committed tree.
func Apply(tree *Tree, patches []Patch) error { return vdom.Apply(tree, patches) }

// DecodeTheme decodes a TOML theme document into a sheet.
func DecodeTheme(data []byte) (*Sheet, []Diagnostic, error) {
	return style.DecodeTheme(data)
}

// DetectTerminal probes the environment for the terminal target's
// capabilities.
func DetectTerminal() Backend {
	return backend.DetectTerminal()
}
