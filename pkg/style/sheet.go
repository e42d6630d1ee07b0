package style

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// StateFlag is a boolean UI condition that activates additional style blocks.
// Any string is a valid flag; these are the ones the runtime sets itself.
type StateFlag string

const (
	StateHover    StateFlag = "hover"
	StateFocus    StateFlag = "focus"
	StateActive   StateFlag = "active"
	StateDisabled StateFlag = "disabled"
	StateWarn     StateFlag = "warn"
)

// StateSet is a set of active state flags. The zero value is the empty set.
type StateSet map[StateFlag]struct{}

// States returns a StateSet containing the given flags.
func States(flags ...StateFlag) StateSet {
	s := make(StateSet, len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

// Has returns true if the set contains f.
func (s StateSet) Has(f StateFlag) bool {
	_, ok := s[f]
	return ok
}

// SubsetOf returns true if every flag in s is also in other.
// The empty set is a subset of everything.
func (s StateSet) SubsetOf(other StateSet) bool {
	for f := range s {
		if !other.Has(f) {
			return false
		}
	}
	return true
}

// With returns a copy of the set with f added.
func (s StateSet) With(f StateFlag) StateSet {
	out := make(StateSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[f] = struct{}{}
	return out
}

// Without returns a copy of the set with f removed.
func (s StateSet) Without(f StateFlag) StateSet {
	out := make(StateSet, len(s))
	for k := range s {
		if k != f {
			out[k] = struct{}{}
		}
	}
	return out
}

// Canonical returns a stable string form of the set, usable as a map key.
// Flags are sorted, so equal sets always canonicalize identically.
func (s StateSet) Canonical() string {
	if len(s) == 0 {
		return ""
	}
	flags := lo.Keys(s)
	slices.Sort(flags)
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, "+")
}

// String returns a human-readable form of the set.
func (s StateSet) String() string {
	if len(s) == 0 {
		return "{}"
	}
	return "{" + s.Canonical() + "}"
}

// Declaration is one (property, value) pair inside a block.
type Declaration struct {
	Property string
	Value    Value
}

// Decl returns a Declaration for property with the given value.
func Decl(property string, v Value) Declaration {
	return Declaration{Property: property, Value: v}
}

// Block is a run of declarations guarded by a state set. A block with an
// empty state set is the base block; it matches every context.
type Block struct {
	States       StateSet
	Declarations []Declaration
}

// NewBlock returns a Block guarded by states holding the given declarations.
func NewBlock(states StateSet, decls ...Declaration) Block {
	return Block{States: states, Declarations: decls}
}

// Matches returns true if the block applies under the given active states.
// A block matches iff its state set is a subset of the active states.
func (b Block) Matches(active StateSet) bool {
	return b.States.SubsetOf(active)
}

// Rule selects one component by exact name and holds its blocks in
// declaration order. Later blocks win property-by-property over earlier ones
// when both match.
type Rule struct {
	Component string
	Blocks    []Block
}

// Sheet is an ordered list of parsed rules. Sheets are pure data; the
// resolver owns all behavior. A sheet must not be mutated after loading.
type Sheet struct {
	Rules []Rule
}
