// Package vdom reconciles keyed snapshots of a component tree.
//
// Each frame the runtime captures the declarative element tree as a Tree
// snapshot. Diff compares the previous and current snapshots and emits the
// patch list that turns one into the other; renderer adapters consume the
// patches to update their retained host objects, and Apply replays them onto
// a Tree for verification or host-side mirrors.
//
// Nodes are identified by keys, stable across snapshots. Explicit keys
// survive reordering; unkeyed nodes get positional keys at construction, so
// a structurally unchanged frame diffs to nothing.
package vdom
