// Package style implements the stylesheet store and the cascade resolver of
// the presentation pipeline.
//
// A Sheet holds parsed rules; each rule selects one component name and holds
// state-conditional blocks of property declarations. Resolve cascades the
// matching blocks property by property into an immutable ResolvedStyle, which
// is cached by (component, state set, theme version) and shared by reference
// until the theme version advances.
//
// Resolution is safe to call from many goroutines at once; ResolveMany fans a
// whole frame's queries out in parallel. User style errors never fail a
// resolution: unknown properties and malformed values are collected as
// Diagnostics and skipped.
package style
