// Package ornata is the presentation pipeline for a declarative UI framework.
//
// Users describe a frame as a tree of elements, and the pipeline turns it
// into positioned boxes and host patches: styles cascade through the resolver
// (pkg/style), boxes come out of the flexbox engine (pkg/layout), and the
// frame's element tree is reconciled against the previous one (pkg/vdom) so
// renderer adapters only touch what changed. This package ties the stages
// together and re-exports the types a typical caller needs, so most programs
// import it alone.
//
// The pipeline draws nothing itself. Terminal and window renderers consume
// the boxes and patches a Frame carries; pkg/backend describes those targets.
package ornata
