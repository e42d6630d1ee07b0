// Package layout implements the flexbox-style layout engine of the
// presentation pipeline.
//
// It supports row/column directions, wrapping onto new lines, justify and
// align modes, padding, margin, gap, min/max constraints, percentage and
// fixed dimensions, intrinsic content measurement, and static/relative/
// absolute positioning. The main entry points are [Engine.Calculate], which
// caches results by (node handle, bounds, backend) and returns the same
// result pointer until an input changes, and the package-level [Calculate]
// convenience for one-shot layout.
//
// The engine works entirely against the [Layoutable] interface, so custom
// node implementations can participate. Layout never fails on style input;
// out-of-range values clamp, and impossible min/max pairs resolve with min
// winning.
package layout
