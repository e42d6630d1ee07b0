package style

import "fmt"

// Diagnostic records one non-fatal problem found while resolving or decoding
// styles. Diagnostics are collected and reported, never returned as errors:
// a bad declaration is skipped, the rest of the style still resolves.
type Diagnostic struct {
	// Component is the rule's component name, or "" when the problem was
	// found outside any rule (e.g. while decoding a theme document).
	Component string
	// Property is the declaration's property name.
	Property string
	// Detail says what was wrong.
	Detail string
}

// String formats the diagnostic as "component: property: detail".
func (d Diagnostic) String() string {
	if d.Component == "" {
		return fmt.Sprintf("%s: %s", d.Property, d.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", d.Component, d.Property, d.Detail)
}
