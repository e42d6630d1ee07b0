package style

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Query names one (component, states) resolution in a batch.
type Query struct {
	Component string
	States    StateSet
}

// ResolveMany resolves every query, fanning the work out across goroutines.
// The result slice is positionally aligned with queries, and every result is
// ready when ResolveMany returns. There is no ordering between the
// resolutions themselves; each is independent.
func (r *Resolver) ResolveMany(queries []Query) []*ResolvedStyle {
	results := make([]*ResolvedStyle, len(queries))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = r.Resolve(q.Component, q.States)
			return nil
		})
	}
	// Resolve never fails, so Wait only joins the goroutines.
	_ = g.Wait()
	return results
}
