// Package router implements semantic route selection: a static catalog of
// named routes, a pure distance-based selector, and a SemanticRouter that
// binds the catalog to a vectorizer and a Redis-backed reference index.
package router

import "fmt"

// Route is an immutable routing target: a set of reference phrases with a
// per-route distance threshold. Routes with a tighter topical scope use a
// lower threshold to demand tighter similarity.
type Route struct {
	Name              string
	References        []string
	DistanceThreshold float64
	Metadata          map[string]interface{}
}

// Match is the result of routing a single query. Confidence is a display
// value derived from the distance; it is never used for ranking.
type Match struct {
	Name       string
	Distance   float64
	Confidence float64
}

// AggregationMethod names the reduction applied to per-reference distances.
type AggregationMethod string

// AggregationMin assigns each route the minimum distance between the query
// and any single reference phrase. This is the only supported method.
const AggregationMin AggregationMethod = "min"

// Config holds process-wide routing parameters.
type Config struct {
	Aggregation AggregationMethod
	MaxK        int
}

// DefaultRoutingConfig returns the routing configuration used by the demo.
func DefaultRoutingConfig() Config {
	return Config{Aggregation: AggregationMin, MaxK: 3}
}

// Catalog is an ordered, immutable set of routes. Declaration order matters:
// it breaks ties during selection.
type Catalog struct {
	routes []Route
	byName map[string]int
}

// NewCatalog validates and builds a catalog. Route names must be unique,
// reference lists non-empty, and thresholds within [0, 1].
func NewCatalog(routes ...Route) (*Catalog, error) {
	c := &Catalog{
		routes: routes,
		byName: make(map[string]int, len(routes)),
	}
	for i, r := range routes {
		if r.Name == "" {
			return nil, fmt.Errorf("catalog: route %d has no name", i)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate route name %q", r.Name)
		}
		if len(r.References) == 0 {
			return nil, fmt.Errorf("catalog: route %q has no references", r.Name)
		}
		if r.DistanceThreshold < 0 || r.DistanceThreshold > 1 {
			return nil, fmt.Errorf("catalog: route %q threshold %v outside [0,1]", r.Name, r.DistanceThreshold)
		}
		c.byName[r.Name] = i
	}
	return c, nil
}

// Routes returns the routes in declaration order.
func (c *Catalog) Routes() []Route {
	return c.routes
}

// Lookup returns the route with the given name.
func (c *Catalog) Lookup(name string) (Route, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Route{}, false
	}
	return c.routes[i], true
}

// Len returns the number of routes.
func (c *Catalog) Len() int {
	return len(c.routes)
}

// ReferenceCount returns the total number of reference phrases.
func (c *Catalog) ReferenceCount() int {
	n := 0
	for _, r := range c.routes {
		n += len(r.References)
	}
	return n
}
