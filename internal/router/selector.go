package router

import (
	"math"
	"sort"
)

// Select returns the eligible route with the globally minimum distance.
// A route is eligible when the distances map holds an entry for it and the
// distance does not exceed its own threshold (the boundary is inclusive).
// Routes missing from the map are ineligible, not errors. Ties break by
// catalog declaration order. No eligible route is a normal outcome,
// reported as (Match{}, false).
func Select(c *Catalog, distances map[string]float64, cfg Config) (Match, bool) {
	best := Match{}
	found := false
	for _, r := range c.routes {
		d, ok := distances[r.Name]
		if !ok || d > r.DistanceThreshold {
			continue
		}
		// Strict comparison keeps the first-declared route on ties.
		if !found || d < best.Distance {
			best = newMatch(r.Name, d)
			found = true
		}
	}
	return best, found
}

// SelectMany returns up to maxK eligible routes sorted ascending by
// distance, ties broken by declaration order. Fewer eligible routes than
// maxK yields only those that qualify; the result is never padded. A
// non-positive maxK falls back to cfg.MaxK.
func SelectMany(c *Catalog, distances map[string]float64, cfg Config, maxK int) []Match {
	if maxK <= 0 {
		maxK = cfg.MaxK
	}

	var matches []Match
	for _, r := range c.routes {
		d, ok := distances[r.Name]
		if !ok || d > r.DistanceThreshold {
			continue
		}
		matches = append(matches, newMatch(r.Name, d))
	}

	// Stable sort preserves declaration order among equal distances.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > maxK {
		matches = matches[:maxK]
	}
	return matches
}

func newMatch(name string, distance float64) Match {
	return Match{
		Name:       name,
		Distance:   distance,
		Confidence: Confidence(distance),
	}
}

// Confidence converts a distance into a display percentage, rounded to two
// decimals. Distances outside [0, 1] are deliberately not clamped: a
// distance above 1 yields a negative confidence, which makes a
// miscalibrated metric visible instead of hiding it.
func Confidence(distance float64) float64 {
	return math.Round((1-distance)*100*100) / 100
}
