package router

import (
	"math"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(
		Route{Name: "tech", References: []string{"a"}, DistanceThreshold: 0.70},
		Route{Name: "scifi", References: []string{"b"}, DistanceThreshold: 0.68},
		Route{Name: "music", References: []string{"c"}, DistanceThreshold: 0.65},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestSelectBestRoute(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.40, "scifi": 0.90, "music": 0.95}

	m, ok := Select(c, distances, DefaultRoutingConfig())
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "tech" {
		t.Errorf("route = %q, want %q", m.Name, "tech")
	}
	if m.Confidence != 60.0 {
		t.Errorf("confidence = %v, want 60.0", m.Confidence)
	}
}

func TestSelectNoEligibleRoute(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.95, "scifi": 0.95, "music": 0.95}

	if _, ok := Select(c, distances, DefaultRoutingConfig()); ok {
		t.Error("expected no match when every distance exceeds its threshold")
	}
}

func TestSelectThresholdBoundaryInclusive(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"scifi": 0.68}

	m, ok := Select(c, distances, DefaultRoutingConfig())
	if !ok {
		t.Fatal("distance exactly at threshold must be eligible")
	}
	if m.Name != "scifi" {
		t.Errorf("route = %q, want %q", m.Name, "scifi")
	}
}

func TestSelectTieBreaksByDeclarationOrder(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.50, "scifi": 0.50}

	m, ok := Select(c, distances, DefaultRoutingConfig())
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "tech" {
		t.Errorf("tie should favor first-declared route, got %q", m.Name)
	}
}

func TestSelectMissingDistanceIsIneligible(t *testing.T) {
	c := testCatalog(t)
	// tech omitted entirely: music should win despite tech's looser threshold.
	distances := map[string]float64{"music": 0.30}

	m, ok := Select(c, distances, DefaultRoutingConfig())
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "music" {
		t.Errorf("route = %q, want %q", m.Name, "music")
	}
}

func TestSelectManySortedAndTruncated(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.60, "scifi": 0.20, "music": 0.40}

	matches := SelectMany(c, distances, DefaultRoutingConfig(), 2)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Name != "scifi" || matches[1].Name != "music" {
		t.Errorf("order = [%s %s], want [scifi music]", matches[0].Name, matches[1].Name)
	}
}

func TestSelectManyNeverPads(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.60, "scifi": 0.20, "music": 0.95}

	matches := SelectMany(c, distances, DefaultRoutingConfig(), 3)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want exactly the 2 eligible routes", len(matches))
	}
}

func TestSelectManyStableTies(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.50, "scifi": 0.50, "music": 0.50}

	matches := SelectMany(c, distances, DefaultRoutingConfig(), 3)
	want := []string{"tech", "scifi", "music"}
	for i, m := range matches {
		if m.Name != want[i] {
			t.Errorf("matches[%d] = %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestSelectManyDefaultsToConfigMaxK(t *testing.T) {
	c := testCatalog(t)
	distances := map[string]float64{"tech": 0.10, "scifi": 0.20, "music": 0.30}
	cfg := Config{Aggregation: AggregationMin, MaxK: 1}

	matches := SelectMany(c, distances, cfg, 0)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 (cfg.MaxK)", len(matches))
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0.40, 60.0},
		{0.0, 100.0},
		{1.0, 0.0},
		{0.1234, 87.66},
		// Out-of-range distances are not clamped.
		{1.2, -20.0},
		{-0.1, 110.0},
	}

	for _, tt := range tests {
		got := Confidence(tt.distance)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Confidence(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}
