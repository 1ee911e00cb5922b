package router

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	want := []struct {
		name      string
		threshold float64
	}{
		{"genai_programming", 0.70},
		{"science_fiction", 0.68},
		{"classical_music", 0.65},
	}

	routes := c.Routes()
	if len(routes) != len(want) {
		t.Fatalf("got %d routes, want %d", len(routes), len(want))
	}
	for i, w := range want {
		if routes[i].Name != w.name {
			t.Errorf("routes[%d].Name = %q, want %q", i, routes[i].Name, w.name)
		}
		if routes[i].DistanceThreshold != w.threshold {
			t.Errorf("routes[%d].DistanceThreshold = %v, want %v", i, routes[i].DistanceThreshold, w.threshold)
		}
		if len(routes[i].References) == 0 {
			t.Errorf("routes[%d] has no references", i)
		}
	}

	if _, ok := c.Lookup("science_fiction"); !ok {
		t.Error("Lookup(science_fiction) failed")
	}
	if c.ReferenceCount() != 15+17+17 {
		t.Errorf("ReferenceCount = %d, want 49", c.ReferenceCount())
	}
}

func TestNewCatalogValidation(t *testing.T) {
	valid := Route{Name: "a", References: []string{"x"}, DistanceThreshold: 0.5}

	tests := []struct {
		name   string
		routes []Route
	}{
		{"unnamed route", []Route{{References: []string{"x"}, DistanceThreshold: 0.5}}},
		{"duplicate name", []Route{valid, valid}},
		{"no references", []Route{{Name: "a", DistanceThreshold: 0.5}}},
		{"threshold above 1", []Route{{Name: "a", References: []string{"x"}, DistanceThreshold: 1.5}}},
		{"negative threshold", []Route{{Name: "a", References: []string{"x"}, DistanceThreshold: -0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.routes...); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if _, err := NewCatalog(valid); err != nil {
		t.Errorf("valid catalog rejected: %v", err)
	}
}
