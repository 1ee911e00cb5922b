package router

import (
	"context"
	"testing"
)

// fakeVectorizer returns a fixed vector for every input.
type fakeVectorizer struct {
	embedCalls int
	batchSizes []int
}

func (f *fakeVectorizer) Embed(ctx context.Context, text string) ([]float32, error) {
	f.embedCalls++
	return []float32{1, 0, 0}, nil
}

func (f *fakeVectorizer) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.batchSizes = append(f.batchSizes, len(texts))
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

// fakeIndex records rebuilds and serves canned hits.
type fakeIndex struct {
	refs []Reference
	hits []RefHit
	k    int
}

func (f *fakeIndex) Rebuild(ctx context.Context, refs []Reference, dim int) error {
	f.refs = refs
	return nil
}

func (f *fakeIndex) Nearest(ctx context.Context, vector []float32, k int) ([]RefHit, error) {
	f.k = k
	return f.hits, nil
}

func newTestSemanticRouter(t *testing.T, hits []RefHit) (*SemanticRouter, *fakeIndex) {
	t.Helper()
	idx := &fakeIndex{hits: hits}
	sr, err := NewSemanticRouter("test-router", DefaultCatalog(), DefaultRoutingConfig(), &fakeVectorizer{}, idx, 3)
	if err != nil {
		t.Fatalf("NewSemanticRouter: %v", err)
	}
	return sr, idx
}

func TestNewSemanticRouterRejectsUnknownAggregation(t *testing.T) {
	cfg := Config{Aggregation: "avg", MaxK: 3}
	if _, err := NewSemanticRouter("x", DefaultCatalog(), cfg, &fakeVectorizer{}, &fakeIndex{}, 3); err == nil {
		t.Error("expected error for unsupported aggregation method")
	}
}

func TestNewSemanticRouterRejectsBadMaxK(t *testing.T) {
	cfg := Config{Aggregation: AggregationMin, MaxK: 0}
	if _, err := NewSemanticRouter("x", DefaultCatalog(), cfg, &fakeVectorizer{}, &fakeIndex{}, 3); err == nil {
		t.Error("expected error for max_k < 1")
	}
}

func TestInitIndexesEveryReference(t *testing.T) {
	sr, idx := newTestSemanticRouter(t, nil)

	if err := sr.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(idx.refs) != sr.Catalog().ReferenceCount() {
		t.Errorf("indexed %d references, want %d", len(idx.refs), sr.Catalog().ReferenceCount())
	}
	// Each stored reference must carry its owning route.
	for _, ref := range idx.refs {
		if _, ok := sr.Catalog().Lookup(ref.Route); !ok {
			t.Errorf("reference %q owned by unknown route %q", ref.Text, ref.Route)
		}
	}
}

func TestRouteAggregatesMinPerRoute(t *testing.T) {
	// Multiple hits per route: the minimum must win, not the first or mean.
	hits := []RefHit{
		{Route: "genai_programming", Distance: 0.60},
		{Route: "science_fiction", Distance: 0.55},
		{Route: "genai_programming", Distance: 0.30},
		{Route: "science_fiction", Distance: 0.90},
	}
	sr, idx := newTestSemanticRouter(t, hits)

	m, ok, err := sr.Route(context.Background(), "how do I fine-tune a model?")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Name != "genai_programming" {
		t.Errorf("route = %q, want genai_programming", m.Name)
	}
	if m.Distance != 0.30 {
		t.Errorf("distance = %v, want minimum 0.30", m.Distance)
	}
	if idx.k != sr.Catalog().ReferenceCount() {
		t.Errorf("KNN k = %d, want full reference count %d", idx.k, sr.Catalog().ReferenceCount())
	}
}

func TestRouteNoConfidentMatch(t *testing.T) {
	hits := []RefHit{
		{Route: "genai_programming", Distance: 0.95},
		{Route: "science_fiction", Distance: 0.95},
		{Route: "classical_music", Distance: 0.95},
	}
	sr, _ := newTestSemanticRouter(t, hits)

	_, ok, err := sr.Route(context.Background(), "what's for dinner?")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if ok {
		t.Error("expected no confident match")
	}
}

func TestRouteMany(t *testing.T) {
	hits := []RefHit{
		{Route: "genai_programming", Distance: 0.50},
		{Route: "science_fiction", Distance: 0.40},
		{Route: "classical_music", Distance: 0.90},
	}
	sr, _ := newTestSemanticRouter(t, hits)

	matches, err := sr.RouteMany(context.Background(), "AI in movies", 3)
	if err != nil {
		t.Fatalf("RouteMany: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Name != "science_fiction" || matches[1].Name != "genai_programming" {
		t.Errorf("order = [%s %s]", matches[0].Name, matches[1].Name)
	}
}

func TestAggregateMin(t *testing.T) {
	hits := []RefHit{
		{Route: "a", Distance: 0.5},
		{Route: "a", Distance: 0.2},
		{Route: "b", Distance: 0.7},
		{Route: "a", Distance: 0.9},
	}

	distances := aggregateMin(hits)
	if distances["a"] != 0.2 {
		t.Errorf("a = %v, want 0.2", distances["a"])
	}
	if distances["b"] != 0.7 {
		t.Errorf("b = %v, want 0.7", distances["b"])
	}
}
