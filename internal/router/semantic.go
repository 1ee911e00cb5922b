package router

import (
	"context"
	"fmt"
)

// Vectorizer produces embeddings for text. Implemented by embedding.Client.
type Vectorizer interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Reference is a single route reference phrase with its embedding, ready to
// be stored in the index.
type Reference struct {
	Route  string
	Text   string
	Vector []float32
}

// RefHit is one nearest-neighbor result: the owning route of a reference and
// the cosine distance between the query and that reference.
type RefHit struct {
	Route    string
	Distance float64
}

// ReferenceIndex stores reference vectors and answers nearest-neighbor
// queries. Implemented by search.ReferenceIndex.
type ReferenceIndex interface {
	Rebuild(ctx context.Context, refs []Reference, dim int) error
	Nearest(ctx context.Context, vector []float32, k int) ([]RefHit, error)
}

// SemanticRouter routes free-text queries to catalog routes by embedding the
// query and comparing it against indexed reference phrases.
type SemanticRouter struct {
	name       string
	catalog    *Catalog
	cfg        Config
	vectorizer Vectorizer
	index      ReferenceIndex
	dim        int
}

// NewSemanticRouter builds a router over the given collaborators. Only min
// aggregation is supported.
func NewSemanticRouter(name string, catalog *Catalog, cfg Config, vectorizer Vectorizer, index ReferenceIndex, dim int) (*SemanticRouter, error) {
	if cfg.Aggregation != AggregationMin {
		return nil, fmt.Errorf("router: unsupported aggregation method %q", cfg.Aggregation)
	}
	if cfg.MaxK < 1 {
		return nil, fmt.Errorf("router: max_k must be >= 1, got %d", cfg.MaxK)
	}
	return &SemanticRouter{
		name:       name,
		catalog:    catalog,
		cfg:        cfg,
		vectorizer: vectorizer,
		index:      index,
		dim:        dim,
	}, nil
}

// Name returns the router name.
func (sr *SemanticRouter) Name() string {
	return sr.name
}

// Catalog returns the route catalog.
func (sr *SemanticRouter) Catalog() *Catalog {
	return sr.catalog
}

// Init embeds every reference phrase and rebuilds the reference index.
// Any existing index for this router is overwritten.
func (sr *SemanticRouter) Init(ctx context.Context) error {
	var texts []string
	var owners []string
	for _, r := range sr.catalog.Routes() {
		for _, ref := range r.References {
			texts = append(texts, ref)
			owners = append(owners, r.Name)
		}
	}

	vectors, err := sr.vectorizer.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("router: embed references: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("router: embedded %d references, expected %d", len(vectors), len(texts))
	}

	refs := make([]Reference, len(texts))
	for i := range texts {
		refs[i] = Reference{Route: owners[i], Text: texts[i], Vector: vectors[i]}
	}

	if err := sr.index.Rebuild(ctx, refs, sr.dim); err != nil {
		return fmt.Errorf("router: rebuild index: %w", err)
	}
	return nil
}

// Route returns the single best match for a query, or (Match{}, false) when
// no route is confident enough.
func (sr *SemanticRouter) Route(ctx context.Context, query string) (Match, bool, error) {
	distances, err := sr.distances(ctx, query)
	if err != nil {
		return Match{}, false, err
	}
	m, ok := Select(sr.catalog, distances, sr.cfg)
	return m, ok, nil
}

// RouteMany returns up to maxK matches for a query, best first.
func (sr *SemanticRouter) RouteMany(ctx context.Context, query string, maxK int) ([]Match, error) {
	distances, err := sr.distances(ctx, query)
	if err != nil {
		return nil, err
	}
	return SelectMany(sr.catalog, distances, sr.cfg, maxK), nil
}

// distances embeds the query and reduces per-reference hits to one distance
// per route using the configured aggregation (min).
func (sr *SemanticRouter) distances(ctx context.Context, query string) (map[string]float64, error) {
	vec, err := sr.vectorizer.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("router: embed query: %w", err)
	}

	// K covers every reference so the true per-route minimum is always
	// among the hits.
	hits, err := sr.index.Nearest(ctx, vec, sr.catalog.ReferenceCount())
	if err != nil {
		return nil, fmt.Errorf("router: knn query: %w", err)
	}

	return aggregateMin(hits), nil
}

// aggregateMin keeps the smallest distance seen for each route.
func aggregateMin(hits []RefHit) map[string]float64 {
	distances := make(map[string]float64, len(hits))
	for _, h := range hits {
		if d, ok := distances[h.Route]; !ok || h.Distance < d {
			distances[h.Route] = h.Distance
		}
	}
	return distances
}
