// Package search maintains the route-reference vector index on Redis and
// answers nearest-neighbor queries over it via FT.SEARCH.
package search

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rowantrollope/redis-route-cli/internal/embedding"
	"github.com/rowantrollope/redis-route-cli/internal/router"
)

// ReferenceIndex stores route reference phrases as HASH keys with vector
// embeddings and serves KNN queries. It implements router.ReferenceIndex.
type ReferenceIndex struct {
	rdb  *redis.Client
	name string
}

// NewReferenceIndex creates a ReferenceIndex for the named router.
func NewReferenceIndex(rdb *redis.Client, name string) *ReferenceIndex {
	return &ReferenceIndex{rdb: rdb, name: name}
}

// IndexName returns the FT index name for this router.
func (x *ReferenceIndex) IndexName() string {
	return fmt.Sprintf("routeidx:%s", x.name)
}

// KeyPrefix returns the key prefix for reference HASH keys.
func (x *ReferenceIndex) KeyPrefix() string {
	return fmt.Sprintf("route:%s:ref:", x.name)
}

// Rebuild drops any existing index (and its documents) and recreates it
// from the given references.
func (x *ReferenceIndex) Rebuild(ctx context.Context, refs []router.Reference, dim int) error {
	exists, err := x.exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		// DD drops the reference documents along with the index, so a
		// rebuild never leaves stale hashes behind.
		if _, err := x.rdb.Do(ctx, "FT.DROPINDEX", x.IndexName(), "DD").Result(); err != nil {
			return fmt.Errorf("FT.DROPINDEX: %w", err)
		}
	}

	if err := x.create(ctx, dim); err != nil {
		return err
	}

	pipe := x.rdb.Pipeline()
	counts := make(map[string]int)
	for _, ref := range refs {
		key := fmt.Sprintf("%s%s:%d", x.KeyPrefix(), ref.Route, counts[ref.Route])
		counts[ref.Route]++
		pipe.HSet(ctx, key, map[string]interface{}{
			"route":     ref.Route,
			"reference": ref.Text,
			"embedding": embedding.Float32ToBytes(ref.Vector),
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed references: %w", err)
	}
	return nil
}

// Nearest returns up to k references closest to the query vector, with
// their owning routes and cosine distances.
func (x *ReferenceIndex) Nearest(ctx context.Context, vector []float32, k int) ([]router.RefHit, error) {
	if k <= 0 {
		k = 10
	}

	query := fmt.Sprintf("*=>[KNN %d @embedding $vec AS vector_score]", k)
	args := []interface{}{
		"FT.SEARCH", x.IndexName(), query,
		"RETURN", "2", "route", "vector_score",
		"SORTBY", "vector_score",
		"LIMIT", "0", fmt.Sprintf("%d", k),
		"PARAMS", "2", "vec", string(embedding.Float32ToBytes(vector)),
		"DIALECT", "2",
	}

	result, err := x.rdb.Do(ctx, args...).Result()
	if err != nil {
		return nil, fmt.Errorf("FT.SEARCH: %w", err)
	}
	return parseHits(result), nil
}

// DocCount returns the number of indexed reference documents.
func (x *ReferenceIndex) DocCount(ctx context.Context) (int64, error) {
	result, err := x.rdb.Do(ctx, "FT.INFO", x.IndexName()).Result()
	if err != nil {
		return 0, fmt.Errorf("FT.INFO: %w", err)
	}
	info := parseInfoReply(result)
	switch v := info["num_docs"].(type) {
	case int64:
		return v, nil
	case string:
		var n int64
		fmt.Sscan(v, &n)
		return n, nil
	default:
		return 0, nil
	}
}

func (x *ReferenceIndex) create(ctx context.Context, dim int) error {
	args := []interface{}{
		"FT.CREATE", x.IndexName(),
		"ON", "HASH",
		"PREFIX", "1", x.KeyPrefix(),
		"SCHEMA",
		"route", "TAG",
		"reference", "TEXT", "WEIGHT", "1.0",
		"embedding", "VECTOR", "FLAT", "6",
		"TYPE", "FLOAT32",
		"DIM", dim,
		"DISTANCE_METRIC", "COSINE",
	}
	if _, err := x.rdb.Do(ctx, args...).Result(); err != nil {
		return fmt.Errorf("FT.CREATE: %w", err)
	}
	return nil
}

func (x *ReferenceIndex) exists(ctx context.Context) (bool, error) {
	_, err := x.rdb.Do(ctx, "FT.INFO", x.IndexName()).Result()
	if err != nil {
		if isIndexNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isIndexNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return msg == "Unknown index name" || msg == "Unknown Index name" ||
		msg == "no such index"
}

var _ router.ReferenceIndex = (*ReferenceIndex)(nil)
