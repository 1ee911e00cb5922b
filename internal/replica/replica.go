// Package replica checks replication between a source and a replica
// database: it seeds numbered keys into the source and reads them back in
// reverse order from the replica.
package replica

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCount is the number of keys seeded by a check run.
const DefaultCount = 100

const probeKey = "replication_test"

// Checker drives a replication check between two connections.
type Checker struct {
	source  *redis.Client
	replica *redis.Client
}

// NewChecker creates a Checker over the given source and replica clients.
func NewChecker(source, replica *redis.Client) *Checker {
	return &Checker{source: source, replica: replica}
}

// Summary is the outcome of a full check run.
type Summary struct {
	Inserted int
	Read     int
	Missing  []string
	Verified bool
}

// Run verifies replication, seeds count keys into the source, waits for the
// sync window, and reads them back from the replica in reverse order.
func (c *Checker) Run(ctx context.Context, count int, wait time.Duration) (Summary, error) {
	if count <= 0 {
		count = DefaultCount
	}

	var s Summary
	verifyErr := c.Verify(ctx, wait)
	s.Verified = verifyErr == nil

	inserted, err := c.Seed(ctx, count)
	if err != nil {
		return s, fmt.Errorf("seed source: %w", err)
	}
	s.Inserted = inserted

	select {
	case <-time.After(wait):
	case <-ctx.Done():
		return s, ctx.Err()
	}

	read, missing, err := c.ReadBack(ctx, count)
	if err != nil {
		return s, fmt.Errorf("read replica: %w", err)
	}
	s.Read = read
	s.Missing = missing
	return s, nil
}

// Verify writes a timestamped probe key to the source and waits for it to
// appear on the replica.
func (c *Checker) Verify(ctx context.Context, wait time.Duration) error {
	want := fmt.Sprintf("test_%d", time.Now().Unix())
	if err := c.source.Set(ctx, probeKey, want, 0).Err(); err != nil {
		return fmt.Errorf("set probe on source: %w", err)
	}

	deadline := time.Now().Add(wait)
	for {
		got, err := c.replica.Get(ctx, probeKey).Result()
		if err == nil && got == want {
			return nil
		}
		if err != nil && err != redis.Nil {
			return fmt.Errorf("get probe from replica: %w", err)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("probe key did not replicate within %s (source=%q replica=%q)", wait, want, got)
		}
		select {
		case <-time.After(200 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Seed pipelines count SETs (key:1 .. key:count) into the source and
// returns how many succeeded.
func (c *Checker) Seed(ctx context.Context, count int) (int, error) {
	pipe := c.source.Pipeline()
	for i := 1; i <= count; i++ {
		pipe.Set(ctx, keyFor(i), fmt.Sprintf("%d", i), 0)
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, cmd := range cmds {
		if cmd.Err() == nil {
			inserted++
		}
	}
	return inserted, nil
}

// ReadBack reads key:count down to key:1 from the replica and returns the
// number of values found plus the keys that were missing. A missing key is
// recorded, not an error.
func (c *Checker) ReadBack(ctx context.Context, count int) (int, []string, error) {
	read := 0
	var missing []string
	for _, key := range ReadOrder(count) {
		val, err := c.replica.Get(ctx, key).Result()
		if err == redis.Nil || (err == nil && val == "") {
			missing = append(missing, key)
			continue
		}
		if err != nil {
			return read, missing, err
		}
		read++
	}
	return read, missing, nil
}

// ReadOrder returns the replica read sequence: key:count down to key:1.
func ReadOrder(count int) []string {
	keys := make([]string, 0, count)
	for i := count; i >= 1; i-- {
		keys = append(keys, keyFor(i))
	}
	return keys
}

func keyFor(i int) string {
	return fmt.Sprintf("key:%d", i)
}
