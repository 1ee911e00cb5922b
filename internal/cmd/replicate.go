package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"

	"github.com/rowantrollope/redis-route-cli/internal/replica"
)

func (r *Router) handleReplicate(ctx context.Context, args []string) error {
	if !r.Config.HasReplica() {
		return fmt.Errorf("replicate: no replica configured (use --replica-host/--replica-port or --replica-uri)")
	}

	fset := flag.NewFlagSet("replicate", flag.ContinueOnError)
	count := fset.Int("count", r.Config.SeedCount, "Number of keys to seed")
	wait := fset.Int("wait", r.Config.WaitSecs, "Seconds to wait for sync")
	if err := fset.Parse(args); err != nil {
		return err
	}

	replicaClient := redis.NewClient(r.Config.ReplicaOptions())
	defer replicaClient.Close()

	if err := replicaClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("replicate: cannot connect to replica at %s: %w", r.Config.ReplicaAddr(), err)
	}

	checker := replica.NewChecker(r.Rdb, replicaClient)
	summary, err := checker.Run(ctx, *count, time.Duration(*wait)*time.Second)
	if err != nil {
		return fmt.Errorf("replicate: %w", err)
	}

	r.Formatter.PrintReplicaSummary(summary, *count)
	return nil
}
