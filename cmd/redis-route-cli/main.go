package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
	flag "github.com/spf13/pflag"

	"github.com/rowantrollope/redis-route-cli/internal/cli"
	"github.com/rowantrollope/redis-route-cli/internal/cmd"
	"github.com/rowantrollope/redis-route-cli/internal/config"
	"github.com/rowantrollope/redis-route-cli/internal/embedding"
	"github.com/rowantrollope/redis-route-cli/internal/output"
	"github.com/rowantrollope/redis-route-cli/internal/router"
	"github.com/rowantrollope/redis-route-cli/internal/search"
)

var version = "dev"

const (
	connectRetryInterval = 2 * time.Second
	connectMaxRetries    = 2 // 3 attempts total
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()

	// Custom flag set to avoid os.Exit on parse error
	flags := flag.NewFlagSet("redis-route-cli", flag.ContinueOnError)
	flags.SetInterspersed(false) // Stop parsing at first non-flag arg (the command)
	cfg.RegisterFlags(flags)
	showVersion := flags.Bool("version", false, "Show version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 2
	}
	cfg.Args = flags.Args()

	if *showVersion {
		fmt.Printf("redis-route-cli %s\n", version)
		return 0
	}

	if !cfg.ShouldColor() {
		color.NoColor = true
	}
	formatter := output.NewFormatter(cfg.JSON, cfg.ShouldColor())

	ctx := context.Background()
	rdb := redis.NewClient(cfg.RedisOptions())

	if err := connect(ctx, rdb); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot connect to Redis at %s: %s\n", cfg.Addr(), err)
		return 1
	}
	defer rdb.Close()

	cfg.SearchAvailable = search.Detect(ctx, rdb)

	catalog := router.DefaultCatalog()
	cmdRouter := cmd.NewRouter(rdb, catalog, cfg, formatter)

	sem, semErr := buildSemanticRouter(ctx, rdb, catalog, cfg, formatter)
	cmdRouter.Sem = sem
	cmdRouter.SemErr = semErr

	// Single-command mode
	if len(cfg.Args) > 0 {
		line := strings.Join(quoteArgs(cfg.Args), " ")
		if err := cmdRouter.Execute(ctx, line); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		return 0
	}

	// Interactive REPL mode
	repl := cli.NewREPL(cmdRouter, cfg, formatter)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// connect pings the server, retrying on a fixed interval the way the old
// shell scripts did.
func connect(ctx context.Context, rdb *redis.Client) error {
	op := func() error {
		return rdb.Ping(ctx).Err()
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(connectRetryInterval), connectMaxRetries),
		ctx,
	)
	return backoff.Retry(op, policy)
}

// buildSemanticRouter wires the embedding client and reference index into a
// SemanticRouter and seeds the index. Routing is optional: when search or
// embeddings are unavailable the CLI still serves diagnostics, and the
// returned reason explains what is missing.
func buildSemanticRouter(ctx context.Context, rdb *redis.Client, catalog *router.Catalog, cfg *config.Config, formatter *output.Formatter) (*router.SemanticRouter, string) {
	if !cfg.SearchAvailable {
		return nil, "search not available (requires Redis 8.0+ or Redis Stack with RediSearch)"
	}
	if cfg.EmbeddingAPIKey == "" {
		return nil, "embedding API key not configured (set EMBEDDING_API_KEY or use --embedding-api-key)"
	}

	embClient := embedding.NewClient(&embedding.Config{
		APIKey:  cfg.EmbeddingAPIKey,
		BaseURL: cfg.EmbeddingAPIURL,
		Model:   cfg.EmbeddingModel,
		Dim:     cfg.EmbeddingDim,
	})
	index := search.NewReferenceIndex(rdb, cfg.RouterName)

	sem, err := router.NewSemanticRouter(
		cfg.RouterName,
		catalog,
		router.Config{Aggregation: router.AggregationMin, MaxK: cfg.MaxK},
		embClient,
		index,
		cfg.EmbeddingDim,
	)
	if err != nil {
		return nil, err.Error()
	}

	if err := sem.Init(ctx); err != nil {
		return nil, err.Error()
	}
	if !cfg.JSON {
		indexed := int64(catalog.ReferenceCount())
		if n, err := index.DocCount(ctx); err == nil {
			indexed = n
		}
		formatter.Successf("semantic router %q ready (%d references indexed)\n", cfg.RouterName, indexed)
	}
	return sem, ""
}

// quoteArgs re-quotes multi-word args so single-command mode survives the
// tokenizer round trip.
func quoteArgs(args []string) []string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t") {
			quoted[i] = "\"" + a + "\""
		} else {
			quoted[i] = a
		}
	}
	return quoted
}
