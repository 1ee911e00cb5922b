package cmd

import (
	"context"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// testQueries exercise each topic plus a few deliberately ambiguous ones.
var testQueries = []string{
	"How do I implement RAG with vector databases?",
	"What are the best practices for prompt engineering?",
	"How to fine-tune a large language model?",

	"What are the best cyberpunk movies?",
	"Recommend some good space opera novels",
	"Tell me about time travel paradoxes",

	"What are Mozart's most famous symphonies?",
	"Explain baroque music composition techniques",
	"Who are the greatest classical composers?",

	"Tell me about artificial intelligence",
	"What's new in entertainment?",
	"I love music recommendations",
}

func (r *Router) routingReady() error {
	if r.Sem == nil {
		if r.SemErr != "" {
			return fmt.Errorf("routing unavailable: %s", r.SemErr)
		}
		return fmt.Errorf("routing unavailable")
	}
	return nil
}

func (r *Router) handleRoute(ctx context.Context, args []string) error {
	if err := r.routingReady(); err != nil {
		return err
	}

	fset := flag.NewFlagSet("route", flag.ContinueOnError)
	runTests := fset.Bool("test", false, "Run the predefined test queries")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if *runTests {
		for _, query := range testQueries {
			r.Formatter.Printf("query: %q\n", query)
			if err := r.routeOne(ctx, query); err != nil {
				return err
			}
			r.Formatter.Println(strings.Repeat("-", 40))
		}
		return nil
	}

	if fset.NArg() < 1 {
		return fmt.Errorf("route: usage: route \"query\" | route --test")
	}
	return r.routeOne(ctx, strings.Join(fset.Args(), " "))
}

func (r *Router) routeOne(ctx context.Context, query string) error {
	m, ok, err := r.Sem.Route(ctx, query)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	r.Formatter.PrintMatch(query, m, ok)
	return nil
}

func (r *Router) handleMulti(ctx context.Context, args []string) error {
	if err := r.routingReady(); err != nil {
		return err
	}

	fset := flag.NewFlagSet("multi", flag.ContinueOnError)
	maxK := fset.Int("top", r.Config.MaxK, "Maximum routes to return")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() < 1 {
		return fmt.Errorf("multi: usage: multi [--top N] \"query\"")
	}

	query := strings.Join(fset.Args(), " ")
	matches, err := r.Sem.RouteMany(ctx, query, *maxK)
	if err != nil {
		return fmt.Errorf("multi: %w", err)
	}
	r.Formatter.PrintMatches(query, matches)
	return nil
}

func (r *Router) handleRoutes(ctx context.Context, args []string) error {
	r.Formatter.PrintRoutes(r.Catalog)
	return nil
}
