package cmd

import (
	"context"
	"fmt"

	"github.com/rowantrollope/redis-route-cli/internal/users"
)

const demoNamespace = "test-database-exercise2"

func (r *Router) handleUsers(ctx context.Context, args []string) error {
	store := users.NewStore(r.Rdb)

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		list, err := store.List(ctx)
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		r.Formatter.PrintUsers(list)
		return nil

	case "demo":
		return r.runUsersDemo(ctx, store)

	case "cleanup":
		if err := store.Cleanup(ctx); err != nil {
			return fmt.Errorf("users: %w", err)
		}
		r.Formatter.Successf("demo data cleaned up\n")
		return nil

	default:
		return fmt.Errorf("users: unknown subcommand %q (want list, demo, or cleanup)", sub)
	}
}

// runUsersDemo replays the scripted exercise: create a namespace, create
// three users, list them, then tear everything down.
func (r *Router) runUsersDemo(ctx context.Context, store *users.Store) error {
	if err := store.CreateNamespace(ctx, demoNamespace); err != nil {
		return fmt.Errorf("users demo: %w", err)
	}
	r.Formatter.Successf("database namespace %q created\n", demoNamespace)

	for _, u := range users.DemoUsers {
		if err := store.Create(ctx, u); err != nil {
			return fmt.Errorf("users demo: %w", err)
		}
		r.Formatter.Successf("user %q (%s) with role %q created\n", u.Name, u.Email, u.Role)
	}

	list, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("users demo: %w", err)
	}
	r.Formatter.PrintUsers(list)

	if _, err := store.DeleteNamespace(ctx, demoNamespace); err != nil {
		return fmt.Errorf("users demo: %w", err)
	}
	if err := store.Cleanup(ctx); err != nil {
		return fmt.Errorf("users demo: %w", err)
	}
	r.Formatter.Successf("demo data cleaned up\n")
	return nil
}
