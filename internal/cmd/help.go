package cmd

import (
	"context"
	"fmt"
)

var commandHelp = map[string]string{
	"route":     "route \"query\" | route --test    Route a query to its best topic",
	"multi":     "multi [--top N] \"query\"         Show all matching routes for a query",
	"routes":    "routes                          Show the configured route catalog",
	"diag":      "diag                            Run connection and capability checks",
	"modules":   "modules                         List installed server modules",
	"replicate": "replicate [--count N] [--wait S]  Seed source and verify replica reads",
	"users":     "users [list|demo|cleanup]       User-record exercise over hashes and sets",
	"help":      "help [command]                  Show this help",
	"clear":     "clear                           Clear the terminal",
	"exit":      "exit / quit                     Exit the REPL",
}

func (r *Router) handleHelp(ctx context.Context, args []string) error {
	if len(args) > 0 {
		cmd := args[0]
		if help, ok := commandHelp[cmd]; ok {
			fmt.Fprintln(r.Formatter.Writer, help)
		} else {
			fmt.Fprintf(r.Formatter.Writer, "No help available for '%s'\n", cmd)
		}
		return nil
	}

	fmt.Fprintln(r.Formatter.Writer, "redis-route-cli — Redis diagnostics and semantic routing")
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Routing commands:")
	for _, cmd := range []string{"route", "multi", "routes"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Diagnostics:")
	for _, cmd := range []string{"diag", "modules", "replicate", "users"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Other:")
	for _, cmd := range []string{"help", "clear", "exit"} {
		fmt.Fprintf(r.Formatter.Writer, "  %s\n", commandHelp[cmd])
	}
	fmt.Fprintln(r.Formatter.Writer, "")
	fmt.Fprintln(r.Formatter.Writer, "Any unrecognized command is passed through to redis-cli.")
	return nil
}
