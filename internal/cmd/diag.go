package cmd

import (
	"context"
	"fmt"

	"github.com/rowantrollope/redis-route-cli/internal/diag"
	"github.com/rowantrollope/redis-route-cli/internal/modules"
)

func (r *Router) handleDiag(ctx context.Context, args []string) error {
	report := diag.Run(ctx, r.Rdb)
	r.Formatter.PrintDiag(r.Config.Addr(), report)
	return nil
}

func (r *Router) handleModules(ctx context.Context, args []string) error {
	raw, err := diag.FetchModules(ctx, r.Rdb)
	if err != nil {
		return fmt.Errorf("modules: %w", err)
	}

	records := modules.List(raw)
	table := make([][2]string, len(records))
	for i, rec := range records {
		table[i] = [2]string{rec.Name, rec.Version}
	}
	r.Formatter.PrintModuleTable(table)
	return nil
}
