package cmd

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rowantrollope/redis-route-cli/internal/config"
	"github.com/rowantrollope/redis-route-cli/internal/output"
	"github.com/rowantrollope/redis-route-cli/internal/router"
)

// Router dispatches commands to the appropriate handler.
type Router struct {
	Rdb       *redis.Client
	Sem       *router.SemanticRouter // nil when routing is unavailable
	SemErr    string                 // reason routing is unavailable
	Catalog   *router.Catalog
	Config    *config.Config
	Formatter *output.Formatter
	handlers  map[string]Handler
}

// Handler is a function that handles a command.
type Handler func(ctx context.Context, args []string) error

// NewRouter creates a command router with all registered handlers.
func NewRouter(rdb *redis.Client, catalog *router.Catalog, cfg *config.Config, formatter *output.Formatter) *Router {
	r := &Router{
		Rdb:       rdb,
		Catalog:   catalog,
		Config:    cfg,
		Formatter: formatter,
		handlers:  make(map[string]Handler),
	}
	r.registerHandlers()
	return r
}

func (r *Router) registerHandlers() {
	r.handlers["route"] = r.handleRoute
	r.handlers["multi"] = r.handleMulti
	r.handlers["routes"] = r.handleRoutes
	r.handlers["info"] = r.handleRoutes
	r.handlers["diag"] = r.handleDiag
	r.handlers["modules"] = r.handleModules
	r.handlers["replicate"] = r.handleReplicate
	r.handlers["users"] = r.handleUsers
	r.handlers["help"] = r.handleHelp
	r.handlers["clear"] = r.handleClear
}

// Execute runs a parsed command line.
func (r *Router) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	if handler, ok := r.handlers[cmd]; ok {
		return handler(ctx, args)
	}

	// Passthrough to redis-cli
	return r.handlePassthrough(ctx, tokens)
}

// IsBuiltin returns true if the command is a built-in command.
func (r *Router) IsBuiltin(cmd string) bool {
	_, ok := r.handlers[strings.ToLower(cmd)]
	return ok
}

// CommandNames returns all registered command names.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}
