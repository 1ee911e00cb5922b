package cli

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rowantrollope/redis-route-cli/internal/cmd"
)

// Common Redis commands for completion
var commonRedisCommands = []string{
	"GET", "SET", "DEL", "EXISTS", "KEYS", "SCAN", "TYPE",
	"HGET", "HSET", "HGETALL", "HDEL",
	"SADD", "SMEMBERS", "SREM", "SCARD",
	"LPUSH", "RPUSH", "LRANGE", "LLEN",
	"EXPIRE", "TTL", "PERSIST",
	"INFO", "DBSIZE", "PING",
	"MODULE", "CONFIG", "CLIENT",
	"FT.SEARCH", "FT.INFO", "FT._LIST",
}

// Completer provides tab completion for the REPL.
type Completer struct {
	router *cmd.Router
}

// NewCompleter creates a tab completer for the REPL.
func NewCompleter(router *cmd.Router) *Completer {
	return &Completer{router: router}
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)

	// Complete command name
	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(parts) == 1 {
			prefix = parts[0]
		}
		return c.completeCommand(prefix), len(prefix)
	}

	// After route/multi, offer route names for quick inspection workflows.
	first := strings.ToLower(parts[0])
	if first == "route" || first == "multi" || first == "routes" {
		partial := ""
		if !strings.HasSuffix(lineStr, " ") {
			partial = parts[len(parts)-1]
		}
		if strings.HasPrefix(partial, "-") {
			return nil, 0
		}
		return c.completeRouteName(partial), len(partial)
	}

	return nil, 0
}

func (c *Completer) completeCommand(prefix string) [][]rune {
	var candidates []string

	for _, name := range c.router.CommandNames() {
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			candidates = append(candidates, name)
		}
	}

	for _, name := range commonRedisCommands {
		if strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(prefix)) {
			candidates = append(candidates, name)
		}
	}

	sort.Strings(candidates)

	result := make([][]rune, len(candidates))
	for i, cand := range candidates {
		suffix := cand[len(prefix):]
		result[i] = []rune(suffix + " ")
	}
	return result
}

func (c *Completer) completeRouteName(partial string) [][]rune {
	var candidates [][]rune
	for _, route := range c.router.Catalog.Routes() {
		if strings.HasPrefix(route.Name, partial) {
			candidates = append(candidates, []rune(route.Name[len(partial):]+" "))
		}
	}
	return candidates
}

// Ensure Completer satisfies the readline.AutoCompleter interface.
var _ readline.AutoCompleter = (*Completer)(nil)
