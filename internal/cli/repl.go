package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rowantrollope/redis-route-cli/internal/cmd"
	"github.com/rowantrollope/redis-route-cli/internal/config"
	"github.com/rowantrollope/redis-route-cli/internal/output"
)

// REPL is the interactive read-eval-print loop.
type REPL struct {
	Router    *cmd.Router
	Config    *config.Config
	Formatter *output.Formatter
}

// NewREPL creates a new REPL instance.
func NewREPL(router *cmd.Router, cfg *config.Config, formatter *output.Formatter) *REPL {
	return &REPL{
		Router:    router,
		Config:    cfg,
		Formatter: formatter,
	}
}

// Run starts the interactive REPL loop.
func (r *REPL) Run(ctx context.Context) error {
	completer := NewCompleter(r.Router)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          BuildPrompt(r.Config.RouterName, r.Config.ShouldColor()),
		HistoryFile:     r.Config.HistoryFile,
		HistoryLimit:    10000,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" || lower == "q" {
			return nil
		}

		if execErr := r.Router.Execute(ctx, line); execErr != nil {
			r.Formatter.Errorf("%s\n", execErr)
		}
	}
}
