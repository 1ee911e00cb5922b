package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rowantrollope/redis-route-cli/internal/diag"
	"github.com/rowantrollope/redis-route-cli/internal/replica"
	"github.com/rowantrollope/redis-route-cli/internal/router"
	"github.com/rowantrollope/redis-route-cli/internal/users"
)

// Formatter handles text/JSON/colored output.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	JSON      bool
	Color     bool
}

// NewFormatter creates a new output formatter.
func NewFormatter(jsonMode, colorMode bool) *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		JSON:      jsonMode,
		Color:     colorMode,
	}
}

// Printf prints formatted text to stdout.
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	if f.Color {
		color.New(color.FgRed).Fprintf(f.ErrWriter, format, args...)
	} else {
		fmt.Fprintf(f.ErrWriter, format, args...)
	}
}

// Successf prints a green check-marked line.
func (f *Formatter) Successf(format string, args ...interface{}) {
	if f.Color {
		color.New(color.FgGreen).Fprintf(f.Writer, "✓ "+format, args...)
	} else {
		fmt.Fprintf(f.Writer, "✓ "+format, args...)
	}
}

// Failf prints a red cross-marked line to stdout (part of a report, not an
// error).
func (f *Formatter) Failf(format string, args ...interface{}) {
	if f.Color {
		color.New(color.FgRed).Fprintf(f.Writer, "✗ "+format, args...)
	} else {
		fmt.Fprintf(f.Writer, "✗ "+format, args...)
	}
}

// PrintJSON outputs a value as indented JSON.
func (f *Formatter) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- routing output ---

// PrintMatch prints a single routing result.
func (f *Formatter) PrintMatch(query string, m router.Match, ok bool) {
	if f.JSON {
		result := map[string]interface{}{"query": query}
		if ok {
			result["best_route"] = m.Name
			result["distance"] = m.Distance
			result["confidence"] = m.Confidence
		} else {
			result["best_route"] = nil
		}
		f.PrintJSON(result)
		return
	}

	if !ok {
		f.Println("No matching route found (query too dissimilar)")
		return
	}
	name := m.Name
	if f.Color {
		name = color.New(color.FgCyan, color.Bold).Sprint(name)
	}
	f.Printf("Best route: %s\n", name)
	f.Printf("  Distance:   %.4f\n", m.Distance)
	f.Printf("  Confidence: %.2f%%\n", m.Confidence)
}

// PrintMatches prints a route_many result set, best first.
func (f *Formatter) PrintMatches(query string, matches []router.Match) {
	if f.JSON {
		results := make([]map[string]interface{}, len(matches))
		for i, m := range matches {
			results[i] = map[string]interface{}{
				"route_name": m.Name,
				"distance":   m.Distance,
				"confidence": m.Confidence,
			}
		}
		f.PrintJSON(map[string]interface{}{"query": query, "matches": results})
		return
	}

	if len(matches) == 0 {
		f.Println("No matching routes found")
		return
	}
	f.Printf("Found %d matching routes:\n", len(matches))
	for i, m := range matches {
		f.Printf("  %d. %-20s distance %.4f  confidence %.2f%%\n", i+1, m.Name, m.Distance, m.Confidence)
	}
}

// PrintRoutes prints the route catalog.
func (f *Formatter) PrintRoutes(c *router.Catalog) {
	if f.JSON {
		routes := make([]map[string]interface{}, 0, c.Len())
		for _, r := range c.Routes() {
			routes = append(routes, map[string]interface{}{
				"name":               r.Name,
				"references":         len(r.References),
				"distance_threshold": r.DistanceThreshold,
				"metadata":           r.Metadata,
			})
		}
		f.PrintJSON(routes)
		return
	}

	f.Println("Configured routes:")
	for _, r := range c.Routes() {
		name := r.Name
		if f.Color {
			name = color.New(color.FgCyan).Sprint(name)
		}
		f.Printf("  %s\n", name)
		f.Printf("    references: %d\n", len(r.References))
		f.Printf("    threshold:  %.2f\n", r.DistanceThreshold)
		if cat, ok := r.Metadata["category"]; ok {
			f.Printf("    category:   %v\n", cat)
		}
		if prio, ok := r.Metadata["priority"]; ok {
			f.Printf("    priority:   %v\n", prio)
		}
	}
}

// --- diagnostics output ---

// PrintDiag prints a diagnostic report.
func (f *Formatter) PrintDiag(addr string, r diag.Report) {
	if f.JSON {
		result := map[string]interface{}{
			"addr":             addr,
			"ping":             r.PingOK,
			"search_available": r.SearchAvailable(),
			"modules":          r.Modules,
		}
		if r.PingErr != nil {
			result["ping_error"] = r.PingErr.Error()
		}
		if r.Info.Version != "" {
			result["version"] = r.Info.Version
			result["mode"] = r.Info.Mode
			result["os"] = r.Info.OS
		}
		if r.Search != nil {
			result["search_version"] = r.Search.Version
		}
		f.PrintJSON(result)
		return
	}

	if !r.PingOK {
		f.Failf("cannot reach %s: %s\n", addr, r.PingErr)
		return
	}
	f.Successf("connected to %s\n", addr)
	if r.Info.Version != "" {
		f.Printf("  version: %s\n", r.Info.Version)
		f.Printf("  mode:    %s\n", r.Info.Mode)
		f.Printf("  os:      %s\n", r.Info.OS)
	}
	if r.Search != nil {
		f.Successf("search module found: version %s\n", r.Search.Version)
	} else if r.SearchPing {
		f.Successf("search commands available (built-in)\n")
	} else {
		f.Failf("search not available\n")
	}
}

// PrintModuleTable prints module name/version pairs.
func (f *Formatter) PrintModuleTable(modules [][2]string) {
	if f.JSON {
		result := make([]map[string]string, len(modules))
		for i, m := range modules {
			result[i] = map[string]string{"name": m[0], "version": m[1]}
		}
		f.PrintJSON(result)
		return
	}

	if len(modules) == 0 {
		f.Println("No modules installed.")
		return
	}
	f.Printf("%-20s %s\n", "NAME", "VERSION")
	for _, m := range modules {
		f.Printf("%-20s %s\n", m[0], m[1])
	}
}

// --- replication output ---

// PrintReplicaSummary prints the outcome of a replication check.
func (f *Formatter) PrintReplicaSummary(s replica.Summary, count int) {
	if f.JSON {
		f.PrintJSON(map[string]interface{}{
			"inserted": s.Inserted,
			"read":     s.Read,
			"missing":  len(s.Missing),
			"verified": s.Verified,
		})
		return
	}

	if s.Verified {
		f.Successf("replication is working correctly\n")
	} else {
		f.Failf("replication probe did not appear on the replica\n")
	}
	f.Printf("  inserted into source:  %d/%d\n", s.Inserted, count)
	f.Printf("  read from replica:     %d/%d\n", s.Read, count)
	f.Printf("  missing/failed reads:  %d\n", len(s.Missing))
	if len(s.Missing) > 0 {
		shown := s.Missing
		if len(shown) > 10 {
			shown = shown[:10]
		}
		suffix := ""
		if len(s.Missing) > 10 {
			suffix = ", ..."
		}
		f.Printf("  missing keys: %s%s\n", strings.Join(shown, ", "), suffix)
	}
}

// --- users output ---

// PrintUsers prints a user listing table.
func (f *Formatter) PrintUsers(list []users.User) {
	if f.JSON {
		f.PrintJSON(list)
		return
	}

	if len(list) == 0 {
		f.Println("No users to display.")
		return
	}
	f.Printf("%-20s %-15s %-25s\n", "NAME", "ROLE", "EMAIL")
	f.Println(strings.Repeat("-", 60))
	for _, u := range list {
		f.Printf("%-20s %-15s %-25s\n", u.Name, u.Role, u.Email)
	}
}
