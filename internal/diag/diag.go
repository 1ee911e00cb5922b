// Package diag runs connection and capability checks against a Redis
// server: ping, INFO probing, module discovery, and a search self-test.
package diag

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rowantrollope/redis-route-cli/internal/modules"
	"github.com/rowantrollope/redis-route-cli/internal/search"
)

// SearchModule is the MODULE LIST name of the RediSearch module.
const SearchModule = "search"

// ServerInfo is the subset of INFO fields the diagnostics report.
type ServerInfo struct {
	Version string
	Mode    string
	OS      string
}

// Report is the result of a full diagnostic run.
type Report struct {
	PingOK     bool
	PingErr    error
	Info       ServerInfo
	Modules    []modules.Record
	Search     *modules.Record // nil when the search module is absent
	SearchPing bool            // FT._LIST probe result
}

// Run executes all diagnostic checks. Individual check failures are
// recorded in the report, not returned: a server without MODULE LIST
// access still produces a useful report.
func Run(ctx context.Context, rdb *redis.Client) Report {
	var r Report

	if err := rdb.Ping(ctx).Err(); err != nil {
		r.PingErr = err
		return r
	}
	r.PingOK = true

	if raw, err := rdb.Info(ctx, "server").Result(); err == nil {
		r.Info = ParseServerInfo(raw)
	}

	if raw, err := FetchModules(ctx, rdb); err == nil {
		r.Modules = modules.List(raw)
		if rec, ok := modules.Find(raw, SearchModule); ok {
			r.Search = &rec
		}
	}

	// FT._LIST succeeds on Redis 8.0+ even when MODULE LIST shows no
	// separate search module.
	r.SearchPing = search.Detect(ctx, rdb)

	return r
}

// FetchModules issues MODULE LIST and returns the raw reply for the
// normalizer.
func FetchModules(ctx context.Context, rdb *redis.Client) (interface{}, error) {
	return rdb.Do(ctx, "MODULE", "LIST").Result()
}

// ParseServerInfo extracts version, mode, and OS from raw INFO text.
// Missing fields stay empty.
func ParseServerInfo(raw string) ServerInfo {
	var info ServerInfo
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch key {
		case "redis_version":
			info.Version = value
		case "redis_mode":
			info.Mode = value
		case "os":
			info.OS = value
		}
	}
	return info
}

// SearchAvailable reports whether search-backed routing can work on this
// report: either the module is installed or the FT probe succeeded.
func (r Report) SearchAvailable() bool {
	return r.Search != nil || r.SearchPing
}
