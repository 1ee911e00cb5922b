package diag

import (
	"testing"

	"github.com/rowantrollope/redis-route-cli/internal/modules"
)

func TestParseServerInfo(t *testing.T) {
	raw := "# Server\r\nredis_version:7.2.4\r\nredis_mode:standalone\r\nos:Linux 6.1.0 x86_64\r\nuptime_in_seconds:42\r\n"

	info := ParseServerInfo(raw)
	if info.Version != "7.2.4" {
		t.Errorf("Version = %q, want 7.2.4", info.Version)
	}
	if info.Mode != "standalone" {
		t.Errorf("Mode = %q, want standalone", info.Mode)
	}
	if info.OS != "Linux 6.1.0 x86_64" {
		t.Errorf("OS = %q", info.OS)
	}
}

func TestParseServerInfoMissingFields(t *testing.T) {
	info := ParseServerInfo("# Server\nuptime_in_seconds:42\n")
	if info.Version != "" || info.Mode != "" || info.OS != "" {
		t.Errorf("expected empty fields, got %+v", info)
	}

	if info := ParseServerInfo(""); info != (ServerInfo{}) {
		t.Errorf("expected zero value for empty input, got %+v", info)
	}
}

func TestReportSearchAvailable(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   bool
	}{
		{"nothing", Report{}, false},
		{"module present", Report{Search: &modules.Record{Name: SearchModule, Version: "2.4.1"}}, true},
		{"ft probe only", Report{SearchPing: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.SearchAvailable(); got != tt.want {
				t.Errorf("SearchAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}
