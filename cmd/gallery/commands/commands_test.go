// ABOUTME: Structural tests for the ask, stats, top, export and sweep commands
// ABOUTME: Verifies flags, arg constraints and input validation without services

package commands

import (
	"strings"
	"testing"
)

func TestNewAskCmd(t *testing.T) {
	cmd := NewAskCmd()

	if !strings.HasPrefix(cmd.Use, "ask") {
		t.Errorf("Use = %q, want ask prefix", cmd.Use)
	}
	if cmd.Args == nil {
		t.Error("ask should require exactly one argument")
	}
	for _, flag := range []string{"session", "language"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag not found", flag)
		}
	}
}

func TestNewStatsCmd(t *testing.T) {
	cmd := NewStatsCmd()

	flag := cmd.Flags().Lookup("period")
	if flag == nil {
		t.Fatal("--period flag not found")
	}
	if flag.DefValue != "24h" {
		t.Errorf("--period default = %q, want 24h", flag.DefValue)
	}
}

func TestNewTopCmd(t *testing.T) {
	cmd := NewTopCmd()

	period := cmd.Flags().Lookup("period")
	if period == nil {
		t.Fatal("--period flag not found")
	}
	if period.DefValue != "all" {
		t.Errorf("--period default = %q, want all", period.DefValue)
	}

	limit := cmd.Flags().Lookup("limit")
	if limit == nil {
		t.Fatal("--limit flag not found")
	}
	if limit.DefValue != "10" {
		t.Errorf("--limit default = %q, want 10", limit.DefValue)
	}
}

func TestNewExportCmd(t *testing.T) {
	cmd := NewExportCmd()

	for _, flag := range []string{"period", "export-format", "output"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag not found", flag)
		}
	}

	format := cmd.Flags().Lookup("export-format")
	if format.DefValue != "json" {
		t.Errorf("--export-format default = %q, want json", format.DefValue)
	}
}

func TestNewSweepCmd(t *testing.T) {
	cmd := NewSweepCmd()

	if cmd.Flags().Lookup("days") == nil {
		t.Error("--days flag not found")
	}
}

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want mcp", cmd.Use)
	}
	if cmd.Example == "" {
		t.Error("mcp command should carry configuration examples")
	}
}

func TestValidatePeriod(t *testing.T) {
	for _, period := range []string{"24h", "7d", "30d", "all"} {
		if err := validatePeriod(period); err != nil {
			t.Errorf("validatePeriod(%q) = %v, want nil", period, err)
		}
	}
	for _, period := range []string{"", "1h", "week", "ALL"} {
		if err := validatePeriod(period); err == nil {
			t.Errorf("validatePeriod(%q) = nil, want error", period)
		}
	}
}

func TestValidatePositiveInt(t *testing.T) {
	if err := validatePositiveInt(5, "limit"); err != nil {
		t.Errorf("expected 5 valid, got %v", err)
	}
	if err := validatePositiveInt(0, "limit"); err == nil {
		t.Error("expected 0 rejected")
	}
	if err := validatePositiveInt(-3, "limit"); err == nil {
		t.Error("expected -3 rejected")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer string that needs cutting", 10, "a longe..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
