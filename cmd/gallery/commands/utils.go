// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: String truncation and flag validation helpers
package commands

import "fmt"

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// validatePeriod checks a stats period flag value
func validatePeriod(period string) error {
	switch period {
	case "24h", "7d", "30d", "all":
		return nil
	}
	return fmt.Errorf("period must be one of 24h, 7d, 30d, all; got %q", period)
}
