// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-docfmt/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-docfmt) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-docfmt") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSpecNotFound returns hints for style spec not found errors.
func ForSpecNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAIUnavailable returns hints for AI service setup errors.
func ForAIUnavailable() string {
	var hints []string
	if os.Getenv("OPENAI_API_KEY") == "" {
		hints = append(hints, "set OPENAI_API_KEY")
	}
	hints = append(hints, "or run without --ai for rule-based typing")
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
