// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/makedoc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/makedoc) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/makedoc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputOpen returns a hint for an unreadable source HTML file.
func ForInputOpen() string {
	return format("pass the asciidoctor HTML output, e.g. makedoc build/adoc.html 0.22")
}

// ForTemplateRead returns hints for a template that cannot be loaded.
func ForTemplateRead(available []string) string {
	hint := "run from the site root or pass --template /path/to/__template.js"
	if len(available) > 0 {
		hint += "; built-in: " + strings.Join(available, ", ")
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or use --output-dir")
}

// ForPlaceholder returns a hint when strict placeholder checks fail.
func ForPlaceholder() string {
	return format("each placeholder must appear exactly once; drop --strict to replace only the first")
}

// ForEmptyFragments returns a hint when the scan found no TOC and no body.
func ForEmptyFragments() string {
	return formatHints([]string{
		"input may not be asciidoctor HTML",
		"check markers in the config file",
	})
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
