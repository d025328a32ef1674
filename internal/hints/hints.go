// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// texPrograms lists well-known TeX toolchain programs, so a missing one gets
// a distribution-level suggestion instead of a generic PATH hint.
var texPrograms = map[string]bool{
	"latex":       true,
	"pdflatex":    true,
	"lualatex":    true,
	"luajitlatex": true,
	"xelatex":     true,
	"platex":      true,
	"uplatex":     true,
	"bibtex":      true,
	"biber":       true,
	"makeindex":   true,
	"mendex":      true,
	"dvipdf":      true,
	"dvipdfmx":    true,
	"dvips":       true,
	"ps2pdf":      true,
}

// ForMissingProgram returns hints for a program that could not be started.
func ForMissingProgram(name string) string {
	hints := []string{"check that " + name + " is installed and on PATH"}
	if texPrograms[name] {
		hints = append(hints, "TeX Live and MiKTeX both provide it")
	}
	return formatHints(hints)
}

// ForConfigNotFound returns hints for a missing standalone configuration file.
func ForConfigNotFound(path string) string {
	return format("create " + path + " or use --config /path/to/file")
}

// ForMissingSource returns hints for a configuration that names no document.
func ForMissingSource() string {
	return format("set source = \"file.tex\" in the configuration")
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
