package texmk

import (
	"strings"

	"github.com/alnah/go-texmk/internal/fileutil"
)

// Placeholder tokens recognized in argument templates.
const (
	PlaceholderTarget = "%T" // the full filename as given
	PlaceholderBase   = "%B" // the filename without directory and extension
)

// Command is a fully expanded program invocation, held as an argument
// vector. Execution never goes through a shell, so filenames containing
// spaces or metacharacters need no quoting.
type Command struct {
	Name string
	Args []string
}

// String returns the command line in display form, fields joined by single
// spaces. This is the form logged before execution.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// BuildCommand expands a program's argument template against a filename.
// The template is split on whitespace into fields; within each field every
// %T becomes the filename verbatim and every %B the filename stripped of
// its directory prefix and final extension.
func BuildCommand(filename string, spec ProgramSpec) Command {
	fields := strings.Fields(spec.Args)
	args := make([]string, 0, len(fields))
	for _, field := range fields {
		args = append(args, expandPlaceholders(field, filename))
	}
	return Command{Name: spec.Command, Args: args}
}

// expandPlaceholders substitutes %T and %B in one template field.
func expandPlaceholders(field, filename string) string {
	field = strings.ReplaceAll(field, PlaceholderTarget, filename)
	field = strings.ReplaceAll(field, PlaceholderBase, fileutil.Stem(filename))
	return field
}
