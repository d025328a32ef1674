package texmk

import (
	"fmt"

	"github.com/alnah/go-texmk/internal/tomlex"
)

// Merge applies a scanned table on top of the configuration. Top-level keys
// replace the matching field wholesale: merging a table that carries
// "programs" drops every default program not re-declared in it. There is no
// recursive merge.
//
// After replacement the command fallback runs for every declared program
// name: a program whose command is still empty adopts a top-level string
// scalar of the same name, and the latex program additionally falls back to
// the Latex field.
func (c *Config) Merge(tab *tomlex.Table) error {
	for _, key := range tab.Keys() {
		v, _ := tab.Get(key)
		switch key {
		case "latex":
			s, err := asString(key, v)
			if err != nil {
				return err
			}
			c.Latex = s
		case "sequence":
			seq, err := asStringArray(key, v)
			if err != nil {
				return err
			}
			c.Sequence = seq
		case "max_repeat":
			if v.Kind() != tomlex.KindInteger {
				return fmt.Errorf("%w: max_repeat must be an integer, got %s", ErrInvalidConfig, v.Kind())
			}
			c.MaxRepeat = int(v.Int())
		case "source":
			s, err := asString(key, v)
			if err != nil {
				return err
			}
			c.Source = s
		case "programs":
			programs, err := asPrograms(v)
			if err != nil {
				return err
			}
			c.Programs = programs
		default:
			// Unknown top-level keys are kept only as potential command
			// fallbacks below.
		}
	}

	c.applyCommandFallback(tab)
	return nil
}

// applyCommandFallback fills empty program commands from same-named
// top-level string scalars. The rule covers every declared program, not a
// fixed pair of names.
func (c *Config) applyCommandFallback(tab *tomlex.Table) {
	for name, spec := range c.Programs {
		if spec.Command != "" {
			continue
		}
		if v, ok := tab.Get(name); ok && v.Kind() == tomlex.KindString {
			spec.Command = v.Str()
		} else if name == ProgramLatex {
			spec.Command = c.Latex
		}
		c.Programs[name] = spec
	}
}

func asString(key string, v tomlex.Value) (string, error) {
	if v.Kind() != tomlex.KindString {
		return "", fmt.Errorf("%w: %s must be a string, got %s", ErrInvalidConfig, key, v.Kind())
	}
	return v.Str(), nil
}

func asStringArray(key string, v tomlex.Value) ([]string, error) {
	if v.Kind() != tomlex.KindArray {
		return nil, fmt.Errorf("%w: %s must be an array of strings, got %s", ErrInvalidConfig, key, v.Kind())
	}
	out := make([]string, 0, len(v.Array()))
	for _, elem := range v.Array() {
		if elem.Kind() != tomlex.KindString {
			return nil, fmt.Errorf("%w: %s elements must be strings, got %s", ErrInvalidConfig, key, elem.Kind())
		}
		out = append(out, elem.Str())
	}
	return out, nil
}

func asPrograms(v tomlex.Value) (map[string]ProgramSpec, error) {
	if v.Kind() != tomlex.KindTable {
		return nil, fmt.Errorf("%w: programs must be a table, got %s", ErrInvalidConfig, v.Kind())
	}

	programs := make(map[string]ProgramSpec, v.Table().Len())
	for _, name := range v.Table().Keys() {
		entry, _ := v.Table().Get(name)
		if entry.Kind() != tomlex.KindTable {
			return nil, fmt.Errorf("%w: programs.%s must be a table, got %s", ErrInvalidConfig, name, entry.Kind())
		}

		var spec ProgramSpec
		fields := map[string]*string{
			"command":  &spec.Command,
			"args":     &spec.Args,
			"aux_file": &spec.AuxFile,
		}
		for field, dst := range fields {
			fv, ok := entry.Table().Get(field)
			if !ok {
				continue
			}
			if fv.Kind() != tomlex.KindString {
				return nil, fmt.Errorf("%w: programs.%s.%s must be a string, got %s",
					ErrInvalidConfig, name, field, fv.Kind())
			}
			*dst = fv.Str()
		}
		programs[name] = spec
	}
	return programs, nil
}
