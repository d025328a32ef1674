package main

import (
	"errors"
	"fmt"
	"testing"

	texmk "github.com/alnah/go-texmk"
	"github.com/alnah/go-texmk/internal/tomlex"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "config not found", err: texmk.ErrConfigNotFound, want: ExitGeneral},
		{name: "missing source", err: texmk.ErrMissingSource, want: ExitGeneral},
		{name: "unknown program", err: fmt.Errorf("%w: %q", texmk.ErrUnknownProgram, "bibtex"), want: ExitGeneral},
		{name: "process failure", err: texmk.ErrProcessFailed, want: ExitGeneral},
		{
			name: "parse error gets the parser code",
			err:  tomlex.NewParseError(tomlex.Position{Line: 1, Column: 1}, "duplicate key"),
			want: ExitParser,
		},
		{
			name: "wrapped parse error still detected",
			err:  fmt.Errorf("resolving config: %w", tomlex.NewLexError(tomlex.Position{Line: 2, Column: 5}, "unterminated string")),
			want: ExitParser,
		},
		{name: "arbitrary error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
