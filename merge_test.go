package texmk

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-texmk/internal/tomlex"
)

func mergeConfig(t *testing.T, raw string) *Config {
	t.Helper()
	tab, err := tomlex.Parse(raw, "test.toml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cfg := DefaultConfig()
	if err := cfg.Merge(tab); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	return cfg
}

func TestMerge_SequenceOnlyLeavesOtherFields(t *testing.T) {
	cfg := mergeConfig(t, `sequence = ["latex", "bibtex", "latex"]`)

	wantSeq := []string{"latex", "bibtex", "latex"}
	for i, w := range wantSeq {
		if cfg.Sequence[i] != w {
			t.Errorf("Sequence[%d] = %q, want %q", i, cfg.Sequence[i], w)
		}
	}
	if cfg.Latex != "lualatex" {
		t.Errorf("Latex = %q, want default preserved", cfg.Latex)
	}
	if cfg.MaxRepeat != 3 {
		t.Errorf("MaxRepeat = %d, want default preserved", cfg.MaxRepeat)
	}
	if len(cfg.Programs) != 2 {
		t.Errorf("len(Programs) = %d, want default pair preserved", len(cfg.Programs))
	}
}

func TestMerge_ProgramsReplaceWholesale(t *testing.T) {
	// Merging a table that declares programs drops every default entry not
	// re-declared: replace, not recursive merge.
	cfg := mergeConfig(t, strings.Join([]string{
		`[programs.bibtex]`,
		`command = "bibtex"`,
		`args = "%B"`,
	}, "\n"))

	if len(cfg.Programs) != 1 {
		t.Fatalf("len(Programs) = %d, want 1 (defaults dropped)", len(cfg.Programs))
	}
	if _, ok := cfg.Programs["latex"]; ok {
		t.Error("default latex program survived a programs replace")
	}
	bibtex := cfg.Programs["bibtex"]
	if bibtex.Command != "bibtex" || bibtex.Args != "%B" {
		t.Errorf("bibtex = %+v, want command/args from table", bibtex)
	}
}

func TestMerge_ScalarOverrides(t *testing.T) {
	cfg := mergeConfig(t, strings.Join([]string{
		`latex = "xelatex"`,
		`max_repeat = 7`,
		`source = "main.tex"`,
	}, "\n"))

	if cfg.Latex != "xelatex" {
		t.Errorf("Latex = %q, want %q", cfg.Latex, "xelatex")
	}
	if cfg.MaxRepeat != 7 {
		t.Errorf("MaxRepeat = %d, want 7", cfg.MaxRepeat)
	}
	if cfg.Source != "main.tex" {
		t.Errorf("Source = %q, want %q", cfg.Source, "main.tex")
	}
}

func TestMerge_CommandFallback(t *testing.T) {
	t.Run("latex falls back to the Latex field", func(t *testing.T) {
		cfg := mergeConfig(t, "")
		if got := cfg.Programs["latex"].Command; got != "lualatex" {
			t.Errorf("latex.Command = %q, want %q", got, "lualatex")
		}
	})

	t.Run("latex key feeds the latex program", func(t *testing.T) {
		cfg := mergeConfig(t, `latex = "platex"`)
		if got := cfg.Programs["latex"].Command; got != "platex" {
			t.Errorf("latex.Command = %q, want %q", got, "platex")
		}
	})

	t.Run("fallback covers every declared program", func(t *testing.T) {
		cfg := mergeConfig(t, strings.Join([]string{
			`dvipdf = "dvipdfmx"`,
			`bibtex = "pbibtex"`,
			`[programs.latex]`,
			`args = "%T"`,
			`[programs.dvipdf]`,
			`args = "%B"`,
			`[programs.bibtex]`,
			`args = "%B"`,
		}, "\n"))

		if got := cfg.Programs["dvipdf"].Command; got != "dvipdfmx" {
			t.Errorf("dvipdf.Command = %q, want %q", got, "dvipdfmx")
		}
		if got := cfg.Programs["bibtex"].Command; got != "pbibtex" {
			t.Errorf("bibtex.Command = %q, want %q", got, "pbibtex")
		}
		if got := cfg.Programs["latex"].Command; got != "lualatex" {
			t.Errorf("latex.Command = %q, want %q", got, "lualatex")
		}
	})

	t.Run("explicit command wins over fallback", func(t *testing.T) {
		cfg := mergeConfig(t, strings.Join([]string{
			`latex = "xelatex"`,
			`[programs.latex]`,
			`command = "pdflatex"`,
		}, "\n"))
		if got := cfg.Programs["latex"].Command; got != "pdflatex" {
			t.Errorf("latex.Command = %q, want %q", got, "pdflatex")
		}
	})

	t.Run("non-string scalar is not a fallback", func(t *testing.T) {
		cfg := mergeConfig(t, strings.Join([]string{
			`dvipdf = 3`,
			`[programs.dvipdf]`,
			`args = "%B"`,
		}, "\n"))
		if got := cfg.Programs["dvipdf"].Command; got != "" {
			t.Errorf("dvipdf.Command = %q, want empty", got)
		}
	})
}

func TestMerge_TypeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "latex must be string", raw: "latex = 3"},
		{name: "sequence must be array", raw: `sequence = "latex"`},
		{name: "sequence elements must be strings", raw: "sequence = [1, 2]"},
		{name: "max_repeat must be integer", raw: `max_repeat = "three"`},
		{name: "max_repeat rejects float", raw: "max_repeat = 2.5"},
		{name: "source must be string", raw: "source = 1"},
		{name: "program entry must be table", raw: "[programs]\nlatex = 1"},
		{name: "program command must be string", raw: "[programs.latex]\ncommand = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := tomlex.Parse(tt.raw, "test.toml")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			err = DefaultConfig().Merge(tab)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMerge_UnknownKeysIgnored(t *testing.T) {
	cfg := mergeConfig(t, `ppl = "some-preprocessor"`)
	if cfg.Latex != "lualatex" || len(cfg.Programs) != 2 {
		t.Error("unknown top-level key disturbed the configuration")
	}
}
