package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   bool
		check     func(t *testing.T, f *cliFlags)
	}{
		{
			name: "no arguments",
			args: []string{"texmk"},
			check: func(t *testing.T, f *cliFlags) {
				if len(f.files) != 0 {
					t.Errorf("files = %v, want none", f.files)
				}
				if f.quiet || f.verbose || f.dryRun || f.watch || f.version || f.help {
					t.Error("boolean flags should default to false")
				}
			},
		},
		{
			name: "file arguments collected",
			args: []string{"texmk", "paper.tex", "extra.tex"},
			check: func(t *testing.T, f *cliFlags) {
				if len(f.files) != 2 || f.files[0] != "paper.tex" {
					t.Errorf("files = %v", f.files)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"texmk", "-q", "-n", "-s", "paper.tex"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.quiet || !f.dryRun || !f.stopOnFailure {
					t.Errorf("flags = %+v", f)
				}
				if len(f.files) != 1 {
					t.Errorf("files = %v", f.files)
				}
			},
		},
		{
			name: "long flags",
			args: []string{"texmk", "--verbose", "--watch", "--config", "build/texmk.toml"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.verbose || !f.watch {
					t.Errorf("flags = %+v", f)
				}
				if f.config != "build/texmk.toml" {
					t.Errorf("config = %q", f.config)
				}
			},
		},
		{
			name: "version flag",
			args: []string{"texmk", "-V"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.version {
					t.Error("version = false, want true")
				}
			},
		},
		{
			name:    "unknown flag is an error",
			args:    []string{"texmk", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestResolveSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := resolveSettings(&cliFlags{}, &envConfig{}, &userConfig{})
		if s.quiet || s.verbose || s.stopOnFailure || s.latex != "" || s.configPath != "" {
			t.Errorf("settings = %+v, want zero values", s)
		}
	})

	t.Run("env fills gaps", func(t *testing.T) {
		s := resolveSettings(&cliFlags{}, &envConfig{Latex: "xelatex", Quiet: true, Config: "ci.toml"}, &userConfig{})
		if s.latex != "xelatex" || !s.quiet || s.configPath != "ci.toml" {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("flags beat env for config path", func(t *testing.T) {
		s := resolveSettings(&cliFlags{config: "local.toml"}, &envConfig{Config: "ci.toml"}, &userConfig{})
		if s.configPath != "local.toml" {
			t.Errorf("configPath = %q, want local.toml", s.configPath)
		}
	})

	t.Run("env latex beats user config latex", func(t *testing.T) {
		s := resolveSettings(&cliFlags{}, &envConfig{Latex: "xelatex"}, &userConfig{Latex: "pdflatex"})
		if s.latex != "xelatex" {
			t.Errorf("latex = %q, want xelatex", s.latex)
		}
	})

	t.Run("user config supplies defaults", func(t *testing.T) {
		s := resolveSettings(&cliFlags{}, &envConfig{}, &userConfig{Latex: "pdflatex", StopOnFailure: true})
		if s.latex != "pdflatex" || !s.stopOnFailure {
			t.Errorf("settings = %+v", s)
		}
	})

	t.Run("quiet wins over verbose", func(t *testing.T) {
		s := resolveSettings(&cliFlags{quiet: true, verbose: true}, &envConfig{}, &userConfig{})
		if !s.quiet || s.verbose {
			t.Errorf("settings = %+v, want quiet only", s)
		}
	})
}
