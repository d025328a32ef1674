// Package texmk orchestrates document builds: it resolves a build
// configuration and runs an ordered sequence of external typesetting and
// conversion programs against a TeX source.
//
// # Quick Start
//
// Create a service and build a document:
//
//	svc := texmk.New()
//	if err := svc.Make(ctx, []string{"paper.tex"}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// The build configuration lives either in a magic comment block embedded in
// the source document:
//
//	% +++
//	% latex = "xelatex"
//	% sequence = ["latex", "dvipdf"]
//	% +++
//	\documentclass{article}
//	...
//
// or in a standalone texmk.toml file, which must then name the document to
// build:
//
//	source = "paper.tex"
//	latex = "lualatex"
//
// The format is a restricted TOML subset (see internal/tomlex): flat
// key/value assignment with string and numeric scalars, arrays of scalars,
// [programs.X] tables, and comments.
//
// # Programs and placeholders
//
// Each sequence entry names a program. A program's argument template may use
// two placeholders, expanded against the current build file before
// invocation:
//
//	%T  the full filename as given ("dir/paper.tex")
//	%B  the filename without directory and extension ("paper")
//
// A program with an empty command is declared but disabled and is skipped
// without spawning a process. Programs run synchronously, in sequence order;
// a failing program does not stop the sequence unless WithStopOnFailure is
// set.
//
// # Reruns
//
// A program with an aux_file template (the default latex program uses
// "%B.aux") is rerun while that file's content keeps changing, up to
// max_repeat total runs, so unresolved cross-references settle.
package texmk
