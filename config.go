package texmk

// Default configuration values.
const (
	// DefaultConfigFile is the well-known standalone configuration filename,
	// consulted when no document is named on invocation.
	DefaultConfigFile = "texmk.toml"

	// DefaultLatex is the engine used when the configuration names none.
	DefaultLatex = "lualatex"

	// DefaultMaxRepeat caps how often a program with rerun detection is
	// invoked for one sequence step.
	DefaultMaxRepeat = 3
)

// Names of the programs declared by the default configuration.
const (
	ProgramLatex  = "latex"
	ProgramDvipdf = "dvipdf"
)

// ProgramSpec describes one external program the sequence can invoke.
type ProgramSpec struct {
	// Command is the executable to run. The empty string means declared but
	// disabled: the step is skipped without spawning a process.
	Command string

	// Args is the argument template, split on whitespace with %T and %B
	// placeholders expanded per field.
	Args string

	// AuxFile is an optional placeholder template naming the auxiliary file
	// whose content decides reruns. Empty disables rerun detection.
	AuxFile string
}

// Config is the resolved build configuration. It is created once with
// defaults, mutated only by Merge, and read-only during execution.
type Config struct {
	// Latex is the default typesetting engine; it doubles as the command
	// fallback for the latex program.
	Latex string

	// Sequence lists program names in execution order. Duplicates are
	// permitted and run as often as they appear.
	Sequence []string

	// MaxRepeat caps total runs of one step when rerun detection applies.
	MaxRepeat int

	// Source names the document to build. Required only in standalone
	// configuration mode.
	Source string

	// Programs maps program names to their specs.
	Programs map[string]ProgramSpec
}

// DefaultConfig returns the built-in configuration: a typesetting step
// followed by a DVI-to-PDF conversion step. Both programs start with empty
// commands; the latex program picks its command up from Latex through the
// merge-time fallback, while dvipdf stays disabled until configured.
func DefaultConfig() *Config {
	return &Config{
		Latex:     DefaultLatex,
		Sequence:  []string{ProgramLatex, ProgramDvipdf},
		MaxRepeat: DefaultMaxRepeat,
		Programs: map[string]ProgramSpec{
			ProgramLatex:  {Command: "", Args: "%T", AuxFile: "%B.aux"},
			ProgramDvipdf: {Command: "", Args: "%B"},
		},
	}
}
