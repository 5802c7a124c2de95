// Package options implements the command line grammar: bundled short flags,
// value options with inline or separate values, long options, and the `--`
// terminator. Parsing accumulates into an explicit Config value that is
// returned frozen to the caller; there is no process-wide option state.
package options

import (
	"github.com/markstos/tmux-xpanes/pkg/layout"
)

// DefaultRepstr is the replacement token used when none was supplied.
const DefaultRepstr = "{}"

// SSHUtility is the command template installed by --ssh. The token is part
// of the template itself, matching the alias the option stands for.
const SSHUtility = "ssh -o StrictHostKeyChecking=no {}"

// Config is the parsed invocation. Boolean flags are idempotent; repeated
// value options keep the last occurrence.
type Config struct {
	Help        bool
	Version     bool
	Desync      bool
	ExecuteAsIs bool
	DryRun      bool
	Stay        bool

	LogEnabled bool
	LogDir     string
	LogFormat  string

	// Repstr is the replacement token. RepstrSet records that -I appeared
	// at all: an empty value with RepstrSet resets to the default token.
	Repstr    string
	RepstrSet bool

	// Utility is the command template. UtilitySet records that -c or
	// --ssh supplied one.
	Utility    string
	UtilitySet bool

	// CommandOption names the option that last made the invocation
	// command-producing (-c, -e or --ssh), for diagnostics.
	CommandOption string

	SocketPath string
	Layout     layout.Layout
	MaxPerPane int
}

// CommandProducing reports whether an explicit command template option was
// supplied. In pipe mode this conflicts with positional arguments.
func (c Config) CommandProducing() bool {
	return c.UtilitySet || c.ExecuteAsIs
}

// HelpEntry describes one option for usage rendering.
type HelpEntry struct {
	Flags string
	Arg   string
	Desc  string
}

// HelpEntries returns the option table in the order usage text presents it.
func HelpEntries() []HelpEntry {
	return []HelpEntry{
		{"-h, --help", "", "Display this help and exit"},
		{"-V, --version", "", "Output version information and exit"},
		{"-c", "UTILITY", "Command template run in each pane; the replacement token is substituted with the pane's arguments"},
		{"-d, --desync", "", "Do not synchronize keyboard input between panes"},
		{"-e", "", "Execute each argument as a command as-is (equivalent to -c with a bare replacement token)"},
		{"-I", "REPSTR", "Replacement token in the command template (default: {})"},
		{"-l", "LAYOUT", "Pane layout: t (tiled), eh (even-horizontal), ev (even-vertical), mh (main-horizontal), mv (main-vertical)"},
		{"-n", "NUMBER", "Maximum number of arguments assigned to one pane"},
		{"-S", "SOCKET", "Alternate socket path handed to the multiplexer"},
		{"--log", "[=DIR]", "Enable pane output capture, optionally into DIR"},
		{"--log-format", "=FMT", "Pane log file name format ([:ARG:], [:PID:] and date directives)"},
		{"--ssh", "", "Shorthand for -c '" + SSHUtility + "'"},
		{"--stay", "", "Do not attach to the created session (detached mode stays detached)"},
		{"--dry-run", "", "Print the resolved pane plan without creating panes"},
	}
}
