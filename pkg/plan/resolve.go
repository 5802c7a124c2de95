// Package plan turns a parsed invocation into a per-pane execution plan:
// argument source resolution, batching, command template substitution and
// layout sequencing. Everything here is pure string work; no side effects
// happen until the finished plan reaches the driver.
package plan

import (
	"bufio"
	"io"
	"strings"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/pkg/options"
)

// Source identifies where pane arguments came from.
type Source int

const (
	// SourceArgv means positional command line arguments.
	SourceArgv Source = iota
	// SourceStdin means lines read from piped standard input.
	SourceStdin
)

func (s Source) String() string {
	if s == SourceStdin {
		return "stdin"
	}
	return "argv"
}

// Input carries the ambient facts resolution depends on.
type Input struct {
	// Stdin is read to exhaustion when pipe mode is active.
	Stdin io.Reader

	// StdinIsTTY reports whether standard input is an interactive
	// terminal. Pipe mode is active when it is not.
	StdinIsTTY bool

	// InsideSession reports whether the process is already running inside
	// an active multiplexer session.
	InsideSession bool
}

// Resolution is the resolved argument source plus the effective command
// template, replacement token and batch size.
type Resolution struct {
	Source    Source
	Args      []string
	Template  string
	Repstr    string
	BatchSize int
}

// Resolve decides the argument source and derives the command template.
//
// With an interactive stdin the positionals are the pane arguments. With a
// piped stdin the lines are the pane arguments, and positionals, if any,
// are reinterpreted as the command template instead.
func Resolve(cfg options.Config, positionals []string, in Input) (Resolution, error) {
	repstr := cfg.Repstr
	if !cfg.RepstrSet || repstr == "" {
		repstr = options.DefaultRepstr
	}

	if !in.StdinIsTTY {
		return resolvePipe(cfg, positionals, in, repstr)
	}

	if len(positionals) == 0 {
		return Resolution{}, errors.MissingArguments()
	}

	return Resolution{
		Source:    SourceArgv,
		Args:      positionals,
		Template:  deriveTemplate(cfg, repstr),
		Repstr:    repstr,
		BatchSize: explicitOrOne(cfg),
	}, nil
}

func resolvePipe(cfg options.Config, positionals []string, in Input, repstr string) (Resolution, error) {
	// Both positionals and a template option would define the command.
	// Refuse before consuming any input.
	if len(positionals) > 0 && cfg.CommandProducing() {
		return Resolution{}, errors.ConflictingSource(cfg.CommandOption)
	}

	args, err := readLines(in.Stdin)
	if err != nil {
		return Resolution{}, errors.Wrap(err, errors.ErrCodeInternal, "failed to read standard input")
	}
	if len(args) == 0 {
		return Resolution{}, errors.MissingArguments()
	}

	var tmpl string
	if len(positionals) > 0 {
		// The positionals are the command. Without an explicit
		// replacement token each line is appended at the end rather
		// than substituted in place.
		tmpl = strings.Join(positionals, " ")
		if !cfg.RepstrSet {
			tmpl += " " + repstr
		}
	} else {
		tmpl = deriveTemplate(cfg, repstr)
	}

	size := cfg.MaxPerPane
	if size == 0 && !in.InsideSession {
		// A reattached invocation must reproduce the same split.
		size = 1
	}

	return Resolution{
		Source:    SourceStdin,
		Args:      args,
		Template:  tmpl,
		Repstr:    repstr,
		BatchSize: size,
	}, nil
}

// deriveTemplate picks the command template when positionals are pane
// arguments. The execute-as-is mode outranks a stored utility string.
func deriveTemplate(cfg options.Config, repstr string) string {
	switch {
	case cfg.ExecuteAsIs:
		return repstr
	case cfg.UtilitySet:
		return cfg.Utility
	default:
		return "echo " + repstr
	}
}

func explicitOrOne(cfg options.Config) int {
	if cfg.MaxPerPane > 0 {
		return cfg.MaxPerPane
	}
	return 1
}

// readLines drains r, trimming surrounding whitespace from each line and
// dropping lines that end up empty. The read is bounded by EOF only.
func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
