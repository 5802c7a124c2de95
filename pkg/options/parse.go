package options

import (
	"strconv"
	"strings"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/pkg/layout"
)

// The short-option grammar: any number of flag characters may bundle in
// front of at most one value-option character within a single token. The
// value is either the token remainder or the next argv token.
var (
	flagChars  = map[byte]bool{'h': true, 'V': true, 'd': true, 'e': true}
	valueChars = map[byte]bool{'I': true, 'l': true, 'n': true, 'S': true, 'c': true}
)

// Parse scans argv left to right and returns the frozen configuration plus
// the positional argument list.
//
// Option scanning stops permanently at the first `--` or the first bare
// argument; every later token is positional even when it looks like an
// option. Help and version short-circuit: parsing stops immediately and the
// caller is expected to print and exit without touching the rest of the
// pipeline.
func Parse(argv []string) (Config, []string, error) {
	var cfg Config
	var positionals []string

	noMoreOptions := false

	i := 0
	for i < len(argv) {
		tok := argv[i]

		switch {
		case noMoreOptions:
			positionals = append(positionals, tok)
			i++

		case tok == "--":
			noMoreOptions = true
			i++

		case strings.HasPrefix(tok, "--"):
			if err := parseLong(&cfg, tok); err != nil {
				return cfg, nil, err
			}
			if cfg.Help || cfg.Version {
				return cfg, positionals, nil
			}
			i++

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			consumed, err := parseShort(&cfg, tok, argv[i+1:])
			if err != nil {
				return cfg, nil, err
			}
			if cfg.Help || cfg.Version {
				return cfg, positionals, nil
			}
			i += 1 + consumed

		case tok == "-":
			return cfg, nil, errors.InvalidOption(tok)

		default:
			positionals = append(positionals, tok)
			noMoreOptions = true
			i++
		}
	}

	return cfg, positionals, nil
}

// shortState is the per-character lexer state within one short-option token.
type shortState int

const (
	// stateFlagScan consumes bundled flag characters.
	stateFlagScan shortState = iota
	// stateValueFound marks a value-option character at end of token; the
	// value, if any, comes from the next argv token.
	stateValueFound
	// stateInlineValue marks a value-option character with the token
	// remainder attached as its inline value.
	stateInlineValue
)

// parseShort runs the character lexer over one short-option token. The
// return value is how many following argv tokens were consumed.
func parseShort(cfg *Config, tok string, rest []string) (int, error) {
	body := tok[1:]
	state := stateFlagScan
	var valueOpt byte
	var inline string

	for i := 0; i < len(body) && state == stateFlagScan; i++ {
		ch := body[i]
		switch {
		case flagChars[ch]:
			applyFlag(cfg, ch)
			if cfg.Help || cfg.Version {
				return 0, nil
			}
		case valueChars[ch]:
			valueOpt = ch
			if i+1 < len(body) {
				state = stateInlineValue
				inline = body[i+1:]
			} else {
				state = stateValueFound
			}
		default:
			return 0, errors.InvalidOption(tok)
		}
	}

	switch state {
	case stateInlineValue:
		return 0, applyValue(cfg, valueOpt, inline)

	case stateValueFound:
		if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
			return 1, applyValue(cfg, valueOpt, rest[0])
		}
		if valueOpt == 'I' {
			// The replacement token value may be omitted entirely; an
			// absent value resets to the default token downstream.
			cfg.Repstr = ""
			cfg.RepstrSet = true
			return 0, nil
		}
		return 0, errors.OptionRequiresArg("-" + string(valueOpt))

	default:
		// Flags only, nothing consumed.
		return 0, nil
	}
}

func applyFlag(cfg *Config, ch byte) {
	switch ch {
	case 'h':
		cfg.Help = true
	case 'V':
		cfg.Version = true
	case 'd':
		cfg.Desync = true
	case 'e':
		cfg.ExecuteAsIs = true
		cfg.CommandOption = "-e"
	}
}

func applyValue(cfg *Config, ch byte, value string) error {
	switch ch {
	case 'I':
		cfg.Repstr = value
		cfg.RepstrSet = true
	case 'l':
		l, err := layout.Parse(value)
		if err != nil {
			return err
		}
		cfg.Layout = l
	case 'n':
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.InvalidNumber("-n", value)
		}
		cfg.MaxPerPane = n
	case 'S':
		cfg.SocketPath = value
	case 'c':
		cfg.Utility = value
		cfg.UtilitySet = true
		cfg.CommandOption = "-c"
	}
	return nil
}

// parseLong resolves one token beginning with --. Values are attached with
// an equals sign; long options never consume the next token.
func parseLong(cfg *Config, tok string) error {
	name := tok
	value := ""
	hasValue := false
	if eq := strings.IndexByte(tok, '='); eq >= 0 {
		name = tok[:eq]
		value = tok[eq+1:]
		hasValue = true
	}

	switch name {
	case "--help", "--version", "--desync", "--dry-run", "--stay", "--ssh":
		// Flag-style long options take no value.
		if hasValue {
			return errors.InvalidOption(tok)
		}
	}

	switch name {
	case "--help":
		cfg.Help = true
	case "--version":
		cfg.Version = true
	case "--desync":
		cfg.Desync = true
	case "--dry-run":
		cfg.DryRun = true
	case "--stay":
		cfg.Stay = true
	case "--ssh":
		cfg.Utility = SSHUtility
		cfg.UtilitySet = true
		cfg.CommandOption = "--ssh"
	case "--log":
		cfg.LogEnabled = true
		if hasValue {
			cfg.LogDir = value
		}
	case "--log-format":
		if !hasValue {
			return errors.OptionRequiresArg("--log-format")
		}
		cfg.LogFormat = value
	default:
		return errors.InvalidOption(tok)
	}

	return nil
}
