// Package logname generates collision-free pane log file names.
//
// A format string mixes strftime date directives with two literal tokens:
// [:ARG:] for the pane's disambiguated argument label and [:PID:] for the
// process id of the controlling invocation.
package logname

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/lestrrat-go/strftime"

	"github.com/markstos/tmux-xpanes/errors"
)

// DefaultFormat produces one file per pane, keyed by argument label and
// timestamped to the second.
const DefaultFormat = "[:ARG:].log.%Y-%m-%d_%H-%M-%S"

// Placeholder stands in for values with no printable content.
const Placeholder = "empty"

// Generate produces one file name per value, in order. Date directives are
// rendered once with now, so every pane of an invocation shares the same
// timestamp. Each value carries an occurrence counter so panes showing
// identical argument text never collide on a file name.
//
// The counter map lives and dies inside this call; repeated invocations
// start counting from one again.
func Generate(format string, values []string, pid int, now time.Time) ([]string, error) {
	rendered, err := strftime.Format(format, now)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidOption,
			"invalid log file name format: "+format)
	}

	pidText := strconv.Itoa(pid)
	counters := make(map[string]int, len(values))

	names := make([]string, len(values))
	for i, value := range values {
		label := sanitize(value)
		counters[label]++
		label += "-" + strconv.Itoa(counters[label])

		name := strings.ReplaceAll(rendered, "[:ARG:]", label)
		name = strings.ReplaceAll(name, "[:PID:]", pidText)
		names[i] = name
	}
	return names, nil
}

// sanitize reduces an argument value to something a file name can carry:
// unprintable runes are dropped, path separators become hyphens, and a
// value with nothing left is replaced by the placeholder.
func sanitize(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r == '/':
			b.WriteRune('-')
		case unicode.IsPrint(r):
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Placeholder
	}
	return b.String()
}
