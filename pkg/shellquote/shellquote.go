// Package shellquote renders argument lists as shell-safe strings.
//
// Every value is wrapped in single quotes, the strongest quoting form the
// POSIX shell has: nothing inside single quotes is special except the single
// quote itself. An embedded single quote is emitted as '"'"' (close the
// quote, emit one double-quoted quote, reopen), so re-splitting the result
// with shell word rules reproduces the original values exactly.
package shellquote

import "strings"

const singleQuoteEscape = `'"'"'`

// Quote renders values as one space-joined, shell-safe string. Embedded
// newlines are stripped because the output is consumed on a single command
// line. An empty input yields an empty string.
func Quote(values []string) string {
	if len(values) == 0 {
		return ""
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = QuoteOne(v)
	}
	return strings.Join(quoted, " ")
}

// QuoteOne renders a single value as one shell-safe word.
func QuoteOne(value string) string {
	value = strings.ReplaceAll(value, "\n", "")
	return "'" + strings.ReplaceAll(value, "'", singleQuoteEscape) + "'"
}
