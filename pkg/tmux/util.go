package tmux

import (
	"fmt"
	"strings"
)

// Window names longer than this clutter the status line without adding
// information.
const maxWindowNameLen = 30

// WindowName derives a window name from the values driving the panes. The
// process id suffix keeps names apart when the same values are fanned out
// more than once.
func WindowName(values []string, pid int) string {
	return fmt.Sprintf("%s-%d", SanitizeName(strings.Join(values, " ")), pid)
}

// SanitizeName maps a free-form string onto a name tmux accepts for
// windows. It replaces disallowed characters with hyphens, collapses runs,
// and bounds the length.
func SanitizeName(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, title)

	// Remove consecutive hyphens
	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	sanitized = strings.Trim(sanitized, "-")

	if sanitized == "" {
		sanitized = "xpanes"
	}

	if len(sanitized) > maxWindowNameLen {
		sanitized = strings.Trim(sanitized[:maxWindowNameLen], "-")
	}

	return sanitized
}
