package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/markstos/tmux-xpanes/pkg/options"
)

const maxWidth = 76
const minWidth = 40

// ANSI palette indices rather than fixed RGB so the output follows the
// terminal's own scheme.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	sectionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	argStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// terminalWidth returns the terminal width capped at maxWidth.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// RenderHelp writes the full usage text.
func RenderHelp(w io.Writer) {
	width := terminalWidth() - 2

	fmt.Fprintln(w, " "+titleStyle.Render("XPANES"))
	for _, line := range strings.Split(wrapText("Run a command against many targets at once, one tmux pane each. Typing is mirrored to every pane until desynchronized.", width), "\n") {
		fmt.Fprintln(w, " "+line)
	}

	fmt.Fprintln(w, "\n "+sectionStyle.Render("USAGE"))
	fmt.Fprintln(w, "  xpanes [OPTIONS] [argument ...]")
	fmt.Fprintln(w, "  command | xpanes [OPTIONS] [<utility> ...]")

	fmt.Fprintln(w, "\n "+sectionStyle.Render("OPTIONS"))
	renderOptions(w, width)

	fmt.Fprintln(w, "\n "+sectionStyle.Render("EXAMPLES"))
	examples := []string{
		"# Ping two hosts side by side",
		"xpanes -c 'ping {}' 8.8.8.8 8.8.4.4",
		"",
		"# Open ssh sessions with mirrored typing",
		"xpanes --ssh user@host1 user@host2",
		"",
		"# One pane per input line, from a pipe",
		"ls *.log | xpanes -c 'tail -f {}'",
	}
	for _, line := range examples {
		switch {
		case line == "":
			fmt.Fprintln(w)
		case strings.HasPrefix(line, "#"):
			fmt.Fprintln(w, "  "+mutedStyle.Render(line))
		default:
			fmt.Fprintln(w, "  "+line)
		}
	}
}

func renderOptions(w io.Writer, width int) {
	entries := options.HelpEntries()

	maxLen := 0
	for _, e := range entries {
		if l := len(flagColumn(e)); l > maxLen {
			maxLen = l
		}
	}

	descWidth := width - maxLen - 4
	if descWidth < 24 {
		descWidth = 24
	}

	for _, e := range entries {
		padding := strings.Repeat(" ", maxLen-len(flagColumn(e)))

		styled := flagStyle.Render(e.Flags)
		if e.Arg != "" {
			styled += " " + argStyle.Render(e.Arg)
		}

		lines := strings.Split(wrapText(e.Desc, descWidth), "\n")
		fmt.Fprintf(w, "  %s%s  %s\n", styled, padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "  %s  %s\n", strings.Repeat(" ", maxLen), line)
		}
	}
}

func flagColumn(e options.HelpEntry) string {
	if e.Arg == "" {
		return e.Flags
	}
	return e.Flags + " " + e.Arg
}
