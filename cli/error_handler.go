package cli

import (
	"fmt"
	"io"

	"github.com/markstos/tmux-xpanes/errors"
)

const usageLine = "Usage: xpanes [OPTIONS] [argument ...]"

// ErrorHandler renders fatal errors for the terminal.
type ErrorHandler struct {
	Out     io.Writer
	Verbose bool
}

// NewErrorHandler creates a new error handler writing to out.
func NewErrorHandler(out io.Writer, verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Out:     out,
		Verbose: verbose,
	}
}

// Handle prints the diagnostic for err and returns the matching process
// exit code. Option and argument errors come with a usage recap.
func (h *ErrorHandler) Handle(err error) int {
	if err == nil {
		return errors.ExitOK
	}

	fmt.Fprintf(h.Out, "xpanes: error: %v\n", err)

	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidOption, errors.ErrCodeInvalidLayout,
		errors.ErrCodeMissingArguments, errors.ErrCodeConflictingSource:
		fmt.Fprintln(h.Out, usageLine)
		fmt.Fprintln(h.Out, "Try 'xpanes --help' for more information.")
	}

	if h.Verbose {
		if xerr, ok := err.(*errors.XpanesError); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", xerr.ToJSON())
		}
	}

	return errors.ExitCodeFor(err)
}
