package errors

import (
	"fmt"
	"os/exec"
)

// InvalidOption creates an error for an unrecognized command line token.
func InvalidOption(token string) *XpanesError {
	return New(ErrCodeInvalidOption, fmt.Sprintf("invalid option -- '%s'", token)).
		WithDetail("token", token)
}

// OptionRequiresArg creates an error for a value option with no value.
func OptionRequiresArg(option string) *XpanesError {
	return New(ErrCodeInvalidOption, fmt.Sprintf("option requires an argument -- '%s'", option)).
		WithDetail("option", option)
}

// InvalidNumber creates an error for a non-numeric or non-positive count.
func InvalidNumber(option, value string) *XpanesError {
	return New(ErrCodeInvalidOption,
		fmt.Sprintf("invalid number '%s' for option -- '%s'", value, option)).
		WithDetail("option", option).
		WithDetail("value", value)
}

// InvalidLayout creates an error for an unknown pane layout name
func InvalidLayout(name string) *XpanesError {
	return New(ErrCodeInvalidLayout, fmt.Sprintf("invalid layout '%s'", name)).
		WithDetail("layout", name)
}

// MissingArguments creates an error for an invocation that resolved no
// arguments from either the command line or standard input.
func MissingArguments() *XpanesError {
	return New(ErrCodeMissingArguments, "no arguments given")
}

// ConflictingSource creates an error for mixing piped input with a
// command-producing option.
func ConflictingSource(option string) *XpanesError {
	return New(ErrCodeConflictingSource,
		fmt.Sprintf("both piped input and '%s' are given", option)).
		WithDetail("option", option)
}

// ConfigInvalid creates an invalid configuration file error
func ConfigInvalid(path string, err error) *XpanesError {
	return Wrap(err, ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration file: %s", path)).
		WithDetail("path", path)
}

// MissingDependency creates an error for a required external binary that
// could not be found on PATH.
func MissingDependency(binary string, err error) *XpanesError {
	return Wrap(err, ErrCodeMissingDependency, fmt.Sprintf("%s is required but not found", binary)).
		WithDetail("binary", binary)
}

// AttachFailed creates an error for a session that could not be attached
// or a controlling terminal that could not be opened.
func AttachFailed(err error) *XpanesError {
	return Wrap(err, ErrCodeAttachFailed, "failed to attach to the created session")
}

// LogDirCreate creates an error for a log directory that could not be created.
func LogDirCreate(dir string, err error) *XpanesError {
	return Wrap(err, ErrCodeLogDirCreate, fmt.Sprintf("failed to create log directory: %s", dir)).
		WithDetail("directory", dir)
}

// LogDirNotWritable creates an error for a log directory the process
// cannot write into.
func LogDirNotWritable(dir string) *XpanesError {
	return New(ErrCodeLogDirNotWritable, fmt.Sprintf("log directory is not writable: %s", dir)).
		WithDetail("directory", dir)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *XpanesError {
	xerr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		xerr = xerr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return xerr
}
