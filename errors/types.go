package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Command line errors
	ErrCodeInvalidOption     ErrorCode = "INVALID_OPTION"
	ErrCodeInvalidLayout     ErrorCode = "INVALID_LAYOUT"
	ErrCodeMissingArguments  ErrorCode = "MISSING_ARGUMENTS"
	ErrCodeConflictingSource ErrorCode = "CONFLICTING_SOURCE"

	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Environment errors
	ErrCodeMissingDependency ErrorCode = "MISSING_DEPENDENCY"
	ErrCodeAttachFailed      ErrorCode = "ATTACH_FAILED"

	// Logging errors
	ErrCodeLogDirCreate      ErrorCode = "LOG_DIR_CREATE"
	ErrCodeLogDirNotWritable ErrorCode = "LOG_DIR_NOT_WRITABLE"

	// General errors
	ErrCodeCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// Exit statuses reported to the calling shell. Codes 20 and 21 are
// deliberately far from the generic range so scripts can tell a logging
// setup failure apart from a bad invocation.
const (
	ExitOK              = 0
	ExitGeneric         = 1
	ExitInvalidArgument = 4
	ExitAttachFailed    = 5
	ExitInvalidLayout   = 6
	ExitLogDirCreate    = 20
	ExitLogDirWritable  = 21
	ExitMissingBinary   = 127
)

// XpanesError represents a structured error with context
type XpanesError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *XpanesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *XpanesError) Unwrap() error {
	return e.Cause
}

// ExitCode maps the error condition onto the process exit status contract.
func (e *XpanesError) ExitCode() int {
	switch e.Code {
	case ErrCodeInvalidOption, ErrCodeMissingArguments, ErrCodeConflictingSource, ErrCodeConfigInvalid:
		return ExitInvalidArgument
	case ErrCodeInvalidLayout:
		return ExitInvalidLayout
	case ErrCodeAttachFailed:
		return ExitAttachFailed
	case ErrCodeLogDirCreate:
		return ExitLogDirCreate
	case ErrCodeLogDirNotWritable:
		return ExitLogDirWritable
	case ErrCodeMissingDependency:
		return ExitMissingBinary
	default:
		return ExitGeneric
	}
}

// WithDetail adds a detail to the error
func (e *XpanesError) WithDetail(key string, value interface{}) *XpanesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *XpanesError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new XpanesError
func New(code ErrorCode, message string) *XpanesError {
	return &XpanesError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an XpanesError
func Wrap(err error, code ErrorCode, message string) *XpanesError {
	return &XpanesError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error carries a specific code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	xerr, ok := err.(*XpanesError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return xerr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	xerr, ok := err.(*XpanesError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return xerr.Code
}

// ExitCodeFor resolves the exit status for any error. Errors that do not
// originate here fall back to the generic failure status.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	xerr, ok := err.(*XpanesError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			if inner := unwrapper.Unwrap(); inner != nil {
				return ExitCodeFor(inner)
			}
		}
		return ExitGeneric
	}

	return xerr.ExitCode()
}
