package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultTimeout bounds multiplexer control commands, which normally
	// complete in well under a second.
	DefaultTimeout = 30 * time.Second

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

// SafeBuilder provides command construction with argument validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"sessionName": validateSessionName,
		"windowName":  validateWindowName,
		"filePath":    validateFilePath,
	}
}

// validateSessionName ensures session names are usable as tmux targets
func validateSessionName(name string) error {
	if name == "" {
		return fmt.Errorf("session name cannot be empty")
	}

	// Colons and dots are target separators in tmux and cannot appear
	// in a session name.
	if strings.ContainsAny(name, ":.") {
		return fmt.Errorf("invalid session name: %s (must not contain ':' or '.')", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid session name: %s (must not contain control characters)", name)
		}
	}

	return nil
}

// validateWindowName ensures window names are safe to pass to the multiplexer
func validateWindowName(name string) error {
	if name == "" {
		return fmt.Errorf("window name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid window name: %s (must not contain control characters)", name)
		}
	}

	return nil
}

// validateFilePath ensures file paths can be handed to the operating system
func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("file path contains a NUL byte")
	}

	return nil
}

// Command represents a configured command ready to run
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation. The returned command carries
// the builder's default timeout, which is applied when the command runs.
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		timeout:  sb.defaultTimeout,
		executor: sb.executor,
	}, nil
}

// WithTimeout sets a custom timeout for the command. A zero duration removes
// the deadline entirely, which interactive commands such as attach need.
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	c.timeout = timeout
	return c
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// LookPath resolves a binary through the builder's executor.
func (sb *SafeBuilder) LookPath(name string) (string, error) {
	return sb.executor.LookPath(name)
}

// Run executes the command and waits for it to finish.
func (c *Command) Run() error {
	ctx, cancel := c.deadline()
	defer cancel()
	return c.executor.CommandContext(ctx, c.name, c.args...).Run()
}

// Output executes the command and returns its standard output.
func (c *Command) Output() ([]byte, error) {
	ctx, cancel := c.deadline()
	defer cancel()
	return c.executor.CommandContext(ctx, c.name, c.args...).Output()
}

// CombinedOutput executes the command and returns combined stdout and stderr.
func (c *Command) CombinedOutput() ([]byte, error) {
	ctx, cancel := c.deadline()
	defer cancel()
	return c.executor.CommandContext(ctx, c.name, c.args...).CombinedOutput()
}

// Exec returns the underlying exec.Cmd without starting it. No deadline is
// applied; the caller owns stdio wiring and lifetime.
func (c *Command) Exec() *exec.Cmd {
	return c.executor.CommandContext(c.ctx, c.name, c.args...)
}

func (c *Command) deadline() (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return c.ctx, func() {}
	}
	return context.WithTimeout(c.ctx, c.timeout)
}
