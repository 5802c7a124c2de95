package tmux

import (
	"context"
	"strings"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/pkg/shellquote"
)

// WindowSpec describes one window full of panes to build out. Commands and
// LogFiles run parallel: pane i runs Commands[i] and, when logging is on,
// appends its output to LogFiles[i].
type WindowSpec struct {
	Name        string
	Commands    []string
	LogFiles    []string
	LayoutSteps []string
	Synchronize bool
}

// NewSession creates a detached session whose first window carries the spec
// name, and returns the window id. The caller populates the window and
// attaches afterwards. Names are validated first; both end up in tmux
// target expressions.
func (c *Client) NewSession(ctx context.Context, sessionName string, spec WindowSpec) (string, error) {
	if err := c.builder.Validate("sessionName", sessionName); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "invalid session name")
	}
	if err := c.builder.Validate("windowName", spec.Name); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "invalid window name")
	}

	output, err := c.run(ctx, "new-session", "-d", "-P", "-F", "#{window_id}",
		"-s", sessionName, "-n", spec.Name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// NewWindow creates a detached window in the current session and returns
// the window id. SelectWindow brings it to the front once populated.
func (c *Client) NewWindow(ctx context.Context, spec WindowSpec) (string, error) {
	if err := c.builder.Validate("windowName", spec.Name); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "invalid window name")
	}

	output, err := c.run(ctx, "new-window", "-d", "-P", "-F", "#{window_id}", "-n", spec.Name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// Populate builds out the panes of a freshly created window. Each split is
// followed by the next layout directive so intermediate geometry never
// leaves a pane too small to split again. Log capture starts before the
// pane command is sent so the log sees the command echo, and pane input
// synchronization is switched on only after every pane has received its own
// command.
func (c *Client) Populate(ctx context.Context, windowID string, spec WindowSpec) error {
	step := 0
	applyStep := func() error {
		if step >= len(spec.LayoutSteps) {
			return nil
		}
		_, err := c.run(ctx, "select-layout", "-t", windowID, spec.LayoutSteps[step])
		step++
		return err
	}

	for i := 1; i < len(spec.Commands); i++ {
		if _, err := c.run(ctx, "split-window", "-t", windowID, "-h", "-d"); err != nil {
			return err
		}
		if err := applyStep(); err != nil {
			return err
		}
	}
	for step < len(spec.LayoutSteps) {
		if err := applyStep(); err != nil {
			return err
		}
	}

	panes, err := c.ListPanes(ctx, windowID)
	if err != nil {
		return err
	}
	if len(panes) < len(spec.Commands) {
		return errors.New(errors.ErrCodeInternal, "window has fewer panes than commands").
			WithDetail("panes", len(panes)).
			WithDetail("commands", len(spec.Commands))
	}

	for i, cmd := range spec.Commands {
		if i < len(spec.LogFiles) && spec.LogFiles[i] != "" {
			if err := c.PipePane(ctx, panes[i], spec.LogFiles[i]); err != nil {
				return err
			}
		}
		if err := c.SendKeys(ctx, panes[i], cmd, "C-m"); err != nil {
			return err
		}
	}

	if spec.Synchronize {
		return c.SetSynchronize(ctx, windowID, true)
	}
	return nil
}

// ListPanes returns the pane ids of the target window in index order.
func (c *Client) ListPanes(ctx context.Context, target string) ([]string, error) {
	output, err := c.run(ctx, "list-panes", "-t", target, "-F", "#{pane_id}")
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	panes := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		panes = append(panes, line)
	}
	return panes, nil
}

// PipePane appends everything the target pane emits from now on to file.
func (c *Client) PipePane(ctx context.Context, target, file string) error {
	if err := c.builder.Validate("filePath", file); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "invalid log file path")
	}

	_, err := c.run(ctx, "pipe-pane", "-t", target, "cat >> "+shellquote.QuoteOne(file))
	return err
}

// SendKeys types the given keys into the target pane.
func (c *Client) SendKeys(ctx context.Context, target string, keys ...string) error {
	args := []string{"send-keys", "-t", target}
	args = append(args, keys...)
	_, err := c.run(ctx, args...)
	return err
}

// SetSynchronize toggles mirroring of typed input across all panes of the
// target window.
func (c *Client) SetSynchronize(ctx context.Context, target string, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	_, err := c.run(ctx, "set-window-option", "-t", target, "synchronize-panes", state)
	return err
}

// SelectWindow makes the target window the current one.
func (c *Client) SelectWindow(ctx context.Context, target string) error {
	_, err := c.run(ctx, "select-window", "-t", target)
	return err
}
