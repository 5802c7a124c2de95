package tmux

import (
	"context"
	"os"

	"github.com/markstos/tmux-xpanes/errors"
)

// Attach hands the terminal over to the named session and blocks until the
// user detaches. When stdin was consumed by pipe mode the controlling
// terminal is reopened, otherwise tmux would refuse to attach to a
// non-terminal.
func (c *Client) Attach(ctx context.Context, sessionName string, stdinIsTTY bool) error {
	cmd, err := c.builder.Build(ctx, "tmux", c.args("attach-session", "-t", "="+sessionName)...)
	if err != nil {
		return err
	}

	execCmd := cmd.Exec()
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr

	if !stdinIsTTY {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return errors.AttachFailed(err)
		}
		defer tty.Close()
		execCmd.Stdin = tty
	}

	if err := execCmd.Run(); err != nil {
		return errors.AttachFailed(err)
	}
	return nil
}
