package tmux

import (
	"context"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/markstos/tmux-xpanes/command"
	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/logging"
)

// Client drives a tmux server through its command line interface.
type Client struct {
	builder    *command.SafeBuilder
	socketPath string // Socket path for a dedicated tmux server (uses -S flag)
	logger     *logrus.Entry
}

// NewClient creates a client for the server behind socketPath, or the
// default server when socketPath is empty.
func NewClient(socketPath string) (*Client, error) {
	return NewClientWithExecutor(socketPath, &command.RealExecutor{})
}

// NewClientWithExecutor creates a client on a caller-supplied executor.
// Tests use this to script tmux responses without a live server.
func NewClientWithExecutor(socketPath string, executor command.Executor) (*Client, error) {
	builder := command.NewSafeBuilderWithExecutor(executor)
	if _, err := builder.LookPath("tmux"); err != nil {
		return nil, errors.MissingDependency("tmux", err)
	}

	return &Client{
		builder:    builder,
		socketPath: socketPath,
		logger:     logging.NewLogger("tmux"),
	}, nil
}

// SocketPath returns the socket path this client uses, or empty string for
// the default server.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// InAttachedSession reports whether the current process runs inside a tmux
// client. tmux exports TMUX to every pane it manages.
func InAttachedSession() bool {
	return os.Getenv("TMUX") != ""
}

// minimum server version whose new-window/split-window flag set matches what
// this client emits
const (
	minSupportedMajor = 1
	minSupportedMinor = 8
)

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// ServerVersion returns the version string reported by the tmux binary,
// e.g. "tmux 3.4".
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "-V")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// CheckVersion warns when the installed tmux predates the flag set used
// here. The probe is advisory. Failures never stop a launch.
func (c *Client) CheckVersion(ctx context.Context) {
	version, err := c.ServerVersion(ctx)
	if err != nil {
		c.logger.WithField("error", err).Debug("tmux version probe failed")
		return
	}
	if versionTooOld(version) {
		c.logger.Warnf("%s may be too old, %d.%d or later is recommended", version, minSupportedMajor, minSupportedMinor)
	}
}

func versionTooOld(version string) bool {
	m := versionPattern.FindStringSubmatch(version)
	if m == nil {
		return false
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	if major != minSupportedMajor {
		return major < minSupportedMajor
	}
	return minor < minSupportedMinor
}

// args prepends the socket flag when this client uses a dedicated server.
func (c *Client) args(args ...string) []string {
	if c.socketPath == "" {
		return args
	}
	return append([]string{"-S", c.socketPath}, args...)
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	args = c.args(args...)

	cmd, err := c.builder.Build(ctx, "tmux", args...)
	if err != nil {
		return "", err
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		cmdStr := "tmux " + strings.Join(args, " ")
		return string(output), errors.CommandFailed(cmdStr, err).
			WithDetail("output", strings.TrimSpace(string(output)))
	}

	return string(output), nil
}
