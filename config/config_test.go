package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/pkg/layout"
	"github.com/markstos/tmux-xpanes/pkg/logname"
	"github.com/markstos/tmux-xpanes/pkg/options"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.PanicLevel)
	return l.WithField("component", "config-test")
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xpanes.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "absent.yml"), testLogger())
	require.NoError(t, err)

	assert.Equal(t, logname.DefaultFormat, d.LogFormat)
	assert.NotEmpty(t, d.LogDir)
	assert.Empty(t, d.Repstr)
	assert.Empty(t, d.Layout)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "")
	d, err := Load(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, Builtin(), d)
}

func TestLoadFullFile(t *testing.T) {
	path := writeFile(t, `
default_layout: main-vertical
repstr: "@@"
socket_path: /tmp/xpanes.sock
log:
  directory: /tmp/capture
  format: "[:ARG:].txt"
`)

	d, err := Load(path, testLogger())
	require.NoError(t, err)

	assert.Equal(t, layout.MainVertical, d.Layout)
	assert.Equal(t, "@@", d.Repstr)
	assert.Equal(t, "/tmp/xpanes.sock", d.SocketPath)
	assert.Equal(t, "/tmp/capture", d.LogDir)
	assert.Equal(t, "[:ARG:].txt", d.LogFormat)
}

func TestLoadShortLayoutForm(t *testing.T) {
	path := writeFile(t, "default_layout: ev\n")
	d, err := Load(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, layout.EvenVertical, d.Layout)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "default_layouts: tiled\n")
	_, err := Load(path, testLogger())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
	assert.Equal(t, errors.ExitInvalidArgument, errors.ExitCodeFor(err))
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "default_layout: [unclosed\n")
	_, err := Load(path, testLogger())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsBadLayout(t *testing.T) {
	path := writeFile(t, "default_layout: spiral\n")
	_, err := Load(path, testLogger())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, `
log:
  directory: /from/file
  format: from-file
`)
	t.Setenv(EnvLogDirectory, "/from/env")
	t.Setenv(EnvLogFormat, "from-env")

	d, err := Load(path, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "/from/env", d.LogDir)
	assert.Equal(t, "from-env", d.LogFormat)
}

func TestFold(t *testing.T) {
	d := Defaults{
		Layout:     layout.EvenVertical,
		Repstr:     "@@",
		SocketPath: "/tmp/default.sock",
		LogDir:     "/tmp/capture",
		LogFormat:  "fmt",
	}

	t.Run("fills unset values", func(t *testing.T) {
		cfg := d.Fold(options.Config{})

		assert.Equal(t, layout.EvenVertical, cfg.Layout)
		assert.True(t, cfg.RepstrSet)
		assert.Equal(t, "@@", cfg.Repstr)
		assert.Equal(t, "/tmp/default.sock", cfg.SocketPath)
		assert.Equal(t, "/tmp/capture", cfg.LogDir)
		assert.Equal(t, "fmt", cfg.LogFormat)
	})

	t.Run("command line wins", func(t *testing.T) {
		cfg := d.Fold(options.Config{
			Layout:     layout.Tiled,
			Repstr:     "%%",
			RepstrSet:  true,
			SocketPath: "/tmp/cli.sock",
			LogDir:     "/cli/capture",
			LogFormat:  "cli-fmt",
		})

		assert.Equal(t, layout.Tiled, cfg.Layout)
		assert.Equal(t, "%%", cfg.Repstr)
		assert.Equal(t, "/tmp/cli.sock", cfg.SocketPath)
		assert.Equal(t, "/cli/capture", cfg.LogDir)
		assert.Equal(t, "cli-fmt", cfg.LogFormat)
	})

	t.Run("explicit empty token is preserved", func(t *testing.T) {
		cfg := d.Fold(options.Config{RepstrSet: true})
		assert.True(t, cfg.RepstrSet)
		assert.Empty(t, cfg.Repstr, "a file token must not override -I with an empty value")
	})
}
