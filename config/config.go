// Package config loads layered invocation defaults: builtin values first,
// then the optional xpanes.yml defaults file, then environment variables.
// Command line options always win; Fold only fills what the user left unset.
package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/pkg/layout"
	"github.com/markstos/tmux-xpanes/pkg/logname"
	"github.com/markstos/tmux-xpanes/pkg/options"
	"github.com/markstos/tmux-xpanes/pkg/paths"
	"github.com/markstos/tmux-xpanes/schema"
)

// Environment variables recognized as defaults, between the file and the
// command line.
const (
	EnvLogDirectory = "TMUX_XPANES_LOG_DIRECTORY"
	EnvLogFormat    = "TMUX_XPANES_LOG_FORMAT"
)

// File is the on-disk shape of the defaults file. Unknown keys are rejected
// by schema validation so typos surface instead of silently doing nothing.
type File struct {
	// DefaultLayout is applied when no -l option is given. Short forms
	// are accepted, the same as on the command line.
	DefaultLayout string `yaml:"default_layout,omitempty" jsonschema:"description=Pane layout applied when -l is not given"`

	// Repstr is the replacement token applied when no -I option is given.
	Repstr string `yaml:"repstr,omitempty" jsonschema:"description=Replacement token applied when -I is not given"`

	// SocketPath is handed to the multiplexer when no -S option is given.
	SocketPath string `yaml:"socket_path,omitempty" jsonschema:"description=Alternate multiplexer socket path"`

	Log LogFile `yaml:"log,omitempty" jsonschema:"description=Pane output capture defaults"`
}

// LogFile configures pane output capture defaults.
type LogFile struct {
	// Directory receives the captured pane output.
	Directory string `yaml:"directory,omitempty" jsonschema:"description=Directory receiving captured pane output"`

	// Format names the per-pane log files.
	Format string `yaml:"format,omitempty" jsonschema:"description=Log file name format ([:ARG:] and [:PID:] tokens plus date directives)"`
}

// Defaults is the merged result of the builtin, file and environment layers.
type Defaults struct {
	Layout     layout.Layout
	Repstr     string
	SocketPath string
	LogDir     string
	LogFormat  string
}

// Builtin returns the innermost defaults layer.
func Builtin() Defaults {
	return Defaults{
		LogDir:    paths.DefaultLogDir(),
		LogFormat: logname.DefaultFormat,
	}
}

// LoadDefault loads defaults from the standard file location.
func LoadDefault(logger *logrus.Entry) (Defaults, error) {
	return Load(paths.ConfigFile(), logger)
}

// Load layers the defaults file at path and the environment over the
// builtin defaults. A missing file is not an error; a malformed one is.
func Load(path string, logger *logrus.Entry) (Defaults, error) {
	d := Builtin()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			f, err := parse(path, data)
			if err != nil {
				return Defaults{}, err
			}
			if err := f.applyTo(&d, path); err != nil {
				return Defaults{}, err
			}
			logger.WithField("path", path).Debug("Loaded defaults file")
		case !os.IsNotExist(err):
			return Defaults{}, errors.ConfigInvalid(path, err)
		}
	}

	if v := os.Getenv(EnvLogDirectory); v != "" {
		d.LogDir = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		d.LogFormat = v
	}

	return d, nil
}

// parse decodes and schema-validates one defaults file.
func parse(path string, data []byte) (File, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return File{}, errors.ConfigInvalid(path, err)
	}
	if raw == nil {
		// An empty file means all defaults.
		return File{}, nil
	}

	schemaJSON, err := GenerateSchema()
	if err != nil {
		return File{}, errors.Wrap(err, errors.ErrCodeInternal, "failed to generate defaults schema")
	}
	validator, err := schema.NewValidator(schemaJSON)
	if err != nil {
		return File{}, errors.Wrap(err, errors.ErrCodeInternal, "failed to compile defaults schema")
	}
	if err := validator.Validate(raw); err != nil {
		return File{}, errors.ConfigInvalid(path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, errors.ConfigInvalid(path, err)
	}
	return f, nil
}

func (f File) applyTo(d *Defaults, path string) error {
	if f.DefaultLayout != "" {
		l, err := layout.Parse(f.DefaultLayout)
		if err != nil {
			return errors.ConfigInvalid(path, err)
		}
		d.Layout = l
	}
	if f.Repstr != "" {
		d.Repstr = f.Repstr
	}
	if f.SocketPath != "" {
		d.SocketPath = f.SocketPath
	}
	if f.Log.Directory != "" {
		d.LogDir = f.Log.Directory
	}
	if f.Log.Format != "" {
		d.LogFormat = f.Log.Format
	}
	return nil
}

// Fold layers these defaults under a parsed command line: only values the
// user did not set are filled in.
func (d Defaults) Fold(cfg options.Config) options.Config {
	if !cfg.RepstrSet && d.Repstr != "" {
		cfg.Repstr = d.Repstr
		cfg.RepstrSet = true
	}
	if cfg.Layout == "" {
		cfg.Layout = d.Layout
	}
	if cfg.LogDir == "" {
		cfg.LogDir = d.LogDir
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = d.LogFormat
	}
	if cfg.SocketPath == "" {
		cfg.SocketPath = d.SocketPath
	}
	return cfg
}
