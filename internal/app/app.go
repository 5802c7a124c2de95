// Package app wires the planning pipeline to the terminal and the tmux
// driver. Everything ambient the pipeline depends on, stdin, tty state,
// the process id and the clock, enters through the App struct so tests can
// pin it down.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/logging"
	"github.com/markstos/tmux-xpanes/pkg/logname"
	"github.com/markstos/tmux-xpanes/pkg/options"
	"github.com/markstos/tmux-xpanes/pkg/paths"
	"github.com/markstos/tmux-xpanes/pkg/plan"
	"github.com/markstos/tmux-xpanes/pkg/tmux"
)

// App carries the process environment the run depends on.
type App struct {
	Logger     *logrus.Entry
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	StdinIsTTY bool
	InsideTmux bool
	Pid        int
	Now        func() time.Time
	NewClient  func(socketPath string) (*tmux.Client, error)
}

// New builds an App from the real process environment.
func New() *App {
	return &App{
		Logger:     logging.NewLogger("xpanes"),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		StdinIsTTY: isatty.IsTerminal(os.Stdin.Fd()),
		InsideTmux: tmux.InAttachedSession(),
		Pid:        os.Getpid(),
		Now:        time.Now,
		NewClient:  tmux.NewClient,
	}
}

// Run resolves the invocation into a pane plan, then either prints the plan
// or drives tmux to realize it. Fatal planning errors abort before any
// pane-facing side effect.
func (a *App) Run(ctx context.Context, cfg options.Config, positionals []string) error {
	res, err := plan.Resolve(cfg, positionals, plan.Input{
		Stdin:         a.Stdin,
		StdinIsTTY:    a.StdinIsTTY,
		InsideSession: a.InsideTmux,
	})
	if err != nil {
		return err
	}

	p := plan.Build(res, cfg)
	a.Logger.WithFields(logrus.Fields{
		"panes":  len(p.Panes),
		"source": res.Source,
	}).Debug("plan resolved")

	if cfg.LogEnabled {
		if err := a.prepareLogs(&p, cfg); err != nil {
			return err
		}
	}

	if cfg.DryRun {
		a.renderPlan(p)
		return nil
	}

	return a.launch(ctx, p, cfg)
}

// prepareLogs makes the log directory usable and assigns each pane its
// capture file.
func (a *App) prepareLogs(p *plan.Plan, cfg options.Config) error {
	dir := cfg.LogDir
	if dir == "" {
		dir = paths.DefaultLogDir()
	}
	dir = paths.Expand(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.LogDirCreate(dir, err)
	}

	probe, err := os.CreateTemp(dir, ".xpanes-probe-*")
	if err != nil {
		return errors.LogDirNotWritable(dir)
	}
	probe.Close()
	os.Remove(probe.Name())

	format := cfg.LogFormat
	if format == "" {
		format = logname.DefaultFormat
	}

	names, err := logname.Generate(format, p.PaneValues(), a.Pid, a.Now())
	if err != nil {
		return err
	}
	for i := range p.Panes {
		p.Panes[i].LogFile = filepath.Join(dir, names[i])
	}
	return nil
}

// renderPlan prints one line per pane: index, command, and the log file
// when capture is enabled, tab separated.
func (a *App) renderPlan(p plan.Plan) {
	for _, pane := range p.Panes {
		if pane.LogFile != "" {
			fmt.Fprintf(a.Stdout, "%d\t%s\t%s\n", pane.Index, pane.Command, pane.LogFile)
			continue
		}
		fmt.Fprintf(a.Stdout, "%d\t%s\n", pane.Index, pane.Command)
	}
}

func (a *App) launch(ctx context.Context, p plan.Plan, cfg options.Config) error {
	client, err := a.NewClient(cfg.SocketPath)
	if err != nil {
		return err
	}

	client.CheckVersion(ctx)

	spec := tmux.WindowSpec{
		Name:        tmux.WindowName(p.PaneValues(), a.Pid),
		Commands:    make([]string, len(p.Panes)),
		LayoutSteps: make([]string, len(p.LayoutSteps)),
		Synchronize: p.Synchronize,
	}
	for i, pane := range p.Panes {
		spec.Commands[i] = pane.Command
	}
	if cfg.LogEnabled {
		spec.LogFiles = make([]string, len(p.Panes))
		for i, pane := range p.Panes {
			spec.LogFiles[i] = pane.LogFile
		}
	}
	for i, step := range p.LayoutSteps {
		spec.LayoutSteps[i] = string(step)
	}

	if a.InsideTmux {
		windowID, err := client.NewWindow(ctx, spec)
		if err != nil {
			return err
		}
		if err := client.Populate(ctx, windowID, spec); err != nil {
			return err
		}
		if cfg.Stay {
			a.Logger.WithField("window", windowID).Info("window left in the background")
			return nil
		}
		return client.SelectWindow(ctx, windowID)
	}

	sessionName := fmt.Sprintf("xpanes-%d", a.Pid)
	windowID, err := client.NewSession(ctx, sessionName, spec)
	if err != nil {
		return err
	}
	if err := client.Populate(ctx, windowID, spec); err != nil {
		return err
	}
	if cfg.Stay {
		a.Logger.WithField("session", sessionName).Info("session left detached")
		return nil
	}
	return client.Attach(ctx, sessionName, a.StdinIsTTY)
}
