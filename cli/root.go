// Package cli assembles the xpanes command line surface. The option
// grammar itself is hand-lexed; cobra contributes the entry point and the
// execution scaffolding around it.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markstos/tmux-xpanes/config"
	"github.com/markstos/tmux-xpanes/errors"
	"github.com/markstos/tmux-xpanes/internal/app"
	"github.com/markstos/tmux-xpanes/logging"
	"github.com/markstos/tmux-xpanes/pkg/options"
	"github.com/markstos/tmux-xpanes/version"
)

// NewRootCommand builds the xpanes command around the given App.
//
// Cobra's own flag parsing is disabled: bundled short options (-dec),
// inline values (-I@@) and the first-bare-argument rule are not
// expressible with pflag, so the raw argument vector goes to the options
// lexer instead.
func NewRootCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "xpanes [OPTIONS] [argument ...]",
		Short:              "Run a command against many targets, one tmux pane each",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, a, args)
		},
	}

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		RenderHelp(cmd.OutOrStdout())
	})

	return cmd
}

func run(cmd *cobra.Command, a *app.App, args []string) error {
	cfg, positionals, err := options.Parse(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case cfg.Help:
		RenderHelp(out)
		return nil
	case cfg.Version:
		info := version.GetInfo()
		fmt.Fprintln(out, version.Short())
		fmt.Fprintf(out, "  Commit:     %s\n", info.Commit)
		fmt.Fprintf(out, "  Built:      %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  Platform:   %s\n", info.Platform)
		return nil
	}

	defaults, err := config.LoadDefault(logging.NewLogger("config"))
	if err != nil {
		return err
	}
	cfg = defaults.Fold(cfg)

	return a.Run(cmd.Context(), cfg, positionals)
}

// Execute runs the command against the real process environment and
// returns the process exit code.
func Execute() int {
	a := app.New()
	cmd := NewRootCommand(a)
	cmd.SetOut(a.Stdout)
	cmd.SetErr(a.Stderr)

	if err := cmd.Execute(); err != nil {
		handler := NewErrorHandler(a.Stderr, os.Getenv("XPANES_DEBUG") == "1")
		return handler.Handle(err)
	}
	return errors.ExitOK
}
