package plan

import (
	"strings"

	"github.com/markstos/tmux-xpanes/pkg/layout"
	"github.com/markstos/tmux-xpanes/pkg/options"
)

// PaneAssignment is everything one pane needs: its ordinal position, its
// slice of the argument list, and the literal command string to type into
// it. LogFile is filled in later, only when capture is enabled.
type PaneAssignment struct {
	Index   int
	Args    []string
	Command string
	LogFile string
}

// Plan is the fully resolved execution plan handed to the driver. Each
// assignment is derived purely from its batch and the frozen configuration,
// in pane index order.
type Plan struct {
	Source      Source
	Panes       []PaneAssignment
	LayoutSteps []layout.Layout
	Synchronize bool
}

// Build assembles the plan: batches the resolved arguments, renders each
// pane's command, and computes the layout directive sequence.
func Build(res Resolution, cfg options.Config) Plan {
	batches := Batch(res.Args, res.BatchSize)

	panes := make([]PaneAssignment, len(batches))
	for i, batch := range batches {
		panes[i] = PaneAssignment{
			Index:   i,
			Args:    batch,
			Command: Render(res.Template, res.Repstr, batch),
		}
	}

	return Plan{
		Source:      res.Source,
		Panes:       panes,
		LayoutSteps: layout.Plan(len(panes), cfg.Layout),
		Synchronize: !cfg.Desync,
	}
}

// PaneValues returns one label per pane, in pane order: the pane's joined
// argument text. Log file naming keys off these.
func (p Plan) PaneValues() []string {
	values := make([]string, len(p.Panes))
	for i, pane := range p.Panes {
		values[i] = strings.Join(pane.Args, " ")
	}
	return values
}
