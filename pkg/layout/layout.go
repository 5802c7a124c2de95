// Package layout models the five pane arrangements a window can take and
// plans the directive sequence applied while a window is split.
package layout

import (
	"github.com/markstos/tmux-xpanes/errors"
)

// Layout is a long-form pane arrangement name, as understood by the
// multiplexer's select-layout command.
type Layout string

const (
	Tiled          Layout = "tiled"
	EvenHorizontal Layout = "even-horizontal"
	EvenVertical   Layout = "even-vertical"
	MainHorizontal Layout = "main-horizontal"
	MainVertical   Layout = "main-vertical"
)

// shortNames maps the abbreviations accepted on the command line.
var shortNames = map[string]Layout{
	"t":  Tiled,
	"eh": EvenHorizontal,
	"ev": EvenVertical,
	"mh": MainHorizontal,
	"mv": MainVertical,
}

// Parse normalizes a user-supplied name through the abbreviation table and
// validates the result against the fixed five arrangements.
func Parse(name string) (Layout, error) {
	if l, ok := shortNames[name]; ok {
		return l, nil
	}
	switch l := Layout(name); l {
	case Tiled, EvenHorizontal, EvenVertical, MainHorizontal, MainVertical:
		return l, nil
	}
	return "", errors.InvalidLayout(name)
}

// Plan returns the ordered directives the driver applies while splitting a
// window into paneCount panes.
//
// The window starts as a single pane. Once the second pane exists the window
// is equalized horizontally, which gives later splits room to succeed, and
// every split after that re-tiles the window. A user override that differs
// from tiled is applied once at the end, after all panes exist; applying it
// earlier would make intermediate splits fail on small terminals.
func Plan(paneCount int, override Layout) []Layout {
	if paneCount < 1 {
		return nil
	}

	steps := make([]Layout, 0, paneCount)
	steps = append(steps, EvenHorizontal)
	for i := 2; i < paneCount; i++ {
		steps = append(steps, Tiled)
	}
	if override != "" && override != Tiled {
		steps = append(steps, override)
	}
	return steps
}
