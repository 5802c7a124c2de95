package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markstos/tmux-xpanes/errors"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Layout
	}{
		{"short tiled", "t", Tiled},
		{"short even-horizontal", "eh", EvenHorizontal},
		{"short even-vertical", "ev", EvenVertical},
		{"short main-horizontal", "mh", MainHorizontal},
		{"short main-vertical", "mv", MainVertical},
		{"long tiled", "tiled", Tiled},
		{"long even-horizontal", "even-horizontal", EvenHorizontal},
		{"long main-vertical", "main-vertical", MainVertical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "spiral", "TILED", "even_horizontal", "th"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, errors.ErrCodeInvalidLayout, errors.GetCode(err))
		assert.Equal(t, errors.ExitInvalidLayout, errors.ExitCodeFor(err))
	}
}

func TestPlan(t *testing.T) {
	testCases := []struct {
		name     string
		panes    int
		override Layout
		want     []Layout
	}{
		{"single pane", 1, "", []Layout{EvenHorizontal}},
		{"two panes", 2, "", []Layout{EvenHorizontal}},
		{"three panes", 3, "", []Layout{EvenHorizontal, Tiled}},
		{"five panes ends tiled", 5, "", []Layout{EvenHorizontal, Tiled, Tiled, Tiled}},
		{"override applied last", 3, MainVertical, []Layout{EvenHorizontal, Tiled, MainVertical}},
		{"tiled override is the default already", 3, Tiled, []Layout{EvenHorizontal, Tiled}},
		{"override on single pane", 1, EvenVertical, []Layout{EvenHorizontal, EvenVertical}},
		{"no panes", 0, MainVertical, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Plan(tc.panes, tc.override))
		})
	}
}

func TestPlanFinalDirective(t *testing.T) {
	// The last directive decides the final arrangement.
	steps := Plan(5, "")
	assert.Equal(t, Tiled, steps[len(steps)-1])

	steps = Plan(3, MainVertical)
	assert.Equal(t, MainVertical, steps[len(steps)-1])

	steps = Plan(1, "")
	assert.Equal(t, EvenHorizontal, steps[len(steps)-1])
}
