package grasshopper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveComponentName(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    string
	}{
		{description: "exact alias", input: "slider", expected: "Number Slider"},
		{description: "case insensitive", input: "SLIDER", expected: "Number Slider"},
		{description: "mixed case", input: "Number Slider", expected: "Number Slider"},
		{description: "toggle alias", input: "toggle", expected: "Boolean Toggle"},
		{description: "word arithmetic", input: "plus", expected: "Addition"},
		{description: "symbol arithmetic", input: "+", expected: "Addition"},
		{description: "division symbol", input: "/", expected: "Division"},
		{description: "transform synonym", input: "translate", expected: "Move"},
		{description: "point shorthand", input: "pt", expected: "Construct Point"},
		{description: "panel family", input: "output panel", expected: "Panel"},
		{description: "canonical passes through", input: "Circle", expected: "Circle"},
		{description: "unknown passes through", input: "gizmo", expected: "gizmo"},
		{description: "no fuzzy matching", input: "sliders", expected: "sliders"},
		{description: "empty passes through", input: "", expected: ""},
	}

	for _, tc := range testCases {
		assert.EqualValues(t, tc.expected, ResolveComponentName(tc.input), tc.description)
	}
}
