package grasshopper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoBounds(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	testCases := []struct {
		description string
		value       *float64
		expectedMin float64
		expectedMax float64
	}{
		{description: "nil value defaults", value: nil, expectedMin: 0, expectedMax: 10},
		{description: "small positive keeps floor of 10", value: value(3), expectedMin: 0, expectedMax: 10},
		{description: "large positive doubles", value: value(50), expectedMin: 0, expectedMax: 100},
		{description: "boundary above one", value: value(6), expectedMin: 0, expectedMax: 12},
		{description: "negative widens both sides", value: value(-3), expectedMin: -10, expectedMax: 10},
		{description: "large negative doubles", value: value(-50), expectedMin: -100, expectedMax: 100},
		{description: "fraction keeps floor of 2", value: value(0.5), expectedMin: 0, expectedMax: 2},
		{description: "zero", value: value(0), expectedMin: 0, expectedMax: 2},
		{description: "exactly one", value: value(1), expectedMin: 0, expectedMax: 2},
	}

	for _, tc := range testCases {
		min, max := AutoBounds(tc.value)
		assert.EqualValues(t, tc.expectedMin, min, tc.description)
		assert.EqualValues(t, tc.expectedMax, max, tc.description)
	}
}

func TestInferRange(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	testCases := []struct {
		description string
		target      *float64
		min         *float64
		max         *float64
		expected    SliderRange
	}{
		{
			description: "no hints",
			expected:    SliderRange{Min: 0, Max: 10, Value: 5, Rounding: 0.5},
		},
		{
			description: "both bounds verbatim with midpoint value",
			min:         value(2),
			max:         value(8),
			expected:    SliderRange{Min: 2, Max: 8, Value: 5, Rounding: 0.5},
		},
		{
			description: "both bounds with explicit target",
			target:      value(7),
			min:         value(0),
			max:         value(100),
			expected:    SliderRange{Min: 0, Max: 100, Value: 7, Rounding: 0.5},
		},
		{
			description: "small positive target gets headroom",
			target:      value(3),
			expected:    SliderRange{Min: 0, Max: 13, Value: 3, Rounding: 0.5},
		},
		{
			description: "large positive target doubles",
			target:      value(25),
			expected:    SliderRange{Min: 0, Max: 50, Value: 25, Rounding: 0.5},
		},
		{
			description: "fractional target",
			target:      value(0.5),
			expected:    SliderRange{Min: 0, Max: 2, Value: 0.5, Rounding: 0.1},
		},
		{
			description: "tiny target tightens rounding",
			target:      value(0.05),
			expected:    SliderRange{Min: 0, Max: 2, Value: 0.05, Rounding: 0.01},
		},
		{
			description: "zero target",
			target:      value(0),
			expected:    SliderRange{Min: 0, Max: 2, Value: 0, Rounding: 0.01},
		},
		{
			description: "negative target widens both sides",
			target:      value(-4),
			expected:    SliderRange{Min: -10, Max: 10, Value: -4, Rounding: 0.5},
		},
		{
			description: "single lower bound keeps inferred max",
			target:      value(3),
			min:         value(1),
			expected:    SliderRange{Min: 1, Max: 13, Value: 3, Rounding: 0.5},
		},
		{
			description: "single upper bound below value widens to include it",
			target:      value(20),
			max:         value(15),
			expected:    SliderRange{Min: 0, Max: 20, Value: 20, Rounding: 0.5},
		},
		{
			description: "lower bound above value widens to include it",
			target:      value(2),
			min:         value(5),
			expected:    SliderRange{Min: 2, Max: 12, Value: 2, Rounding: 0.5},
		},
	}

	for _, tc := range testCases {
		actual := InferRange(tc.target, tc.min, tc.max)
		assert.EqualValues(t, tc.expected, actual, tc.description)
		assert.LessOrEqual(t, actual.Min, actual.Value, tc.description)
		assert.LessOrEqual(t, actual.Value, actual.Max, tc.description)
		assert.Greater(t, actual.Rounding, 0.0, tc.description)
	}
}

// The add_component fall-back and the dedicated slider path use different
// formulas on purpose; the same value must keep producing different ranges.
func TestAutoBoundsAndInferRangeDiverge(t *testing.T) {
	v := 3.0
	_, autoMax := AutoBounds(&v)
	inferred := InferRange(&v, nil, nil)
	assert.EqualValues(t, 10, autoMax)
	assert.EqualValues(t, 13, inferred.Max)
}

func TestPrecision(t *testing.T) {
	assert.EqualValues(t, 0.01, Precision(0.05))
	assert.EqualValues(t, 0.01, Precision(-0.05))
	assert.EqualValues(t, 0.1, Precision(0.5))
	assert.EqualValues(t, 0.5, Precision(1))
	assert.EqualValues(t, 0.5, Precision(100))
}
