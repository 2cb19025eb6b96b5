package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryLookup(t *testing.T) {
	library := Default()

	testCases := []struct {
		description  string
		name         string
		expectedName string
		expectedOK   bool
	}{
		{description: "exact name", name: "Number Slider", expectedName: "Number Slider", expectedOK: true},
		{description: "lower case", name: "number slider", expectedName: "Number Slider", expectedOK: true},
		{description: "full name", name: "Mathematics", expectedName: "Math", expectedOK: true},
		{description: "full name case insensitive", name: "point parameter", expectedName: "Point", expectedOK: true},
		{description: "unknown", name: "Voronoi", expectedOK: false},
	}

	for _, tc := range testCases {
		component, ok := library.Lookup(tc.name)
		assert.EqualValues(t, tc.expectedOK, ok, tc.description)
		if tc.expectedOK {
			require.NotNil(t, component, tc.description)
			assert.EqualValues(t, tc.expectedName, component.Name, tc.description)
		}
	}
}

func TestLibrarySliderSettings(t *testing.T) {
	library := Default()
	slider, ok := library.Lookup("Number Slider")
	require.True(t, ok)

	for _, key := range []string{"min", "max", "value", "rounding", "type", "name"} {
		_, present := slider.Settings[key]
		assert.True(t, present, key)
	}
	assert.EqualValues(t, 0, slider.Settings["min"].Default)
	assert.EqualValues(t, 10, slider.Settings["max"].Default)
}

func TestLibraryCatalogs(t *testing.T) {
	library := Default()

	assert.NotEmpty(t, library.Components())
	assert.NotEmpty(t, library.ConnectionRules())
	assert.NotEmpty(t, library.DataTypes())
	assert.NotEmpty(t, library.Tips())

	hints := library.Hints()
	require.Contains(t, hints, "Number Slider")
	assert.NotEmpty(t, hints["Number Slider"].NotToBeConfusedWith)

	// Every connection rule references a documented pairing direction.
	for _, rule := range library.ConnectionRules() {
		assert.NotEmpty(t, rule.From)
		assert.NotEmpty(t, rule.To)
	}
}
