package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		description string
		pattern     string
		name        string
		expected    bool
	}{
		{description: "star matches everything", pattern: "*", name: "grasshopper/component", expected: true},
		{description: "star matches empty", pattern: "*", name: "", expected: true},
		{description: "empty matches nothing", pattern: "", name: "grasshopper/component", expected: false},
		{description: "prefix match", pattern: "grasshopper/", name: "grasshopper/component", expected: true},
		{description: "exact match", pattern: "grasshopper/component", name: "grasshopper/component", expected: true},
		{description: "no match", pattern: "system/", name: "grasshopper/component", expected: false},
	}

	for _, tc := range testCases {
		assert.EqualValues(t, tc.expected, Match(tc.pattern, tc.name), tc.description)
	}
}
