package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeGuide(t *testing.T) {
	analysis := Analyze("result = x + y", LanguagePython)

	guide := ComposeGuide(LanguagePython, nil, nil, analysis)

	expected := "SCRIPT SETUP GUIDE (PYTHON)\n" +
		"1. Zoom in on script component to see ⊕/⊖\n" +
		"2. Use ⊕ to add/remove parameters.\n" +
		"3. Right-click params to set Name & Type Hint.\n" +
		"\n---INPUTS---\n" +
		"- Name: x, Type: number\n" +
		"- Name: y, Type: number\n" +
		"\n---OUTPUTS---\n" +
		"- Name: result, Type: geometry\n"
	assert.EqualValues(t, expected, guide)
}

func TestComposeGuideExplicitParamsComeFirst(t *testing.T) {
	analysis := Analysis{Inputs: []string{"x", "radius"}, Outputs: []string{"result"}}
	inputs := []Param{
		{Name: "radius", Type: "number", Description: "circle radius"},
	}
	outputs := []Param{
		{Name: "result", Type: "circle"},
	}

	guide := ComposeGuide(LanguagePython, inputs, outputs, analysis)

	// Explicit declaration wins over the analyzer duplicate, keeping its type.
	assert.Contains(t, guide, "- Name: radius, Type: number\n")
	assert.EqualValues(t, 1, strings.Count(guide, "Name: radius"))
	assert.Contains(t, guide, "- Name: result, Type: circle\n")
	assert.EqualValues(t, 1, strings.Count(guide, "Name: result"))

	// Discovered-only names follow the explicit block.
	radiusAt := strings.Index(guide, "Name: radius")
	xAt := strings.Index(guide, "Name: x")
	assert.Less(t, radiusAt, xAt)
}

func TestComposeGuideEmptySections(t *testing.T) {
	guide := ComposeGuide(LanguageCSharp, nil, nil, Analysis{})

	assert.Contains(t, guide, "SCRIPT SETUP GUIDE (CSHARP)\n")
	assert.EqualValues(t, 2, strings.Count(guide, "None required.\n"))
}

func TestComposeGuideDefaultTypes(t *testing.T) {
	inputs := []Param{{Name: "count"}}
	guide := ComposeGuide(LanguagePython, inputs, nil, Analysis{Outputs: []string{"out"}})

	assert.Contains(t, guide, "- Name: count, Type: number\n")
	assert.Contains(t, guide, "- Name: out, Type: geometry\n")
}
