package script

import (
	"fmt"
	"strings"
)

// Param declares one intended script parameter. Name doubles as the variable
// name inside the code; Type is a Grasshopper type hint such as "number",
// "point" or "brep".
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Analyzer defaults applied to parameters that were discovered in code but
// not declared explicitly.
const (
	defaultInputType  = "number"
	defaultOutputType = "geometry"
)

// ComposeGuide merges explicit parameter declarations with analyzer findings
// into a deterministic, human-readable setup instruction block. Explicit
// entries come first in declaration order, followed by analyzer-only entries
// in discovery order, so identical inputs always produce identical text.
func ComposeGuide(language string, inputs, outputs []Param, analysis Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SCRIPT SETUP GUIDE (%s)\n", strings.ToUpper(language))
	b.WriteString("1. Zoom in on script component to see ⊕/⊖\n")
	b.WriteString("2. Use ⊕ to add/remove parameters.\n")
	b.WriteString("3. Right-click params to set Name & Type Hint.\n")

	b.WriteString("\n---INPUTS---\n")
	writeSection(&b, mergeParams(inputs, analysis.Inputs, defaultInputType))

	b.WriteString("\n---OUTPUTS---\n")
	writeSection(&b, mergeParams(outputs, analysis.Outputs, defaultOutputType))

	return b.String()
}

// mergeParams appends analyzer-found names that were not declared explicitly,
// assigning them the generic fall-back type.
func mergeParams(explicit []Param, discovered []string, fallbackType string) []Param {
	merged := make([]Param, 0, len(explicit)+len(discovered))
	known := make(map[string]bool, len(explicit))
	for _, p := range explicit {
		if p.Type == "" {
			p.Type = fallbackType
		}
		merged = append(merged, p)
		known[p.Name] = true
	}
	for _, name := range discovered {
		if known[name] {
			continue
		}
		merged = append(merged, Param{
			Name:        name,
			Type:        fallbackType,
			Description: fmt.Sprintf("Variable used in code: %s", name),
		})
	}
	return merged
}

func writeSection(b *strings.Builder, params []Param) {
	if len(params) == 0 {
		b.WriteString("None required.\n")
		return
	}
	for _, p := range params {
		fmt.Fprintf(b, "- Name: %s, Type: %s\n", p.Name, p.Type)
	}
}
