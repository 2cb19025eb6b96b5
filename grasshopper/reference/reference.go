package reference

import "strings"

// Param describes one input or output slot of a component kind.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Optional    bool   `json:"optional,omitempty"`
}

// Setting describes one configurable property of a component kind.
type Setting struct {
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// Component is the static descriptor for one canonical component kind.
type Component struct {
	Name          string             `json:"name"`
	FullName      string             `json:"fullName,omitempty"`
	Category      string             `json:"category,omitempty"`
	Description   string             `json:"description"`
	Inputs        []Param            `json:"inputs,omitempty"`
	Outputs       []Param            `json:"outputs,omitempty"`
	Settings      map[string]Setting `json:"settings,omitempty"`
	UsageExamples []string           `json:"usageExamples,omitempty"`
	CommonIssues  []string           `json:"commonIssues,omitempty"`
}

// ConnectionRule documents one recommended source type to target port pairing.
type ConnectionRule struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

// DataType documents a wire data type and the types it coerces to.
type DataType struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CompatibleWith []string `json:"compatibleWith"`
}

// Hint carries usage guidance for a frequently confused component kind.
type Hint struct {
	Description         string   `json:"description"`
	CommonUsage         string   `json:"common_usage,omitempty"`
	Parameters          []string `json:"parameters,omitempty"`
	ConnectionTip       string   `json:"connection_tip,omitempty"`
	NotToBeConfusedWith string   `json:"not_to_be_confused_with,omitempty"`
}

// Library is the read-only component reference consulted to enrich peer
// responses. It is constructed once at process start and never mutated, so no
// locking is required.
type Library struct {
	components []Component
	byName     map[string]*Component
	rules      []ConnectionRule
	dataTypes  []DataType
	hints      map[string]Hint
	tips       []string
}

// Lookup returns the descriptor registered under the given component name or
// full name. Matching is exact on the lower-cased input.
func (l *Library) Lookup(name string) (*Component, bool) {
	c, ok := l.byName[strings.ToLower(name)]
	return c, ok
}

// Components returns all descriptors in registration order.
func (l *Library) Components() []Component { return l.components }

// ConnectionRules returns the recommended pairing table.
func (l *Library) ConnectionRules() []ConnectionRule { return l.rules }

// DataTypes returns the documented wire data types.
func (l *Library) DataTypes() []DataType { return l.dataTypes }

// Hints returns per-component usage guidance keyed by canonical name.
func (l *Library) Hints() map[string]Hint { return l.hints }

// Tips returns general canvas recommendations in a stable order.
func (l *Library) Tips() []string { return l.tips }

func newLibrary(components []Component, rules []ConnectionRule, dataTypes []DataType, hints map[string]Hint, tips []string) *Library {
	l := &Library{
		components: components,
		byName:     make(map[string]*Component, len(components)*2),
		rules:      rules,
		dataTypes:  dataTypes,
		hints:      hints,
		tips:       tips,
	}
	for i := range components {
		c := &l.components[i]
		l.byName[strings.ToLower(c.Name)] = c
		if c.FullName != "" {
			l.byName[strings.ToLower(c.FullName)] = c
		}
	}
	return l
}
