package script

import (
	"regexp"
	"strings"
)

// Analysis holds the variables discovered in a script snippet. Inputs and
// Outputs are disjoint by construction (outputs win and are subtracted from
// the input candidates) and keep discovery order so downstream text stays
// reproducible.
type Analysis struct {
	Inputs   []string `json:"inputs"`
	Outputs  []string `json:"outputs"`
	Warnings []string `json:"warnings,omitempty"`
}

var (
	assignExpr     = regexp.MustCompile(`^(\w+)\s*=`)
	identifierExpr = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)
)

// outputVocabulary lists conventional result variable names per dialect. An
// assignment to any of them marks the identifier as a candidate output.
var outputVocabulary = map[string]map[string]bool{
	LanguagePython: wordSet("result", "output", "a", "b", "c", "out", "geometry", "points", "curves", "surfaces"),
	LanguageCSharp: wordSet("result", "output", "a", "b", "c", "out"),
}

// reservedWords holds per-dialect keywords, builtins and ambient namespaces
// that must never be proposed as input parameters.
var reservedWords = map[string]map[string]bool{
	LanguagePython: wordSet(
		"print", "len", "range", "for", "if", "else", "elif", "while", "def",
		"class", "import", "from", "as", "True", "False", "None", "and", "or",
		"not", "in", "is", "math", "ghpythonlib", "Rhino", "Grasshopper", "System",
	),
	LanguageCSharp: wordSet(
		"var", "int", "double", "string", "bool", "if", "else", "for", "while",
		"foreach", "using", "namespace", "class", "public", "private", "static",
		"void", "return", "true", "false", "null", "new", "this", "base",
		"Point3d", "Vector3d", "Plane", "Circle", "Line", "Curve", "Surface",
		"Brep", "Mesh", "Math", "System", "Rhino", "Grasshopper",
	),
}

// Supported script dialects.
const (
	LanguagePython = "python"
	LanguageCSharp = "csharp"
)

// commentMarker returns the single-line comment prefix for a dialect.
func commentMarker(language string) string {
	if strings.EqualFold(language, LanguageCSharp) {
		return "//"
	}
	return "#"
}

// Analyze scans code line by line and proposes candidate input and output
// variable names. It is a best-effort lexical heuristic, not a parser: there
// is no notion of scope, branching or shadowing, and sufficiently unusual
// code will over- or under-collect. Ambiguity is reported through warnings,
// never as an error.
func Analyze(code, language string) Analysis {
	dialect := strings.ToLower(language)
	if dialect != LanguageCSharp {
		dialect = LanguagePython
	}
	marker := commentMarker(dialect)
	outputs := newOrderedSet()
	inputs := newOrderedSet()

	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, marker) {
			continue
		}

		var assigned string
		if match := assignExpr.FindStringSubmatch(line); match != nil {
			assigned = match[1]
			if outputVocabulary[dialect][strings.ToLower(assigned)] {
				outputs.add(assigned)
			}
		}

		for _, ident := range identifierExpr.FindAllString(line, -1) {
			if reservedWords[dialect][ident] {
				continue
			}
			if assigned != "" && ident == assigned {
				continue
			}
			inputs.add(ident)
		}
	}

	analysis := Analysis{
		Inputs:  inputs.subtract(outputs),
		Outputs: outputs.values(),
	}
	if len(analysis.Inputs) == 0 && len(analysis.Outputs) == 0 {
		analysis.Warnings = append(analysis.Warnings, "No variables detected - code might be self-contained")
	}
	return analysis
}

// orderedSet is a string set that remembers insertion order.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}}
}

func (s *orderedSet) add(value string) {
	if s.seen[value] {
		return
	}
	s.seen[value] = true
	s.items = append(s.items, value)
}

func (s *orderedSet) values() []string { return s.items }

// subtract returns the members not present in other, preserving order.
func (s *orderedSet) subtract(other *orderedSet) []string {
	var out []string
	for _, v := range s.items {
		if !other.seen[v] {
			out = append(out, v)
		}
	}
	return out
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
