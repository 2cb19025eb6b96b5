package grasshopper

import "strings"

// componentAliases maps lower-cased, free-form component names to the
// canonical names the Grasshopper host recognises. The table is built once at
// process start and never mutated; lookup is exact-match on the lower-cased
// input, no fuzzy matching.
var componentAliases = map[string]string{
	// Number Slider variants - "slider" on its own defaults to the numeric one.
	"number slider":  "Number Slider",
	"numeric slider": "Number Slider",
	"num slider":     "Number Slider",
	"slider":         "Number Slider",

	"md slider":                "MD Slider",
	"multidimensional slider":  "MD Slider",
	"multi-dimensional slider": "MD Slider",
	"graph mapper":             "Graph Mapper",

	// Parameter components.
	"boolean": "Boolean Toggle",
	"bool":    "Boolean Toggle",
	"toggle":  "Boolean Toggle",
	"integer": "Integer",
	"int":     "Integer",

	// Arithmetic - word and symbol synonyms map to the same target.
	"add":            "Addition",
	"addition":       "Addition",
	"plus":           "Addition",
	"sum":            "Addition",
	"+":              "Addition",
	"subtract":       "Subtraction",
	"subtraction":    "Subtraction",
	"minus":          "Subtraction",
	"difference":     "Subtraction",
	"-":              "Subtraction",
	"multiply":       "Multiplication",
	"multiplication": "Multiplication",
	"times":          "Multiplication",
	"product":        "Multiplication",
	"*":              "Multiplication",
	"divide":         "Division",
	"division":       "Division",
	"/":              "Division",

	// Sets.
	"list item":   "List Item",
	"item":        "List Item",
	"list length": "List Length",
	"length":      "List Length",
	"series":      "Series",
	"range":       "Range",

	// Transforms.
	"move":      "Move",
	"translate": "Move",
	"rotate":    "Rotate",
	"scale":     "Scale",

	// Vectors.
	"construct point": "Construct Point",
	"point":           "Construct Point",
	"pt":              "Construct Point",
	"vector 2pt":      "Vector 2Pt",
	"vector":          "Vector 2Pt",
	"distance":        "Distance",
	"dist":            "Distance",

	// Curves.
	"line":           "Line",
	"rectangle":      "Rectangle",
	"rect":           "Rectangle",
	"circle":         "Circle",
	"loft":           "Loft",
	"curve length":   "Curve Length",
	"evaluate curve": "Evaluate Curve",
	"divide curve":   "Divide Curve",
	"join curves":    "Join Curves",
	"offset curve":   "Offset Curve",

	// Solids.
	"box":      "Box",
	"cube":     "Box",
	"sphere":   "Sphere",
	"cylinder": "Cylinder",
	"cone":     "Cone",

	// Output.
	"panel":        "Panel",
	"text panel":   "Panel",
	"output panel": "Panel",
	"display":      "Panel",
}

// ResolveComponentName maps a free-form component name to its canonical form.
// Unknown or already-canonical names pass through unchanged - the peer is the
// final authority on validity.
func ResolveComponentName(rawName string) string {
	if canonical, ok := componentAliases[strings.ToLower(rawName)]; ok {
		return canonical
	}
	return rawName
}
