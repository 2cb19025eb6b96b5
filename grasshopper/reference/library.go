package reference

// defaultLibrary is assembled once during package initialisation and shared
// read-only for the process lifetime.
var defaultLibrary = newLibrary(defaultComponents(), defaultRules(), defaultDataTypes(), defaultHints(), defaultTips())

// Default returns the process-wide component reference library.
func Default() *Library { return defaultLibrary }

func defaultComponents() []Component {
	return []Component{
		{
			Name:        "Point",
			FullName:    "Point Parameter",
			Category:    "Params",
			Description: "Creates a point at specific coordinates",
			Inputs: []Param{
				{Name: "X", Type: "Number", Description: "X coordinate"},
				{Name: "Y", Type: "Number", Description: "Y coordinate"},
				{Name: "Z", Type: "Number", Description: "Z coordinate"},
			},
			Outputs: []Param{{Name: "Pt", Type: "Point", Description: "Point output"}},
		},
		{
			Name:        "Number Slider",
			FullName:    "Number Slider",
			Category:    "Params",
			Description: "Creates a slider for numeric input with adjustable range and precision",
			Outputs:     []Param{{Name: "N", Type: "Number", Description: "Number output"}},
			Settings: map[string]Setting{
				"min":      {Description: "Minimum value of the slider", Default: 0},
				"max":      {Description: "Maximum value of the slider", Default: 10},
				"value":    {Description: "Current value of the slider", Default: 5},
				"rounding": {Description: "Rounding precision (0.01, 0.1, 1, etc.)", Default: 0.1},
				"type":     {Description: "Slider type (integer, floating point)", Default: "float"},
				"name":     {Description: "Custom name for the slider", Default: ""},
			},
			UsageExamples: []string{
				"Create a Number Slider with min=0, max=100, value=50",
				"Create a Number Slider for radius with min=0.1, max=10, value=2.5, rounding=0.1",
			},
			CommonIssues: []string{
				"Confusing with other slider types",
				"Not setting appropriate min/max values for the intended use",
			},
		},
		{
			Name:        "Panel",
			FullName:    "Panel",
			Category:    "Params",
			Description: "Displays text or numeric data",
			Inputs:      []Param{{Name: "Input", Type: "Any", Description: "Any input data"}},
		},
		{
			Name:        "Math",
			FullName:    "Mathematics",
			Category:    "Maths",
			Description: "Performs mathematical operations",
			Inputs: []Param{
				{Name: "A", Type: "Number", Description: "First number"},
				{Name: "B", Type: "Number", Description: "Second number"},
			},
			Outputs: []Param{{Name: "Result", Type: "Number", Description: "Result of the operation"}},
		},
		{
			Name:        "Addition",
			FullName:    "Addition",
			Category:    "Maths",
			Description: "Adds two or more numbers",
			Inputs: []Param{
				{Name: "A", Type: "Number", Description: "First input value"},
				{Name: "B", Type: "Number", Description: "Second input value"},
			},
			Outputs: []Param{{Name: "Result", Type: "Number", Description: "Sum of inputs"}},
			UsageExamples: []string{
				"Connect two Number Sliders to inputs A and B to add their values",
				"Connect multiple values to add them all together",
			},
			CommonIssues: []string{
				"When connecting multiple sliders, ensure they connect to different inputs (A and B)",
				"The first slider should connect to input A, the second to input B",
			},
		},
		{
			Name:        "XY Plane",
			FullName:    "XY Plane",
			Category:    "Vector",
			Description: "Creates an XY plane at the world origin or at a specified point",
			Inputs:      []Param{{Name: "Origin", Type: "Point", Description: "Origin point", Optional: true}},
			Outputs:     []Param{{Name: "Plane", Type: "Plane", Description: "XY plane"}},
		},
		{
			Name:        "Construct Point",
			FullName:    "Construct Point",
			Category:    "Vector",
			Description: "Constructs a point from X, Y, Z coordinates",
			Inputs: []Param{
				{Name: "X", Type: "Number", Description: "X coordinate"},
				{Name: "Y", Type: "Number", Description: "Y coordinate"},
				{Name: "Z", Type: "Number", Description: "Z coordinate"},
			},
			Outputs: []Param{{Name: "Pt", Type: "Point", Description: "Constructed point"}},
		},
		{
			Name:        "Circle",
			FullName:    "Circle",
			Category:    "Curve",
			Description: "Creates a circle",
			Inputs: []Param{
				{Name: "Plane", Type: "Plane", Description: "Base plane for the circle"},
				{Name: "Radius", Type: "Number", Description: "Circle radius"},
			},
			Outputs: []Param{{Name: "C", Type: "Circle", Description: "Circle output"}},
		},
		{
			Name:        "Line",
			FullName:    "Line",
			Category:    "Curve",
			Description: "Creates a line between two points",
			Inputs: []Param{
				{Name: "Start", Type: "Point", Description: "Start point"},
				{Name: "End", Type: "Point", Description: "End point"},
			},
			Outputs: []Param{{Name: "L", Type: "Line", Description: "Line output"}},
		},
		{
			Name:        "Extrude",
			FullName:    "Extrude",
			Category:    "Surface",
			Description: "Extrudes a curve to create a surface or a solid",
			Inputs: []Param{
				{Name: "Base", Type: "Curve", Description: "Base curve to extrude"},
				{Name: "Direction", Type: "Vector", Description: "Direction of extrusion", Optional: true},
				{Name: "Height", Type: "Number", Description: "Height of extrusion"},
			},
			Outputs: []Param{{Name: "Brep", Type: "Brep", Description: "Extruded brep"}},
		},
	}
}

func defaultRules() []ConnectionRule {
	return []ConnectionRule{
		{From: "Number", To: "Circle.Radius", Description: "Connect a number to the radius input of a circle"},
		{From: "Point", To: "Circle.Plane", Description: "Connect a point to the plane input of a circle (not recommended, use XY Plane instead)"},
		{From: "XY Plane", To: "Circle.Plane", Description: "Connect an XY Plane to the plane input of a circle (recommended)"},
		{From: "Number", To: "Math.A", Description: "Connect a number to the first input of a Math component"},
		{From: "Number", To: "Math.B", Description: "Connect a number to the second input of a Math component"},
		{From: "Number", To: "Construct Point.X", Description: "Connect a number to the X input of a Construct Point component"},
		{From: "Number", To: "Construct Point.Y", Description: "Connect a number to the Y input of a Construct Point component"},
		{From: "Number", To: "Construct Point.Z", Description: "Connect a number to the Z input of a Construct Point component"},
		{From: "Point", To: "Line.Start", Description: "Connect a point to the start input of a Line component"},
		{From: "Point", To: "Line.End", Description: "Connect a point to the end input of a Line component"},
		{From: "Circle", To: "Extrude.Base", Description: "Connect a circle to the base input of an Extrude component"},
		{From: "Number", To: "Extrude.Height", Description: "Connect a number to the height input of an Extrude component"},
	}
}

func defaultDataTypes() []DataType {
	return []DataType{
		{Name: "Number", Description: "A numeric value", CompatibleWith: []string{"Number", "Integer", "Double"}},
		{Name: "Point", Description: "A 3D point in space", CompatibleWith: []string{"Point3d", "Point"}},
		{Name: "Vector", Description: "A 3D vector", CompatibleWith: []string{"Vector3d", "Vector"}},
		{Name: "Plane", Description: "A plane in 3D space", CompatibleWith: []string{"Plane"}},
		{Name: "Circle", Description: "A circle curve", CompatibleWith: []string{"Circle", "Curve"}},
		{Name: "Line", Description: "A line segment", CompatibleWith: []string{"Line", "Curve"}},
		{Name: "Curve", Description: "A curve object", CompatibleWith: []string{"Curve", "Circle", "Line", "Arc", "Polyline"}},
		{Name: "Brep", Description: "A boundary representation object", CompatibleWith: []string{"Brep", "Surface", "Solid"}},
	}
}

func defaultHints() map[string]Hint {
	return map[string]Hint{
		"Number Slider": {
			Description:         "Single numeric value slider with adjustable range",
			CommonUsage:         "Use for single numeric inputs like radius, height, count, etc.",
			Parameters:          []string{"min", "max", "value", "rounding", "type"},
			NotToBeConfusedWith: "MD Slider (which is for multi-dimensional values)",
		},
		"MD Slider": {
			Description:         "Multi-dimensional slider for vector input",
			CommonUsage:         "Use for vector inputs, NOT for simple numeric values",
			NotToBeConfusedWith: "Number Slider (which is for single numeric values)",
		},
		"Panel": {
			Description: "Displays text or numeric data",
			CommonUsage: "Use for displaying outputs and debugging",
		},
		"Addition": {
			Description:   "Adds two or more numbers",
			CommonUsage:   "Connect two Number Sliders to inputs A and B",
			Parameters:    []string{"A", "B"},
			ConnectionTip: "First slider should connect to input A, second to input B",
		},
	}
}

func defaultTips() []string {
	return []string{
		"When needing a simple numeric input control, ALWAYS use 'Number Slider', not MD Slider",
		"For vector inputs (like 3D points), use 'MD Slider' or 'Construct Point' with multiple Number Sliders",
		"Use 'Panel' to display outputs and debug values",
		"When connecting multiple sliders to Addition, first slider goes to input A, second to input B",
		"For slider values above 1.0, create the slider through the dedicated slider tool or specify min/max values",
		"Use the component reference lookup to check actual parameter names before connecting",
		"Use the connections listing to verify that connections were established correctly",
		"Validate a connection before attempting it when unsure about type compatibility",
	}
}
