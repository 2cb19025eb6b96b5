package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	testCases := []struct {
		description      string
		code             string
		language         string
		expectedInputs   []string
		expectedOutputs  []string
		expectedWarnings []string
	}{
		{
			description:     "simple assignment",
			code:            "result = x + y",
			language:        LanguagePython,
			expectedInputs:  []string{"x", "y"},
			expectedOutputs: []string{"result"},
		},
		{
			description:     "outputs subtracted from inputs",
			code:            "a = radius * 2\nresult = a + offset",
			language:        LanguagePython,
			expectedInputs:  []string{"radius", "offset"},
			expectedOutputs: []string{"a", "result"},
		},
		{
			description:     "reserved words skipped",
			code:            "import math\nresult = math.sin(angle)",
			language:        LanguagePython,
			expectedInputs:  []string{"sin", "angle"},
			expectedOutputs: []string{"result"},
		},
		{
			description:     "python comments ignored",
			code:            "# result = ignored\nout = value",
			language:        LanguagePython,
			expectedInputs:  []string{"value"},
			expectedOutputs: []string{"out"},
		},
		{
			description:     "csharp comments ignored",
			code:            "// a = ignored\nresult = width * height;",
			language:        LanguageCSharp,
			expectedInputs:  []string{"width", "height"},
			expectedOutputs: []string{"result"},
		},
		{
			description:     "non output assignment becomes input elsewhere",
			code:            "temp = x\nresult = temp",
			language:        LanguagePython,
			expectedInputs:  []string{"x", "temp"},
			expectedOutputs: []string{"result"},
		},
		{
			description:     "unknown language falls back to python",
			code:            "result = n",
			language:        "ruby",
			expectedInputs:  []string{"n"},
			expectedOutputs: []string{"result"},
		},
		{
			description:      "self contained code warns",
			code:             "print(1)",
			language:         LanguagePython,
			expectedWarnings: []string{"No variables detected - code might be self-contained"},
		},
		{
			description:      "empty code warns",
			code:             "",
			language:         LanguagePython,
			expectedWarnings: []string{"No variables detected - code might be self-contained"},
		},
	}

	for _, tc := range testCases {
		actual := Analyze(tc.code, tc.language)
		assert.EqualValues(t, tc.expectedInputs, actual.Inputs, tc.description)
		assert.EqualValues(t, tc.expectedOutputs, actual.Outputs, tc.description)
		assert.EqualValues(t, tc.expectedWarnings, actual.Warnings, tc.description)

		for _, in := range actual.Inputs {
			assert.NotContains(t, actual.Outputs, in, tc.description)
		}
	}
}
