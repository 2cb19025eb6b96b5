package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	name := NewName("grasshopper/component", "add")
	assert.EqualValues(t, "grasshopper_component-add", name.String())
	assert.EqualValues(t, "grasshopper/component", name.Service())
	assert.EqualValues(t, "add", name.Method())

	// Dashless names have no method part.
	bare := Name("grasshopper_component")
	assert.EqualValues(t, "grasshopper_component", bare.Service())
	assert.EqualValues(t, "", bare.Method())

	// The method separator is the last dash, so dashed methods survive.
	dashed := NewName("grasshopper/document", "status")
	assert.EqualValues(t, "grasshopper/document", dashed.Service())
	assert.EqualValues(t, "status", dashed.Method())
}
