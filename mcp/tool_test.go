package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/ghtest"
)

// TestServiceTools ensures that the service exposes a tool entry for every
// action method available via the workflow service, and that each entry can
// be resolved individually through LookupTool.
func TestServiceTools(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)
	defer svc.Shutdown(ctx)

	var expected int
	actions := svc.WorkflowService().Actions()
	for _, svcName := range actions.Services() {
		expected += len(actions.Lookup(svcName).Methods())
	}

	tools := svc.Tools()
	assert.EqualValues(t, expected, len(tools))

	for _, te := range tools {
		entry, err := svc.LookupTool(te.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", te.Metadata.Name) {
			assert.EqualValues(t, te.Metadata.Name, entry.Metadata.Name)
		}
	}

	_, err = svc.LookupTool("no-such-tool")
	assert.Error(t, err)
}

// TestServiceToolsGrasshopperSurface pins the tool names derived from the
// built-in Grasshopper action services.
func TestServiceToolsGrasshopperSurface(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)
	defer svc.Shutdown(ctx)

	names := svc.ToolNames()
	for _, expected := range []string{
		"grasshopper_component-add",
		"grasshopper_component-createSlider",
		"grasshopper_component-reference",
		"grasshopper_connection-connect",
		"grasshopper_connection-validate",
		"grasshopper_document-status",
		"grasshopper_pattern-create",
		"grasshopper_script-analyze",
		"grasshopper_script-setupGuide",
	} {
		assert.Contains(t, names, expected)
	}

	description, schema, ok := svc.ToolMetadata("grasshopper_component-add")
	require.True(t, ok)
	assert.NotEmpty(t, description)
	assert.NotNil(t, schema)

	_, _, ok = svc.ToolMetadata("grasshopper_component-missing")
	assert.False(t, ok)
}

// TestServiceMatchTools verifies that MatchTools applies the same
// pattern-matching semantics as resolveBuiltinServices (see builtins.go).
func TestServiceMatchTools(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)
	defer svc.Shutdown(ctx)

	all := svc.Tools()
	star := svc.MatchTools("*")
	assert.EqualValues(t, len(all), len(star))

	family := svc.MatchTools("grasshopper/component/")
	assert.GreaterOrEqual(t, len(family), 1)
	for _, te := range family {
		assert.Contains(t, te.Metadata.Name, "grasshopper_component-")
	}

	exact := svc.MatchTools("grasshopper_connection-validate")
	require.Len(t, exact, 1)
	assert.EqualValues(t, "grasshopper_connection-validate", exact[0].Metadata.Name)

	assert.Empty(t, svc.MatchTools(""))
}

// TestExecuteToolRoundTrip drives one tool invocation through the workflow
// runtime against an in-process fake host.
func TestExecuteToolRoundTrip(t *testing.T) {
	ctx := context.Background()

	peer, err := ghtest.New(map[string]ghtest.Handler{
		grasshopper.OpAddComponent: func(parameters map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "c1"}, nil
		},
	})
	require.NoError(t, err)
	defer peer.Close()

	client := grasshopper.NewClient(peer.Address(), grasshopper.WithTimeout(2*time.Second))
	svc, err := New(ctx, WithGrasshopperClient(client))
	require.NoError(t, err)
	defer svc.Shutdown(ctx)

	out, err := svc.ExecuteTool(ctx, "grasshopper_component-add",
		map[string]interface{}{"type": "slider", "x": 10, "y": 20}, 30*time.Second)
	require.NoError(t, err)
	assert.NotNil(t, out)

	sent := peer.ParametersOf(grasshopper.OpAddComponent)
	require.NotNil(t, sent)
	assert.EqualValues(t, "Number Slider", sent["type"])
}
