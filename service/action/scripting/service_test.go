package scripting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/ghtest"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/script"
)

func newService(t *testing.T, handlers map[string]ghtest.Handler) (*service, *ghtest.Server) {
	t.Helper()
	peer, err := ghtest.New(handlers)
	require.NoError(t, err)
	t.Cleanup(func() { _ = peer.Close() })
	client := grasshopper.NewClient(peer.Address(), grasshopper.WithTimeout(2*time.Second))
	return &service{client: client}, peer
}

func TestExecuteDefaultsLanguage(t *testing.T) {
	svc, peer := newService(t, map[string]ghtest.Handler{
		grasshopper.OpExecuteCode: func(parameters map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "sc1"}, nil
		},
	})

	_, err := svc.execute(context.Background(), &ExecuteInput{Code: "result = x"})
	require.NoError(t, err)

	sent := peer.ParametersOf(grasshopper.OpExecuteCode)
	assert.EqualValues(t, script.LanguagePython, sent["language"])
	assert.EqualValues(t, "result = x", sent["code"])
}

func TestAnalyzeIsLocal(t *testing.T) {
	svc, peer := newService(t, nil)

	out, err := svc.analyze(context.Background(), &AnalyzeInput{Code: "result = a + b"})
	require.NoError(t, err)
	analysis := out.(*script.Analysis)

	assert.EqualValues(t, []string{"a", "b"}, analysis.Inputs)
	assert.EqualValues(t, []string{"result"}, analysis.Outputs)
	assert.Empty(t, peer.Requests())
}

func TestSetupGuidePublishesPanel(t *testing.T) {
	svc, peer := newService(t, map[string]ghtest.Handler{
		grasshopper.OpGetComponentInfo: func(parameters map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "sc1", "x": 200.0, "y": 50.0}, nil
		},
		grasshopper.OpAddComponent: func(parameters map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"id": "p1"}, nil
		},
		grasshopper.OpSetComponentValue: func(parameters map[string]interface{}) (interface{}, error) {
			return "ok", nil
		},
		grasshopper.OpConnectComponents: func(parameters map[string]interface{}) (interface{}, error) {
			return map[string]interface{}{"connected": true}, nil
		},
	})

	out, err := svc.setupGuide(context.Background(), &SetupGuideInput{
		ComponentID: "sc1",
		Code:        "result = radius * 2",
	})
	require.NoError(t, err)
	require.True(t, out.(*grasshopper.Response).Success)

	added := peer.ParametersOf(grasshopper.OpAddComponent)
	assert.EqualValues(t, "Panel", added["type"])
	assert.EqualValues(t, 500.0, added["x"])
	assert.EqualValues(t, 50.0, added["y"])
	assert.EqualValues(t, "Setup Guide", added["name"])

	set := peer.ParametersOf(grasshopper.OpSetComponentValue)
	guide, _ := set["value"].(string)
	assert.True(t, strings.HasPrefix(guide, "SCRIPT SETUP GUIDE (PYTHON)"))
	assert.Contains(t, guide, "- Name: radius, Type: number")
	assert.Contains(t, guide, "- Name: result, Type: geometry")
	assert.EqualValues(t, "p1", set["id"])

	connected := peer.ParametersOf(grasshopper.OpConnectComponents)
	assert.EqualValues(t, "sc1", connected["sourceId"])
	assert.EqualValues(t, "p1", connected["targetId"])

	assert.EqualValues(t, []string{
		"get_component_info", "add_component", "set_component_value", "connect_components",
	}, peer.Requests())
}

func TestSetupGuideShortCircuitsOnFailure(t *testing.T) {
	svc, peer := newService(t, nil)

	out, err := svc.setupGuide(context.Background(), &SetupGuideInput{ComponentID: "missing", Code: "x = 1"})
	require.NoError(t, err)
	response := out.(*grasshopper.Response)
	assert.False(t, response.Success)
	assert.EqualValues(t, []string{"get_component_info"}, peer.Requests())
}

func TestServiceSurface(t *testing.T) {
	base := New(grasshopper.NewClient(""))
	assert.EqualValues(t, "grasshopper/script", base.Name())
	assert.Len(t, base.Methods(), 3)
}
