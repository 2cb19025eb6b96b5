package grasshopper

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper/ghtest"
)

// fakePeer accepts one connection, reads a line and writes the canned reply
// verbatim. Tests drive malformed and partial frames through it.
func fakePeer(t *testing.T, reply []byte) net.Listener {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		if _, err := conn.Read(buf); err != nil {
			return
		}
		_, _ = conn.Write(reply)
	}()
	return listener
}

func TestClientExchange(t *testing.T) {
	testCases := []struct {
		description     string
		reply           []byte
		expectedSuccess bool
		expectedError   string
	}{
		{
			description:     "success round trip",
			reply:           []byte(`{"success":true,"result":{"id":"abc"}}` + "\n"),
			expectedSuccess: true,
		},
		{
			description:     "bom prefixed reply",
			reply:           append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"success":true,"result":1}`+"\n")...),
			expectedSuccess: true,
		},
		{
			description:     "eof without newline still decodes",
			reply:           []byte(`{"success":true,"result":"partial"}`),
			expectedSuccess: true,
		},
		{
			description:     "peer error passes through",
			reply:           []byte(`{"success":false,"error":"component not found"}` + "\n"),
			expectedSuccess: false,
			expectedError:   "component not found",
		},
	}

	for _, tc := range testCases {
		listener := fakePeer(t, tc.reply)
		client := NewClient(listener.Addr().String(), WithTimeout(2*time.Second))
		response := client.Exchange(context.Background(), OpGetDocumentInfo, nil)
		listener.Close()

		require.NotNil(t, response, tc.description)
		assert.EqualValues(t, tc.expectedSuccess, response.Success, tc.description)
		if tc.expectedError != "" {
			assert.EqualValues(t, tc.expectedError, response.Error, tc.description)
		}
	}
}

func TestClientExchangeSendsCommand(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	received := make(chan Command, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		n, _ := conn.Read(buf)
		var cmd Command
		_ = json.Unmarshal(buf[:n], &cmd)
		received <- cmd
		_, _ = conn.Write([]byte(`{"success":true}` + "\n"))
	}()

	client := NewClient(listener.Addr().String(), WithTimeout(2*time.Second))
	response := client.Exchange(context.Background(), OpAddComponent, map[string]interface{}{"type": "Circle"})
	assert.True(t, response.Success)

	cmd := <-received
	assert.EqualValues(t, OpAddComponent, cmd.Type)
	assert.EqualValues(t, "Circle", cmd.Parameters["type"])
}

func TestClientExchangeConnectionRefused(t *testing.T) {
	// Grab an address that is guaranteed to be closed.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	listener.Close()

	client := NewClient(address, WithTimeout(time.Second))
	response := client.Exchange(context.Background(), OpClearDocument, nil)
	require.NotNil(t, response)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "error communicating with Grasshopper (clear_document)")
}

func TestClientExchangeMalformedResponse(t *testing.T) {
	listener := fakePeer(t, []byte("not json\n"))
	defer listener.Close()

	client := NewClient(listener.Addr().String(), WithTimeout(2*time.Second))
	response := client.Exchange(context.Background(), OpGetDocumentInfo, nil)
	require.NotNil(t, response)
	assert.False(t, response.Success)
	assert.Contains(t, response.Error, "malformed response")
}

func TestClientExchangeAgainstFakeHost(t *testing.T) {
	peer, err := ghtest.New(map[string]ghtest.Handler{
		OpSearchComponents: func(parameters map[string]interface{}) (interface{}, error) {
			return []interface{}{map[string]interface{}{"name": "Circle"}}, nil
		},
	})
	require.NoError(t, err)
	defer peer.Close()
	peer.SetBOM(true)

	client := NewClient(peer.Address(), WithTimeout(2*time.Second))
	response := client.Exchange(context.Background(), OpSearchComponents, map[string]interface{}{"query": "circ"})

	require.True(t, response.Success)
	results := response.Result.([]interface{})
	require.Len(t, results, 1)
	assert.EqualValues(t, "circ", peer.ParametersOf(OpSearchComponents)["query"])
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("")
	assert.EqualValues(t, DefaultAddress, client.Address())
}
