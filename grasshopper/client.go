package grasshopper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// DefaultAddress is where a locally running Grasshopper host listens unless
// configured otherwise.
const DefaultAddress = "localhost:8080"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Client exchanges canonical commands with the Grasshopper host. Each call
// opens its own TCP connection - there is no pooling, keep-alive or cross-call
// ordering guarantee. The zero timeout preserves the original behaviour of
// blocking indefinitely on a non-responding peer.
type Client struct {
	address string
	timeout time.Duration
	dialer  net.Dialer
}

// ClientOption mutates a client during construction.
type ClientOption func(*Client)

// WithTimeout bounds each exchange (dial, write and read) with the supplied
// duration. Zero keeps the unbounded default.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient returns a client talking to the supplied host address. An empty
// address falls back to DefaultAddress.
func NewClient(address string, opts ...ClientOption) *Client {
	if address == "" {
		address = DefaultAddress
	}
	c := &Client{address: address}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the configured peer address.
func (c *Client) Address() string { return c.address }

// Exchange sends one command and waits for the terminating response. Any
// failure - refused connection, read error, undecodable payload - is captured
// and converted into Response{Success:false, Error:...}; the method never
// returns a transport fault to its caller in any other shape.
func (c *Client) Exchange(ctx context.Context, commandType string, parameters map[string]interface{}) *Response {
	if parameters == nil {
		parameters = map[string]interface{}{}
	}
	command := Command{Type: commandType, Parameters: parameters}

	payload, err := json.Marshal(command)
	if err != nil {
		return fault(commandType, err)
	}
	payload = append(payload, '\n')

	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return fault(commandType, err)
	}
	defer conn.Close()

	if c.timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			return fault(commandType, err)
		}
	}

	if _, err := conn.Write(payload); err != nil {
		return fault(commandType, err)
	}

	data, err := readFrame(conn)
	if err != nil {
		return fault(commandType, err)
	}

	response, err := decodeResponse(data)
	if err != nil {
		return fault(commandType, err)
	}
	return response
}

// readFrame accumulates chunks until a trailing newline delimiter is seen. An
// empty read before the delimiter means the peer closed the connection; the
// bytes gathered so far are treated as the final frame.
func readFrame(conn net.Conn) ([]byte, error) {
	var frame []byte
	chunk := make([]byte, 4096)
	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			frame = append(frame, chunk[:n]...)
			if bytes.HasSuffix(frame, []byte{'\n'}) {
				return frame, nil
			}
		}
		if err != nil {
			if len(frame) > 0 {
				return frame, nil
			}
			return nil, err
		}
	}
}

// decodeResponse strips an optional leading byte-order mark, trims the frame
// delimiter and parses the JSON response.
func decodeResponse(data []byte) (*Response, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimSpace(data)
	response := &Response{}
	if err := json.Unmarshal(data, response); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return response, nil
}

func fault(commandType string, err error) *Response {
	return &Response{
		Success: false,
		Error:   fmt.Sprintf("error communicating with Grasshopper (%s): %v", commandType, err),
	}
}
