// Package ghtest provides an in-process fake Grasshopper host for tests. It
// speaks the newline-delimited JSON command protocol on a loopback listener
// and dispatches to per-operation handlers.
package ghtest

import (
	"bufio"
	"encoding/json"
	"net"
	"sync"
)

// Handler produces the result (or domain error) for one canonical operation.
type Handler func(parameters map[string]interface{}) (interface{}, error)

// Server is a minimal Grasshopper peer double.
type Server struct {
	listener net.Listener

	mu       sync.Mutex
	handlers map[string]Handler
	requests []command
	withBOM  bool
}

type command struct {
	Type       string                 `json:"type"`
	Parameters map[string]interface{} `json:"parameters"`
}

// New starts a server on an ephemeral loopback port.
func New(handlers map[string]Handler) (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{listener: listener, handlers: handlers}
	if s.handlers == nil {
		s.handlers = map[string]Handler{}
	}
	go s.serve()
	return s, nil
}

// Address returns the host:port the server listens on.
func (s *Server) Address() string { return s.listener.Addr().String() }

// Close stops the listener.
func (s *Server) Close() error { return s.listener.Close() }

// SetBOM makes every subsequent response carry a UTF-8 byte-order mark,
// matching peers that encode with a BOM-emitting writer.
func (s *Server) SetBOM(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withBOM = enabled
}

// Handle registers (or replaces) the handler for one operation.
func (s *Server) Handle(operation string, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[operation] = handler
}

// Requests returns the operation names received so far, in arrival order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	for i, req := range s.requests {
		out[i] = req.Type
	}
	return out
}

// ParametersOf returns the parameters of the most recent request for the
// given operation, or nil when none arrived.
func (s *Server) ParametersOf(operation string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Type == operation {
			return s.requests[i].Parameters
		}
	}
	return nil
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return
	}
	var cmd command
	if err := json.Unmarshal(line, &cmd); err != nil {
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, cmd)
	handler := s.handlers[cmd.Type]
	withBOM := s.withBOM
	s.mu.Unlock()

	reply := map[string]interface{}{"success": false, "error": "unknown command: " + cmd.Type}
	if handler != nil {
		if result, err := handler(cmd.Parameters); err != nil {
			reply = map[string]interface{}{"success": false, "error": err.Error()}
		} else {
			reply = map[string]interface{}{"success": true, "result": result}
		}
	}

	data, err := json.Marshal(reply)
	if err != nil {
		return
	}
	if withBOM {
		data = append([]byte{0xEF, 0xBB, 0xBF}, data...)
	}
	data = append(data, '\n')
	_, _ = conn.Write(data)
}
