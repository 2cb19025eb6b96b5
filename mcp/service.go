package mcp

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/reference"
	"github.com/rhinomcp/grasshopper-mcp/internal/syncmap"
	"github.com/rhinomcp/grasshopper-mcp/mcp/config"
)

// Service bundles configuration, a Fluxor workflow engine hosting the
// Grasshopper action services and the shared transport client. All heavy
// lifting during instantiation lives in bootstrap.go to keep this file
// focused on the public surface.
type Service struct {
	Workflow
	started int32
	config  *config.Config

	// Per-call-connecting client shared by all action services.
	gh *grasshopper.Client
	// Frozen component reference library.
	library *reference.Library

	// Cached MCP tool definitions built from the action services.
	mcpTools *syncmap.Map[toolEntry]
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service instance that exposes all
// actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration instance passed to the service
// at construction time. Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Grasshopper returns the shared transport client.
func (s *Service) Grasshopper() *grasshopper.Client { return s.gh }

// Library returns the frozen component reference library.
func (s *Service) Library() *reference.Library { return s.library }

// ToolNames returns all registered MCP tool names, sorted for deterministic
// output.
func (s *Service) ToolNames() []string {
	entries := s.mcpTools.List()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	sort.Strings(names)
	return names
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	if !s.mcpTools.Has(name) {
		return "", nil, false
	}
	entry := s.mcpTools.Get(name)
	return entry.description, entry.metadata.InputSchema, true
}

// Option modifies a service instance before it is initialised. Users can pass
// an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithGrasshopperClient overrides the transport client built from the
// configuration; tests use this to point the service at a fake peer.
func WithGrasshopperClient(client *grasshopper.Client) Option {
	return func(s *Service) {
		s.gh = client
	}
}

// WithLibrary overrides the default component reference library.
func WithLibrary(library *reference.Library) Option {
	return func(s *Service) {
		s.library = library
	}
}

// WithWorkflowOptions appends additional Fluxor options that will be used
// when the workflow engine gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers custom Fluxor services that should be available
// in addition to the built-in Grasshopper action services.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{mcpTools: syncmap.NewRegistry[toolEntry]()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is a convenience constructor accepting the configuration
// directly. Additional options may be supplied after it.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Start launches the underlying Fluxor runtime. Multiple invocations are
// safe - subsequent calls will be ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Additional invocations after the
// first successful call have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
