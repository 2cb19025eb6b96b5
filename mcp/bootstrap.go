package mcp

import (
	"context"

	"github.com/viant/fluxor"

	"github.com/rhinomcp/grasshopper-mcp/grasshopper"
	"github.com/rhinomcp/grasshopper-mcp/grasshopper/reference"
	"github.com/rhinomcp/grasshopper-mcp/mcp/config"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. It orchestrates the individual preparation steps so that the
// logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.initWorkflowService()
	s.buildMcpToolRegistry()

	// Auto-start runtime so that callers get a ready-to-use instance without
	// requiring an additional Start() call.
	return s.Start(ctx)
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}

	if len(s.config.Builtins) == 0 { //register all built-in action services
		s.config.Builtins = append(s.config.Builtins, "*")
	}

	if s.gh == nil {
		address := grasshopper.DefaultAddress
		var opts []grasshopper.ClientOption
		if endpoint := s.config.Grasshopper; endpoint != nil {
			address = endpoint.Address()
			if endpoint.Timeout > 0 {
				opts = append(opts, grasshopper.WithTimeout(endpoint.Timeout))
			}
		}
		s.gh = grasshopper.NewClient(address, opts...)
	}

	if s.library == nil {
		s.library = reference.Default()
	}
}

// initWorkflowService assembles the list of Fluxor options, instantiates the
// engine and stores convenience shortcuts on the Workflow embed.
func (s *Service) initWorkflowService() {
	// Start with options coming from the configuration.
	opts := append([]fluxor.Option{}, s.config.Options...)

	if len(s.config.ExtensionTypes) > 0 {
		opts = append(opts, fluxor.WithExtensionTypes(s.config.ExtensionTypes...))
	}

	if len(s.config.Extensions) > 0 {
		opts = append(opts, fluxor.WithExtensionServices(s.config.Extensions...))
	}

	// Built-in Grasshopper action services selected by config patterns.
	deps := &builtinDeps{client: s.gh, library: s.library}
	s.Workflow.Extensions = append(s.Workflow.Extensions, resolveBuiltinServices(s.config.Builtins, deps)...)

	if len(s.Workflow.Extensions) > 0 {
		opts = append(opts, fluxor.WithExtensionServices(s.Workflow.Extensions...))
	}

	// Finally append any additional Workflow options passed through
	// WithWorkflowOptions to give callers the chance to override defaults.
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
