// Package config declares the bridge configuration and its loader. Configs
// are YAML documents addressable by local path or URL.
package config

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	mcp "github.com/viant/mcp"
	"github.com/viant/x"
	"gopkg.in/yaml.v3"
)

// Endpoint identifies the TCP peer that executes canvas commands.
type Endpoint struct {
	Host string `yaml:"host,omitempty" json:"host,omitempty"`
	Port int    `yaml:"port,omitempty" json:"port,omitempty"`
	// Timeout bounds a single exchange; zero means wait indefinitely.
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// Address renders the endpoint as host:port suitable for net.Dial.
func (e *Endpoint) Address() string {
	host := e.Host
	if host == "" {
		host = "localhost"
	}
	port := e.Port
	if port == 0 {
		port = 8080
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Config aggregates all bridge settings.
type Config struct {
	Server      *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Grasshopper *Endpoint          `yaml:"grasshopper,omitempty" json:"grasshopper,omitempty"`
	// Builtins selects which built-in action services get registered;
	// "*" for all, a "prefix/" for a family or an exact service name.
	Builtins []string `yaml:"builtins,omitempty" json:"builtins,omitempty"`

	// Programmatic-only settings, never read from YAML.
	Options        []fluxor.Option `yaml:"-" json:"-"`
	Extensions     []types.Service `yaml:"-" json:"-"`
	ExtensionTypes []*x.Type       `yaml:"-" json:"-"`
}

// Load reads and parses a YAML config from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	return &cfg, nil
}

// Validate fails fast on settings that would only surface later at call time.
func (c *Config) Validate() error {
	if c.Grasshopper != nil {
		if c.Grasshopper.Port < 0 || c.Grasshopper.Port > 65535 {
			return fmt.Errorf("invalid grasshopper port: %v", c.Grasshopper.Port)
		}
		if c.Grasshopper.Timeout < 0 {
			return fmt.Errorf("invalid grasshopper timeout: %v", c.Grasshopper.Timeout)
		}
	}
	return nil
}
