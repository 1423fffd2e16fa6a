// ABOUTME: MCP server implementation for jrnl
// ABOUTME: Provides tools and resources for AI assistants to interact with the journal
package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/mwhite/jrnl/internal/config"
	"github.com/mwhite/jrnl/internal/dates"
)

// Server wraps the MCP server with jrnl-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	cfg       *config.Config
}

// NewServer creates a new jrnl MCP server bound to the given config.
func NewServer(cfg *config.Config) *Server {
	impl := &mcp.Implementation{
		Name:    "jrnl",
		Version: "1.0.0",
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		cfg:       cfg,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

// resolveDate turns an optional tool-supplied date specifier into a concrete
// date. An empty specifier means today, with the configured late-night
// threshold applied.
func (s *Server) resolveDate(spec string, now time.Time) (time.Time, error) {
	if spec == "" {
		return dates.Today(now, s.cfg.HoursPastMidnightIncludedInDay), nil
	}
	resolved, err := dates.Resolve([]string{spec}, now, dates.Fuzzy())
	if err != nil {
		return time.Time{}, err
	}
	return resolved[0], nil
}
