// ABOUTME: MCP server initialization and configuration for standup.
// ABOUTME: Sets up the server with standup journal tools for AI agent access.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/standup/internal/session"
)

// Opener opens a session for the given optional YYYY-MM-DD working date.
type Opener func(dateOverride string) (*session.Session, error)

// Server wraps the MCP server with access to the standup journal.
type Server struct {
	mcp         *gomcp.Server
	open        Opener
	newestFirst bool
	logger      *slog.Logger

	// mu serializes tool calls; each call loads and saves the whole journal.
	mu sync.Mutex
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithNewestFirst sets the default order for list_entries.
func WithNewestFirst(newestFirst bool) ServerOption {
	return func(s *Server) {
		s.newestFirst = newestFirst
	}
}

// WithLogger sets the logger for tool call diagnostics.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates an MCP server exposing the standup journal.
func NewServer(open Opener, opts ...ServerOption) (*Server, error) {
	if open == nil {
		return nil, fmt.Errorf("session opener is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "standup",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:    mcpServer,
		open:   open,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerJournalTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
