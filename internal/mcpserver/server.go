// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the portfolio's read-only operations as tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/davewd/folio/internal/portfolio"
	"github.com/davewd/folio/internal/querystate"
)

// Server wraps the MCP server with portfolio tools.
type Server struct {
	mcp *server.MCPServer
	svc *portfolio.Service
}

// New creates a new MCP server with all portfolio tools registered.
func New(svc *portfolio.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Folio",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("List portfolio projects with optional filtering and sorting. "+
			"Filters combine: search matches name/description, tags and status are OR-sets."),
		mcp.WithString("search", mcp.Description("Case-insensitive substring over name and description")),
		mcp.WithString("tags", mcp.Description("Comma-separated tag filters (a project matches with any one)")),
		mcp.WithString("status", mcp.Description("Comma-separated status filters")),
		mcp.WithString("sort_key", mcp.Description("Sort field: name, status, year_start, year_end")),
		mcp.WithString("sort_direction", mcp.Description("asc or desc")),
	), s.listProjects)

	s.mcp.AddTool(mcp.NewTool("get_thought",
		mcp.WithDescription("Resolve the active thought and section for a section id. "+
			"An empty or unknown id returns the first thought."),
		mcp.WithString("section", mcp.Description("Section id to resolve")),
	), s.getThought)

	s.mcp.AddTool(mcp.NewTool("list_timeline",
		mcp.WithDescription("List the career timeline events in order."),
	), s.listTimeline)

	s.mcp.AddTool(mcp.NewTool("list_reading",
		mcp.WithDescription("List the reading collections: books, links, media, podcasts."),
	), s.listReading)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// listProjects reuses the query-state parameter names so tool arguments and
// shared URLs stay interchangeable.
func (s *Server) listProjects(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values := url.Values{}
	if v := req.GetString("search", ""); v != "" {
		values.Set(querystate.ParamSearch, v)
	}
	for _, t := range splitList(req.GetString("tags", "")) {
		values.Add(querystate.ParamTags, t)
	}
	for _, st := range splitList(req.GetString("status", "")) {
		values.Add(querystate.ParamStatus, st)
	}
	if v := req.GetString("sort_key", ""); v != "" {
		values.Set(querystate.ParamSortKey, v)
	}
	if v := req.GetString("sort_direction", ""); v != "" {
		values.Set(querystate.ParamSortDir, v)
	}

	out, _ := json.MarshalIndent(s.svc.Projects(values), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *Server) getThought(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view := s.svc.Thoughts(req.GetString("section", ""))
	out, _ := json.MarshalIndent(view, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listTimeline(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Timeline(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listReading(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Reading(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
