// Package server exposes the automation engine as MCP tools so agents can
// drive the desktop over stdio or HTTP.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Wirasm/axcli/internal/automation"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around the automation engine. Engine calls are
// serialized: the core is fully synchronous and concurrent clicks against a
// live desktop would interleave physical input.
type Server struct {
	engine   *automation.Engine
	engineMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// New creates an MCP server with all axcli tools registered.
func New() (*Server, error) {
	engine, err := automation.New()
	if err != nil {
		return nil, err
	}

	s := &Server{engine: engine}
	s.mcp = mcpserver.NewMCPServer("axcli", "1.0.0")
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List open windows with app name, title, PID, bounds, and minimized state"),
			mcp.WithString("app", mcp.Description("Filter by application name")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
			mcp.WithBoolean("frontmost", mcp.Description("Return only the frontmost application")),
		),
		s.handleWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("elements",
			mcp.WithDescription("List every UI element of a window's accessibility tree with role, title, value, description, bounds, and enabled state"),
			mcp.WithString("app", mcp.Description("Target the first window of this application")),
			mcp.WithString("window", mcp.Description("Target the window whose title contains this text")),
		),
		s.handleElements,
	)

	s.mcp.AddTool(
		mcp.NewTool("find",
			mcp.WithDescription("Find a UI element by text (case-insensitive substring on title/value/description). Ambiguous matches return the first element plus the total count."),
			mcp.WithString("app", mcp.Description("Target the first window of this application")),
			mcp.WithString("window", mcp.Description("Target the window whose title contains this text")),
			mcp.WithString("text", mcp.Description("Text to search for"), mcp.Required()),
		),
		s.handleFind,
	)

	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click inside a window, at window-relative coordinates or on the single element matching a text query. Text clicks fail when zero or multiple elements match."),
			mcp.WithString("app", mcp.Description("Target the first window of this application")),
			mcp.WithString("window", mcp.Description("Target the window whose title contains this text")),
			mcp.WithString("text", mcp.Description("Click the single element matching this text")),
			mcp.WithNumber("x", mcp.Description("Window-relative X coordinate")),
			mcp.WithNumber("y", mcp.Description("Window-relative Y coordinate")),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
			mcp.WithNumber("count", mcp.Description("Click count 1-3; overrides double")),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Bring a window to the foreground"),
			mcp.WithString("app", mcp.Description("Target the first window of this application")),
			mcp.WithString("window", mcp.Description("Target the window whose title contains this text")),
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Capture the targeted window (or the full screen) and return it as an image"),
			mcp.WithString("app", mcp.Description("Capture the first window of this application")),
			mcp.WithString("window", mcp.Description("Capture the window whose title contains this text")),
		),
		s.handleScreenshot,
	)
}
