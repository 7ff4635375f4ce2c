package server

import (
	"context"
	"encoding/base64"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/Wirasm/axcli/internal/model"
	"github.com/Wirasm/axcli/internal/platform"
)

// stringParam reads a string argument with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// intParam reads a numeric argument with a default. JSON numbers arrive as
// float64.
func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return def
}

// boolParam reads a bool argument with a default.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func targetParam(params map[string]interface{}) platform.Target {
	return platform.Target{
		App:   stringParam(params, "app", ""),
		Title: stringParam(params, "window", ""),
	}
}

// yamlResult serializes v to a YAML text tool result.
func yamlResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

func (s *Server) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	if boolParam(params, "frontmost", false) {
		name, pid, err := s.engine.Frontmost()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return yamlResult(map[string]interface{}{"app": name, "pid": pid}), nil
	}

	windows, err := s.engine.Windows(platform.ListOptions{
		App: stringParam(params, "app", ""),
		PID: intParam(params, "pid", 0),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(windows), nil
}

func (s *Server) handleElements(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	listing, err := s.engine.Elements(targetParam(params))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(listing), nil
}

func (s *Server) handleFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	result, err := s.engine.Find(targetParam(params), text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(result), nil
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")

	button, err := platform.ParseMouseButton(stringParam(params, "button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	count := 1
	if boolParam(params, "double", false) {
		count = 2
	}
	if c := intParam(params, "count", 0); c != 0 {
		if c < 1 || c > 3 {
			return mcp.NewToolResultError("click count must be 1-3"), nil
		}
		count = c
	}

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	target := targetParam(params)
	if text != "" {
		result, err := s.engine.ClickByText(target, text, button, count)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return yamlResult(result), nil
	}

	if _, ok := params["x"]; !ok {
		return mcp.NewToolResultError("specify text or both x and y"), nil
	}
	if _, ok := params["y"]; !ok {
		return mcp.NewToolResultError("specify text or both x and y"), nil
	}
	result, err := s.engine.ClickAt(target, model.Point{
		X: intParam(params, "x", 0),
		Y: intParam(params, "y", 0),
	}, button, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(result), nil
}

func (s *Server) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	w, err := s.engine.Focus(targetParam(params))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(w), nil
}

func (s *Server) handleScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	data, _, err := s.engine.Screenshot(targetParam(params), platform.ScreenshotOptions{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: "image/png",
			},
		},
	}, nil
}
