// Package mcpserver exposes the inventory tools over the Model Context
// Protocol on stdio, so MCP clients can drive the same operations the
// agent loop uses.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/kiosk404/stockmind/internal/agent"
	"github.com/kiosk404/stockmind/internal/pkg/json"
)

const (
	serverName    = "stockmind"
	serverVersion = "1.0.0"
)

// Server bridges the tool registry to MCP clients. Every registry tool
// is published, with its eino ToolInfo carried over as the MCP tool
// declaration.
type Server struct {
	mcp      *server.MCPServer
	registry *agent.Registry
	tools    []mcp.Tool
	log      *logrus.Logger
}

func New(registry *agent.Registry, log *logrus.Logger) (*Server, error) {
	s := &Server{
		mcp: server.NewMCPServer(serverName, serverVersion,
			server.WithToolCapabilities(false),
		),
		registry: registry,
		log:      log,
	}

	for _, info := range registry.Infos() {
		t, err := bridgeTool(info)
		if err != nil {
			return nil, fmt.Errorf("bridge tool %q: %w", info.Name, err)
		}

		s.tools = append(s.tools, t)
		s.mcp.AddTool(t, s.dispatch(info.Name))
	}

	return s, nil
}

// bridgeTool converts an eino ToolInfo into an MCP tool declaration,
// rendering the parameter schema as raw JSON schema.
func bridgeTool(info *schema.ToolInfo) (mcp.Tool, error) {
	raw := json.RawMessage(`{"type":"object"}`)
	if info.ParamsOneOf != nil {
		params, err := info.ParamsOneOf.ToJSONSchema()
		if err != nil {
			return mcp.Tool{}, err
		}

		data, err := json.Marshal(params)
		if err != nil {
			return mcp.Tool{}, err
		}
		raw = json.RawMessage(data)
	}

	return mcp.NewToolWithRawSchema(info.Name, info.Desc, raw), nil
}

// Tools returns the published tool declarations in registry order.
func (s *Server) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(s.tools))
	copy(out, s.tools)

	return out
}

// dispatch forwards an MCP tool call to the registry tool of the same
// name, passing the arguments through as JSON.
func (s *Server) dispatch(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		t, ok := s.registry.Lookup(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("tool %q is not registered", name)), nil
		}

		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode arguments: %v", err)), nil
		}

		s.log.WithFields(logrus.Fields{
			"tool": name,
			"args": string(args),
		}).Info("mcp tool call")

		output, err := t.InvokableRun(ctx, string(args))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(output), nil
	}
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.WithField("tools", s.registry.Names()).Info("serving MCP on stdio")

	return server.ServeStdio(s.mcp)
}
