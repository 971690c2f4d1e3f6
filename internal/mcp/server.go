// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP server construction and stdio transport.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/xeipuuv/gojsonschema"

	"github.com/rusq/rootdata-mcp/internal/research"
	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

const (
	serverName = "rootdata-mcp"
)

// Version is the server version reported to clients.
var Version = "1.0.0"

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default).
	TransportStdio Transport = "stdio"
	// TransportSSE uses the HTTP server-sent events transport.
	TransportSSE Transport = "sse"
	// TransportHTTP uses Streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// ParseTransport returns the transport with the given name.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(s); t {
	case TransportStdio, TransportSSE, TransportHTTP:
		return t, nil
	case "":
		return TransportStdio, nil
	default:
		return "", fmt.Errorf("unknown transport: %q", s)
	}
}

// tool is a registered tool with its compiled argument schema.
type tool struct {
	mcpsrv.ServerTool
	schema *gojsonschema.Schema
	// advanced marks the composite research tools.
	advanced bool
	// example is a sample invocation, shown in the catalog.
	example string
}

// Server wraps an MCP server and the API client.
type Server struct {
	mcp    *mcpsrv.MCPServer
	api    rootdata.Caller
	rs     *research.Researcher
	cfg    rootdata.Config
	logger *slog.Logger
	token  string

	tools  []tool
	byName map[string]int
}

type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithResearcher sets the researcher that runs composite queries.  By
// default, a researcher using the same API client is created.
func WithResearcher(rs *research.Researcher) Option {
	return func(s *Server) {
		if rs != nil {
			s.rs = rs
		}
	}
}

// WithAuthToken sets the token that HTTP clients must present.  Empty token
// disables authentication.
func WithAuthToken(token string) Option {
	return func(s *Server) {
		s.token = token
	}
}

// New creates a new MCP server backed by the given API client.  cfg
// provides the page size limits.  The server is populated with all tools
// and prompts, but does not start listening until one of the Serve* methods
// is called.
func New(api rootdata.Caller, cfg rootdata.Config, opts ...Option) (*Server, error) {
	s := &Server{
		api:    api,
		cfg:    cfg,
		logger: slog.Default(),
		byName: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rs == nil {
		s.rs = research.New(api, research.WithLogger(s.logger))
	}

	s.mcp = mcpsrv.NewMCPServer(
		serverName,
		Version,
		mcpsrv.WithInstructions(instructions),
		mcpsrv.WithToolCapabilities(false),
		mcpsrv.WithPromptCapabilities(false),
		mcpsrv.WithRecovery(),
	)

	for _, t := range slices.Concat(s.basicTools(), s.researchTools(), []tool{s.toolListAllTools()}) {
		if err := s.addTool(t); err != nil {
			return nil, err
		}
	}
	for _, p := range prompts() {
		s.mcp.AddPrompt(p.Prompt, p.Handler)
	}
	return s, nil
}

const instructions = `You are connected to the RootData MCP server.

RootData is a crypto intelligence database of projects, investors (VCs and
organisations) and people.

ALWAYS start by calling listAllTools to learn the available tools and the
recommended research strategies.

Basic tools are direct lookups against a single RootData endpoint and return
the upstream data unmodified.  Most of them take numeric ids, so search with
searchEntities first.  Advanced tools (analyzeComprehensive,
investigateEntity, trackTrends, compareEntities) combine several endpoints
and accept names.

All data is read-only.  Some endpoints require a Plus or Pro API plan.
`

// addTool compiles the argument schema of the tool, wraps the handler and
// registers it.
func (s *Server) addTool(t tool) error {
	schema, err := compileSchema(t.Tool)
	if err != nil {
		return fmt.Errorf("tool %s: %w", t.Tool.Name, err)
	}
	t.schema = schema
	t.Handler = s.instrument(t.Tool.Name, schema, t.Handler)
	s.byName[t.Tool.Name] = len(s.tools)
	s.tools = append(s.tools, t)
	s.mcp.AddTool(t.Tool, t.Handler)
	return nil
}

// Tools returns the definitions of all registered tools, in registration
// order.
func (s *Server) Tools() []mcplib.Tool {
	out := make([]mcplib.Tool, len(s.tools))
	for i, t := range s.tools {
		out[i] = t.Tool
	}
	return out
}

// ErrUnknownTool is returned by [Server.Call] if there is no such tool.
var ErrUnknownTool = errors.New("unknown tool")

// Call invokes the tool in-process, bypassing the transport.  Tool failures
// are reported in the result, the error is returned only if the tool does
// not exist.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (*mcplib.CallToolResult, error) {
	i, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	var req mcplib.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return s.tools[i].Handler(ctx, req)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.serveStdio(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, in, out); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return resultText(string(b)), nil
}

// resultRaw returns the upstream data as is.  Missing data is returned as
// JSON null.
func resultRaw(data json.RawMessage) *mcplib.CallToolResult {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return resultText(string(data))
}
