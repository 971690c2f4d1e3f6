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

// In this file: tool call instrumentation.

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/xeipuuv/gojsonschema"
)

const (
	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomeInvalid = "invalid"
)

var toolCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rootdata_mcp_tool_calls_total",
		Help: "Total number of MCP tool calls by tool and outcome",
	},
	[]string{"tool", "outcome"},
)

// instrument wraps the tool handler: it validates the arguments, assigns a
// call id, logs the call and counts it.
func (s *Server) instrument(name string, schema *gojsonschema.Schema, h mcpsrv.ToolHandlerFunc) mcpsrv.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		lg := s.logger.With("tool", name, "call_id", uuid.NewString())
		start := time.Now()
		lg.InfoContext(ctx, "mcp: tool call", "args", req.GetArguments())

		if err := validateArgs(schema, req.GetArguments()); err != nil {
			lg.WarnContext(ctx, "mcp: tool call rejected", "error", err)
			toolCalls.WithLabelValues(name, outcomeInvalid).Inc()
			return resultErr(err), nil
		}

		res, err := h(ctx, req)
		outcome := outcomeOK
		if err != nil || res == nil || res.IsError {
			outcome = outcomeError
		}
		toolCalls.WithLabelValues(name, outcome).Inc()
		if err != nil {
			lg.ErrorContext(ctx, "mcp: tool call failed", "error", err, "duration", time.Since(start))
			return res, err
		}
		lg.InfoContext(ctx, "mcp: tool call finished", "outcome", outcome, "size", humanize.Bytes(uint64(resultSize(res))), "duration", time.Since(start))
		return res, nil
	}
}

// resultSize returns the total length of the text content of the result.
func resultSize(res *mcplib.CallToolResult) int {
	if res == nil {
		return 0
	}
	n := 0
	for _, c := range res.Content {
		if tc, ok := c.(mcplib.TextContent); ok {
			n += len(tc.Text)
		}
	}
	return n
}
