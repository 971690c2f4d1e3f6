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

// Package mcp implements a Model Context Protocol (MCP) server for the
// RootData crypto intelligence API.  Every API endpoint is exposed as a
// pass-through tool, and the composite research queries are exposed as
// advanced tools that combine several endpoints.
//
// The server is read-only: no tool modifies any upstream state.
//
// Transport: the server supports three transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration.
//   - sse    – HTTP server-sent events transport, with the event stream on
//     /sse and client messages on /message.
//   - http   – Streamable HTTP transport on /mcp; suitable for remote agents
//     or when multiple concurrent clients are needed.
//
// The HTTP based transports also serve /healthcheck and Prometheus metrics
// on /metrics.
package mcp
