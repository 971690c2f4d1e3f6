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

// In this file: tool argument accessors.

import (
	"math"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	v, ok := req.GetArguments()[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// int64Arg extracts a named integer argument.  The MCP protocol serialises
// numbers as float64, so we convert accordingly.  Fractional and out of
// range values are rejected.
func int64Arg(req mcplib.CallToolRequest, name string) (int64, bool) {
	v, ok := req.GetArguments()[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// intArg extracts a named int argument, returning defaultVal if it is absent.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	if n, ok := int64Arg(req, name); ok {
		return int(n)
	}
	return defaultVal
}

// boolArg extracts a named bool argument from a tool call request.
func boolArg(req mcplib.CallToolRequest, name string, defaultVal bool) bool {
	if b := optBool(req, name); b != nil {
		return *b
	}
	return defaultVal
}

// optBool returns the named bool argument, or nil if it is absent.
func optBool(req mcplib.CallToolRequest, name string) *bool {
	b, ok := req.GetArguments()[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

// optInt64 returns the named integer argument, or nil if it is absent.
func optInt64(req mcplib.CallToolRequest, name string) *int64 {
	n, ok := int64Arg(req, name)
	if !ok {
		return nil
	}
	return &n
}

// optString returns the named string argument, or nil if it is absent.
func optString(req mcplib.CallToolRequest, name string) *string {
	s, ok := stringArg(req, name)
	if !ok {
		return nil
	}
	return &s
}

// stringsArg extracts a named array of strings.  Non-string elements are
// skipped.
func stringsArg(req mcplib.CallToolRequest, name string) []string {
	var out []string
	switch v := req.GetArguments()[name].(type) {
	case []any:
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, v...)
	}
	return out
}

// pageSize returns the page_size argument, defaulting to def and capped at
// limit.
func pageSize(req mcplib.CallToolRequest, def, limit int) int {
	return min(intArg(req, "page_size", def), limit)
}
