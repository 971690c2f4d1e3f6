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

// Package call contains the CLI command that invokes a single tool.
package call

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/bootstrap"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
	"github.com/rusq/rootdata-mcp/internal/mcp"
)

// CmdCall is the "rootdata-mcp call" command.
var CmdCall = &base.Command{
	UsageLine: "rootdata-mcp call [flags] <tool> [name=value ...]",
	Short:     "call a tool and print the result",
	Long: `
# Call Command

Calls the tool in-process, without starting the MCP server, and prints the
result to STDOUT.  Arguments are given as name=value pairs.  Values are
parsed as JSON, and the ones that are not valid JSON are passed as strings.
To pass a number as a string, quote it: project_id='"12"'.

Examples:

	rootdata-mcp call searchEntities query=Ethereum
	rootdata-mcp call getProject project_id=12 include_team=true
	rootdata-mcp call compareEntities entities='["Ethereum","Solana"]'

If the tool fails, the error is printed to STDERR and the exit status is
non-zero.
`,
	PrintFlags:    true,
	RequireAPIKey: true,
	Run:           runCall,
}

var raw bool

func init() {
	CmdCall.Flag.BoolVar(&raw, "raw", false, "print the result as returned by the tool, without indentation")
}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	newServer = func() (*mcp.Server, error) { return bootstrap.Server() }
)

var errNoTool = errors.New("tool name is required")

func runCall(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errNoTool
	}
	name := args[0]
	params, err := parseArgs(args[1:])
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	srv, err := newServer()
	if err != nil {
		return err
	}
	res, err := srv.Call(ctx, name, params)
	if err != nil {
		if errors.Is(err, mcp.ErrUnknownTool) {
			base.SetExitStatus(base.SInvalidParameters)
		}
		return err
	}
	text := resultText(res)
	if res.IsError {
		base.SetExitStatus(base.SToolError)
		color.New(color.FgRed).Fprintln(stderr, text)
		return nil
	}
	return printResult(stdout, text, !raw)
}

// parseArgs parses name=value pairs into the tool arguments.
func parseArgs(args []string) (map[string]any, error) {
	params := make(map[string]any, len(args))
	for _, arg := range args {
		name, val, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q, expected name=value", arg)
		}
		var v any
		if err := json.Unmarshal([]byte(val), &v); err != nil {
			v = val
		}
		params[name] = v
	}
	return params, nil
}

// resultText returns the concatenated text content of the result.
func resultText(res *mcplib.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		if tc, ok := c.(mcplib.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// printResult writes the text to w, indenting it if it is JSON and indent
// is true.
func printResult(w io.Writer, text string, indent bool) error {
	if indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(text), "", "  "); err == nil {
			text = buf.String()
		}
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
