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

// Package list contains the CLI command that lists the available tools.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/fatih/color"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/bootstrap"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
	"github.com/rusq/rootdata-mcp/internal/mcp"
)

// CmdTools is the "rootdata-mcp tools" command.
var CmdTools = &base.Command{
	UsageLine: "rootdata-mcp tools [flags]",
	Short:     "list the available tools",
	Long: `
# Tools Command

Lists the tools that the MCP server provides, with their parameters, and
the recommended research strategies.  The output is the same catalog that
the listAllTools tool returns to the agent.  The API key is not required.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
	Run:        runTools,
}

var asJSON bool

func init() {
	CmdTools.Flag.BoolVar(&asJSON, "json", false, "print the catalog as JSON")
}

var stdout io.Writer = os.Stdout

func runTools(ctx context.Context, cmd *base.Command, args []string) error {
	srv, err := bootstrap.Offline()
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(srv.Catalog())
	}
	return printCatalog(stdout, srv)
}

var (
	heading  = color.New(color.Bold)
	toolName = color.New(color.FgCyan, color.Bold)
	param    = color.New(color.FgYellow)
	example  = color.New(color.Faint)
)

// printCatalog writes the human readable catalog in the registration order
// of the tools.
func printCatalog(w io.Writer, srv *mcp.Server) error {
	cat := srv.Catalog()
	var basic, advanced []string
	for _, t := range srv.Tools() {
		if _, ok := cat.ToolsInfo.BasicTools[t.Name]; ok {
			basic = append(basic, t.Name)
		} else if _, ok := cat.ToolsInfo.AdvancedTools[t.Name]; ok {
			advanced = append(advanced, t.Name)
		}
	}

	ew := &errWriter{w: w}
	printTools(ew, "Basic tools", basic, cat.ToolsInfo.BasicTools)
	printTools(ew, "Advanced tools", advanced, cat.ToolsInfo.AdvancedTools)

	heading.Fprintln(ew, "Research strategies")
	for _, name := range slices.Sorted(maps.Keys(cat.ToolsInfo.SearchStrategies)) {
		st := cat.ToolsInfo.SearchStrategies[name]
		fmt.Fprintf(ew, "  %s: %s\n", toolName.Sprint(name), st.Description)
		for _, step := range st.RecommendedFlow {
			fmt.Fprintf(ew, "    %s\n", step)
		}
	}
	fmt.Fprintf(ew, "\n%s\n", cat.Recommendation)
	return ew.err
}

func printTools(w io.Writer, title string, names []string, info map[string]mcp.ToolInfo) {
	heading.Fprintf(w, "%s (%d)\n", title, len(names))
	for _, name := range names {
		ti := info[name]
		fmt.Fprintf(w, "  %s  %s\n", toolName.Sprint(name), ti.Description)
		for _, p := range slices.Sorted(maps.Keys(ti.Parameters)) {
			fmt.Fprintf(w, "      %s  %s\n", param.Sprintf("%-20s", p), ti.Parameters[p])
		}
		if ti.Example != "" {
			fmt.Fprintf(w, "      %s\n", example.Sprint("e.g. "+ti.Example))
		}
	}
	fmt.Fprintln(w)
}

// An errWriter wraps a writer, recording whether a write error occurred.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	w.err = err
	return n, err
}
