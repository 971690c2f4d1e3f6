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

package help

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
)

func setCommands(t *testing.T, cmds ...*base.Command) {
	t.Helper()
	saved := base.RootdataMCP.Commands
	base.RootdataMCP.Commands = cmds
	t.Cleanup(func() { base.RootdataMCP.Commands = saved })
}

func noop(context.Context, *base.Command, []string) error { return nil }

func TestHelp(t *testing.T) {
	cmdServe := &base.Command{
		UsageLine:  "rootdata-mcp serve [flags]",
		Short:      "start the MCP server",
		Long:       "Serve starts the server.",
		FlagMask:   cfg.OmitAll,
		PrintFlags: true,
		Run:        noop,
	}
	cmdServe.Flag.String("transport", "stdio", "MCP `transport`")
	cmdVersion := &base.Command{
		UsageLine: "rootdata-mcp version",
		Short:     "print version",
		Long:      "Version prints the version.",
		Run:       noop,
	}
	setCommands(t, cmdServe, cmdVersion)

	t.Run("usage", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Help(&buf, nil))
		out := buf.String()
		assert.Contains(t, out, "rootdata-mcp <command> [arguments]")
		assert.Contains(t, out, "serve       Start the MCP server")
		assert.Contains(t, out, "version     Print version")
	})
	t.Run("command", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Help(&buf, []string{"serve"}))
		out := buf.String()
		assert.Contains(t, out, "usage: rootdata-mcp serve [flags]")
		assert.Contains(t, out, "Serve starts the server.")
		assert.Contains(t, out, "-transport")
		assert.Contains(t, out, "-log-json")
	})
	t.Run("unknown topic", func(t *testing.T) {
		var buf bytes.Buffer
		err := Help(&buf, []string{"fly"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown help topic")
		assert.Empty(t, buf.String())
	})
}
