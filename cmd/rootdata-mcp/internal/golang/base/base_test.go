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

package base

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Name(t *testing.T) {
	tests := []struct {
		usage    string
		wantLong string
		wantName string
	}{
		{"rootdata-mcp", "", ""},
		{"rootdata-mcp serve [flags]", "serve", "serve"},
		{"rootdata-mcp call <tool> [name=value ...]", "call <tool>", "call"},
		{"rootdata-mcp version", "version", "version"},
	}
	for _, tt := range tests {
		t.Run(tt.usage, func(t *testing.T) {
			c := &Command{UsageLine: tt.usage}
			assert.Equal(t, tt.wantLong, c.LongName())
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}

func TestCommand_Lookup(t *testing.T) {
	serve := &Command{UsageLine: "rootdata-mcp serve [flags]"}
	root := &Command{UsageLine: CmdName, Commands: []*Command{serve}}
	assert.Same(t, serve, root.Lookup("serve"))
	assert.Nil(t, root.Lookup("dance"))
	assert.False(t, root.Runnable())
}

func TestCommand_usage(t *testing.T) {
	var buf bytes.Buffer
	(&Command{UsageLine: "rootdata-mcp tools"}).usage(&buf)
	assert.Equal(t, "usage: rootdata-mcp tools\nRun 'rootdata-mcp help tools' for details.\n", buf.String())
}

func TestSetExitStatus(t *testing.T) {
	t.Cleanup(func() { exitStatus = SNoError })
	SetExitStatus(SConfigError)
	SetExitStatus(SGenericError)
	assert.Equal(t, SConfigError, ExitStatus(), "lower status must not override")
	SetExitStatus(SToolError)
	assert.Equal(t, SToolError, ExitStatus())
	assert.Equal(t, "ToolError", ExitStatus().String())
	assert.Equal(t, "StatusCode(42)", StatusCode(42).String())
}
