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

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
)

func Test_loadSecrets(t *testing.T) {
	dir := t.TempDir()
	secret := filepath.Join(dir, "secrets.txt")
	require.NoError(t, os.WriteFile(secret, []byte("ROOTDATA_TEST_SECRET=xyz\n"), 0o600))
	t.Setenv("ROOTDATA_TEST_SECRET", "")
	os.Unsetenv("ROOTDATA_TEST_SECRET")

	loadSecrets([]string{filepath.Join(dir, ".env"), secret})
	assert.Equal(t, "xyz", os.Getenv("ROOTDATA_TEST_SECRET"))
}

func TestCommands(t *testing.T) {
	for _, name := range []string{"serve", "call", "tools", "version"} {
		cmd := base.RootdataMCP.Lookup(name)
		if assert.NotNil(t, cmd, name) {
			assert.True(t, cmd.Runnable(), name)
			assert.NotEmpty(t, cmd.Short, name)
		}
	}
}

func Test_printVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printVersion(&buf))
	assert.Equal(t, "rootdata-mcp dev (commit: unknown) built on: unknown, protocol server version: 1.0.0\n", buf.String())
}

func Test_ifTrue(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ifTrue(true, slog.LevelDebug, slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, ifTrue(false, slog.LevelDebug, slog.LevelInfo))
}
