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

package cfg

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// reset restores the package globals after the test.
func reset(t *testing.T) {
	t.Helper()
	saved := [...]string{TraceFile, LogFile, ConfigFile, APIKey, BaseURL, Language}
	verbose, jsonHandler := Verbose, JSONHandler
	t.Cleanup(func() {
		TraceFile, LogFile, ConfigFile, APIKey, BaseURL, Language = saved[0], saved[1], saved[2], saved[3], saved[4], saved[5]
		Verbose, JSONHandler = verbose, jsonHandler
	})
}

func TestSetBaseFlags(t *testing.T) {
	t.Run("all flags are set", func(t *testing.T) {
		reset(t)
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, DefaultFlags)

		err := fs.Parse([]string{
			"-trace", "trace.out",
			"-log", "log.txt",
			"-log-json",
			"-v",
			"-config", "rootdata.toml",
			"-api-key", "key",
			"-base-url", "http://localhost:8080/open",
			"-language", "cn",
		})
		require.NoError(t, err)

		assert.Equal(t, "trace.out", TraceFile)
		assert.Equal(t, "log.txt", LogFile)
		assert.True(t, JSONHandler)
		assert.True(t, Verbose)
		assert.Equal(t, "rootdata.toml", ConfigFile)
		assert.Equal(t, "key", APIKey)
		assert.Equal(t, "http://localhost:8080/open", BaseURL)
		assert.Equal(t, "cn", Language)
	})
	t.Run("omitted flags are not defined", func(t *testing.T) {
		reset(t)
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, OmitAll)

		assert.NotNil(t, fs.Lookup("v"))
		assert.Nil(t, fs.Lookup("api-key"))
		assert.Nil(t, fs.Lookup("config"))
	})
	t.Run("api key from the environment", func(t *testing.T) {
		reset(t)
		t.Setenv(EnvAPIKey, "from-env")
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		SetBaseFlags(fs, DefaultFlags)
		require.NoError(t, fs.Parse(nil))

		assert.Equal(t, "from-env", APIKey)
		_, present := os.LookupEnv(EnvAPIKey)
		assert.False(t, present, "the secret must be removed from the environment")
	})
}

func TestBuildConfig(t *testing.T) {
	t.Run("defaults with the key", func(t *testing.T) {
		reset(t)
		ConfigFile, APIKey, BaseURL, Language = "", "key", "", ""

		got, err := BuildConfig()
		require.NoError(t, err)
		want := rootdata.DefConfig
		want.APIKey = "key"
		assert.Equal(t, want, got)
	})
	t.Run("missing key", func(t *testing.T) {
		reset(t)
		ConfigFile, APIKey, BaseURL, Language = "", "", "", ""

		_, err := BuildConfig()
		assert.ErrorIs(t, err, rootdata.ErrConfig)
	})
	t.Run("precedence", func(t *testing.T) {
		reset(t)
		dir := t.TempDir()
		filename := filepath.Join(dir, "rootdata.toml")
		require.NoError(t, os.WriteFile(filename, []byte(
			"base_url = \"http://file.example/open\"\nlanguage = \"cn\"\ndefault_page_size = 20\nmax_page_size = 50\ntimeout = \"30s\"\n",
		), 0o644))
		t.Setenv(EnvMaxPageSize, "60")
		ConfigFile, APIKey, BaseURL, Language = filename, "key", "http://flag.example/open", ""

		got, err := BuildConfig()
		require.NoError(t, err)
		assert.Equal(t, "http://flag.example/open", got.BaseURL)
		assert.Equal(t, "cn", got.Language)
		assert.Equal(t, 20, got.DefaultPageSize)
		assert.Equal(t, 60, got.MaxPageSize)
		assert.Equal(t, "30s", got.Timeout.String())
	})
	t.Run("missing file", func(t *testing.T) {
		reset(t)
		ConfigFile, APIKey = filepath.Join(t.TempDir(), "nope.toml"), "key"

		_, err := BuildConfig()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("invalid values", func(t *testing.T) {
		reset(t)
		ConfigFile, APIKey, BaseURL, Language = "", "key", "", "de"

		_, err := BuildConfig()
		require.ErrorIs(t, err, rootdata.ErrConfig)
		assert.Contains(t, err.Error(), "Language")
	})
}
