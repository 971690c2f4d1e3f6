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

// Package cfg holds the global command line configuration of rootdata-mcp.
package cfg

import (
	"flag"
	"log/slog"

	"github.com/rusq/osenv/v2"
)

var (
	TraceFile   string
	LogFile     string
	JSONHandler bool
	Verbose     bool

	ConfigFile string
	APIKey     string
	BaseURL    string
	Language   string

	Log = slog.Default()
)

// Environment variables.
const (
	EnvAPIKey          = "ROOTDATA_API_KEY"
	EnvBaseURL         = "ROOTDATA_BASE_URL"
	EnvLanguage        = "ROOTDATA_LANGUAGE"
	EnvDefaultPageSize = "ROOTDATA_DEFAULT_PAGE_SIZE"
	EnvMaxPageSize     = "ROOTDATA_MAX_PAGE_SIZE"
	EnvConfigFile      = "ROOTDATA_CONFIG"
)

type FlagMask int

const (
	DefaultFlags  FlagMask = 0
	OmitAPIFlags  FlagMask = 1 << iota
	OmitConfigFlag

	OmitAll = OmitAPIFlags | OmitConfigFlag
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `filename`")
	fs.StringVar(&LogFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "config", osenv.Value(EnvConfigFile, ""), "TOML configuration `file` with the API settings")
	}
	if mask&OmitAPIFlags == 0 {
		fs.StringVar(&APIKey, "api-key", osenv.Secret(EnvAPIKey, ""), "RootData API `key` (environment: "+EnvAPIKey+")")
		fs.StringVar(&BaseURL, "base-url", osenv.Value(EnvBaseURL, ""), "RootData API base `URL`")
		fs.StringVar(&Language, "language", osenv.Value(EnvLanguage, ""), "response `language`: en or cn")
	}
}

// SetDebugLevel sets the default logging level to debug.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
