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
	"github.com/rusq/osenv/v2"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// BuildConfig returns the API configuration.  The sources are applied in
// order: defaults, configuration file, environment, command line flags.
// The result is validated.
func BuildConfig() (rootdata.Config, error) {
	c := rootdata.DefConfig
	if ConfigFile != "" {
		var err error
		if c, err = rootdata.LoadConfig(ConfigFile, c); err != nil {
			return c, err
		}
	}
	c.DefaultPageSize = osenv.Value(EnvDefaultPageSize, c.DefaultPageSize)
	c.MaxPageSize = osenv.Value(EnvMaxPageSize, c.MaxPageSize)

	// flag values default to the environment
	c.APIKey = APIKey
	if BaseURL != "" {
		c.BaseURL = BaseURL
	}
	if Language != "" {
		c.Language = Language
	}
	return c, c.Validate()
}
