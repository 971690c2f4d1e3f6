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

// Package bootstrap creates the MCP server from the command line
// configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
	"github.com/rusq/rootdata-mcp/internal/mcp"
	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// Server builds and validates the API configuration, and returns the MCP
// server that calls the RootData API.  It sets the exit status on error.
func Server(opts ...mcp.Option) (*mcp.Server, error) {
	conf, err := cfg.BuildConfig()
	if err != nil {
		base.SetExitStatus(base.SConfigError)
		return nil, err
	}
	cl, err := rootdata.New(conf, rootdata.WithLogger(cfg.Log))
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return nil, fmt.Errorf("rootdata client: %w", err)
	}
	return newServer(cl, conf, opts...)
}

// ErrOffline is returned by the tools of the offline server.
var ErrOffline = errors.New("not connected to the RootData API")

type offline struct{}

func (offline) Call(context.Context, rootdata.Endpoint, any) (*rootdata.Envelope, error) {
	return nil, ErrOffline
}

// Offline returns the MCP server that is not connected to the API.  It can
// be used to inspect the tool definitions, tools that call the API fail
// with [ErrOffline].
func Offline() (*mcp.Server, error) {
	return newServer(offline{}, rootdata.DefConfig)
}

func newServer(api rootdata.Caller, conf rootdata.Config, opts ...mcp.Option) (*mcp.Server, error) {
	srv, err := mcp.New(api, conf, append([]mcp.Option{mcp.WithLogger(cfg.Log)}, opts...)...)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return nil, fmt.Errorf("mcp server: %w", err)
	}
	return srv, nil
}
