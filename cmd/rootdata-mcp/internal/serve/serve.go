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

// Package serve contains the CLI command that starts the MCP server.
package serve

import (
	"cmp"
	"context"
	_ "embed"
	"fmt"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/bootstrap"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
	"github.com/rusq/rootdata-mcp/internal/mcp"
	"github.com/rusq/rootdata-mcp/internal/osext"
)

//go:embed assets/serve.md
var mdServe string

// CmdServe is the "rootdata-mcp serve" command.
var CmdServe = &base.Command{
	UsageLine:     "rootdata-mcp serve [flags]",
	Short:         "start the MCP server",
	Long:          mdServe,
	PrintFlags:    true,
	RequireAPIKey: true,
	Run:           runServe,
}

const (
	envTransport = "ROOTDATA_MCP_TRANSPORT"
	envListen    = "ROOTDATA_MCP_LISTEN"
	envAuthToken = "ROOTDATA_MCP_API_TOKEN"

	defListen = "127.0.0.1:8000"
)

var (
	transport  string
	listenAddr string
	authToken  string
)

func init() {
	CmdServe.Flag.StringVar(&transport, "transport", "", "MCP `transport`: \"stdio\", \"sse\" or \"http\" (default: stdio)")
	CmdServe.Flag.StringVar(&listenAddr, "listen", "", "`address` to listen on for the sse and http transports (default: "+defListen+")")
	CmdServe.Flag.StringVar(&authToken, "auth-token", "", "`token` that HTTP clients must send in the Authorization header\n(environment: "+envAuthToken+")")
}

// options holds the resolved serve options.
type options struct {
	transport mcp.Transport
	listen    string
	token     string
}

// resolve applies the environment to the flag values that were not set.
func resolve() (options, error) {
	t, err := mcp.ParseTransport(cmp.Or(transport, osenv.Value(envTransport, "")))
	if err != nil {
		return options{}, err
	}
	return options{
		transport: t,
		listen:    cmp.Or(listenAddr, osenv.Value(envListen, defListen)),
		token:     cmp.Or(authToken, osenv.Secret(envAuthToken, "")),
	}, nil
}

func runServe(ctx context.Context, cmd *base.Command, args []string) error {
	lg := cfg.Log

	opts, err := resolve()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	srv, err := bootstrap.Server(mcp.WithAuthToken(opts.token))
	if err != nil {
		return err
	}

	switch opts.transport {
	case mcp.TransportStdio:
		if osext.IsInteractive() {
			lg.WarnContext(ctx, "mcp: stdio transport is running in a terminal, it expects an MCP client on STDIN; press Ctrl+C to exit")
		}
		if opts.token != "" {
			lg.InfoContext(ctx, "mcp: the authentication token is not used with stdio transport")
		}
		err = srv.ServeStdio(ctx)
	case mcp.TransportSSE:
		err = srv.ServeSSE(ctx, opts.listen)
	case mcp.TransportHTTP:
		err = srv.ServeHTTP(ctx, opts.listen)
	}
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
