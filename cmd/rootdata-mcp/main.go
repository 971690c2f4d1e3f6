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

// Command rootdata-mcp is the Model Context Protocol server for the RootData
// crypto intelligence API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/call"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/help"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/list"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/serve"
)

// secrets are the files that may hold ROOTDATA_API_KEY and other settings.
// ".env.txt" is what Notepad produces when asked to save ".env".
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	base.RootdataMCP.Commands = []*base.Command{
		serve.CmdServe,
		call.CmdCall,
		list.CmdTools,
		CmdVersion,
	}
	base.Usage = mainUsage
}

func main() {
	loadSecrets(secrets)

	flag.Usage = base.Usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		base.Usage()
	}

	if args[0] == "help" {
		if err := help.Help(os.Stdout, args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		base.Exit()
	}

	cmd := base.RootdataMCP.Lookup(args[0])
	if cmd == nil || !cmd.Runnable() {
		fmt.Fprintf(os.Stderr, "%s %s: unknown command\nRun '%s help' for usage.\n", base.CmdName, args[0], base.CmdName)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}

	if err := invoke(cmd, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			base.SetExitStatus(base.SHelpRequested)
		} else {
			slog.Error("command failed", "command", cmd.Name(), "error", err, "status", base.ExitStatus())
		}
	}
	base.Exit()
}

// invoke parses the command flags, initialises logging and tracing, and
// runs the command.
func invoke(cmd *base.Command, args []string) error {
	cmd.Flag.Usage = func() { cmd.Usage() }
	if !cmd.CustomFlags {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		if err := cmd.Flag.Parse(args); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return err
		}
		args = cmd.Flag.Args()
	}

	lg, err := initLog(cfg.LogFile, cfg.JSONHandler, cfg.Verbose)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	cfg.Log = lg

	stop := initTrace(cfg.TraceFile)
	base.AtExit(stop)

	if cmd.RequireAPIKey && cfg.APIKey == "" {
		base.SetExitStatus(base.SConfigError)
		return fmt.Errorf("RootData API key is not set, use -api-key flag or %s environment variable", cfg.EnvAPIKey)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx, task := trace.NewTask(ctx, "command")
	defer task.End()
	trace.Log(ctx, "command", cmd.Name())

	lg.DebugContext(ctx, "running command", "command", cmd.Name(), "args", args)
	if err := cmd.Run(ctx, cmd, args); err != nil {
		if base.ExitStatus() == base.SNoError {
			base.SetExitStatus(base.SApplicationError)
		}
		return err
	}
	return nil
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func mainUsage() {
	help.PrintUsage(os.Stderr, base.RootdataMCP)
	base.SetExitStatus(base.SInvalidParameters)
	base.Exit()
}
