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

// Package base defines shared basic pieces of the rootdata-mcp command.
//
// The command subsystem is based on golang's `go` command implementation, which
// is BSD-licensed:
//
//	Copyright 2017 The Go Authors. All rights reserved.
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
package base

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
)

const CmdName = "rootdata-mcp"

// A Command is an implementation of a rootdata-mcp command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	UsageLine string

	// Short is the short description shown in the 'rootdata-mcp help' output.
	Short string

	// Long is the long message shown in the 'rootdata-mcp help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask is the mask of the global flags that the command does not
	// need.
	FlagMask cfg.FlagMask

	// CustomFlags indicates that the command will do its own
	// flag parsing.
	CustomFlags bool

	// PrintFlags indicates that generic help handler should print the
	// flags in the flagset.  Set it to false, if a Long lists all the flags.
	PrintFlags bool

	// RequireAPIKey indicates that the command calls the RootData API, and
	// the configuration must be valid before it runs.
	RequireAPIKey bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'rootdata-mcp help'.
	Commands []*Command
}

var RootdataMCP = &Command{
	UsageLine: CmdName,
	Long:      `rootdata-mcp is a Model Context Protocol server for the RootData crypto intelligence API.`,
	// Commands initialised in main.
}

var exitStatus StatusCode = SNoError
var exitMu sync.Mutex

// SetExitStatus sets the exit status, if it is higher than the current one.
func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

// ExitStatus returns the current exit status.
func ExitStatus() StatusCode {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

var atExitFuncs []func()

func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(int(ExitStatus()))
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// LongName returns the command's long name: all the words in the usage line
// between "rootdata-mcp" and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == CmdName {
		return ""
	}
	return strings.TrimPrefix(name, CmdName+" ")
}

// Name returns the command's short name: the last word in the usage line
// before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.Index(name, " <"); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Usage is the usage-reporting function, filled in by package main
// but here for reference by other packages.
var Usage func()

func (c *Command) Usage() {
	c.usage(os.Stderr)
	SetExitStatus(SInvalidParameters)
	Exit()
}

func (c *Command) usage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(w, "Run '%s help %s' for details.\n", CmdName, c.LongName())
}

// Lookup returns the subcommand with the given name, or nil.
func (c *Command) Lookup(name string) *Command {
	for _, sub := range c.Commands {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}
