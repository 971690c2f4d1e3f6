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

// This package is based on the Golang source code with some modifications.
//
// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help implements "rootdata-mcp help" command.
package help

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/cfg"
	"github.com/rusq/rootdata-mcp/cmd/rootdata-mcp/internal/golang/base"
)

func PrintUsage(w io.Writer, cmd *base.Command) {
	bw := bufio.NewWriter(w)
	if err := tmpl(bw, usageTemplate, cmd); err != nil {
		panic(err)
	}
	bw.Flush()
}

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, text string, data any) error {
	t := template.New("top")
	t.Funcs(template.FuncMap{"trim": strings.TrimSpace, "capitalize": capitalize})
	template.Must(t.Parse(text))
	ew := &errWriter{w: w}
	err := t.Execute(ew, data)
	if ew.err != nil {
		return fmt.Errorf("writing output: %w", ew.err)
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + s[n:]
}

// An errWriter wraps a writer, recording whether a write error occurred.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Help implements the 'help' command.  It writes the help for the topic
// identified by args to w.
func Help(w io.Writer, args []string) error {
	cmd := base.RootdataMCP
Args:
	for i, arg := range args {
		if sub := cmd.Lookup(arg); sub != nil {
			cmd = sub
			continue Args
		}

		// helpSuccess is the help command using as many args as possible that would succeed.
		helpSuccess := base.CmdName + " help"
		if i > 0 {
			helpSuccess += " " + strings.Join(args[:i], " ")
		}
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("%s help %s: unknown help topic. Run '%s'", base.CmdName, strings.Join(args, " "), helpSuccess)
	}

	if len(cmd.Commands) > 0 {
		PrintUsage(w, cmd)
		return nil
	}
	if err := tmpl(w, helpTemplate, cmd); err != nil {
		return err
	}
	if cmd.PrintFlags {
		fmt.Fprintln(w, "\nFlags:")
		if !cmd.CustomFlags {
			cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		}
		cmd.Flag.SetOutput(w)
		cmd.Flag.PrintDefaults()
	}
	// not exit 2: succeeded at 'rootdata-mcp help cmd'.
	return nil
}
