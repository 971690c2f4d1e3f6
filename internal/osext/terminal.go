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

// Package osext provides some helpful os functions.
package osext

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive returns true if the program is running in the interactive
// terminal.
func IsInteractive() bool {
	return IsTerminal(os.Stdout) && IsTerminal(os.Stdin) && os.Getenv("TERM") != "dumb"
}

// IsTerminal returns true if f is a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
