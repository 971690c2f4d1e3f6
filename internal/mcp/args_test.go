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

package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		argName string
		wantVal string
		wantOK  bool
	}{
		{"present string", map[string]any{"key": "value"}, "key", "value", true},
		{"missing key", map[string]any{}, "key", "", false},
		{"wrong type", map[string]any{"key": 42}, "key", "", false},
		{"nil args", nil, "key", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stringArg(toolReq(tt.args), tt.argName)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		defaultVal int
		want       int
	}{
		{"float64 from JSON", map[string]any{"n": float64(42)}, 0, 42},
		{"native int", map[string]any{"n": 7}, 0, 7},
		{"missing uses default", map[string]any{}, 10, 10},
		{"wrong type uses default", map[string]any{"n": "x"}, 5, 5},
		{"nil args", nil, 3, 3},
		{"fractional uses default", map[string]any{"n": 12.9}, 1, 1},
		{"integral float", map[string]any{"n": float64(12)}, 1, 12},
		{"out of range uses default", map[string]any{"n": 1e19}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intArg(toolReq(tt.args), "n", tt.defaultVal))
		})
	}
}

func TestBoolArg(t *testing.T) {
	assert.True(t, boolArg(toolReq(map[string]any{"b": true}), "b", false))
	assert.False(t, boolArg(toolReq(map[string]any{"b": false}), "b", true))
	assert.True(t, boolArg(toolReq(nil), "b", true))
	assert.False(t, boolArg(toolReq(map[string]any{"b": "yes"}), "b", false))
}

func TestOptionalArgs(t *testing.T) {
	req := toolReq(map[string]any{"b": false, "n": float64(1640995200), "s": "2024-01"})

	if b := optBool(req, "b"); assert.NotNil(t, b) {
		assert.False(t, *b)
	}
	assert.Nil(t, optBool(req, "missing"))

	if n := optInt64(req, "n"); assert.NotNil(t, n) {
		assert.Equal(t, int64(1640995200), *n)
	}
	assert.Nil(t, optInt64(req, "s"))

	if s := optString(req, "s"); assert.NotNil(t, s) {
		assert.Equal(t, "2024-01", *s)
	}
	assert.Nil(t, optString(req, "n"))
}

func TestStringsArg(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringsArg(toolReq(map[string]any{"l": []any{"a", 1.0, "b"}}), "l"))
	assert.Equal(t, []string{"c"}, stringsArg(toolReq(map[string]any{"l": []string{"c"}}), "l"))
	assert.Nil(t, stringsArg(toolReq(nil), "l"))
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, 10, pageSize(toolReq(nil), 10, 100))
	assert.Equal(t, 100, pageSize(toolReq(map[string]any{"page_size": 500.0}), 10, 100))
	assert.Equal(t, 25, pageSize(toolReq(map[string]any{"page_size": 25.0}), 10, 100))
}
