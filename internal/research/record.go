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

package research

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// record is a loosely decoded JSON object.  Numbers are kept as
// [json.Number], so that values are reproduced exactly.
type record map[string]any

func decodeRecord(data json.RawMessage) record {
	var rec record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return nil
	}
	return rec
}

// has reports whether the field is present and truthy: not null, not false,
// not zero, and not an empty string, array or object.
func (r record) has(key string) bool {
	return truthy(r[key])
}

func (r record) str(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

// number returns the numeric value of the field.  Numeric strings are
// accepted.
func (r record) number(key string) (float64, bool) {
	switch v := r[key].(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// text returns the field formatted for display.
func (r record) text(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return "n/a"
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// count returns the number of elements of the JSON array, or keys of the
// JSON object.  Anything else counts as zero.
func count(data json.RawMessage) int {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		return len(arr)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		return len(obj)
	}
	return 0
}

// items returns the elements of the "items" array of the JSON object.
func items(data json.RawMessage) []json.RawMessage {
	var page struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil
	}
	return page.Items
}

// list returns the elements of the JSON array.
func list(data json.RawMessage) []json.RawMessage {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil
	}
	return arr
}

// findFirst returns the first element whose key field equals id.
func findFirst(elems []json.RawMessage, key string, id int64) json.RawMessage {
	for _, el := range elems {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(el, &obj); err != nil {
			continue
		}
		if idEqual(obj[key], id) {
			return el
		}
	}
	return nil
}

func idEqual(v json.RawMessage, id int64) bool {
	var n json.Number
	if len(v) == 0 || json.Unmarshal(v, &n) != nil {
		return false
	}
	if i, err := n.Int64(); err == nil {
		return i == id
	}
	f, err := n.Float64()
	return err == nil && f == float64(id)
}
