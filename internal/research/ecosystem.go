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
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// equalFold reports whether a and b are equal under Unicode case folding.
// Casers are stateful, so a new one is made for each comparison.
func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// mapEntry is an entry of the ecosystem or tag map.
type mapEntry struct {
	ID   json.Number
	Name string
}

type ecosystemEntry struct {
	ID   json.Number `json:"ecosystem_id"`
	Name string      `json:"ecosystem_name"`
}

type tagEntry struct {
	ID   json.Number `json:"tag_id"`
	Name string      `json:"tag_name"`
}

func ecosystemEntries(data json.RawMessage) []mapEntry {
	return mapEntries[ecosystemEntry](data, func(e ecosystemEntry) mapEntry { return mapEntry(e) })
}

func tagEntries(data json.RawMessage) []mapEntry {
	return mapEntries[tagEntry](data, func(t tagEntry) mapEntry { return mapEntry(t) })
}

// mapEntries decodes the elements of the map one by one, malformed elements
// are skipped.
func mapEntries[T any](data json.RawMessage, conv func(T) mapEntry) []mapEntry {
	elems := list(data)
	out := make([]mapEntry, 0, len(elems))
	for _, el := range elems {
		var v T
		if err := json.Unmarshal(el, &v); err != nil {
			continue
		}
		out = append(out, conv(v))
	}
	return out
}

// memberOf returns a predicate reporting whether the ecosystem name belongs
// to the ecosystem field of a project detail.  The field is either a list of
// names, matched exactly, or a single string, matched as a substring.
func memberOf(field any) func(name string) bool {
	switch v := field.(type) {
	case []any:
		return func(name string) bool {
			for _, el := range v {
				if s, ok := el.(string); ok && s == name {
					return true
				}
			}
			return false
		}
	case string:
		return func(name string) bool {
			return strings.Contains(v, name)
		}
	default:
		return func(string) bool { return false }
	}
}

// peerProjects fetches the ecosystem map, collects the ids of all ecosystems
// the project belongs to, and fetches the projects of those ecosystems.  It
// returns nil without calling the projects endpoint if the project has no
// ecosystems or none of them is on the map.
func (r *Researcher) peerProjects(ctx context.Context, detail json.RawMessage) (json.RawMessage, error) {
	ecoMap, err := r.data(ctx, rootdata.EpEcosystemMap, nil)
	if err != nil {
		return nil, err
	}
	rec := decodeRecord(detail)
	if !rec.has("ecosystem") {
		return nil, nil
	}
	isMember := memberOf(rec["ecosystem"])
	var ids []string
	for _, e := range ecosystemEntries(ecoMap) {
		if isMember(e.Name) {
			ids = append(ids, e.ID.String())
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return r.data(ctx, rootdata.EpProjectsByEcosystems, rootdata.ProjectsByEcosystemsRequest{EcosystemIDs: strings.Join(ids, ",")})
}

// lookupEcosystem returns the id of the first ecosystem whose name matches
// name case-insensitively.
func lookupEcosystem(ecoMap json.RawMessage, name string) (string, bool) {
	for _, e := range ecosystemEntries(ecoMap) {
		if equalFold(e.Name, name) && validID(e.ID) {
			return e.ID.String(), true
		}
	}
	return "", false
}

// lookupTags returns the ids of the tags, in the order of the map, whose
// names match one of the comma-separated names case-insensitively.
func lookupTags(tagMap json.RawMessage, names string) []string {
	fold := cases.Fold()
	var want []string
	for n := range strings.SplitSeq(names, ",") {
		if n = strings.TrimSpace(n); n != "" {
			want = append(want, fold.String(n))
		}
	}
	var ids []string
	for _, t := range tagEntries(tagMap) {
		if !validID(t.ID) {
			continue
		}
		folded := fold.String(t.Name)
		for _, w := range want {
			if folded == w {
				ids = append(ids, t.ID.String())
				break
			}
		}
	}
	return ids
}

// validID reports whether the id is present and non-zero.
func validID(id json.Number) bool {
	return id != "" && id != "0"
}
