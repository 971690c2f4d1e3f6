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
	"fmt"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// NotFoundError is returned when the search yields no records.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return "no results found for query: " + e.Query
}

// Resolve searches for the query and returns the best matching entity.
//
// If want is not [TypeUnknown] and the first record is of a different type,
// the first record of the wanted type is returned.  If there is no record of
// that type, the first record is returned as is, so the caller must check
// the Type of the returned entity.  preciseX is passed through as the
// precise_x_search flag, nil sends null.
func (r *Researcher) Resolve(ctx context.Context, query string, want EntityType, preciseX *bool) (Entity, error) {
	data, err := r.data(ctx, rootdata.EpSearch, rootdata.SearchRequest{Query: query, PreciseXSearch: preciseX})
	if err != nil {
		return Entity{}, err
	}
	var found []Entity
	if len(data) > 0 {
		if err := json.Unmarshal(data, &found); err != nil {
			return Entity{}, fmt.Errorf("search %q: %w", query, err)
		}
	}
	if len(found) == 0 {
		return Entity{}, &NotFoundError{Query: query}
	}
	first := found[0]
	if want == TypeUnknown || first.Type == want {
		return first, nil
	}
	for _, e := range found[1:] {
		if e.Type == want {
			return e, nil
		}
	}
	return first, nil
}
