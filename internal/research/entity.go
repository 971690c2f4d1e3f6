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
	"encoding/json"
	"strings"
)

//go:generate stringer -type=EntityType -linecomment

// EntityType is the category code of a search record.
type EntityType int

const (
	TypeUnknown  EntityType = iota // Unknown
	TypeProject                    // Project
	TypeInvestor                   // VC
	TypePerson                     // Person
)

// ParseEntityType converts the entity type name, as accepted by the tools,
// into the category code.  "auto" and any unknown name yield [TypeUnknown],
// which disables type filtering.
func ParseEntityType(s string) EntityType {
	switch strings.ToLower(s) {
	case "project":
		return TypeProject
	case "investor", "vc", "org":
		return TypeInvestor
	case "person", "people":
		return TypePerson
	default:
		return TypeUnknown
	}
}

// Label returns the human readable category, or "Unknown" for codes outside
// of the known range.
func (t EntityType) Label() string {
	if t < TypeProject || TypePerson < t {
		return TypeUnknown.String()
	}
	return t.String()
}

// Entity is a search record.  The raw record is retained, so that the
// entity is passed through to the caller with all the fields that the
// search endpoint returned.
type Entity struct {
	ID   int64      `json:"id"`
	Type EntityType `json:"type"`
	Name string     `json:"name"`

	raw json.RawMessage
}

type entityFields Entity

func (e *Entity) UnmarshalJSON(b []byte) error {
	var f entityFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*e = Entity(f)
	e.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (e Entity) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	return json.Marshal(entityFields(e))
}
