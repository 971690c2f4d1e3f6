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
	"errors"
)

// Comparison types.
const (
	CompareMetrics   = "metrics"
	CompareFunding   = "funding"
	CompareEcosystem = "ecosystem"
	CompareSocial    = "social"
	CompareAll       = "all"
)

// Comparison is the result of the entity comparison.
type Comparison struct {
	Entities []Compared         `json:"entities"`
	Metrics  map[string]Metrics `json:"metrics"`
	Summary  string             `json:"summary"`

	// order is the order in which the metrics names first appeared.
	order []string
}

// Compared is the data on one of the compared entities.
type Compared struct {
	BasicInfo     Entity          `json:"basic_info"`
	Details       json.RawMessage `json:"details"`
	Funding       json.RawMessage `json:"funding,omitempty"`
	SocialMetrics *SocialMetrics  `json:"social_metrics,omitempty"`
}

// Metrics are the key figures of the compared entity.
type Metrics map[string]any

// Compare resolves every name to its top search result and gathers the data
// for comparison.  Names that yield no search results are skipped, any other
// error aborts the comparison.
func (r *Researcher) Compare(ctx context.Context, names []string, compareType string) (*Comparison, error) {
	if compareType == "" {
		compareType = CompareAll
	}
	cmp := Comparison{Entities: make([]Compared, 0, len(names))}
	for _, name := range names {
		ent, err := r.Resolve(ctx, name, TypeUnknown, nil)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				r.lg.InfoContext(ctx, "research: skipping entity", "name", name, "error", err)
				continue
			}
			return nil, err
		}
		c, err := r.compared(ctx, ent, compareType)
		if err != nil {
			return nil, err
		}
		cmp.Entities = append(cmp.Entities, c)
	}
	cmp.buildMetrics()
	cmp.Summary = SummarizeComparison(&cmp)
	return &cmp, nil
}

func (r *Researcher) compared(ctx context.Context, ent Entity, compareType string) (Compared, error) {
	c := Compared{BasicInfo: ent}
	var err error
	if c.Details, err = r.detail(ctx, ent, true); err != nil {
		return c, err
	}
	if ent.Type != TypeProject {
		return c, nil
	}
	if compareType == CompareFunding || compareType == CompareAll {
		if c.Funding, err = r.projectFunding(ctx, ent.ID, nil, nil); err != nil {
			return c, err
		}
	}
	if compareType == CompareSocial || compareType == CompareAll {
		if c.SocialMetrics, err = r.socialMetrics(ctx, ent.ID); err != nil {
			return c, err
		}
	}
	return c, nil
}

// buildMetrics extracts the key figures of each entity.  Entities that share
// a name share the metrics entry, the last one wins.
func (c *Comparison) buildMetrics() {
	c.Metrics = make(map[string]Metrics, len(c.Entities))
	c.order = c.order[:0]
	for _, e := range c.Entities {
		name := e.BasicInfo.Name
		if name == "" {
			continue
		}
		if _, seen := c.Metrics[name]; !seen {
			c.order = append(c.order, name)
		}
		c.Metrics[name] = e.metrics()
	}
}

func (e Compared) metrics() Metrics {
	m := Metrics{}
	details := decodeRecord(e.Details)
	switch e.BasicInfo.Type {
	case TypeProject:
		if details != nil {
			m["funding"] = details["total_funding"]
			m["established_date"] = details["establishment_date"]
			m["ecosystem"] = details["ecosystem"]
			m["tags"] = details["tags"]
		}
		if sm := e.SocialMetrics; sm != nil {
			for key, row := range map[string]json.RawMessage{"heat": sm.Heat, "influence": sm.Influence, "followers": sm.Followers} {
				if rec := decodeRecord(row); len(rec) > 0 {
					m[key] = rec["score"]
				}
			}
		}
	case TypeInvestor:
		if details != nil {
			if inv, ok := details["investments"].([]any); ok && len(inv) > 0 {
				m["investment_count"] = len(inv)
			}
			m["established_date"] = details["establishment_date"]
			m["category"] = details["category"]
		}
	}
	return m
}

// Names returns the names of the metrics entries in the order of the
// compared entities.
func (c *Comparison) Names() []string {
	return c.order
}

// funding returns the funding figure of the entry.
func (m Metrics) funding() (float64, bool) {
	return record(m).number("funding")
}
