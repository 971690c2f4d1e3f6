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

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// Investigation scopes.
const (
	ScopeBasic     = "basic"
	ScopeFunding   = "funding"
	ScopeSocial    = "social"
	ScopeEcosystem = "ecosystem"
	ScopeAll       = "all"
)

// InvestigationRequest is the input of [Researcher.Investigate].
type InvestigationRequest struct {
	EntityName string
	EntityType EntityType // TypeUnknown picks the top search result
	Scope      string     // defaults to ScopeBasic
}

// Investigation is the result of the entity investigation.
type Investigation struct {
	EntityInfo  Entity          `json:"entity_info"`
	Details     json.RawMessage `json:"details"`
	RelatedData RelatedData     `json:"related_data"`
}

// RelatedData is the data gathered around the investigated entity.
type RelatedData struct {
	Funding          json.RawMessage `json:"funding,omitempty"`
	SocialMetrics    *SocialMetrics  `json:"social_metrics,omitempty"`
	RelatedProjects  json.RawMessage `json:"related_projects,omitempty"`
	InvestorAnalysis json.RawMessage `json:"investor_analysis,omitempty"`
	Ranking          json.RawMessage `json:"ranking,omitempty"`
}

func inScope(scope string, want string) bool {
	return scope == want || scope == ScopeAll
}

// Investigate resolves the entity name, preferring the requested entity type,
// and gathers the data within the investigation scope.
func (r *Researcher) Investigate(ctx context.Context, req InvestigationRequest) (*Investigation, error) {
	if req.Scope == "" {
		req.Scope = ScopeBasic
	}
	ent, err := r.Resolve(ctx, req.EntityName, req.EntityType, nil)
	if err != nil {
		return nil, err
	}
	if req.EntityType != TypeUnknown && ent.Type != req.EntityType {
		r.lg.InfoContext(ctx, "research: no entity of the requested type, using the top result", "entity_name", req.EntityName, "want", req.EntityType, "got", ent.Type)
	}

	inv := Investigation{EntityInfo: ent}
	if inv.Details, err = r.detail(ctx, ent, true); err != nil {
		return nil, err
	}
	rd := &inv.RelatedData
	switch ent.Type {
	case TypeProject:
		if inScope(req.Scope, ScopeFunding) {
			if rd.Funding, err = r.projectFunding(ctx, ent.ID, nil, nil); err != nil {
				return nil, err
			}
		}
		if inScope(req.Scope, ScopeSocial) {
			if rd.SocialMetrics, err = r.socialMetrics(ctx, ent.ID); err != nil {
				return nil, err
			}
		}
		if inScope(req.Scope, ScopeEcosystem) {
			if rd.RelatedProjects, err = r.peerProjects(ctx, inv.Details); err != nil {
				return nil, err
			}
		}
	case TypeInvestor:
		if inScope(req.Scope, ScopeFunding) {
			if rd.InvestorAnalysis, err = r.data(ctx, rootdata.EpInvestors, rootdata.InvestorsRequest{Page: 1, PageSize: 10}); err != nil {
				return nil, err
			}
		}
	case TypePerson:
		if inScope(req.Scope, ScopeSocial) {
			figures, err := r.data(ctx, rootdata.EpPopularFiguresOnX, rootdata.PopularFiguresRequest{RankType: rootdata.RankHeat, Page: 1, PageSize: 100})
			if err != nil {
				return nil, err
			}
			rd.Ranking = findFirst(items(figures), "people_id", ent.ID)
		}
	}
	return &inv, nil
}
