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

// Package research implements the composite queries over the RootData API:
// entity resolution, comprehensive analysis, entity investigation, trend
// tracking and entity comparison.  All upstream calls of a single query are
// issued sequentially, and any failure aborts the query.
package research

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// Researcher runs the composite queries.  It holds no mutable state and is
// safe for concurrent use.
type Researcher struct {
	api rootdata.Caller
	now func() time.Time
	lg  *slog.Logger
}

type Option func(*Researcher)

// WithClock sets the clock used to compute date windows.
func WithClock(now func() time.Time) Option {
	return func(r *Researcher) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(r *Researcher) {
		if lg != nil {
			r.lg = lg
		}
	}
}

// New creates a new Researcher that calls the API through api.
func New(api rootdata.Caller, opts ...Option) *Researcher {
	r := &Researcher{
		api: api,
		now: time.Now,
		lg:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Researcher) data(ctx context.Context, ep rootdata.Endpoint, payload any) (json.RawMessage, error) {
	r.lg.DebugContext(ctx, "research: calling", "endpoint", ep)
	return rootdata.Data(ctx, r.api, ep, payload)
}

// detail fetches the detail record for the entity.  include controls the
// include_* flags of project and organisation lookups, the investments of an
// organisation are always requested.  Entities of unknown type have no
// detail and nil is returned.
func (r *Researcher) detail(ctx context.Context, e Entity, include bool) (json.RawMessage, error) {
	switch e.Type {
	case TypeProject:
		return r.data(ctx, rootdata.EpProject, rootdata.ProjectRequest{
			ProjectID:        e.ID,
			IncludeTeam:      rootdata.Ptr(include),
			IncludeInvestors: rootdata.Ptr(include),
		})
	case TypeInvestor:
		return r.data(ctx, rootdata.EpOrg, rootdata.OrgRequest{
			OrgID:              e.ID,
			IncludeTeam:        rootdata.Ptr(include),
			IncludeInvestments: rootdata.Ptr(true),
		})
	case TypePerson:
		return r.data(ctx, rootdata.EpPeople, rootdata.PeopleRequest{PeopleID: e.ID})
	default:
		return nil, nil
	}
}

// projectFunding fetches the funding rounds of the project.
func (r *Researcher) projectFunding(ctx context.Context, id int64, page, pageSize *int) (json.RawMessage, error) {
	return r.data(ctx, rootdata.EpFundingRounds, rootdata.FundingRoundsRequest{
		ProjectID: &id,
		Page:      page,
		PageSize:  pageSize,
	})
}

// SocialMetrics holds the rows of the project in each of the X hot project
// rankings.  A nil field means the project is not in that ranking.
type SocialMetrics struct {
	Heat      json.RawMessage `json:"heat"`
	Influence json.RawMessage `json:"influence"`
	Followers json.RawMessage `json:"followers"`
}

// socialMetrics fetches the X hot project rankings and picks the rows of the
// project from each of them.
func (r *Researcher) socialMetrics(ctx context.Context, projectID int64) (*SocialMetrics, error) {
	data, err := r.data(ctx, rootdata.EpHotProjectsOnX, rootdata.HotProjectsOnXRequest{Heat: true, Influence: true, Followers: true})
	if err != nil {
		return nil, err
	}
	var rankings struct {
		Heat      []json.RawMessage `json:"heat"`
		Influence []json.RawMessage `json:"influence"`
		Followers []json.RawMessage `json:"followers"`
	}
	if err := json.Unmarshal(data, &rankings); err != nil {
		r.lg.WarnContext(ctx, "research: unexpected rankings payload", "error", err)
	}
	return &SocialMetrics{
		Heat:      findFirst(rankings.Heat, "project_id", projectID),
		Influence: findFirst(rankings.Influence, "project_id", projectID),
		Followers: findFirst(rankings.Followers, "project_id", projectID),
	}, nil
}
