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
	"slices"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// Analysis types.
const (
	AnalysisProject       = "project"
	AnalysisInvestor      = "investor"
	AnalysisEcosystem     = "ecosystem"
	AnalysisTrends        = "trends"
	AnalysisFundraising   = "fundraising"
	AnalysisComprehensive = "comprehensive"
)

// Analysis depths.
const (
	DepthBasic    = "basic"
	DepthDetailed = "detailed"
	DepthFull     = "full"
)

// AnalysisRequest is the input of [Researcher.Analyze].
type AnalysisRequest struct {
	Query          string
	AnalysisType   string // defaults to AnalysisComprehensive
	Timeframe      string
	Depth          string // defaults to DepthDetailed
	IncludeRelated bool
}

func (req *AnalysisRequest) defaults() {
	if req.AnalysisType == "" {
		req.AnalysisType = AnalysisComprehensive
	}
	if req.Depth == "" {
		req.Depth = DepthDetailed
	}
}

// Analysis is the result of the comprehensive analysis.
type Analysis struct {
	PrimaryData     json.RawMessage   `json:"primary_data"`
	Fundraising     json.RawMessage   `json:"fundraising,omitempty"`
	RelatedProjects json.RawMessage   `json:"related_projects,omitempty"`
	Trends          *HotTrend         `json:"trends,omitempty"`
	Investors       []json.RawMessage `json:"investors,omitempty"`
	People          json.RawMessage   `json:"people,omitempty"`
	Tokens          json.RawMessage   `json:"tokens,omitempty"`
	Summary         string            `json:"summary"`
}

// HotTrend holds the row of the project in the hot index.
type HotTrend struct {
	HotIndex json.RawMessage `json:"hot_index"`
}

// Analyze resolves the query to the top search result and gathers the data
// on it according to the analysis type and depth.
func (r *Researcher) Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	req.defaults()
	lg := r.lg.With("query", req.Query, "analysis_type", req.AnalysisType, "timeframe", req.Timeframe, "depth", req.Depth)

	ent, err := r.Resolve(ctx, req.Query, TypeUnknown, rootdata.Ptr(false))
	if err != nil {
		return nil, err
	}
	lg.DebugContext(ctx, "research: resolved", "id", ent.ID, "type", ent.Type)

	var res Analysis
	switch ent.Type {
	case TypeProject:
		err = r.analyzeProject(ctx, &res, ent, req)
	case TypeInvestor:
		err = r.analyzeInvestor(ctx, &res, ent, req)
	case TypePerson:
		err = r.analyzePerson(ctx, &res, ent, req)
	default:
		lg.WarnContext(ctx, "research: unknown entity type", "id", ent.ID, "type", int(ent.Type))
	}
	if err != nil {
		return nil, err
	}

	if req.AnalysisType == AnalysisComprehensive {
		if res.Tokens, err = r.data(ctx, rootdata.EpNewTokens, nil); err != nil {
			return nil, err
		}
	}
	res.Summary = Summarize(&res, req.Query)
	return &res, nil
}

func (r *Researcher) analyzeProject(ctx context.Context, res *Analysis, ent Entity, req AnalysisRequest) error {
	var err error
	if res.PrimaryData, err = r.detail(ctx, ent, req.Depth != DepthBasic); err != nil {
		return err
	}
	if slices.Contains([]string{AnalysisComprehensive, AnalysisFundraising}, req.AnalysisType) {
		if res.Fundraising, err = r.projectFunding(ctx, ent.ID, rootdata.Ptr(1), rootdata.Ptr(10)); err != nil {
			return err
		}
	}
	if req.IncludeRelated {
		if res.RelatedProjects, err = r.peerProjects(ctx, res.PrimaryData); err != nil {
			return err
		}
	}
	if slices.Contains([]string{AnalysisTrends, AnalysisComprehensive}, req.AnalysisType) {
		hot, err := r.data(ctx, rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: 7})
		if err != nil {
			return err
		}
		if row := findFirst(list(hot), "project_id", ent.ID); row != nil {
			res.Trends = &HotTrend{HotIndex: row}
		}
	}
	return nil
}

func (r *Researcher) analyzeInvestor(ctx context.Context, res *Analysis, ent Entity, req AnalysisRequest) error {
	var err error
	if res.PrimaryData, err = r.detail(ctx, ent, req.Depth != DepthBasic); err != nil {
		return err
	}
	if slices.Contains([]string{AnalysisComprehensive, AnalysisInvestor}, req.AnalysisType) {
		inv, err := r.data(ctx, rootdata.EpInvestors, rootdata.InvestorsRequest{Page: 1, PageSize: 10})
		if err != nil {
			return err
		}
		if row := findFirst(items(inv), "invest_id", ent.ID); row != nil {
			res.Investors = []json.RawMessage{row}
		}
	}
	return nil
}

func (r *Researcher) analyzePerson(ctx context.Context, res *Analysis, ent Entity, req AnalysisRequest) error {
	var err error
	if res.PrimaryData, err = r.detail(ctx, ent, true); err != nil {
		return err
	}
	if req.IncludeRelated {
		if res.People, err = r.data(ctx, rootdata.EpJobChanges, rootdata.JobChangesRequest{RecentJoinees: true, RecentResignations: true}); err != nil {
			return err
		}
	}
	return nil
}
