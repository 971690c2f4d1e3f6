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
	"time"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

// Trend categories.
const (
	CategoryHotProjects = "hot_projects"
	CategoryFunding     = "funding"
	CategoryJobChanges  = "job_changes"
	CategoryNewTokens   = "new_tokens"
	CategoryEcosystem   = "ecosystem"
	CategoryAll         = "all"
)

// monthLayout is the layout of funding round date bounds.
const monthLayout = "2006-01"

// windowDays maps the time range token to the number of days.
var windowDays = map[string]int{
	"1d":  1,
	"7d":  7,
	"30d": 30,
	"3m":  90,
}

const defWindowDays = 7

// Window returns the start and end of the time range ending at now.
// Unknown tokens yield a 7 day window.
func Window(timeRange string, now time.Time) (start, end time.Time) {
	days, ok := windowDays[timeRange]
	if !ok {
		days = defWindowDays
	}
	return now.AddDate(0, 0, -days), now
}

// TrendsRequest is the input of [Researcher.Trends].
type TrendsRequest struct {
	Category   string
	TimeRange  string // defaults to "7d"
	Ecosystem  string // ecosystem name
	Tags       string // comma-separated tag names
	MinFunding *int64
}

// Trends is the result of the trend tracking.
type Trends struct {
	HotProjects       json.RawMessage `json:"hot_projects,omitempty"`
	Funding           json.RawMessage `json:"funding,omitempty"`
	JobChanges        json.RawMessage `json:"job_changes,omitempty"`
	NewTokens         json.RawMessage `json:"new_tokens,omitempty"`
	EcosystemMap      json.RawMessage `json:"ecosystem_map,omitempty"`
	EcosystemProjects json.RawMessage `json:"ecosystem_projects,omitempty"`
	TagMap            json.RawMessage `json:"tag_map,omitempty"`
	TagProjects       json.RawMessage `json:"tag_projects,omitempty"`
}

// Trends collects the market trends of the category.
func (r *Researcher) Trends(ctx context.Context, req TrendsRequest) (*Trends, error) {
	if req.TimeRange == "" {
		req.TimeRange = "7d"
	}
	want := func(c string) bool { return req.Category == c || req.Category == CategoryAll }

	var (
		res Trends
		err error
	)
	if want(CategoryHotProjects) {
		days := 7
		if req.TimeRange == "1d" {
			days = 1
		}
		if res.HotProjects, err = r.data(ctx, rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: days}); err != nil {
			return nil, err
		}
	}
	if want(CategoryFunding) {
		start, end := Window(req.TimeRange, r.now())
		if res.Funding, err = r.data(ctx, rootdata.EpFundingRounds, rootdata.FundingRoundsRequest{
			StartTime: rootdata.Ptr(start.Format(monthLayout)),
			EndTime:   rootdata.Ptr(end.Format(monthLayout)),
			MinAmount: req.MinFunding,
		}); err != nil {
			return nil, err
		}
	}
	if want(CategoryJobChanges) {
		if res.JobChanges, err = r.data(ctx, rootdata.EpJobChanges, rootdata.JobChangesRequest{RecentJoinees: true, RecentResignations: true}); err != nil {
			return nil, err
		}
	}
	if want(CategoryNewTokens) {
		if res.NewTokens, err = r.data(ctx, rootdata.EpNewTokens, nil); err != nil {
			return nil, err
		}
	}
	if want(CategoryEcosystem) {
		if err := r.ecosystemTrends(ctx, &res, req); err != nil {
			return nil, err
		}
	}
	return &res, nil
}

func (r *Researcher) ecosystemTrends(ctx context.Context, res *Trends, req TrendsRequest) error {
	var err error
	if res.EcosystemMap, err = r.data(ctx, rootdata.EpEcosystemMap, nil); err != nil {
		return err
	}
	if req.Ecosystem != "" {
		if id, ok := lookupEcosystem(res.EcosystemMap, req.Ecosystem); ok {
			if res.EcosystemProjects, err = r.data(ctx, rootdata.EpProjectsByEcosystems, rootdata.ProjectsByEcosystemsRequest{EcosystemIDs: id}); err != nil {
				return err
			}
		} else {
			r.lg.InfoContext(ctx, "research: ecosystem not found", "ecosystem", req.Ecosystem)
		}
	}
	if strings.TrimSpace(req.Tags) != "" {
		if res.TagMap, err = r.data(ctx, rootdata.EpTagMap, nil); err != nil {
			return err
		}
		if ids := lookupTags(res.TagMap, req.Tags); len(ids) > 0 {
			if res.TagProjects, err = r.data(ctx, rootdata.EpProjectsByTags, rootdata.ProjectsByTagsRequest{TagIDs: strings.Join(ids, ",")}); err != nil {
				return err
			}
		} else {
			r.lg.InfoContext(ctx, "research: tags not found", "tags", req.Tags)
		}
	}
	return nil
}
