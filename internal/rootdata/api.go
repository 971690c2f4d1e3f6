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

package rootdata

// In this file: request payloads.  Optional fields are pointers without
// omitempty, so that an unset field is sent as null.

type SearchRequest struct {
	Query          string `json:"query"`
	PreciseXSearch *bool  `json:"precise_x_search"`
}

type ProjectRequest struct {
	ProjectID        int64 `json:"project_id"`
	IncludeTeam      *bool `json:"include_team"`
	IncludeInvestors *bool `json:"include_investors"`
}

type OrgRequest struct {
	OrgID              int64 `json:"org_id"`
	IncludeTeam        *bool `json:"include_team"`
	IncludeInvestments *bool `json:"include_investments"`
}

type PeopleRequest struct {
	PeopleID int64 `json:"people_id"`
}

type InvestorsRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type FundingRoundsRequest struct {
	Page      *int    `json:"page"`
	PageSize  *int    `json:"page_size"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	MinAmount *int64  `json:"min_amount"`
	MaxAmount *int64  `json:"max_amount"`
	ProjectID *int64  `json:"project_id"`
}

type SyncUpdateRequest struct {
	BeginTime int64  `json:"begin_time"`
	EndTime   *int64 `json:"end_time"`
}

type HotIndexRequest struct {
	Days int `json:"days"`
}

type HotProjectsOnXRequest struct {
	Heat      bool `json:"heat"`
	Influence bool `json:"influence"`
	Followers bool `json:"followers"`
}

// Rank types of the popular figures listing.
const (
	RankHeat      = "heat"
	RankInfluence = "influence"
)

type PopularFiguresRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	RankType string `json:"rank_type"`
}

type JobChangesRequest struct {
	RecentJoinees      bool `json:"recent_joinees"`
	RecentResignations bool `json:"recent_resignations"`
}

type ProjectsByEcosystemsRequest struct {
	EcosystemIDs string `json:"ecosystem_ids"`
}

type ProjectsByTagsRequest struct {
	TagIDs string `json:"tag_ids"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
