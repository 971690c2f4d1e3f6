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
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
	"github.com/rusq/rootdata-mcp/internal/rootdata/mock_rootdata"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newTestResearcher(t *testing.T) (*Researcher, *mock_rootdata.MockCaller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mc := mock_rootdata.NewMockCaller(ctrl)
	return New(mc, WithClock(func() time.Time { return fixedNow })), mc
}

// ok returns a successful envelope with the data.
func ok(data string) *rootdata.Envelope {
	return &rootdata.Envelope{Result: rootdata.ResultOK, Data: json.RawMessage(data)}
}

// expect sets up the expectation of a single call to the endpoint with the
// payload that returns data.
func expect(mc *mock_rootdata.MockCaller, ep rootdata.Endpoint, payload any, data string) *gomock.Call {
	return mc.EXPECT().Call(gomock.Any(), ep, payload).Return(ok(data), nil)
}

func fail(mc *mock_rootdata.MockCaller, ep rootdata.Endpoint, payload any, err error) *gomock.Call {
	return mc.EXPECT().Call(gomock.Any(), ep, payload).Return(nil, err)
}

func search(query string, precise *bool) rootdata.SearchRequest {
	return rootdata.SearchRequest{Query: query, PreciseXSearch: precise}
}

func project(id int64, include bool) rootdata.ProjectRequest {
	return rootdata.ProjectRequest{ProjectID: id, IncludeTeam: rootdata.Ptr(include), IncludeInvestors: rootdata.Ptr(include)}
}

func org(id int64, includeTeam bool) rootdata.OrgRequest {
	return rootdata.OrgRequest{OrgID: id, IncludeTeam: rootdata.Ptr(includeTeam), IncludeInvestments: rootdata.Ptr(true)}
}

var allRankings = rootdata.HotProjectsOnXRequest{Heat: true, Influence: true, Followers: true}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
