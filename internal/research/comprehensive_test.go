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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

const (
	projectSearch = `[{"id":1,"type":1,"name":"Arbitrum"}]`
	projectDetail = `{"project_id":1,"project_name":"Arbitrum","total_funding":123700000,"establishment_date":"2018","ecosystem":["Ethereum","Arbitrum"]}`
	ecosystemMap  = `[{"ecosystem_id":5,"ecosystem_name":"Ethereum"},{"ecosystem_id":8,"ecosystem_name":"Solana"},{"ecosystem_id":9,"ecosystem_name":"Arbitrum"}]`
)

func TestResearcher_Analyze_project(t *testing.T) {
	type step struct {
		ep      rootdata.Endpoint
		payload any
		data    string
	}
	steps := []step{
		{rootdata.EpSearch, search("arb", rootdata.Ptr(false)), projectSearch},
		{rootdata.EpProject, project(1, true), projectDetail},
		{rootdata.EpFundingRounds, rootdata.FundingRoundsRequest{ProjectID: rootdata.Ptr[int64](1), Page: rootdata.Ptr(1), PageSize: rootdata.Ptr(10)}, `{"items":[{"round":"A"},{"round":"B"}]}`},
		{rootdata.EpEcosystemMap, nil, ecosystemMap},
		{rootdata.EpProjectsByEcosystems, rootdata.ProjectsByEcosystemsRequest{EcosystemIDs: "5,9"}, `[{"project_id":2},{"project_id":3},{"project_id":4}]`},
		{rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: 7}, `[{"project_id":7,"rank":1},{"project_id":1,"rank":3,"eval":88.1}]`},
		{rootdata.EpNewTokens, nil, `[{"token":"NEW"}]`},
	}
	req := AnalysisRequest{
		Query:          "arb",
		AnalysisType:   AnalysisComprehensive,
		Depth:          DepthFull,
		IncludeRelated: true,
	}

	t.Run("calls every step in order", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		calls := make([]any, 0, len(steps))
		for _, s := range steps {
			calls = append(calls, expect(mc, s.ep, s.payload, s.data))
		}
		gomock.InOrder(calls...)

		got, err := r.Analyze(t.Context(), req)
		require.NoError(t, err)
		assert.JSONEq(t, projectDetail, string(got.PrimaryData))
		require.NotNil(t, got.Trends)
		assert.JSONEq(t, `{"project_id":1,"rank":3,"eval":88.1}`, string(got.Trends.HotIndex))
		assert.JSONEq(t, `[{"token":"NEW"}]`, string(got.Tokens))
		assert.Equal(t, "Analysis for \"arb\":\n\n"+
			"Project: Arbitrum\n"+
			"Total Funding: $123.70M\n"+
			"Established: 2018\n"+
			"\nHot Index Rank: #3 (Score: 88.1)\n"+
			"\nRelated Projects: 3 projects in the same ecosystem\n"+
			"\nFundraising Rounds: 2 rounds found\n", got.Summary)
	})

	for i := range steps {
		t.Run("failure at "+string(steps[i].ep)+" aborts", func(t *testing.T) {
			r, mc := newTestResearcher(t)
			errStep := errors.New("step failed")
			calls := make([]any, 0, i+1)
			for _, s := range steps[:i] {
				calls = append(calls, expect(mc, s.ep, s.payload, s.data))
			}
			calls = append(calls, fail(mc, steps[i].ep, steps[i].payload, errStep))
			gomock.InOrder(calls...)

			got, err := r.Analyze(t.Context(), req)
			assert.ErrorIs(t, err, errStep)
			assert.Nil(t, got)
		})
	}
}

func TestResearcher_Analyze(t *testing.T) {
	t.Run("basic depth project without related data", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		gomock.InOrder(
			expect(mc, rootdata.EpSearch, search("arb", rootdata.Ptr(false)), projectSearch),
			expect(mc, rootdata.EpProject, project(1, false), `{"project_name":"Arbitrum"}`),
			expect(mc, rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: 7}, `[]`),
		)

		got, err := r.Analyze(t.Context(), AnalysisRequest{Query: "arb", AnalysisType: AnalysisTrends, Depth: DepthBasic})
		require.NoError(t, err)
		assert.Nil(t, got.Trends)
		assert.Nil(t, got.Tokens)
		assert.Equal(t, "Analysis for \"arb\":\n\nProject: Arbitrum\n", got.Summary)
	})
	t.Run("project without matching ecosystems", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		gomock.InOrder(
			expect(mc, rootdata.EpSearch, search("arb", rootdata.Ptr(false)), projectSearch),
			expect(mc, rootdata.EpProject, project(1, true), `{"project_name":"Arbitrum","ecosystem":"Cosmos"}`),
			expect(mc, rootdata.EpEcosystemMap, nil, ecosystemMap),
		)

		got, err := r.Analyze(t.Context(), AnalysisRequest{Query: "arb", AnalysisType: AnalysisProject, IncludeRelated: true})
		require.NoError(t, err)
		assert.Nil(t, got.RelatedProjects)
	})
	t.Run("investor", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		gomock.InOrder(
			expect(mc, rootdata.EpSearch, search("a16z", rootdata.Ptr(false)), `[{"id":20,"type":2,"name":"a16z"}]`),
			expect(mc, rootdata.EpOrg, org(20, true), `{"org_name":"a16z"}`),
			expect(mc, rootdata.EpInvestors, rootdata.InvestorsRequest{Page: 1, PageSize: 10}, `{"items":[{"invest_id":19},{"invest_id":20,"name":"a16z"}]}`),
			expect(mc, rootdata.EpNewTokens, nil, `[]`),
		)

		got, err := r.Analyze(t.Context(), AnalysisRequest{Query: "a16z"})
		require.NoError(t, err)
		require.Len(t, got.Investors, 1)
		assert.JSONEq(t, `{"invest_id":20,"name":"a16z"}`, string(got.Investors[0]))
		assert.Equal(t, "Analysis for \"a16z\":\n\nVC/Organization: a16z\n", got.Summary)
	})
	t.Run("person with job changes", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		gomock.InOrder(
			expect(mc, rootdata.EpSearch, search("vitalik", rootdata.Ptr(false)), `[{"id":30,"type":3,"name":"Vitalik"}]`),
			expect(mc, rootdata.EpPeople, rootdata.PeopleRequest{PeopleID: 30}, `{"people_name":"Vitalik Buterin"}`),
			expect(mc, rootdata.EpJobChanges, rootdata.JobChangesRequest{RecentJoinees: true, RecentResignations: true}, `{"recent_joinees":[]}`),
		)

		got, err := r.Analyze(t.Context(), AnalysisRequest{Query: "vitalik", AnalysisType: AnalysisProject, IncludeRelated: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"recent_joinees":[]}`, string(got.People))
	})
	t.Run("not found makes no further calls", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		expect(mc, rootdata.EpSearch, search("zzz", rootdata.Ptr(false)), `[]`)

		_, err := r.Analyze(t.Context(), AnalysisRequest{Query: "zzz"})
		var nf *NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}
