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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		timeRange string
		wantStart time.Time
	}{
		{"1d", fixedNow.AddDate(0, 0, -1)},
		{"7d", fixedNow.AddDate(0, 0, -7)},
		{"30d", time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)},
		{"3m", fixedNow.AddDate(0, 0, -90)},
		{"bogus", fixedNow.AddDate(0, 0, -7)},
		{"", fixedNow.AddDate(0, 0, -7)},
	}
	for _, tt := range tests {
		t.Run(tt.timeRange, func(t *testing.T) {
			start, end := Window(tt.timeRange, fixedNow)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, fixedNow, end)
		})
	}
}

func TestResearcher_Trends(t *testing.T) {
	t.Run("funding window is formatted as months", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		expect(mc, rootdata.EpFundingRounds, rootdata.FundingRoundsRequest{
			StartTime: rootdata.Ptr("2024-02"),
			EndTime:   rootdata.Ptr("2024-03"),
			MinAmount: rootdata.Ptr[int64](5_000_000),
		}, `{"items":[]}`)

		got, err := r.Trends(t.Context(), TrendsRequest{Category: CategoryFunding, TimeRange: "30d", MinFunding: rootdata.Ptr[int64](5_000_000)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"funding":{"items":[]}}`, mustJSON(t, got))
	})
	t.Run("all categories in order", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		gomock.InOrder(
			expect(mc, rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: 1}, `[{"project_id":1}]`),
			expect(mc, rootdata.EpFundingRounds, rootdata.FundingRoundsRequest{
				StartTime: rootdata.Ptr("2024-03"),
				EndTime:   rootdata.Ptr("2024-03"),
			}, `{"items":[]}`),
			expect(mc, rootdata.EpJobChanges, rootdata.JobChangesRequest{RecentJoinees: true, RecentResignations: true}, `{"recent_joinees":[]}`),
			expect(mc, rootdata.EpNewTokens, nil, `[]`),
			expect(mc, rootdata.EpEcosystemMap, nil, `[{"ecosystem_id":5,"ecosystem_name":"Ethereum"},{"ecosystem_id":6,"ecosystem_name":"Layer 2"}]`),
			expect(mc, rootdata.EpProjectsByEcosystems, rootdata.ProjectsByEcosystemsRequest{EcosystemIDs: "6"}, `[{"project_id":9}]`),
			expect(mc, rootdata.EpTagMap, nil, `[{"tag_id":1,"tag_name":"DeFi"},{"tag_id":2,"tag_name":"NFT"},{"tag_id":3,"tag_name":"Gaming"}]`),
			expect(mc, rootdata.EpProjectsByTags, rootdata.ProjectsByTagsRequest{TagIDs: "1,3"}, `[{"project_id":7}]`),
		)

		got, err := r.Trends(t.Context(), TrendsRequest{Category: CategoryAll, TimeRange: "1d", Ecosystem: "LAYER 2", Tags: "gaming, defi"})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"project_id":9}]`, string(got.EcosystemProjects))
		assert.JSONEq(t, `[{"project_id":7}]`, string(got.TagProjects))
		assert.JSONEq(t, `[{"project_id":1}]`, string(got.HotProjects))
	})
	t.Run("unknown ecosystem skips the projects call", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		expect(mc, rootdata.EpEcosystemMap, nil, `[{"ecosystem_id":5,"ecosystem_name":"Ethereum"}]`)

		got, err := r.Trends(t.Context(), TrendsRequest{Category: CategoryEcosystem, Ecosystem: "Solana"})
		require.NoError(t, err)
		assert.Nil(t, got.EcosystemProjects)
		assert.NotNil(t, got.EcosystemMap)
	})
	t.Run("hot projects default to 7 days", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		expect(mc, rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: 7}, `[]`)

		_, err := r.Trends(t.Context(), TrendsRequest{Category: CategoryHotProjects, TimeRange: "3m"})
		require.NoError(t, err)
	})
	t.Run("failure aborts", func(t *testing.T) {
		r, mc := newTestResearcher(t)
		errBoom := errors.New("boom")
		gomock.InOrder(
			expect(mc, rootdata.EpHotIndex, rootdata.HotIndexRequest{Days: 7}, `[]`),
			fail(mc, rootdata.EpFundingRounds, gomock.Any(), errBoom),
		)

		_, err := r.Trends(t.Context(), TrendsRequest{Category: CategoryAll})
		assert.ErrorIs(t, err, errBoom)
	})
}
