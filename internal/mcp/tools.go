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

package mcp

// In this file: pass-through tool definitions.  Each of these tools calls a
// single API endpoint and returns the data of the response unmodified.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/rootdata-mcp/internal/rootdata"
)

const tip = "\n\nTIP: For comprehensive research, call listAllTools first to understand the available tools and develop a strategic approach."

// basicTools returns the pass-through tools.
func (s *Server) basicTools() []tool {
	return []tool{
		s.toolSearchEntities(),
		s.toolGetProject(),
		s.toolGetOrg(),
		s.toolGetPeople(),
		s.toolGetInvestors(),
		s.toolGetFundingRounds(),
		s.toolSyncUpdate(),
		s.toolGetHotProjects(),
		s.toolGetXHotProjects(),
		s.toolGetXPopularFigures(),
		s.toolGetJobChanges(),
		s.toolGetNewTokens(),
		s.toolGetEcosystemMap(),
		s.toolGetTagMap(),
		s.toolGetProjectsByEcosystem(),
		s.toolGetProjectsByTags(),
	}
}

// passthrough returns the handler that sends the payload built from the
// request to the endpoint.
func (s *Server) passthrough(ep rootdata.Endpoint, payload func(mcplib.CallToolRequest) any) mcpsrv.ToolHandlerFunc {
	return func(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		data, err := rootdata.Data(ctx, s.api, ep, payload(req))
		if err != nil {
			return resultErr(err), nil
		}
		return resultRaw(data), nil
	}
}

func noPayload(mcplib.CallToolRequest) any { return nil }

func newTool(name, description string, opts ...mcplib.ToolOption) mcplib.Tool {
	opts = append([]mcplib.ToolOption{
		mcplib.WithDescription(description + tip),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithOpenWorldHintAnnotation(true),
	}, opts...)
	return mcplib.NewTool(name, opts...)
}

// ─── searchEntities ───────────────────────────────────────────────────────────

func (s *Server) toolSearchEntities() tool {
	t := newTool("searchEntities", "Search for projects, VCs, or people by keywords",
		mcplib.WithString("query", mcplib.Required(), mcplib.Description("Search keywords")),
		mcplib.WithBoolean("precise_x_search", mcplib.Description("Search by X handle (@...)")),
	)
	h := s.passthrough(rootdata.EpSearch, func(req mcplib.CallToolRequest) any {
		q, _ := stringArg(req, "query")
		return rootdata.SearchRequest{Query: q, PreciseXSearch: optBool(req, "precise_x_search")}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `searchEntities(query='Ethereum', precise_x_search=false)`,
	}
}

// ─── getProject ───────────────────────────────────────────────────────────────

func (s *Server) toolGetProject() tool {
	t := newTool("getProject", "Get detailed project information",
		withInteger("project_id", mcplib.Required(), mcplib.Description("Project ID")),
		mcplib.WithBoolean("include_team", mcplib.Description("Include team members")),
		mcplib.WithBoolean("include_investors", mcplib.Description("Include investors")),
	)
	h := s.passthrough(rootdata.EpProject, func(req mcplib.CallToolRequest) any {
		id, _ := int64Arg(req, "project_id")
		return rootdata.ProjectRequest{
			ProjectID:        id,
			IncludeTeam:      optBool(req, "include_team"),
			IncludeInvestors: optBool(req, "include_investors"),
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getProject(project_id=1234, include_team=true, include_investors=true)`,
	}
}

// ─── getOrg ───────────────────────────────────────────────────────────────────

func (s *Server) toolGetOrg() tool {
	t := newTool("getOrg", "Get detailed VC/organization information",
		withInteger("org_id", mcplib.Required(), mcplib.Description("Organization ID")),
		mcplib.WithBoolean("include_team", mcplib.Description("Include team members")),
		mcplib.WithBoolean("include_investments", mcplib.Description("Include investments")),
	)
	h := s.passthrough(rootdata.EpOrg, func(req mcplib.CallToolRequest) any {
		id, _ := int64Arg(req, "org_id")
		return rootdata.OrgRequest{
			OrgID:              id,
			IncludeTeam:        optBool(req, "include_team"),
			IncludeInvestments: optBool(req, "include_investments"),
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getOrg(org_id=5678, include_team=true, include_investments=true)`,
	}
}

// ─── getPeople ────────────────────────────────────────────────────────────────

func (s *Server) toolGetPeople() tool {
	t := newTool("getPeople", "Get detailed information about a person (Pro only)",
		withInteger("people_id", mcplib.Required(), mcplib.Description("Person ID")),
	)
	h := s.passthrough(rootdata.EpPeople, func(req mcplib.CallToolRequest) any {
		id, _ := int64Arg(req, "people_id")
		return rootdata.PeopleRequest{PeopleID: id}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getPeople(people_id=9012)`,
	}
}

// ─── getInvestors ─────────────────────────────────────────────────────────────

func (s *Server) toolGetInvestors() tool {
	t := newTool("getInvestors", "Get investor information in batches (Plus/Pro only)",
		withInteger("page", mcplib.Description("Page number"), mcplib.DefaultNumber(1), mcplib.Min(1)),
		withInteger("page_size", mcplib.Description(fmtMax("Items per page", s.cfg.MaxPageSize)), mcplib.Min(1)),
	)
	h := s.passthrough(rootdata.EpInvestors, func(req mcplib.CallToolRequest) any {
		return rootdata.InvestorsRequest{
			Page:     intArg(req, "page", 1),
			PageSize: pageSize(req, s.cfg.DefaultPageSize, s.cfg.MaxPageSize),
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getInvestors(page=1, page_size=20)`,
	}
}

// ─── getFundingRounds ─────────────────────────────────────────────────────────

func (s *Server) toolGetFundingRounds() tool {
	t := newTool("getFundingRounds", "Get fundraising rounds information (Plus/Pro only)",
		withInteger("page", mcplib.Description("Page number"), mcplib.DefaultNumber(1), mcplib.Min(1)),
		withInteger("page_size", mcplib.Description(fmtMax("Items per page", s.cfg.MaxFundingPageSize)), mcplib.Min(1)),
		mcplib.WithString("start_time", mcplib.Description("Start date (yyyy-MM)")),
		mcplib.WithString("end_time", mcplib.Description("End date (yyyy-MM)")),
		withInteger("min_amount", mcplib.Description("Minimum funding amount (USD)")),
		withInteger("max_amount", mcplib.Description("Maximum funding amount (USD)")),
		withInteger("project_id", mcplib.Description("Project ID")),
	)
	h := s.passthrough(rootdata.EpFundingRounds, func(req mcplib.CallToolRequest) any {
		return rootdata.FundingRoundsRequest{
			Page:      rootdata.Ptr(intArg(req, "page", 1)),
			PageSize:  rootdata.Ptr(pageSize(req, s.cfg.DefaultPageSize, s.cfg.MaxFundingPageSize)),
			StartTime: optString(req, "start_time"),
			EndTime:   optString(req, "end_time"),
			MinAmount: optInt64(req, "min_amount"),
			MaxAmount: optInt64(req, "max_amount"),
			ProjectID: optInt64(req, "project_id"),
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getFundingRounds(start_time='2023-01', end_time='2023-12', min_amount=1000000)`,
	}
}

// ─── syncUpdate ───────────────────────────────────────────────────────────────

func (s *Server) toolSyncUpdate() tool {
	t := newTool("syncUpdate", "Get projects updated within a time range (Pro only)",
		withInteger("begin_time", mcplib.Required(), mcplib.Description("Start timestamp (Unix seconds)")),
		withInteger("end_time", mcplib.Description("End timestamp (Unix seconds)")),
	)
	h := s.passthrough(rootdata.EpSyncUpdate, func(req mcplib.CallToolRequest) any {
		begin, _ := int64Arg(req, "begin_time")
		return rootdata.SyncUpdateRequest{BeginTime: begin, EndTime: optInt64(req, "end_time")}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `syncUpdate(begin_time=1640995200, end_time=1672531199)`,
	}
}

// ─── getHotProjects ───────────────────────────────────────────────────────────

func (s *Server) toolGetHotProjects() tool {
	t := newTool("getHotProjects", "Get top 100 hot crypto projects (Pro only)",
		withInteger("days", mcplib.Required(), mcplib.Description("Time period (1 or 7 days)"), numberEnum(1, 7)),
	)
	h := s.passthrough(rootdata.EpHotIndex, func(req mcplib.CallToolRequest) any {
		return rootdata.HotIndexRequest{Days: intArg(req, "days", 7)}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getHotProjects(days=7)`,
	}
}

// ─── getXHotProjects ──────────────────────────────────────────────────────────

func (s *Server) toolGetXHotProjects() tool {
	t := newTool("getXHotProjects", "Get X platform hot projects rankings (Pro only)",
		mcplib.WithBoolean("heat", mcplib.Description("Get heat ranking"), mcplib.DefaultBool(true)),
		mcplib.WithBoolean("influence", mcplib.Description("Get influence ranking"), mcplib.DefaultBool(true)),
		mcplib.WithBoolean("followers", mcplib.Description("Get followers ranking"), mcplib.DefaultBool(true)),
	)
	h := s.passthrough(rootdata.EpHotProjectsOnX, func(req mcplib.CallToolRequest) any {
		return rootdata.HotProjectsOnXRequest{
			Heat:      boolArg(req, "heat", true),
			Influence: boolArg(req, "influence", true),
			Followers: boolArg(req, "followers", true),
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getXHotProjects(heat=true, influence=true, followers=false)`,
	}
}

// ─── getXPopularFigures ───────────────────────────────────────────────────────

func (s *Server) toolGetXPopularFigures() tool {
	t := newTool("getXPopularFigures", "Get X platform popular figures (Pro only)",
		mcplib.WithString("rank_type", mcplib.Required(), mcplib.Description("Ranking type"), mcplib.Enum(rootdata.RankHeat, rootdata.RankInfluence)),
		withInteger("page", mcplib.Description("Page number"), mcplib.DefaultNumber(1), mcplib.Min(1)),
		withInteger("page_size", mcplib.Description(fmtMax("Items per page", s.cfg.MaxPageSize)), mcplib.Min(1)),
	)
	h := s.passthrough(rootdata.EpPopularFiguresOnX, func(req mcplib.CallToolRequest) any {
		rank, _ := stringArg(req, "rank_type")
		return rootdata.PopularFiguresRequest{
			Page:     intArg(req, "page", 1),
			PageSize: pageSize(req, s.cfg.DefaultPageSize, s.cfg.MaxPageSize),
			RankType: rank,
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getXPopularFigures(rank_type='heat', page=1, page_size=20)`,
	}
}

// ─── getJobChanges ────────────────────────────────────────────────────────────

func (s *Server) toolGetJobChanges() tool {
	t := newTool("getJobChanges", "Get job position changes (Pro only)",
		mcplib.WithBoolean("recent_joinees", mcplib.Description("Get recent job joiners"), mcplib.DefaultBool(true)),
		mcplib.WithBoolean("recent_resignations", mcplib.Description("Get recent resignations"), mcplib.DefaultBool(true)),
	)
	h := s.passthrough(rootdata.EpJobChanges, func(req mcplib.CallToolRequest) any {
		return rootdata.JobChangesRequest{
			RecentJoinees:      boolArg(req, "recent_joinees", true),
			RecentResignations: boolArg(req, "recent_resignations", true),
		}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getJobChanges(recent_joinees=true, recent_resignations=true)`,
	}
}

// ─── getNewTokens, getEcosystemMap, getTagMap ─────────────────────────────────

func (s *Server) toolGetNewTokens() tool {
	t := newTool("getNewTokens", "Get newly issued tokens in the past 3 months (Pro only)")
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.passthrough(rootdata.EpNewTokens, noPayload)},
		example:    `getNewTokens()`,
	}
}

func (s *Server) toolGetEcosystemMap() tool {
	t := newTool("getEcosystemMap", "Get ecosystem map list (Pro only)")
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.passthrough(rootdata.EpEcosystemMap, noPayload)},
		example:    `getEcosystemMap()`,
	}
}

func (s *Server) toolGetTagMap() tool {
	t := newTool("getTagMap", "Get tag map list (Pro only)")
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.passthrough(rootdata.EpTagMap, noPayload)},
		example:    `getTagMap()`,
	}
}

// ─── getProjectsByEcosystem ───────────────────────────────────────────────────

func (s *Server) toolGetProjectsByEcosystem() tool {
	t := newTool("getProjectsByEcosystem", "Get projects by ecosystem IDs (Pro only)",
		mcplib.WithString("ecosystem_ids", mcplib.Required(), mcplib.Description("Comma-separated ecosystem IDs")),
	)
	h := s.passthrough(rootdata.EpProjectsByEcosystems, func(req mcplib.CallToolRequest) any {
		ids, _ := stringArg(req, "ecosystem_ids")
		return rootdata.ProjectsByEcosystemsRequest{EcosystemIDs: ids}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getProjectsByEcosystem(ecosystem_ids='1,2,3')`,
	}
}

// ─── getProjectsByTags ────────────────────────────────────────────────────────

func (s *Server) toolGetProjectsByTags() tool {
	t := newTool("getProjectsByTags", "Get projects by tag IDs (Pro only)",
		mcplib.WithString("tag_ids", mcplib.Required(), mcplib.Description("Comma-separated tag IDs")),
	)
	h := s.passthrough(rootdata.EpProjectsByTags, func(req mcplib.CallToolRequest) any {
		ids, _ := stringArg(req, "tag_ids")
		return rootdata.ProjectsByTagsRequest{TagIDs: ids}
	})
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: h},
		example:    `getProjectsByTags(tag_ids='10,11,12')`,
	}
}

// withInteger adds an integer property.  Fractional numbers fail the
// argument validation.
func withInteger(name string, opts ...mcplib.PropertyOption) mcplib.ToolOption {
	return mcplib.WithNumber(name, append(opts, func(schema map[string]any) {
		schema["type"] = "integer"
	})...)
}

// numberEnum restricts the numeric property to the given values.
func numberEnum(vals ...float64) mcplib.PropertyOption {
	return func(schema map[string]any) {
		schema["enum"] = vals
	}
}

func fmtMax(label string, limit int) string {
	return fmt.Sprintf("%s (max: %d)", label, limit)
}
