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

// In this file: advanced tools that run the composite research queries.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/rootdata-mcp/internal/research"
)

// researchTools returns the composite query tools.
func (s *Server) researchTools() []tool {
	return []tool{
		s.toolAnalyzeComprehensive(),
		s.toolInvestigateEntity(),
		s.toolTrackTrends(),
		s.toolCompareEntities(),
	}
}

// ─── analyzeComprehensive ─────────────────────────────────────────────────────

func (s *Server) toolAnalyzeComprehensive() tool {
	t := newTool("analyzeComprehensive", "Comprehensive analysis combining multiple RootData endpoints for a holistic view",
		mcplib.WithString("query", mcplib.Required(),
			mcplib.Description("Natural language query about crypto projects, investors, or trends")),
		mcplib.WithString("analysis_type",
			mcplib.Description("Type of analysis"),
			mcplib.Enum(research.AnalysisProject, research.AnalysisInvestor, research.AnalysisEcosystem,
				research.AnalysisTrends, research.AnalysisFundraising, research.AnalysisComprehensive),
			mcplib.DefaultString(research.AnalysisComprehensive)),
		mcplib.WithString("timeframe", mcplib.Description("Time period for analysis (e.g., '7d', '30d', '2024-01')")),
		mcplib.WithString("depth",
			mcplib.Description("Level of detail"),
			mcplib.Enum(research.DepthBasic, research.DepthDetailed, research.DepthFull),
			mcplib.DefaultString(research.DepthDetailed)),
		mcplib.WithBoolean("include_related", mcplib.Description("Include related entities"), mcplib.DefaultBool(false)),
	)
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.handleAnalyzeComprehensive},
		advanced:   true,
		example:    `analyzeComprehensive(query='Ethereum Layer 2 solutions', analysis_type='comprehensive', depth='detailed', include_related=true)`,
	}
}

func (s *Server) handleAnalyzeComprehensive(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	ar := research.AnalysisRequest{IncludeRelated: boolArg(req, "include_related", false)}
	ar.Query, _ = stringArg(req, "query")
	ar.AnalysisType, _ = stringArg(req, "analysis_type")
	ar.Timeframe, _ = stringArg(req, "timeframe")
	ar.Depth, _ = stringArg(req, "depth")

	res, err := s.rs.Analyze(ctx, ar)
	if err != nil {
		return resultErr(err), nil
	}
	return resultJSON(res)
}

// ─── investigateEntity ────────────────────────────────────────────────────────

func (s *Server) toolInvestigateEntity() tool {
	t := newTool("investigateEntity", "Deep dive into a specific entity with all related information",
		mcplib.WithString("entity_name", mcplib.Required(), mcplib.Description("Name of the project, investor, or person")),
		mcplib.WithString("entity_type",
			mcplib.Description("Type of entity"),
			mcplib.Enum("project", "investor", "person", "auto"),
			mcplib.DefaultString("auto")),
		mcplib.WithString("investigation_scope",
			mcplib.Description("What aspects to investigate"),
			mcplib.Enum(research.ScopeBasic, research.ScopeFunding, research.ScopeSocial, research.ScopeEcosystem, research.ScopeAll),
			mcplib.DefaultString(research.ScopeBasic)),
	)
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.handleInvestigateEntity},
		advanced:   true,
		example:    `investigateEntity(entity_name='Arbitrum', entity_type='project', investigation_scope='all')`,
	}
}

func (s *Server) handleInvestigateEntity(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	var ir research.InvestigationRequest
	ir.EntityName, _ = stringArg(req, "entity_name")
	typ, _ := stringArg(req, "entity_type")
	ir.EntityType = research.ParseEntityType(typ)
	ir.Scope, _ = stringArg(req, "investigation_scope")

	res, err := s.rs.Investigate(ctx, ir)
	if err != nil {
		return resultErr(err), nil
	}
	return resultJSON(res)
}

// ─── trackTrends ──────────────────────────────────────────────────────────────

func (s *Server) toolTrackTrends() tool {
	t := newTool("trackTrends", "Track market trends across projects, funding, and social metrics",
		mcplib.WithString("category", mcplib.Required(),
			mcplib.Description("Category to track"),
			mcplib.Enum(research.CategoryHotProjects, research.CategoryFunding, research.CategoryJobChanges,
				research.CategoryNewTokens, research.CategoryEcosystem, research.CategoryAll)),
		mcplib.WithString("time_range",
			mcplib.Description("Time range"),
			mcplib.Enum("1d", "7d", "30d", "3m"),
			mcplib.DefaultString("7d")),
		mcplib.WithString("ecosystem", mcplib.Description("Filter by ecosystem name")),
		mcplib.WithString("tags", mcplib.Description("Filter by tags, comma-separated tag names")),
		withInteger("min_funding", mcplib.Description("Minimum funding amount (USD)"), mcplib.Min(0)),
	)
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.handleTrackTrends},
		advanced:   true,
		example:    `trackTrends(category='funding', time_range='30d', ecosystem='Layer 2', min_funding=5000000)`,
	}
}

func (s *Server) handleTrackTrends(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	tr := research.TrendsRequest{MinFunding: optInt64(req, "min_funding")}
	tr.Category, _ = stringArg(req, "category")
	tr.TimeRange, _ = stringArg(req, "time_range")
	tr.Ecosystem, _ = stringArg(req, "ecosystem")
	tr.Tags, _ = stringArg(req, "tags")

	res, err := s.rs.Trends(ctx, tr)
	if err != nil {
		return resultErr(err), nil
	}
	return resultJSON(res)
}

// ─── compareEntities ──────────────────────────────────────────────────────────

func (s *Server) toolCompareEntities() tool {
	t := newTool("compareEntities", "Compare multiple projects or investors side by side",
		mcplib.WithArray("entities", mcplib.Required(),
			mcplib.Description("List of entity names to compare"),
			mcplib.Items(map[string]any{"type": "string"}),
			minItems(1)),
		mcplib.WithString("compare_type",
			mcplib.Description("Type of comparison"),
			mcplib.Enum(research.CompareMetrics, research.CompareFunding, research.CompareEcosystem, research.CompareSocial, research.CompareAll),
			mcplib.DefaultString(research.CompareAll)),
	)
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.handleCompareEntities},
		advanced:   true,
		example:    `compareEntities(entities=['Ethereum', 'Solana', 'Polygon'], compare_type='all')`,
	}
}

func (s *Server) handleCompareEntities(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	names := stringsArg(req, "entities")
	ct, _ := stringArg(req, "compare_type")

	res, err := s.rs.Compare(ctx, names, ct)
	if err != nil {
		return resultErr(err), nil
	}
	return resultJSON(res)
}

// minItems requires the array property to have at least n elements.
func minItems(n int) mcplib.PropertyOption {
	return func(schema map[string]any) {
		schema["minItems"] = n
	}
}
