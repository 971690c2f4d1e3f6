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

// In this file: the listAllTools catalog.

import (
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const listAllToolsName = "listAllTools"

// Catalog describes the available tools and the research strategies.
type Catalog struct {
	ToolsInfo      ToolsInfo `json:"tools_info"`
	Recommendation string    `json:"recommendation"`
}

type ToolsInfo struct {
	BasicTools       map[string]ToolInfo `json:"basic_tools"`
	AdvancedTools    map[string]ToolInfo `json:"advanced_tools"`
	SearchStrategies map[string]Strategy `json:"search_strategies"`
}

type ToolInfo struct {
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters"`
	Example     string            `json:"example"`
}

type Strategy struct {
	Description     string   `json:"description"`
	RecommendedFlow []string `json:"recommended_flow"`
}

var searchStrategies = map[string]Strategy{
	"project_research": {
		Description: "Research a specific crypto project thoroughly",
		RecommendedFlow: []string{
			"1. Start with searchEntities(query='project_name') to identify the project",
			"2. Use investigateEntity(entity_name='project_name', investigation_scope='all') for deep analysis",
			"3. Optionally use trackTrends and compareEntities to place in context",
		},
	},
	"investor_analysis": {
		Description: "Analyze an investment firm or VC thoroughly",
		RecommendedFlow: []string{
			"1. Start with searchEntities(query='investor_name') to identify the investor",
			"2. Use investigateEntity(entity_name='investor_name', entity_type='investor', investigation_scope='funding') for portfolio analysis",
			"3. Examine recent investments with getFundingRounds or getInvestors",
		},
	},
	"market_trends": {
		Description: "Analyze current market trends and hot projects",
		RecommendedFlow: []string{
			"1. Use trackTrends(category='all', time_range='7d') for a broad market overview",
			"2. Identify hot projects with getHotProjects(days=7) or getXHotProjects()",
			"3. Examine funding trends with getFundingRounds() for recent activity",
		},
	},
	"ecosystem_analysis": {
		Description: "Analyze a specific crypto ecosystem (e.g., Layer 2, DeFi)",
		RecommendedFlow: []string{
			"1. Get ecosystem map with getEcosystemMap() to identify ecosystem IDs",
			"2. Get projects in the ecosystem with getProjectsByEcosystem()",
			"3. Use compareEntities() to compare key projects within the ecosystem",
		},
	},
	"funding_analysis": {
		Description: "Analyze recent funding activities in the crypto space",
		RecommendedFlow: []string{
			"1. Use getFundingRounds() with time filters to get recent rounds",
			"2. Identify top investors with getInvestors()",
			"3. Analyze specific projects that received funding with getProject()",
		},
	},
	"comprehensive_query": {
		Description: "For general crypto market questions or complex queries",
		RecommendedFlow: []string{
			"Use analyzeComprehensive() which intelligently combines multiple endpoints",
		},
	},
}

const recommendation = "Based on the query nature, select either a basic tool for simple lookups, " +
	"an advanced tool for complex analysis, or follow one of the recommended " +
	"search strategies for a guided multi-step approach."

func (s *Server) toolListAllTools() tool {
	t := mcplib.NewTool(listAllToolsName,
		mcplib.WithDescription("List all available tools with descriptions and parameter information, and the recommended research strategies. Call this first."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return tool{
		ServerTool: mcpsrv.ServerTool{Tool: t, Handler: s.handleListAllTools},
		example:    `listAllTools()`,
	}
}

func (s *Server) handleListAllTools(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return resultJSON(s.Catalog())
}

// Catalog returns the catalog of the registered tools.
func (s *Server) Catalog() Catalog {
	info := ToolsInfo{
		BasicTools:       make(map[string]ToolInfo),
		AdvancedTools:    make(map[string]ToolInfo),
		SearchStrategies: searchStrategies,
	}
	for _, t := range s.tools {
		if t.Tool.Name == listAllToolsName {
			continue
		}
		ti := ToolInfo{
			Description: strings.TrimSuffix(t.Tool.Description, tip),
			Parameters:  describeParams(t.Tool),
			Example:     t.example,
		}
		if t.advanced {
			info.AdvancedTools[t.Tool.Name] = ti
		} else {
			info.BasicTools[t.Tool.Name] = ti
		}
	}
	return Catalog{ToolsInfo: info, Recommendation: recommendation}
}

// describeParams returns the human readable description of each parameter
// of the tool input schema.
func describeParams(t mcplib.Tool) map[string]string {
	required := make(map[string]bool, len(t.InputSchema.Required))
	for _, name := range t.InputSchema.Required {
		required[name] = true
	}
	params := make(map[string]string, len(t.InputSchema.Properties))
	for name, p := range t.InputSchema.Properties {
		prop, _ := p.(map[string]any)
		var b strings.Builder
		if d, ok := prop["description"].(string); ok {
			b.WriteString(d)
		}
		if enum, ok := prop["enum"].([]string); ok && len(enum) > 0 {
			fmt.Fprintf(&b, " ('%s')", strings.Join(enum, "', '"))
		}
		if def, ok := prop["default"]; ok {
			fmt.Fprintf(&b, " (default: %v)", def)
		}
		if required[name] {
			b.WriteString(" (required)")
		} else {
			b.WriteString(" (optional)")
		}
		params[name] = strings.TrimSpace(b.String())
	}
	return params
}
