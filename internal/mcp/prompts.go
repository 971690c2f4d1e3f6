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

// In this file: prompts that guide the agent.

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

const researchStrategyPrompt = `When using RootData tools, ALWAYS start by calling listAllTools() to
understand all available capabilities and recommended research strategies
before proceeding with specific tool calls.`

const systemPrompt = `When using RootData MCP tools to research crypto projects, investors, or market trends, follow this process:

1. ALWAYS start by calling listAllTools() to understand available capabilities and recommended research strategies.
2. Select the most appropriate search strategy based on the query type:
   - For project research: First search, then get details, then examine relationships
   - For market analysis: Look at trends, then hot projects, then funding rounds
   - For investor analysis: First identify the investor, then examine their portfolio
3. For complex queries, use advanced tools like analyzeComprehensive or investigateEntity
4. For simple lookups, use basic tools directly after confirming the entity ID

The listAllTools() function will provide detailed information about each tool, including required parameters and usage examples. This will help you construct an effective research plan.

Always present findings with:
- A clear summary of key information
- Relevant metrics with context
- Significant patterns or anomalies
- Limitations of the data where appropriate`

func prompts() []mcpsrv.ServerPrompt {
	return []mcpsrv.ServerPrompt{
		textPrompt("rootdata_system_prompt", "Guides the agent on how to use the RootData tools effectively. Include it at the beginning of the conversation.", systemPrompt),
		textPrompt("rootdata_research_strategy", "RootData research strategy.", researchStrategyPrompt),
	}
}

// textPrompt returns the prompt that consists of a single text message.
func textPrompt(name, description, text string) mcpsrv.ServerPrompt {
	return mcpsrv.ServerPrompt{
		Prompt: mcplib.NewPrompt(name, mcplib.WithPromptDescription(description)),
		Handler: func(ctx context.Context, req mcplib.GetPromptRequest) (*mcplib.GetPromptResult, error) {
			return mcplib.NewGetPromptResult(description, []mcplib.PromptMessage{
				mcplib.NewPromptMessage(mcplib.RoleUser, mcplib.NewTextContent(text)),
			}), nil
		},
	}
}
