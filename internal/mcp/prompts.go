// ABOUTME: MCP prompt definitions for jrnl
// ABOUTME: Provides static context to AI assistants about journal capabilities
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "jrnl-getting-started",
		Description: "Introduction to jrnl and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := `jrnl is a plain-text journal: one file per day, organized by year, with date and time markers separating writing sessions.

When to use jrnl:
- User asks to note or record something in their journal
- User asks what they wrote on a given day ("what did I journal yesterday?")
- User wants a quick look at their recent journaling activity

Best practices:
- Dates can be given as day-offsets (-1 is yesterday) or ordinary date strings
- Appended text is stamped with the current date and time automatically
- Entries are the user's personal writing; quote them verbatim when asked

The journal lives on the user's local disk and is always human-editable text.`

		result := &mcp.GetPromptResult{
			Description: "Getting started with jrnl",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: content,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
