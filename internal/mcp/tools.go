// ABOUTME: MCP tool implementations for jrnl
// ABOUTME: Provides tools for appending to, reading, and listing journal entries
package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/mwhite/jrnl/internal/journal"
)

// AppendEntryInput defines the input for the append_entry tool.
type AppendEntryInput struct {
	Date string `json:"date,omitempty" jsonschema:"Optional date specifier: a day-offset like -1 or a date string; empty means today"`
	Text string `json:"text" jsonschema:"The text to append to the journal entry" jsonschema_extras:"required=true"`
}

// AppendEntryOutput defines the output for the append_entry tool.
type AppendEntryOutput struct {
	Date string `json:"date" jsonschema:"The entry's calendar date"`
	Path string `json:"path" jsonschema:"The entry file that was written"`
}

// ReadEntryInput defines the input for the read_entry tool.
type ReadEntryInput struct {
	Date string `json:"date,omitempty" jsonschema:"Optional date specifier: a day-offset like -1 or a date string; empty means today"`
}

// ReadEntryOutput defines the output for the read_entry tool.
type ReadEntryOutput struct {
	Date    string `json:"date" jsonschema:"The entry's calendar date"`
	Path    string `json:"path" jsonschema:"The entry file"`
	Content string `json:"content" jsonschema:"The entry's full text"`
}

// ListEntriesInput defines the input for the list_entries tool.
type ListEntriesInput struct {
	Year  int `json:"year,omitempty" jsonschema:"Restrict to a calendar year"`
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default 20)"`
}

// EntryData is one journal entry in list_entries output.
type EntryData struct {
	Date string `json:"date"`
	Path string `json:"path"`
}

// ListEntriesOutput defines the output for the list_entries tool.
type ListEntriesOutput struct {
	Entries []EntryData `json:"entries"`
	Count   int         `json:"count"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	appendTool := &mcp.Tool{
		Name:        "append_entry",
		Description: "Append timestamped text to a journal entry. Use this when the user asks to note, journal, or record something for a day.",
	}
	mcp.AddTool(s.mcpServer, appendTool, s.handleAppendEntry)

	readTool := &mcp.Tool{
		Name:        "read_entry",
		Description: "Read a day's journal entry. Use this when the user asks what they wrote on a given day.",
	}
	mcp.AddTool(s.mcpServer, readTool, s.handleReadEntry)

	listTool := &mcp.Tool{
		Name:        "list_entries",
		Description: "List existing journal entries, newest first, optionally restricted to a year.",
	}
	mcp.AddTool(s.mcpServer, listTool, s.handleListEntries)
}

// handleAppendEntry implements the append_entry tool.
func (s *Server) handleAppendEntry(ctx context.Context, req *mcp.CallToolRequest, input AppendEntryInput) (*mcp.CallToolResult, AppendEntryOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, AppendEntryOutput{}, fmt.Errorf("text must not be empty")
	}

	now := time.Now()
	date, err := s.resolveDate(input.Date, now)
	if err != nil {
		return nil, AppendEntryOutput{}, err
	}

	yearDir, entryPath := journal.EntryPath(s.cfg.JournalPath, date)
	if err := os.MkdirAll(yearDir, 0755); err != nil {
		return nil, AppendEntryOutput{}, fmt.Errorf("failed to create year directory: %w", err)
	}

	if err := journal.WriteTimestamp(entryPath, now); err != nil {
		return nil, AppendEntryOutput{}, fmt.Errorf("failed to write timestamp: %w", err)
	}

	text := input.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	f, err := os.OpenFile(entryPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, AppendEntryOutput{}, fmt.Errorf("failed to open entry: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		return nil, AppendEntryOutput{}, fmt.Errorf("failed to append text: %w", err)
	}

	output := AppendEntryOutput{
		Date: date.Format(journal.DateLayout),
		Path: entryPath,
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Appended to %s", entryPath),
			},
		},
	}

	return result, output, nil
}

// handleReadEntry implements the read_entry tool.
func (s *Server) handleReadEntry(ctx context.Context, req *mcp.CallToolRequest, input ReadEntryInput) (*mcp.CallToolResult, ReadEntryOutput, error) {
	date, err := s.resolveDate(input.Date, time.Now())
	if err != nil {
		return nil, ReadEntryOutput{}, err
	}

	_, entryPath := journal.EntryPath(s.cfg.JournalPath, date)
	content, err := os.ReadFile(entryPath)
	if err != nil {
		return nil, ReadEntryOutput{}, fmt.Errorf("%s does not exist", entryPath)
	}

	output := ReadEntryOutput{
		Date:    date.Format(journal.DateLayout),
		Path:    entryPath,
		Content: string(content),
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: string(content),
			},
		},
	}

	return result, output, nil
}

// handleListEntries implements the list_entries tool.
func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, err := journal.List(s.cfg.JournalPath)
	if err != nil {
		if os.IsNotExist(err) {
			entries = nil
		} else {
			return nil, ListEntriesOutput{}, fmt.Errorf("failed to list entries: %w", err)
		}
	}

	output := ListEntriesOutput{Entries: []EntryData{}}
	for _, entry := range entries {
		if input.Year != 0 && entry.Date.Year() != input.Year {
			continue
		}
		output.Entries = append(output.Entries, EntryData{
			Date: entry.Date.Format(journal.DateLayout),
			Path: entry.Path,
		})
		if len(output.Entries) >= limit {
			break
		}
	}
	output.Count = len(output.Entries)

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Found %d entries", output.Count),
			},
		},
	}

	return result, output, nil
}
