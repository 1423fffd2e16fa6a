// ABOUTME: MCP resource implementations for jrnl
// ABOUTME: Provides dynamic queryable context about the user's journal
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/mwhite/jrnl/internal/dates"
	"github.com/mwhite/jrnl/internal/journal"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	// recent-activity resource
	recentActivity := &mcp.Resource{
		URI:         "jrnl://recent-activity",
		Name:        "Recent Activity",
		Description: "The 10 most recent journal entries with their file paths",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(recentActivity, s.handleRecentActivity)

	// today resource
	todayResource := &mcp.Resource{
		URI:         "jrnl://today",
		Name:        "Today",
		Description: "The full text of today's journal entry",
		MIMEType:    "text/plain",
	}
	s.mcpServer.AddResource(todayResource, s.handleToday)
}

// handleRecentActivity implements the recent-activity resource.
func (s *Server) handleRecentActivity(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := journal.List(s.cfg.JournalPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) > 10 {
		entries = entries[:10]
	}

	recent := make([]EntryData, 0, len(entries))
	for _, entry := range entries {
		recent = append(recent, EntryData{
			Date: entry.Date.Format(journal.DateLayout),
			Path: entry.Path,
		})
	}

	data, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "jrnl://recent-activity",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}

// handleToday implements the today resource.
func (s *Server) handleToday(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := dates.Today(time.Now(), s.cfg.HoursPastMidnightIncludedInDay)
	_, entryPath := journal.EntryPath(s.cfg.JournalPath, today)

	text := "No journal entry for today yet.\n"
	if content, err := os.ReadFile(entryPath); err == nil {
		text = string(content)
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "jrnl://today",
				MIMEType: "text/plain",
				Text:     text,
			},
		},
	}

	return result, nil
}
