// ABOUTME: MCP tool implementations for standup journal operations.
// ABOUTME: Registers record_note, show_entry, list_entries, delete_entry, delete_line, search_entries.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/standup/internal/models"
	"github.com/2389-research/standup/internal/session"
)

func (s *Server) registerJournalTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "record_note",
		Description: "Add a note to a day's standup. Aspects: today (what you will work on), yesterday (what you worked on), blocker (what is blocking you).",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"aspect": {"type": "string", "enum": ["today", "yesterday", "blocker"], "description": "Which list the note belongs to"},
				"message": {"type": "string", "description": "The note text"},
				"date": {"type": "string", "description": "Standup date as YYYY-MM-DD (default: today)"}
			},
			"required": ["aspect", "message"]
		}`),
	}, s.handleRecordNote)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "show_entry",
		Description: "Show the standup notes for one day, numbered per list.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "Standup date as YYYY-MM-DD (default: today)"}
			}
		}`),
	}, s.handleShowEntry)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_entries",
		Description: "List every recorded standup in chronological order.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"newest_first": {"type": "boolean", "description": "List the most recent day first"},
				"limit": {"type": "number", "description": "Maximum number of days to return (default: all)"}
			}
		}`),
	}, s.handleListEntries)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "delete_entry",
		Description: "Delete a whole day's standup.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "Standup date as YYYY-MM-DD"}
			},
			"required": ["date"]
		}`),
	}, s.handleDeleteEntry)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "delete_line",
		Description: "Delete a single note from a day's standup by its displayed line number.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "Standup date as YYYY-MM-DD"},
				"aspect": {"type": "string", "enum": ["today", "yesterday", "blocker"], "description": "Which list to delete from"},
				"line": {"type": "number", "description": "1-based line number as shown by show_entry"}
			},
			"required": ["date", "aspect", "line"]
		}`),
	}, s.handleDeleteLine)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "search_entries",
		Description: "Search standup notes by case-insensitive substring. Returns matching days, most recent first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search query text"},
				"limit": {"type": "number", "description": "Maximum number of days to return (default 10)"}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchEntries)
}

// withSession opens a fresh session for one tool call while holding the lock.
func (s *Server) withSession(date string, fn func(*session.Session) (*gomcp.CallToolResult, error)) (*gomcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.open(date)
	if err != nil {
		s.logger.Debug("mcp: failed to open session", "date", date, "err", err)
		return toolError("failed to open journal: %v", err), nil
	}
	return fn(sess)
}

func (s *Server) handleRecordNote(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Aspect  string `json:"aspect"`
		Message string `json:"message"`
		Date    string `json:"date"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	aspect, err := models.ParseAspect(args.Aspect)
	if err != nil {
		return toolError("%v", err), nil
	}
	if strings.TrimSpace(args.Message) == "" {
		return toolError("message is required"), nil
	}

	return s.withSession(args.Date, func(sess *session.Session) (*gomcp.CallToolResult, error) {
		entry, err := sess.Record(aspect, args.Message)
		if err != nil {
			return toolError("failed to record note: %v", err), nil
		}
		return textResult(fmt.Sprintf("Recorded %s note #%d for %s", aspect, len(entry.Notes(aspect)), entry.Date())), nil
	})
}

func (s *Server) handleShowEntry(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	return s.withSession(args.Date, func(sess *session.Session) (*gomcp.CallToolResult, error) {
		return textResult(sess.Show()), nil
	})
}

func (s *Server) handleListEntries(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		NewestFirst *bool `json:"newest_first"`
		Limit       int   `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	order := session.OldestFirst
	if (args.NewestFirst == nil && s.newestFirst) || (args.NewestFirst != nil && *args.NewestFirst) {
		order = session.NewestFirst
	}

	return s.withSession("", func(sess *session.Session) (*gomcp.CallToolResult, error) {
		texts := sess.List(order)
		if len(texts) == 0 {
			return textResult("No standups recorded."), nil
		}
		if args.Limit > 0 && len(texts) > args.Limit {
			texts = texts[:args.Limit]
		}
		return textResult(strings.Join(texts, "\n")), nil
	})
}

func (s *Server) handleDeleteEntry(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Date == "" {
		return toolError("date is required"), nil
	}

	return s.withSession(args.Date, func(sess *session.Session) (*gomcp.CallToolResult, error) {
		_, ok, err := sess.DeleteEntry()
		if err != nil {
			return toolError("failed to delete entry: %v", err), nil
		}
		if !ok {
			return textResult(fmt.Sprintf("No standup recorded for %s.", sess.WorkingDate())), nil
		}
		return textResult(fmt.Sprintf("Deleted standup for %s.", sess.WorkingDate())), nil
	})
}

func (s *Server) handleDeleteLine(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Date   string `json:"date"`
		Aspect string `json:"aspect"`
		Line   int    `json:"line"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Date == "" {
		return toolError("date is required"), nil
	}
	aspect, err := models.ParseAspect(args.Aspect)
	if err != nil {
		return toolError("%v", err), nil
	}
	if args.Line < 1 {
		return toolError("line must be a positive line number"), nil
	}

	return s.withSession(args.Date, func(sess *session.Session) (*gomcp.CallToolResult, error) {
		entry, err := sess.DeleteLine(aspect, args.Line-1)
		if err != nil {
			return toolError("failed to delete line: %v", err), nil
		}
		return textResult(entry.String()), nil
	})
}

func (s *Server) handleSearchEntries(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}
	if args.Query == "" {
		return toolError("query is required"), nil
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}

	return s.withSession("", func(sess *session.Session) (*gomcp.CallToolResult, error) {
		matches := sess.Search(args.Query)
		if len(matches) == 0 {
			return textResult("No matching standups found."), nil
		}
		if len(matches) > args.Limit {
			matches = matches[:args.Limit]
		}
		texts := make([]string, 0, len(matches))
		for _, e := range matches {
			texts = append(texts, e.String())
		}
		return textResult(strings.Join(texts, "\n---\n")), nil
	})
}

func textResult(text string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
