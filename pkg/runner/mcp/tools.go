package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/tourdiary/pkg/entry"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerEventsForDayTool(srv, svc)
	registerMonthCalendarTool(srv, svc)
}

func registerAddEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Record a new tour diary entry. Entries cannot be edited or deleted afterwards."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Short label for the entry."),
		),
		mcp.WithString("place",
			mcp.Description("Where the entry takes place."),
		),
		mcp.WithString("purpose",
			mcp.Description("Why the trip is happening."),
		),
		mcp.WithString("datetime",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Scheduled local time as %s or an RFC3339 timestamp.", entry.LayoutLocal)),
		),
		mcp.WithBoolean("alarm",
			mcp.Description("Remind when the scheduled time arrives."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Topic    string `json:"topic"`
			Place    string `json:"place"`
			Purpose  string `json:"purpose"`
			DateTime string `json:"datetime"`
			Alarm    bool   `json:"alarm"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEntry(ctx, AddEntryOptions{
			Topic:    args.Topic,
			Place:    args.Place,
			Purpose:  args.Purpose,
			DateTime: args.DateTime,
			Alarm:    args.Alarm,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List entries sorted by date, optionally filtered by text in topic, place or purpose."),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive text to match."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := request.GetString("filter", "")
		entries, err := svc.ListEntries(ctx, filter)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"filter":  filter,
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerEventsForDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"events_for_day",
		mcp.WithDescription("Entries scheduled on one calendar day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day as 2006-01-02."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		events, err := svc.EventsForDay(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":   date,
			"events": events,
			"count":  len(events),
		})
	})
}

func registerMonthCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_calendar",
		mcp.WithDescription("Month grid with the days that have entries marked."),
		mcp.WithString("month",
			mcp.Description("Month as 2006-01. Defaults to the current month."),
		),
		mcp.WithNumber("offset",
			mcp.Description("Months to move from the chosen month; negative moves back."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := svc.MonthCalendar(ctx, request.GetString("month", ""), request.GetInt("offset", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(month)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
