package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerEntriesResource(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tourdiary://entries",
		"Entries",
		mcp.WithResourceDescription("Every stored tour diary entry in insertion order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.AllEntries(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entries": entries,
			"count":   len(entries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tourdiary://entries/{index}",
		"Entry Details",
		mcp.WithTemplateDescription("A single entry by its position in the stored sequence."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		index, err := templateIndex(request.Params.Arguments["index"])
		if err != nil {
			return nil, err
		}

		dto, err := svc.EntryByIndex(ctx, index)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateIndex accepts the raw template argument, which arrives as a string
// or a single-element string slice depending on the matcher.
func templateIndex(v any) (int, error) {
	var raw string
	switch t := v.(type) {
	case string:
		raw = t
	case []string:
		if len(t) > 0 {
			raw = t[0]
		}
	}
	if raw == "" {
		return 0, fmt.Errorf("entry index is required")
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid entry index %q", raw)
	}
	return i, nil
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
