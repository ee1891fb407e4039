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
	registerBikesResource(srv, svc)
	registerBikeTemplate(srv, svc)
}

func registerBikesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"pedal://bikes",
		"Bikes",
		mcp.WithResourceDescription("The rental catalog with bookmark state."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list, err := svc.ListBikes(ctx, false)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"bikes": list,
			"count": len(list),
		})
	})
}

func registerBikeTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"pedal://bikes/{id}",
		"Bike Details",
		mcp.WithTemplateDescription("Detailed information about a single bike."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, err := bikeIDArgument(request.Params.Arguments["id"])
		if err != nil {
			return nil, err
		}
		dto, err := svc.Bike(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"bike": dto})
	})
}

// bikeIDArgument accepts the template variable as a string, or a single
// element list as some clients send it.
func bikeIDArgument(v any) (int, error) {
	switch t := v.(type) {
	case string:
		return strconv.Atoi(t)
	case []string:
		if len(t) == 1 {
			return strconv.Atoi(t[0])
		}
	}
	return 0, fmt.Errorf("bike id is required")
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
