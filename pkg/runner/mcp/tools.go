package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListBikesTool(srv, svc)
	registerGetBikeTool(srv, svc)
	registerCalendarTool(srv, svc)
	registerQuoteTool(srv, svc)
	registerRentTool(srv, svc)
	registerBookmarkTool(srv, svc)
}

func registerListBikesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_bikes",
		mcp.WithDescription("List rentable bikes with their daily rate and bookmark state."),
		mcp.WithBoolean("bookmarked",
			mcp.Description("Only return bikes the user bookmarked."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := svc.ListBikes(ctx, request.GetBool("bookmarked", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"bikes": list,
			"count": len(list),
		})
	})
}

func registerGetBikeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_bike",
		mcp.WithDescription("Fetch a single bike by identifier."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Bike identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Bike(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"calendar_page",
		mcp.WithDescription("Render a Sunday-first calendar page with selectable days and the highlighted range."),
		mcp.WithString("month",
			mcp.Description("Month to show as YYYY-MM. Defaults to the month of 'from' or the current month."),
		),
		mcp.WithString("from",
			mcp.Description("Optional range start as YYYY-MM-DD."),
		),
		mcp.WithString("to",
			mcp.Description("Optional range end as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Month string `json:"month"`
			From  string `json:"from"`
			To    string `json:"to"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		page, err := svc.Calendar(args.Month, args.From, args.To)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(page)
	})
}

type rentalArgs struct {
	BikeID int    `json:"bikeId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func rentalTool(name, description string) mcp.Tool {
	return mcp.NewTool(
		name,
		mcp.WithDescription(description),
		mcp.WithNumber("bikeId",
			mcp.Required(),
			mcp.Description("Bike identifier."),
		),
		mcp.WithString("from",
			mcp.Required(),
			mcp.Description("First rental day as YYYY-MM-DD; today or later."),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Last rental day as YYYY-MM-DD, inclusive."),
		),
	)
}

func registerQuoteTool(srv *server.MCPServer, svc *Service) {
	tool := rentalTool("quote_rental", "Price a rental: subtotal, service fee and total.")

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args rentalArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res, err := svc.Quote(ctx, args.BikeID, args.From, args.To)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerRentTool(srv *server.MCPServer, svc *Service) {
	tool := rentalTool("rent_bike", "Book a bike for the given dates.")

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args rentalArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		ret, err := svc.Rent(ctx, args.BikeID, args.From, args.To)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(ret)
	})
}

func registerBookmarkTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_bookmark",
		mcp.WithDescription("Star or unstar a bike in the local bookmarks."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Bike identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		on, err := svc.ToggleBookmark(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"id":         id,
			"bookmarked": on,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
