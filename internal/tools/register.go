package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type handlerFunc func(ctx context.Context, api LogseqAPI, args map[string]any) *Result

// Register declares the four tools and their input schemas on the MCP
// server.
func Register(s *server.MCPServer, api LogseqAPI) {
	s.AddTool(queryTool(), wrap(api, Query))
	s.AddTool(readTool(), wrap(api, Read))
	s.AddTool(writeTool(), wrap(api, Write))
	s.AddTool(analyzeTool(), wrap(api, Analyze))
}

func wrap(api LogseqAPI, h handlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		if args == nil {
			args = map[string]any{}
		}
		res := h(ctx, api, args)
		if res.IsError {
			return mcp.NewToolResultError(res.Text), nil
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}

func queryTool() mcp.Tool {
	return mcp.NewTool("query",
		mcp.WithDescription("Query the Logseq graph. Modes: pages, blocks, datalog, search, todos, journals, backlinks, recent. datalog runs a raw Datalog query; search/backlinks use the query parameter as their needle."),
		mcp.WithString("mode",
			mcp.Required(),
			mcp.Description("Query mode: pages, blocks, datalog, search, todos, journals, backlinks, or recent"),
		),
		mcp.WithString("query",
			mcp.Description("Raw Datalog query (datalog mode), search text (search mode), or page name (backlinks mode)"),
		),
		mcp.WithObject("filters",
			mcp.Description("Optional filters: tag, property, value, markers (array), limit (max rows), since_days (recent mode window)"),
		),
		mcp.WithString("output",
			mcp.Description("Output mode: summary (default, capped at 20), names (one per line), or full (pretty JSON)"),
		),
	)
}

func readTool() mcp.Tool {
	return mcp.NewTool("read",
		mcp.WithDescription("Read a page, block, or journal range and render its content as indented bullets."),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("What to read: page, block, or journal"),
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("Page name, block UUID, or journal date phrase (e.g. \"today\", \"last week\")"),
		),
		mcp.WithObject("options",
			mcp.Description("Optional settings: include_children (block target, default true)"),
		),
	)
}

func writeTool() mcp.Tool {
	return mcp.NewTool("write",
		mcp.WithDescription("Mutate the graph. Operations: create_page, delete_page, create_block, update_block, delete_block, append_to_page, append_to_journal, set_property, remove_property. Multi-line content appends one block per line."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Write operation to perform"),
		),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Page name, block UUID, or journal date phrase depending on the operation"),
		),
		mcp.WithString("content",
			mcp.Description("Block or page content; one block is created per non-blank line"),
		),
		mcp.WithObject("properties",
			mcp.Description("Key-value properties (create_page, set_property)"),
		),
		mcp.WithObject("options",
			mcp.Description("Operation options: parent_block and sibling (create_block), key (remove_property)"),
		),
	)
}

func analyzeTool() mcp.Tool {
	return mcp.NewTool("analyze",
		mcp.WithDescription("Analyze graph structure. Analyses: graph_overview, knowledge_gaps, orphan_pages, todo_summary, tag_distribution, recent_activity."),
		mcp.WithString("analysis",
			mcp.Required(),
			mcp.Description("Analysis to run"),
		),
		mcp.WithObject("options",
			mcp.Description("Optional settings: limit (max entries), days (recent_activity window, default 7)"),
		),
	)
}
