package tools

import (
	"context"
	"fmt"

	"github.com/vthunder/logseq-mcp/internal/format"
	"github.com/vthunder/logseq-mcp/internal/query"
)

// Query runs a graph query. mode selects a Datalog template; datalog mode
// passes the caller's raw query through.
func Query(ctx context.Context, api LogseqAPI, args map[string]any) *Result {
	mode := GetStringArg(args, "mode", "pages")
	rawQuery := GetStringArg(args, "query", "")
	filters := GetMapArg(args, "filters")
	output := GetStringArg(args, "output", "summary")

	switch mode {
	case "datalog", "search", "backlinks":
		if rawQuery == "" {
			return queryError(&ValidationError{Param: "query"})
		}
	}

	p := query.Params{
		Tag:      GetStringArg(filters, "tag", ""),
		Property: GetStringArg(filters, "property", ""),
		Value:    GetStringArg(filters, "value", ""),
		Markers:  GetStringSliceArg(filters, "markers", nil),
	}
	switch mode {
	case "datalog":
		p.Custom = rawQuery
	case "search":
		p.Text = rawQuery
	case "backlinks":
		p.Page = rawQuery
	case "blocks":
		if p.Tag == "" {
			p.Tag = rawQuery
		}
		if p.Tag == "" {
			return queryError(&ValidationError{Param: "filters.tag"})
		}
	case "recent":
		days := GetIntArg(filters, "since_days", 7)
		p.SinceMS = timeNow().AddDate(0, 0, -days).UnixMilli()
	}

	rows, err := api.DatascriptQuery(ctx, query.Build(mode, p))
	if err != nil {
		return queryError(err)
	}

	if limit := GetIntArg(filters, "limit", 0); limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	if len(rows) == 0 {
		return NewResult("No results found.")
	}
	return NewResult(format.Format(rows, output))
}

func queryError(err error) *Result {
	return NewError(fmt.Sprintf("Query error: %v", err))
}
