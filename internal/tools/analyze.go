package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vthunder/logseq-mcp/internal/format"
	"github.com/vthunder/logseq-mcp/internal/query"
)

// Analyze runs read-only graph-structure reports.
func Analyze(ctx context.Context, api LogseqAPI, args map[string]any) *Result {
	analysis := GetStringArg(args, "analysis", "")
	options := GetMapArg(args, "options")

	if analysis == "" {
		return analysisError(&ValidationError{Param: "analysis"})
	}

	switch analysis {
	case "graph_overview":
		return graphOverview(ctx, api)
	case "knowledge_gaps":
		return knowledgeGaps(ctx, api, GetIntArg(options, "limit", 0))
	case "orphan_pages":
		return orphanPages(ctx, api, GetIntArg(options, "limit", 0))
	case "todo_summary":
		return todoSummary(ctx, api)
	case "tag_distribution":
		return tagDistribution(ctx, api, GetIntArg(options, "limit", 0))
	case "recent_activity":
		return recentActivity(ctx, api, GetIntArg(options, "days", 7), GetIntArg(options, "limit", 0))
	default:
		return analysisError(fmt.Errorf("unknown analysis %q", analysis))
	}
}

func graphOverview(ctx context.Context, api LogseqAPI) *Result {
	pages, err := api.GetAllPages(ctx)
	if err != nil {
		return analysisError(err)
	}

	journals := 0
	withProperties := 0
	for _, p := range pages {
		if p.Journal {
			journals++
		}
		if len(p.Properties) > 0 {
			withProperties++
		}
	}

	tags, err := api.DatascriptQuery(ctx, query.TagDistribution)
	if err != nil {
		return analysisError(err)
	}

	var b strings.Builder
	b.WriteString("Graph overview:\n")
	fmt.Fprintf(&b, "- %d pages total\n", len(pages))
	fmt.Fprintf(&b, "- %d journal pages\n", journals)
	fmt.Fprintf(&b, "- %d regular pages\n", len(pages)-journals)
	fmt.Fprintf(&b, "- %d pages with properties\n", withProperties)
	fmt.Fprintf(&b, "- %d distinct tags\n", len(tags))
	return NewResult(b.String())
}

func knowledgeGaps(ctx context.Context, api LogseqAPI, limit int) *Result {
	rows, err := api.DatascriptQuery(ctx, query.KnowledgeGaps)
	if err != nil {
		return analysisError(err)
	}
	if len(rows) == 0 {
		return NewResult("No knowledge gaps found: every referenced page has content.")
	}
	rows = capRows(rows, limit)
	return NewResult(fmt.Sprintf("Referenced but empty pages (%d):\n%s", len(rows), format.Format(rows, "names")))
}

func orphanPages(ctx context.Context, api LogseqAPI, limit int) *Result {
	rows, err := api.DatascriptQuery(ctx, query.Build("orphans", query.Params{}))
	if err != nil {
		return analysisError(err)
	}
	if len(rows) == 0 {
		return NewResult("No orphan pages found.")
	}
	rows = capRows(rows, limit)
	return NewResult(fmt.Sprintf("Pages with no incoming references (%d):\n%s", len(rows), format.Format(rows, "names")))
}

func todoSummary(ctx context.Context, api LogseqAPI) *Result {
	rows, err := api.DatascriptQuery(ctx, query.Build("todos", query.Params{}))
	if err != nil {
		return analysisError(err)
	}
	if len(rows) == 0 {
		return NewResult("No open tasks found.")
	}

	grouped := map[string][]string{}
	for _, row := range rows {
		rec, ok := format.Unwrap(row).(map[string]any)
		if !ok {
			continue
		}
		marker := blockMarker(rec)
		grouped[marker] = append(grouped[marker], format.Name(rec))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Task summary (%d tasks):\n", len(rows))
	for _, marker := range query.DefaultMarkers {
		items := grouped[marker]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d):\n", marker, len(items))
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return NewResult(b.String())
}

func tagDistribution(ctx context.Context, api LogseqAPI, limit int) *Result {
	rows, err := api.DatascriptQuery(ctx, query.TagDistribution)
	if err != nil {
		return analysisError(err)
	}
	if len(rows) == 0 {
		return NewResult("No tags found.")
	}

	type tagCount struct {
		name  string
		count int
	}
	counts := make([]tagCount, 0, len(rows))
	for _, row := range rows {
		tuple, ok := row.([]any)
		if !ok || len(tuple) != 2 {
			continue
		}
		name, _ := tuple[0].(string)
		n, _ := tuple[1].(float64)
		counts = append(counts, tagCount{name, int(n)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tag distribution (%d tags):\n", len(counts))
	for _, tc := range counts {
		fmt.Fprintf(&b, "- %s: %d\n", tc.name, tc.count)
	}
	return NewResult(b.String())
}

func recentActivity(ctx context.Context, api LogseqAPI, days, limit int) *Result {
	since := timeNow().AddDate(0, 0, -days).UnixMilli()
	rows, err := api.DatascriptQuery(ctx, query.Build("recent", query.Params{SinceMS: since}))
	if err != nil {
		return analysisError(err)
	}
	if len(rows) == 0 {
		return NewResult(fmt.Sprintf("No pages updated in the last %d days.", days))
	}
	rows = capRows(rows, limit)
	return NewResult(fmt.Sprintf("Pages updated in the last %d days (%d):\n%s", days, len(rows), format.Format(rows, "names")))
}

func blockMarker(rec map[string]any) string {
	for _, key := range []string{"marker", "block/marker"} {
		if s, ok := rec[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func capRows(rows []any, limit int) []any {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func analysisError(err error) *Result {
	return NewError(fmt.Sprintf("Analysis error: %v", err))
}
