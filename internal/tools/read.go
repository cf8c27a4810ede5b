package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/vthunder/logseq-mcp/internal/format"
	"github.com/vthunder/logseq-mcp/internal/logseq"
	"github.com/vthunder/logseq-mcp/internal/query"
)

// Read fetches a page, a block, or a journal range and renders it as
// markdown-style bullets.
func Read(ctx context.Context, api LogseqAPI, args map[string]any) *Result {
	target := GetStringArg(args, "target", "")
	identifier := GetStringArg(args, "identifier", "")
	options := GetMapArg(args, "options")

	if target == "" {
		return readError(&ValidationError{Param: "target"})
	}
	if identifier == "" {
		return readError(&ValidationError{Param: "identifier"})
	}

	switch target {
	case "page":
		return readPage(ctx, api, identifier)
	case "block":
		return readBlock(ctx, api, identifier, GetBoolArg(options, "include_children", true))
	case "journal":
		return readJournal(ctx, api, identifier)
	default:
		return readError(fmt.Errorf("unknown target %q: must be one of page, block, journal", target))
	}
}

func readPage(ctx context.Context, api LogseqAPI, name string) *Result {
	p, err := api.GetPage(ctx, name)
	if err != nil {
		return readError(err)
	}
	if p == nil {
		return readError(&logseq.NotFoundError{Kind: "page", Name: name})
	}

	blocks, err := api.GetPageBlocksTree(ctx, p.Title())
	if err != nil {
		return readError(err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title())
	if tree := format.RenderTree(blocks, 0); tree != "" {
		b.WriteString(tree)
	} else {
		b.WriteString("(empty page)\n")
	}
	return NewResult(b.String())
}

func readBlock(ctx context.Context, api LogseqAPI, uuid string, includeChildren bool) *Result {
	blk, err := api.GetBlock(ctx, uuid, includeChildren)
	if err != nil {
		return readError(err)
	}
	if blk == nil {
		return readError(&logseq.NotFoundError{Kind: "block", Name: uuid})
	}
	return NewResult(format.RenderTree([]logseq.Block{*blk}, 0))
}

func readJournal(ctx context.Context, api LogseqAPI, phrase string) *Result {
	r := query.Resolve(phrase, timeNow())

	rows, err := api.DatascriptQuery(ctx, query.Build("journals", query.Params{}))
	if err != nil {
		return readError(err)
	}

	var pages []string
	for _, row := range rows {
		rec, ok := format.Unwrap(row).(map[string]any)
		if !ok {
			continue
		}
		if r.ContainsDay(journalDay(rec)) {
			pages = append(pages, pageName(rec))
		}
	}
	if len(pages) == 0 {
		return NewResult("No journal entries found for this period.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", r.Title)
	for _, name := range pages {
		fmt.Fprintf(&b, "\n## %s\n", name)
		blocks, err := api.GetPageBlocksTree(ctx, name)
		if err != nil {
			return readError(err)
		}
		b.WriteString(format.RenderTree(blocks, 0))
	}
	return NewResult(b.String())
}

// journalDay reads the yyyymmdd day field from a journal page record,
// which arrives camelCased from editor calls and namespaced from
// datascript pulls.
func journalDay(rec map[string]any) int {
	for _, key := range []string{"journalDay", "block/journal-day"} {
		if v, ok := rec[key].(float64); ok {
			return int(v)
		}
	}
	return 0
}

func pageName(rec map[string]any) string {
	for _, key := range []string{"originalName", "block/original-name", "name", "block/name"} {
		if s, ok := rec[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func readError(err error) *Result {
	return NewError(fmt.Sprintf("Read error: %v", err))
}
