package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/vthunder/logseq-mcp/internal/logseq"
	"github.com/vthunder/logseq-mcp/internal/query"
)

// Write mutates the graph. Multi-step operations (page creation followed
// by per-line appends) run sequentially with no rollback: a failure
// partway leaves the completed steps in place and is reported as an
// error.
func Write(ctx context.Context, api LogseqAPI, args map[string]any) *Result {
	operation := GetStringArg(args, "operation", "")
	target := GetStringArg(args, "target", "")
	content := GetStringArg(args, "content", "")
	properties := GetMapArg(args, "properties")
	options := GetMapArg(args, "options")

	if operation == "" {
		return writeError(&ValidationError{Param: "operation"})
	}
	if target == "" {
		return writeError(&ValidationError{Param: "target"})
	}

	switch operation {
	case "create_page":
		return createPage(ctx, api, target, content, properties)
	case "delete_page":
		if err := api.DeletePage(ctx, target); err != nil {
			return writeError(err)
		}
		return NewResult(fmt.Sprintf("Deleted page %q.", target))
	case "create_block":
		return createBlock(ctx, api, target, content, options)
	case "update_block":
		if content == "" {
			return writeError(&ValidationError{Param: "content"})
		}
		if err := api.UpdateBlock(ctx, target, content); err != nil {
			return writeError(err)
		}
		return NewResult(fmt.Sprintf("Updated block %s.", target))
	case "delete_block":
		if err := api.RemoveBlock(ctx, target); err != nil {
			return writeError(err)
		}
		return NewResult(fmt.Sprintf("Deleted block %s.", target))
	case "append_to_page":
		return appendToPage(ctx, api, target, content)
	case "append_to_journal":
		return appendToJournal(ctx, api, target, content)
	case "set_property":
		return setProperties(ctx, api, target, properties)
	case "remove_property":
		key := GetStringArg(options, "key", "")
		if key == "" {
			return writeError(&ValidationError{Param: "options.key"})
		}
		if err := api.RemoveBlockProperty(ctx, target, key); err != nil {
			return writeError(err)
		}
		return NewResult(fmt.Sprintf("Removed property %q from block %s.", key, target))
	default:
		return writeError(fmt.Errorf("unknown operation %q", operation))
	}
}

func createPage(ctx context.Context, api LogseqAPI, name, content string, properties map[string]any) *Result {
	if _, err := api.CreatePage(ctx, name, properties, logseq.CreatePageOptions{CreateFirstBlock: false}); err != nil {
		return writeError(err)
	}
	lines := contentLines(content)
	for _, line := range lines {
		if _, err := api.AppendBlockInPage(ctx, name, line); err != nil {
			return writeError(err)
		}
	}
	if len(lines) > 0 {
		return NewResult(fmt.Sprintf("Created page %q with %d block(s).", name, len(lines)))
	}
	return NewResult(fmt.Sprintf("Created page %q.", name))
}

func createBlock(ctx context.Context, api LogseqAPI, target, content string, options map[string]any) *Result {
	if content == "" {
		return writeError(&ValidationError{Param: "content"})
	}
	if parent := GetStringArg(options, "parent_block", ""); parent != "" {
		if _, err := api.InsertBlock(ctx, parent, content, GetBoolArg(options, "sibling", false)); err != nil {
			return writeError(err)
		}
		return NewResult(fmt.Sprintf("Created block under %s.", parent))
	}
	if _, err := api.AppendBlockInPage(ctx, target, content); err != nil {
		return writeError(err)
	}
	return NewResult(fmt.Sprintf("Created block in %q.", target))
}

func appendToPage(ctx context.Context, api LogseqAPI, name, content string) *Result {
	if content == "" {
		return writeError(&ValidationError{Param: "content"})
	}
	p, err := api.GetPage(ctx, name)
	if err != nil {
		return writeError(err)
	}
	if p == nil {
		return writeError(&logseq.NotFoundError{Kind: "page", Name: name})
	}

	lines := contentLines(content)
	for _, line := range lines {
		if _, err := api.AppendBlockInPage(ctx, name, line); err != nil {
			return writeError(err)
		}
	}
	return NewResult(fmt.Sprintf("Added %d block(s) to %q.", len(lines), name))
}

// appendToJournal resolves a date phrase, ensures the journal page for the
// range's start day exists, and appends one block per content line.
func appendToJournal(ctx context.Context, api LogseqAPI, phrase, content string) *Result {
	if content == "" {
		return writeError(&ValidationError{Param: "content"})
	}

	r := query.Resolve(phrase, timeNow())
	name := logseq.FormatJournalName(r.Start)

	p, err := api.GetPage(ctx, name)
	if err != nil {
		return writeError(err)
	}
	if p == nil {
		if _, err := api.CreatePage(ctx, name, nil, logseq.CreatePageOptions{Journal: true}); err != nil {
			return writeError(err)
		}
	}

	lines := contentLines(content)
	for _, line := range lines {
		if _, err := api.AppendBlockInPage(ctx, name, line); err != nil {
			return writeError(err)
		}
	}
	return NewResult(fmt.Sprintf("Added %d block(s) to journal %q.", len(lines), name))
}

func setProperties(ctx context.Context, api LogseqAPI, uuid string, properties map[string]any) *Result {
	if len(properties) == 0 {
		return writeError(&ValidationError{Param: "properties"})
	}
	for key, value := range properties {
		if err := api.UpsertBlockProperty(ctx, uuid, key, value); err != nil {
			return writeError(err)
		}
	}
	return NewResult(fmt.Sprintf("Set %d property(ies) on block %s.", len(properties), uuid))
}

// contentLines splits multi-line content into one block per non-blank
// line.
func contentLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func writeError(err error) *Result {
	return NewError(fmt.Sprintf("Write error: %v", err))
}
