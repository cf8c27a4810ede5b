// Package format renders datascript query rows and block trees into the
// text shapes the MCP tools return.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vthunder/logseq-mcp/internal/logseq"
)

// SummaryCap bounds how many entries summary mode renders before the
// "... and N more" trailer.
const SummaryCap = 20

// Unwrap peels one level of tuple wrapping from a query row. Datascript
// returns each row as an array, usually single-element, around the pulled
// record; everything downstream works on the record itself.
func Unwrap(row any) any {
	if tuple, ok := row.([]any); ok && len(tuple) == 1 {
		return tuple[0]
	}
	return row
}

// Name extracts a display name from an unwrapped record, trying the
// canonical field names first and falling back to a content prefix.
func Name(rec any) string {
	m, ok := rec.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", rec)
	}
	for _, key := range []string{"name", "block/name", "originalName", "block/original-name", "title"} {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	if c, ok := m["content"].(string); ok && c != "" {
		return prefix(c, 50)
	}
	if c, ok := m["block/content"].(string); ok && c != "" {
		return prefix(c, 50)
	}
	return ""
}

// Format renders query rows under an output mode. Unknown modes render as
// summary, the conversational default.
func Format(rows []any, mode string) string {
	switch mode {
	case "names":
		return names(rows)
	case "full":
		return full(rows)
	default:
		return summary(rows)
	}
}

func names(rows []any) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, Name(Unwrap(row)))
	}
	return strings.Join(lines, "\n")
}

func summary(rows []any) string {
	var b strings.Builder
	shown := len(rows)
	if shown > SummaryCap {
		shown = SummaryCap
	}

	for i := 0; i < shown; i++ {
		rec := Unwrap(rows[i])
		fmt.Fprintf(&b, "%d. %s\n", i+1, summaryLine(rec))
	}
	if rest := len(rows) - shown; rest > 0 {
		fmt.Fprintf(&b, "... and %d more results\n", rest)
	}
	return strings.TrimRight(b.String(), "\n")
}

func summaryLine(rec any) string {
	m, ok := rec.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v", rec)
	}

	var parts []string
	if marker := stringField(m, "marker", "block/marker"); marker != "" {
		parts = append(parts, "["+marker+"]")
	}
	if name := stringField(m, "name", "block/name", "originalName", "block/original-name", "title"); name != "" {
		parts = append(parts, "[["+name+"]]")
	} else if content := stringField(m, "content", "block/content"); content != "" {
		parts = append(parts, prefix(content, 100))
	}
	return strings.Join(parts, " ")
}

func full(rows []any) string {
	unwrapped := make([]any, 0, len(rows))
	for _, row := range rows {
		unwrapped = append(unwrapped, Unwrap(row))
	}
	out, err := json.MarshalIndent(unwrapped, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", unwrapped)
	}
	return string(out)
}

// RenderTree walks blocks depth-first and renders each as an indented
// bullet, two spaces per level. A block with empty content contributes no
// line of its own but its children still render at the same depth.
func RenderTree(blocks []logseq.Block, depth int) string {
	var b strings.Builder
	renderTree(&b, blocks, depth)
	return b.String()
}

func renderTree(b *strings.Builder, blocks []logseq.Block, depth int) {
	for _, blk := range blocks {
		childDepth := depth
		content := strings.TrimSpace(blk.Content)
		if content != "" {
			indent := strings.Repeat("  ", depth)
			if blk.Marker != "" && !strings.HasPrefix(content, blk.Marker) {
				content = blk.Marker + " " + content
			}
			fmt.Fprintf(b, "%s- %s\n", indent, content)
			childDepth = depth + 1
		}
		renderTree(b, blk.Children, childDepth)
	}
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func prefix(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
