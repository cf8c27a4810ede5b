// Package query builds Datalog query strings for Logseq's datascript
// store and resolves natural-language date phrases into journal ranges.
package query

import (
	"fmt"
	"strings"
)

// Params carries the values substituted into a query template. Every
// string is escaped or sanitized before interpolation; callers never need
// to pre-quote anything.
type Params struct {
	Text     string   // text-search needle
	Tag      string   // tag name for pages-by-tag / blocks-by-tag
	Property string   // property key for pages-by-property
	Value    string   // optional property value
	Page     string   // page name for backlinks-to-page
	Markers  []string // task markers for tasks-by-marker-set
	SinceMS  int64    // lower bound (unix ms) for recently-updated
	Custom   string   // raw caller-supplied query, used by unknown tags
}

// DefaultMarkers is the task marker set used when the caller does not
// narrow it.
var DefaultMarkers = []string{"TODO", "DOING", "NOW", "LATER", "WAITING"}

// Standalone queries used by the analyze paths.
const (
	// KnowledgeGaps finds pages other blocks point at that have no
	// content of their own.
	KnowledgeGaps = `[:find (pull ?p [*]) :where [?p :block/name] [?b :block/refs ?p] (not [?c :block/page ?p])]`

	// TagDistribution yields (tag-name, page-count) tuples.
	TagDistribution = `[:find ?name (count ?p) :where [?p :block/tags ?t] [?t :block/name ?name]]`
)

const allPages = `[:find (pull ?p [*]) :where [?p :block/name]]`

// Build returns the Datalog query for a mode tag. Unknown tags never fail:
// they fall back to Params.Custom when present, else to the list-all-pages
// template.
func Build(tag string, p Params) string {
	switch tag {
	case "pages":
		if p.Property != "" {
			return pagesByProperty(p.Property, p.Value)
		}
		if p.Tag != "" {
			return fmt.Sprintf(`[:find (pull ?p [*]) :where [?p :block/tags ?t] [?t :block/name "%s"]]`,
				escapeString(strings.ToLower(p.Tag)))
		}
		return allPages

	case "blocks":
		return fmt.Sprintf(`[:find (pull ?b [*]) :where [?b :block/refs ?r] [?r :block/name "%s"]]`,
			escapeString(strings.ToLower(p.Tag)))

	case "search":
		return fmt.Sprintf(`[:find (pull ?b [*]) :where [?b :block/content ?c] [(clojure.string/includes? ?c "%s")]]`,
			escapeString(p.Text))

	case "todos":
		markers := p.Markers
		if len(markers) == 0 {
			markers = DefaultMarkers
		}
		return fmt.Sprintf(`[:find (pull ?b [*]) :where [?b :block/marker ?m] [(contains? #{%s} ?m)]]`,
			markerSet(markers))

	case "journals":
		return `[:find (pull ?p [*]) :where [?p :block/journal? true]]`

	case "backlinks":
		return fmt.Sprintf(`[:find (pull ?b [*]) :where [?b :block/refs ?p] [?p :block/name "%s"]]`,
			escapeString(strings.ToLower(p.Page)))

	case "recent":
		return fmt.Sprintf(`[:find (pull ?p [*]) :where [?p :block/updated-at ?t] [(> ?t %d)]]`, p.SinceMS)

	case "orphans":
		return `[:find (pull ?p [*]) :where [?p :block/name] (not [?b :block/refs ?p]) (not [?p :block/journal? true])]`

	default:
		if p.Custom != "" {
			return p.Custom
		}
		return allPages
	}
}

func pagesByProperty(key, value string) string {
	k := sanitizeKey(key)
	if value == "" {
		return fmt.Sprintf(`[:find (pull ?p [*]) :where [?p :block/properties ?props] [(get ?props :%s) ?v]]`, k)
	}
	return fmt.Sprintf(`[:find (pull ?p [*]) :where [?p :block/properties ?props] [(get ?props :%s) ?v] [(= ?v "%s")]]`,
		k, escapeString(value))
}

func markerSet(markers []string) string {
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		quoted = append(quoted, `"`+escapeString(m)+`"`)
	}
	return strings.Join(quoted, " ")
}

// escapeString makes a value safe to interpolate inside a double-quoted
// Datalog string literal.
func escapeString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// sanitizeKey reduces a property name to a bare datascript keyword:
// lowercase letters, digits, dashes and underscores only.
func sanitizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}
