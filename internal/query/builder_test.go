package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUnknownTagMatchesPages(t *testing.T) {
	assert.Equal(t, Build("pages", Params{}), Build("definitely-not-a-mode", Params{}))
}

func TestBuildUnknownTagUsesCustomQuery(t *testing.T) {
	custom := `[:find ?e :where [?e :block/name "x"]]`
	assert.Equal(t, custom, Build("whatever", Params{Custom: custom}))
}

func TestBuildPagesByTag(t *testing.T) {
	q := Build("pages", Params{Tag: "Project"})
	assert.Contains(t, q, `:block/tags`)
	assert.Contains(t, q, `"project"`, "tag names are canonicalized to lowercase")
}

func TestBuildPagesByProperty(t *testing.T) {
	q := Build("pages", Params{Property: "Type"})
	assert.Contains(t, q, `:block/properties`)
	assert.Contains(t, q, `:type`)
	assert.NotContains(t, q, `(= ?v`)

	q = Build("pages", Params{Property: "type", Value: "book"})
	assert.Contains(t, q, `[(= ?v "book")]`)
}

func TestBuildSearch(t *testing.T) {
	q := Build("search", Params{Text: "kubernetes"})
	assert.Contains(t, q, `clojure.string/includes?`)
	assert.Contains(t, q, `"kubernetes"`)
}

func TestBuildTodosDefaultMarkers(t *testing.T) {
	q := Build("todos", Params{})
	for _, m := range DefaultMarkers {
		assert.Contains(t, q, `"`+m+`"`)
	}
	assert.Contains(t, q, `:block/marker`)
}

func TestBuildTodosCustomMarkers(t *testing.T) {
	q := Build("todos", Params{Markers: []string{"todo", "done"}})
	assert.Contains(t, q, `"TODO"`)
	assert.Contains(t, q, `"DONE"`)
	assert.NotContains(t, q, `"WAITING"`)
}

func TestBuildBacklinks(t *testing.T) {
	q := Build("backlinks", Params{Page: "My Project"})
	assert.Contains(t, q, `:block/refs`)
	assert.Contains(t, q, `"my project"`)
}

func TestBuildRecent(t *testing.T) {
	q := Build("recent", Params{SinceMS: 1750000000000})
	assert.Contains(t, q, `:block/updated-at`)
	assert.Contains(t, q, `1750000000000`)
}

func TestBuildJournalsAndOrphans(t *testing.T) {
	assert.Contains(t, Build("journals", Params{}), `:block/journal? true`)

	orphans := Build("orphans", Params{})
	assert.Contains(t, orphans, `(not [?b :block/refs ?p])`)
	assert.Contains(t, orphans, `(not [?p :block/journal? true])`, "journal pages are not orphans")
}

func TestEscapingPreventsQueryInjection(t *testing.T) {
	q := Build("search", Params{Text: `"] [?b :block/content ?x] [(re-find #"`})
	// The payload must arrive inside the string literal, quotes escaped.
	assert.Contains(t, q, `\"]`)
	assert.NotContains(t, q, `""]`)

	// Balanced quoting: escaped quotes aside, the literal still terminates once.
	stripped := strings.ReplaceAll(q, `\"`, ``)
	assert.Equal(t, 2, strings.Count(stripped, `"`))
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "my-key", sanitizeKey("My Key"))
	assert.Equal(t, "type", sanitizeKey(`type")]`), "query metacharacters are stripped")
	assert.Equal(t, "a_b-c2", sanitizeKey("A_b-C2"))
}
