package logseq

import (
	"fmt"
	"time"
)

// Page is a named top-level document in the graph. Journal pages carry
// Journal=true and a JournalDay in yyyymmdd form.
type Page struct {
	ID           int            `json:"id,omitempty"`
	UUID         string         `json:"uuid,omitempty"`
	Name         string         `json:"name"`
	OriginalName string         `json:"originalName,omitempty"`
	Journal      bool           `json:"journal?,omitempty"`
	JournalDay   int            `json:"journalDay,omitempty"`
	Properties   map[string]any `json:"properties,omitempty"`
	UpdatedAt    int64          `json:"updatedAt,omitempty"`
}

// Title returns the display name of the page. Logseq stores Name lowercased
// and keeps the user's casing in OriginalName.
func (p *Page) Title() string {
	if p.OriginalName != "" {
		return p.OriginalName
	}
	return p.Name
}

// Block is one bullet of content with an ordered list of children.
type Block struct {
	UUID       string         `json:"uuid,omitempty"`
	Content    string         `json:"content"`
	Marker     string         `json:"marker,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Children   []Block        `json:"children,omitempty"`
}

// CreatePageOptions controls page creation.
type CreatePageOptions struct {
	Journal          bool
	CreateFirstBlock bool
	Redirect         bool
}

// FormatJournalName renders a date the way Logseq titles its default
// journal pages, e.g. "Aug 23rd, 2026".
func FormatJournalName(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Format("Jan"), ordinal(t.Day()), t.Year())
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
