// Package tools implements the four MCP tool handlers. Handlers are thin
// and stateless: they validate arguments, sequence calls against the
// Logseq API, and render text. Every failure is converted to an
// error-prefixed Result at the handler boundary; nothing propagates past
// it.
package tools

// Result is a tool response: a single text payload, flagged when it
// carries an error message instead of content.
type Result struct {
	Text    string
	IsError bool
}

// NewResult wraps success text.
func NewResult(text string) *Result {
	return &Result{Text: text}
}

// NewError wraps error text.
func NewError(text string) *Result {
	return &Result{Text: text, IsError: true}
}
