// Package logseq is a client for the Logseq HTTP APIs server: a single
// POST endpoint accepting {"method": string, "args": array} with bearer
// token auth. Typed wrappers cover the editor and query methods this
// server uses; everything goes through Call.
package logseq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vthunder/logseq-mcp/internal/config"
	"github.com/vthunder/logseq-mcp/internal/logging"
)

// Client talks to one Logseq instance.
type Client struct {
	url        string
	host       string
	port       int
	token      string
	httpClient *http.Client
}

// NewClient creates a client from resolved configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		url:   cfg.APIURL(),
		host:  cfg.Host,
		port:  cfg.Port,
		token: cfg.Token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type apiRequest struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Call invokes one remote method and returns the raw JSON result.
// 401 maps to *AuthError, other non-2xx to *RemoteError; transport
// failures are wrapped and propagated unchanged otherwise.
func (c *Client) Call(ctx context.Context, method string, args ...any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	body, err := json.Marshal(apiRequest{Method: method, Args: args})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	logging.Debug("logseq", "call %s args=%s", method, logging.Truncate(string(body), 200))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthError{Host: c.host, Port: c.port}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &RemoteError{Status: resp.StatusCode, Body: logging.Truncate(string(respBody), 200)}
	}

	return json.RawMessage(respBody), nil
}

// GetAllPages returns every page in the graph.
func (c *Client) GetAllPages(ctx context.Context) ([]Page, error) {
	raw, err := c.Call(ctx, "logseq.Editor.getAllPages")
	if err != nil {
		return nil, err
	}
	var pages []Page
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("decode pages: %w", err)
	}
	return pages, nil
}

// GetPage fetches a page by name. Returns (nil, nil) when the page does
// not exist — the API answers null rather than an error status.
func (c *Client) GetPage(ctx context.Context, name string) (*Page, error) {
	raw, err := c.Call(ctx, "logseq.Editor.getPage", name)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var p Page
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &p, nil
}

// GetBlock fetches a block by UUID, optionally with its child tree.
// Returns (nil, nil) when the block does not exist.
func (c *Client) GetBlock(ctx context.Context, uuid string, includeChildren bool) (*Block, error) {
	raw, err := c.Call(ctx, "logseq.Editor.getBlock", uuid, map[string]any{"includeChildren": includeChildren})
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var b Block
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	return &b, nil
}

// GetPageBlocksTree returns the full block tree of a page.
func (c *Client) GetPageBlocksTree(ctx context.Context, name string) ([]Block, error) {
	raw, err := c.Call(ctx, "logseq.Editor.getPageBlocksTree", name)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("decode block tree: %w", err)
	}
	return blocks, nil
}

// GetPageLinkedReferences returns the raw linked-references rows for a page.
func (c *Client) GetPageLinkedReferences(ctx context.Context, name string) ([]any, error) {
	raw, err := c.Call(ctx, "logseq.Editor.getPageLinkedReferences", name)
	if err != nil {
		return nil, err
	}
	return decodeRows(raw)
}

// DatascriptQuery runs a Datalog query against the graph's datascript
// store. Rows come back as arrays (usually single-element tuples wrapping
// a pulled record); decoding to []any preserves whatever shape arrives.
func (c *Client) DatascriptQuery(ctx context.Context, query string) ([]any, error) {
	raw, err := c.Call(ctx, "logseq.DB.datascriptQuery", query)
	if err != nil {
		return nil, err
	}
	return decodeRows(raw)
}

// CreatePage creates a page, optionally as a journal page.
func (c *Client) CreatePage(ctx context.Context, name string, properties map[string]any, opts CreatePageOptions) (*Page, error) {
	if properties == nil {
		properties = map[string]any{}
	}
	raw, err := c.Call(ctx, "logseq.Editor.createPage", name, properties, map[string]any{
		"journal":          opts.Journal,
		"createFirstBlock": opts.CreateFirstBlock,
		"redirect":         opts.Redirect,
	})
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var p Page
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &p, nil
}

// DeletePage removes a page and all of its blocks.
func (c *Client) DeletePage(ctx context.Context, name string) error {
	_, err := c.Call(ctx, "logseq.Editor.deletePage", name)
	return err
}

// AppendBlockInPage appends one block at the end of a page.
func (c *Client) AppendBlockInPage(ctx context.Context, page, content string) (*Block, error) {
	raw, err := c.Call(ctx, "logseq.Editor.appendBlockInPage", page, content)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var b Block
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	return &b, nil
}

// InsertBlock inserts a block relative to a parent block.
func (c *Client) InsertBlock(ctx context.Context, parent, content string, sibling bool) (*Block, error) {
	raw, err := c.Call(ctx, "logseq.Editor.insertBlock", parent, content, map[string]any{"sibling": sibling})
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var b Block
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	return &b, nil
}

// UpdateBlock replaces a block's content.
func (c *Client) UpdateBlock(ctx context.Context, uuid, content string) error {
	_, err := c.Call(ctx, "logseq.Editor.updateBlock", uuid, content)
	return err
}

// RemoveBlock deletes a block and its children.
func (c *Client) RemoveBlock(ctx context.Context, uuid string) error {
	_, err := c.Call(ctx, "logseq.Editor.removeBlock", uuid)
	return err
}

// UpsertBlockProperty sets one key-value property on a block.
func (c *Client) UpsertBlockProperty(ctx context.Context, uuid, key string, value any) error {
	_, err := c.Call(ctx, "logseq.Editor.upsertBlockProperty", uuid, key, value)
	return err
}

// RemoveBlockProperty removes one property from a block.
func (c *Client) RemoveBlockProperty(ctx context.Context, uuid, key string) error {
	_, err := c.Call(ctx, "logseq.Editor.removeBlockProperty", uuid, key)
	return err
}

func decodeRows(raw json.RawMessage) ([]any, error) {
	if isNull(raw) {
		return nil, nil
	}
	var rows []any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
