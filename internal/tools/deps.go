package tools

import (
	"context"
	"time"

	"github.com/vthunder/logseq-mcp/internal/logseq"
)

// LogseqAPI is the slice of the Logseq client the handlers use. Tests
// substitute a mock.
type LogseqAPI interface {
	GetAllPages(ctx context.Context) ([]logseq.Page, error)
	GetPage(ctx context.Context, name string) (*logseq.Page, error)
	GetBlock(ctx context.Context, uuid string, includeChildren bool) (*logseq.Block, error)
	GetPageBlocksTree(ctx context.Context, name string) ([]logseq.Block, error)
	GetPageLinkedReferences(ctx context.Context, name string) ([]any, error)
	DatascriptQuery(ctx context.Context, query string) ([]any, error)
	CreatePage(ctx context.Context, name string, properties map[string]any, opts logseq.CreatePageOptions) (*logseq.Page, error)
	DeletePage(ctx context.Context, name string) error
	AppendBlockInPage(ctx context.Context, page, content string) (*logseq.Block, error)
	InsertBlock(ctx context.Context, parent, content string, sibling bool) (*logseq.Block, error)
	UpdateBlock(ctx context.Context, uuid, content string) error
	RemoveBlock(ctx context.Context, uuid string) error
	UpsertBlockProperty(ctx context.Context, uuid, key string, value any) error
	RemoveBlockProperty(ctx context.Context, uuid, key string) error
}

// timeNow is swapped in tests that need a fixed clock.
var timeNow = time.Now
