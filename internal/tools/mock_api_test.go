package tools

import (
	"context"
	"fmt"

	"github.com/vthunder/logseq-mcp/internal/logseq"
)

// mockAPI implements LogseqAPI with overridable function fields. Unset
// fields fail the call so tests notice unexpected remote traffic.
type mockAPI struct {
	GetAllPagesFunc             func(ctx context.Context) ([]logseq.Page, error)
	GetPageFunc                 func(ctx context.Context, name string) (*logseq.Page, error)
	GetBlockFunc                func(ctx context.Context, uuid string, includeChildren bool) (*logseq.Block, error)
	GetPageBlocksTreeFunc       func(ctx context.Context, name string) ([]logseq.Block, error)
	GetPageLinkedReferencesFunc func(ctx context.Context, name string) ([]any, error)
	DatascriptQueryFunc         func(ctx context.Context, query string) ([]any, error)
	CreatePageFunc              func(ctx context.Context, name string, properties map[string]any, opts logseq.CreatePageOptions) (*logseq.Page, error)
	DeletePageFunc              func(ctx context.Context, name string) error
	AppendBlockInPageFunc       func(ctx context.Context, page, content string) (*logseq.Block, error)
	InsertBlockFunc             func(ctx context.Context, parent, content string, sibling bool) (*logseq.Block, error)
	UpdateBlockFunc             func(ctx context.Context, uuid, content string) error
	RemoveBlockFunc             func(ctx context.Context, uuid string) error
	UpsertBlockPropertyFunc     func(ctx context.Context, uuid, key string, value any) error
	RemoveBlockPropertyFunc     func(ctx context.Context, uuid, key string) error
}

func (m *mockAPI) GetAllPages(ctx context.Context) ([]logseq.Page, error) {
	if m.GetAllPagesFunc == nil {
		return nil, fmt.Errorf("unexpected call: GetAllPages")
	}
	return m.GetAllPagesFunc(ctx)
}

func (m *mockAPI) GetPage(ctx context.Context, name string) (*logseq.Page, error) {
	if m.GetPageFunc == nil {
		return nil, fmt.Errorf("unexpected call: GetPage")
	}
	return m.GetPageFunc(ctx, name)
}

func (m *mockAPI) GetBlock(ctx context.Context, uuid string, includeChildren bool) (*logseq.Block, error) {
	if m.GetBlockFunc == nil {
		return nil, fmt.Errorf("unexpected call: GetBlock")
	}
	return m.GetBlockFunc(ctx, uuid, includeChildren)
}

func (m *mockAPI) GetPageBlocksTree(ctx context.Context, name string) ([]logseq.Block, error) {
	if m.GetPageBlocksTreeFunc == nil {
		return nil, fmt.Errorf("unexpected call: GetPageBlocksTree")
	}
	return m.GetPageBlocksTreeFunc(ctx, name)
}

func (m *mockAPI) GetPageLinkedReferences(ctx context.Context, name string) ([]any, error) {
	if m.GetPageLinkedReferencesFunc == nil {
		return nil, fmt.Errorf("unexpected call: GetPageLinkedReferences")
	}
	return m.GetPageLinkedReferencesFunc(ctx, name)
}

func (m *mockAPI) DatascriptQuery(ctx context.Context, query string) ([]any, error) {
	if m.DatascriptQueryFunc == nil {
		return nil, fmt.Errorf("unexpected call: DatascriptQuery")
	}
	return m.DatascriptQueryFunc(ctx, query)
}

func (m *mockAPI) CreatePage(ctx context.Context, name string, properties map[string]any, opts logseq.CreatePageOptions) (*logseq.Page, error) {
	if m.CreatePageFunc == nil {
		return nil, fmt.Errorf("unexpected call: CreatePage")
	}
	return m.CreatePageFunc(ctx, name, properties, opts)
}

func (m *mockAPI) DeletePage(ctx context.Context, name string) error {
	if m.DeletePageFunc == nil {
		return fmt.Errorf("unexpected call: DeletePage")
	}
	return m.DeletePageFunc(ctx, name)
}

func (m *mockAPI) AppendBlockInPage(ctx context.Context, page, content string) (*logseq.Block, error) {
	if m.AppendBlockInPageFunc == nil {
		return nil, fmt.Errorf("unexpected call: AppendBlockInPage")
	}
	return m.AppendBlockInPageFunc(ctx, page, content)
}

func (m *mockAPI) InsertBlock(ctx context.Context, parent, content string, sibling bool) (*logseq.Block, error) {
	if m.InsertBlockFunc == nil {
		return nil, fmt.Errorf("unexpected call: InsertBlock")
	}
	return m.InsertBlockFunc(ctx, parent, content, sibling)
}

func (m *mockAPI) UpdateBlock(ctx context.Context, uuid, content string) error {
	if m.UpdateBlockFunc == nil {
		return fmt.Errorf("unexpected call: UpdateBlock")
	}
	return m.UpdateBlockFunc(ctx, uuid, content)
}

func (m *mockAPI) RemoveBlock(ctx context.Context, uuid string) error {
	if m.RemoveBlockFunc == nil {
		return fmt.Errorf("unexpected call: RemoveBlock")
	}
	return m.RemoveBlockFunc(ctx, uuid)
}

func (m *mockAPI) UpsertBlockProperty(ctx context.Context, uuid, key string, value any) error {
	if m.UpsertBlockPropertyFunc == nil {
		return fmt.Errorf("unexpected call: UpsertBlockProperty")
	}
	return m.UpsertBlockPropertyFunc(ctx, uuid, key, value)
}

func (m *mockAPI) RemoveBlockProperty(ctx context.Context, uuid, key string) error {
	if m.RemoveBlockPropertyFunc == nil {
		return fmt.Errorf("unexpected call: RemoveBlockProperty")
	}
	return m.RemoveBlockPropertyFunc(ctx, uuid, key)
}
