package mock

import (
	"context"

	"github.com/fwojciec/clipper"
)

var _ clipper.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of clipper.ItemService.
type ItemService struct {
	CreateItemFn   func(ctx context.Context, item *clipper.Item) error
	FindItemByIDFn func(ctx context.Context, id string) (*clipper.Item, error)
	FindItemsFn    func(ctx context.Context, filter clipper.ItemFilter) ([]*clipper.Item, error)
	DeleteItemFn   func(ctx context.Context, id string) error
}

func (s *ItemService) CreateItem(ctx context.Context, item *clipper.Item) error {
	return s.CreateItemFn(ctx, item)
}

func (s *ItemService) FindItemByID(ctx context.Context, id string) (*clipper.Item, error) {
	return s.FindItemByIDFn(ctx, id)
}

func (s *ItemService) FindItems(ctx context.Context, filter clipper.ItemFilter) ([]*clipper.Item, error) {
	return s.FindItemsFn(ctx, filter)
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.DeleteItemFn(ctx, id)
}

var _ clipper.ItemExporter = (*ItemExporter)(nil)

// ItemExporter is a mock implementation of clipper.ItemExporter.
type ItemExporter struct {
	SaveFn   func(ctx context.Context, item *clipper.Item) error
	CommitFn func() error
	AbortFn  func() error
}

func (e *ItemExporter) Save(ctx context.Context, item *clipper.Item) error {
	return e.SaveFn(ctx, item)
}

func (e *ItemExporter) Commit() error {
	return e.CommitFn()
}

func (e *ItemExporter) Abort() error {
	return e.AbortFn()
}
