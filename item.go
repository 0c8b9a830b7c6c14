package clipper

import (
	"context"
	"time"
)

// Item is a saved extraction result.
type Item struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	SourceURL   string            `json:"sourceUrl"`
	Category    Category          `json:"category"`
	Metadata    map[string]string `json:"metadata"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	ContentHash string            `json:"contentHash"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.Title == "" && i.Body == "" {
		return Errorf(EINVALID, "item title or body required")
	}
	if !i.Category.Valid() {
		return Errorf(EINVALID, "unknown item category %q", i.Category)
	}
	return nil
}

// NewItem maps an extraction response onto the persistence shape. The record
// image (imageUrl, or thumbnailUrl for video) is promoted to ImageURL.
func NewItem(resp *Response) *Item {
	rec := resp.Record
	rec.Normalize()

	meta := make(map[string]string, len(rec.Metadata))
	for k, v := range rec.Metadata {
		meta[k] = v
	}

	image := meta[MetaImageURL]
	if image == "" {
		image = meta[MetaThumbnailURL]
	}

	return &Item{
		Title:     rec.Title,
		Body:      rec.Body,
		SourceURL: resp.URL,
		Category:  rec.Category,
		Metadata:  meta,
		ImageURL:  image,
	}
}

// ItemService represents a service for managing saved items.
type ItemService interface {
	// CreateItem saves a new item and sets its ID, hash and creation time.
	CreateItem(ctx context.Context, item *Item) error

	// FindItemByID retrieves an item by ID.
	// Returns ENOTFOUND if item does not exist.
	FindItemByID(ctx context.Context, id string) (*Item, error)

	// FindItems retrieves items matching the filter, newest first.
	FindItems(ctx context.Context, filter ItemFilter) ([]*Item, error)

	// DeleteItem permanently removes an item.
	// Returns ENOTFOUND if item does not exist.
	DeleteItem(ctx context.Context, id string) error
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	ID        *string   `json:"id"`
	Category  *Category `json:"category"`
	SourceURL *string   `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ItemExporter writes items to an export destination. Saved items become
// visible only after Commit; Abort discards them.
type ItemExporter interface {
	Save(ctx context.Context, item *Item) error
	Commit() error
	Abort() error
}
