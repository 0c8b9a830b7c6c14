package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/google/uuid"
)

var _ clipper.ItemService = (*ItemService)(nil)

const itemColumns = "id, title, body, source_url, category, metadata, image_url, content_hash, created_at"

// ItemService implements clipper.ItemService using SQLite.
type ItemService struct {
	db  *DB
	now func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db, now: time.Now}
}

// CreateItem saves a new item.
func (s *ItemService) CreateItem(ctx context.Context, item *clipper.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if item.Metadata == nil {
		item.Metadata = map[string]string{}
	}
	meta, err := json.Marshal(item.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	item.ID = uuid.New().String()
	item.CreatedAt = s.now().UTC()
	item.ContentHash = hashContent(item.Title, item.Body)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.Title, item.Body, item.SourceURL, string(item.Category), string(meta),
		item.ImageURL, item.ContentHash, item.CreatedAt.Format(timeLayout))

	return err
}

// FindItemByID retrieves an item by ID.
func (s *ItemService) FindItemByID(ctx context.Context, id string) (*clipper.Item, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, clipper.Errorf(clipper.ENOTFOUND, "item not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FindItems retrieves items matching the filter, newest first.
func (s *ItemService) FindItems(ctx context.Context, filter clipper.ItemFilter) ([]*clipper.Item, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + itemColumns + " FROM items WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	// rowid breaks ties between items saved within the same instant.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*clipper.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// DeleteItem permanently removes an item.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return clipper.Errorf(clipper.ENOTFOUND, "item not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (*clipper.Item, error) {
	var item clipper.Item
	var category, meta, createdAt string

	if err := sc.Scan(&item.ID, &item.Title, &item.Body, &item.SourceURL, &category, &meta,
		&item.ImageURL, &item.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	item.Category = clipper.Category(category)
	if err := json.Unmarshal([]byte(meta), &item.Metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if item.Metadata == nil {
		item.Metadata = map[string]string{}
	}

	var err error
	item.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &item, nil
}
