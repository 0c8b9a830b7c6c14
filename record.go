package clipper

import (
	"context"
	"net/url"
	"strings"
)

// Category identifies the kind of primary content a page carries.
type Category string

// Supported categories. Each implies a distinct metadata shape.
const (
	CategoryCommerce Category = "commerce"
	CategoryArticle  Category = "article"
	CategoryVideo    Category = "video"
	CategoryGeneric  Category = "generic"
	CategoryText     Category = "text"
)

// Metadata keys used by the category shapes.
const (
	MetaPrice         = "price"
	MetaRating        = "rating"
	MetaCatalogID     = "catalogId"
	MetaImageURL      = "imageUrl"
	MetaAuthor        = "author"
	MetaPublishedDate = "publishedDate"
	MetaPlatform      = "platform"
	MetaChannel       = "channel"
	MetaThumbnailURL  = "thumbnailUrl"
	MetaDescription   = "description"
)

// TruncationMarker is appended to bodies cut at the generic length limit.
const TruncationMarker = "... [truncated]"

// TodoTitle is the title given to task-list selections without one.
const TodoTitle = "Todo List"

// Categories returns all known categories.
func Categories() []Category {
	return []Category{CategoryCommerce, CategoryArticle, CategoryVideo, CategoryGeneric, CategoryText}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// MetadataKeys returns the metadata shape for a category.
// Generic and text records carry no structured metadata.
func MetadataKeys(c Category) []string {
	switch c {
	case CategoryCommerce:
		return []string{MetaPrice, MetaRating, MetaCatalogID, MetaImageURL}
	case CategoryArticle:
		return []string{MetaAuthor, MetaPublishedDate, MetaImageURL}
	case CategoryVideo:
		return []string{MetaPlatform, MetaChannel, MetaThumbnailURL, MetaDescription}
	}
	return nil
}

// Record is the result of one extraction. Every metadata key of the
// category's shape is present; missing values are empty strings.
type Record struct {
	Category Category          `json:"category"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata"`
}

// NewRecord returns an empty record of the given category with its metadata
// shape populated. Unknown categories become generic.
func NewRecord(c Category) *Record {
	if !c.Valid() {
		c = CategoryGeneric
	}
	meta := make(map[string]string)
	for _, k := range MetadataKeys(c) {
		meta[k] = ""
	}
	return &Record{Category: c, Metadata: meta}
}

// Normalize sets an unknown category to generic and adds any missing
// metadata keys of the category's shape.
func (r *Record) Normalize() {
	if !r.Category.Valid() {
		r.Category = CategoryGeneric
	}
	if r.Metadata == nil {
		r.Metadata = make(map[string]string)
	}
	for _, k := range MetadataKeys(r.Category) {
		if _, ok := r.Metadata[k]; !ok {
			r.Metadata[k] = ""
		}
	}
}

// Response is what the extraction agent answers to an extract request.
// Error is set only when extraction failed and the record is degraded.
type Response struct {
	Record
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

// Extractor produces a record for a document. Category extractors and the
// engine that dispatches to them share this interface.
type Extractor interface {
	// Extract never returns a record with missing fields. An error means an
	// unexpected failure; missing or stale page data is not an error.
	Extract(ctx context.Context, dc *DocumentContext) (*Record, error)
}

// Classifier decides which category a document belongs to.
type Classifier interface {
	Classify(rawURL string, doc Document) Category
}

// Hostname returns the lower-cased host of rawURL, or "" if it cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
