package extract

import (
	"strings"

	"github.com/fwojciec/clipper"
)

// SelectionDelimiter separates a prepended selection from the page body.
const SelectionDelimiter = "\n\n---\n\n"

// MergeSelection combines a record with the user's selection. A selection
// that reads as a task list replaces the record: the category becomes text,
// the body is the selection verbatim and the title falls back to
// clipper.TodoTitle. Any other selection is prepended to the body. An empty
// selection leaves the record unchanged. rec is not modified.
func MergeSelection(rec *clipper.Record, selection string) *clipper.Record {
	if strings.TrimSpace(selection) == "" {
		return rec
	}

	if clipper.IsTaskList(selection) {
		return &clipper.Record{
			Category: clipper.CategoryText,
			Title:    firstNonEmpty(rec.Title, clipper.TodoTitle),
			Body:     selection,
			Metadata: map[string]string{},
		}
	}

	merged := *rec
	merged.Metadata = make(map[string]string, len(rec.Metadata))
	for k, v := range rec.Metadata {
		merged.Metadata[k] = v
	}
	merged.Body = selection + SelectionDelimiter + rec.Body
	return &merged
}
