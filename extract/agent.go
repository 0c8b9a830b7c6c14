package extract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/clipper"
)

// Agent answers extraction requests for one page. It always produces a
// response: failures, including panics, become a degraded generic record
// with the error message set.
type Agent struct {
	extractor clipper.Extractor

	mu        sync.Mutex
	selection string
}

// NewAgent creates an Agent backed by x, usually an Engine.
func NewAgent(x clipper.Extractor) *Agent {
	return &Agent{extractor: x}
}

// CaptureSelection records the user's current text selection.
func (a *Agent) CaptureSelection(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selection = strings.TrimSpace(text)
}

// Selection returns the last captured selection, possibly empty.
func (a *Agent) Selection() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selection
}

// Handle extracts a record from doc. state may be nil.
func (a *Agent) Handle(ctx context.Context, rawURL string, doc clipper.Document, state clipper.StateProvider) (resp *clipper.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = degradedResponse(rawURL, doc, fmt.Errorf("extraction panicked: %v", r))
		}
	}()

	dc := &clipper.DocumentContext{
		URL:       rawURL,
		Document:  doc,
		State:     state,
		Selection: a.Selection(),
	}
	rec, err := a.extractor.Extract(ctx, dc)
	if err != nil {
		return degradedResponse(rawURL, doc, err)
	}
	if rec == nil {
		return degradedResponse(rawURL, doc, clipper.Errorf(clipper.EINTERNAL, "no record produced"))
	}
	rec.Normalize()
	return &clipper.Response{Record: *rec, URL: rawURL}
}

// degradedResponse carries the page title and a prefix of its text. Reading
// the document may itself fail, so each read is guarded.
func degradedResponse(rawURL string, doc clipper.Document, err error) *clipper.Response {
	rec := clipper.NewRecord(clipper.CategoryGeneric)
	if doc != nil {
		rec.Title = guarded(doc.Title)
		rec.Body = prefix(guarded(func() string {
			if body := doc.Find("body"); body != nil {
				return body.Text()
			}
			return ""
		}), clipper.DefaultDegradedBodyLength)
	}
	return &clipper.Response{
		Record: *rec,
		URL:    rawURL,
		Error:  clipper.ErrorMessage(err),
	}
}

func guarded(read func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return read()
}
