package clipper

// Document is a read-only view over a parsed page. Implementations may be
// backed by a live page that changes between calls, so callers re-read
// values instead of caching them across waits.
type Document interface {
	// Title returns the document title (the <title> element).
	Title() string

	// Find returns the first node matching the CSS selector, or nil.
	// Invalid selectors match nothing.
	Find(selector string) Node

	// FindAll returns every node matching the CSS selector in document order.
	FindAll(selector string) []Node

	// Scripts returns the raw text of every inline script block.
	Scripts() []string

	// HTML returns the serialized document.
	HTML() string
}

// Node is a single element of a Document.
type Node interface {
	// Tag returns the lower-cased element name.
	Tag() string

	// Text returns the visible text of the element, laid out the way a
	// browser renders innerText, trimmed.
	Text() string

	// PrunedText is like Text but first drops descendants matching any of
	// the selectors. The node itself is not modified.
	PrunedText(selectors ...string) string

	// Content returns the concatenated raw text of the element, including
	// script and style contents.
	Content() string

	// Attr returns the attribute value, or "" when absent.
	Attr(name string) string

	// Find returns the first descendant matching the selector, or nil.
	Find(selector string) Node

	// FindAll returns every descendant matching the selector.
	FindAll(selector string) []Node
}

// Activator is implemented by documents that can simulate a user activating
// an element, such as clicking an expand control. Static snapshots do not
// implement it.
type Activator interface {
	Activate(n Node) error
}

// StateProvider exposes page-level state objects (for example
// ytInitialPlayerResponse) as raw JSON, looked up by variable name.
// Values may change between calls after client-side navigation.
type StateProvider interface {
	State(name string) (raw string, ok bool)
}

// StateMap is a static StateProvider.
type StateMap map[string]string

// State implements StateProvider.
func (m StateMap) State(name string) (string, bool) {
	raw, ok := m[name]
	return raw, ok
}

// DocumentContext carries everything one extraction request needs.
type DocumentContext struct {
	// URL is the address the document was loaded from.
	URL string

	// Document is the page being extracted.
	Document Document

	// State holds page state objects; nil when unavailable.
	State StateProvider

	// Selection is the text the user had selected, possibly empty.
	Selection string
}

// StateValue looks up a state object, tolerating a nil provider.
func (dc *DocumentContext) StateValue(name string) (string, bool) {
	if dc == nil || dc.State == nil {
		return "", false
	}
	return dc.State.State(name)
}

// DocumentParser turns raw HTML into a Document.
type DocumentParser interface {
	Parse(html string) (Document, error)
}

// Distilled is the readable content a Distiller recovered from a page.
type Distilled struct {
	Title  string
	Text   string
	Author string
	Date   string
	Image  string
}

// Distiller extracts main content and metadata from raw HTML, removing
// boilerplate. It is the fallback for pages whose markup matches none of
// the configured selectors.
type Distiller interface {
	Distill(html string) (*Distilled, error)
}
