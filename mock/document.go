package mock

import "github.com/fwojciec/clipper"

var (
	_ clipper.Document  = (*Document)(nil)
	_ clipper.Node      = (*Node)(nil)
	_ clipper.Document  = (*LivePage)(nil)
	_ clipper.Activator = (*LivePage)(nil)
)

// Document is a mock implementation of clipper.Document.
type Document struct {
	TitleFn   func() string
	FindFn    func(selector string) clipper.Node
	FindAllFn func(selector string) []clipper.Node
	ScriptsFn func() []string
	HTMLFn    func() string
}

func (d *Document) Title() string {
	return d.TitleFn()
}

func (d *Document) Find(selector string) clipper.Node {
	return d.FindFn(selector)
}

func (d *Document) FindAll(selector string) []clipper.Node {
	return d.FindAllFn(selector)
}

func (d *Document) Scripts() []string {
	return d.ScriptsFn()
}

func (d *Document) HTML() string {
	return d.HTMLFn()
}

// Node is a mock implementation of clipper.Node.
type Node struct {
	TagFn        func() string
	TextFn       func() string
	PrunedTextFn func(selectors ...string) string
	ContentFn    func() string
	AttrFn       func(name string) string
	FindFn       func(selector string) clipper.Node
	FindAllFn    func(selector string) []clipper.Node
}

func (n *Node) Tag() string {
	return n.TagFn()
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) PrunedText(selectors ...string) string {
	return n.PrunedTextFn(selectors...)
}

func (n *Node) Content() string {
	return n.ContentFn()
}

func (n *Node) Attr(name string) string {
	return n.AttrFn(name)
}

func (n *Node) Find(selector string) clipper.Node {
	return n.FindFn(selector)
}

func (n *Node) FindAll(selector string) []clipper.Node {
	return n.FindAllFn(selector)
}

// LivePage is a document that reacts to activation, standing in for a live
// page. Reads go to the embedded Document, which ActivateFn may replace.
type LivePage struct {
	clipper.Document
	ActivateFn func(n clipper.Node) error
}

func (p *LivePage) Activate(n clipper.Node) error {
	return p.ActivateFn(n)
}
