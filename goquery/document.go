// Package goquery implements clipper.Document over PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipper"
)

var (
	_ clipper.DocumentParser = (*Parser)(nil)
	_ clipper.Document       = (*Document)(nil)
	_ clipper.Node           = (*Node)(nil)
)

// Parser parses raw HTML into static documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements clipper.DocumentParser.
func (p *Parser) Parse(html string) (clipper.Document, error) {
	return NewDocument(html)
}

// Document is a static snapshot of a parsed page.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses html into a Document.
func NewDocument(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, clipper.Errorf(clipper.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Title returns the trimmed text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Find returns the first element matching selector, or nil.
// goquery matches nothing for selectors that fail to compile.
func (d *Document) Find(selector string) clipper.Node {
	return first(d.doc.Find(selector))
}

// FindAll returns every element matching selector in document order.
func (d *Document) FindAll(selector string) []clipper.Node {
	return all(d.doc.Find(selector))
}

// Scripts returns the contents of every inline script element.
// Scripts loaded from a src attribute are skipped.
func (d *Document) Scripts() []string {
	var scripts []string
	d.doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, external := s.Attr("src"); external {
			return
		}
		if text := s.Text(); strings.TrimSpace(text) != "" {
			scripts = append(scripts, text)
		}
	})
	return scripts
}

// HTML returns the serialized document.
func (d *Document) HTML() string {
	html, err := d.doc.Html()
	if err != nil {
		return ""
	}
	return html
}

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
}

// Tag returns the lower-cased element name.
func (n *Node) Tag() string {
	return strings.ToLower(goquery.NodeName(n.sel))
}

// Text returns the element's visible text laid out like innerText.
func (n *Node) Text() string {
	return renderText(n.sel.Nodes[0])
}

// PrunedText renders a copy of the element with descendants matching any
// selector removed. The original tree is left intact.
func (n *Node) PrunedText(selectors ...string) string {
	if len(selectors) == 0 {
		return n.Text()
	}
	clone := n.sel.Clone()
	for _, s := range selectors {
		if strings.TrimSpace(s) == "" {
			continue
		}
		clone.Find(s).Remove()
	}
	if clone.Length() == 0 {
		return ""
	}
	return renderText(clone.Nodes[0])
}

// Content returns the raw text of every descendant text node, including
// script and style contents.
func (n *Node) Content() string {
	return n.sel.Text()
}

// Attr returns the attribute value, or "" when absent.
func (n *Node) Attr(name string) string {
	return n.sel.AttrOr(name, "")
}

// Find returns the first descendant matching selector, or nil.
func (n *Node) Find(selector string) clipper.Node {
	return first(n.sel.Find(selector))
}

// FindAll returns every descendant matching selector.
func (n *Node) FindAll(selector string) []clipper.Node {
	return all(n.sel.Find(selector))
}

func first(sel *goquery.Selection) clipper.Node {
	if sel.Length() == 0 {
		return nil
	}
	return &Node{sel: sel.First()}
}

func all(sel *goquery.Selection) []clipper.Node {
	nodes := make([]clipper.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}
