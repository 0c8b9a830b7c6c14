package goquery

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Elements that never contribute visible text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
	"iframe":   true,
	"svg":      true,
}

// Elements rendered on their own line.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"caption": true, "dd": true, "details": true, "dialog": true,
	"div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hgroup": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "pre": true,
	"section": true, "summary": true, "table": true, "tr": true, "ul": true,
}

// renderText lays out the text below n the way a browser computes
// innerText: whitespace runs collapse to one space, block elements start
// on a new line, paragraphs are separated by a blank line and <br> breaks
// the line. Preformatted text is kept verbatim.
func renderText(n *html.Node) string {
	var w textWriter
	w.walk(n, false)
	return strings.TrimSpace(w.b.String())
}

type textWriter struct {
	b      strings.Builder
	breaks int
	space  bool
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, pre)
		return
	case html.ElementNode:
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, pre)
		}
		return
	default:
		return
	}

	name := strings.ToLower(n.Data)
	if skippedElements[name] || hasAttr(n, "hidden") {
		return
	}

	switch {
	case name == "br":
		w.newline()
		return
	case name == "p":
		w.lineBreaks(2)
	case blockElements[name]:
		w.lineBreaks(1)
	}
	if name == "pre" || name == "textarea" {
		pre = true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre)
	}

	switch {
	case name == "p":
		w.lineBreaks(2)
	case blockElements[name]:
		w.lineBreaks(1)
	case name == "td" || name == "th":
		w.space = true
	}
}

// lineBreaks requests n line breaks before the next text. Requests do not
// accumulate; the largest pending one wins.
func (w *textWriter) lineBreaks(n int) {
	if n > w.breaks {
		w.breaks = n
	}
}

// newline emits a forced break, as <br> does.
func (w *textWriter) newline() {
	w.flush()
	w.b.WriteByte('\n')
	w.space = false
}

func (w *textWriter) text(s string, pre bool) {
	if pre {
		if s == "" {
			return
		}
		w.flush()
		w.b.WriteString(s)
		return
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			w.space = true
			continue
		}
		w.flush()
		w.b.WriteRune(r)
	}
}

// flush writes pending separators ahead of new text. Nothing is written
// at the start of the output, so leading whitespace disappears.
func (w *textWriter) flush() {
	if w.b.Len() > 0 {
		switch {
		case w.breaks > 0 && !strings.HasSuffix(w.b.String(), "\n"):
			w.b.WriteString(strings.Repeat("\n", w.breaks))
		case w.breaks > 1:
			w.b.WriteString(strings.Repeat("\n", w.breaks-1))
		case w.breaks == 0 && w.space && !strings.HasSuffix(w.b.String(), "\n"):
			w.b.WriteByte(' ')
		}
	}
	w.breaks = 0
	w.space = false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
