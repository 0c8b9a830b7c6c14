package extract

import (
	"strings"

	"github.com/fwojciec/clipper"
)

var _ clipper.Classifier = (*Classifier)(nil)

// Classifier assigns a category from the page host and document shape.
// Checks run in a fixed order and the first match wins:
// commerce host, video host, article container, embedded video element.
// Everything else is generic.
type Classifier struct {
	rules clipper.SiteRules
}

// NewClassifier creates a Classifier driven by rules.
func NewClassifier(rules clipper.SiteRules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify implements clipper.Classifier.
func (c *Classifier) Classify(rawURL string, doc clipper.Document) clipper.Category {
	host := clipper.Hostname(rawURL)

	if hostMatches(host, c.rules.CommerceHosts) {
		return clipper.CategoryCommerce
	}
	if hostMatches(host, c.rules.VideoHosts) {
		return clipper.CategoryVideo
	}
	if hasSelector(doc, c.rules.ArticleContainer) {
		return clipper.CategoryArticle
	}
	if hasSelector(doc, c.rules.VideoElement) {
		return clipper.CategoryVideo
	}
	return clipper.CategoryGeneric
}

// hostMatches reports whether host contains any of the patterns.
func hostMatches(host string, patterns []string) bool {
	if host == "" {
		return false
	}
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" && strings.Contains(host, p) {
			return true
		}
	}
	return false
}

func hasSelector(doc clipper.Document, selector string) bool {
	if doc == nil || strings.TrimSpace(selector) == "" {
		return false
	}
	return doc.Find(selector) != nil
}
