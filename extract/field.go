// Package extract turns documents into typed records: site classification,
// per-category extractors built from selector chains, selection merging and
// the always-answering request agent.
package extract

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/clipper"
)

// ExtractField evaluates candidates in declared order and returns the first
// acceptable value, or "" when every candidate misses. A value is acceptable
// when it is non-empty after trimming, at least MinLength characters long
// and not matched by Reject. Selectors or patterns that fail to compile are
// misses.
func ExtractField(doc clipper.Document, candidates []clipper.FieldCandidate) string {
	return extractField(doc, candidates, false)
}

// ExtractFieldRelaxed is ExtractField with MinLength ignored. Extractors use
// it as a last resort so a short value still beats no value.
func ExtractFieldRelaxed(doc clipper.Document, candidates []clipper.FieldCandidate) string {
	return extractField(doc, candidates, true)
}

func extractField(doc clipper.Document, candidates []clipper.FieldCandidate, relaxed bool) string {
	if doc == nil {
		return ""
	}
	for _, c := range candidates {
		if v, ok := evaluate(doc, c, relaxed); ok {
			return v
		}
	}
	return ""
}

func evaluate(doc clipper.Document, c clipper.FieldCandidate, relaxed bool) (string, bool) {
	if strings.TrimSpace(c.Selector) == "" {
		return "", false
	}
	n := doc.Find(c.Selector)
	if n == nil {
		return "", false
	}
	v := ReadNode(n, c.Accessor)
	if v == "" {
		return "", false
	}
	if !relaxed && c.MinLength > 0 && utf8.RuneCountInString(v) < c.MinLength {
		return "", false
	}
	if c.Reject != "" {
		re, ok := compilePattern(c.Reject)
		if !ok || re.MatchString(v) {
			return "", false
		}
	}
	return v, true
}

// ReadNode applies an accessor to n and returns the trimmed value.
func ReadNode(n clipper.Node, a clipper.Accessor) string {
	var raw string
	if a.Attr != "" {
		raw = n.Attr(a.Attr)
	} else {
		raw = n.PrunedText(a.Prune...)
	}

	if a.Pattern != "" {
		re, ok := compilePattern(a.Pattern)
		if !ok {
			return ""
		}
		m := re.FindStringSubmatch(raw)
		switch {
		case m == nil:
			return ""
		case len(m) > 1:
			raw = m[1]
		default:
			raw = m[0]
		}
	}
	return strings.TrimSpace(raw)
}

// Compiled patterns keyed by expression; invalid expressions map to nil.
var patternCache sync.Map

func compilePattern(expr string) (*regexp.Regexp, bool) {
	if v, ok := patternCache.Load(expr); ok {
		re := v.(*regexp.Regexp)
		return re, re != nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		re = nil
	}
	patternCache.Store(expr, re)
	return re, re != nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to limit characters and appends clipper.TruncationMarker.
// Strings within the limit, or a non-positive limit, are returned unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 || runeLen(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + clipper.TruncationMarker
}

// prefix returns at most n characters of s without a marker.
func prefix(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
