package clipper

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Task-list heuristics. Any one match marks text as a task list.
var taskListPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^[-*•]\s`),             // bullets
	regexp.MustCompile(`(?m)^\d+\.\s`),             // numbered lines
	regexp.MustCompile(`(?mi)^\[[ x]\]`),           // checkboxes
	regexp.MustCompile(`(?i)todo|to-do|task|item`), // keywords, also inside words
}

// IsTaskList reports whether text looks like a list of tasks.
func IsTaskList(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, re := range taskListPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/embed/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/shorts/([a-zA-Z0-9_-]+)`),
}

// VideoID returns the video identifier carried by a video page URL, or "".
func VideoID(rawURL string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// VideoIdentity names the video a page URL points to. Embedded page state
// is only trusted when it describes the same video.
type VideoIdentity struct {
	ID     string
	Source string
}

// IdentitySourceURL marks identities derived from the page URL.
const IdentitySourceURL = "url"

// VideoIdentityFromURL derives the identity of the video at rawURL.
func VideoIdentityFromURL(rawURL string) VideoIdentity {
	return VideoIdentity{ID: VideoID(rawURL), Source: IdentitySourceURL}
}

// Known reports whether the URL carried a video identifier.
func (v VideoIdentity) Known() bool {
	return v.ID != ""
}

// Matches reports whether embedded state claiming id may be used.
// When the URL carries no identifier nothing can be verified and any
// state is accepted; otherwise ids must be equal.
func (v VideoIdentity) Matches(id string) bool {
	if !v.Known() {
		return true
	}
	return id == v.ID
}

var catalogIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/dp/([A-Z0-9]{10})`),
	regexp.MustCompile(`/gp/product/([A-Z0-9]{10})`),
}

// CatalogID returns the marketplace catalog identifier (ASIN) in rawURL, or "".
func CatalogID(rawURL string) string {
	for _, re := range catalogIDPatterns {
		if m := re.FindStringSubmatch(rawURL); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// DecodeJSONString decodes the escape sequences of a JSON string body
// (without surrounding quotes). Unknown or truncated escapes are kept
// verbatim, so the function never fails.
func DecodeJSONString(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'u':
			r, n := decodeUnicodeEscape(s[i-1:])
			if n == 0 {
				b.WriteString(`\u`)
				continue
			}
			b.WriteRune(r)
			i += n - 2
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// decodeUnicodeEscape decodes a \uXXXX escape (joining surrogate pairs) at
// the start of s and returns the rune and the number of bytes consumed.
func decodeUnicodeEscape(s string) (rune, int) {
	r1, ok := hex4(s)
	if !ok {
		return 0, 0
	}
	if utf16.IsSurrogate(r1) {
		if r2, ok := hex4(s[6:]); ok {
			if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
				return r, 12
			}
		}
		return utf8.RuneError, 6
	}
	return r1, 6
}

func hex4(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
