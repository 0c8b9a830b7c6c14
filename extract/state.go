package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/fwojciec/clipper"
	"github.com/tidwall/gjson"
)

// Names of the page state objects video pages carry.
const (
	StatePlayerResponse = "ytInitialPlayerResponse"
	StateInitialData    = "ytInitialData"
)

var (
	errStaleState     = errors.New("state describes a different video")
	errMalformedState = errors.New("state is not valid JSON")
	errNoDescription  = errors.New("state has no description")
)

var (
	shortDescriptionRe = regexp.MustCompile(`"shortDescription"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	videoDetailsRe     = regexp.MustCompile(`"videoDetails"\s*:`)
	videoIDRe          = regexp.MustCompile(`"videoId"\s*:\s*"([^"]*)"`)

	playerAssignRe = regexp.MustCompile(`ytInitialPlayerResponse["']?\]?\s*=\s*\{`)
	dataAssignRe   = regexp.MustCompile(`ytInitialData["']?\]?\s*=\s*\{`)
)

// playerDescription reads videoDetails.shortDescription from a player
// response. Malformed JSON falls back to a targeted regular expression.
func playerDescription(raw string, id clipper.VideoIdentity) (string, error) {
	if !gjson.Valid(raw) {
		return playerDescriptionFallback(raw, id)
	}
	details := gjson.Get(raw, "videoDetails")
	if !id.Matches(details.Get("videoId").String()) {
		return "", errStaleState
	}
	desc := details.Get("shortDescription").String()
	if strings.TrimSpace(desc) == "" {
		return "", errNoDescription
	}
	return desc, nil
}

// playerDescriptionFallback recovers the description from text that does not
// parse. When the URL names a video the text must name the same one.
func playerDescriptionFallback(raw string, id clipper.VideoIdentity) (string, error) {
	if id.Known() {
		found, ok := fallbackVideoID(raw)
		if !ok || !id.Matches(found) {
			return "", errStaleState
		}
	}
	m := shortDescriptionRe.FindStringSubmatch(raw)
	if m == nil {
		return "", errMalformedState
	}
	desc := clipper.DecodeJSONString(m[1])
	if strings.TrimSpace(desc) == "" {
		return "", errNoDescription
	}
	return desc, nil
}

// fallbackVideoID finds the first videoId following "videoDetails" in text
// that does not parse.
func fallbackVideoID(raw string) (string, bool) {
	loc := videoDetailsRe.FindStringIndex(raw)
	if loc == nil {
		return "", false
	}
	m := videoIDRe.FindStringSubmatch(raw[loc[1]:])
	if m == nil {
		return "", false
	}
	return m[1], true
}

// playerVideoID returns videoDetails.videoId of a parseable player response.
func playerVideoID(raw string) string {
	if !gjson.Valid(raw) {
		return ""
	}
	return gjson.Get(raw, "videoDetails.videoId").String()
}

// playerAuthor returns the channel name of an identity-consistent player response.
func playerAuthor(raw string, id clipper.VideoIdentity) string {
	if !gjson.Valid(raw) {
		return ""
	}
	details := gjson.Get(raw, "videoDetails")
	if !id.Matches(details.Get("videoId").String()) {
		return ""
	}
	return strings.TrimSpace(details.Get("author").String())
}

// initialDataDescription joins the description runs of the secondary info
// renderer in a watch-next payload.
func initialDataDescription(raw string, id clipper.VideoIdentity) (string, error) {
	if !gjson.Valid(raw) {
		return "", errMalformedState
	}
	if !initialDataMatches(raw, id) {
		return "", errStaleState
	}

	var desc string
	gjson.Get(raw, "contents.twoColumnWatchNextResults.results.results.contents").ForEach(func(_, item gjson.Result) bool {
		renderer := item.Get("videoSecondaryInfoRenderer")
		if !renderer.Exists() {
			return true
		}
		if runs := renderer.Get("description.runs"); runs.IsArray() {
			var b strings.Builder
			for _, run := range runs.Array() {
				b.WriteString(run.Get("text").String())
			}
			desc = b.String()
		}
		if desc == "" {
			desc = renderer.Get("attributedDescription.content").String()
		}
		return false
	})
	if strings.TrimSpace(desc) == "" {
		return "", errNoDescription
	}
	return desc, nil
}

// initialDataMatches checks the current endpoint's video id, or when the
// payload has none, whether the URL's id appears anywhere in it.
func initialDataMatches(raw string, id clipper.VideoIdentity) bool {
	if !id.Known() {
		return true
	}
	if endpoint := gjson.Get(raw, "currentVideoEndpoint.watchEndpoint.videoId").String(); endpoint != "" {
		return id.Matches(endpoint)
	}
	return strings.Contains(raw, id.ID)
}

// assignedObject returns the object literal assigned by re in script. The
// slice is cut at the matching closing brace; when braces never balance the
// rest of the script is returned.
func assignedObject(script string, re *regexp.Regexp) (obj string, found bool) {
	loc := re.FindStringIndex(script)
	if loc == nil {
		return "", false
	}
	return balancedObject(script, loc[1]-1), true
}

// balancedObject scans from the opening brace at start to its matching close,
// skipping braces inside string literals.
func balancedObject(s string, start int) string {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

// ldDescriptions returns description values of a JSON-LD block, including
// items of a top-level array or @graph.
func ldDescriptions(raw string) []string {
	if !gjson.Valid(raw) {
		return nil
	}
	var out []string
	var visit func(r gjson.Result)
	visit = func(r gjson.Result) {
		if r.IsArray() {
			for _, item := range r.Array() {
				visit(item)
			}
			return
		}
		if d := r.Get("description"); d.Type == gjson.String {
			out = append(out, d.String())
		} else if d := r.Get("videoDetails.shortDescription"); d.Type == gjson.String {
			out = append(out, d.String())
		}
		// "@" starts a gjson modifier, so the graph key is matched by hand.
		r.ForEach(func(key, value gjson.Result) bool {
			if key.String() == "@graph" && value.IsArray() {
				visit(value)
			}
			return true
		})
	}
	visit(gjson.Parse(raw))
	return out
}
