package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/clipper"
)

var _ clipper.Extractor = (*VideoExtractor)(nil)

// Platform names reported in video records.
const (
	PlatformYouTube = "YouTube"
	PlatformVimeo   = "Vimeo"
	PlatformOther   = "Video"
)

// Video extraction defaults.
const (
	DefaultPollAttempts      = 10
	DefaultPollInterval      = 200 * time.Millisecond
	DefaultSettleDelay       = 500 * time.Millisecond
	DefaultExpandWait        = 500 * time.Millisecond
	DefaultEnoughDescription = 100
)

var (
	showMoreRe   = regexp.MustCompile(`(?i)\s*(?:show more|show less)\s*`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// VideoExtractor reads video pages. On YouTube the description is gathered
// from several sources of decreasing trust:
//
//  1. the player response and initial data state objects,
//  2. state assigned in inline scripts, regex-recovered when malformed,
//  3. the visible description, after activating a "show more" control,
//  4. the meta description and JSON-LD.
//
// State is only used when it describes the video named by the URL. The
// longest accepted description wins; once one reaches Enough characters the
// lower-trust sources are not consulted.
type VideoExtractor struct {
	Selectors clipper.VideoSelectors

	// Sleep implements every wait. Tests inject a no-op.
	Sleep SleepFunc

	// PollAttempts and PollInterval bound the wait for page state to catch
	// up with the URL on watch pages, after an initial SettleDelay.
	PollAttempts int
	PollInterval time.Duration
	SettleDelay  time.Duration

	// ExpandWait is the pause after activating a "show more" control.
	ExpandWait time.Duration

	// Enough is the description length that stops the search.
	Enough int

	// Logger receives debug traces of rejected sources. Optional.
	Logger *slog.Logger
}

// NewVideoExtractor creates a VideoExtractor with default timing.
func NewVideoExtractor(s clipper.VideoSelectors) *VideoExtractor {
	return &VideoExtractor{
		Selectors:    s,
		Sleep:        Sleep,
		PollAttempts: DefaultPollAttempts,
		PollInterval: DefaultPollInterval,
		SettleDelay:  DefaultSettleDelay,
		ExpandWait:   DefaultExpandWait,
		Enough:       DefaultEnoughDescription,
	}
}

// Extract implements clipper.Extractor.
func (x *VideoExtractor) Extract(ctx context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
	host := clipper.Hostname(dc.URL)
	switch {
	case strings.Contains(host, "youtube.com"), strings.Contains(host, "youtu.be"):
		return x.extractYouTube(ctx, dc), nil
	case strings.Contains(host, "vimeo.com"):
		return x.extractPlatform(ctx, dc, PlatformVimeo, x.Selectors.Vimeo), nil
	}
	return x.extractPlatform(ctx, dc, PlatformOther, x.Selectors.Other), nil
}

func (x *VideoExtractor) extractYouTube(ctx context.Context, dc *clipper.DocumentContext) *clipper.Record {
	id := clipper.VideoIdentityFromURL(dc.URL)
	if strings.Contains(dc.URL, "/watch") && dc.State != nil {
		x.awaitIdentity(ctx, dc, id)
	}

	doc := dc.Document
	s := x.Selectors.YouTube

	channel := ExtractField(doc, s.Channel)
	if channel == "" {
		if raw, ok := dc.StateValue(StatePlayerResponse); ok {
			channel = playerAuthor(raw, id)
		}
	}

	return videoRecord(
		PlatformYouTube,
		firstNonEmpty(ExtractField(doc, s.Title), doc.Title()),
		channel,
		ExtractField(doc, s.Thumbnail),
		x.youTubeDescription(ctx, dc, id),
	)
}

func (x *VideoExtractor) extractPlatform(ctx context.Context, dc *clipper.DocumentContext, platform string, s clipper.PlatformSelectors) *clipper.Record {
	doc := dc.Document

	var best longest
	x.describeFromMarkup(ctx, doc, s, &best)

	return videoRecord(
		platform,
		firstNonEmpty(ExtractField(doc, s.Title), doc.Title()),
		ExtractField(doc, s.Channel),
		ExtractField(doc, s.Thumbnail),
		best.text,
	)
}

// awaitIdentity gives client-side navigation time to replace the player
// state: it waits SettleDelay, then polls until the state names the URL's
// video. Extraction proceeds whatever the outcome.
func (x *VideoExtractor) awaitIdentity(ctx context.Context, dc *clipper.DocumentContext, id clipper.VideoIdentity) bool {
	x.sleep(ctx, x.SettleDelay)
	settled := poll(ctx, x.PollAttempts, x.PollInterval, x.sleep, func() bool {
		raw, ok := dc.StateValue(StatePlayerResponse)
		if !ok {
			return false
		}
		stateID := playerVideoID(raw)
		return stateID != "" && id.Matches(stateID)
	})
	if !settled {
		x.logger().Debug("video state did not settle", "videoId", id.ID, "attempts", x.PollAttempts)
	}
	return settled
}

func (x *VideoExtractor) youTubeDescription(ctx context.Context, dc *clipper.DocumentContext, id clipper.VideoIdentity) string {
	var best longest

	// Both state objects share the top tier; a strictly longer value wins.
	if raw, ok := dc.StateValue(StatePlayerResponse); ok {
		x.consider(&best, StatePlayerResponse, raw, id, playerDescription)
	}
	if raw, ok := dc.StateValue(StateInitialData); ok {
		x.consider(&best, StateInitialData, raw, id, initialDataDescription)
	}

	if !best.enough(x.threshold()) {
		x.describeFromScripts(dc.Document, id, &best)
	}
	if !best.enough(x.threshold()) {
		x.describeFromMarkup(ctx, dc.Document, x.Selectors.YouTube, &best)
	}
	if !best.enough(x.threshold()) {
		x.describeFromMetadata(dc.Document, &best)
	}
	return best.text
}

type descriptionReader func(raw string, id clipper.VideoIdentity) (string, error)

func (x *VideoExtractor) consider(best *longest, source, raw string, id clipper.VideoIdentity, read descriptionReader) {
	desc, err := read(raw, id)
	if err != nil {
		x.logger().Debug("video description source rejected", "source", source, "reason", err)
		return
	}
	best.offer(desc)
}

func (x *VideoExtractor) describeFromScripts(doc clipper.Document, id clipper.VideoIdentity, best *longest) {
	for _, script := range doc.Scripts() {
		if best.enough(x.threshold()) {
			return
		}
		if obj, ok := assignedObject(script, playerAssignRe); ok {
			x.consider(best, "script "+StatePlayerResponse, obj, id, playerDescription)
		} else if strings.Contains(script, "shortDescription") {
			x.consider(best, "script shortDescription", script, id, playerDescription)
		}
		if obj, ok := assignedObject(script, dataAssignRe); ok {
			x.consider(best, "script "+StateInitialData, obj, id, initialDataDescription)
		}
	}
}

// describeFromMarkup reads the visible description regions, expanding
// collapsed descriptions first when the document supports it. Every region
// is read and the longest wins.
func (x *VideoExtractor) describeFromMarkup(ctx context.Context, doc clipper.Document, s clipper.PlatformSelectors, best *longest) {
	x.expand(ctx, doc, s.ExpandControls)
	for _, sel := range s.DescriptionRegions {
		if n := doc.Find(sel); n != nil {
			best.offer(regionText(n))
		}
	}
}

func (x *VideoExtractor) expand(ctx context.Context, doc clipper.Document, controls []string) {
	act, ok := doc.(clipper.Activator)
	if !ok {
		return
	}
	ctrl := expandControl(doc, controls)
	if ctrl == nil {
		return
	}
	if err := act.Activate(ctrl); err != nil {
		x.logger().Debug("expand control failed", "error", err)
		return
	}
	x.sleep(ctx, x.ExpandWait)
}

func (x *VideoExtractor) describeFromMetadata(doc clipper.Document, best *longest) {
	if n := doc.Find(`meta[name="description"]`); n != nil {
		best.offer(n.Attr("content"))
	}
	if best.enough(x.threshold()) {
		return
	}
	for _, n := range doc.FindAll(`script[type="application/ld+json"]`) {
		for _, d := range ldDescriptions(n.Content()) {
			best.offer(d)
		}
	}
}

func (x *VideoExtractor) sleep(ctx context.Context, d time.Duration) {
	if x.Sleep == nil {
		Sleep(ctx, d)
		return
	}
	x.Sleep(ctx, d)
}

func (x *VideoExtractor) threshold() int {
	if x.Enough <= 0 {
		return DefaultEnoughDescription
	}
	return x.Enough
}

func (x *VideoExtractor) logger() *slog.Logger {
	if x.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return x.Logger
}

// expandControl finds the first configured control, or a button labelled
// "show more".
func expandControl(doc clipper.Document, controls []string) clipper.Node {
	for _, s := range controls {
		if n := doc.Find(s); n != nil {
			return n
		}
	}
	for _, b := range doc.FindAll("button") {
		if strings.Contains(strings.ToLower(b.Text()), "show more") ||
			strings.Contains(strings.ToLower(b.Attr("aria-label")), "more") {
			return b
		}
	}
	return nil
}

// regionText reads a description region. Formatted strings may carry the
// full text only in their aria-label; containers of several formatted
// strings are joined when that yields more text.
func regionText(n clipper.Node) string {
	text := n.Text()
	if n.Tag() == "yt-formatted-string" {
		text = longerOf(text, n.Attr("aria-label"))
	} else {
		var parts []string
		for _, f := range n.FindAll("yt-formatted-string") {
			if t := longerOf(f.Text(), f.Attr("aria-label")); strings.TrimSpace(t) != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			text = longerOf(text, strings.Join(parts, "\n"))
		}
	}
	return cleanDescription(text)
}

func cleanDescription(s string) string {
	s = showMoreRe.ReplaceAllString(s, "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func longerOf(a, b string) string {
	if runeLen(b) > runeLen(a) {
		return b
	}
	return a
}

// longest keeps the longest description offered so far.
type longest struct {
	text string
}

// offer replaces the current value when text is strictly longer.
func (l *longest) offer(text string) {
	text = strings.TrimSpace(text)
	if runeLen(text) > runeLen(l.text) {
		l.text = text
	}
}

func (l *longest) enough(n int) bool {
	return runeLen(l.text) >= n
}

func videoRecord(platform, title, channel, thumbnail, description string) *clipper.Record {
	parts := []string{"Platform: " + platform}
	if channel != "" {
		parts = append(parts, "Channel: "+channel)
	}
	if description != "" {
		parts = append(parts, "\n\nDescription:\n"+description)
	}

	rec := clipper.NewRecord(clipper.CategoryVideo)
	rec.Title = title
	rec.Body = strings.Join(parts, "\n")
	rec.Metadata[clipper.MetaPlatform] = platform
	rec.Metadata[clipper.MetaChannel] = channel
	rec.Metadata[clipper.MetaThumbnailURL] = thumbnail
	rec.Metadata[clipper.MetaDescription] = description
	return rec
}
