package clipper

// Accessor describes how a value is read from a matched node.
type Accessor struct {
	// Attr names the attribute to read. Empty means the node's rendered text.
	Attr string `yaml:"attr,omitempty" json:"attr,omitempty"`

	// Pattern is an optional regular expression applied to the raw value.
	// The first capture group is used, or the whole match without groups.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Prune lists descendant selectors removed before text is measured.
	// Ignored when Attr is set.
	Prune []string `yaml:"prune,omitempty" json:"prune,omitempty"`
}

// FieldCandidate pairs a locator with an accessor. Candidates are tried in
// declared order and the first one producing an acceptable value wins.
type FieldCandidate struct {
	Selector string   `yaml:"selector" json:"selector"`
	Accessor Accessor `yaml:"accessor,omitempty" json:"accessor,omitempty"`

	// MinLength rejects values shorter than this many characters.
	MinLength int `yaml:"min_length,omitempty" json:"minLength,omitempty"`

	// Reject is an optional regular expression; matching values are skipped.
	Reject string `yaml:"reject,omitempty" json:"reject,omitempty"`
}

// Text returns a candidate reading the rendered text of selector.
func Text(selector string) FieldCandidate {
	return FieldCandidate{Selector: selector}
}

// Attr returns a candidate reading attribute name of selector.
func Attr(selector, name string) FieldCandidate {
	return FieldCandidate{Selector: selector, Accessor: Accessor{Attr: name}}
}

// SelectorTables is the configuration surface of the extractors: ordered
// locator lists per field per category. Swapping tables changes where values
// are looked up without touching the merge logic.
type SelectorTables struct {
	Sites    SiteRules         `yaml:"sites"`
	Commerce CommerceSelectors `yaml:"commerce"`
	Article  ArticleSelectors  `yaml:"article"`
	Video    VideoSelectors    `yaml:"video"`
	Generic  GenericSelectors  `yaml:"generic"`
}

// SiteRules drive the classifier.
type SiteRules struct {
	// CommerceHosts are hostname substrings of commerce marketplaces.
	CommerceHosts []string `yaml:"commerce_hosts"`

	// VideoHosts are hostname substrings of known video platforms.
	VideoHosts []string `yaml:"video_hosts"`

	// ArticleContainer matches article or blog-post containers.
	ArticleContainer string `yaml:"article_container"`

	// VideoElement matches embedded video players.
	VideoElement string `yaml:"video_element"`
}

// CommerceSelectors locate the fields of a product listing.
type CommerceSelectors struct {
	Title       []FieldCandidate `yaml:"title"`
	Price       []FieldCandidate `yaml:"price"`
	Rating      []FieldCandidate `yaml:"rating"`
	Image       []FieldCandidate `yaml:"image"`
	Description []FieldCandidate `yaml:"description"`
}

// ArticleSelectors locate the fields of an article or blog post.
type ArticleSelectors struct {
	Title  []FieldCandidate `yaml:"title"`
	Author []FieldCandidate `yaml:"author"`
	Date   []FieldCandidate `yaml:"date"`
	Image  []FieldCandidate `yaml:"image"`
	Body   []FieldCandidate `yaml:"body"`
}

// VideoSelectors hold one table per supported platform.
type VideoSelectors struct {
	YouTube PlatformSelectors `yaml:"youtube"`
	Vimeo   PlatformSelectors `yaml:"vimeo"`
	Other   PlatformSelectors `yaml:"other"`
}

// PlatformSelectors locate the fields of a video page.
type PlatformSelectors struct {
	Title     []FieldCandidate `yaml:"title"`
	Channel   []FieldCandidate `yaml:"channel"`
	Thumbnail []FieldCandidate `yaml:"thumbnail"`

	// ExpandControls are "show more" controls activated before the
	// description regions are read.
	ExpandControls []string `yaml:"expand_controls"`

	// DescriptionRegions are read after expansion; the longest text wins.
	DescriptionRegions []string `yaml:"description_regions"`
}

// GenericSelectors locate the main content of an arbitrary page.
type GenericSelectors struct {
	Containers []FieldCandidate `yaml:"containers"`

	// Prune lists elements removed from the page body when no container
	// qualifies.
	Prune []string `yaml:"prune"`

	// MaxLength is the body length, in characters, after which the body is
	// truncated and TruncationMarker appended.
	MaxLength int `yaml:"max_length"`
}
