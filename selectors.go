package clipper

// Thresholds used by the default tables.
const (
	DefaultArticleMinBody     = 200
	DefaultCommerceMinBody    = 50
	DefaultGenericMinBody     = 200
	DefaultGenericMaxLength   = 5000
	DefaultDegradedBodyLength = 1000
)

// ratingPattern pulls the numeric score out of "4.5 out of 5 stars".
const ratingPattern = `(?i)(\d+\.?\d*)\s*(?:out of|stars?)`

// DefaultSelectors returns the built-in selector tables. Each call returns
// fresh slices so callers may modify the result.
func DefaultSelectors() SelectorTables {
	articlePrune := []string{"script", "style", "nav", "aside", ".ad", ".advertisement"}
	genericPrune := []string{"script", "style", "nav", "header", "footer", "aside", ".ad"}

	return SelectorTables{
		Sites: SiteRules{
			CommerceHosts:    []string{"amazon."},
			VideoHosts:       []string{"youtube.com", "youtu.be", "vimeo.com"},
			ArticleContainer: `article, .post, .blog-post, [itemprop="blogPost"]`,
			VideoElement:     "video",
		},

		Commerce: CommerceSelectors{
			Title: []FieldCandidate{
				Text("#productTitle"),
				Text("h1.a-size-large"),
				Text(`[data-automation-id="title"]`),
				Text(`h1[data-automation-id="title"]`),
			},
			Price: []FieldCandidate{
				Text(".a-price .a-offscreen"),
				Text("#priceblock_ourprice"),
				Text("#priceblock_dealprice"),
				Text(".a-price-whole"),
				Text(`[data-automation-id="price"]`),
			},
			Rating: []FieldCandidate{
				{Selector: "#acrPopover", Accessor: Accessor{Pattern: ratingPattern}},
				{Selector: "#acrPopover", Accessor: Accessor{Attr: "title", Pattern: ratingPattern}},
				{Selector: ".a-icon-alt", Accessor: Accessor{Pattern: ratingPattern}},
				{Selector: `[data-automation-id="star-rating"]`, Accessor: Accessor{Pattern: ratingPattern}},
				{Selector: `[data-automation-id="star-rating"]`, Accessor: Accessor{Attr: "aria-label", Pattern: ratingPattern}},
			},
			Image: []FieldCandidate{
				Attr("#landingImage", "src"),
				Attr("#landingImage", "data-src"),
				Attr("#landingImage", "data-old-src"),
				Attr("#imgBlkFront", "src"),
				Attr("#main-image", "src"),
				Attr(`[data-automation-id="product-image"] img`, "src"),
				Attr(".a-dynamic-image", "src"),
				Attr(`meta[property="og:image"]`, "content"),
			},
			Description: []FieldCandidate{
				{Selector: "#feature-bullets", MinLength: DefaultCommerceMinBody},
				{Selector: "#productDescription", MinLength: DefaultCommerceMinBody},
				{Selector: "#productDescription_feature_div", MinLength: DefaultCommerceMinBody},
				{Selector: `[data-automation-id="product-description"]`, MinLength: DefaultCommerceMinBody},
			},
		},

		Article: ArticleSelectors{
			Title: []FieldCandidate{
				Text("article h1"),
				Text(".post-title"),
				Text(".entry-title"),
				Text("h1.entry-title"),
				Text(`[itemprop="headline"]`),
				Text("h1.post-title"),
				Attr(`meta[property="og:title"]`, "content"),
			},
			Author: []FieldCandidate{
				Text(`[rel="author"]`),
				Text(".author"),
				Text(".post-author"),
				Text(`[itemprop="author"]`),
				Text(".byline"),
				Attr(`meta[name="author"]`, "content"),
			},
			Date: []FieldCandidate{
				Text("time[datetime]"),
				Attr("time[datetime]", "datetime"),
				Text(".post-date"),
				Text(".entry-date"),
				Text(`[itemprop="datePublished"]`),
				Attr(`[itemprop="datePublished"]`, "content"),
				Text(".published"),
				Attr(`meta[property="article:published_time"]`, "content"),
			},
			Image: []FieldCandidate{
				{Selector: "article img", Accessor: Accessor{Attr: "src"}, Reject: "(?i)avatar"},
				{Selector: ".post-thumbnail img", Accessor: Accessor{Attr: "src"}, Reject: "(?i)avatar"},
				{Selector: ".featured-image img", Accessor: Accessor{Attr: "src"}, Reject: "(?i)avatar"},
				{Selector: `[itemprop="image"]`, Accessor: Accessor{Attr: "src"}, Reject: "(?i)avatar"},
				{Selector: `[itemprop="image"]`, Accessor: Accessor{Attr: "content"}, Reject: "(?i)avatar"},
				Attr(`meta[property="og:image"]`, "content"),
			},
			Body: []FieldCandidate{
				{Selector: "article", Accessor: Accessor{Prune: articlePrune}, MinLength: DefaultArticleMinBody},
				{Selector: ".post-content", Accessor: Accessor{Prune: articlePrune}, MinLength: DefaultArticleMinBody},
				{Selector: ".entry-content", Accessor: Accessor{Prune: articlePrune}, MinLength: DefaultArticleMinBody},
				{Selector: `[itemprop="articleBody"]`, Accessor: Accessor{Prune: articlePrune}, MinLength: DefaultArticleMinBody},
				{Selector: ".post-body", Accessor: Accessor{Prune: articlePrune}, MinLength: DefaultArticleMinBody},
				{Selector: "main article", Accessor: Accessor{Prune: articlePrune}, MinLength: DefaultArticleMinBody},
			},
		},

		Video: VideoSelectors{
			YouTube: PlatformSelectors{
				Title: []FieldCandidate{
					Text("h1.ytd-watch-metadata yt-formatted-string"),
					Text("h1.ytd-video-primary-info-renderer"),
					Attr(`meta[name="title"]`, "content"),
					Attr(`meta[property="og:title"]`, "content"),
				},
				Channel: []FieldCandidate{
					Text("#channel-name a"),
					Text(".ytd-channel-name a"),
					Attr(`[itemprop="author"] link[itemprop="name"]`, "content"),
				},
				Thumbnail: []FieldCandidate{
					Attr(`meta[property="og:image"]`, "content"),
					Attr(`link[itemprop="thumbnailUrl"]`, "href"),
				},
				ExpandControls: []string{
					"ytd-expander #more",
					"ytd-video-secondary-info-renderer #more",
					`tp-yt-paper-button[id="more"]`,
					"#description-inline-expander #expand",
					`button[aria-label*="more"]`,
				},
				DescriptionRegions: []string{
					"ytd-expander #content",
					"ytd-video-secondary-info-renderer #description",
					"#description-inline-expander",
					"#description-text",
					"#description",
					".ytd-video-secondary-info-renderer #description",
					"yt-formatted-string#content-text",
					"yt-formatted-string.style-scope.ytd-video-secondary-info-renderer",
					"ytd-video-secondary-info-renderer yt-formatted-string",
				},
			},
			Vimeo: PlatformSelectors{
				Title:              []FieldCandidate{Text("h1")},
				Thumbnail:          []FieldCandidate{Attr(`meta[property="og:image"]`, "content")},
				DescriptionRegions: []string{".description"},
			},
			Other: PlatformSelectors{
				Thumbnail: []FieldCandidate{
					Attr("video[poster]", "poster"),
					Attr(`meta[property="og:image"]`, "content"),
				},
			},
		},

		Generic: GenericSelectors{
			Containers: []FieldCandidate{
				{Selector: "article", Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
				{Selector: "main", Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
				{Selector: `[role="main"]`, Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
				{Selector: ".content", Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
				{Selector: ".post", Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
				{Selector: ".entry-content", Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
				{Selector: "#content", Accessor: Accessor{Prune: genericPrune}, MinLength: DefaultGenericMinBody},
			},
			Prune:     []string{"script", "style", "nav", "header", "footer", "aside", ".ad", ".advertisement"},
			MaxLength: DefaultGenericMaxLength,
		},
	}
}
