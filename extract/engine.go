package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clipper"
)

var _ clipper.Extractor = (*Engine)(nil)

// Engine classifies a document, runs the extractor registered for its
// category and merges the selection into the result. Categories without a
// registered extractor use the fallback.
type Engine struct {
	classifier clipper.Classifier
	fallback   clipper.Extractor
	extractors map[clipper.Category]clipper.Extractor
}

// NewEngine creates an Engine with the given classifier and fallback extractor.
func NewEngine(classifier clipper.Classifier, fallback clipper.Extractor) *Engine {
	return &Engine{
		classifier: classifier,
		fallback:   fallback,
		extractors: make(map[clipper.Category]clipper.Extractor),
	}
}

// Register sets the extractor for a category, replacing any previous one.
func (e *Engine) Register(category clipper.Category, x clipper.Extractor) {
	e.extractors[category] = x
}

// Get returns the extractor registered for category, or nil.
func (e *Engine) Get(category clipper.Category) clipper.Extractor {
	return e.extractors[category]
}

// Extract implements clipper.Extractor.
func (e *Engine) Extract(ctx context.Context, dc *clipper.DocumentContext) (*clipper.Record, error) {
	if dc == nil || dc.Document == nil {
		return nil, clipper.Errorf(clipper.EINVALID, "document required")
	}

	category := e.classifier.Classify(dc.URL, dc.Document)
	x, ok := e.extractors[category]
	if !ok {
		x = e.fallback
	}

	rec, err := x.Extract(ctx, dc)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = clipper.NewRecord(category)
	}
	rec.Normalize()

	return MergeSelection(rec, dc.Selection), nil
}

// Config wires the built-in extractors.
type Config struct {
	Selectors clipper.SelectorTables

	// Distiller backs up the article body chain. Optional.
	Distiller clipper.Distiller

	// Video timing; zero values keep the defaults.
	PollAttempts int
	PollInterval time.Duration
	SettleDelay  time.Duration
	ExpandWait   time.Duration
	Enough       int
	Sleep        SleepFunc

	Logger *slog.Logger
}

// DefaultConfig returns a Config using the built-in selector tables.
func DefaultConfig() Config {
	return Config{Selectors: clipper.DefaultSelectors()}
}

// NewExtractors builds the category extractors described by cfg.
func NewExtractors(cfg Config) map[clipper.Category]clipper.Extractor {
	video := NewVideoExtractor(cfg.Selectors.Video)
	if cfg.PollAttempts > 0 {
		video.PollAttempts = cfg.PollAttempts
	}
	if cfg.PollInterval > 0 {
		video.PollInterval = cfg.PollInterval
	}
	if cfg.SettleDelay > 0 {
		video.SettleDelay = cfg.SettleDelay
	}
	if cfg.ExpandWait > 0 {
		video.ExpandWait = cfg.ExpandWait
	}
	if cfg.Enough > 0 {
		video.Enough = cfg.Enough
	}
	if cfg.Sleep != nil {
		video.Sleep = cfg.Sleep
	}
	video.Logger = cfg.Logger

	return map[clipper.Category]clipper.Extractor{
		clipper.CategoryCommerce: NewCommerceExtractor(cfg.Selectors.Commerce),
		clipper.CategoryArticle:  NewArticleExtractor(cfg.Selectors.Article, cfg.Distiller),
		clipper.CategoryVideo:    video,
		clipper.CategoryGeneric:  NewGenericExtractor(cfg.Selectors.Generic),
	}
}

// New creates an Engine with the built-in classifier and extractors.
func New(cfg Config) *Engine {
	extractors := NewExtractors(cfg)
	e := NewEngine(NewClassifier(cfg.Selectors.Sites), extractors[clipper.CategoryGeneric])
	for category, x := range extractors {
		e.Register(category, x)
	}
	return e
}
