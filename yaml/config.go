// Package yaml loads clipper configuration files using gopkg.in/yaml.v3.
//
// A file only needs the keys it changes. Values are decoded over the
// built-in defaults, so an omitted section or field keeps its default and a
// listed selector chain replaces the default chain for that field.
//
//	video:
//	  poll_attempts: 20
//	  poll_interval: 250ms
//	generic:
//	  max_length: 8000
//	selectors:
//	  commerce:
//	    price:
//	      - selector: ".price-now"
package yaml

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"gopkg.in/yaml.v3"
)

// Config is the configuration file schema.
type Config struct {
	Selectors clipper.SelectorTables `yaml:"selectors"`
	Video     VideoConfig            `yaml:"video"`
	Generic   GenericConfig          `yaml:"generic"`
}

// VideoConfig tunes the waits of the video extractor.
type VideoConfig struct {
	PollAttempts int           `yaml:"poll_attempts"`
	PollInterval time.Duration `yaml:"poll_interval"`
	SettleDelay  time.Duration `yaml:"settle_delay"`
	ExpandWait   time.Duration `yaml:"expand_wait"`

	// Enough is the description length that ends the search.
	Enough int `yaml:"enough"`
}

// GenericConfig tunes the generic extractor.
type GenericConfig struct {
	MaxLength int `yaml:"max_length"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Selectors: clipper.DefaultSelectors(),
		Video: VideoConfig{
			PollAttempts: extract.DefaultPollAttempts,
			PollInterval: extract.DefaultPollInterval,
			SettleDelay:  extract.DefaultSettleDelay,
			ExpandWait:   extract.DefaultExpandWait,
			Enough:       extract.DefaultEnoughDescription,
		},
		Generic: GenericConfig{
			MaxLength: clipper.DefaultGenericMaxLength,
		},
	}
}

// Load reads the configuration file at path. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, clipper.Errorf(clipper.ENOTFOUND, "config file not found: %s", path)
		}
		return Config{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a configuration document from r over the defaults. Unknown
// keys are rejected so that misspelled settings do not pass silently.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, clipper.Errorf(clipper.EINVALID, "invalid config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration contains invalid values.
func (c Config) Validate() error {
	switch {
	case c.Video.PollAttempts < 0:
		return clipper.Errorf(clipper.EINVALID, "video.poll_attempts must not be negative")
	case c.Video.PollInterval < 0, c.Video.SettleDelay < 0, c.Video.ExpandWait < 0:
		return clipper.Errorf(clipper.EINVALID, "video delays must not be negative")
	case c.Video.Enough < 0:
		return clipper.Errorf(clipper.EINVALID, "video.enough must not be negative")
	case c.Generic.MaxLength < 0:
		return clipper.Errorf(clipper.EINVALID, "generic.max_length must not be negative")
	}
	return nil
}

// ExtractConfig converts the file configuration into engine settings.
// generic.max_length takes precedence over selectors.generic.max_length.
func (c Config) ExtractConfig() extract.Config {
	tables := c.Selectors
	if c.Generic.MaxLength > 0 {
		tables.Generic.MaxLength = c.Generic.MaxLength
	}
	return extract.Config{
		Selectors:    tables,
		PollAttempts: c.Video.PollAttempts,
		PollInterval: c.Video.PollInterval,
		SettleDelay:  c.Video.SettleDelay,
		ExpandWait:   c.Video.ExpandWait,
		Enough:       c.Video.Enough,
	}
}
