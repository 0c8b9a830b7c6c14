package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/extract"
	"github.com/fwojciec/clipper/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("empty document keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Decode(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, yaml.DefaultConfig(), cfg)
	})

	t.Run("overrides only listed video settings", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Decode(strings.NewReader(`
video:
  poll_attempts: 20
  poll_interval: 250ms
`))

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Video.PollAttempts)
		assert.Equal(t, 250*time.Millisecond, cfg.Video.PollInterval)
		assert.Equal(t, extract.DefaultSettleDelay, cfg.Video.SettleDelay)
		assert.Equal(t, extract.DefaultExpandWait, cfg.Video.ExpandWait)
	})

	t.Run("replaces a selector chain and keeps the others", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Decode(strings.NewReader(`
selectors:
  commerce:
    price:
      - selector: ".price-now"
      - selector: "[data-price]"
        accessor:
          attr: data-price
          pattern: '(\d+\.\d{2})'
`))

		require.NoError(t, err)
		assert.Equal(t, []clipper.FieldCandidate{
			{Selector: ".price-now"},
			{Selector: "[data-price]", Accessor: clipper.Accessor{Attr: "data-price", Pattern: `(\d+\.\d{2})`}},
		}, cfg.Selectors.Commerce.Price)
		assert.Equal(t, clipper.DefaultSelectors().Commerce.Title, cfg.Selectors.Commerce.Title)
		assert.Equal(t, clipper.DefaultSelectors().Article, cfg.Selectors.Article)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Decode(strings.NewReader("video:\n  pol_attempts: 3\n"))

		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})

	t.Run("rejects negative values", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Decode(strings.NewReader("generic:\n  max_length: -1\n"))

		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Decode(strings.NewReader("video:\n  settle_delay: soon\n"))

		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Load("")

		require.NoError(t, err)
		assert.Equal(t, yaml.DefaultConfig(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "clipper.yaml")
		require.NoError(t, os.WriteFile(path, []byte("generic:\n  max_length: 8000\n"), 0o600))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.Generic.MaxLength)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Equal(t, clipper.ENOTFOUND, clipper.ErrorCode(err))
	})
}

func TestConfig_ExtractConfig(t *testing.T) {
	t.Parallel()

	cfg := yaml.DefaultConfig()
	cfg.Generic.MaxLength = 1200
	cfg.Video.PollAttempts = 3
	cfg.Video.Enough = 40

	got := cfg.ExtractConfig()

	assert.Equal(t, 1200, got.Selectors.Generic.MaxLength)
	assert.Equal(t, 3, got.PollAttempts)
	assert.Equal(t, 40, got.Enough)
	assert.Equal(t, extract.DefaultPollInterval, got.PollInterval)
	assert.Nil(t, got.Distiller)
}
