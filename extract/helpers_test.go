package extract_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) clipper.Document {
	t.Helper()
	doc, err := goquery.NewDocument(html)
	require.NoError(t, err)
	return doc
}

func noSleep(context.Context, time.Duration) {}
