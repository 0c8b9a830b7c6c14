package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistiller_Distill(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewDistiller().Distill("  ")

		require.Error(t, err)
		assert.Equal(t, clipper.EINVALID, clipper.ErrorCode(err))
	})

	t.Run("extracts main text without boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Slow Bread</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/recipes">Recipes</a></li>
</ul>
</nav>
<div class="entry">
<h1>Slow Bread</h1>
<p>Long fermentation gives bread a deeper flavour and a more open crumb than any quick method.</p>
<p>Mix the dough in the evening, leave it in the fridge overnight and bake in the morning.</p>
</div>
<footer><p>Copyright 2024 Example Bakery</p></footer>
</body>
</html>`

		out, err := trafilatura.NewDistiller().Distill(html)

		require.NoError(t, err)
		assert.Contains(t, out.Text, "Long fermentation gives bread a deeper flavour")
		assert.NotContains(t, out.Text, "Copyright 2024 Example Bakery")
		assert.NotEmpty(t, out.Title)
	})
}
