package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/shopcrawl/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Text_strips_boilerplate(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Widget - Example Shop</title></head>
<body>
<nav><a href="/">Home</a><a href="/products">Products</a></nav>
<main>
<h1>Widget</h1>
<p>A sturdy widget for everyday use. Available in three colors and ships
within two business days from our warehouse.</p>
<p>Price: 9.99</p>
</main>
<footer>Copyright 2026 Example Shop</footer>
</body>
</html>`

	ext := trafilatura.NewExtractor()
	text, err := ext.Text(html)
	require.NoError(t, err)

	assert.Contains(t, text, "sturdy widget")
	assert.Contains(t, text, "9.99")
	assert.NotContains(t, text, "Copyright 2026")
}

func TestExtractor_Text_rejects_empty_input(t *testing.T) {
	t.Parallel()

	ext := trafilatura.NewExtractor()
	_, err := ext.Text("   ")
	require.Error(t, err)
}

func TestExtractor_Text_includes_page_title(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Checkout FAQ</title></head>
<body>
<article>
<p>Orders placed before noon are dispatched the same day. Returns are
accepted within thirty days of delivery.</p>
</article>
</body>
</html>`

	ext := trafilatura.NewExtractor()
	text, err := ext.Text(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Checkout FAQ")
	assert.Contains(t, text, "dispatched the same day")
}
