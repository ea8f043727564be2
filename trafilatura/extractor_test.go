package trafilatura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/websoup/websoup"
	"github.com/websoup/websoup/trafilatura"
)

// Ensure Extractor implements websoup.Extractor at compile time.
var _ websoup.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content as text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>Breaking story</h1>
<p>This is important article content that should be extracted in full.</p>
<p>It spans several paragraphs so the extractor has enough signal.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentText, "important article content")
		assert.NotContains(t, result.ContentText, "<p>")
	})

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Breaking story - Example News</title>
<meta property="og:title" content="Breaking story">
</head>
<body>
<main>
<h1>Breaking story</h1>
<p>Enough body text for the extractor to latch onto here.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, websoup.EINVALID, websoup.ErrorCode(err))
	})
}
