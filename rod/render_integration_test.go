//go:build integration

package rod_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	wsrod "github.com/websoup/websoup/rod"
)

func TestRenderer_Render_ExecutesScripts(t *testing.T) {
	t.Parallel()

	renderer, err := wsrod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	rendered, err := renderer.Render(context.Background(), `<!DOCTYPE html>
<html>
<body>
<div id="content">Loading...</div>
<script>
document.getElementById('content').textContent = 'Script Executed';
</script>
</body>
</html>`)

	require.NoError(t, err)
	assert.Contains(t, rendered, "Script Executed")
	assert.NotContains(t, rendered, "Loading...")
}

func TestRenderer_Render_StaticContentUnchanged(t *testing.T) {
	t.Parallel()

	renderer, err := wsrod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	rendered, err := renderer.Render(context.Background(),
		`<html><body><p>plain content</p></body></html>`)

	require.NoError(t, err)
	assert.Contains(t, rendered, "plain content")
}

func TestRenderer_Close_Idempotent(t *testing.T) {
	t.Parallel()

	renderer, err := wsrod.NewRenderer()
	require.NoError(t, err)

	require.NoError(t, renderer.Close())
	require.NoError(t, renderer.Close())
}
