//go:build integration

package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/websoup/websoup"
	"github.com/websoup/websoup/fetch"
)

// dynamicPage serves a short static body that JavaScript expands into a
// much longer article, pushing the rendered/static text ratio well past
// the classification threshold.
const dynamicPage = `<!DOCTYPE html>
<html>
<head><title>App</title></head>
<body>
<div id="app">Loading</div>
<script>
document.getElementById('app').textContent = 'expanded content '.repeat(200);
</script>
</body>
</html>`

func staticPage() string {
	return "<html><head><title>Plain</title></head><body><p>" +
		strings.Repeat("static words ", 200) + "</p></body></html>"
}

func TestClassify_DynamicPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(dynamicPage))
	}))
	defer srv.Close()

	result, err := fetch.Classify(context.Background(), fetch.ProbeConfig{URL: srv.URL})
	require.NoError(t, err)

	assert.True(t, result.Dynamic)
	assert.Greater(t, result.RenderedTextLen, result.StaticTextLen)
	assert.Equal(t, websoup.BackendBrowser, result.Backend())
}

func TestClassify_StaticPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(staticPage()))
	}))
	defer srv.Close()

	result, err := fetch.Classify(context.Background(), fetch.ProbeConfig{URL: srv.URL})
	require.NoError(t, err)

	assert.False(t, result.Dynamic)
	assert.Equal(t, websoup.BackendHTTP, result.Backend())
}

func TestIsDynamic_ErrorPropagates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := fetch.IsDynamic(context.Background(), fetch.ProbeConfig{URL: srv.URL})
	require.Error(t, err)
	assert.Equal(t, websoup.ESTATUS, websoup.ErrorCode(err))
}

func TestChooseBackend(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(staticPage()))
	}))
	defer srv.Close()

	backend, err := fetch.ChooseBackend(context.Background(), fetch.ProbeConfig{URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, websoup.BackendHTTP, backend)
}
