package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/websoup/websoup"
	wsquery "github.com/websoup/websoup/goquery"
)

const loginPage = `<!DOCTYPE html>
<html>
<body>
<form method="post" action="/sfuser/connexion">
  <input type="hidden" name="csrf" value="tok-8f3a">
  <input type="text" name="email">
  <input type="password" name="password">
  <input type="checkbox" name="remember" value="on">
  <input type="text" value="unnamed-is-skipped">
  <button type="submit" name="signin" value="1">Sign in</button>
</form>
<form method="get" action="/search">
  <input type="text" name="q" value="preset">
</form>
</body>
</html>`

func TestExtractForm(t *testing.T) {
	t.Parallel()

	doc, err := wsquery.NewParser().Parse(loginPage)
	require.NoError(t, err)

	form, err := websoup.ExtractForm(doc, `form[method="post"]`)
	require.NoError(t, err)

	assert.Equal(t, "/sfuser/connexion", form.Action)
	assert.Equal(t, "post", form.Method)
	assert.Equal(t, "tok-8f3a", form.Fields["csrf"])
	assert.Equal(t, "1", form.Fields["signin"])
	assert.Equal(t, "", form.Fields["email"])
	assert.Equal(t, "", form.Fields["password"])
	assert.NotContains(t, form.Fields, "unnamed-is-skipped")

	// Caller merges credentials into the harvested payload.
	form.Fields["email"] = "dummy@example.com"
	form.Fields["password"] = "secret"
	assert.Equal(t, "dummy@example.com", form.Fields["email"])
}

func TestExtractForm_SecondForm(t *testing.T) {
	t.Parallel()

	doc, err := wsquery.NewParser().Parse(loginPage)
	require.NoError(t, err)

	form, err := websoup.ExtractForm(doc, `form[method="get"]`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"q": "preset"}, form.Fields)
}

func TestExtractForm_NotFound(t *testing.T) {
	t.Parallel()

	doc, err := wsquery.NewParser().Parse("<html><body><p>no forms here</p></body></html>")
	require.NoError(t, err)

	_, err = websoup.ExtractForm(doc, "form")
	require.Error(t, err)
	assert.Equal(t, websoup.ENOTFOUND, websoup.ErrorCode(err))
}

func TestNameValuePairs(t *testing.T) {
	t.Parallel()

	doc, err := wsquery.NewParser().Parse(loginPage)
	require.NoError(t, err)

	el, ok := doc.SelectOne(`form[method="post"]`)
	require.True(t, ok)

	pairs := websoup.NameValuePairs(el, "input")
	assert.Equal(t, "tok-8f3a", pairs["csrf"])
	assert.NotContains(t, pairs, "signin") // buttons are a separate tag

	buttons := websoup.NameValuePairs(el, "button")
	assert.Equal(t, map[string]string{"signin": "1"}, buttons)
}
