package goquery_test

import (
	"testing"

	"github.com/fwojciec/webstring"
	"github.com/fwojciec/webstring/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Selector implements webstring.FragmentSelector at compile time.
var _ webstring.FragmentSelector = (*goquery.Selector)(nil)

func TestSelector_Select(t *testing.T) {
	t.Parallel()

	document := `<!DOCTYPE html>
<html>
<body>
<article><h1>Title</h1><p class="lead">First</p><p>Second</p></article>
</body>
</html>`

	t.Run("returns outer HTML of matches in document order", func(t *testing.T) {
		t.Parallel()

		fragments, err := goquery.NewSelector().Select(document, "article p")

		require.NoError(t, err)
		assert.Equal(t, []string{`<p class="lead">First</p>`, `<p>Second</p>`}, fragments)
	})

	t.Run("returns ENOTFOUND when nothing matches", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelector().Select(document, "table")

		assert.Equal(t, webstring.ENOTFOUND, webstring.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for a selector that does not compile", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelector().Select(document, "p[")

		assert.Equal(t, webstring.ENOTFOUND, webstring.ErrorCode(err))
	})

	t.Run("returns EINVALID for an empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewSelector().Select(document, " ")

		assert.Equal(t, webstring.EINVALID, webstring.ErrorCode(err))
	})
}
