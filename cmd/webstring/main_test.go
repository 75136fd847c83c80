package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/webstring/cmd/webstring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	m := main.NewMain()
	m.Stdin = strings.NewReader(stdin)

	var out, errOut bytes.Buffer
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and fails", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "")

		require.Error(t, err)
		assert.Contains(t, stdout, "Usage:")
	})

	t.Run("help lists all commands", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "--help")

		require.NoError(t, err)
		for _, cmd := range []string{"validate", "compare", "rank"} {
			assert.Contains(t, stdout, cmd)
		}
		assert.Contains(t, stdout, "Flags:")
	})

	t.Run("compare prints the block-matching ratio", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "compare", "--kind", "xpath", "ab", "abab")

		require.NoError(t, err)
		assert.Equal(t, "0.6667\n", stdout)
	})

	t.Run("compare with levenshtein strategy", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "compare", "--kind", "xpath", "--strategy", "levenshtein", "ab", "abab")

		require.NoError(t, err)
		assert.Equal(t, "0.5000\n", stdout)
	})

	t.Run("compare fails on an invalid left value", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := run(t, "", "compare", "just text", "<p>hi</p>")

		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "error:")
		assert.Contains(t, stderr, "html_string")
	})

	t.Run("compare accepts an invalid right value unless strict", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "compare", "<p>hi</p>", "just text")
		require.NoError(t, err)
		assert.NotEmpty(t, stdout)

		_, stderr, err := run(t, "", "compare", "--strict", "<p>hi</p>", "just text")
		require.Error(t, err)
		assert.Contains(t, stderr, "just text")
	})

	t.Run("verbose logs strategy calls", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "", "--verbose", "compare", "<p>a</p>", "<p>a</p>")

		require.NoError(t, err)
		assert.Contains(t, stderr, "strategy=ratio")
		assert.Contains(t, stderr, "html parse")
	})

	t.Run("reads files and selects fragments", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		left := filepath.Join(dir, "left.html")
		right := filepath.Join(dir, "right.html")
		require.NoError(t, os.WriteFile(left, []byte(`<html><body><nav>menu</nav><main><p>same</p></main></body></html>`), 0o644))
		require.NoError(t, os.WriteFile(right, []byte(`<html><body><main><p>same</p></main><footer>x</footer></body></html>`), 0o644))

		stdout, _, err := run(t, "", "compare", "--from-file", "--select", "main", left, right)

		require.NoError(t, err)
		assert.Equal(t, "1.0000\n", stdout)
	})

	t.Run("reads stdin for dash", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "<p>hi</p>", "validate", "--from-file", "-")

		require.NoError(t, err)
		assert.Contains(t, stdout, "valid")
	})

	t.Run("rank orders candidates", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "rank", "--kind", "xpath", "//div[@id='x']", "//span", "//div[@id='y']")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasSuffix(lines[0], "\t1\t//div[@id='y']"), lines[0])
		assert.True(t, strings.HasSuffix(lines[1], "\t0\t//span"), lines[1])
	})
}
