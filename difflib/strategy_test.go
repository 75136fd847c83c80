package difflib_test

import (
	"testing"

	"github.com/fwojciec/webstring"
	"github.com/fwojciec/webstring/difflib"
	"github.com/stretchr/testify/assert"
)

// Ensure Strategy implements webstring.ComparisonStrategy at compile time.
var _ webstring.ComparisonStrategy = (*difflib.Strategy)(nil)

func TestStrategy_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  string
		right string
		want  float64
	}{
		{name: "both empty", left: "", right: "", want: 1.0},
		{name: "one empty", left: "abc", right: "", want: 0.0},
		{name: "identical", left: "<p>hi</p>", right: "<p>hi</p>", want: 1.0},
		{name: "no shared run", left: "abc", right: "xyz", want: 0.0},
		{name: "prefix run", left: "ab", right: "abab", want: 4.0 / 6.0},
		{name: "recursive runs on both sides", left: "abxcd", right: "abycd", want: 8.0 / 10.0},
		{name: "textbook example", left: "abcd", right: "bcde", want: 6.0 / 8.0},
		{name: "code points not bytes", left: "héllo", right: "hello", want: 8.0 / 10.0},
		{name: "xpath edit", left: "//div[@id='x']", right: "//div[@id='y']", want: 26.0 / 28.0},
	}

	s := difflib.NewStrategy()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, s.Compare(tt.left, tt.right), 1e-9)
		})
	}
}

func TestStrategy_Compare_Bounds(t *testing.T) {
	t.Parallel()

	s := difflib.NewStrategy()
	pairs := [][2]string{
		{"", "x"},
		{"aaaa", "a"},
		{"<div><p>a</p></div>", "<p>a</p>"},
		{"//a/b/c", "c/b/a//"},
	}

	for _, p := range pairs {
		score := s.Compare(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
		assert.InDelta(t, 1.0, s.Compare(p[0], p[0]), 1e-9)
	}
}

func TestStrategy_Compare_NoPopularityHeuristic(t *testing.T) {
	t.Parallel()

	// Long inputs where one character dominates would be treated as junk by
	// an auto-junk matcher, dropping the score well below 1.
	left := ""
	for i := 0; i < 300; i++ {
		left += "a"
	}
	right := left + "b"

	s := difflib.NewStrategy()

	assert.InDelta(t, 600.0/601.0, s.Compare(left, right), 1e-9)
}
