// Package fuzzysearch provides an edit-distance comparison strategy backed
// by lithammer/fuzzysearch.
package fuzzysearch

import (
	"unicode/utf8"

	"github.com/fwojciec/webstring"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Ensure LevenshteinStrategy implements webstring.ComparisonStrategy at compile time.
var _ webstring.ComparisonStrategy = (*LevenshteinStrategy)(nil)

// LevenshteinStrategy scores two strings as 1 - d/n, where d is their
// Levenshtein distance and n the length of the longer one in code points.
// Two empty strings score 1.
type LevenshteinStrategy struct{}

// NewLevenshteinStrategy creates a new LevenshteinStrategy.
func NewLevenshteinStrategy() *LevenshteinStrategy {
	return &LevenshteinStrategy{}
}

// Compare returns the normalized edit similarity of left and right.
func (s *LevenshteinStrategy) Compare(left, right string) float64 {
	n := max(utf8.RuneCountInString(left), utf8.RuneCountInString(right))
	if n == 0 {
		return 1.0
	}
	d := fuzzy.LevenshteinDistance(left, right)
	return 1.0 - float64(d)/float64(n)
}
