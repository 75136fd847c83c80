// Package difflib implements the contiguous-block-matching ratio
// (Ratcliff/Obershelp) on top of go-difflib's SequenceMatcher.
package difflib

import (
	"strings"

	"github.com/fwojciec/webstring"
	"github.com/pmezard/go-difflib/difflib"
)

// Ensure Strategy implements webstring.ComparisonStrategy at compile time.
var _ webstring.ComparisonStrategy = (*Strategy)(nil)

// Strategy scores two strings as 2*M/T, where M is the number of characters
// covered by recursively found longest common runs and T is the combined
// length of both strings. Two empty strings score 1.
//
// Characters are Unicode code points. The matcher runs with no junk
// heuristics, so every character takes part in matching regardless of how
// often it occurs.
type Strategy struct{}

// NewStrategy creates a new Strategy.
func NewStrategy() *Strategy {
	return &Strategy{}
}

// Compare returns the block-matching ratio of left and right.
func (s *Strategy) Compare(left, right string) float64 {
	m := difflib.NewMatcherWithJunk(split(left), split(right), false, nil)
	return m.Ratio()
}

// split breaks s into one element per code point.
func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
