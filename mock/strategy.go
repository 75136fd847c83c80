package mock

import "github.com/fwojciec/webstring"

var _ webstring.ComparisonStrategy = (*Strategy)(nil)

// Strategy is a mock implementation of webstring.ComparisonStrategy.
type Strategy struct {
	CompareFn func(left, right string) float64
}

func (s *Strategy) Compare(left, right string) float64 {
	return s.CompareFn(left, right)
}
