package webstring

// ComparisonStrategy scores how similar two strings are.
//
// Implementations must be deterministic and free of side effects, and must
// return a score in [0, 1] where 1 means identical. Symmetry is not part of
// the contract. Strategies are stateless and may be shared by any number of
// typed strings.
type ComparisonStrategy interface {
	Compare(left, right string) float64
}

// StrategyFunc adapts an ordinary function to a ComparisonStrategy.
type StrategyFunc func(left, right string) float64

// Compare calls f(left, right).
func (f StrategyFunc) Compare(left, right string) float64 {
	return f(left, right)
}
