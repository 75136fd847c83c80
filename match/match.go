// Package match ranks candidate typed strings against a reference.
package match

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/fwojciec/webstring"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Matcher.Concurrency is not positive.
const DefaultConcurrency = 8

// Matcher compares one reference value against many candidates.
type Matcher struct {
	// Concurrency bounds the number of comparisons running at once.
	Concurrency int

	// Threshold drops matches scoring below it.
	Threshold float64
}

// Rank compares reference against each candidate and returns the matches
// at or above the threshold, best first. Equal scores keep input order.
//
// Each comparison goes through reference.Compare, so an invalid reference
// fails with its *webstring.ValidationError. The first error cancels the
// remaining comparisons.
func (m *Matcher) Rank(ctx context.Context, reference webstring.TypedString, candidates []webstring.TypedString) ([]webstring.Match, error) {
	if reference == nil {
		return nil, webstring.Errorf(webstring.EINVALID, "reference required")
	}

	concurrency := m.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	scores := make([]float64, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := reference.Compare(candidate)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]webstring.Match, 0, len(candidates))
	for i, score := range scores {
		if score < m.Threshold {
			continue
		}
		matches = append(matches, webstring.Match{
			Index: i,
			Value: candidates[i].Value(),
			Score: score,
		})
	}
	slices.SortStableFunc(matches, func(a, b webstring.Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches, nil
}

// Best returns the highest scoring match.
// Returns ENOTFOUND if no candidate reaches the threshold.
func (m *Matcher) Best(ctx context.Context, reference webstring.TypedString, candidates []webstring.TypedString) (*webstring.Match, error) {
	matches, err := m.Rank(ctx, reference, candidates)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, webstring.Errorf(webstring.ENOTFOUND, "no candidate scored at least %.4f", m.Threshold)
	}
	return &matches[0], nil
}
