package main

import (
	"fmt"

	"github.com/fwojciec/webstring"
	"github.com/fwojciec/webstring/match"
)

// Run executes the rank command.
// Output is one line per match: score, candidate position, value.
func (c *RankCmd) Run(deps *Dependencies) error {
	strategy, err := deps.strategy(c.Strategy)
	if err != nil {
		return reportError(deps, err)
	}

	var opts []webstring.Option
	if c.Strict {
		opts = append(opts, webstring.WithArgumentValidation())
	}

	reference, err := c.load(deps, c.Reference, strategy, opts...)
	if err != nil {
		return reportError(deps, err)
	}

	candidates := make([]webstring.TypedString, 0, len(c.Candidates))
	for _, arg := range c.Candidates {
		candidate, err := c.load(deps, arg, strategy)
		if err != nil {
			return reportError(deps, err)
		}
		candidates = append(candidates, candidate)
	}

	m := &match.Matcher{
		Concurrency: c.Concurrency,
		Threshold:   c.Threshold,
	}
	matches, err := m.Rank(deps.Ctx, reference, candidates)
	if err != nil {
		return reportError(deps, err)
	}

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No candidates reached the threshold.")
		return nil
	}

	for _, mt := range matches {
		fmt.Fprintf(deps.Stdout, "%.4f\t%d\t%s\n", mt.Score, mt.Index, display(mt.Value))
	}
	return nil
}
