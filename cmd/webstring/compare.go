package main

import (
	"fmt"

	"github.com/fwojciec/webstring"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	strategy, err := deps.strategy(c.Strategy)
	if err != nil {
		return reportError(deps, err)
	}

	var opts []webstring.Option
	if c.Strict {
		opts = append(opts, webstring.WithArgumentValidation())
	}

	left, err := c.load(deps, c.Left, strategy, opts...)
	if err != nil {
		return reportError(deps, err)
	}
	right, err := c.load(deps, c.Right, strategy)
	if err != nil {
		return reportError(deps, err)
	}

	score, err := left.Compare(right)
	if err != nil {
		return reportError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "%.4f\n", score)
	return nil
}

// load reads arg and wraps it as the configured kind.
func (f *InputFlags) load(deps *Dependencies, arg string, strategy webstring.ComparisonStrategy, opts ...webstring.Option) (webstring.TypedString, error) {
	value, err := f.read(deps, arg)
	if err != nil {
		return nil, err
	}
	return f.wrap(deps, value, strategy, opts...)
}
