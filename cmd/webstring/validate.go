package main

import (
	"fmt"

	"github.com/fwojciec/webstring"
)

// Run executes the validate command.
// It prints one line per value and fails if any value is invalid.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	var invalid int
	for _, arg := range c.Values {
		value, err := c.read(deps, arg)
		if err != nil {
			return reportError(deps, err)
		}

		ts, err := c.wrap(deps, value, nil)
		if err != nil {
			return reportError(deps, err)
		}

		ok, err := ts.Validate()
		if err != nil {
			return reportError(deps, err)
		}

		status := "valid"
		if !ok {
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", status, ts.Format(), display(value))
	}

	if invalid > 0 {
		return webstring.Errorf(webstring.EINVALID, "%d of %d values invalid", invalid, len(c.Values))
	}
	return nil
}
