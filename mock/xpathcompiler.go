package mock

import "github.com/fwojciec/webstring"

var _ webstring.XPathCompiler = (*XPathCompiler)(nil)

// XPathCompiler is a mock implementation of webstring.XPathCompiler.
type XPathCompiler struct {
	CompileFn func(expr string) error
}

func (c *XPathCompiler) Compile(expr string) error {
	return c.CompileFn(expr)
}
