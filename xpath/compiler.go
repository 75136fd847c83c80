// Package xpath compiles XPath 1.0 expressions with antchfx/xpath.
package xpath

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/xpath"
	"github.com/fwojciec/webstring"
)

// Ensure Compiler implements webstring.XPathCompiler at compile time.
var _ webstring.XPathCompiler = (*Compiler)(nil)

// ErrEmptyExpr is the syntax error reported for blank expressions.
var ErrEmptyExpr = errors.New("empty expression")

// Compiler checks expressions with the antchfx/xpath parser.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns a *webstring.XPathSyntaxError when the expression does not
// compile. Input that is not text, and any panic escaping the parser, come
// back as plain errors.
func (c *Compiler) Compile(expr string) (err error) {
	if !utf8.ValidString(expr) {
		return errors.New("xpath: expression is not valid UTF-8")
	}
	if strings.TrimSpace(expr) == "" {
		return &webstring.XPathSyntaxError{Expr: expr, Err: ErrEmptyExpr}
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("xpath: compiler panicked: %v", r)
		}
	}()

	// Compile only fails on parse problems.
	if _, err := xpath.Compile(expr); err != nil {
		return &webstring.XPathSyntaxError{Expr: expr, Err: err}
	}
	return nil
}
