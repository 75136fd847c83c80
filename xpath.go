package webstring

import "errors"

// XPathCompiler compiles XPath expressions.
type XPathCompiler interface {
	// Compile returns nil if expr compiles, a *XPathSyntaxError if it does
	// not parse, and any other error if the compiler itself failed.
	Compile(expr string) error
}

var _ TypedString = (*XPathString)(nil)

// XPathString is a typed string holding an XPath expression.
type XPathString struct {
	WebString
	compiler XPathCompiler
}

// NewXPathString returns an XPath expression typed string. The value is not
// checked until Validate or Compare is called.
func NewXPathString(value string, strategy ComparisonStrategy, compiler XPathCompiler, opts ...Option) *XPathString {
	return &XPathString{
		WebString: newWebString(value, FormatXPath, strategy, opts),
		compiler:  compiler,
	}
}

// Validate reports whether the value compiles. Only syntax errors make the
// expression invalid; other compiler failures are returned as a
// *CompilerFault.
func (s *XPathString) Validate() (bool, error) {
	if s.compiler == nil {
		return false, Errorf(EINVALID, "xpath compiler required")
	}
	err := s.compiler.Compile(s.value)
	if err == nil {
		return true, nil
	}
	var syntaxErr *XPathSyntaxError
	if errors.As(err, &syntaxErr) {
		return false, nil
	}
	return false, &CompilerFault{Expr: s.value, Err: err}
}

// Compare validates s and delegates to the strategy.
func (s *XPathString) Compare(other TypedString) (float64, error) {
	return s.compare(s, other)
}

func (s *XPathString) base() *WebString {
	if s == nil {
		return nil
	}
	return &s.WebString
}
