package webstring

// Attribute is a name/value pair on a parsed element.
type Attribute struct {
	Name  string
	Value string
}

// Node is an element parsed from an HTML fragment.
type Node struct {
	Tag      string
	Attr     []Attribute
	Children []*Node
}

// HTMLParser parses HTML fragments into element forests.
type HTMLParser interface {
	// ParseFragment returns the top-level elements of text in document
	// order. Text, comments and doctypes are not elements and are dropped,
	// so plain text yields an empty forest.
	ParseFragment(text string) ([]*Node, error)
}

var _ TypedString = (*HTMLString)(nil)

// HTMLString is a typed string holding an HTML fragment.
type HTMLString struct {
	WebString
	parser HTMLParser
}

// NewHTMLString returns an HTML fragment typed string. The value is not
// checked until Validate or Compare is called.
func NewHTMLString(value string, strategy ComparisonStrategy, parser HTMLParser, opts ...Option) *HTMLString {
	return &HTMLString{
		WebString: newWebString(value, FormatHTML, strategy, opts),
		parser:    parser,
	}
}

// Validate reports whether the value contains at least one element.
func (s *HTMLString) Validate() (bool, error) {
	if s.parser == nil {
		return false, Errorf(EINVALID, "html parser required")
	}
	nodes, err := s.parser.ParseFragment(s.value)
	if err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

// Compare validates s and delegates to the strategy.
func (s *HTMLString) Compare(other TypedString) (float64, error) {
	return s.compare(s, other)
}

func (s *HTMLString) base() *WebString {
	if s == nil {
		return nil
	}
	return &s.WebString
}
