package webstring

// Format identifies the kind of text a typed string wraps.
// Each variant has its own unique format.
type Format string

// Supported formats.
const (
	FormatWeb   Format = "web_string"
	FormatHTML  Format = "html_string"
	FormatXPath Format = "xpath_string"
)

// TypedString is a text value tagged with a format and bound to a
// comparison strategy.
//
// The set of variants is closed: every implementation embeds WebString,
// which supplies the shared comparison logic and a Validate that fails with
// ENOTIMPLEMENTED until a variant overrides it.
type TypedString interface {
	// Value returns the wrapped text.
	Value() string

	// Format returns the variant's format tag.
	Format() Format

	// Validate reports whether the value is well-formed for the format.
	// An error means validation itself could not be carried out.
	Validate() (bool, error)

	// Compare validates the receiver and scores it against other with the
	// strategy supplied at construction. An invalid receiver yields a
	// *ValidationError and the strategy is not called. By default other is
	// not validated; see WithArgumentValidation.
	Compare(other TypedString) (float64, error)

	base() *WebString
}

// Option configures a typed string.
type Option func(*WebString)

// WithArgumentValidation makes Compare validate its argument as well as the
// receiver.
func WithArgumentValidation() Option {
	return func(s *WebString) {
		s.validateArgument = true
	}
}

// WebString is the base every typed string variant embeds. On its own it
// has no notion of well-formedness, so Validate and Compare fail with
// ENOTIMPLEMENTED.
type WebString struct {
	value    string
	format   Format
	strategy ComparisonStrategy

	validateArgument bool
}

// NewWebString returns an unextended typed string.
func NewWebString(value string, strategy ComparisonStrategy, opts ...Option) *WebString {
	s := newWebString(value, FormatWeb, strategy, opts)
	return &s
}

func newWebString(value string, format Format, strategy ComparisonStrategy, opts []Option) WebString {
	s := WebString{
		value:    value,
		format:   format,
		strategy: strategy,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Value returns the wrapped text.
func (s *WebString) Value() string {
	return s.value
}

// Format returns the format tag.
func (s *WebString) Format() Format {
	return s.format
}

// Validate always fails: variants must provide their own check.
func (s *WebString) Validate() (bool, error) {
	return false, Errorf(ENOTIMPLEMENTED, "%s does not implement validation", s.format)
}

// Compare validates s and delegates to the strategy.
func (s *WebString) Compare(other TypedString) (float64, error) {
	return s.compare(s, other)
}

func (s *WebString) base() *WebString {
	return s
}

// compare runs the check-then-score sequence for self, the outermost
// variant value, so that its Validate override is the one called.
func (s *WebString) compare(self TypedString, other TypedString) (float64, error) {
	ok, err := self.Validate()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ValidationError{Format: s.format, Value: s.value}
	}

	if other == nil || other.base() == nil {
		return 0, Errorf(EINVALID, "comparison target required")
	}

	if s.validateArgument {
		ok, err := other.Validate()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &ValidationError{Format: other.Format(), Value: other.Value()}
		}
	}

	if s.strategy == nil {
		return 0, Errorf(EINVALID, "comparison strategy required")
	}
	return s.strategy.Compare(s.value, other.Value()), nil
}
