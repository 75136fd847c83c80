package mock

import "github.com/fwojciec/webstring"

var _ webstring.FragmentSelector = (*FragmentSelector)(nil)

// FragmentSelector is a mock implementation of webstring.FragmentSelector.
type FragmentSelector struct {
	SelectFn func(document, selector string) ([]string, error)
}

func (s *FragmentSelector) Select(document, selector string) ([]string, error) {
	return s.SelectFn(document, selector)
}
