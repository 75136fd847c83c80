package mock

import "github.com/fwojciec/webstring"

var _ webstring.HTMLParser = (*HTMLParser)(nil)

// HTMLParser is a mock implementation of webstring.HTMLParser.
type HTMLParser struct {
	ParseFragmentFn func(text string) ([]*webstring.Node, error)
}

func (p *HTMLParser) ParseFragment(text string) ([]*webstring.Node, error) {
	return p.ParseFragmentFn(text)
}
