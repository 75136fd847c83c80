// Package goquery extracts HTML fragments from documents with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webstring"
)

// Ensure Selector implements webstring.FragmentSelector at compile time.
var _ webstring.FragmentSelector = (*Selector)(nil)

// Selector extracts HTML fragments from documents using CSS selectors.
type Selector struct{}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select returns the outer HTML of each element matching selector.
// A selector that does not compile matches nothing.
func (s *Selector) Select(document, selector string) ([]string, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, webstring.Errorf(webstring.EINVALID, "empty selector")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, webstring.Errorf(webstring.EINVALID, "failed to parse HTML: %v", err)
	}

	var fragments []string
	var renderErr error
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			renderErr = err
			return false
		}
		fragments = append(fragments, html)
		return true
	})
	if renderErr != nil {
		return nil, renderErr
	}

	if len(fragments) == 0 {
		return nil, webstring.Errorf(webstring.ENOTFOUND, "no element matches %q", selector)
	}
	return fragments, nil
}
