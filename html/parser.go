// Package html parses HTML fragments with the golang.org/x/net/html tokenizer.
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/webstring"
	"golang.org/x/net/html"
)

// Ensure Parser implements webstring.HTMLParser at compile time.
var _ webstring.HTMLParser = (*Parser)(nil)

// voidElements never have children, so their start tags are not pushed
// onto the open-element stack.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// Parser builds an element forest from tag-soup HTML.
//
// Unlike a full document parse it does not synthesize html, head or body
// elements: every element in the forest corresponds to a start tag in the
// input. Unmatched end tags are ignored and unclosed elements are closed at
// the end of input.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFragment returns the top-level elements of text.
func (p *Parser) ParseFragment(text string) ([]*webstring.Node, error) {
	z := html.NewTokenizer(strings.NewReader(text))

	var roots []*webstring.Node
	var stack []*webstring.Node

	appendNode := func(n *webstring.Node) {
		if len(stack) == 0 {
			roots = append(roots, n)
			return
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return roots, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			n := readElement(z)
			appendNode(n)
			if tt == html.StartTagToken && !voidElements[n.Tag] {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			stack = closeElement(stack, string(name))
		}
	}
}

// readElement builds a node from the current start tag token.
func readElement(z *html.Tokenizer) *webstring.Node {
	name, hasAttr := z.TagName()
	n := &webstring.Node{Tag: string(name)}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		n.Attr = append(n.Attr, webstring.Attribute{Name: string(key), Value: string(val)})
	}
	return n
}

// closeElement pops the stack up to and including the innermost open
// element named tag. The stack is unchanged if no such element is open.
func closeElement(stack []*webstring.Node, tag string) []*webstring.Node {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Tag == tag {
			return stack[:i]
		}
	}
	return stack
}
