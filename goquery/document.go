// Package goquery provides the HTML implementation of websoup.Document
// using CSS selector queries.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/websoup/websoup"
	"golang.org/x/net/html"
)

// Ensure interfaces are implemented at compile time.
var (
	_ websoup.Parser   = (*Parser)(nil)
	_ websoup.Document = (*Document)(nil)
	_ websoup.Element  = (*Element)(nil)
)

// Parser parses HTML5 markup into documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw HTML. The error-tolerant HTML5 parsing
// algorithm is used, so malformed markup still yields a document.
func (p *Parser) Parse(markup string) (websoup.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, websoup.Errorf(websoup.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed HTML tree. Queries use CSS selectors.
type Document struct {
	doc *goquery.Document
}

// Title returns the content of the document's title element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Text returns the visible text of the document: character data outside
// script and style elements.
func (d *Document) Text() string {
	var b strings.Builder
	for _, node := range d.doc.Selection.Nodes {
		visibleText(&b, node)
	}
	return b.String()
}

// TextLength returns the length of Text in bytes.
func (d *Document) TextLength() int {
	return len(d.Text())
}

// HTML serializes the document back to markup.
func (d *Document) HTML() (string, error) {
	markup, err := d.doc.Html()
	if err != nil {
		return "", websoup.Errorf(websoup.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return markup, nil
}

// SelectOne returns the first element matching the CSS selector, if any.
func (d *Document) SelectOne(query string) (websoup.Element, bool) {
	sel := d.doc.Find(query).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}

// Select returns all elements matching the CSS selector.
func (d *Document) Select(query string) []websoup.Element {
	return elements(d.doc.Find(query))
}

// Element is a node within an HTML Document.
type Element struct {
	sel *goquery.Selection
}

// Text returns the visible text of the element.
func (e *Element) Text() string {
	var b strings.Builder
	for _, node := range e.sel.Nodes {
		visibleText(&b, node)
	}
	return b.String()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// SelectOne returns the first descendant matching the CSS selector, if any.
func (e *Element) SelectOne(query string) (websoup.Element, bool) {
	sel := e.sel.Find(query).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Element{sel: sel}, true
}

// Select returns all descendants matching the CSS selector.
func (e *Element) Select(query string) []websoup.Element {
	return elements(e.sel.Find(query))
}

func elements(sel *goquery.Selection) []websoup.Element {
	var els []websoup.Element
	sel.Each(func(_ int, s *goquery.Selection) {
		els = append(els, &Element{sel: s})
	})
	return els
}

// visibleText walks the node tree appending character data, skipping
// script and style subtrees.
func visibleText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visibleText(b, c)
	}
}
