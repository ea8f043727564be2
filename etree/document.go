// Package etree provides the XML implementation of websoup.Document for
// feeds, sitemaps, and other XML payloads. Queries use etree path
// expressions (e.g. "//item/title") rather than CSS selectors.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/websoup/websoup"
)

// Ensure interfaces are implemented at compile time.
var (
	_ websoup.Parser   = (*Parser)(nil)
	_ websoup.Document = (*Document)(nil)
	_ websoup.Element  = (*Element)(nil)
)

// Parser parses XML markup into documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw XML. Unlike the HTML parser, malformed
// input is rejected with EINVALID.
func (p *Parser) Parse(markup string) (websoup.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, websoup.Errorf(websoup.EINVALID, "failed to parse XML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed XML tree.
type Document struct {
	doc *etree.Document
}

// Title returns the character data of the first title element.
func (d *Document) Title() string {
	if el := d.doc.FindElement("//title"); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// Text returns all character data in document order.
func (d *Document) Text() string {
	var b strings.Builder
	if root := d.doc.Root(); root != nil {
		charData(&b, root)
	}
	return b.String()
}

// TextLength returns the length of Text in bytes.
func (d *Document) TextLength() int {
	return len(d.Text())
}

// HTML serializes the document back to markup.
func (d *Document) HTML() (string, error) {
	markup, err := d.doc.WriteToString()
	if err != nil {
		return "", websoup.Errorf(websoup.EINTERNAL, "failed to serialize XML: %v", err)
	}
	return markup, nil
}

// SelectOne returns the first element matching the path expression, if any.
func (d *Document) SelectOne(query string) (websoup.Element, bool) {
	el := d.doc.FindElement(query)
	if el == nil {
		return nil, false
	}
	return &Element{el: el}, true
}

// Select returns all elements matching the path expression.
func (d *Document) Select(query string) []websoup.Element {
	return elements(d.doc.FindElements(query))
}

// Element is a node within an XML Document.
type Element struct {
	el *etree.Element
}

// Text returns all character data within the element.
func (e *Element) Text() string {
	var b strings.Builder
	charData(&b, e.el)
	return b.String()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	if attr := e.el.SelectAttr(name); attr != nil {
		return attr.Value, true
	}
	return "", false
}

// SelectOne returns the first descendant matching the path expression, if any.
func (e *Element) SelectOne(query string) (websoup.Element, bool) {
	el := e.el.FindElement(query)
	if el == nil {
		return nil, false
	}
	return &Element{el: el}, true
}

// Select returns all descendants matching the path expression.
func (e *Element) Select(query string) []websoup.Element {
	return elements(e.el.FindElements(query))
}

func elements(els []*etree.Element) []websoup.Element {
	var out []websoup.Element
	for _, el := range els {
		out = append(out, &Element{el: el})
	}
	return out
}

func charData(b *strings.Builder, el *etree.Element) {
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.CharData:
			b.WriteString(c.Data)
		case *etree.Element:
			charData(b, c)
		}
	}
}
