package mock

import "github.com/websoup/websoup"

var (
	_ websoup.Parser   = (*Parser)(nil)
	_ websoup.Document = (*Document)(nil)
	_ websoup.Element  = (*Element)(nil)
)

// Parser is a mock implementation of websoup.Parser.
type Parser struct {
	ParseFn func(markup string) (websoup.Document, error)
}

func (p *Parser) Parse(markup string) (websoup.Document, error) {
	return p.ParseFn(markup)
}

// Document is a mock implementation of websoup.Document.
type Document struct {
	TitleFn      func() string
	TextFn       func() string
	TextLengthFn func() int
	HTMLFn       func() (string, error)
	SelectOneFn  func(query string) (websoup.Element, bool)
	SelectFn     func(query string) []websoup.Element
}

func (d *Document) Title() string { return d.TitleFn() }

func (d *Document) Text() string { return d.TextFn() }

func (d *Document) TextLength() int {
	if d.TextLengthFn != nil {
		return d.TextLengthFn()
	}
	return len(d.TextFn())
}

func (d *Document) HTML() (string, error) { return d.HTMLFn() }

func (d *Document) SelectOne(query string) (websoup.Element, bool) { return d.SelectOneFn(query) }

func (d *Document) Select(query string) []websoup.Element { return d.SelectFn(query) }

// Element is a mock implementation of websoup.Element.
type Element struct {
	TextFn      func() string
	AttrFn      func(name string) (string, bool)
	SelectOneFn func(query string) (websoup.Element, bool)
	SelectFn    func(query string) []websoup.Element
}

func (e *Element) Text() string { return e.TextFn() }

func (e *Element) Attr(name string) (string, bool) { return e.AttrFn(name) }

func (e *Element) SelectOne(query string) (websoup.Element, bool) { return e.SelectOneFn(query) }

func (e *Element) Select(query string) []websoup.Element { return e.SelectFn(query) }
