package websoup

// ParserName selects a document parser.
type ParserName string

// Supported parsers.
const (
	// ParserHTML parses HTML5 documents and supports CSS selector
	// queries. This is the default.
	ParserHTML ParserName = "html"

	// ParserXML parses XML documents (feeds, sitemaps) and supports
	// path-expression queries.
	ParserXML ParserName = "xml"
)

// ParseParserName converts an externally supplied parser selector into a
// ParserName. Returns EUNSUPPORTED for anything outside the known set.
func ParseParserName(s string) (ParserName, error) {
	switch ParserName(s) {
	case ParserHTML, ParserXML:
		return ParserName(s), nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported parser %q", s)
	}
}

// Document is an immutable snapshot of a parsed page. It is owned by the
// caller once returned: no state is shared with the fetcher that produced
// it and nothing is cached across calls.
type Document interface {
	// Title returns the document title, or "" if there is none.
	Title() string

	// Text returns the visible text of the document: character data
	// outside script and style elements.
	Text() string

	// TextLength returns the length of Text in bytes. It is the
	// page-richness measure used by the dynamic-page classifier.
	TextLength() int

	// HTML serializes the document back to markup.
	HTML() (string, error)

	// SelectOne returns the first element matching the query, if any.
	SelectOne(query string) (Element, bool)

	// Select returns all elements matching the query.
	Select(query string) []Element
}

// Element is a node within a Document.
type Element interface {
	// Text returns the visible text of the element.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// SelectOne returns the first descendant matching the query, if any.
	SelectOne(query string) (Element, bool)

	// Select returns all descendants matching the query.
	Select(query string) []Element
}

// Parser turns raw markup into a Document.
type Parser interface {
	Parse(markup string) (Document, error)
}
