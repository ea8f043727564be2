package websoup

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentText is the main content as plain text, with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentText string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// The classifier can use an Extractor so that navigation chrome doesn't
// skew the static-vs-rendered text-length comparison.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
