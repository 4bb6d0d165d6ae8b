package mensafeed

// ExtractResult holds the menu region extracted from the page.
type ExtractResult struct {
	// Title is the page title, when the extractor recognizes one.
	Title string

	// ContentHTML is the menu region as clean HTML. Boilerplate
	// (navigation, footer, cookie banners) has been removed.
	ContentHTML string
}

// Extractor narrows raw page HTML down to the menu content.
type Extractor interface {
	// Extract processes raw HTML and returns the menu region.
	Extract(html string) (*ExtractResult, error)
}
