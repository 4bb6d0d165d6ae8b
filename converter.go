package mensafeed

// Converter reduces HTML to markdown-shaped plain text.
//
// The menu scanner depends on the converter's output shape: headings must
// arrive as ATX lines ("#### Montag, 12.5.") and list items as "*"
// bullets, since those are the markers ParseWeek splits on.
type Converter interface {
	// Convert transforms HTML content into markdown-shaped text.
	Convert(html string) (string, error)
}
