// Package trafilatura provides a generic mensafeed.Extractor based on
// boilerplate removal. It serves as the fallback when the CSS-selector
// extractor finds no menu region, e.g. after a site relaunch renames the
// content containers.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/openkassel/mensafeed"
	"golang.org/x/net/html"
)

// Ensure Extractor implements mensafeed.Extractor at compile time.
var _ mensafeed.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content region.
func (e *Extractor) Extract(rawHTML string) (*mensafeed.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mensafeed.Errorf(mensafeed.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &mensafeed.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
