// Package htmltomarkdown provides the mensafeed.Converter implementation.
// It reduces the menu page's HTML to markdown-shaped text whose structure
// the menu scanner relies on: day headers (h4) become "####" lines and
// meal entries (h5 inside list items) become "* #####" bullets.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/openkassel/mensafeed"
)

// Ensure Converter implements mensafeed.Converter at compile time.
var _ mensafeed.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to produce the scanner's text shape.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. The bullet marker is pinned to
// "*" because the meal-entry pattern splits on "* #####" lines.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithBulletListMarker("*"),
			),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms page HTML into markdown-shaped text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", mensafeed.Errorf(mensafeed.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
