// Package goquery provides the CSS-selector implementation of
// mensafeed.Extractor. It narrows the menu page down to the content
// region so navigation, footer and cookie-banner markup never reach the
// menu scanner.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/openkassel/mensafeed"
)

// contentSelectors are tried in order; the first non-empty match wins.
// The Studierendenwerk site renders the plan inside the main content
// element, so "main" is usually the one that hits.
var contentSelectors = []string{
	".speiseplan",
	"main",
	"#content",
	"article",
}

// Ensure Extractor implements mensafeed.Extractor at compile time.
var _ mensafeed.Extractor = (*Extractor)(nil)

// Extractor selects the menu content region via CSS selectors.
type Extractor struct {
	selectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors overrides the content selectors tried in order.
func WithSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selectors: contentSelectors}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the first matching content region, falling back to the
// document body when no selector hits.
func (e *Extractor) Extract(html string) (*mensafeed.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, mensafeed.Errorf(mensafeed.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mensafeed.Errorf(mensafeed.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		return &mensafeed.ExtractResult{Title: title, ContentHTML: contentHTML}, nil
	}

	// No selector matched; hand the whole body to the converter.
	body, err := goquery.OuterHtml(doc.Find("body"))
	if err != nil {
		return nil, err
	}
	return &mensafeed.ExtractResult{Title: title, ContentHTML: body}, nil
}
