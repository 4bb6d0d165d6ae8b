package main

import (
	"fmt"
	"strings"

	"github.com/openkassel/mensafeed"
)

// Run executes the generate command: fetch the page, extract and parse
// the week, render the feed, write it. The feed is written before the
// week-coverage check, so a partial feed still reaches consumers.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	days := c.parseDays(deps, html)
	if len(days) == 0 {
		return mensafeed.Errorf(mensafeed.ENOTFOUND, "no menu days found at %s", c.URL)
	}

	feed, err := deps.Builder.Build(c.Canteen, days)
	if err != nil {
		return err
	}

	if err := deps.Writer.WriteFeed(deps.Ctx, c.Out, feed); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "feed written: %s\n", c.Out)

	if dated := mensafeed.CountDated(days); dated < c.MinDays {
		return mensafeed.Errorf(mensafeed.EPARTIAL, "only %d of %d required days carry a date", dated, c.MinDays)
	}
	return nil
}

// parseDays tries each extractor in order and returns the first parse
// that recognizes at least one day header. An extractor that errors or
// yields headerless text just passes the page to the next one.
func (c *GenerateCmd) parseDays(deps *Dependencies, html string) []*mensafeed.Day {
	for _, extractor := range deps.Extractors {
		result, err := extractor.Extract(html)
		if err != nil || strings.TrimSpace(result.ContentHTML) == "" {
			continue
		}

		text, err := deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			continue
		}

		year := mensafeed.InferYear(text, deps.Now())
		if days := mensafeed.ParseWeek(text, year); len(days) > 0 {
			return days
		}
	}
	return nil
}
