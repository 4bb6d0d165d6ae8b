package main

import (
	"context"
	"io"
	"time"

	"github.com/openkassel/mensafeed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	Fetcher mensafeed.Fetcher

	// Extractors are tried in order until one yields text the menu
	// scanner recognizes.
	Extractors []mensafeed.Extractor

	Converter mensafeed.Converter
	Builder   mensafeed.FeedBuilder
	Writer    mensafeed.FeedWriter
}

// GenerateCmd runs the fetch-parse-render pipeline once.
type GenerateCmd struct {
	URL     string
	Out     string
	Canteen string
	MinDays int
}
