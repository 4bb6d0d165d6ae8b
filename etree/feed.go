// Package etree provides the mensafeed.FeedBuilder implementation. It
// renders the parsed week into an OpenMensa v2 document using an explicit
// element tree, so attribute and namespace encoding stay out of the menu
// logic.
package etree

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/openkassel/mensafeed"
)

// Feed document defaults. Both are injected into the builder rather than
// referenced from rendering code, so a schema bump is a wiring change.
const (
	DefaultNamespace = "http://openmensa.org/open-mensa-v2"
	DefaultVersion   = "2.1"
)

// allergenNoteLabel prefixes allergen codes rendered as note lines. The
// label is the source locale's, matching what feed consumers expect.
const allergenNoteLabel = "Allergene: "

// Ensure Builder implements mensafeed.FeedBuilder at compile time.
var _ mensafeed.FeedBuilder = (*Builder)(nil)

// Builder renders Day structures into OpenMensa v2 XML.
type Builder struct {
	namespace string
	version   string
}

// Option configures a Builder.
type Option func(*Builder)

// WithNamespace overrides the document namespace.
func WithNamespace(ns string) Option {
	return func(b *Builder) {
		b.namespace = ns
	}
}

// WithVersion overrides the feed version attribute.
func WithVersion(v string) Option {
	return func(b *Builder) {
		b.version = v
	}
}

// NewBuilder creates a new Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		namespace: DefaultNamespace,
		version:   DefaultVersion,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the canteen and its days into the complete XML document.
// Days without a resolved date are omitted; within a day, meals group by
// category in first-seen order. Output is deterministic.
func (b *Builder) Build(canteen string, days []*mensafeed.Day) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("openmensa")
	root.CreateAttr("xmlns", b.namespace)
	root.CreateAttr("version", b.version)

	canteenEl := root.CreateElement("canteen")
	canteenEl.CreateElement("name").SetText(canteen)

	for _, day := range days {
		if !day.Dated() {
			continue
		}

		dayEl := canteenEl.CreateElement("day")
		dayEl.CreateAttr("date", day.Date)

		// Category elements append on first sight, so later meals of
		// an already-seen category join the existing block.
		categories := make(map[string]*etree.Element)
		for _, meal := range day.Meals {
			if err := meal.Validate(); err != nil {
				return "", err
			}

			catEl, ok := categories[meal.Category]
			if !ok {
				catEl = dayEl.CreateElement("category")
				catEl.CreateAttr("name", meal.Category)
				categories[meal.Category] = catEl
			}

			b.buildMeal(catEl, meal)
		}
	}

	return doc.WriteToString()
}

func (b *Builder) buildMeal(catEl *etree.Element, meal *mensafeed.Meal) {
	mealEl := catEl.CreateElement("meal")
	mealEl.CreateElement("name").SetText(meal.Name)

	for _, note := range meal.Notes {
		mealEl.CreateElement("note").SetText(note)
	}
	for _, code := range meal.Allergens {
		mealEl.CreateElement("note").SetText(allergenNoteLabel + code)
	}

	for _, role := range mensafeed.PriceRoles {
		amount := meal.Prices.ByRole(role)
		if amount == nil {
			continue
		}
		priceEl := mealEl.CreateElement("price")
		priceEl.CreateAttr("role", string(role))
		priceEl.SetText(fmt.Sprintf("%.2f", *amount))
	}
}
