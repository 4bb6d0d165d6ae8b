package mensafeed

// FeedBuilder renders a week of menus into a feed document.
type FeedBuilder interface {
	// Build returns the complete XML document for the canteen and its
	// days. Days without a resolved date are omitted. Output is
	// deterministic: identical input yields byte-identical documents.
	Build(canteen string, days []*Day) (string, error)
}
