// Package catalog holds the static kaomoji catalogue, its slug scheme,
// the derived lookup indexes, and the search filter every page uses.
package catalog

// Item is a single kaomoji with its display label.
type Item struct {
	Name   string
	Value  string
	IsLong bool // layout hint for wide kaomoji
}

// SubCategory groups items under a labelled, described heading.
// Item order is display order.
type SubCategory struct {
	Name        string
	Description string
	Items       []Item
}

// TopCategory is a top-level catalogue grouping.
type TopCategory struct {
	Name          string
	SubCategories []SubCategory
}

// Catalogue is the full static dataset, ordered as declared. It is loaded
// once at startup and never mutated afterwards.
type Catalogue []TopCategory

// ItemCount reports the total number of items reachable from the catalogue.
func (c Catalogue) ItemCount() int {
	n := 0
	for _, top := range c {
		for _, sub := range top.SubCategories {
			n += len(sub.Items)
		}
	}
	return n
}
