package catalog

// Entry is the flattened, slug-addressed view of one catalogue item.
type Entry struct {
	Slug        string
	Item        Item
	TopCategory string
	SubCategory string
	Description string
}

// Index maps item slugs to entries for O(1) detail-page lookup. It is built
// once at startup from the static catalogue and read-only afterwards.
type Index struct {
	bySlug map[string]*Entry
	order  []*Entry
}

// BuildIndex walks the catalogue in declaration order and registers one
// entry per item slug. When two items produce the same slug the earlier
// entry wins and the later one is silently dropped; the walk order makes
// the outcome deterministic across runs.
func BuildIndex(c Catalogue) *Index {
	idx := &Index{bySlug: make(map[string]*Entry, c.ItemCount())}
	for _, top := range c {
		for _, sub := range top.SubCategories {
			for _, it := range sub.Items {
				slug := ItemSlug(it)
				if _, exists := idx.bySlug[slug]; exists {
					continue
				}
				e := &Entry{
					Slug:        slug,
					Item:        it,
					TopCategory: top.Name,
					SubCategory: sub.Name,
					Description: sub.Description,
				}
				idx.bySlug[slug] = e
				idx.order = append(idx.order, e)
			}
		}
	}
	return idx
}

// Lookup returns the entry for a slug, or nil when the slug is unknown.
func (idx *Index) Lookup(slug string) *Entry {
	return idx.bySlug[slug]
}

// Entries enumerates all entries in insertion order.
func (idx *Index) Entries() []*Entry {
	return idx.order
}

// Len reports the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.order)
}

// CategoryEntry pairs a category slug with its catalogue node.
type CategoryEntry struct {
	Slug     string
	Category *TopCategory
}

// CategoryIndex maps category slugs to top-level categories.
type CategoryIndex struct {
	bySlug map[string]*CategoryEntry
	order  []*CategoryEntry
}

// BuildCategoryIndex registers one entry per top-level category, first-wins
// on slug collisions, preserving catalogue order.
func BuildCategoryIndex(c Catalogue) *CategoryIndex {
	idx := &CategoryIndex{bySlug: make(map[string]*CategoryEntry, len(c))}
	for i := range c {
		slug := CategorySlug(c[i].Name)
		if _, exists := idx.bySlug[slug]; exists {
			continue
		}
		e := &CategoryEntry{Slug: slug, Category: &c[i]}
		idx.bySlug[slug] = e
		idx.order = append(idx.order, e)
	}
	return idx
}

// Lookup returns the category for a slug, or nil when the slug is unknown.
func (idx *CategoryIndex) Lookup(slug string) *TopCategory {
	if e := idx.bySlug[slug]; e != nil {
		return e.Category
	}
	return nil
}

// Entries enumerates category entries in catalogue order.
func (idx *CategoryIndex) Entries() []*CategoryEntry {
	return idx.order
}
