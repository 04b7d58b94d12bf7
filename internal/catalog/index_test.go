package catalog

import (
	"strings"
	"testing"
)

func testCatalogue() Catalogue {
	return Catalogue{
		{
			Name: "Happy & Joyful",
			SubCategories: []SubCategory{
				{
					Name:        "Smiles",
					Description: "Friendly faces.",
					Items: []Item{
						{Name: "Happy", Value: "(^ω^)"},
						{Name: "Happy", Value: "(´∀｀)"},
					},
				},
			},
		},
		{
			Name: "Animals",
			SubCategories: []SubCategory{
				{
					Name:        "Pets",
					Description: "Companions.",
					Items: []Item{
						{Name: "Cat", Value: "(=^･ω･^=)"},
					},
				},
			},
		},
	}
}

func TestBuildIndexCompleteAndRoundTrips(t *testing.T) {
	c := testCatalogue()
	idx := BuildIndex(c)

	if idx.Len() > c.ItemCount() {
		t.Fatalf("index has %d entries for %d items", idx.Len(), c.ItemCount())
	}
	if idx.Len() != c.ItemCount() {
		t.Fatalf("no collisions expected, got %d entries for %d items", idx.Len(), c.ItemCount())
	}

	for _, e := range idx.Entries() {
		if got := idx.Lookup(e.Slug); got != e {
			t.Fatalf("Lookup(%q) = %+v, want the enumerated entry", e.Slug, got)
		}
	}
}

func TestBuildIndexSameNameDistinctSlugs(t *testing.T) {
	idx := BuildIndex(testCatalogue())

	var happy []*Entry
	for _, e := range idx.Entries() {
		if strings.HasPrefix(e.Slug, "happy-") {
			happy = append(happy, e)
		}
	}
	if len(happy) != 2 {
		t.Fatalf("want 2 happy- entries, got %d", len(happy))
	}
	if happy[0].Slug == happy[1].Slug {
		t.Fatalf("both Happy items resolved to slug %q", happy[0].Slug)
	}
	if happy[0].Item.Value == happy[1].Item.Value {
		t.Fatal("entries should carry the two distinct values")
	}
}

func TestBuildIndexEntryCarriesCategoryContext(t *testing.T) {
	idx := BuildIndex(testCatalogue())
	e := idx.Lookup(ItemSlug(Item{Name: "Cat", Value: "(=^･ω･^=)"}))
	if e == nil {
		t.Fatal("cat entry missing from index")
	}
	if e.TopCategory != "Animals" || e.SubCategory != "Pets" || e.Description != "Companions." {
		t.Fatalf("entry context wrong: %+v", e)
	}
}

func TestBuildIndexFirstWinsOnCollision(t *testing.T) {
	// Identical (name, value) pairs collide by construction; the earlier
	// insertion must survive and the later one must be dropped silently.
	c := Catalogue{
		{
			Name: "First",
			SubCategories: []SubCategory{
				{Name: "A", Description: "first home", Items: []Item{{Name: "Twin", Value: "(^_^)"}}},
			},
		},
		{
			Name: "Second",
			SubCategories: []SubCategory{
				{Name: "B", Description: "second home", Items: []Item{{Name: "Twin", Value: "(^_^)"}}},
			},
		},
	}

	idx := BuildIndex(c)
	if idx.Len() != 1 {
		t.Fatalf("want 1 surviving entry, got %d", idx.Len())
	}
	e := idx.Lookup(ItemSlug(Item{Name: "Twin", Value: "(^_^)"}))
	if e == nil || e.TopCategory != "First" {
		t.Fatalf("first-registered entry should win, got %+v", e)
	}
}

func TestBuildIndexLookupMiss(t *testing.T) {
	idx := BuildIndex(testCatalogue())
	if e := idx.Lookup("no-such-slug"); e != nil {
		t.Fatalf("Lookup of unknown slug returned %+v", e)
	}
}

func TestBuildCategoryIndex(t *testing.T) {
	c := testCatalogue()
	idx := BuildCategoryIndex(c)

	if len(idx.Entries()) != len(c) {
		t.Fatalf("want %d category entries, got %d", len(c), len(idx.Entries()))
	}
	top := idx.Lookup("happy-joyful")
	if top == nil || top.Name != "Happy & Joyful" {
		t.Fatalf("Lookup(happy-joyful) = %+v", top)
	}
	if idx.Lookup("nope") != nil {
		t.Fatal("unknown category slug should miss")
	}
}

func TestDefaultCatalogueIndexesCleanly(t *testing.T) {
	c := Default()
	idx := BuildIndex(c)
	if idx.Len() != c.ItemCount() {
		t.Fatalf("shipped catalogue has a slug collision: %d entries for %d items", idx.Len(), c.ItemCount())
	}
	cats := BuildCategoryIndex(c)
	if len(cats.Entries()) != len(c) {
		t.Fatalf("shipped catalogue has a category slug collision")
	}
}
