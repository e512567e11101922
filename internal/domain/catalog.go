package domain

import "triz/standards/internal/ordered"

// CatalogEntry is one subcategory of a category.
type CatalogEntry struct {
	Name  string
	Kind  EntryKind
	Codes *ordered.Map[string] // EntryKindGroup only
	Label string               // short label, or the caption of a placeholder
	Token string               // EntryKindPlaceholder only
}

// NewGroupEntry builds an entry holding a code -> label mapping.
// A name that reads as a placeholder wins over the mapping.
func NewGroupEntry(name string, codes *ordered.Map[string]) CatalogEntry {
	if IsPlaceholderName(name) {
		return newPlaceholderEntry(name, "")
	}
	if codes == nil {
		codes = ordered.NewMap[string]()
	}
	return CatalogEntry{Name: name, Kind: EntryKindGroup, Codes: codes}
}

// NewLabelEntry builds an entry from a scalar value.
func NewLabelEntry(name, label string) CatalogEntry {
	if IsPlaceholderName(name) {
		return newPlaceholderEntry(name, label)
	}
	return CatalogEntry{Name: name, Kind: EntryKindLabel, Label: label}
}

func newPlaceholderEntry(name, caption string) CatalogEntry {
	return CatalogEntry{
		Name:  name,
		Kind:  EntryKindPlaceholder,
		Label: caption,
		Token: PlaceholderToken(name),
	}
}

type Category struct {
	Name    string
	Entries *ordered.Map[CatalogEntry]
}

func NewCategory(name string) *Category {
	return &Category{Name: name, Entries: ordered.NewMap[CatalogEntry]()}
}

func (c *Category) Add(entry CatalogEntry) {
	c.Entries.Set(entry.Name, entry)
}

// Catalog is the static category tree. It is read-only once built.
type Catalog struct {
	Root       string
	Categories *ordered.Map[*Category]
}

func NewCatalog(root string) *Catalog {
	return &Catalog{Root: root, Categories: ordered.NewMap[*Category]()}
}

func (c *Catalog) Add(category *Category) {
	c.Categories.Set(category.Name, category)
}

func (c *Catalog) Category(name string) (*Category, bool) {
	if c == nil {
		return nil, false
	}
	return c.Categories.Get(name)
}

func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return c.Categories.Keys()
}
