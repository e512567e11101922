package domain

import "triz/standards/internal/ordered"

// ListingEntry is one row of a flattened category: a subcategory or a leaf code.
type ListingEntry struct {
	Key   string
	Codes *ordered.Map[string] // set for subcategories
	Text  string               // set for leaves
}

func (e ListingEntry) IsSubcategory() bool {
	return e.Codes != nil
}

// Listing is a flattened category view.
type Listing struct {
	Entries *ordered.Map[ListingEntry]
}

func NewListing() *Listing {
	return &Listing{Entries: ordered.NewMap[ListingEntry]()}
}

func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return l.Entries.Len()
}

func (l *Listing) Keys() []string {
	if l == nil {
		return nil
	}
	return l.Entries.Keys()
}

func (l *Listing) Get(key string) (ListingEntry, bool) {
	if l == nil {
		return ListingEntry{}, false
	}
	return l.Entries.Get(key)
}

// First returns the first entry in order.
func (l *Listing) First() (ListingEntry, bool) {
	keys := l.Keys()
	if len(keys) == 0 {
		return ListingEntry{}, false
	}
	return l.Get(keys[0])
}
