package service

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"triz/standards/internal/domain"
	"triz/standards/internal/ordered"
)

// Service resolves catalog categories against the detail store.
// Both inputs are treated as read-only; every result is a fresh value.
type Service struct {
	catalog *domain.Catalog
	store   *domain.DetailStore
	schema  domain.RecordSchema
}

func NewService(catalog *domain.Catalog, store *domain.DetailStore, schema domain.RecordSchema) *Service {
	if catalog == nil {
		catalog = domain.NewCatalog("")
	}
	if store == nil {
		store = domain.EmptyDetailStore()
	}
	return &Service{
		catalog: catalog,
		store:   store,
		schema:  schema,
	}
}

func (s *Service) Categories() []string {
	return s.catalog.Names()
}

// ResolveDetail finds the record stored under key. It checks each top-level
// key, then its children, then one level into each child object.
// The first match in document order wins.
func (s *Service) ResolveDetail(key string) (domain.Record, bool) {
	root := s.store.Root()

	for _, mainKey := range root.Fields.Keys() {
		mainValue, _ := root.Fields.Get(mainKey)
		if mainKey == key {
			return domain.Record{Key: key, Node: mainValue}, true
		}
		if !mainValue.IsObject() {
			continue
		}

		for _, subKey := range mainValue.Fields.Keys() {
			subValue, _ := mainValue.Fields.Get(subKey)
			if subKey == key {
				return domain.Record{Key: key, Node: subValue}, true
			}
			if nested, ok := subValue.Child(key); ok {
				return domain.Record{Key: key, Node: nested}, true
			}
		}
	}

	return domain.Record{}, false
}

// Description returns the descriptive text recorded for key.
func (s *Service) Description(key string) (string, bool) {
	record, ok := s.ResolveDetail(key)
	if !ok {
		return "", false
	}
	return s.schema.Description(record.Node)
}

// DisplayName returns the human-readable name recorded for key.
func (s *Service) DisplayName(key string) (string, bool) {
	record, ok := s.ResolveDetail(key)
	if !ok {
		return "", false
	}
	return s.schema.Name(record.Node)
}

// ExpandByPrefix collects every code under the second level of the store
// that starts with prefix. Later duplicates overwrite earlier ones.
func (s *Service) ExpandByPrefix(prefix string) *ordered.Map[string] {
	expanded := ordered.NewMap[string]()
	root := s.store.Root()

	for _, mainKey := range root.Fields.Keys() {
		mainValue, _ := root.Fields.Get(mainKey)
		if !mainValue.IsObject() {
			continue
		}

		for _, subKey := range mainValue.Fields.Keys() {
			subValue, _ := mainValue.Fields.Get(subKey)
			if !subValue.IsObject() {
				if strings.HasPrefix(subKey, prefix) {
					expanded.Set(subKey, s.schema.Label(subValue))
				}
				continue
			}

			subValue.Fields.Each(func(code string, node *domain.Node) bool {
				if strings.HasPrefix(code, prefix) {
					expanded.Set(code, s.schema.Label(node))
				}
				return true
			})
		}
	}

	log.Debugf("Expanded prefix %q to %d standards", prefix, expanded.Len())
	return expanded
}

// FlattenCategory replaces every group or class placeholder of the category
// with its expansion and rewrites each label as "<description> (<label>)".
// An unknown category yields an empty listing.
func (s *Service) FlattenCategory(name string) *domain.Listing {
	listing := domain.NewListing()

	category, ok := s.catalog.Category(name)
	if !ok {
		log.Debugf("Category %q not found in catalog", name)
		return listing
	}

	expansions := ordered.NewMap[string]()
	placeholders := make([]string, 0)

	category.Entries.Each(func(key string, entry domain.CatalogEntry) bool {
		switch entry.Kind {
		case domain.EntryKindGroup:
			listing.Entries.Set(key, domain.ListingEntry{Key: key, Codes: entry.Codes.Clone()})
		case domain.EntryKindLabel:
			listing.Entries.Set(key, domain.ListingEntry{Key: key, Text: entry.Label})
		case domain.EntryKindPlaceholder:
			listing.Entries.Set(key, domain.ListingEntry{Key: key, Text: entry.Label})
			expansions.Merge(s.ExpandByPrefix(entry.Token))
			placeholders = append(placeholders, key)
		}
		return true
	})

	expansions.Each(func(code, label string) bool {
		listing.Entries.Set(code, domain.ListingEntry{Key: code, Text: label})
		return true
	})
	for _, key := range placeholders {
		listing.Entries.Delete(key)
	}

	for _, key := range listing.Keys() {
		entry, _ := listing.Get(key)

		if entry.IsSubcategory() {
			for _, code := range entry.Codes.Keys() {
				label, _ := entry.Codes.Get(code)
				entry.Codes.Set(code, s.describe(code, label))
			}
			continue
		}

		entry.Text = s.describe(key, entry.Text)
		listing.Entries.Set(key, entry)
	}

	return listing
}

// EnumerateChoices numbers keys from 1 and writes one line per key to w,
// adding the display name when the store has one.
func (s *Service) EnumerateChoices(w io.Writer, keys []string) domain.Choices {
	choices := make(domain.Choices, 0, len(keys))

	for i, key := range keys {
		choices = append(choices, key)
		if name, ok := s.DisplayName(key); ok {
			fmt.Fprintf(w, "%d. %s - %s\n", i+1, key, name)
		} else {
			fmt.Fprintf(w, "%d. %s\n", i+1, key)
		}
	}

	return choices
}

func (s *Service) describe(code, label string) string {
	desc, ok := s.Description(code)
	if !ok {
		return label
	}
	return fmt.Sprintf("%s (%s)", desc, label)
}
