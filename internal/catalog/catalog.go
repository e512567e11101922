package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"triz/standards/internal/domain"
	"triz/standards/internal/ordered"
)

// DefaultRoot is the top-level key wrapping the built-in categories.
const DefaultRoot = "Inventive Standards"

var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed standards.yaml
var builtin []byte

// Default returns the built-in catalog.
func Default() (*domain.Catalog, error) {
	return Parse(builtin, DefaultRoot)
}

// Load reads a catalog document from path, or the built-in one when path is empty.
func Load(ctx context.Context, path, root string) (*domain.Catalog, error) {
	if path == "" {
		log.Debug("Using built-in catalog")
		return Parse(builtin, root)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	cat, err := Parse(data, root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	log.Debugf("Loaded catalog %s with %d categories", path, cat.Categories.Len())
	return cat, nil
}

// Parse builds a catalog from a YAML document, keeping key order.
// When the document has a single top-level key equal to root, its value holds the categories.
func Parse(data []byte, root string) (*domain.Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if len(doc.Content) == 0 {
		return domain.NewCatalog(root), nil
	}

	top := deref(doc.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidCatalog)
	}

	if root != "" && len(top.Content) == 2 && top.Content[0].Value == root {
		top = deref(top.Content[1])
		if top.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %q must be a mapping", ErrInvalidCatalog, root)
		}
	}

	cat := domain.NewCatalog(root)
	for i := 0; i+1 < len(top.Content); i += 2 {
		name := top.Content[i].Value
		category, err := parseCategory(name, deref(top.Content[i+1]))
		if err != nil {
			return nil, err
		}
		cat.Add(category)
	}

	return cat, nil
}

func parseCategory(name string, node *yaml.Node) (*domain.Category, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: category %q must be a mapping (line %d)", ErrInvalidCatalog, name, node.Line)
	}

	category := domain.NewCategory(name)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := deref(node.Content[i+1])

		switch value.Kind {
		case yaml.ScalarNode:
			category.Add(domain.NewLabelEntry(key, value.Value))
		case yaml.MappingNode:
			codes, err := parseCodes(name, key, value)
			if err != nil {
				return nil, err
			}
			category.Add(domain.NewGroupEntry(key, codes))
		default:
			return nil, fmt.Errorf("%w: %q in %q must be a label or a mapping (line %d)",
				ErrInvalidCatalog, key, name, value.Line)
		}
	}

	return category, nil
}

func parseCodes(category, subcategory string, node *yaml.Node) (*ordered.Map[string], error) {
	codes := ordered.NewMap[string]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		code := node.Content[i].Value
		label := deref(node.Content[i+1])
		if label.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: code %q in %q/%q must map to a label (line %d)",
				ErrInvalidCatalog, code, category, subcategory, label.Line)
		}
		codes.Set(code, label.Value)
	}
	return codes, nil
}

func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
