package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triz/standards/internal/domain"
)

func TestDefaultCatalogKeepsOrder(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot, cat.Root)
	assert.Equal(t, []string{
		"Create a new function",
		"Improve effect of insufficient interaction or improve controllability",
		"Provide optimal action",
		"Provide maximum action under restrictions",
		"Provide opposite effects by the same interaction",
		"Eliminate harmful interaction between two substances",
		"Eliminate harmful interaction between a substance and a field",
		"Provide measurement/detection",
		"Evolve product/system",
	}, cat.Names())
}

func TestDefaultCatalogShapes(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	create, ok := cat.Category("Create a new function")
	require.True(t, ok)
	assert.Equal(t, []string{"1.1.1", "1.1.2", "1.1.3", "1.1.4", "1.1.5"}, create.Entries.Keys())
	entry, _ := create.Entries.Get("1.1.1")
	assert.Equal(t, domain.EntryKindLabel, entry.Kind)
	assert.Equal(t, "creating a new interaction", entry.Label)

	improve, ok := cat.Category("Improve effect of insufficient interaction or improve controllability")
	require.True(t, ok)
	nested, _ := improve.Entries.Get("Conditions allow introduction of new components to a system")
	assert.Equal(t, domain.EntryKindGroup, nested.Kind)
	assert.Equal(t, []string{"2.1.1", "2.1.2"}, nested.Codes.Keys())

	group, _ := improve.Entries.Get("Group 2.3")
	assert.Equal(t, domain.EntryKindPlaceholder, group.Kind)
	assert.Equal(t, "2.3", group.Token)
	assert.Equal(t, "Coordinating rhythms", group.Label)

	evolve, ok := cat.Category("Evolve product/system")
	require.True(t, ok)
	class, _ := evolve.Entries.Get("Class 3")
	assert.Equal(t, "3", class.Token)
}

func TestParseWithoutRootWrapper(t *testing.T) {
	doc := []byte(`
Measure:
  Class 4: Measuring
Build:
  "1.1.1": new interaction
`)
	cat, err := Parse(doc, DefaultRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"Measure", "Build"}, cat.Names())
}

func TestParseKeepsCodesAsWritten(t *testing.T) {
	doc := []byte(`
Build:
  2.10: ten
  2.1: one
`)
	cat, err := Parse(doc, "")
	require.NoError(t, err)

	build, _ := cat.Category("Build")
	assert.Equal(t, []string{"2.10", "2.1"}, build.Entries.Keys())
}

func TestParseRejectsBadShapes(t *testing.T) {
	tests := map[string]string{
		"scalar document":   `just text`,
		"scalar category":   "Build: nothing",
		"list subcategory":  "Build:\n  Sub: [a, b]",
		"nested code value": "Build:\n  Sub:\n    \"1.1\": {a: b}",
		"broken yaml":       "Build: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cat, err := Parse(nil, DefaultRoot)
	require.NoError(t, err)
	assert.Empty(t, cat.Names())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Standards:\n  Detect:\n    Class 4: Measuring\n"), 0o644))

	cat, err := Load(context.Background(), path, "Standards")
	require.NoError(t, err)
	assert.Equal(t, []string{"Detect"}, cat.Names())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), DefaultRoot)
	require.Error(t, err)
}

func TestLoadEmptyPathUsesBuiltin(t *testing.T) {
	cat, err := Load(context.Background(), "", DefaultRoot)
	require.NoError(t, err)
	assert.Len(t, cat.Names(), 9)
}
