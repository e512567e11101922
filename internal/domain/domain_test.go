package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triz/standards/internal/ordered"
)

func TestPlaceholderClassification(t *testing.T) {
	tests := []struct {
		name      string
		entry     CatalogEntry
		wantKind  EntryKind
		wantToken string
	}{
		{
			name:      "group label",
			entry:     NewLabelEntry("Group 2.3", "Coordinating rhythms"),
			wantKind:  EntryKindPlaceholder,
			wantToken: "2.3",
		},
		{
			name:      "class label",
			entry:     NewLabelEntry("Class 4", "Measuring and detection of Su-Field"),
			wantKind:  EntryKindPlaceholder,
			wantToken: "4",
		},
		{
			name:      "plain code",
			entry:     NewLabelEntry("1.1.6", "using maximum action and removing excess"),
			wantKind:  EntryKindLabel,
			wantToken: "",
		},
		{
			name:      "mapping named like a class",
			entry:     NewGroupEntry("Members of Class 9", ordered.NewMap[string]()),
			wantKind:  EntryKindPlaceholder,
			wantToken: "9",
		},
		{
			name:      "mapping",
			entry:     NewGroupEntry("Create a new function", nil),
			wantKind:  EntryKindGroup,
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.entry.Kind)
			assert.Equal(t, tt.wantToken, tt.entry.Token)
		})
	}
}

func TestPlaceholderTokenSplitsOnLastSpace(t *testing.T) {
	assert.Equal(t, "2.4", PlaceholderToken("Group 2.4"))
	assert.Equal(t, "", PlaceholderToken("Group "))
	assert.Equal(t, "Class3", PlaceholderToken("Class3"))
}

func TestGroupEntryNeverHasNilCodes(t *testing.T) {
	entry := NewGroupEntry("Create a new function", nil)
	require.NotNil(t, entry.Codes)
	assert.Equal(t, 0, entry.Codes.Len())
}

func TestRecordSchema(t *testing.T) {
	schema := DefaultRecordSchema()

	named := NewObjectNode()
	named.Set("StandardName", NewScalarNode("Introducing a new field"))
	named.Set("Description", NewScalarNode("Add a field acting on the substance"))

	unnamed := NewObjectNode()
	unnamed.Set("Text", NewScalarNode("Fallback description"))

	empty := NewObjectNode()
	empty.Set("StandardName", NewScalarNode(""))

	name, ok := schema.Name(named)
	require.True(t, ok)
	assert.Equal(t, "Introducing a new field", name)

	desc, ok := schema.Description(named)
	require.True(t, ok)
	assert.Equal(t, "Add a field acting on the substance", desc)

	desc, ok = schema.Description(unnamed)
	require.True(t, ok)
	assert.Equal(t, "Fallback description", desc)

	_, ok = schema.Name(empty)
	assert.False(t, ok)
	_, ok = schema.Description(empty)
	assert.False(t, ok)

	desc, ok = schema.Description(NewScalarNode("plain text"))
	require.True(t, ok)
	assert.Equal(t, "plain text", desc)

	_, ok = schema.Description(nil)
	assert.False(t, ok)

	assert.Equal(t, "Introducing a new field", schema.Label(named))
	assert.Equal(t, "Fallback description", schema.Label(unnamed))
	assert.Equal(t, "plain text", schema.Label(NewScalarNode("plain text")))
	assert.Equal(t, "", schema.Label(empty))
}

func TestChoicesLookup(t *testing.T) {
	choices := Choices{"a", "b", "c"}

	key, ok := choices.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "b", key)

	for _, n := range []int{0, -1, 4} {
		_, ok := choices.Lookup(n)
		assert.False(t, ok, "index %d", n)
	}

	assert.Equal(t, map[int]string{1: "a", 2: "b", 3: "c"}, choices.Index())
}

func TestEmptyDetailStore(t *testing.T) {
	store := EmptyDetailStore()
	assert.Equal(t, 0, store.Len())
	assert.True(t, store.Root().IsObject())

	var nilStore *DetailStore
	assert.Equal(t, 0, nilStore.Len())
}

func TestScalarNodeIgnoresSet(t *testing.T) {
	n := NewScalarNode("x")
	n.Set("a", NewScalarNode("b"))

	_, ok := n.Child("a")
	assert.False(t, ok)
}
