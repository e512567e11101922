package domain

import "strings"

// EntryKind tags the shape of a catalog subcategory value
type EntryKind string

func (k EntryKind) String() string {
	return string(k)
}

const (
	EntryKindGroup       EntryKind = "group"       // code -> short label mapping
	EntryKindLabel       EntryKind = "label"       // name is a code, value a short label
	EntryKindPlaceholder EntryKind = "placeholder" // "Group <id>" or "Class <id>"
)

var placeholderMarkers = []string{"Group", "Class"}

// IsPlaceholderName reports whether a subcategory name names a group or class.
// The test is a plain substring match.
func IsPlaceholderName(name string) bool {
	for _, marker := range placeholderMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// PlaceholderToken returns the text after the last single space of name.
func PlaceholderToken(name string) string {
	parts := strings.Split(name, " ")
	return parts[len(parts)-1]
}
