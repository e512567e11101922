package domain

// Record is a detail node found for a code.
type Record struct {
	Key  string
	Node *Node
}

// RecordSchema names the fields read from object records.
type RecordSchema struct {
	NameField         string   `mapstructure:"name_field"`
	DescriptionFields []string `mapstructure:"description_fields"`
}

func DefaultRecordSchema() RecordSchema {
	return RecordSchema{
		NameField:         "StandardName",
		DescriptionFields: []string{"Description", "StandardDescription", "Text"},
	}
}

// Name returns the display name of an object record.
func (s RecordSchema) Name(n *Node) (string, bool) {
	if s.NameField == "" {
		return "", false
	}
	return nonEmptyField(n, s.NameField)
}

// Description returns the descriptive text of a record. Scalars describe themselves.
func (s RecordSchema) Description(n *Node) (string, bool) {
	if n == nil {
		return "", false
	}
	if !n.IsObject() {
		return n.Text, n.Text != ""
	}
	for _, field := range s.DescriptionFields {
		if text, ok := nonEmptyField(n, field); ok {
			return text, true
		}
	}
	return "", false
}

// Label is the short text a node contributes to an expansion.
func (s RecordSchema) Label(n *Node) string {
	if n == nil {
		return ""
	}
	if !n.IsObject() {
		return n.Text
	}
	if name, ok := s.Name(n); ok {
		return name
	}
	desc, _ := s.Description(n)
	return desc
}

func nonEmptyField(n *Node, field string) (string, bool) {
	child, ok := n.Child(field)
	if !ok || child.IsObject() || child.Text == "" {
		return "", false
	}
	return child.Text, true
}
