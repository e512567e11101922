package domain

import "triz/standards/internal/ordered"

// Node is one value of the detail store: an object with ordered fields or a scalar.
type Node struct {
	Fields *ordered.Map[*Node]
	Text   string
}

func NewObjectNode() *Node {
	return &Node{Fields: ordered.NewMap[*Node]()}
}

func NewScalarNode(text string) *Node {
	return &Node{Text: text}
}

func (n *Node) IsObject() bool {
	return n != nil && n.Fields != nil
}

func (n *Node) Child(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	return n.Fields.Get(key)
}

// Set adds or replaces a field. It is a no-op on scalars.
func (n *Node) Set(key string, child *Node) {
	if !n.IsObject() {
		return
	}
	n.Fields.Set(key, child)
}

// DetailStore is the loaded nested mapping of standards.
type DetailStore struct {
	root *Node
}

func NewDetailStore(root *Node) *DetailStore {
	if !root.IsObject() {
		root = NewObjectNode()
	}
	return &DetailStore{root: root}
}

// EmptyDetailStore resolves nothing.
func EmptyDetailStore() *DetailStore {
	return NewDetailStore(nil)
}

func (s *DetailStore) Root() *Node {
	if s == nil {
		return NewObjectNode()
	}
	return s.root
}

func (s *DetailStore) Len() int {
	return s.Root().Fields.Len()
}
