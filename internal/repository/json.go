package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	"triz/standards/internal/domain"
)

var errNotObject = errors.New("top level must be an object")

// decodeJSONDocument decodes a JSON or JSONC document into an ordered node tree.
func decodeJSONDocument(data []byte) (*domain.Node, error) {
	root, err := decodeNode(jsonc.ToJSON(data))
	if err != nil {
		return nil, err
	}
	if !root.IsObject() {
		return nil, errNotObject
	}
	return root, nil
}

func decodeNode(raw []byte) (*domain.Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty value")
	}

	switch raw[0] {
	case '{':
		return decodeObject(raw)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return domain.NewScalarNode(s), nil
	case '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, err
		}
		return domain.NewScalarNode(buf.String()), nil
	default:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if v == nil {
			return domain.NewScalarNode(""), nil
		}
		return domain.NewScalarNode(string(raw)), nil
	}
}

func decodeObject(raw []byte) (*domain.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	node := domain.NewObjectNode()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", key, err)
		}

		child, err := decodeNode(value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", key, err)
		}
		node.Set(key, child)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return node, nil
}

// DecodeJSON builds a detail store from a JSON or JSONC document held in memory.
func DecodeJSON(data []byte) (*domain.DetailStore, error) {
	root, err := decodeJSONDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDetailStore, err)
	}
	return domain.NewDetailStore(root), nil
}
