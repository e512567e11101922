package ordered

// Map is a string-keyed map that remembers insertion order.
// Overwriting an existing key keeps its original position.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

func NewMap[V any]() *Map[V] {
	return &Map[V]{
		keys:   make([]string, 0),
		values: make(map[string]V),
	}
}

func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set inserts or overwrites key.
func (m *Map[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *Map[V]) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Each calls fn for every entry in insertion order until fn returns false.
func (m *Map[V]) Each(fn func(key string, value V) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Merge copies every entry of other into m, other wins on collision.
func (m *Map[V]) Merge(other *Map[V]) {
	other.Each(func(k string, v V) bool {
		m.Set(k, v)
		return true
	})
}

// Clone returns a shallow copy.
func (m *Map[V]) Clone() *Map[V] {
	c := NewMap[V]()
	if m == nil {
		return c
	}
	c.keys = append(c.keys, m.keys...)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}
