package domain

// Choices maps 1-based menu numbers to keys in presentation order.
type Choices []string

// Lookup returns the key numbered n.
func (c Choices) Lookup(n int) (string, bool) {
	if n < 1 || n > len(c) {
		return "", false
	}
	return c[n-1], true
}

// Index returns the choices as an index -> key mapping.
func (c Choices) Index() map[int]string {
	index := make(map[int]string, len(c))
	for i, key := range c {
		index[i+1] = key
	}
	return index
}
