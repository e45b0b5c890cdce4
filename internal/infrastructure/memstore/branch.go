package memstore

// Branch is an immutable copy of an interior node.
type Branch struct {
	keys   []string
	values map[string]any
}

func snapshot(n *node) Branch {
	b := Branch{
		keys:   make([]string, len(n.keys)),
		values: make(map[string]any, len(n.keys)),
	}
	copy(b.keys, n.keys)
	for _, k := range n.keys {
		c := n.children[k]
		if c.leaf {
			b.values[k] = c.value
		} else {
			b.values[k] = snapshot(c)
		}
	}
	return b
}

// Keys returns the child keys in insertion order.
func (b Branch) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Get returns a child leaf value or nested Branch.
func (b Branch) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Len returns the number of children.
func (b Branch) Len() int { return len(b.keys) }
