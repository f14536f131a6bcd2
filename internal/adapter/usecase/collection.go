package usecase

// Collection is an ordered list of items addressed by a comparable key. It
// backs the seller, product and campaign lists so inserts, replacements and
// removals behave the same everywhere. It is not safe for concurrent use;
// owners guard it with their own lock.
type Collection[K comparable, V any] struct {
	key   func(V) K
	items []V
}

// NewCollection returns a collection keyed by key and holding items.
func NewCollection[K comparable, V any](key func(V) K, items ...V) *Collection[K, V] {
	c := &Collection[K, V]{key: key}
	c.Reset(items)
	return c
}

// Reset replaces the whole content.
func (c *Collection[K, V]) Reset(items []V) {
	c.items = append(make([]V, 0, len(items)), items...)
}

// Insert appends v at the end.
func (c *Collection[K, V]) Insert(v V) {
	c.items = append(c.items, v)
}

// Replace swaps the item whose key matches v's key, keeping its position.
// It reports whether an item was replaced.
func (c *Collection[K, V]) Replace(v V) bool {
	k := c.key(v)
	for i := range c.items {
		if c.key(c.items[i]) == k {
			c.items[i] = v
			return true
		}
	}
	return false
}

// Remove deletes every item with key k and reports whether any was found.
func (c *Collection[K, V]) Remove(k K) bool {
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if c.key(item) == k {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	var zero V
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

// Get returns the item with key k.
func (c *Collection[K, V]) Get(k K) (V, bool) {
	for _, item := range c.items {
		if c.key(item) == k {
			return item, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of items.
func (c *Collection[K, V]) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in order.
func (c *Collection[K, V]) Items() []V {
	return append([]V(nil), c.items...)
}
