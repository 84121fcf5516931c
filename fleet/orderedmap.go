package fleet

// orderedMap is a minimal insertion-ordered map: a plain Go map has no
// iteration order, but fleet/jobs snapshots need deterministic, reproducible
// ordering. No ordered-map library appears anywhere in this codebase's
// dependency surface, so this ~40-line type is kept on the standard
// library rather than reaching for an unrelated third-party container.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]V)}
}

func (m *orderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *orderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *orderedMap[K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Delete removes k if present. Removing an absent key is a no-op, not an
// error — the original silently swallows remove-if-absent failures, and
// that is the intended safe semantics here too (only double-completion is
// fatal).
func (m *orderedMap[K, V]) Delete(k K) {
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	for i, key := range m.keys {
		if key == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *orderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns keys in insertion order.
func (m *orderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each iterates values in insertion order.
func (m *orderedMap[K, V]) Each(fn func(k K, v V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Clone performs a shallow copy preserving order; callers deep-copy values
// themselves (see Environment.CartSnapshot/JobSnapshot).
func (m *orderedMap[K, V]) Clone() *orderedMap[K, V] {
	clone := newOrderedMap[K, V]()
	m.Each(func(k K, v V) { clone.Set(k, v) })
	return clone
}
