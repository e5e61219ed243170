package lrmap

// accessor implements the read-shaped half of the map façade (spec.md
// section 6: Get, GetOrDefault, ContainsKey, ContainsValue, Size,
// IsEmpty, ForEach) against whatever perform function it's given.
// Reader and Writer each embed one, wired to leftright.Reader.PerformRead
// and leftright.Writer.Read respectively, so the same method bodies
// serve both sides without duplicating them.
type accessor[K comparable, V comparable] struct {
	perform func(f func(m map[K]V) any) any
}

// Get returns the value stored at key and whether it was present.
func (a accessor[K, V]) Get(key K) (V, bool) {
	res := a.perform(func(m map[K]V) any {
		v, ok := m[key]
		return result[V]{value: v, ok: ok}
	}).(result[V])
	return res.value, res.ok
}

// GetOrDefault returns the value at key, or def if key is absent.
func (a accessor[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := a.Get(key); ok {
		return v
	}
	return def
}

// ContainsKey reports whether key is present.
func (a accessor[K, V]) ContainsKey(key K) bool {
	_, ok := a.Get(key)
	return ok
}

// ContainsValue reports whether any key currently maps to value.
func (a accessor[K, V]) ContainsValue(value V) bool {
	return a.perform(func(m map[K]V) any {
		for _, v := range m {
			if v == value {
				return true
			}
		}
		return false
	}).(bool)
}

// Size returns the number of entries in the observed copy.
func (a accessor[K, V]) Size() int {
	return a.perform(func(m map[K]V) any { return len(m) }).(int)
}

// IsEmpty reports whether Size is zero.
func (a accessor[K, V]) IsEmpty() bool {
	return a.Size() == 0
}

// ForEach visits every (key, value) pair present in the observed copy.
// Iteration order is unspecified, matching Go's own map iteration.
func (a accessor[K, V]) ForEach(fn func(key K, value V)) {
	a.perform(func(m map[K]V) any {
		for k, v := range m {
			fn(k, v)
		}
		return nil
	})
}
