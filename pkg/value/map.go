// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package value

// Map is a string-keyed map that remembers insertion order.
// Replacing an existing key keeps its position.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v under key, appending the key if it is new.
func (m *Map) Set(key string, v Value) {
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.entries[key]; !ok {
		return false
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in order. The slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for each entry in order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	out := NewMap()
	m.Range(func(k string, v Value) bool {
		out.Set(k, v.Clone())
		return true
	})
	return out
}

// Equal reports whether both maps hold equal values under the same keys.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(k string, v Value) bool {
		ov, ok := other.Get(k)
		if !ok || !Equal(v, ov) {
			equal = false
		}
		return equal
	})
	return equal
}
