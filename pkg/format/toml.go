// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/dacolabs/typeconf/pkg/value"
)

func decodeTOML(data []byte) (value.Value, error) {
	doc := make(map[string]any)
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return value.Value{}, err
	}

	// MetaData keys come back in document order; use them to order maps.
	order := value.KeyOrder{}
	for _, key := range md.Keys() {
		if len(key) == 0 {
			continue
		}
		order.Add(key[:len(key)-1], key[len(key)-1])
	}

	return value.FromAnyOrdered(doc, order)
}

// encodeTOML requires a mapping at the root. TOML has no null: null map
// entries are omitted and null array items are rejected.
func encodeTOML(v value.Value) ([]byte, error) {
	m, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("document root must be a table, got %s", v.Kind())
	}
	doc, err := tomlTable(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tomlTable(m *value.Map) (map[string]any, error) {
	out := make(map[string]any, m.Len())
	var err error
	m.Range(func(k string, item value.Value) bool {
		if item.IsNull() {
			return true
		}
		var native any
		native, err = tomlNative(item)
		if err != nil {
			err = fmt.Errorf("key %q: %w", k, err)
			return false
		}
		out[k] = native
		return true
	})
	return out, err
}

func tomlNative(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, errors.New("null cannot be represented in TOML")
	case value.KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i, item := range items {
			native, err := tomlNative(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = native
		}
		return out, nil
	case value.KindMap:
		m, _ := v.AsMap()
		return tomlTable(m)
	default:
		return value.ToAny(v), nil
	}
}
