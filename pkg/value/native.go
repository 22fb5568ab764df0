// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package value

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// KeyOrder records the order in which map keys were seen in a source
// document, keyed by the path of the enclosing map.
type KeyOrder map[string][]string

const pathSep = "\x00"

// Add records key under the map at path unless it is already known.
func (o KeyOrder) Add(path []string, key string) {
	p := strings.Join(path, pathSep)
	for _, k := range o[p] {
		if k == key {
			return
		}
	}
	o[p] = append(o[p], key)
}

func (o KeyOrder) keys(path []string) []string {
	if o == nil {
		return nil
	}
	return o[strings.Join(path, pathSep)]
}

// FromAny converts a decoded Go value (as produced by encoding/json,
// yaml.v3 or BurntSushi/toml) into a Value. Map keys are sorted.
func FromAny(v any) (Value, error) {
	return FromAnyOrdered(v, nil)
}

// FromAnyOrdered is FromAny with map keys ordered by order. Keys missing
// from order follow in sorted order. Elements of an array share the path of
// the array.
func FromAnyOrdered(v any, order KeyOrder) (Value, error) {
	return fromAny(v, nil, order)
}

func fromAny(v any, path []string, order KeyOrder) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return fromJSONNumber(t)
	case time.Time:
		return String(t.Format(time.RFC3339Nano)), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			iv, err := fromAny(item, path, order)
			if err != nil {
				return Value{}, err
			}
			items[i] = iv
		}
		return Array(items...), nil
	case []map[string]any:
		items := make([]Value, len(t))
		for i, item := range t {
			iv, err := fromAny(item, path, order)
			if err != nil {
				return Value{}, err
			}
			items[i] = iv
		}
		return Array(items...), nil
	case map[string]any:
		m := NewMap()
		for _, k := range orderedKeys(t, order.keys(path)) {
			child, err := fromAny(t[k], append(path[:len(path):len(path)], k), order)
			if err != nil {
				return Value{}, err
			}
			m.Set(k, child)
		}
		return Object(m), nil
	case fmt.Stringer:
		// TOML local dates and times.
		return String(t.String()), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("integer %d overflows int64", u)
	}
	return Int(int64(u)), nil
}

func fromJSONNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Float(f), nil
}

func orderedKeys(m map[string]any, seen []string) []string {
	out := make([]string, 0, len(m))
	used := make(map[string]bool, len(m))
	for _, k := range seen {
		if _, ok := m[k]; ok && !used[k] {
			out = append(out, k)
			used[k] = true
		}
	}
	rest := make([]string, 0, len(m)-len(out))
	for k := range m {
		if !used[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// ToAny converts v into plain Go values: nil, bool, int64, float64, string,
// []any and map[string]any.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = ToAny(item)
		}
		return out
	case KindMap:
		out := make(map[string]any, v.m.Len())
		v.m.Range(func(k string, item Value) bool {
			out[k] = ToAny(item)
			return true
		})
		return out
	default:
		return nil
	}
}
