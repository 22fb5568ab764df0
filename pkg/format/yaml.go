// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/dacolabs/typeconf/pkg/value"
	"gopkg.in/yaml.v3"
)

const (
	yamlNullTag      = "!!null"
	yamlBoolTag      = "!!bool"
	yamlIntTag       = "!!int"
	yamlFloatTag     = "!!float"
	yamlStrTag       = "!!str"
	yamlMergeTag     = "!!merge"
	yamlTimestampTag = "!!timestamp"
)

func decodeYAML(data []byte) (value.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return value.Value{}, err
	}
	// An empty document has no content.
	if root.Kind == 0 {
		return value.Null(), nil
	}
	return fromYAMLNode(&root)
}

func fromYAMLNode(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAMLNode(c)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.Array(items...), nil
	case yaml.MappingNode:
		m := value.NewMap()
		if err := fillYAMLMapping(m, n); err != nil {
			return value.Value{}, err
		}
		return value.Object(m), nil
	default:
		return value.Value{}, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func fillYAMLMapping(m *value.Map, n *yaml.Node) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == yamlMergeTag {
			merges = append(merges, valNode)
			continue
		}
		if keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		item, err := fromYAMLNode(valNode)
		if err != nil {
			return err
		}
		m.Set(keyNode.Value, item)
	}

	// Merged keys never override explicit ones.
	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}
		for _, src := range sources {
			if src.Kind == yaml.AliasNode {
				src = src.Alias
			}
			if src.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
			}
			merged := value.NewMap()
			if err := fillYAMLMapping(merged, src); err != nil {
				return err
			}
			merged.Range(func(k string, v value.Value) bool {
				if _, exists := m.Get(k); !exists {
					m.Set(k, v)
				}
				return true
			})
		}
	}
	return nil
}

func fromYAMLScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case yamlNullTag:
		return value.Null(), nil
	case yamlBoolTag:
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case yamlIntTag:
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	case yamlFloatTag:
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	default:
		// Strings, timestamps and binary stay textual.
		return value.String(n.Value), nil
	}
}

func encodeYAML(v value.Value) ([]byte, error) {
	node, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAMLNode(v value.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case value.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlNullTag, Value: "null"}, nil
	case value.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlBoolTag, Value: strconv.FormatBool(b)}, nil
	case value.KindInt:
		i, _ := v.AsInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlIntTag, Value: strconv.FormatInt(i, 10)}, nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlFloatTag, Value: yamlFloat(f)}, nil
	case value.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: s}, nil
	case value.KindArray:
		items, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range items {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case value.KindMap:
		m, _ := v.AsMap()
		node := &yaml.Node{Kind: yaml.MappingNode}
		var err error
		m.Range(func(k string, item value.Value) bool {
			var child *yaml.Node
			child, err = toYAMLNode(item)
			if err != nil {
				return false
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: k},
				child,
			)
			return true
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unsupported value kind %s", v.Kind())
	}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return value.FormatFloat(f)
}
