// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dacolabs/typeconf/pkg/value"
)

// decodeJSON walks the token stream so object key order survives decoding.
func decodeJSON(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := readJSONValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return value.Value{}, errors.New("unexpected end of JSON input")
		}
		return value.Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return value.Value{}, err
		}
		return value.Value{}, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func readJSONValue(dec *json.Decoder) (value.Value, error) {
	token, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := value.NewMap()
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return value.Value{}, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return value.Value{}, fmt.Errorf("unexpected object key %v", keyToken)
				}
				item, err := readJSONValue(dec)
				if err != nil {
					return value.Value{}, err
				}
				m.Set(key, item)
			}
			if _, err := dec.Token(); err != nil {
				return value.Value{}, err
			}
			return value.Object(m), nil
		case '[':
			items := []value.Value{}
			for dec.More() {
				item, err := readJSONValue(dec)
				if err != nil {
					return value.Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return value.Value{}, err
			}
			return value.Array(items...), nil
		default:
			return value.Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return value.FromAny(t)
	}
}

func encodeJSON(v value.Value) ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
