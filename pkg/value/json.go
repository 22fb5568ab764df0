// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON encodes v as compact JSON, keeping map key order and writing
// integral floats with a fractional part so they decode back as floats.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("unsupported float value %s", FormatFloat(v.f))
		}
		buf.WriteString(FormatFloat(v.f))
	case KindString:
		s, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		var err error
		first := true
		v.m.Range(func(k string, item Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, kerr := json.Marshal(k)
			if kerr != nil {
				err = kerr
				return false
			}
			buf.Write(key)
			buf.WriteByte(':')
			err = writeJSON(buf, item)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	}
	return nil
}
