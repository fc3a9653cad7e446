// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"errors"
	"fmt"
	"time"
)

// Value decodes arbitrary CBOR into plain Go values for inspection. Byte strings become
// ByteString so they can be map keys, epoch-time tags become time.Time, and embedded CBOR
// (tag 24) is decoded in place. Other tags, including the UR registry tags, are kept as Tag
// with decoded content
type Value struct {
	value any
	// Stored as a string so that Value stays comparable for use as a map key
	cborData string
}

func (v *Value) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty CBOR data")
	}
	decoded, err := decodeValue(data)
	if err != nil {
		return err
	}
	v.value = decoded
	v.cborData = string(data)
	return nil
}

// Value returns the decoded value
func (v Value) Value() any {
	return v.value
}

// Cbor returns the original CBOR for the value
func (v Value) Cbor() []byte {
	return []byte(v.cborData)
}

func decodeValue(data []byte) (any, error) {
	switch data[0] & CborTypeMask {
	case CborTypeMap:
		return decodeMapValue(data)
	case CborTypeArray:
		var items []Value
		if _, err := Decode(data, &items); err != nil {
			return nil, err
		}
		ret := make([]any, 0, len(items))
		for _, item := range items {
			ret = append(ret, item.value)
		}
		return ret, nil
	case CborTypeByteString:
		var bs ByteString
		if _, err := Decode(data, &bs); err != nil {
			return nil, err
		}
		return bs, nil
	case CborTypeTag:
		return decodeTagValue(data)
	default:
		var ret any
		if _, err := Decode(data, &ret); err != nil {
			return nil, err
		}
		return ret, nil
	}
}

func decodeMapValue(data []byte) (ret any, err error) {
	// Keys that Go can't hash (such as arrays) make the map assignment panic
	defer func() {
		if r := recover(); r != nil {
			ret = nil
			err = fmt.Errorf("map key type not supported: %v", r)
		}
	}()
	var pairs map[Value]Value
	if _, err := Decode(data, &pairs); err != nil {
		return nil, err
	}
	m := make(map[any]any, len(pairs))
	for key, val := range pairs {
		m[key.value] = val.value
	}
	return m, nil
}

func decodeTagValue(data []byte) (any, error) {
	var raw RawTag
	if _, err := Decode(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Number {
	case CborTagEpochTime:
		var t time.Time
		if _, err := Decode(data, &t); err == nil {
			return t, nil
		}
	case CborTagCbor:
		var embedded []byte
		if _, err := Decode(raw.Content, &embedded); err == nil &&
			Wellformed(embedded) == nil {
			var inner Value
			if _, err := Decode(embedded, &inner); err != nil {
				return nil, err
			}
			return Tag{Number: raw.Number, Content: inner.value}, nil
		}
	}
	var content Value
	if _, err := Decode(raw.Content, &content); err != nil {
		return nil, err
	}
	return Tag{Number: raw.Number, Content: content.value}, nil
}
