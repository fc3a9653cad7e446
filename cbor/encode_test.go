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

package cbor_test

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/blinklabs-io/gour/cbor"
	"github.com/blinklabs-io/gour/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestKeyAsInt struct {
	Second uint `cbor:"2,keyasint"`
	First  uint `cbor:"1,keyasint"`
}

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted
	{
		CborHex: "a2616102616201",
		Object:  map[string]int{"b": 1, "a": 2},
	},
	// Integer map keys from struct tags are sorted
	{
		CborHex: "a201060205",
		Object:  encodeTestKeyAsInt{Second: 5, First: 6},
	},
	// Dates are tagged
	{
		CborHex: "c11a5f5e1000",
		Object:  time.Unix(1600000000, 0),
	},
	// Tagged content
	{
		CborHex: "d90130a10183182cf500",
		Object: cbor.Tag{
			Number:  cbor.CborTagCryptoKeypath,
			Content: map[uint]any{1: []any{44, true, 0}},
		},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

type encodeGenericTestObject struct {
	cbor.DecodeStoreCbor
	Name  string `cbor:"1,keyasint"`
	Count uint   `cbor:"2,keyasint,omitempty"`
}

func (o *encodeGenericTestObject) UnmarshalCBOR(data []byte) error {
	if err := cbor.DecodeGeneric(data, o); err != nil {
		return err
	}
	o.SetCbor(data)
	return nil
}

func (o *encodeGenericTestObject) MarshalCBOR() ([]byte, error) {
	if cborData := o.Cbor(); cborData != nil {
		return cborData, nil
	}
	return cbor.EncodeGeneric(o)
}

func TestEncodeGeneric(t *testing.T) {
	obj := &encodeGenericTestObject{Name: "wolf", Count: 3}
	cborData, err := cbor.Encode(obj)
	require.NoError(t, err)
	assert.Equal(t, "a20164776f6c660203", hex.EncodeToString(cborData))
	// Non-canonical input is re-encoded as received
	original := test.DecodeHexString("a202030164776f6c66")
	var decoded encodeGenericTestObject
	_, err = cbor.Decode(original, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "wolf", decoded.Name)
	cborData, err = cbor.Encode(&decoded)
	require.NoError(t, err)
	assert.Equal(t, original, cborData)
}

func TestEncodeGenericRequiresStructPointer(t *testing.T) {
	_, err := cbor.EncodeGeneric(encodeGenericTestObject{})
	require.Error(t, err)
	_, err = cbor.EncodeGeneric([]int{1})
	require.Error(t, err)
}
