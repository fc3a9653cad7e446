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

package registry_test

import (
	"encoding/hex"
	"errors"
	"testing"
	"time"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/internal/test"
	"github.com/blinklabs-io/gour/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedEncode(t *testing.T) {
	creationDate := time.Unix(1614124800, 0).UTC()
	seed := &registry.Seed{
		Payload:      test.DecodeHexString("c7098580125e2ab0981253468b2dbc52"),
		CreationDate: &creationDate,
	}
	u, err := registry.Encode(seed)
	require.NoError(t, err)
	assert.Equal(t, seedCbor, hex.EncodeToString(u.Cbor()))
	assert.Equal(t, seedUR, u.String())
	assert.Equal(t, "zone plus belt wand", seed.Identifier())
}

func TestSeedDecode(t *testing.T) {
	u, err := ur.Parse(seedUR)
	require.NoError(t, err)
	seed, err := registry.DecodeSeed(u)
	require.NoError(t, err)
	assert.Equal(t, "c7098580125e2ab0981253468b2dbc52", hex.EncodeToString(seed.Payload))
	require.NotNil(t, seed.CreationDate)
	assert.True(t, seed.CreationDate.Equal(time.Date(2021, 2, 24, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, seed.Name)
	// The original CBOR is kept
	assert.Equal(t, seedCbor, hex.EncodeToString(seed.Cbor()))
}

func TestSeedKeepsOriginalEncoding(t *testing.T) {
	// Same seed with the map keys out of canonical order
	original := "a202c11a6035970001" + "50c7098580125e2ab0981253468b2dbc52"
	u, err := ur.New("crypto-seed", test.DecodeHexString(original))
	require.NoError(t, err)
	seed, err := registry.DecodeSeed(u)
	require.NoError(t, err)
	encoded, err := registry.Encode(seed)
	require.NoError(t, err)
	assert.Equal(t, original, hex.EncodeToString(encoded.Cbor()))
	// A copy without the stored CBOR gets the canonical encoding
	fresh := &registry.Seed{
		Payload:      seed.Payload,
		CreationDate: seed.CreationDate,
	}
	encoded, err = registry.Encode(fresh)
	require.NoError(t, err)
	assert.Equal(t, seedCbor, hex.EncodeToString(encoded.Cbor()))
}

func TestSeedNameAndNote(t *testing.T) {
	seed := &registry.Seed{
		Payload: []byte{0xaa, 0xbb},
		Name:    "Wolf",
		Note:    "test seed",
	}
	u, err := registry.Encode(seed)
	require.NoError(t, err)
	decoded, err := registry.DecodeSeed(u)
	require.NoError(t, err)
	assert.Equal(t, seed.Payload, decoded.Payload)
	assert.Equal(t, "Wolf", decoded.Name)
	assert.Equal(t, "test seed", decoded.Note)
	assert.Nil(t, decoded.CreationDate)
}

func TestSeedInvalid(t *testing.T) {
	_, err := registry.Encode(&registry.Seed{})
	assert.True(t, errors.Is(err, registry.ErrInvalidPayload))
	// Map without a payload
	u, err := ur.New("crypto-seed", test.DecodeHexString("a10363616263"))
	require.NoError(t, err)
	_, err = registry.DecodeSeed(u)
	assert.True(t, errors.Is(err, registry.ErrInvalidPayload))
	// Wrong type
	u, err = ur.NewFromValue("bytes", []byte{1})
	require.NoError(t, err)
	_, err = registry.DecodeSeed(u)
	assert.True(t, errors.Is(err, ur.ErrUnexpectedType))
}
