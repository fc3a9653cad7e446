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

package ur_test

import (
	"errors"
	"strings"
	"testing"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/cbor"
	"github.com/blinklabs-io/gour/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singlePartUR = "ur:bytes/hdeymejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtgwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsdwkbrkch"

func TestURString(t *testing.T) {
	u, err := ur.New("bytes", test.BytesCbor(test.MakeMessage(50, "Wolf")))
	require.NoError(t, err)
	assert.Equal(t, "bytes", u.Type())
	assert.Equal(t, singlePartUR, u.String())
	assert.Equal(t, strings.ToUpper(singlePartUR), u.QRString())
	assert.Equal(t, singlePartUR, ur.EncodeSinglePart(u))
}

func TestParse(t *testing.T) {
	expected := test.BytesCbor(test.MakeMessage(50, "Wolf"))
	for _, s := range []string{singlePartUR, strings.ToUpper(singlePartUR)} {
		u, err := ur.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, "bytes", u.Type())
		assert.Equal(t, expected, u.Cbor())
		var payload []byte
		require.NoError(t, u.Decode(&payload))
		assert.Equal(t, test.MakeMessage(50, "Wolf"), payload)
	}
	u, err := ur.DecodeSinglePart(singlePartUR)
	require.NoError(t, err)
	assert.Equal(t, "bytes", u.Type())
}

func TestParseInvalid(t *testing.T) {
	testDefs := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "missing scheme", input: "bytes/aeaeaeae", expected: ur.ErrInvalidScheme},
		{name: "wrong scheme", input: "uri:bytes/aeaeaeae", expected: ur.ErrInvalidScheme},
		{name: "no body", input: "ur:bytes", expected: ur.ErrInvalidPathLength},
		{name: "multi-part", input: "ur:bytes/1-2/aeaeaeae", expected: ur.ErrInvalidPathLength},
		{name: "empty type", input: "ur:/aeaeaeae", expected: ur.ErrInvalidType},
		{name: "bad type", input: "ur:by_tes/aeaeaeae", expected: ur.ErrInvalidType},
		{name: "bad bytewords", input: "ur:bytes/xxxxxxxx", expected: ur.ErrInvalidFragment},
		{name: "bad checksum", input: "ur:bytes/aeaeaeao", expected: ur.ErrInvalidFragment},
		// Four checksum words with no payload at all
		{name: "empty payload", input: "ur:bytes/aeaeaeae", expected: ur.ErrInvalidCbor},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := ur.Parse(testDef.input)
			require.Error(t, err)
			assert.True(
				t,
				errors.Is(err, testDef.expected),
				"got error: %s",
				err,
			)
		})
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := ur.New("Bytes", []byte{0x40})
	assert.True(t, errors.Is(err, ur.ErrInvalidType))
	_, err = ur.New("", []byte{0x40})
	assert.True(t, errors.Is(err, ur.ErrInvalidType))
	_, err = ur.New("bytes", nil)
	assert.True(t, errors.Is(err, ur.ErrInvalidCbor))
	// Truncated byte string
	_, err = ur.New("bytes", []byte{0x43, 0x01})
	assert.True(t, errors.Is(err, ur.ErrInvalidCbor))
	// Trailing data after the first item
	_, err = ur.New("bytes", []byte{0x40, 0x40})
	assert.True(t, errors.Is(err, ur.ErrInvalidCbor))
}

func TestIsValidType(t *testing.T) {
	for _, valid := range []string{"bytes", "crypto-seed", "crypto-hdkey", "x1-y2"} {
		assert.True(t, ur.IsValidType(valid), valid)
	}
	for _, invalid := range []string{"", "Bytes", "crypto_seed", "crypto seed", "ü"} {
		assert.False(t, ur.IsValidType(invalid), invalid)
	}
}

func TestNewFromValue(t *testing.T) {
	u, err := ur.NewFromValue("bytes", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x43, 1, 2, 3}, u.Cbor())
	parsed, err := ur.Parse(u.String())
	require.NoError(t, err)
	assert.True(t, u.Equal(parsed))
	value, err := parsed.Value()
	require.NoError(t, err)
	assert.Equal(t, cbor.NewByteString([]byte{1, 2, 3}), value)
	other, err := ur.NewFromValue("crypto-psbt", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, u.Equal(other))
}

func TestCheckType(t *testing.T) {
	u, err := ur.NewFromValue("crypto-seed", map[int][]byte{1: {0xff}})
	require.NoError(t, err)
	require.NoError(t, u.CheckType("crypto-seed"))
	err = u.CheckType("bytes")
	assert.True(t, errors.Is(err, ur.ErrUnexpectedType))
	require.NoError(t, u.CheckTypeIn("bytes", "crypto-seed"))
	err = u.CheckTypeIn("bytes", "crypto-psbt")
	assert.True(t, errors.Is(err, ur.ErrUnexpectedType))
}

func TestCborIsCopied(t *testing.T) {
	data := []byte{0x43, 1, 2, 3}
	u, err := ur.New("bytes", data)
	require.NoError(t, err)
	data[1] = 0xff
	out := u.Cbor()
	out[2] = 0xff
	assert.Equal(t, []byte{0x43, 1, 2, 3}, u.Cbor())
}

func TestStandardBytewordsRoundTrip(t *testing.T) {
	encoded := bytewords.Encode([]byte{1, 2, 3}, bytewords.StyleStandard)
	assert.Equal(t, "acid also apex gyro roof lava cola", encoded)
	decoded, err := bytewords.Decode(encoded, bytewords.StyleStandard)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, decoded)
}
