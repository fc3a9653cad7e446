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

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/internal/test"
	"github.com/blinklabs-io/gour/internal/testdata"
	"github.com/blinklabs-io/gour/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BIP-32 test vector 1
const (
	masterPrivKey   = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
	masterChainCode = "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"
	masterXprv      = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	masterXpub      = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	childPubKey     = "035a784662a4a20a65bf6aab9ae98a6c068a81c52e4b032c0fb5400c706cfccc56"
	childChainCode  = "47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141"
	childXpub       = "xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw"

	masterHDKeyCbor = "a301f503582100" + masterPrivKey + "045820" + masterChainCode
	masterHDKeyUR   = testdata.MasterHDKeyUR
)

func masterHDKey() *registry.HDKey {
	return &registry.HDKey{
		IsMaster:  true,
		IsPrivate: true,
		KeyData:   test.DecodeHexString("00" + masterPrivKey),
		ChainCode: test.DecodeHexString(masterChainCode),
	}
}

func TestHDKeyMaster(t *testing.T) {
	u, err := registry.Encode(masterHDKey())
	require.NoError(t, err)
	assert.Equal(t, masterHDKeyCbor, hex.EncodeToString(u.Cbor()))
	assert.Equal(t, masterHDKeyUR, u.String())
	parsed, err := ur.Parse(masterHDKeyUR)
	require.NoError(t, err)
	hdKey, err := registry.DecodeHDKey(parsed)
	require.NoError(t, err)
	assert.True(t, hdKey.IsMaster)
	assert.True(t, hdKey.IsPrivate)
	assert.Equal(t, masterHDKeyCbor, hex.EncodeToString(hdKey.Cbor()))
	extKey, err := hdKey.ExtendedKey()
	require.NoError(t, err)
	assert.Equal(t, masterXprv, extKey.String())
	pubKey, err := extKey.Neuter()
	require.NoError(t, err)
	assert.Equal(t, masterXpub, pubKey.String())
	fingerprint, err := hdKey.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x3442193e), fingerprint)
}

func TestHDKeyDerived(t *testing.T) {
	origin, err := registry.ParseKeypath("m/0'")
	require.NoError(t, err)
	origin.SourceFingerprint = 0x3442193e
	children, err := registry.ParseKeypath("m/1/*")
	require.NoError(t, err)
	hdKey := &registry.HDKey{
		KeyData:           test.DecodeHexString(childPubKey),
		ChainCode:         test.DecodeHexString(childChainCode),
		UseInfo:           &registry.CoinInfo{Type: registry.CoinTypeBTC, Network: registry.NetworkMainnet},
		Origin:            origin,
		Children:          children,
		ParentFingerprint: 0x3442193e,
		Name:              "account",
	}
	extKey, err := hdKey.ExtendedKey()
	require.NoError(t, err)
	assert.Equal(t, childXpub, extKey.String())
	fingerprint, err := hdKey.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5c1bd648), fingerprint)
	u, err := registry.Encode(hdKey)
	require.NoError(t, err)
	parsed, err := ur.Parse(u.QRString())
	require.NoError(t, err)
	decoded, err := registry.DecodeHDKey(parsed)
	require.NoError(t, err)
	assert.False(t, decoded.IsMaster)
	assert.False(t, decoded.IsPrivate)
	assert.Equal(t, hdKey.KeyData, decoded.KeyData)
	assert.Equal(t, hdKey.ChainCode, decoded.ChainCode)
	assert.Equal(t, hdKey.UseInfo, decoded.UseInfo)
	require.NotNil(t, decoded.Origin)
	assert.Equal(t, "m/0'", decoded.Origin.String())
	assert.Equal(t, uint32(0x3442193e), decoded.Origin.SourceFingerprint)
	require.NotNil(t, decoded.Children)
	assert.Equal(t, "m/1/*", decoded.Children.String())
	assert.Equal(t, uint32(0x3442193e), decoded.ParentFingerprint)
	assert.Equal(t, "account", decoded.Name)
}

func TestHDKeyTestnet(t *testing.T) {
	hdKey := masterHDKey()
	hdKey.UseInfo = &registry.CoinInfo{Network: registry.NetworkTestnet}
	extKey, err := hdKey.ExtendedKey()
	require.NoError(t, err)
	assert.Equal(t, "tprv", extKey.String()[:4])
}

func TestHDKeyInvalid(t *testing.T) {
	testDefs := []struct {
		name  string
		hdKey *registry.HDKey
	}{
		{
			name:  "short key data",
			hdKey: &registry.HDKey{KeyData: []byte{2, 3}},
		},
		{
			name: "short chain code",
			hdKey: &registry.HDKey{
				KeyData:   test.DecodeHexString(childPubKey),
				ChainCode: []byte{1, 2, 3},
			},
		},
		{
			name: "master without chain code",
			hdKey: &registry.HDKey{
				IsMaster: true,
				KeyData:  test.DecodeHexString("00" + masterPrivKey),
			},
		},
		{
			name: "private key without prefix",
			hdKey: &registry.HDKey{
				IsPrivate: true,
				KeyData:   test.DecodeHexString("01" + masterPrivKey),
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := registry.Encode(testDef.hdKey)
			assert.True(t, errors.Is(err, registry.ErrInvalidPayload))
		})
	}
	// Public key with no chain code can't be rendered as an extended key
	hdKey := &registry.HDKey{KeyData: test.DecodeHexString(childPubKey)}
	_, err := hdKey.ExtendedKey()
	assert.True(t, errors.Is(err, registry.ErrInvalidPayload))
	// But it does have a fingerprint
	fingerprint, err := hdKey.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5c1bd648), fingerprint)
}
