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

package registry

import (
	"encoding/binary"
	"fmt"

	"github.com/blinklabs-io/gour/cbor"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	hdKeyDataLen   = 33
	hdChainCodeLen = 32
)

// HDKey is a crypto-hdkey payload describing a BIP-32 extended key
type HDKey struct {
	cbor.DecodeStoreCbor
	IsMaster          bool
	IsPrivate         bool
	KeyData           []byte
	ChainCode         []byte
	UseInfo           *CoinInfo
	Origin            *Keypath
	Children          *Keypath
	ParentFingerprint uint32
	Name              string
	Note              string
}

type hdKeyCbor struct {
	IsMaster          bool             `cbor:"1,keyasint,omitempty"`
	IsPrivate         bool             `cbor:"2,keyasint,omitempty"`
	KeyData           []byte           `cbor:"3,keyasint"`
	ChainCode         []byte           `cbor:"4,keyasint,omitempty"`
	UseInfo           *cbor.RawMessage `cbor:"5,keyasint,omitempty"`
	Origin            *cbor.RawMessage `cbor:"6,keyasint,omitempty"`
	Children          *cbor.RawMessage `cbor:"7,keyasint,omitempty"`
	ParentFingerprint uint32           `cbor:"8,keyasint,omitempty"`
	Name              string           `cbor:"9,keyasint,omitempty"`
	Note              string           `cbor:"10,keyasint,omitempty"`
}

func (h *HDKey) Kind() Kind {
	return KindHDKey
}

func (h *HDKey) Validate() error {
	if len(h.KeyData) != hdKeyDataLen {
		return fmt.Errorf(
			"%w: key data must be %d bytes, got %d",
			ErrInvalidPayload,
			hdKeyDataLen,
			len(h.KeyData),
		)
	}
	if len(h.ChainCode) != 0 && len(h.ChainCode) != hdChainCodeLen {
		return fmt.Errorf(
			"%w: chain code must be %d bytes, got %d",
			ErrInvalidPayload,
			hdChainCodeLen,
			len(h.ChainCode),
		)
	}
	if h.IsMaster && len(h.ChainCode) == 0 {
		return fmt.Errorf("%w: master key without chain code", ErrInvalidPayload)
	}
	if h.IsPrivate && h.KeyData[0] != 0 {
		return fmt.Errorf("%w: private key data must start with 0x00", ErrInvalidPayload)
	}
	return nil
}

func (h *HDKey) MarshalCBOR() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	tmp := hdKeyCbor{
		IsMaster:          h.IsMaster,
		IsPrivate:         h.IsPrivate && !h.IsMaster,
		KeyData:           h.KeyData,
		ChainCode:         h.ChainCode,
		ParentFingerprint: h.ParentFingerprint,
		Name:              h.Name,
		Note:              h.Note,
	}
	var err error
	if h.UseInfo != nil {
		if tmp.UseInfo, err = encodeTaggedRaw(cbor.CborTagCryptoCoinInfo, h.UseInfo); err != nil {
			return nil, err
		}
	}
	if h.Origin != nil {
		if tmp.Origin, err = encodeTaggedRaw(cbor.CborTagCryptoKeypath, h.Origin); err != nil {
			return nil, err
		}
	}
	if h.Children != nil {
		if tmp.Children, err = encodeTaggedRaw(cbor.CborTagCryptoKeypath, h.Children); err != nil {
			return nil, err
		}
	}
	return cbor.Encode(&tmp)
}

func (h *HDKey) UnmarshalCBOR(cborData []byte) error {
	var tmp hdKeyCbor
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	h.IsMaster = tmp.IsMaster
	// Master keys are always private
	h.IsPrivate = tmp.IsPrivate || tmp.IsMaster
	h.KeyData = tmp.KeyData
	h.ChainCode = tmp.ChainCode
	h.ParentFingerprint = tmp.ParentFingerprint
	h.Name = tmp.Name
	h.Note = tmp.Note
	if tmp.UseInfo != nil {
		h.UseInfo = &CoinInfo{}
		if err := cbor.DecodeTagged(*tmp.UseInfo, cbor.CborTagCryptoCoinInfo, h.UseInfo); err != nil {
			return err
		}
	}
	if tmp.Origin != nil {
		h.Origin = &Keypath{}
		if err := cbor.DecodeTagged(*tmp.Origin, cbor.CborTagCryptoKeypath, h.Origin); err != nil {
			return err
		}
	}
	if tmp.Children != nil {
		h.Children = &Keypath{}
		if err := cbor.DecodeTagged(*tmp.Children, cbor.CborTagCryptoKeypath, h.Children); err != nil {
			return err
		}
	}
	if err := h.Validate(); err != nil {
		return err
	}
	h.SetCbor(cborData)
	return nil
}

// ExtendedKey returns the BIP-32 extended key, which renders as an xpub/xprv (or tpub/tprv on
// testnet) string
func (h *HDKey) ExtendedKey() (*hdkeychain.ExtendedKey, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if len(h.ChainCode) == 0 {
		return nil, fmt.Errorf("%w: key has no chain code", ErrInvalidPayload)
	}
	params := &chaincfg.MainNetParams
	if h.UseInfo != nil && h.UseInfo.Network == NetworkTestnet {
		params = &chaincfg.TestNet3Params
	}
	version := params.HDPublicKeyID[:]
	key := h.KeyData
	if h.IsPrivate {
		version = params.HDPrivateKeyID[:]
		// Strip the 0x00 prefix
		key = key[1:]
	}
	var depth uint8
	var childNum uint32
	if !h.IsMaster && h.Origin != nil {
		depth = h.Origin.PathDepth()
		if len(h.Origin.Components) > 0 {
			last := h.Origin.Components[len(h.Origin.Components)-1]
			childNum = last.Index
			if last.Hardened {
				childNum += hdkeychain.HardenedKeyStart
			}
		}
	}
	parentFP := binary.BigEndian.AppendUint32(nil, h.ParentFingerprint)
	return hdkeychain.NewExtendedKey(
		version,
		key,
		h.ChainCode,
		parentFP,
		depth,
		childNum,
		h.IsPrivate,
	), nil
}

// Fingerprint returns the first 4 bytes of the HASH160 of the public key
func (h *HDKey) Fingerprint() (uint32, error) {
	if err := h.Validate(); err != nil {
		return 0, err
	}
	pubKey := h.KeyData
	if h.IsPrivate {
		if len(h.ChainCode) == 0 {
			return 0, fmt.Errorf("%w: key has no chain code", ErrInvalidPayload)
		}
		extKey, err := h.ExtendedKey()
		if err != nil {
			return 0, err
		}
		ecPubKey, err := extKey.ECPubKey()
		if err != nil {
			return 0, err
		}
		pubKey = ecPubKey.SerializeCompressed()
	}
	return binary.BigEndian.Uint32(btcutil.Hash160(pubKey)[:4]), nil
}

func encodeTaggedRaw(number uint64, content any) (*cbor.RawMessage, error) {
	data, err := cbor.EncodeTagged(number, content)
	if err != nil {
		return nil, err
	}
	raw := cbor.RawMessage(data)
	return &raw, nil
}
