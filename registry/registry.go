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

// Package registry maps UR types to the closed set of payloads this module understands and
// provides typed encoding and decoding for each of them.
package registry

import (
	"fmt"
	"slices"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/cbor"
)

// Kind identifies a supported payload
type Kind int

const (
	KindUnknown Kind = iota
	KindBytes
	KindSeed
	KindHDKey
	KindPSBT
)

const (
	TypeBytes = "bytes"
	TypeSeed  = "crypto-seed"
	TypeHDKey = "crypto-hdkey"
	TypePSBT  = "crypto-psbt"
)

var kindTypes = map[Kind]string{
	KindBytes: TypeBytes,
	KindSeed:  TypeSeed,
	KindHDKey: TypeHDKey,
	KindPSBT:  TypePSBT,
}

func (k Kind) String() string {
	if t, ok := kindTypes[k]; ok {
		return t
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Payload is implemented by every supported payload type
type Payload interface {
	Kind() Kind
}

// TypeOf returns the UR type for a kind, or an empty string for an unknown kind
func TypeOf(kind Kind) string {
	return kindTypes[kind]
}

// KindOf returns the kind for a UR type
func KindOf(urType string) (Kind, error) {
	for kind, t := range kindTypes {
		if t == urType {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %s", ErrUnsupportedType, urType)
}

// SupportedTypes returns the sorted list of UR types known to the registry
func SupportedTypes() []string {
	ret := make([]string, 0, len(kindTypes))
	for _, t := range kindTypes {
		ret = append(ret, t)
	}
	slices.Sort(ret)
	return ret
}

// Decode decodes the payload of u into the matching payload type
func Decode(u *ur.UR) (Payload, error) {
	if err := u.CheckTypeIn(SupportedTypes()...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	kind, err := KindOf(u.Type())
	if err != nil {
		return nil, err
	}
	var ret Payload
	switch kind {
	case KindBytes:
		var tmp Bytes
		if err := u.Decode(&tmp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		ret = tmp
	case KindPSBT:
		var tmp PSBT
		if err := u.Decode(&tmp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		ret = tmp
	case KindSeed:
		tmp := &Seed{}
		if err := u.Decode(tmp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		ret = tmp
	case KindHDKey:
		tmp := &HDKey{}
		if err := u.Decode(tmp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		ret = tmp
	}
	return ret, nil
}

// Encode wraps a payload in a UR of the matching type
func Encode(p Payload) (*ur.UR, error) {
	urType := TypeOf(p.Kind())
	if urType == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, p.Kind())
	}
	if v, ok := p.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	cborData, err := cbor.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return ur.New(urType, cborData)
}

// DecodeSeed decodes u, which must be a crypto-seed
func DecodeSeed(u *ur.UR) (*Seed, error) {
	if err := u.CheckType(TypeSeed); err != nil {
		return nil, err
	}
	p, err := Decode(u)
	if err != nil {
		return nil, err
	}
	return p.(*Seed), nil
}

// DecodeHDKey decodes u, which must be a crypto-hdkey
func DecodeHDKey(u *ur.UR) (*HDKey, error) {
	if err := u.CheckType(TypeHDKey); err != nil {
		return nil, err
	}
	p, err := Decode(u)
	if err != nil {
		return nil, err
	}
	return p.(*HDKey), nil
}

// DecodePSBT decodes u, which must be a crypto-psbt
func DecodePSBT(u *ur.UR) (PSBT, error) {
	if err := u.CheckType(TypePSBT); err != nil {
		return nil, err
	}
	p, err := Decode(u)
	if err != nil {
		return nil, err
	}
	return p.(PSBT), nil
}
