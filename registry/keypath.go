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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gour/cbor"
)

// PathComponent is a single BIP-32 derivation step
type PathComponent struct {
	Index    uint32
	Hardened bool
	Wildcard bool
}

func (c PathComponent) String() string {
	var ret string
	if c.Wildcard {
		ret = "*"
	} else {
		ret = strconv.FormatUint(uint64(c.Index), 10)
	}
	if c.Hardened {
		ret += "'"
	}
	return ret
}

// Keypath is the crypto-keypath structure (tag 304)
type Keypath struct {
	Components        []PathComponent
	SourceFingerprint uint32
	Depth             *uint8
}

type keypathCbor struct {
	Components        []cbor.RawMessage `cbor:"1,keyasint"`
	SourceFingerprint uint32            `cbor:"2,keyasint,omitempty"`
	Depth             *uint8            `cbor:"3,keyasint,omitempty"`
}

// ParseKeypath parses a path like m/44'/0'/0'/0/*. Both ' and h mark a hardened component
func ParseKeypath(path string) (*Keypath, error) {
	components := strings.Split(path, "/")
	if components[0] == "m" {
		components = components[1:]
	}
	ret := &Keypath{
		Components: make([]PathComponent, 0, len(components)),
	}
	for _, component := range components {
		var tmp PathComponent
		if trimmed, ok := strings.CutSuffix(component, "'"); ok {
			component = trimmed
			tmp.Hardened = true
		} else if trimmed, ok := strings.CutSuffix(component, "h"); ok {
			component = trimmed
			tmp.Hardened = true
		}
		if component == "*" {
			tmp.Wildcard = true
		} else {
			index, err := strconv.ParseUint(component, 10, 31)
			if err != nil {
				return nil, fmt.Errorf("invalid path component %q: %w", component, err)
			}
			tmp.Index = uint32(index)
		}
		ret.Components = append(ret.Components, tmp)
	}
	return ret, nil
}

// String returns the path in m/44'/0'/0' form
func (k *Keypath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, c := range k.Components {
		sb.WriteString("/")
		sb.WriteString(c.String())
	}
	return sb.String()
}

// PathDepth returns the explicit depth if present, otherwise the number of components
func (k *Keypath) PathDepth() uint8 {
	if k.Depth != nil {
		return *k.Depth
	}
	return uint8(len(k.Components))
}

func (k *Keypath) MarshalCBOR() ([]byte, error) {
	tmp := keypathCbor{
		Components:        make([]cbor.RawMessage, 0, len(k.Components)*2),
		SourceFingerprint: k.SourceFingerprint,
		Depth:             k.Depth,
	}
	for _, c := range k.Components {
		var index any = c.Index
		if c.Wildcard {
			index = []uint32{}
		}
		indexCbor, err := cbor.Encode(index)
		if err != nil {
			return nil, err
		}
		hardenedCbor, err := cbor.Encode(c.Hardened)
		if err != nil {
			return nil, err
		}
		tmp.Components = append(tmp.Components, indexCbor, hardenedCbor)
	}
	return cbor.Encode(&tmp)
}

func (k *Keypath) UnmarshalCBOR(cborData []byte) error {
	var tmp keypathCbor
	if _, err := cbor.Decode(cborData, &tmp); err != nil {
		return err
	}
	if len(tmp.Components)%2 != 0 {
		return errors.New("keypath components must be index and hardened pairs")
	}
	k.Components = make([]PathComponent, 0, len(tmp.Components)/2)
	for i := 0; i < len(tmp.Components); i += 2 {
		var c PathComponent
		indexCbor := tmp.Components[i]
		if len(indexCbor) > 0 &&
			indexCbor[0]&cbor.CborTypeMask == cbor.CborTypeArray {
			var wildcard []uint32
			if _, err := cbor.Decode(indexCbor, &wildcard); err != nil {
				return err
			}
			// Ranges ([low, high]) aren't supported
			if len(wildcard) != 0 {
				return errors.New("keypath ranges are not supported")
			}
			c.Wildcard = true
		} else if _, err := cbor.Decode(indexCbor, &c.Index); err != nil {
			return err
		}
		if _, err := cbor.Decode(tmp.Components[i+1], &c.Hardened); err != nil {
			return err
		}
		k.Components = append(k.Components, c)
	}
	k.SourceFingerprint = tmp.SourceFingerprint
	k.Depth = tmp.Depth
	return nil
}
