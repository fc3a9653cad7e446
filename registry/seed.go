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
	"fmt"
	"time"

	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/cbor"
)

// Seed is a crypto-seed payload
type Seed struct {
	cbor.DecodeStoreCbor
	Payload      []byte     `cbor:"1,keyasint"`
	CreationDate *time.Time `cbor:"2,keyasint,omitempty"`
	Name         string     `cbor:"3,keyasint,omitempty"`
	Note         string     `cbor:"4,keyasint,omitempty"`
}

func (s *Seed) Kind() Kind {
	return KindSeed
}

func (s *Seed) UnmarshalCBOR(cborData []byte) error {
	if err := cbor.DecodeGeneric(cborData, s); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	s.SetCbor(cborData)
	return nil
}

// MarshalCBOR returns the CBOR the seed was decoded from, or a fresh encoding for a seed
// built in code
func (s *Seed) MarshalCBOR() ([]byte, error) {
	if cborData := s.Cbor(); cborData != nil {
		return cborData, nil
	}
	return cbor.EncodeGeneric(s)
}

func (s *Seed) Validate() error {
	if len(s.Payload) == 0 {
		return fmt.Errorf("%w: empty seed", ErrInvalidPayload)
	}
	return nil
}

// Identifier returns the bytewords checksum of the seed, which is short enough to be compared
// by a person on two devices
func (s *Seed) Identifier() string {
	return bytewords.ChecksumWords(s.Payload, bytewords.StyleStandard)
}
