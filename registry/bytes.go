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
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gour/cbor"
)

// psbtMagic is the BIP-174 PSBT prefix
var psbtMagic = []byte{'p', 's', 'b', 't', 0xff}

// Bytes is an opaque byte string
type Bytes []byte

func (b Bytes) Kind() Kind {
	return KindBytes
}

func (b Bytes) String() string {
	return hex.EncodeToString(b)
}

// PSBT is a partially signed Bitcoin transaction
type PSBT []byte

func (p PSBT) Kind() Kind {
	return KindPSBT
}

func (p PSBT) Validate() error {
	if !bytes.HasPrefix(p, psbtMagic) {
		return fmt.Errorf("%w: missing PSBT magic", ErrInvalidPayload)
	}
	return nil
}

func (p *PSBT) UnmarshalCBOR(data []byte) error {
	var tmp []byte
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	tmpPSBT := PSBT(tmp)
	if err := tmpPSBT.Validate(); err != nil {
		return err
	}
	*p = tmpPSBT
	return nil
}
