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

// Package cbor provides the CBOR encoding/decoding utilities used for UR payloads and
// fountain part framing.
//
// This package wraps github.com/fxamacker/cbor/v2. Encoding always uses core deterministic
// encoding (sorted map keys, smallest integer encoding, definite lengths), so that the same
// value always produces the same UR string. Decoding limits nesting and container sizes,
// because the data usually arrives from a camera.
//
// # Key Types
//
// Embeddable types for struct encoding:
//   - StructAsArray: Embed to encode struct fields as CBOR array instead of map
//   - DecodeStoreCbor: Embed to preserve original CBOR bytes
//
// Utility types:
//   - RawMessage: Deferred decoding (like json.RawMessage)
//   - ByteString: Bytestrings that can be used as map keys
//   - Tag, RawTag: CBOR semantic tags
//   - Value: Generic decoding of arbitrary payloads
//
// # Pattern: DecodeStoreCbor
//
// When a type needs its original CBOR bytes preserved (for example, to re-emit a UR
// byte-for-byte as it was scanned):
//
//	type MyType struct {
//	    cbor.DecodeStoreCbor
//	    Field1 string `cbor:"1,keyasint"`
//	}
//
//	func (m *MyType) UnmarshalCBOR(data []byte) error {
//	    if err := cbor.DecodeGeneric(data, m); err != nil {
//	        return err
//	    }
//	    m.SetCbor(data)
//	    return nil
//	}
package cbor
