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

package cbor

import (
	"encoding/hex"
)

// ByteString holds a CBOR byte string in a comparable form so that it can be
// used as a map key
type ByteString struct {
	data string
}

func NewByteString(data []byte) ByteString {
	return ByteString{data: string(data)}
}

func (bs *ByteString) UnmarshalCBOR(cborData []byte) error {
	var tmpData []byte
	if _, err := Decode(cborData, &tmpData); err != nil {
		return err
	}
	bs.data = string(tmpData)
	return nil
}

func (bs ByteString) MarshalCBOR() ([]byte, error) {
	return Encode([]byte(bs.data))
}

// Bytes returns a copy of the contents
func (bs ByteString) Bytes() []byte {
	return []byte(bs.data)
}

func (bs ByteString) Len() int {
	return len(bs.data)
}

// String returns the contents as hex
func (bs ByteString) String() string {
	return hex.EncodeToString([]byte(bs.data))
}
