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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gour/fountain"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// MakeMessage returns a deterministic pseudo-random message of the given length. The same seed
// always produces the same bytes, which lets tests compare against published vectors
func MakeMessage(length int, seed string) []byte {
	rng := fountain.NewXoshiro256([]byte(seed))
	return rng.NextData(length)
}

// BytesCbor wraps the provided data in a CBOR byte string header
func BytesCbor(data []byte) []byte {
	var header []byte
	switch n := len(data); {
	case n < 24:
		header = []byte{0x40 | byte(n)}
	case n < 0x100:
		header = []byte{0x58, byte(n)}
	case n < 0x10000:
		header = []byte{0x59, byte(n >> 8), byte(n)}
	default:
		header = []byte{0x5a, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}
	return append(header, data...)
}
