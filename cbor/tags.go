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
	"fmt"
)

const (
	// Useful tag numbers
	CborTagDateTime  = 0
	CborTagEpochTime = 1
	CborTagCbor      = 24

	// Tags from the Blockchain Commons UR registry
	CborTagCryptoSeed     = 300
	CborTagCryptoHDKey    = 303
	CborTagCryptoKeypath  = 304
	CborTagCryptoCoinInfo = 305
	CborTagCryptoPSBT     = 310
)

var tagNames = map[uint64]string{
	CborTagDateTime:       "date-time",
	CborTagEpochTime:      "epoch-time",
	CborTagCbor:           "encoded-cbor",
	CborTagCryptoSeed:     "crypto-seed",
	CborTagCryptoHDKey:    "crypto-hdkey",
	CborTagCryptoKeypath:  "crypto-keypath",
	CborTagCryptoCoinInfo: "crypto-coin-info",
	CborTagCryptoPSBT:     "crypto-psbt",
}

// TagName returns the registered name of a tag number, or "" for tags without one
func TagName(number uint64) string {
	return tagNames[number]
}

// EncodeTagged encodes the provided value wrapped in the given tag number
func EncodeTagged(number uint64, content any) ([]byte, error) {
	return Encode(Tag{Number: number, Content: content})
}

// DecodeTagged decodes data which must be wrapped in the given tag number into dest
func DecodeTagged(data []byte, number uint64, dest any) error {
	var tmpTag RawTag
	if _, err := Decode(data, &tmpTag); err != nil {
		return err
	}
	if tmpTag.Number != number {
		return fmt.Errorf(
			"unexpected CBOR tag: got %d, expected %d",
			tmpTag.Number,
			number,
		)
	}
	if _, err := Decode(tmpTag.Content, dest); err != nil {
		return err
	}
	return nil
}
