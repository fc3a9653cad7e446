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

// Package testdata provides shared UR fixtures for benchmarks and tests.
package testdata

import (
	"encoding/hex"
	"strings"
)

// Seed from the crypto-seed registry example
const SeedUR = "ur:crypto-seed/oeadgdstaslplabghydrpfmkbggufgludprfgmaosecyhnecmsaeztndahjn"

// SeedCborHex is the payload carried by SeedUR
const SeedCborHex = "a20150c7098580125e2ab0981253468b2dbc5202c11a60359700"

// BIP-32 test vector 1 master key as a crypto-hdkey
const MasterHDKeyUR = "ur:crypto-hdkey/otadykaxhdclaevswfdmjpfswpwkahcywspsmndwmusoskprbbehetchsnpfcybbmwrhchspfxjeecaahdcxltfszmlyrtdlgmhfcnzcctvwcmkbpsftgonbgauefsehgrqzdmvodizmweemtlaybakiylat"

// TestUR contains a known single-part UR.
type TestUR struct {
	Name string
	Type string
	UR   string
}

// GetTestURs returns the known single-part URs.
func GetTestURs() []TestUR {
	return []TestUR{
		{Name: "Seed", Type: "crypto-seed", UR: SeedUR},
		{Name: "MasterHDKey", Type: "crypto-hdkey", UR: MasterHDKeyUR},
	}
}

// MustDecodeHex decodes a hex string to bytes, panicking on error.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return b
}
