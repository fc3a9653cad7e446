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

const (
	CoinTypeBTC = 0

	NetworkMainnet = 0
	NetworkTestnet = 1
)

// CoinInfo is the crypto-coininfo structure (tag 305) describing which coin and network a key
// is used with
type CoinInfo struct {
	Type    uint32 `cbor:"1,keyasint,omitempty"`
	Network uint32 `cbor:"2,keyasint,omitempty"`
}
