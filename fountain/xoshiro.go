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

package fountain

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
)

// 2^64 as a float64, which is what a uint64 is divided by to get a double in [0, 1)
const twoTo64 = 18446744073709551616.0

// Xoshiro256 is the xoshiro256** pseudo-random generator, seeded from the SHA-256 digest of
// an arbitrary byte string
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 creates a generator whose state is the SHA-256 digest of seed, read as four
// big-endian 64-bit words
func NewXoshiro256(seed []byte) *Xoshiro256 {
	digest := sha256.Sum256(seed)
	x := &Xoshiro256{}
	for i := range x.s {
		x.s[i] = binary.BigEndian.Uint64(digest[i*8 : (i+1)*8])
	}
	return x
}

// Next returns the next 64-bit value
func (x *Xoshiro256) Next() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9
	t := x.s[1] << 17
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)
	return result
}

// NextDouble returns a value in [0, 1)
func (x *Xoshiro256) NextDouble() float64 {
	return float64(x.Next()) / twoTo64
}

// NextInt returns a value in [low, high]
func (x *Xoshiro256) NextInt(low uint64, high uint64) uint64 {
	return uint64(x.NextDouble()*float64(high-low+1)) + low
}

// NextByte returns a value in [0, 255]
func (x *Xoshiro256) NextByte() byte {
	return byte(x.NextInt(0, 255))
}

// NextData returns count pseudo-random bytes
func (x *Xoshiro256) NextData(count int) []byte {
	ret := make([]byte, count)
	for i := range ret {
		ret[i] = x.NextByte()
	}
	return ret
}
