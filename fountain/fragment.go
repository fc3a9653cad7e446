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
	"encoding/binary"
	"fmt"
)

const (
	// DefaultMinFragmentLen bounds the number of fragments for small messages
	DefaultMinFragmentLen = 10

	// MaxSeqLen is the largest number of pure fragments a message may be split into
	MaxSeqLen = 1 << 16
)

// FragmentLength returns the length of each fragment when a message of messageLen bytes is
// split into the fewest fragments no longer than maxFragmentLen. The fragment count is capped
// at messageLen/minFragmentLen, so the minimum wins over the maximum: a message shorter than
// 2*minFragmentLen is always a single fragment, even when that exceeds maxFragmentLen
func FragmentLength(
	messageLen int,
	minFragmentLen int,
	maxFragmentLen int,
) (int, error) {
	if messageLen < 1 {
		return 0, ErrEmptyMessage
	}
	if minFragmentLen < 1 || maxFragmentLen < minFragmentLen {
		return 0, fmt.Errorf(
			"%w: min %d, max %d",
			ErrInvalidFragmentLength,
			minFragmentLen,
			maxFragmentLen,
		)
	}
	maxFragmentCount := max(messageLen/minFragmentLen, 1)
	var fragmentLen int
	for fragmentCount := 1; fragmentCount <= maxFragmentCount; fragmentCount++ {
		fragmentLen = ceilDiv(messageLen, fragmentCount)
		if fragmentLen <= maxFragmentLen {
			break
		}
	}
	return fragmentLen, nil
}

// PartitionMessage splits message into fragments of fragmentLen bytes, padding the last one
// with zeros
func PartitionMessage(message []byte, fragmentLen int) [][]byte {
	count := ceilDiv(len(message), fragmentLen)
	padded := make([]byte, count*fragmentLen)
	copy(padded, message)
	fragments := make([][]byte, count)
	for i := range fragments {
		fragments[i] = padded[i*fragmentLen : (i+1)*fragmentLen]
	}
	return fragments
}

// JoinFragments concatenates fragments and trims the padding off the end
func JoinFragments(fragments [][]byte, messageLen int) []byte {
	ret := make([]byte, 0, len(fragments)*len(fragments[0]))
	for _, fragment := range fragments {
		ret = append(ret, fragment...)
	}
	return ret[:messageLen]
}

// ChooseFragments returns the indexes of the pure fragments combined into the part with the
// given sequence number. Parts up to seqLen are pure, so they only contain the fragment at
// seqNum-1
func ChooseFragments(seqNum uint32, seqLen int, checksum uint32) []int {
	if seqNum <= uint32(seqLen) {
		return []int{int(seqNum) - 1}
	}
	seed := make([]byte, 0, 8)
	seed = binary.BigEndian.AppendUint32(seed, seqNum)
	seed = binary.BigEndian.AppendUint32(seed, checksum)
	rng := NewXoshiro256(seed)
	degree := chooseDegree(seqLen, rng)
	remaining := make([]int, seqLen)
	for i := range remaining {
		remaining[i] = i
	}
	// The first degree entries of a shuffle of all fragment indexes
	ret := make([]int, 0, degree)
	for range degree {
		idx := int(rng.NextInt(0, uint64(len(remaining)-1)))
		ret = append(ret, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return ret
}

// chooseDegree picks how many fragments are mixed into a part, favoring low degrees with a
// 1/n weighting
func chooseDegree(seqLen int, rng *Xoshiro256) int {
	weights := make([]float64, seqLen)
	for i := range weights {
		weights[i] = 1.0 / float64(i+1)
	}
	// The weights are always positive, so this can't fail
	sampler, _ := NewRandomSampler(weights)
	return sampler.Next(rng) + 1
}

func ceilDiv(a int, b int) int {
	return (a + b - 1) / b
}

func xorInto(dest []byte, src []byte) {
	for i := range dest {
		dest[i] ^= src[i]
	}
}
