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
	"fmt"

	"github.com/blinklabs-io/gour/checksum"
)

// Encoder emits the fountain-coded parts of a single message
type Encoder struct {
	messageLen      int
	checksum        uint32
	fragmentLen     int
	fragments       [][]byte
	seqNum          uint32
	lastPartIndexes []int
}

// NewEncoder creates an encoder for message. The first part emitted has sequence number
// firstSeqNum+1
func NewEncoder(
	message []byte,
	maxFragmentLen int,
	firstSeqNum uint32,
	minFragmentLen int,
) (*Encoder, error) {
	fragmentLen, err := FragmentLength(
		len(message),
		minFragmentLen,
		maxFragmentLen,
	)
	if err != nil {
		return nil, err
	}
	fragments := PartitionMessage(message, fragmentLen)
	if len(fragments) > MaxSeqLen {
		return nil, fmt.Errorf(
			"%w: %d fragments of %d bytes exceeds maximum of %d",
			ErrMessageTooLarge,
			len(fragments),
			fragmentLen,
			MaxSeqLen,
		)
	}
	e := &Encoder{
		messageLen:  len(message),
		checksum:    checksum.Checksum(message),
		fragmentLen: fragmentLen,
		fragments:   fragments,
		seqNum:      firstSeqNum,
	}
	return e, nil
}

// NextPart returns the next part in the sequence. The first SeqLen() parts are the pure
// fragments in order, and every part after that is a deterministic mix of fragments.
// Sequence numbers wrap from math.MaxUint32 back to 1
func (e *Encoder) NextPart() *Part {
	e.seqNum++
	if e.seqNum == 0 {
		e.seqNum = 1
	}
	indexes := ChooseFragments(e.seqNum, len(e.fragments), e.checksum)
	e.lastPartIndexes = indexes
	data := make([]byte, e.fragmentLen)
	for _, idx := range indexes {
		xorInto(data, e.fragments[idx])
	}
	return &Part{
		SeqNum:     e.seqNum,
		SeqLen:     uint32(len(e.fragments)),
		MessageLen: uint32(e.messageLen),
		Checksum:   e.checksum,
		Data:       data,
	}
}

// SeqNum returns the sequence number of the last part emitted
func (e *Encoder) SeqNum() uint32 {
	return e.seqNum
}

// SeqLen returns the number of pure fragments
func (e *Encoder) SeqLen() int {
	return len(e.fragments)
}

func (e *Encoder) FragmentLen() int {
	return e.fragmentLen
}

func (e *Encoder) MessageLen() int {
	return e.messageLen
}

func (e *Encoder) Checksum() uint32 {
	return e.checksum
}

// LastPartIndexes returns the fragment indexes mixed into the last part emitted
func (e *Encoder) LastPartIndexes() []int {
	return e.lastPartIndexes
}

// IsComplete returns true once every pure fragment has been emitted at least once
func (e *Encoder) IsComplete() bool {
	return e.seqNum >= uint32(len(e.fragments))
}

// IsSinglePart returns true if the message fits in a single fragment
func (e *Encoder) IsSinglePart() bool {
	return len(e.fragments) == 1
}
