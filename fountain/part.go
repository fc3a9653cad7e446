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

	"github.com/blinklabs-io/gour/cbor"
)

const partFieldCount = 5

// Part is a single fountain-coded part. On the wire it is the CBOR array
// [seqNum, seqLen, messageLen, checksum, data]
type Part struct {
	cbor.StructAsArray
	SeqNum     uint32
	SeqLen     uint32
	MessageLen uint32
	Checksum   uint32
	Data       []byte
}

// NewPartFromCbor decodes and validates a part from its CBOR encoding
func NewPartFromCbor(data []byte) (*Part, error) {
	fieldCount, err := cbor.ListLength(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPart, err)
	}
	if fieldCount != partFieldCount {
		return nil, fmt.Errorf(
			"%w: expected %d fields, got %d",
			ErrInvalidPart,
			partFieldCount,
			fieldCount,
		)
	}
	var p Part
	bytesRead, err := cbor.Decode(data, &p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPart, err)
	}
	if bytesRead != len(data) {
		return nil, fmt.Errorf(
			"%w: %d trailing bytes",
			ErrInvalidPart,
			len(data)-bytesRead,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Cbor returns the CBOR encoding of the part
func (p *Part) Cbor() ([]byte, error) {
	return cbor.Encode(p)
}

// Validate checks that the part's fields are consistent with each other
func (p *Part) Validate() error {
	switch {
	case p.SeqNum == 0:
		return fmt.Errorf("%w: sequence number must be at least 1", ErrInvalidPart)
	case p.SeqLen == 0:
		return fmt.Errorf("%w: sequence length must be at least 1", ErrInvalidPart)
	case p.SeqLen > MaxSeqLen:
		return fmt.Errorf(
			"%w: sequence length %d exceeds maximum %d",
			ErrInvalidPart,
			p.SeqLen,
			MaxSeqLen,
		)
	case p.MessageLen == 0:
		return fmt.Errorf("%w: message length must be at least 1", ErrInvalidPart)
	case len(p.Data) == 0:
		return fmt.Errorf("%w: empty fragment", ErrInvalidPart)
	}
	// The sequence length must be exactly what the encoder would have used for this fragment length
	expectedSeqLen := ceilDiv(int(p.MessageLen), len(p.Data))
	if expectedSeqLen != int(p.SeqLen) {
		return fmt.Errorf(
			"%w: sequence length %d doesn't match message length %d and fragment length %d",
			ErrInvalidPart,
			p.SeqLen,
			p.MessageLen,
			len(p.Data),
		)
	}
	return nil
}

// IsPure returns true if the part contains a single unmixed fragment
func (p *Part) IsPure() bool {
	return p.SeqNum <= p.SeqLen
}

// Indexes returns the indexes of the fragments mixed into this part
func (p *Part) Indexes() []int {
	return ChooseFragments(p.SeqNum, int(p.SeqLen), p.Checksum)
}

func (p *Part) String() string {
	return fmt.Sprintf(
		"Part(seqNum=%d, seqLen=%d, messageLen=%d, checksum=%08x, fragmentLen=%d)",
		p.SeqNum,
		p.SeqLen,
		p.MessageLen,
		p.Checksum,
		len(p.Data),
	)
}
