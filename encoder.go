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

package ur

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/fountain"
)

// Encoder produces the sequence of UR strings that transfer a single UR
type Encoder struct {
	ur              *UR
	logger          *slog.Logger
	minFragmentLen  int
	firstSeqNum     uint32
	fountainEncoder *fountain.Encoder
}

// NewEncoder creates an encoder that splits u into fragments of at most maxFragmentLen bytes
func NewEncoder(
	u *UR,
	maxFragmentLen int,
	opts ...EncoderOptionFunc,
) (*Encoder, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: nil UR", ErrInvalidCbor)
	}
	e := &Encoder{
		ur:             u,
		minFragmentLen: fountain.DefaultMinFragmentLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if maxFragmentLen < 1 || e.minFragmentLen < 1 ||
		e.minFragmentLen > maxFragmentLen {
		return nil, fmt.Errorf(
			"%w: min %d, max %d",
			ErrInvalidFragmentLength,
			e.minFragmentLen,
			maxFragmentLen,
		)
	}
	fountainEncoder, err := fountain.NewEncoder(
		u.cbor,
		maxFragmentLen,
		e.firstSeqNum,
		e.minFragmentLen,
	)
	if err != nil {
		return nil, err
	}
	e.fountainEncoder = fountainEncoder
	e.logger.Debug(
		"created UR encoder",
		"component", "ur",
		"type", u.urType,
		"message_len", fountainEncoder.MessageLen(),
		"fragment_len", fountainEncoder.FragmentLen(),
		"seq_len", fountainEncoder.SeqLen(),
	)
	return e, nil
}

// NextPart returns the next UR string to display. A single-part encoder always returns the
// same string
func (e *Encoder) NextPart() string {
	part := e.fountainEncoder.NextPart()
	if e.IsSinglePart() {
		return e.ur.String()
	}
	cborData, err := part.Cbor()
	if err != nil {
		panic("CBOR encoding that should never fail has failed: " + err.Error())
	}
	return fmt.Sprintf(
		"%s:%s/%d-%d/%s",
		Scheme,
		e.ur.urType,
		part.SeqNum,
		part.SeqLen,
		bytewords.Encode(cborData, bytewords.StyleMinimal),
	)
}

// NextQRPart returns the next part in uppercase
func (e *Encoder) NextQRPart() string {
	return strings.ToUpper(e.NextPart())
}

// IsComplete returns true once every pure fragment has been emitted at least once
func (e *Encoder) IsComplete() bool {
	return e.fountainEncoder.IsComplete()
}

func (e *Encoder) IsSinglePart() bool {
	return e.fountainEncoder.IsSinglePart()
}

// SeqNum returns the sequence number of the last part emitted
func (e *Encoder) SeqNum() uint32 {
	return e.fountainEncoder.SeqNum()
}

func (e *Encoder) SeqLen() int {
	return e.fountainEncoder.SeqLen()
}

// LastPartIndexes returns the fragment indexes mixed into the last part emitted
func (e *Encoder) LastPartIndexes() []int {
	return e.fountainEncoder.LastPartIndexes()
}

// EncodeSinglePart returns the single-part string form of u
func EncodeSinglePart(u *UR) string {
	return u.String()
}
