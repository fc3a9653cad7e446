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
	"strconv"
	"strings"

	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/fountain"
)

// Decoder reassembles a UR from single-part or multi-part UR strings received in any order
type Decoder struct {
	logger          *slog.Logger
	expectedType    string
	fountainDecoder *fountain.Decoder
	processedParts  int
	result          *UR
	err             error
}

// NewDecoder returns a decoder for a single transmission
func NewDecoder(opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.fountainDecoder = fountain.NewDecoder(fountain.WithLogger(d.logger))
	return d
}

// ReceivePart processes a UR string and returns whether it was accepted. Rejected parts don't
// change the decoder state
func (d *Decoder) ReceivePart(s string) bool {
	if d.IsComplete() {
		return false
	}
	if err := d.receivePart(s); err != nil {
		d.logger.Debug(
			"rejected UR part",
			"component", "ur",
			"error", err,
		)
		return false
	}
	return true
}

func (d *Decoder) receivePart(s string) error {
	urType, components, err := splitURString(s)
	if err != nil {
		return err
	}
	if d.expectedType != "" && urType != d.expectedType {
		return fmt.Errorf(
			"%w: expected %q, got %q",
			ErrUnexpectedType,
			d.expectedType,
			urType,
		)
	}
	switch len(components) {
	case 1:
		return d.receiveSinglePart(urType, components[0])
	case 2:
		return d.receiveMultiPart(urType, components[0], components[1])
	default:
		return fmt.Errorf(
			"%w: expected 2 or 3 path components, got %d",
			ErrInvalidPathLength,
			len(components)+1,
		)
	}
}

func (d *Decoder) receiveSinglePart(urType string, body string) error {
	if d.processedParts > 0 {
		return fmt.Errorf(
			"%w: single-part UR received during multi-part transmission",
			ErrInvalidPathLength,
		)
	}
	cborData, err := bytewords.Decode(body, bytewords.StyleMinimal)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	u, err := New(urType, cborData)
	if err != nil {
		return err
	}
	d.expectedType = urType
	d.processedParts++
	d.result = u
	d.logger.Info(
		"decoded single-part UR",
		"component", "ur",
		"type", urType,
	)
	return nil
}

func (d *Decoder) receiveMultiPart(
	urType string,
	seq string,
	body string,
) error {
	seqNum, seqLen, err := parseSequenceComponent(seq)
	if err != nil {
		return err
	}
	partCbor, err := bytewords.Decode(body, bytewords.StyleMinimal)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	part, err := fountain.NewPartFromCbor(partCbor)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	if part.SeqNum != seqNum || part.SeqLen != seqLen {
		return fmt.Errorf(
			"%w: %s doesn't match part %d-%d",
			ErrInvalidSequenceComponent,
			seq,
			part.SeqNum,
			part.SeqLen,
		)
	}
	if !d.fountainDecoder.ReceivePart(part) {
		return fmt.Errorf(
			"%w: part %d-%d not accepted",
			ErrInvalidFragment,
			seqNum,
			seqLen,
		)
	}
	d.expectedType = urType
	d.processedParts++
	message, err := d.fountainDecoder.Result()
	switch {
	case err != nil:
		d.err = err
	case message != nil:
		u, err := New(d.expectedType, message)
		if err != nil {
			d.err = err
			d.logger.Error(
				"reassembled UR payload is invalid",
				"component", "ur",
				"type", d.expectedType,
				"error", err,
			)
			break
		}
		d.result = u
	}
	return nil
}

// parseSequenceComponent parses the seqNum-seqLen path component of a multi-part UR
func parseSequenceComponent(seq string) (uint32, uint32, error) {
	numStr, lenStr, ok := strings.Cut(seq, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSequenceComponent, seq)
	}
	seqNum, err := strconv.ParseUint(numStr, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSequenceComponent, seq)
	}
	seqLen, err := strconv.ParseUint(lenStr, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSequenceComponent, seq)
	}
	if seqNum < 1 || seqLen < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSequenceComponent, seq)
	}
	return uint32(seqNum), uint32(seqLen), nil
}

// IsComplete returns true once the decoder has either succeeded or failed
func (d *Decoder) IsComplete() bool {
	return d.result != nil || d.err != nil
}

func (d *Decoder) IsSuccess() bool {
	return d.result != nil
}

func (d *Decoder) IsFailure() bool {
	return d.err != nil
}

// Result returns the decoded UR, or the fatal error. Both are nil while collecting
func (d *Decoder) Result() (*UR, error) {
	return d.result, d.err
}

// ExpectedType returns the type established by the first accepted part
func (d *Decoder) ExpectedType() string {
	return d.expectedType
}

// ExpectedFragmentCount returns the number of pure fragments in a multi-part transmission
func (d *Decoder) ExpectedFragmentCount() int {
	return d.fountainDecoder.ExpectedPartCount()
}

// ReceivedFragmentIndexes returns the fragment indexes seen in any accepted part
func (d *Decoder) ReceivedFragmentIndexes() []int {
	return d.fountainDecoder.ReceivedPartIndexes()
}

func (d *Decoder) EstimatedPercentComplete() float64 {
	if d.IsSuccess() {
		return 1
	}
	return d.fountainDecoder.EstimatedPercentComplete()
}

func (d *Decoder) ProcessedPartsCount() int {
	return d.processedParts
}

// DecodeSinglePart parses a single-part UR string
func DecodeSinglePart(s string) (*UR, error) {
	return Parse(s)
}
