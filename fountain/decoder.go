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
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"github.com/blinklabs-io/gour/checksum"
)

// Decoder reassembles a message from fountain parts received in any order
type Decoder struct {
	logger         *slog.Logger
	started        bool
	seqLen         int
	messageLen     int
	checksum       uint32
	fragmentLen    int
	seen           *bitset.BitSet
	solved         map[int][]byte
	mixed          map[string]*mixedPart
	queue          []*mixedPart
	processedParts int
	result         []byte
	err            error
}

// DecoderOptionFunc is a type that represents functions that modify the decoder config
type DecoderOptionFunc func(*Decoder)

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// mixedPart is a fragment known to be the XOR of the fragments at indexes
type mixedPart struct {
	indexes *bitset.BitSet
	data    []byte
}

func (m *mixedPart) isSimple() bool {
	return m.indexes.Count() == 1
}

func (m *mixedPart) index() int {
	idx, _ := m.indexes.NextSet(0)
	return int(idx)
}

func (m *mixedPart) key() string {
	return m.indexes.String()
}

// NewDecoder returns a decoder with no established session
func NewDecoder(opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		solved: make(map[int][]byte),
		mixed:  make(map[string]*mixedPart),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// ReceivePart processes a part and returns whether it was accepted. Malformed parts and parts
// from a different message are rejected without changing the decoder state
func (d *Decoder) ReceivePart(part *Part) bool {
	if d.IsComplete() {
		return false
	}
	if err := d.validatePart(part); err != nil {
		d.logger.Debug(
			"rejected fountain part",
			"component", "fountain",
			"error", err,
		)
		return false
	}
	if !d.started {
		d.started = true
		d.seqLen = int(part.SeqLen)
		d.messageLen = int(part.MessageLen)
		d.checksum = part.Checksum
		d.fragmentLen = len(part.Data)
		d.seen = bitset.New(uint(d.seqLen))
		d.logger.Debug(
			"started fountain session",
			"component", "fountain",
			"seq_len", d.seqLen,
			"message_len", d.messageLen,
			"fragment_len", d.fragmentLen,
			"checksum", fmt.Sprintf("%08x", d.checksum),
		)
	}
	d.processedParts++
	p := &mixedPart{
		indexes: bitset.New(uint(d.seqLen)),
		data:    make([]byte, len(part.Data)),
	}
	copy(p.data, part.Data)
	for _, idx := range part.Indexes() {
		p.indexes.Set(uint(idx))
	}
	d.seen.InPlaceUnion(p.indexes)
	d.queue = append(d.queue, p)
	d.processQueue()
	return true
}

func (d *Decoder) validatePart(part *Part) error {
	if part == nil {
		return fmt.Errorf("%w: nil part", ErrInvalidPart)
	}
	if err := part.Validate(); err != nil {
		return err
	}
	if !d.started {
		return nil
	}
	if int(part.SeqLen) != d.seqLen ||
		int(part.MessageLen) != d.messageLen ||
		part.Checksum != d.checksum ||
		len(part.Data) != d.fragmentLen {
		return fmt.Errorf(
			"%w: part does not belong to message (seqLen=%d, messageLen=%d, checksum=%08x, fragmentLen=%d)",
			ErrInvalidPart,
			d.seqLen,
			d.messageLen,
			d.checksum,
			d.fragmentLen,
		)
	}
	return nil
}

func (d *Decoder) processQueue() {
	for len(d.queue) > 0 && !d.IsComplete() {
		p := d.queue[0]
		d.queue = d.queue[1:]
		if p.isSimple() {
			d.processSimple(p)
		} else {
			d.processMixed(p)
		}
	}
}

func (d *Decoder) processSimple(p *mixedPart) {
	idx := p.index()
	if _, ok := d.solved[idx]; ok {
		return
	}
	d.solved[idx] = p.data
	d.reduceMixedBy(p)
	if len(d.solved) == d.seqLen {
		d.finish()
	}
}

func (d *Decoder) processMixed(p *mixedPart) {
	if _, ok := d.mixed[p.key()]; ok {
		return
	}
	// Remove every fragment we've already solved
	for idx, ok := p.indexes.NextSet(0); ok; idx, ok = p.indexes.NextSet(idx + 1) {
		if data, solved := d.solved[int(idx)]; solved {
			xorInto(p.data, data)
			p.indexes.Clear(idx)
		}
	}
	for _, m := range d.mixed {
		p = reducePart(p, m)
	}
	switch p.indexes.Count() {
	case 0:
		// Nothing left that we don't already know
		return
	case 1:
		d.queue = append(d.queue, p)
	default:
		if _, ok := d.mixed[p.key()]; ok {
			return
		}
		d.reduceMixedBy(p)
		d.mixed[p.key()] = p
	}
}

// reduceMixedBy removes p from every held mixed part that contains it
func (d *Decoder) reduceMixedBy(p *mixedPart) {
	mixed := make(map[string]*mixedPart, len(d.mixed))
	for _, m := range d.mixed {
		reduced := reducePart(m, p)
		switch {
		case reduced.isSimple():
			d.queue = append(d.queue, reduced)
		case reduced.indexes.Count() > 1:
			mixed[reduced.key()] = reduced
		}
	}
	d.mixed = mixed
}

// reducePart returns a with b's fragments removed when b's indexes are a subset of a's
func reducePart(a *mixedPart, b *mixedPart) *mixedPart {
	if !a.indexes.IsSuperSet(b.indexes) {
		return a
	}
	ret := &mixedPart{
		indexes: a.indexes.Difference(b.indexes),
		data:    make([]byte, len(a.data)),
	}
	copy(ret.data, a.data)
	xorInto(ret.data, b.data)
	return ret
}

func (d *Decoder) finish() {
	fragments := make([][]byte, d.seqLen)
	for i := range fragments {
		fragments[i] = d.solved[i]
	}
	message := JoinFragments(fragments, d.messageLen)
	if sum := checksum.Checksum(message); sum != d.checksum {
		d.err = fmt.Errorf(
			"%w: expected %08x, got %08x",
			ErrChecksumMismatch,
			d.checksum,
			sum,
		)
		d.logger.Error(
			"fountain reassembly failed",
			"component", "fountain",
			"error", d.err,
		)
		// None of the solved fragments can be trusted
		d.solved = nil
		d.mixed = nil
		d.queue = nil
		return
	}
	d.result = message
	d.mixed = nil
	d.queue = nil
	d.logger.Info(
		"fountain reassembly complete",
		"component", "fountain",
		"message_len", d.messageLen,
		"processed_parts", d.processedParts,
	)
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

// Result returns the reassembled message, or the fatal error. Both are nil while collecting
func (d *Decoder) Result() ([]byte, error) {
	return d.result, d.err
}

// ExpectedPartCount returns the number of pure fragments, or 0 before the first part
func (d *Decoder) ExpectedPartCount() int {
	return d.seqLen
}

// ReceivedPartIndexes returns the fragment indexes seen in any accepted part
func (d *Decoder) ReceivedPartIndexes() []int {
	if d.seen == nil {
		return nil
	}
	return setIndexes(d.seen)
}

// SolvedPartIndexes returns the fragment indexes recovered so far
func (d *Decoder) SolvedPartIndexes() []int {
	ret := make([]int, 0, len(d.solved))
	for i := range d.seqLen {
		if _, ok := d.solved[i]; ok {
			ret = append(ret, i)
		}
	}
	return ret
}

// EstimatedPercentComplete returns the fraction of fragments solved, between 0 and 1
func (d *Decoder) EstimatedPercentComplete() float64 {
	if d.IsSuccess() {
		return 1
	}
	if d.seqLen == 0 {
		return 0
	}
	return float64(len(d.solved)) / float64(d.seqLen)
}

// ProcessedPartsCount returns the number of accepted parts
func (d *Decoder) ProcessedPartsCount() int {
	return d.processedParts
}

func setIndexes(b *bitset.BitSet) []int {
	ret := make([]int, 0, b.Count())
	for idx, ok := b.NextSet(0); ok; idx, ok = b.NextSet(idx + 1) {
		ret = append(ret, int(idx))
	}
	return ret
}
