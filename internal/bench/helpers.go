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

// Package bench provides benchmark utilities and fixtures for the UR codec.
package bench

import (
	"fmt"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/fountain"
)

// DefaultMaxFragmentLen is the fragment length used by the benchmark fixtures
const DefaultMaxFragmentLen = 200

// MessageFixture contains a UR and the parts needed to transmit it.
type MessageFixture struct {
	Name  string
	Size  int
	UR    *ur.UR
	Parts []string
}

// NewMessage returns a deterministic message of the given size.
// Each fixture size uses the same seed so repeated runs see the same bytes.
func NewMessage(size int) []byte {
	rng := fountain.NewXoshiro256([]byte("bench"))
	return rng.NextData(size)
}

// LoadMessageFixture builds a bytes UR of the given size and renders every part
// needed to transmit it once, plus extra surplus parts.
func LoadMessageFixture(size int, surplus int) (*MessageFixture, error) {
	u, err := ur.NewFromValue("bytes", NewMessage(size))
	if err != nil {
		return nil, fmt.Errorf("build %d byte UR: %w", size, err)
	}
	encoder, err := ur.NewEncoder(u, DefaultMaxFragmentLen)
	if err != nil {
		return nil, fmt.Errorf("build %d byte encoder: %w", size, err)
	}
	var parts []string
	for !encoder.IsComplete() {
		parts = append(parts, encoder.NextPart())
	}
	if !encoder.IsSinglePart() {
		for range surplus {
			parts = append(parts, encoder.NextPart())
		}
	}
	return &MessageFixture{
		Name:  SizeName(size),
		Size:  size,
		UR:    u,
		Parts: parts,
	}, nil
}

// MustLoadMessageFixture loads a message fixture and panics on error.
// Use this in benchmark init() or setup code.
func MustLoadMessageFixture(size int, surplus int) *MessageFixture {
	fixture, err := LoadMessageFixture(size, surplus)
	if err != nil {
		panic(fmt.Sprintf("failed to load %d byte message fixture: %v", size, err))
	}
	return fixture
}

// SizeName returns a short label for a message size, such as "1KiB".
func SizeName(size int) string {
	if size >= 1024 && size%1024 == 0 {
		return fmt.Sprintf("%dKiB", size/1024)
	}
	return fmt.Sprintf("%dB", size)
}

// MessageSizes returns the message sizes used for benchmarking.
func MessageSizes() []int {
	return []int{
		32,
		256,
		1024,
		16 * 1024,
	}
}
