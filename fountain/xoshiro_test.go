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

package fountain_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gour/fountain"
	"github.com/blinklabs-io/gour/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXoshiro256Next(t *testing.T) {
	expected := []uint64{
		42, 81, 85, 8, 82, 84, 76, 73, 70, 88,
		2, 74, 40, 48, 77, 54, 88, 7, 5, 88,
	}
	rng := fountain.NewXoshiro256([]byte("Wolf"))
	for i, want := range expected {
		assert.Equal(t, want, rng.Next()%100, "output %d", i)
	}
}

func TestXoshiro256NextInt(t *testing.T) {
	expected := []uint64{6, 5, 8, 4, 10, 5, 7, 10, 4, 9}
	rng := fountain.NewXoshiro256([]byte("Wolf"))
	for i, want := range expected {
		assert.Equal(t, want, rng.NextInt(1, 10), "output %d", i)
	}
}

func TestXoshiro256NextDouble(t *testing.T) {
	rng := fountain.NewXoshiro256([]byte("Wolf"))
	for range 1000 {
		d := rng.NextDouble()
		require.GreaterOrEqual(t, d, 0.0)
		require.Less(t, d, 1.0)
	}
}

func TestMakeMessage(t *testing.T) {
	msg := test.MakeMessage(16, "Wolf")
	assert.Equal(t, "916ec65cf77cadf55cd7f9cda1a10300", hex.EncodeToString(msg))
}

func TestRandomSampler(t *testing.T) {
	weights := []float64{1, 2, 4, 8}
	sampler, err := fountain.NewRandomSampler(weights)
	require.NoError(t, err)
	rng := fountain.NewXoshiro256([]byte("Wolf"))
	counts := make([]int, len(weights))
	for range 15000 {
		counts[sampler.Next(rng)]++
	}
	// Each bucket should be picked roughly in proportion to its weight
	for i := 1; i < len(counts); i++ {
		assert.Greater(t, counts[i], counts[i-1])
	}
	assert.InDelta(t, 8000, counts[3], 500)
}

func TestRandomSamplerInvalid(t *testing.T) {
	testDefs := []struct {
		name    string
		weights []float64
	}{
		{name: "empty", weights: nil},
		{name: "negative", weights: []float64{1, -1}},
		{name: "zero sum", weights: []float64{0, 0}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := fountain.NewRandomSampler(testDef.weights)
			require.Error(t, err)
		})
	}
}
