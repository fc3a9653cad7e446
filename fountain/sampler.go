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
	"errors"
)

// RandomSampler draws indexes from a discrete probability distribution in constant time using
// Vose's alias method
type RandomSampler struct {
	probs   []float64
	aliases []int
}

// NewRandomSampler builds an alias table from the provided (not necessarily normalized) weights
func NewRandomSampler(weights []float64) (*RandomSampler, error) {
	if len(weights) == 0 {
		return nil, errors.New("no weights provided")
	}
	var sum float64
	for _, w := range weights {
		if w < 0 {
			return nil, errors.New("negative weight")
		}
		sum += w
	}
	if sum <= 0 {
		return nil, errors.New("weights must sum to a positive value")
	}
	n := len(weights)
	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
	}
	var small, large []int
	for i := n - 1; i >= 0; i-- {
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}
	s := &RandomSampler{
		probs:   make([]float64, n),
		aliases: make([]int, n),
	}
	for len(small) > 0 && len(large) > 0 {
		a := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]
		s.probs[a] = scaled[a]
		s.aliases[a] = g
		scaled[g] += scaled[a] - 1
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	for _, g := range large {
		s.probs[g] = 1
	}
	for _, a := range small {
		s.probs[a] = 1
	}
	return s, nil
}

// Next draws an index using two doubles from rng
func (s *RandomSampler) Next(rng *Xoshiro256) int {
	r1 := rng.NextDouble()
	r2 := rng.NextDouble()
	i := int(float64(len(s.probs)) * r1)
	if r2 < s.probs[i] {
		return i
	}
	return s.aliases[i]
}
