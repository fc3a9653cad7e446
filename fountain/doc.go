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

/*
Package fountain implements the fountain code used to move messages that are too large for a
single QR code.

A message is split into equal-length fragments (the last one zero padded). The encoder emits an
unbounded sequence of parts: parts 1..seqLen are the "pure" fragments in order, and every later
part is the XOR of a pseudo-randomly chosen subset of fragments. The subset is a pure function of
(sequence number, sequence length, message checksum), so a decoder can work out which fragments a
part combines without any side channel, and two encoders of the same message emit byte-identical
parts for the same sequence number.

The decoder accepts parts in any order, including duplicates, and reduces mixed parts against
already-solved fragments (and against each other) until every fragment is known. The reconstructed
message is then verified against the checksum carried by every part.

Fragment selection follows the Blockchain Commons convention (Xoshiro256** seeded from
SHA-256(seqNum || checksum), degree drawn from a 1/n weighted alias table), which makes the parts
interoperable with other UR implementations.

Encoder and Decoder are not safe for concurrent use.
*/
package fountain
