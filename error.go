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

import "errors"

var (
	// ErrInvalidType is returned when a type contains characters other than a-z, 0-9 and hyphen
	ErrInvalidType = errors.New("invalid UR type")
	// ErrUnexpectedType is returned when a UR or part doesn't have the type the caller expected
	ErrUnexpectedType = errors.New("unexpected UR type")
	// ErrInvalidCbor is returned when the payload is not a single well-formed CBOR data item
	ErrInvalidCbor = errors.New("invalid UR CBOR payload")

	ErrInvalidScheme            = errors.New("invalid UR scheme")
	ErrInvalidPathLength        = errors.New("invalid UR path length")
	ErrInvalidSequenceComponent = errors.New("invalid UR sequence component")
	ErrInvalidFragment          = errors.New("invalid UR fragment")
	ErrInvalidFragmentLength    = errors.New("invalid UR fragment length")
)
