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

import "errors"

var (
	// ErrInvalidPart is returned when a part's framing is malformed
	ErrInvalidPart = errors.New("invalid fountain part")
	// ErrChecksumMismatch is the fatal decoder result when the reassembled message doesn't match
	// the checksum carried by its parts
	ErrChecksumMismatch = errors.New(
		"reassembled message does not match checksum",
	)
	ErrInvalidFragmentLength = errors.New("invalid fragment length")
	ErrEmptyMessage          = errors.New("message is empty")
	ErrMessageTooLarge       = errors.New("message is too large")
)
