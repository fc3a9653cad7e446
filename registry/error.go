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

package registry

import "errors"

var (
	// ErrUnsupportedType is returned for a UR type or payload kind the registry doesn't know
	ErrUnsupportedType = errors.New("unsupported UR type")
	// ErrInvalidPayload is returned when a payload doesn't have the expected structure
	ErrInvalidPayload = errors.New("invalid UR payload")
)
