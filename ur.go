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

// Package ur implements Uniform Resources, a typed and checksummed string encoding of CBOR
// data designed for transfer via QR codes.
//
// A single-part UR has the form ur:<type>/<body>, where the body is the bytewords minimal
// encoding of the CBOR payload. Payloads too large for one QR code are split into fountain
// coded parts of the form ur:<type>/<seqNum>-<seqLen>/<body> by an [Encoder] and reassembled
// by a [Decoder].
package ur

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/cbor"
)

const Scheme = "ur"

// UR is an immutable typed CBOR payload
type UR struct {
	urType string
	cbor   []byte
}

// New creates a UR from a type and the CBOR encoding of its payload
func New(urType string, cborData []byte) (*UR, error) {
	if !IsValidType(urType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, urType)
	}
	if err := cbor.Wellformed(cborData); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCbor, err)
	}
	u := &UR{
		urType: urType,
		cbor:   bytes.Clone(cborData),
	}
	return u, nil
}

// NewFromValue creates a UR from a type and a value to be CBOR encoded
func NewFromValue(urType string, v any) (*UR, error) {
	cborData, err := cbor.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCbor, err)
	}
	return New(urType, cborData)
}

// Parse parses a single-part UR string. Multi-part strings must be passed to a Decoder
func Parse(s string) (*UR, error) {
	urType, components, err := splitURString(s)
	if err != nil {
		return nil, err
	}
	if len(components) != 1 {
		return nil, fmt.Errorf(
			"%w: expected 2 path components, got %d",
			ErrInvalidPathLength,
			len(components)+1,
		)
	}
	cborData, err := bytewords.Decode(components[0], bytewords.StyleMinimal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	return New(urType, cborData)
}

// splitURString lowercases s, strips the scheme and returns the validated type along with the
// remaining path components
func splitURString(s string) (string, []string, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	path, ok := strings.CutPrefix(lower, Scheme+":")
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidScheme, s)
	}
	components := strings.Split(path, "/")
	if len(components) < 2 {
		return "", nil, fmt.Errorf(
			"%w: expected at least 2 path components, got %d",
			ErrInvalidPathLength,
			len(components),
		)
	}
	urType := components[0]
	if !IsValidType(urType) {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidType, urType)
	}
	return urType, components[1:], nil
}

// IsValidType returns true if t is a non-empty string of lowercase letters, digits and hyphens
func IsValidType(t string) bool {
	if t == "" {
		return false
	}
	for _, c := range t {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

func (u *UR) Type() string {
	return u.urType
}

// Cbor returns a copy of the CBOR payload
func (u *UR) Cbor() []byte {
	return bytes.Clone(u.cbor)
}

// String returns the canonical lowercase single-part form
func (u *UR) String() string {
	return Scheme + ":" + u.urType + "/" + bytewords.Encode(u.cbor, bytewords.StyleMinimal)
}

// QRString returns the uppercase single-part form, which QR codes can store in alphanumeric mode
func (u *UR) QRString() string {
	return strings.ToUpper(u.String())
}

// CheckType returns an error if the UR type is not expected
func (u *UR) CheckType(expected string) error {
	if u.urType != expected {
		return fmt.Errorf(
			"%w: expected %q, got %q",
			ErrUnexpectedType,
			expected,
			u.urType,
		)
	}
	return nil
}

// CheckTypeIn returns an error if the UR type is not one of expected
func (u *UR) CheckTypeIn(expected ...string) error {
	if slices.Contains(expected, u.urType) {
		return nil
	}
	return fmt.Errorf(
		"%w: expected one of %s, got %q",
		ErrUnexpectedType,
		strings.Join(expected, ", "),
		u.urType,
	)
}

// Decode decodes the CBOR payload into dest
func (u *UR) Decode(dest any) error {
	if _, err := cbor.Decode(u.cbor, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCbor, err)
	}
	return nil
}

// Value returns the generic decoded form of the payload
func (u *UR) Value() (any, error) {
	var v cbor.Value
	if err := u.Decode(&v); err != nil {
		return nil, err
	}
	return v.Value(), nil
}

func (u *UR) Equal(other *UR) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.urType == other.urType && bytes.Equal(u.cbor, other.cbor)
}
