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

// Package bytewords implements the Bytewords encoding, which represents each byte as a
// four-letter English word (or a two-letter abbreviation) and protects the result with a
// CRC-32 checksum.
//
// Three styles are supported:
//   - StyleStandard: words separated by spaces ("able acid also")
//   - StyleURI: words separated by hyphens, safe for use in URIs ("able-acid-also")
//   - StyleMinimal: first and last letter of each word with no separator ("aeadao")
//
// Encode always appends the checksum of the input and Decode always verifies and removes it.
// All functions are safe for concurrent use.
package bytewords

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/gour/checksum"
)

// Style selects how each byte is rendered and how words are separated
type Style int

const (
	StyleStandard Style = iota
	StyleURI
	StyleMinimal
)

func (s Style) String() string {
	switch s {
	case StyleStandard:
		return "standard"
	case StyleURI:
		return "uri"
	case StyleMinimal:
		return "minimal"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle returns the Style with the given name
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "standard":
		return StyleStandard, nil
	case "uri":
		return StyleURI, nil
	case "minimal":
		return StyleMinimal, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidStyle, name)
	}
}

func (s Style) separator() string {
	switch s {
	case StyleStandard:
		return " "
	case StyleURI:
		return "-"
	default:
		return ""
	}
}

// Encode appends the checksum of data and renders the result using the given style.
// An unknown style is treated as StyleMinimal
func Encode(data []byte, style Style) string {
	return encodeRaw(checksum.Append(data), style)
}

// ChecksumWords renders only the checksum of data, which gives a short fingerprint
// suitable for visual comparison
func ChecksumWords(data []byte, style Style) string {
	return encodeRaw(checksum.Bytes(data), style)
}

// Decode parses a string in the given style, verifies the trailing checksum and returns the
// data without it. Input is case-insensitive
func Decode(encoded string, style Style) ([]byte, error) {
	var data []byte
	var err error
	encoded = strings.ToLower(encoded)
	switch style {
	case StyleStandard, StyleURI:
		data, err = decodeWords(encoded, style.separator())
	case StyleMinimal:
		data, err = decodeMinimal(encoded)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStyle, style)
	}
	if err != nil {
		return nil, err
	}
	payload, ok := checksum.Strip(data)
	if !ok {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}

func encodeRaw(data []byte, style Style) string {
	var sb strings.Builder
	switch style {
	case StyleStandard, StyleURI:
		sep := style.separator()
		sb.Grow(len(data) * (wordLen + 1))
		for i, b := range data {
			if i > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(words[b])
		}
	default:
		sb.Grow(len(data) * minimalLen)
		for _, b := range data {
			sb.WriteString(minimalWords[b])
		}
	}
	return sb.String()
}

func decodeWords(encoded string, sep string) ([]byte, error) {
	tokens := strings.Split(encoded, sep)
	ret := make([]byte, 0, len(tokens))
	for _, token := range tokens {
		if len(token) != wordLen {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, token)
		}
		b, ok := lookup(token[0], token[wordLen-1])
		// The full word must match, not just the letters used for the lookup
		if !ok || words[b] != token {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, token)
		}
		ret = append(ret, b)
	}
	return ret, nil
}

func decodeMinimal(encoded string) ([]byte, error) {
	if len(encoded)%minimalLen != 0 {
		return nil, fmt.Errorf(
			"%w: minimal input length %d is not a multiple of %d",
			ErrInvalidWord,
			len(encoded),
			minimalLen,
		)
	}
	ret := make([]byte, 0, len(encoded)/minimalLen)
	for i := 0; i < len(encoded); i += minimalLen {
		b, ok := lookup(encoded[i], encoded[i+1])
		if !ok {
			return nil, fmt.Errorf(
				"%w: %q",
				ErrInvalidWord,
				encoded[i:i+minimalLen],
			)
		}
		ret = append(ret, b)
	}
	return ret, nil
}
