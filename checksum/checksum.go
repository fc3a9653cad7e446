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

// Package checksum provides the CRC-32 used to protect bytewords payloads
// and fountain-coded messages
package checksum

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// Size is the length in bytes of an encoded checksum
const Size = 4

// The reflected 0xEDB88320 table, built once at startup
var table = crc32.MakeTable(crc32.IEEE)

// Checksum returns the CRC-32 (ISO-HDLC) of the provided data
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}

// Bytes returns the checksum of the provided data as 4 big-endian bytes
func Bytes(data []byte) []byte {
	ret := make([]byte, Size)
	binary.BigEndian.PutUint32(ret, Checksum(data))
	return ret
}

// Append returns a new slice containing the data followed by its big-endian checksum
func Append(data []byte) []byte {
	ret := make([]byte, 0, len(data)+Size)
	ret = append(ret, data...)
	return binary.BigEndian.AppendUint32(ret, Checksum(data))
}

// Strip verifies the checksum suffix of the provided data and returns the data without it.
// It returns false if the data is too short to contain a checksum or the checksum doesn't match
func Strip(data []byte) ([]byte, bool) {
	if len(data) < Size {
		return nil, false
	}
	payload := data[:len(data)-Size]
	if !bytes.Equal(data[len(data)-Size:], Bytes(payload)) {
		return nil, false
	}
	return payload, true
}
