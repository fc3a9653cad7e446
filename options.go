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

import (
	"log/slog"
)

// EncoderOptionFunc is a type that represents functions that modify the encoder config
type EncoderOptionFunc func(*Encoder)

// DecoderOptionFunc is a type that represents functions that modify the decoder config
type DecoderOptionFunc func(*Decoder)

// WithMinFragmentLen specifies the smallest fragment the encoder will produce, which bounds the
// number of parts for small payloads. The default is 10
func WithMinFragmentLen(minFragmentLen int) EncoderOptionFunc {
	return func(e *Encoder) {
		e.minFragmentLen = minFragmentLen
	}
}

// WithFirstSeqNum specifies the sequence number the encoder starts counting from. The first part
// emitted has sequence number firstSeqNum+1
func WithFirstSeqNum(firstSeqNum uint32) EncoderOptionFunc {
	return func(e *Encoder) {
		e.firstSeqNum = firstSeqNum
	}
}

func WithEncoderLogger(logger *slog.Logger) EncoderOptionFunc {
	return func(e *Encoder) {
		e.logger = logger
	}
}

func WithDecoderLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}
