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

package main

import (
	"fmt"
	"os"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/cmd/common"
	"github.com/blinklabs-io/gour/registry"
	"github.com/spf13/pflag"
)

type encodeFlags struct {
	flagset        *pflag.FlagSet
	urType         string
	hexInput       bool
	cborInput      bool
	count          int
	maxFragmentLen int
	minFragmentLen int
	firstSeqNum    uint32
	qr             bool
}

func newEncodeFlags(cfg *common.Config) *encodeFlags {
	f := &encodeFlags{
		flagset: pflag.NewFlagSet("encode", pflag.ExitOnError),
	}
	f.flagset.StringVar(&f.urType, "type", registry.TypeBytes, "UR type")
	f.flagset.BoolVar(&f.hexInput, "hex", false, "input is hex encoded")
	f.flagset.BoolVar(
		&f.cborInput,
		"cbor",
		false,
		"input is already CBOR (otherwise it's wrapped in a CBOR byte string)",
	)
	f.flagset.IntVar(
		&f.count,
		"count",
		0,
		"number of parts to output (defaults to the number of fragments)",
	)
	f.flagset.IntVar(
		&f.maxFragmentLen,
		"max-fragment-len",
		cfg.MaxFragmentLen,
		"maximum fragment length in bytes",
	)
	f.flagset.IntVar(
		&f.minFragmentLen,
		"min-fragment-len",
		cfg.MinFragmentLen,
		"minimum fragment length in bytes",
	)
	f.flagset.Uint32Var(
		&f.firstSeqNum,
		"first-seq-num",
		cfg.FirstSeqNum,
		"sequence number to start counting from",
	)
	f.flagset.BoolVar(&f.qr, "qr", cfg.QR, "output uppercase parts for QR codes")
	return f
}

func runEncode(f *common.GlobalFlags) {
	encodeFlags := newEncodeFlags(f.Config)
	err := encodeFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	data, err := readInput(encodeFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if encodeFlags.hexInput {
		data, err = decodeHexInput(data)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	var u *ur.UR
	if encodeFlags.cborInput {
		u, err = ur.New(encodeFlags.urType, data)
	} else {
		u, err = ur.NewFromValue(encodeFlags.urType, data)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	// Make sure payloads of known types are well formed before sending them
	if _, err := registry.KindOf(u.Type()); err == nil {
		if _, err := registry.Decode(u); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}
	encoder, err := ur.NewEncoder(
		u,
		encodeFlags.maxFragmentLen,
		ur.WithMinFragmentLen(encodeFlags.minFragmentLen),
		ur.WithFirstSeqNum(encodeFlags.firstSeqNum),
		ur.WithEncoderLogger(f.Logger),
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	count := encodeFlags.count
	if count <= 0 {
		count = encoder.SeqLen()
	}
	if encoder.IsSinglePart() {
		count = 1
	}
	for range count {
		if encodeFlags.qr {
			fmt.Println(encoder.NextQRPart())
		} else {
			fmt.Println(encoder.NextPart())
		}
	}
}
