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
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/cbor"
	"github.com/blinklabs-io/gour/cmd/common"
	"github.com/spf13/pflag"
)

// maxLineLen bounds a single UR part read from the input
const maxLineLen = 1 << 20

type decodeFlags struct {
	flagset *pflag.FlagSet
	diag    bool
}

func newDecodeFlags() *decodeFlags {
	f := &decodeFlags{
		flagset: pflag.NewFlagSet("decode", pflag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.diag,
		"diag",
		false,
		"output CBOR diagnostic notation instead of hex",
	)
	return f
}

func runDecode(f *common.GlobalFlags) {
	decodeFlags := newDecodeFlags()
	err := decodeFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	var input io.Reader = os.Stdin
	if path := decodeFlags.flagset.Arg(0); path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}
	u, err := decodeParts(input, f)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if decodeFlags.diag {
		diag, err := cbor.Diagnose(u.Cbor())
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(diag)
		return
	}
	fmt.Println(hex.EncodeToString(u.Cbor()))
}

// decodeParts feeds one UR part per line to a decoder until it completes
func decodeParts(input io.Reader, f *common.GlobalFlags) (*ur.UR, error) {
	decoder := ur.NewDecoder(ur.WithDecoderLogger(f.Logger))
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !decoder.ReceivePart(line) {
			continue
		}
		f.Logger.Info(
			"received part",
			"type", decoder.ExpectedType(),
			"processed", decoder.ProcessedPartsCount(),
			"expected", decoder.ExpectedFragmentCount(),
			"percent", fmt.Sprintf("%.0f", decoder.EstimatedPercentComplete()*100),
		)
		if decoder.IsComplete() {
			return decoder.Result()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf(
		"input ended before the UR was complete (%d parts processed)",
		decoder.ProcessedPartsCount(),
	)
}
