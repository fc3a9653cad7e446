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
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/cmd/common"
	"github.com/spf13/pflag"
)

type bytewordsFlags struct {
	flagset       *pflag.FlagSet
	style         string
	checksumWords bool
}

func newBytewordsFlags() *bytewordsFlags {
	f := &bytewordsFlags{
		flagset: pflag.NewFlagSet("bytewords", pflag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.style,
		"style",
		bytewords.StyleStandard.String(),
		"bytewords style (standard, uri or minimal)",
	)
	f.flagset.BoolVar(
		&f.checksumWords,
		"checksum-words",
		false,
		"only output the checksum words of the input",
	)
	return f
}

func runBytewords(f *common.GlobalFlags) {
	bytewordsFlags := newBytewordsFlags()
	err := bytewordsFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	style, err := bytewords.ParseStyle(bytewordsFlags.style)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	args := bytewordsFlags.flagset.Args()
	if len(args) < 1 {
		fmt.Printf("ERROR: you must specify encode or decode\n")
		os.Exit(1)
	}
	var input string
	if len(args) > 1 {
		input = strings.Join(args[1:], " ")
	} else {
		data, err := readInput("")
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		input = string(data)
	}
	out, err := transcodeBytewords(args[0], input, style, bytewordsFlags.checksumWords)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// transcodeBytewords converts hex to bytewords (encode) or bytewords to hex (decode)
func transcodeBytewords(
	mode string,
	input string,
	style bytewords.Style,
	checksumWords bool,
) (string, error) {
	switch mode {
	case "encode":
		data, err := decodeHexInput([]byte(input))
		if err != nil {
			return "", err
		}
		if checksumWords {
			return bytewords.ChecksumWords(data, style), nil
		}
		return bytewords.Encode(data, style), nil
	case "decode":
		data, err := bytewords.Decode(strings.TrimSpace(input), style)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("unknown bytewords mode: %s", mode)
	}
}
