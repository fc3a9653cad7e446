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
	"strings"

	ur "github.com/blinklabs-io/gour"
	"github.com/blinklabs-io/gour/bytewords"
	"github.com/blinklabs-io/gour/cbor"
	"github.com/blinklabs-io/gour/cmd/common"
	"github.com/blinklabs-io/gour/registry"
	"github.com/spf13/pflag"
)

type inspectFlags struct {
	flagset   *pflag.FlagSet
	structure bool
}

func newInspectFlags() *inspectFlags {
	f := &inspectFlags{
		flagset: pflag.NewFlagSet("inspect", pflag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.structure,
		"structure",
		false,
		"dump the decoded CBOR structure",
	)
	return f
}

func runInspect(f *common.GlobalFlags) {
	inspectFlags := newInspectFlags()
	err := inspectFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(inspectFlags.flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a UR\n")
		os.Exit(1)
	}
	u, err := ur.Parse(inspectFlags.flagset.Arg(0))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	out, err := inspectUR(u, inspectFlags.structure)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func inspectUR(u *ur.UR, structure bool) (string, error) {
	var sb strings.Builder
	cborData := u.Cbor()
	fmt.Fprintf(&sb, "Type: %s\n", u.Type())
	fmt.Fprintf(&sb, "CBOR length: %d\n", len(cborData))
	fmt.Fprintf(
		&sb,
		"Checksum words: %s\n",
		bytewords.ChecksumWords(cborData, bytewords.StyleStandard),
	)
	diag, err := cbor.Diagnose(cborData)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&sb, "Diagnostic: %s\n", diag)
	if structure {
		value, err := u.Value()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "Structure:\n%s", cbor.DumpCborStructure(value, "  "))
	}
	if _, err := registry.KindOf(u.Type()); err != nil {
		return sb.String(), nil
	}
	payload, err := registry.Decode(u)
	if err != nil {
		return "", err
	}
	switch p := payload.(type) {
	case registry.Bytes:
		fmt.Fprintf(&sb, "Bytes: %s\n", p.String())
	case registry.PSBT:
		fmt.Fprintf(&sb, "PSBT length: %d\n", len(p))
	case *registry.Seed:
		fmt.Fprintf(&sb, "Seed length: %d\n", len(p.Payload))
		fmt.Fprintf(&sb, "Seed identifier: %s\n", p.Identifier())
		if p.CreationDate != nil {
			fmt.Fprintf(&sb, "Created: %s\n", p.CreationDate.UTC().Format("2006-01-02"))
		}
		if p.Name != "" {
			fmt.Fprintf(&sb, "Name: %s\n", p.Name)
		}
	case *registry.HDKey:
		if fingerprint, err := p.Fingerprint(); err == nil {
			fmt.Fprintf(&sb, "Fingerprint: %08x\n", fingerprint)
		}
		if p.Origin != nil {
			fmt.Fprintf(&sb, "Origin: %s\n", p.Origin.String())
		}
		if p.Children != nil {
			fmt.Fprintf(&sb, "Children: %s\n", p.Children.String())
		}
		if extKey, err := p.ExtendedKey(); err == nil {
			fmt.Fprintf(&sb, "Extended key: %s\n", extKey.String())
		}
	}
	return sb.String(), nil
}
