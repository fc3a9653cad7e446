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
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("ur:bytes/hdeymejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtgwdpfnsboxgwlbaawzuefywkdplrsrjynbvygabwjldapfcsdwkbrkch")
	f.Add("UR:BYTES/AEAEAEAE")
	f.Add("ur:crypto-seed/")
	f.Add("ur:/")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		u, err := Parse(s)
		if err != nil {
			return
		}
		// Anything that parses must survive a round trip
		u2, err := Parse(u.String())
		if err != nil {
			t.Fatalf("failed to parse canonical form %q: %s", u.String(), err)
		}
		if !u.Equal(u2) {
			t.Fatalf("round trip mismatch for %q", s)
		}
	})
}

func FuzzDecoderReceivePart(f *testing.F) {
	f.Add("ur:bytes/1-9/lpadascfadaxcywenbpljkhdcahkadaemejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtdkgslpgh")
	f.Add("ur:bytes/10-9/lpbkascfadaxcywenbpljkhdcahkadaemejtswhhylkepmykhhtsytsnoyoyaxaedsuttydmmhhpktpmsrjtwdkiplzs")
	f.Add("ur:bytes/1-1/aeaeaeae")
	f.Add("ur:bytes/4294967295-4294967295/aeaeaeae")
	f.Fuzz(func(t *testing.T, s string) {
		decoder := NewDecoder()
		// Should not panic - that's the test
		decoder.ReceivePart(s)
		_, _ = decoder.Result()
	})
}
