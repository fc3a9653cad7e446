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

package cbor

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DumpCborStructure renders a value produced by Value.Value() as an indented tree, one item
// per line. Each nesting level adds two spaces to prefix
func DumpCborStructure(data any, prefix string) string {
	var sb strings.Builder
	dumpValue(&sb, data, prefix)
	return sb.String()
}

func dumpValue(sb *strings.Builder, data any, prefix string) {
	childPrefix := prefix + "  "
	switch v := data.(type) {
	case int, uint, int16, uint16, int32, uint32, int64, uint64:
		fmt.Fprintf(sb, "%s0x%x (%d),\n", prefix, v, v)
	case []byte:
		fmt.Fprintf(sb, "%s<bytes> (length %d),\n", prefix, len(v))
	case ByteString:
		fmt.Fprintf(sb, "%s<bytes> %s (length %d),\n", prefix, v.String(), v.Len())
	case string:
		fmt.Fprintf(sb, "%s%q,\n", prefix, v)
	case time.Time:
		fmt.Fprintf(sb, "%s%s,\n", prefix, v.UTC().Format(time.RFC3339))
	case []any:
		sb.WriteString(prefix + "[\n")
		for _, item := range v {
			dumpValue(sb, item, childPrefix)
		}
		sb.WriteString(prefix + "],\n")
	case map[any]any:
		sb.WriteString(prefix + "{\n")
		// Go map order is random, so sort by the rendered key
		keys := make([]string, 0, len(v))
		byKey := make(map[string]any, len(v))
		for key, val := range v {
			rendered := fmt.Sprintf("%v", key)
			keys = append(keys, rendered)
			byKey[rendered] = val
		}
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(sb, "%s%s =>\n", childPrefix, key)
			dumpValue(sb, byKey[key], childPrefix+"  ")
		}
		sb.WriteString(prefix + "},\n")
	case Tag:
		if name := TagName(v.Number); name != "" {
			fmt.Fprintf(sb, "%stag %d %s (\n", prefix, v.Number, name)
		} else {
			fmt.Fprintf(sb, "%stag %d (\n", prefix, v.Number)
		}
		dumpValue(sb, v.Content, childPrefix)
		sb.WriteString(prefix + "),\n")
	default:
		fmt.Fprintf(sb, "%s%#v,\n", prefix, v)
	}
}
