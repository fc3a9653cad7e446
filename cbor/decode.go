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
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/jinzhu/copier"
)

// Limits applied to all decoding. Payloads come from untrusted camera input
const (
	maxNestedLevels = 64
	maxContainerLen = 65536
)

var (
	decMode     _cbor.DecMode
	decModeErr  error
	decModeOnce sync.Once

	diagMode     _cbor.DiagMode
	diagModeErr  error
	diagModeOnce sync.Once
)

func getDecMode() (_cbor.DecMode, error) {
	decModeOnce.Do(func() {
		decMode, decModeErr = _cbor.DecOptions{
			MaxNestedLevels:  maxNestedLevels,
			MaxArrayElements: maxContainerLen,
			MaxMapPairs:      maxContainerLen,
			// Duplicate keys are never valid in the registry types
			DupMapKey: _cbor.DupMapKeyEnforcedAPF,
		}.DecMode()
	})
	return decMode, decModeErr
}

func getDiagMode() (_cbor.DiagMode, error) {
	diagModeOnce.Do(func() {
		diagMode, diagModeErr = _cbor.DiagOptions{
			MaxNestedLevels:  maxNestedLevels,
			MaxArrayElements: maxContainerLen,
			MaxMapPairs:      maxContainerLen,
		}.DiagMode()
	})
	return diagMode, diagModeErr
}

// Decode decodes the first CBOR data item into dest and returns the number of bytes read
func Decode(dataBytes []byte, dest any) (int, error) {
	mode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	dec := mode.NewDecoder(bytes.NewReader(dataBytes))
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// Wellformed checks that the provided data is exactly one well-formed CBOR data item
// with no trailing bytes
func Wellformed(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty CBOR data")
	}
	mode, err := getDecMode()
	if err != nil {
		return err
	}
	return mode.Wellformed(data)
}

// ListLength returns the number of items in the CBOR array at the start of cborData
func ListLength(cborData []byte) (int, error) {
	if len(cborData) == 0 {
		return 0, errors.New("empty CBOR data")
	}
	if cborData[0]&CborTypeMask != CborTypeArray {
		return 0, fmt.Errorf("CBOR item is not an array (initial byte 0x%02x)", cborData[0])
	}
	// Short arrays carry their length in the initial byte
	if cborData[0] <= CborTypeArray+CborMaxUintSimple {
		return int(cborData[0] - CborTypeArray), nil
	}
	var tmp []RawMessage
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	return len(tmp), nil
}

var (
	decodeGenericTypeCache      = map[reflect.Type]reflect.Type{}
	decodeGenericTypeCacheMutex sync.RWMutex
)

// DecodeGeneric decodes the specified CBOR into the destination object without using the
// destination object's UnmarshalCBOR() function
func DecodeGeneric(cborData []byte, dest any) error {
	valueDest := reflect.ValueOf(dest)
	if valueDest.Kind() != reflect.Pointer ||
		valueDest.Elem().Kind() != reflect.Struct {
		return errors.New("destination must be a pointer to a struct")
	}
	typeDest := valueDest.Elem().Type()
	// Check type cache
	decodeGenericTypeCacheMutex.RLock()
	tmpTypeDest, ok := decodeGenericTypeCache[typeDest]
	decodeGenericTypeCacheMutex.RUnlock()
	if !ok {
		tmpTypeDest = genericStructType(typeDest)
		// Populate cache
		decodeGenericTypeCacheMutex.Lock()
		decodeGenericTypeCache[typeDest] = tmpTypeDest
		decodeGenericTypeCacheMutex.Unlock()
	}
	// Create temporary object with the type created above
	tmpDest := reflect.New(tmpTypeDest)
	// Decode CBOR into temporary object
	if _, err := Decode(cborData, tmpDest.Interface()); err != nil {
		return err
	}
	// Copy values from temporary object into destination object
	if err := copier.Copy(dest, tmpDest.Interface()); err != nil {
		return fmt.Errorf("copy decoded value: %w", err)
	}
	return nil
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 section 8) for the provided data
func Diagnose(data []byte) (string, error) {
	mode, err := getDiagMode()
	if err != nil {
		return "", err
	}
	return mode.Diagnose(data)
}
