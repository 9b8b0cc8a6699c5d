// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gf101

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
)

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// ByteWidth is the number of bytes in the binary encoding of an element.
const ByteWidth = 4

// Equals implementation for hash.Hasher interface
func (x Element) Equals(o Element) bool {
	return x == o
}

// Hash implementation for hash.Hasher interface
func (x Element) Hash() uint64 {
	// FNV1a hash implementation (unrolled)
	hash := offset64
	//
	return (hash ^ uint64(x[0])) * prime64
}

// SetUint64 returns val reduced modulo p.
func (x Element) SetUint64(val uint64) Element {
	return FromWrappedUint64(val)
}

// Uint64 returns the canonical value of x.
func (x Element) Uint64() uint64 {
	return uint64(x.Uint32())
}

// SetBytes interprets the given bytes as a big-endian unsigned integer of
// arbitrary length, and returns that value reduced modulo p.
func (x Element) SetBytes(b []byte) Element {
	var val uint32
	//
	for _, c := range b {
		val = ((val << 8) + uint32(c)) % Modulus
	}
	//
	return Element{val}
}

// Bytes returns the big-endian encoding of the canonical value of x.
func (x Element) Bytes() []byte {
	var buf [ByteWidth]byte
	//
	binary.BigEndian.PutUint32(buf[:], x.Uint32())
	//
	return buf[:]
}

func (x Element) String() string {
	return x.Text(10)
}

// Text returns the canonical value of x in the given base, which must be
// between 2 and 62.  Digits beyond 'z' are written 'A' to 'Z'.
func (x Element) Text(base int) string {
	if base <= 36 {
		return strconv.FormatUint(x.Uint64(), base)
	}
	// strconv stops at base 36
	return new(big.Int).SetUint64(x.Uint64()).Text(base)
}

// MarshalBinary implementation for encoding.BinaryMarshaler.
func (x Element) MarshalBinary() ([]byte, error) {
	return x.Bytes(), nil
}

// UnmarshalBinary implementation for encoding.BinaryUnmarshaler.  The encoding
// must be exactly ByteWidth bytes, holding a canonical value.
func (x *Element) UnmarshalBinary(data []byte) error {
	if len(data) != ByteWidth {
		return fmt.Errorf("invalid encoding length %d (expected %d)", len(data), ByteWidth)
	}
	//
	val, err := canonical(uint64(binary.BigEndian.Uint32(data)))
	if err != nil {
		return err
	}
	//
	*x = val
	//
	return nil
}

// MarshalText implementation for encoding.TextMarshaler.
func (x Element) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implementation for encoding.TextUnmarshaler.
func (x *Element) UnmarshalText(text []byte) error {
	n, err := strconv.ParseUint(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid field element %q: %w", text, err)
	}
	//
	val, err := canonical(n)
	if err != nil {
		return err
	}
	//
	*x = val
	//
	return nil
}

// MarshalJSON encodes x as a JSON number.
func (x Element) MarshalJSON() ([]byte, error) {
	return x.MarshalText()
}

// UnmarshalJSON decodes a JSON number holding a canonical value.
func (x *Element) UnmarshalJSON(data []byte) error {
	// As per convention, null is a no-op
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	//
	return x.UnmarshalText(data)
}

func canonical(n uint64) (Element, error) {
	if n >= uint64(Modulus) {
		return Zero(), fmt.Errorf("%w: %d is not in GF(%d)", ErrOutOfRange, n, Modulus)
	}
	//
	return Element{uint32(n)}, nil
}
