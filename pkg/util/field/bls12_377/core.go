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
package bls12_377

import (
	"fmt"
	"hash/fnv"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform
// to the field.Element interface.  This mirrors the koalabear adapter, and
// changes to one should be made to both.
type Element struct {
	fr.Element
}

// half is the inverse of two.
var half = NewElement(2).Inverse()

// NewElement constructs an element from a given uint64.
func NewElement(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Double 2x
func (x Element) Double() Element {
	var elem fr.Element
	//
	elem.Double(&x.Element)
	//
	return Element{elem}
}

// Half x/2
func (x Element) Half() Element {
	return x.Mul(half)
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Div x / y, or panics if y = 0.
func (x Element) Div(y Element) Element {
	return x.Mul(y.Inverse())
}

// TryInverse x⁻¹, or false if x = 0.
func (x Element) TryInverse() (Element, bool) {
	var elem fr.Element
	//
	if x.IsZero() {
		return x, false
	}
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}, true
}

// Inverse x⁻¹, or panics if x = 0.
func (x Element) Inverse() Element {
	inv, ok := x.TryInverse()
	if !ok {
		panic("inverse of zero in BLS12-377")
	}
	//
	return inv
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

// Uint64 returns the numerical value of x.
func (x Element) Uint64() uint64 {
	if !x.IsUint64() {
		panic(fmt.Errorf("cannot convert to uint64: %s", x.String()))
	}
	//
	return x.Element.Uint64()
}

// SetBytes implementation for Element.
func (x Element) SetBytes(bytes []byte) Element {
	x.Element.SetBytes(bytes)
	//
	return x
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

// Bytes returns the big-endian encoded value of the Element, possibly with leading zeros.
func (x Element) Bytes() []byte {
	return x.Marshal()
}

// Equals implementation for hash.Hasher interface.
func (x Element) Equals(other Element) bool {
	return x == other
}

// Hash implementation for hash.Hasher interface.
func (x Element) Hash() uint64 {
	hash := fnv.New64a()
	// Hash the canonical big-endian encoding
	hash.Write(x.Bytes())
	// Done
	return hash.Sum64()
}

func (x Element) String() string {
	return x.Element.String()
}

// Text implementation for the Element interface.  Bases up to 62 are
// supported, whereas gnark-crypto stops at 36.
func (x Element) Text(base int) string {
	if base <= 36 {
		return x.Element.Text(base)
	}
	//
	var val big.Int
	//
	return x.Element.BigInt(&val).Text(base)
}
