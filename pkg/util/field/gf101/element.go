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
	"errors"
	"fmt"
	"math/big"
)

// Modulus is the (prime) order of the field.
const Modulus uint32 = 101

// ErrNoInverse is raised when an inverse of zero is requested.
var ErrNoInverse = errors.New("zero has no multiplicative inverse")

// ErrOutOfRange is raised when a value which should already be reduced is not.
var ErrOutOfRange = errors.New("value out of range")

// Element of the prime field of order 101.  This is defined as an array to
// prevent mistaken use of arithmetic operators, or naive assignments.  The
// value held is always in canonical form [0,p), except for elements built
// directly via New.
type Element [1]uint32

// New constructs an element holding the given value verbatim.  No reduction is
// performed, hence the caller is responsible for ensuring raw < p.
func New(raw uint32) Element {
	return Element{raw}
}

// FromWrappedUint32 constructs an element from an arbitrary uint32 by reducing
// it modulo p.
func FromWrappedUint32(raw uint32) Element {
	return Element{raw % Modulus}
}

// FromWrappedUint64 constructs an element from an arbitrary uint64 by reducing
// it modulo p.
func FromWrappedUint64(raw uint64) Element {
	return Element{uint32(raw % uint64(Modulus))}
}

// FromCanonicalUint8 constructs an element from a value already known to be
// less than p.
func FromCanonicalUint8(raw uint8) Element {
	return FromCanonicalUint64(uint64(raw))
}

// FromCanonicalUint16 constructs an element from a value already known to be
// less than p.
func FromCanonicalUint16(raw uint16) Element {
	return FromCanonicalUint64(uint64(raw))
}

// FromCanonicalUint32 constructs an element from a value already known to be
// less than p.
func FromCanonicalUint32(raw uint32) Element {
	return FromCanonicalUint64(uint64(raw))
}

// FromCanonicalUint constructs an element from a platform-sized value already
// known to be less than p.
func FromCanonicalUint(raw uint) Element {
	return FromCanonicalUint64(uint64(raw))
}

// FromCanonicalUint64 constructs an element from a value already known to be
// less than p.  This panics if the value is not, in fact, canonical.
func FromCanonicalUint64(raw uint64) Element {
	if raw >= uint64(Modulus) {
		panic(fmt.Errorf("%w: %d is not in GF(%d)", ErrOutOfRange, raw, Modulus))
	}
	//
	return Element{uint32(raw)}
}

// FromBool returns 1 for true and 0 for false.
func FromBool(b bool) Element {
	if b {
		return One()
	}
	//
	return Zero()
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{0}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{1}
}

// Two returns 1+1.
func Two() Element {
	return Element{2}
}

// NegOne returns p-1.
func NegOne() Element {
	return Element{Modulus - 1}
}

// Generator returns a generator of the multiplicative group.  Since 2 is a
// primitive root modulo 101, this has order p-1.
func Generator() Element {
	return Element{2}
}

// Modulus returns the order of the field.
func (x Element) Modulus() *big.Int {
	return big.NewInt(int64(Modulus))
}

// Uint32 returns the canonical value of x.
func (x Element) Uint32() uint32 {
	return x[0] % Modulus
}
