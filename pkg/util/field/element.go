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
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-smallfield/pkg/util/collection/hash"
)

// Ring captures the operations required of anything which behaves like a
// commutative ring with identity.  Generic algorithms (e.g. Pow) are written
// against this, rather than Element, so they can be reused over structures
// built from a field.
type Ring[Operand any] interface {
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Mul x*y
	Mul(y Operand) Operand
	// SetUint64 returns the image of val in the ring.  In particular,
	// SetUint64(0) and SetUint64(1) give the additive and multiplicative
	// identities.
	SetUint64(val uint64) Operand
}

// An Element of a prime-order field.
type Element[Operand any] interface {
	fmt.Stringer
	hash.Hasher[Operand]
	Ring[Operand]
	// Neg -x
	Neg() Operand
	// Double 2x
	Double() Operand
	// Half x/2
	Half() Operand
	// Compute x / y.  This panics if y = 0.
	Div(y Operand) Operand
	// Compute x⁻¹, returning false if x = 0.
	TryInverse() (Operand, bool)
	// Compute x⁻¹.  This panics if x = 0.
	Inverse() Operand
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Uint64 returns the numerical value of x, which must fit.
	Uint64() uint64
	// Bytes returns the big-endian encoding of x.
	Bytes() []byte
	// SetBytes interprets a big-endian encoding, reducing it if necessary.
	SetBytes([]byte) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(0)
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Two constructs a field element representing 1+1
func Two[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(2)
}

// NegOne constructs a field element representing -1
func NegOne[F Element[F]]() F {
	return One[F]().Neg()
}

// BigInt construct a field element from a given big.Int, reducing it if
// necessary.  Negative values are mapped to their additive inverse.
func BigInt[F Element[F]](val big.Int) F {
	var (
		element F
		abs     big.Int
	)
	//
	element = element.SetBytes(abs.Abs(&val).Bytes())
	// Handle negative values
	if val.Sign() < 0 {
		return element.Neg()
	}
	//
	return element
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// FromBigEndianBytes constructs an element from an array of bytes given in big
// endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	return Pow(Two[F](), uint64(n))
}
