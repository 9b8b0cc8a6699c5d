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
	"math"
	"testing"

	"github.com/consensys/go-smallfield/pkg/util/assert"
)

func Test_Constants(t *testing.T) {
	assert.Equal(t, uint32(0), Zero()[0])
	assert.Equal(t, uint32(1), One()[0])
	assert.Equal(t, uint32(2), Two()[0])
	assert.Equal(t, uint32(100), NegOne()[0])
	assert.Equal(t, uint32(2), Generator()[0])
	assert.Equal(t, One(), Zero().Sub(NegOne()))
	assert.Equal(t, Two(), One().Add(One()))
}

func Test_Modulus(t *testing.T) {
	assert.Equal(t, "101", Zero().Modulus().String())
	assert.True(t, Zero().Modulus().ProbablyPrime(0))
}

func Test_New_01(t *testing.T) {
	// New performs no reduction
	assert.Equal(t, uint32(200), New(200)[0])
	assert.Equal(t, uint32(Modulus), New(Modulus)[0])
}

func Test_FromWrapped_01(t *testing.T) {
	assert.Equal(t, Zero(), FromWrappedUint32(Modulus))
	assert.Equal(t, Zero(), FromWrappedUint64(uint64(Modulus)))
	assert.Equal(t, New(19), FromWrappedUint32(120))
	assert.Equal(t, New(uint32(math.MaxUint32%101)), FromWrappedUint32(math.MaxUint32))
	assert.Equal(t, New(uint32(math.MaxUint64%101)), FromWrappedUint64(math.MaxUint64))
}

func Test_FromWrapped_02(t *testing.T) {
	for i := range uint64(10 * Modulus) {
		x := FromWrappedUint64(i)
		assert.True(t, x[0] < Modulus, "%d not reduced", i)
		assert.Equal(t, i%uint64(Modulus), x.Uint64())
	}
}

func Test_FromCanonical_01(t *testing.T) {
	assert.Equal(t, New(0), FromCanonicalUint8(0))
	assert.Equal(t, New(100), FromCanonicalUint8(100))
	assert.Equal(t, New(50), FromCanonicalUint16(50))
	assert.Equal(t, New(99), FromCanonicalUint32(99))
	assert.Equal(t, New(7), FromCanonicalUint64(7))
	assert.Equal(t, New(42), FromCanonicalUint(42))
}

func Test_FromCanonical_02(t *testing.T) {
	assert.PanicsWith(t, ErrOutOfRange, func() { FromCanonicalUint8(101) })
	assert.PanicsWith(t, ErrOutOfRange, func() { FromCanonicalUint16(256) })
	assert.PanicsWith(t, ErrOutOfRange, func() { FromCanonicalUint32(Modulus) })
	assert.PanicsWith(t, ErrOutOfRange, func() { FromCanonicalUint64(math.MaxUint64) })
	assert.PanicsWith(t, ErrOutOfRange, func() { FromCanonicalUint(1000) })
}

func Test_FromBool(t *testing.T) {
	assert.Equal(t, One(), FromBool(true))
	assert.Equal(t, Zero(), FromBool(false))
}

func Test_IsZero_01(t *testing.T) {
	assert.True(t, FromCanonicalUint32(0).IsZero())
	assert.True(t, FromWrappedUint32(Modulus).IsZero())
	// Unreduced p is tolerated as zero
	assert.True(t, New(Modulus).IsZero())
}

func Test_IsZero_02(t *testing.T) {
	// But no other multiple of p is
	assert.False(t, New(2*Modulus).IsZero())
	assert.False(t, New(10).IsZero())
	//
	for i := uint32(1); i < Modulus; i++ {
		assert.False(t, New(i).IsZero(), "%d is not zero", i)
	}
}

func Test_IsOne(t *testing.T) {
	assert.True(t, One().IsOne())
	assert.False(t, Zero().IsOne())
	assert.False(t, NegOne().IsOne())
}

func Test_Equals(t *testing.T) {
	assert.True(t, New(10).Equals(FromWrappedUint32(111)))
	assert.False(t, New(10).Equals(New(11)))
	// Equality is structural, hence an unreduced p differs from 0.
	assert.False(t, New(Modulus).Equals(Zero()))
	assert.Equal(t, New(10).Hash(), FromWrappedUint32(111).Hash())
}

func Test_Generator(t *testing.T) {
	var (
		g   = Generator()
		acc = g
	)
	// g must have order exactly p-1
	for n := uint32(1); n < Modulus-1; n++ {
		assert.False(t, acc.IsOne(), "generator has order %d", n)
		acc = acc.Mul(g)
	}
	//
	assert.True(t, acc.IsOne())
}
