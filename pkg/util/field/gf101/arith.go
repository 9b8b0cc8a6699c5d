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

import "fmt"

// Add x + y
func (x Element) Add(y Element) Element {
	// Cannot overflow since p < 2³¹
	res := Element{x[0] + y[0]}
	if res[0] >= Modulus {
		res[0] -= Modulus
	}
	//
	return res
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	res := Element{x[0] - y[0]}
	// Check for underflow
	if x[0] < y[0] {
		res[0] += Modulus
	}
	//
	return res
}

// Neg -x
func (x Element) Neg() Element {
	// p - 0 = p is not canonical
	if x[0] == 0 {
		return x
	}
	//
	return Element{Modulus - x[0]}
}

// Double 2x
func (x Element) Double() Element {
	return x.Add(x)
}

// Half x/2
func (x Element) Half() Element {
	if x[0]&1 == 0 {
		return Element{x[0] >> 1}
	}
	// p is odd, so x+p is even.
	return Element{(x[0] + Modulus) >> 1}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{uint32((uint64(x[0]) * uint64(y[0])) % uint64(Modulus))}
}

// Exp computes xⁿ using exponentiation by squaring.
func (x Element) Exp(n uint64) Element {
	var (
		acc  = One()
		base = x
	)
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		//
		base = base.Mul(base)
	}
	//
	return acc
}

// TryInverse computes x⁻¹, returning false if x is zero.  The inverse is
// computed as x^(p-2), which holds by Fermat's little theorem.
func (x Element) TryInverse() (Element, bool) {
	if x.IsZero() {
		return Zero(), false
	}
	//
	return x.Exp(uint64(Modulus - 2)), true
}

// Inverse computes x⁻¹, or panics if x is zero.
func (x Element) Inverse() Element {
	inv, ok := x.TryInverse()
	if !ok {
		panic(fmt.Errorf("%w in GF(%d)", ErrNoInverse, Modulus))
	}
	//
	return inv
}

// Div computes x / y, or panics if y is zero.
func (x Element) Div(y Element) Element {
	return x.Mul(y.Inverse())
}

// TryDiv computes x / y, returning false if y is zero.
func (x Element) TryDiv(y Element) (Element, bool) {
	inv, ok := y.TryInverse()
	if !ok {
		return Zero(), false
	}
	//
	return x.Mul(inv), true
}

// IsZero checks whether x is zero.  Observe that an (unreduced) value of
// exactly p is also treated as zero, though no other multiple of p is.
func (x Element) IsZero() bool {
	return x[0] == 0 || x[0] == Modulus
}

// IsOne checks whether x is one.
func (x Element) IsOne() bool {
	return x[0] == 1
}

// AddAssign replaces *x with *x + y.
func AddAssign(x *Element, y Element) {
	*x = x.Add(y)
}

// SubAssign replaces *x with *x - y.
func SubAssign(x *Element, y Element) {
	*x = x.Sub(y)
}

// MulAssign replaces *x with *x * y.
func MulAssign(x *Element, y Element) {
	*x = x.Mul(y)
}

// Sum returns the sum of zero or more elements, where the empty sum is zero.
func Sum(xs ...Element) Element {
	acc := Zero()
	//
	for _, x := range xs {
		acc = acc.Add(x)
	}
	//
	return acc
}

// Product returns the product of zero or more elements, where the empty
// product is one.
func Product(xs ...Element) Element {
	acc := One()
	//
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	//
	return acc
}
