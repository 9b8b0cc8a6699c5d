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
	"github.com/consensys/go-smallfield/pkg/util/collection/hash"
)

// Pow takes a given value to the power n, using exponentiation by squaring.
// Bits of n are processed from least to most significant, hence this requires
// O(log n) multiplications.
func Pow[R Ring[R]](val R, n uint64) R {
	acc := val.SetUint64(1)
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			acc = acc.Mul(val)
		}
		// Avoid a redundant squaring on the last iteration.
		if n > 1 {
			val = val.Mul(val)
		}
	}
	//
	return acc
}

// Sum returns x0 + x1 + ..., where the empty sum is zero.
func Sum[R Ring[R]](vals ...R) R {
	var acc R
	//
	acc = acc.SetUint64(0)
	//
	for _, v := range vals {
		acc = acc.Add(v)
	}
	//
	return acc
}

// Product returns x0 * x1 * ..., where the empty product is one.
func Product[R Ring[R]](vals ...R) R {
	var acc R
	//
	acc = acc.SetUint64(1)
	//
	for _, v := range vals {
		acc = acc.Mul(v)
	}
	//
	return acc
}

// Order determines the multiplicative order of a given element, that is the
// smallest n > 0 where valⁿ = 1.  At most limit powers are considered, and
// false is returned if the order was not found within this limit (or val is
// zero).
func Order[F Element[F]](val F, limit uint64) (uint64, bool) {
	if val.IsZero() {
		return 0, false
	}
	//
	var (
		seen = hash.NewSet[F](0)
		acc  = val
	)
	//
	for n := uint64(1); n <= limit; n++ {
		if acc.IsOne() {
			return n, true
		} else if seen.Insert(acc) {
			// Revisiting a power other than one means val generates no cycle
			// through the identity.  This cannot happen in a field.
			panic("multiplicative cycle without identity (not a field?)")
		}
		//
		acc = acc.Mul(val)
	}
	//
	return 0, false
}
