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
package cmd

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-smallfield/pkg/util/field"
	"github.com/consensys/go-smallfield/pkg/util/field/bls12_377"
	"github.com/consensys/go-smallfield/pkg/util/field/gf101"
	"github.com/consensys/go-smallfield/pkg/util/field/koalabear"
)

// ErrDivisionByZero is reported when dividing by (or inverting) zero.
var ErrDivisionByZero = errors.New("division by zero")

// calculator hides the choice of field behind a string-based interface, such
// that commands can be written once for all supported fields.
type calculator interface {
	// Eval computes "lhs op rhs" for op one of +, -, *, /.
	Eval(lhs string, op string, rhs string) (string, error)
	// Inverse computes arg⁻¹.
	Inverse(arg string) (string, error)
	// Pow computes argⁿ.
	Pow(arg string, n uint64) (string, error)
	// Order computes the multiplicative order of arg, considering at most limit
	// powers.
	Order(arg string, limit uint64) (uint64, bool, error)
	// Generator finds the smallest element whose order is one less than the
	// field size, or false if none exists within the limit.
	Generator(limit uint64) (string, bool)
	// Table computes the operation table for the first n elements, rendered
	// in the given base.  The labels of the rows (and columns) are returned
	// alongside.
	Table(op string, n uint, base int) ([]string, [][]string, error)
	// Modulus returns the order of the field.
	Modulus() *big.Int
}

func newCalculator(cfg *field.Config, base int) (calculator, error) {
	switch cfg.Name {
	case field.GF_101.Name:
		return fieldCalculator[gf101.Element]{base}, nil
	case field.KOALABEAR_16.Name:
		return fieldCalculator[koalabear.Element]{base}, nil
	case field.BLS12_377.Name:
		return fieldCalculator[bls12_377.Element]{base}, nil
	}
	//
	return nil, fmt.Errorf("unsupported field %s", cfg.Name)
}

type fieldCalculator[F field.Element[F]] struct {
	base int
}

func (p fieldCalculator[F]) Eval(lhs string, op string, rhs string) (string, error) {
	x, err := p.parse(lhs)
	if err != nil {
		return "", err
	}
	// Exponents are integers, and must not be reduced modulo p.
	if op == "^" || op == "pow" {
		n, err := parseExponent(rhs)
		if err != nil {
			return "", err
		}
		//
		return field.Pow(x, n).Text(p.base), nil
	}
	//
	y, err := p.parse(rhs)
	if err != nil {
		return "", err
	}
	//
	z, err := apply(op, x, y)
	if err != nil {
		return "", err
	}
	//
	return z.Text(p.base), nil
}

func (p fieldCalculator[F]) Inverse(arg string) (string, error) {
	x, err := p.parse(arg)
	if err != nil {
		return "", err
	}
	//
	inv, ok := x.TryInverse()
	if !ok {
		return "", ErrDivisionByZero
	}
	//
	return inv.Text(p.base), nil
}

func (p fieldCalculator[F]) Pow(arg string, n uint64) (string, error) {
	x, err := p.parse(arg)
	if err != nil {
		return "", err
	}
	//
	return field.Pow(x, n).Text(p.base), nil
}

func (p fieldCalculator[F]) Order(arg string, limit uint64) (uint64, bool, error) {
	x, err := p.parse(arg)
	if err != nil {
		return 0, false, err
	}
	//
	n, ok := field.Order(x, limit)
	//
	return n, ok, nil
}

func (p fieldCalculator[F]) Generator(limit uint64) (string, bool) {
	var (
		groupOrder big.Int
		one        = field.One[F]()
	)
	//
	groupOrder.Sub(p.Modulus(), big.NewInt(1))
	// Sanity check group is small enough to search
	if !groupOrder.IsUint64() || groupOrder.Uint64() > limit {
		return "", false
	}
	//
	for g := one.Double(); !g.IsZero(); g = g.Add(one) {
		if n, ok := field.Order(g, limit); ok && n == groupOrder.Uint64() {
			return g.Text(p.base), true
		}
	}
	//
	return "", false
}

func (p fieldCalculator[F]) Table(op string, n uint, base int) ([]string, [][]string, error) {
	var (
		labels = make([]string, n)
		rows   = make([][]string, n)
		x      = field.Zero[F]()
		one    = field.One[F]()
	)
	//
	for i := range n {
		var y = field.Zero[F]()
		//
		labels[i] = x.Text(base)
		rows[i] = make([]string, n)
		//
		for j := range n {
			z, err := apply(op, x, y)
			// Division by zero is reported as a blank entry
			if errors.Is(err, ErrDivisionByZero) {
				rows[i][j] = "-"
			} else if err != nil {
				return nil, nil, err
			} else {
				rows[i][j] = z.Text(base)
			}
			//
			y = y.Add(one)
		}
		//
		x = x.Add(one)
	}
	//
	return labels, rows, nil
}

func (p fieldCalculator[F]) Modulus() *big.Int {
	return field.Zero[F]().Modulus()
}

// Parse a field element from a (possibly negative) integer literal, which is
// reduced into the field.
func (p fieldCalculator[F]) parse(arg string) (F, error) {
	var val big.Int
	//
	if _, ok := val.SetString(arg, 0); !ok {
		return field.Zero[F](), fmt.Errorf("invalid field element %q", arg)
	}
	//
	return field.BigInt[F](val), nil
}

func apply[F field.Element[F]](op string, x, y F) (F, error) {
	switch op {
	case "+", "add":
		return x.Add(y), nil
	case "-", "sub":
		return x.Sub(y), nil
	case "*", "x", "mul":
		return x.Mul(y), nil
	case "/", "div":
		inv, ok := y.TryInverse()
		if !ok {
			return x, ErrDivisionByZero
		}
		//
		return x.Mul(inv), nil
	case "^", "pow":
		var n big.Int
		// Table operands enumerate 0..n-1 without wrapping, so y is the
		// exponent itself.
		if !n.SetBytes(y.Bytes()).IsUint64() {
			return x, fmt.Errorf("exponent %s too large", y.String())
		}
		//
		return field.Pow(x, n.Uint64()), nil
	}
	//
	return x, fmt.Errorf("unknown operator %q", op)
}
