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
	"fmt"
	"math/bits"

	"github.com/consensys/go-smallfield/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] lhs op rhs",
	Short: "Evaluate a binary operation over the field.",
	Long: `Evaluate a binary operation over the field, where op is one of +, -, *, / or ^.
	Operands are integers (possibly negative, or prefixed with 0x) which are
	reduced into the field.  Use "--" before negative operands.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, cfg, err := getCalculator(cmd)
		if err != nil {
			return err
		}
		//
		stats := util.NewPerfStats()
		result, err := calc.Eval(args[0], args[1], args[2])
		//
		if err != nil {
			return err
		}
		//
		stats.Log(fmt.Sprintf("Evaluating %s %s %s in %s", args[0], args[1], args[2], cfg.Name))
		fmt.Fprintln(cmd.OutOrStdout(), result)
		//
		return nil
	},
}

var inverseCmd = &cobra.Command{
	Use:   "inv [flags] value",
	Short: "Compute the multiplicative inverse of a field element.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, _, err := getCalculator(cmd)
		if err != nil {
			return err
		}
		//
		result, err := calc.Inverse(args[0])
		if err != nil {
			return err
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), result)
		//
		return nil
	},
}

var powCmd = &cobra.Command{
	Use:   "pow [flags] value exponent",
	Short: "Raise a field element to a (64-bit) power.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, _, err := getCalculator(cmd)
		if err != nil {
			return err
		}
		//
		n, err := parseExponent(args[1])
		if err != nil {
			return err
		}
		//
		log.Debugf("computing %s^%d using %d squarings", args[0], n, bits.Len64(n))
		//
		result, err := calc.Pow(args[0], n)
		if err != nil {
			return err
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), result)
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(inverseCmd)
	rootCmd.AddCommand(powCmd)
}
