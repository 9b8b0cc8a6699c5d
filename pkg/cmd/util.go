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
	"os"
	"strconv"

	"github.com/consensys/go-smallfield/pkg/util/field"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, exiting with status 2 if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, exiting with status 2 if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected uint64, exiting with status 2 if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, exiting with status 2 if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct a calculator for the field selected on the command line, using
// the selected output base.
func getCalculator(cmd *cobra.Command) (calculator, *field.Config, error) {
	var (
		name = GetString(cmd, "field")
		base = GetUint(cmd, "base")
		cfg  = field.GetConfig(name)
	)
	//
	if cfg == nil {
		return nil, nil, fmt.Errorf("unknown field %q", name)
	} else if base < 2 || base > 62 {
		return nil, nil, fmt.Errorf("invalid base %d", base)
	}
	//
	calc, err := newCalculator(cfg, int(base))
	//
	return calc, cfg, err
}

// Parse an exponent given on the command line.
func parseExponent(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid exponent %q", arg)
	}
	//
	return n, nil
}
