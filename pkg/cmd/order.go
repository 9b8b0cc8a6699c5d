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

	"github.com/consensys/go-smallfield/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order [flags] value",
	Short: "Compute the multiplicative order of a field element.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, cfg, err := getCalculator(cmd)
		if err != nil {
			return err
		}
		//
		limit := GetUint64(cmd, "limit")
		stats := util.NewPerfStats()
		//
		n, ok, err := calc.Order(args[0], limit)
		if err != nil {
			return err
		}
		//
		stats.Log(fmt.Sprintf("Computing order of %s in %s", args[0], cfg.Name))
		//
		if !ok {
			return fmt.Errorf("order of %s is undefined or exceeds %d", args[0], limit)
		}
		//
		fmt.Fprintln(cmd.OutOrStdout(), n)
		//
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarise the selected field.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, cfg, err := getCalculator(cmd)
		if err != nil {
			return err
		}
		//
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "field:     %s\n", cfg.Name)
		fmt.Fprintf(out, "modulus:   %s\n", calc.Modulus().String())
		fmt.Fprintf(out, "bandwidth: %d\n", cfg.BandWidth)
		// Only search for a generator in fields small enough to enumerate.
		if cfg.Enumerable == 0 {
			log.Debugf("skipping generator search for %s", cfg.Name)
		} else if g, ok := calc.Generator(uint64(cfg.Enumerable)); ok {
			fmt.Fprintf(out, "generator: %s\n", g)
		}
		//
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(infoCmd)
	orderCmd.Flags().Uint64("limit", 1<<20, "maximum number of powers to consider")
}
