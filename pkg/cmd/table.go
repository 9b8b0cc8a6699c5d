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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-smallfield/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Width assumed when output is not a terminal.
const defaultWidth = 80

var tableCmd = &cobra.Command{
	Use:   "table [flags]",
	Short: "Print the operation table of a (small) field.",
	Long: `Print the addition, multiplication, subtraction or division table of a field small
	enough to be enumerated.  Wide tables are split into blocks of columns which fit the
	terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, cfg, err := getCalculator(cmd)
		if err != nil {
			return err
		} else if cfg.Enumerable == 0 {
			return fmt.Errorf("field %s is too large to tabulate", cfg.Name)
		}
		//
		var (
			op   = GetString(cmd, "op")
			size = GetUint(cmd, "size")
			base = int(GetUint(cmd, "base"))
		)
		//
		if size == 0 || size > cfg.Enumerable {
			size = cfg.Enumerable
		}
		//
		if GetFlag(cmd, "json") {
			// JSON numbers are always decimal
			_, rows, err := calc.Table(op, size, 10)
			if err != nil {
				return err
			}
			//
			return writeJsonTable(cmd.OutOrStdout(), rows)
		}
		//
		labels, rows, err := calc.Table(op, size, base)
		if err != nil {
			return err
		}
		//
		width := GetUint(cmd, "width")
		tty := isTerminal(cmd.OutOrStdout())
		//
		if width == 0 {
			width = terminalWidth(cmd.OutOrStdout())
		}
		//
		log.Debugf("printing %dx%d table in %d columns", size, size, width)
		//
		printer := newTablePrinter(op, labels, rows)
		printer.AnsiEscapes(tty && GetFlag(cmd, "ansi-escapes"))
		printer.Print(cmd.OutOrStdout(), width)
		//
		return nil
	},
}

// Construct a table printer for the given operation table, where identity
// elements are highlighted.
func newTablePrinter(op string, labels []string, rows [][]string) *termio.TablePrinter {
	var (
		n        = uint(len(rows))
		printer  = termio.NewTablePrinter(n+1, n+1)
		identity = "0"
		escape   = termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN).Build()
	)
	//
	if op == "*" || op == "x" || op == "mul" || op == "/" || op == "div" {
		identity = "1"
	}
	//
	printer.Set(0, 0, op)
	//
	for i := range n {
		printer.Set(i+1, 0, labels[i])
		printer.Set(0, i+1, labels[i])
		//
		for j := range n {
			printer.Set(j+1, i+1, rows[i][j])
			//
			if rows[i][j] == identity {
				printer.SetEscape(j+1, i+1, escape)
			}
		}
	}
	//
	return printer
}

// Check whether the given writer is attached to a terminal.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	//
	return ok && term.IsTerminal(int(f.Fd()))
}

// Determine the width of the terminal attached to the given writer (if any).
func terminalWidth(out io.Writer) uint {
	if isTerminal(out) {
		f := out.(*os.File)
		//
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return defaultWidth
}

func writeJsonTable(out io.Writer, rows [][]string) error {
	table := make([][]any, len(rows))
	//
	for i, row := range rows {
		table[i] = make([]any, len(row))
		//
		for j, cell := range row {
			// Undefined entries (e.g. division by zero) become null
			if cell != "-" {
				table[i][j] = json.Number(cell)
			}
		}
	}
	//
	return json.NewEncoder(out).Encode(table)
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().String("op", "*", "operation to tabulate (+, -, * or /)")
	tableCmd.Flags().Uint("size", 0, "number of elements to tabulate (0 for all)")
	tableCmd.Flags().Uint("width", 0, "output width (0 to use terminal width)")
	tableCmd.Flags().Bool("json", false, "emit table as JSON")
	tableCmd.Flags().Bool("ansi-escapes", true, "highlight identity elements (when printing to a terminal)")
}
