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
package termio

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  The first row
// is treated as a header, and the first column as a label column.  Tables too
// wide for the terminal are split into blocks of columns, where every block
// repeats the label column.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows, escapes, true}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape string) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(vals[i])))
	}
	// Done
	p.rows[row] = vals
}

// Print the table to a given writer, such that no line exceeds maxWidth
// characters (unless a single column already does).
func (p *TablePrinter) Print(out io.Writer, maxWidth uint) {
	if len(p.widths) == 0 {
		return
	}
	//
	for start := uint(1); ; {
		end := p.blockEnd(start, maxWidth)
		//
		if start > 1 {
			fmt.Fprintln(out)
		}
		//
		p.printBlock(out, start, end)
		//
		if end >= p.Width() {
			return
		}
		//
		start = end
	}
}

// Determine the end of a block of columns starting at a given column, such that
// the block fits within the maximum width.  Every block contains at least one
// column (if there are any).
func (p *TablePrinter) blockEnd(start uint, maxWidth uint) uint {
	width := p.labelWidth()
	end := start
	//
	for ; end < p.Width(); end++ {
		width += p.widths[end] + 1
		//
		if width > maxWidth && end > start {
			break
		}
	}
	//
	return end
}

func (p *TablePrinter) printBlock(out io.Writer, start, end uint) {
	for i, row := range p.rows {
		// Print label
		fmt.Fprintf(out, " %*s |", p.widths[0], row[0])
		// Print data
		for j := start; j < end; j++ {
			escape := p.escapes[i][j]
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				fmt.Fprintf(out, " %s%*s%s", escape, p.widths[j], row[j], ResetAnsiEscape().Build())
			} else {
				fmt.Fprintf(out, " %*s", p.widths[j], row[j])
			}
		}
		//
		fmt.Fprintln(out)
		// Underline header
		if i == 0 {
			width := p.labelWidth()
			//
			for j := start; j < end; j++ {
				width += p.widths[j] + 1
			}
			//
			fmt.Fprintln(out, strings.Repeat("-", int(width)))
		}
	}
}

// Width of the label column, including padding and separator.
func (p *TablePrinter) labelWidth() uint {
	return p.widths[0] + 3
}
