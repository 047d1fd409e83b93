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

	"github.com/charmbracelet/lipgloss"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths       []uint
	rows         [][]string
	styles       [][]*lipgloss.Style
	enableStyles bool
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	styles := make([][]*lipgloss.Style, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		styles[i] = make([]*lipgloss.Style, width)
	}

	return &TablePrinter{widths, rows, styles, true}
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

// Height returns the height of this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetStyle sets the style to use when printing the contents of a given cell.
func (p *TablePrinter) SetStyle(col uint, row uint, style lipgloss.Style) {
	p.styles[row][col] = &style
}

// SetRowStyle sets the style to use for every cell in a given row.
func (p *TablePrinter) SetRowStyle(row uint, style lipgloss.Style) {
	for col := range p.widths {
		p.SetStyle(uint(col), row, style)
	}
}

// EnableStyles enables or disables the use of styles (e.g. for showing
// colour).  Disabling styles is useful when output is not going to a terminal
// as, otherwise, you get a lot of visible escape characters being printed.
func (p *TablePrinter) EnableStyles(enable bool) {
	p.enableStyles = enable
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

// SetMaxWidths puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := uint(0); i < uint(len(p.widths)); i++ {
		p.SetMaxWidth(i, width)
	}
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	for i, row := range p.rows {
		var builder strings.Builder
		//
		for j, col := range row {
			var (
				jth       = col
				jthWidth  = int(p.widths[j])
				jthStyle  = p.styles[i][j]
				formatted string
			)
			// Format data
			if len(col) > jthWidth {
				jth = col[0 : jthWidth-2]
				formatted = fmt.Sprintf(" %*s..", jthWidth-2, jth)
			} else {
				formatted = fmt.Sprintf(" %*s", jthWidth, jth)
			}
			// Apply style (if applicable)
			if p.enableStyles && jthStyle != nil {
				formatted = jthStyle.Render(formatted)
			}
			//
			builder.WriteString(formatted)
			builder.WriteString(" |")
		}
		//
		fmt.Fprintln(out, builder.String())
	}
}
