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
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func Test_TablePrinter_Basic(t *testing.T) {
	table := NewTablePrinter(2, 2)
	table.SetRow(0, "state", "p")
	table.SetRow(1, "01", "0.5")
	//
	checkTable(t, table, " state |   p |\n    01 | 0.5 |\n")
}

func Test_TablePrinter_MaxWidth(t *testing.T) {
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "abcdefgh")
	table.SetMaxWidth(0, 5)
	//
	checkTable(t, table, " abc.. |\n")
}

func Test_TablePrinter_StylesDisabled(t *testing.T) {
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "x")
	table.SetRowStyle(0, lipgloss.NewStyle().Bold(true))
	table.EnableStyles(false)
	//
	checkTable(t, table, " x |\n")
	//
	if table.Get(0, 0) != "x" || table.Height() != 1 {
		t.Errorf("unexpected table contents")
	}
}

func checkTable(t *testing.T, table *TablePrinter, expected string) {
	t.Helper()
	//
	var buf bytes.Buffer
	//
	table.Print(&buf)
	//
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
