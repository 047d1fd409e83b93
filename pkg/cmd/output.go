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
	"maps"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/consensys/go-qasmsim/pkg/config"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
	"github.com/consensys/go-qasmsim/pkg/util/termio"
)

// Amplitudes and probabilities below this are not reported.
const epsilon = 1e-12

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	headingStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	columnStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(successColor)
)

// Write the outcome of a simulation in the configured format.
func writeExecution(out io.Writer, circuit *interpreter.Circuit, execution *interpreter.Execution,
	cfg config.Config, styled bool) error {
	//
	if cfg.Format == config.JSON_FORMAT {
		return writeJSON(out, circuit, execution, cfg)
	}
	//
	writeText(out, circuit, execution, cfg, styled)
	//
	return nil
}

func writeText(out io.Writer, circuit *interpreter.Circuit, execution *interpreter.Execution, cfg config.Config,
	styled bool) {
	var (
		layout    = circuit.Layout
		registers = layout.ClassicalRegisters()
		qubits    = layout.Qubits()
	)
	//
	if len(registers) > 0 {
		table := newTable(uint(len(registers)), styled, "register", "value")
		//
		for i, reg := range registers {
			table.SetRow(uint(i+1), reg.Name, bitstring(execution.Memory[reg.Name], reg.Size))
		}
		//
		writeTable(out, "Memory", table, styled)
	}
	//
	if cfg.Probabilities {
		var rows [][]string
		//
		for i, p := range execution.Probabilities() {
			if p > epsilon {
				rows = append(rows, []string{bitstring(uint64(i), qubits), strconv.FormatFloat(p, 'f', 6, 64)})
			}
		}
		//
		writeTable(out, "Probabilities", tableOf(rows, styled, "state", "probability"), styled)
	}
	//
	if cfg.StateVector {
		var rows [][]string
		//
		for i, a := range execution.StateVector.Amplitudes() {
			if statevector.Norm(a) > epsilon {
				rows = append(rows, []string{bitstring(uint64(i), qubits), formatComplex(a)})
			}
		}
		//
		writeTable(out, "State vector", tableOf(rows, styled, "state", "amplitude"), styled)
	}
	//
	for _, reg := range registers {
		histogram, ok := execution.Histogram[reg.Name]
		//
		if !ok {
			continue
		}
		//
		var rows [][]string
		//
		for _, value := range slices.Sorted(maps.Keys(histogram)) {
			rows = append(rows, []string{bitstring(value, reg.Size), strconv.FormatUint(uint64(histogram[value]), 10)})
		}
		//
		title := fmt.Sprintf("Histogram %s (%d shots)", reg.Name, execution.Shots)
		writeTable(out, title, tableOf(rows, styled, "value", "count"), styled)
	}
}

// Construct a table with a header row and a given number of rows.
func newTable(rows uint, styled bool, header ...string) *termio.TablePrinter {
	table := termio.NewTablePrinter(uint(len(header)), rows+1)
	table.EnableStyles(styled)
	table.SetRow(0, header...)
	table.SetRowStyle(0, columnStyle)
	//
	for i := uint(1); i <= rows; i++ {
		table.SetStyle(uint(len(header)-1), i, valueStyle)
	}
	//
	return table
}

func tableOf(rows [][]string, styled bool, header ...string) *termio.TablePrinter {
	table := newTable(uint(len(rows)), styled, header...)
	//
	for i, row := range rows {
		table.SetRow(uint(i+1), row...)
	}
	//
	return table
}

func writeTable(out io.Writer, title string, table *termio.TablePrinter, styled bool) {
	if styled {
		title = headingStyle.Render(title)
	}
	//
	fmt.Fprintln(out, title)
	table.Print(out)
	fmt.Fprintln(out)
}

// JSON representation of an execution.  Basis states and classical values are
// given as bitstrings, with qubit (or bit) 0 rightmost.
type executionReport struct {
	Qubits        uint                       `json:"qubits"`
	Memory        map[string]string          `json:"memory"`
	Probabilities map[string]float64         `json:"probabilities,omitempty"`
	StateVector   map[string][2]float64      `json:"statevector,omitempty"`
	Shots         uint                       `json:"shots,omitempty"`
	Histogram     map[string]map[string]uint `json:"histogram,omitempty"`
}

func writeJSON(out io.Writer, circuit *interpreter.Circuit, execution *interpreter.Execution,
	cfg config.Config) error {
	var (
		layout = circuit.Layout
		qubits = layout.Qubits()
		report = executionReport{Qubits: qubits, Memory: make(map[string]string), Shots: execution.Shots}
	)
	//
	for _, reg := range layout.ClassicalRegisters() {
		report.Memory[reg.Name] = bitstring(execution.Memory[reg.Name], reg.Size)
		//
		if histogram, ok := execution.Histogram[reg.Name]; ok {
			if report.Histogram == nil {
				report.Histogram = make(map[string]map[string]uint)
			}
			//
			counts := make(map[string]uint)
			//
			for value, count := range histogram {
				counts[bitstring(value, reg.Size)] = count
			}
			//
			report.Histogram[reg.Name] = counts
		}
	}
	//
	if cfg.Probabilities {
		report.Probabilities = make(map[string]float64)
		//
		for i, p := range execution.Probabilities() {
			if p > epsilon {
				report.Probabilities[bitstring(uint64(i), qubits)] = p
			}
		}
	}
	//
	if cfg.StateVector {
		report.StateVector = make(map[string][2]float64)
		//
		for i, a := range execution.StateVector.Amplitudes() {
			if statevector.Norm(a) > epsilon {
				report.StateVector[bitstring(uint64(i), qubits)] = [2]float64{real(a), imag(a)}
			}
		}
	}
	//
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	//
	return encoder.Encode(report)
}

// Render a value as a bitstring of a given width, with bit 0 rightmost.
func bitstring(value uint64, width uint) string {
	return fmt.Sprintf("%0*b", int(width), value)
}

func formatComplex(a complex128) string {
	return fmt.Sprintf("%+.6f%+.6fi", real(a), imag(a))
}
