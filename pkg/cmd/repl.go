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
	"cmp"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/consensys/go-qasmsim/pkg/config"
	"github.com/consensys/go-qasmsim/pkg/qasm/compiler"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
	"github.com/consensys/go-qasmsim/pkg/qasm/stdlib"
	"github.com/consensys/go-qasmsim/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "start an interactive QASM session.",
	Long: `Start an interactive session in which statements are entered one at a time.
Each statement is added to the session program, which is then recompiled and
simulated.  Statements which fail are rejected.  The standard gate library is
included automatically.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		options := interpreter.SimulationOptions{
			Seed:      GetUint64(cmd, "seed"),
			MaxQubits: GetUint(cmd, "max-qubits"),
		}
		// Sanity check
		if options.MaxQubits == 0 || options.MaxQubits > statevector.MAX_QUBITS {
			fmt.Printf("maximum number of qubits must be between 1 and %d\n", statevector.MAX_QUBITS)
			os.Exit(2)
		}
		//
		p := tea.NewProgram(newREPLModel(options), tea.WithAltScreen())
		//
		if _, err := p.Run(); err != nil {
			log.Error(err)
			return
		}
	},
}

// Name given to the session program in error messages.
const replFilename = "<repl>"

// Number of basis states summarised after each statement.
const replSummaryStates = 8

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput textinput.Model
	options   interpreter.SimulationOptions
	// Statements accepted so far
	statements []string
	// Outcome of simulating the accepted statements
	circuit     *interpreter.Circuit
	execution   *interpreter.Execution
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showState   bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlS key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous statement"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next statement"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlS: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "toggle state"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel(options interpreter.SimulationOptions) replModel {
	ti := textinput.New()
	ti.Placeholder = "type a statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "qasm> "

	return replModel{
		textInput:  ti,
		options:    options,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlS):
			m.showState = !m.showState
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}

				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}

			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}

				m.textInput.CursorEnd()
			}

			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1

				return m, cmd
			}

			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1

			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)

	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":state", ":s":
		m.showState = !m.showState
	case ":reset", ":r":
		m.statements = nil
		m.circuit = nil
		m.execution = nil
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Session reset",
			isErr:  false,
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}

	return m, nil
}

// Evaluate a statement by appending it to the session program, and simulating
// the result.  If this fails, the statement is rejected and the session is
// unchanged.
func (m *replModel) evaluate(input string) (string, bool) {
	statements := append(slices.Clone(m.statements), input)
	//
	circuit, execution, err := simulateSession(statements, m.options)
	if err != nil {
		return err.Error(), true
	}
	//
	m.statements = statements
	m.circuit = circuit
	m.execution = execution
	//
	return summarise(circuit, execution), false
}

// Compile, expand and simulate the program formed from a given sequence of
// statements.
func simulateSession(statements []string, options interpreter.SimulationOptions) (*interpreter.Circuit,
	*interpreter.Execution, error) {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "OPENQASM %s;\ninclude \"%s\";\n", compiler.VERSION, stdlib.QELIB1)
	//
	for _, stmt := range statements {
		builder.WriteString(stmt)
		builder.WriteString("\n")
	}
	//
	srcfile := source.NewSourceFile(replFilename, []byte(builder.String()))
	//
	program, _, errs := compiler.Compile(*srcfile)
	if len(errs) > 0 {
		return nil, nil, errors.New(errs[0].Message())
	}
	//
	circuit, err := interpreter.Expand(program)
	if err != nil {
		return nil, nil, err
	}
	//
	execution, err := interpreter.Simulate(circuit, options)
	if err != nil {
		return nil, nil, err
	}
	//
	return circuit, execution, nil
}

// Summarise the most likely basis states of an execution, along with the value
// of each classical register.
func summarise(circuit *interpreter.Circuit, execution *interpreter.Execution) string {
	var (
		qubits = circuit.Layout.Qubits()
		probs  = execution.Probabilities()
		states []int
		parts  []string
	)
	//
	if qubits == 0 {
		return "ok"
	}
	//
	for i, p := range probs {
		if p > epsilon {
			states = append(states, i)
		}
	}
	// Most likely first (as displayed), breaking ties by index.
	slices.SortStableFunc(states, func(i, j int) int {
		return cmp.Compare(math.Round(probs[j]*1000), math.Round(probs[i]*1000))
	})
	//
	for k, i := range states {
		if k == replSummaryStates {
			parts = append(parts, "...")
			break
		}
		//
		parts = append(parts, fmt.Sprintf("%s: %s", bitstring(uint64(i), qubits),
			strconv.FormatFloat(probs[i], 'f', 3, 64)))
	}
	//
	for _, reg := range circuit.Layout.ClassicalRegisters() {
		parts = append(parts, fmt.Sprintf("%s=%s", reg.Name, bitstring(execution.Memory[reg.Name], reg.Size)))
	}
	//
	return strings.Join(parts, "  ")
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("OpenQASM REPL")
	version := mutedStyle.Render("OPENQASM " + compiler.VERSION)
	b.WriteString(header + " " + version + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(0, min(m.width-2, 60)))) + "\n\n")

	reservedLines := 8 // header, input, help hint, etc.
	if m.showHelp {
		reservedLines += 10
	}

	if m.showState {
		reservedLines += replSummaryStates + 4
	}

	availableHeight := max(0, m.height-reservedLines)

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}

		if entry.isErr {
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render("→ "+entry.output) + "\n")
		}

		b.WriteString("\n")
	}

	if m.showState {
		b.WriteString(renderStatePanel(m.circuit, m.execution))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+s") + helpDescStyle.Render(" state  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderStatePanel(circuit *interpreter.Circuit, execution *interpreter.Execution) string {
	if execution == nil || circuit.Layout.Qubits() == 0 {
		return borderStyle.Render(mutedStyle.Render("No qubits declared"))
	}

	var (
		lines  []string
		qubits = circuit.Layout.Qubits()
		count  = 0
	)

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("State"))
	stateStyle := lipgloss.NewStyle().Foreground(highlightColor)

	for i, a := range execution.StateVector.Amplitudes() {
		if statevector.Norm(a) <= epsilon {
			continue
		} else if count == replSummaryStates {
			lines = append(lines, mutedStyle.Render("  ..."))
			break
		}

		line := fmt.Sprintf("  |%s⟩ %s", stateStyle.Render(bitstring(uint64(i), qubits)), formatComplex(a))
		lines = append(lines, line)
		count++
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate statement history"},
		{"Enter", "Execute statement"},
		{":help", "Toggle this help"},
		{":state", "Toggle state panel"},
		{":clear", "Clear history"},
		{":reset", "Discard all statements"},
		{":quit", "Exit REPL"},
	}

	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))

	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Uint64("seed", 0, "seed for sampling measurement outcomes")
	replCmd.Flags().Uint("max-qubits", config.DEFAULT_MAX_QUBITS, "maximum number of qubits to simulate")
}
