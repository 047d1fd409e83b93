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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
)

func Test_REPL_QuitCommand(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := checkModel(t, model)

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	} else if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	} else if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}

	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func Test_REPL_HelpCommand(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := checkModel(t, model)

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	} else if rm.quitting {
		t.Fatalf("quitting should remain false")
	} else if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	} else if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func Test_REPL_UnknownCommand(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue(":frobnicate")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := checkModel(t, model)

	if len(rm.history) != 1 || !rm.history[0].isErr {
		t.Fatalf("expected error entry in history, got %v", rm.history)
	}
}

func Test_REPL_Evaluate_01(t *testing.T) {
	m := newTestModel()

	checkEvaluate(t, &m, "qreg q[1];", "0: 1.000")
	checkEvaluate(t, &m, "x q[0];", "1: 1.000")
	checkEvaluate(t, &m, "creg c[1];", "1: 1.000  c=0")
	checkEvaluate(t, &m, "measure q -> c;", "1: 1.000  c=1")

	if len(m.statements) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(m.statements))
	}
}

func Test_REPL_Evaluate_02(t *testing.T) {
	m := newTestModel()

	checkEvaluate(t, &m, "qreg q[2];", "00: 1.000")
	checkEvaluate(t, &m, "h q[0];", "00: 0.500  01: 0.500")
	checkEvaluate(t, &m, "cx q[0],q[1];", "00: 0.500  11: 0.500")
}

func Test_REPL_Evaluate_03(t *testing.T) {
	m := newTestModel()
	// Nothing declared yet
	checkEvaluate(t, &m, "gate g a { x a; }", "ok")
}

func Test_REPL_Reject_01(t *testing.T) {
	m := newTestModel()

	checkEvaluate(t, &m, "qreg q[1];", "0: 1.000")
	checkReject(t, &m, "x r[0];", "quantum register not found: r")
	checkReject(t, &m, "x q[1];", "index out of bounds: q[1]")
	checkReject(t, &m, "qreg q[2];", "duplicate register q")
	checkReject(t, &m, "x q[0]", "")
	// Rejected statements leave the session unchanged
	if len(m.statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(m.statements))
	}
}

func Test_REPL_Reject_02(t *testing.T) {
	m := newTestModel()

	checkEvaluate(t, &m, "qreg q[2];", "00: 1.000")
	checkReject(t, &m, "cx q[0],q[0];", "repeated quantum argument")
	checkReject(t, &m, "u1(0,1) q[0];", "wrong number of real parameters")
}

func Test_REPL_Reset(t *testing.T) {
	m := newTestModel()

	checkEvaluate(t, &m, "qreg q[1];", "0: 1.000")

	model, _ := m.handleCommand(":reset")

	if len(model.statements) != 0 || model.execution != nil {
		t.Fatalf("session not reset")
	}
	// Register can now be redeclared
	checkEvaluate(t, &model, "qreg q[3];", "000: 1.000")
}

func Test_REPL_History(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue("qreg q[1];")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := checkModel(t, model)
	//
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyUp})
	rm = checkModel(t, model)
	//
	if rm.textInput.Value() != "qreg q[1];" {
		t.Fatalf("expected previous statement, got %q", rm.textInput.Value())
	}
	//
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyDown})
	rm = checkModel(t, model)
	//
	if rm.textInput.Value() != "" {
		t.Fatalf("expected empty input, got %q", rm.textInput.Value())
	}
}

func Test_REPL_View(t *testing.T) {
	m := newTestModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	rm := checkModel(t, model)
	//
	checkEvaluate(t, &rm, "qreg q[1];", "0: 1.000")
	rm.showState = true
	rm.showHelp = true
	//
	view := rm.View()
	//
	for _, s := range []string{"OpenQASM REPL", "qreg q[1];", "State", "Help"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func newTestModel() replModel {
	return newREPLModel(interpreter.DefaultSimulationOptions())
}

func checkModel(t *testing.T, model tea.Model) replModel {
	t.Helper()
	//
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	//
	return rm
}

func checkEvaluate(t *testing.T, m *replModel, input string, expected string) {
	t.Helper()
	//
	output, isErr := m.evaluate(input)
	if isErr {
		t.Fatalf("unexpected error evaluating %q: %s", input, output)
	} else if output != expected {
		t.Fatalf("evaluating %q: expected %q, got %q", input, expected, output)
	}
}

func checkReject(t *testing.T, m *replModel, input string, expected string) {
	t.Helper()
	//
	output, isErr := m.evaluate(input)
	if !isErr {
		t.Fatalf("expected error evaluating %q, got %q", input, output)
	} else if !strings.Contains(output, expected) {
		t.Fatalf("evaluating %q: expected error containing %q, got %q", input, expected, output)
	}
}
