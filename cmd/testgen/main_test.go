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
package main

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/qasm/compiler"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	"github.com/consensys/go-qasmsim/pkg/util/source"
)

func Test_Oracle_01(t *testing.T) {
	p := Program{models[0], 3, []Gate{{"x", []uint{0}}, {"cx", []uint{0, 2}}}}
	checkOutcome(t, p, 0b101)
}

func Test_Oracle_02(t *testing.T) {
	p := Program{models[0], 3, []Gate{{"x", []uint{1}}, {"swap", []uint{1, 2}}, {"ccx", []uint{0, 2, 1}}}}
	checkOutcome(t, p, 0b100)
}

func Test_Oracle_03(t *testing.T) {
	p := Program{models[0], 3, []Gate{{"x", []uint{0}}, {"x", []uint{1}}, {"ccx", []uint{0, 1, 2}}}}
	checkOutcome(t, p, 0b111)
}

func Test_Generated_Reversible(t *testing.T) {
	checkGenerated(t, "reversible", 3, 20)
	checkGenerated(t, "reversible", 5, 20)
}

func Test_Generated_Measured(t *testing.T) {
	checkGenerated(t, "measured", 4, 20)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkOutcome(t *testing.T, p Program, expected uint64) {
	t.Helper()
	//
	if actual := p.Outcome(); actual != expected {
		t.Errorf("expected outcome %b, got %b", expected, actual)
	}
}

// Check the oracle agrees with the simulator on a number of generated
// programs.
func checkGenerated(t *testing.T, model string, qubits uint, count int) {
	t.Helper()
	//
	var (
		cfg = TestGenConfig{findModel(model), qubits, 1, 12, uint(count)}
		rng = rand.New(rand.NewPCG(1, 2))
	)
	//
	for range count {
		program := generateProgram(cfg, rng)
		text := program.String()
		srcfile := source.NewSourceFile("generated.qasm", []byte(text))
		//
		ast, _, errs := compiler.Compile(*srcfile)
		if len(errs) > 0 {
			t.Fatalf("failed to compile:\n%s\n%s", text, errs[0].Message())
		}
		//
		circuit, err := interpreter.Expand(ast)
		if err != nil {
			t.Fatalf("failed to expand:\n%s\n%s", text, err)
		}
		//
		execution, err := interpreter.Simulate(circuit, interpreter.DefaultSimulationOptions())
		if err != nil {
			t.Fatalf("failed to simulate:\n%s\n%s", text, err)
		}
		//
		outcome := program.Outcome()
		//
		if p := execution.Probabilities()[outcome]; math.Abs(p-1) > 1e-6 {
			t.Errorf("expected outcome %b with certainty, got probability %v:\n%s", outcome, p, text)
		} else if program.Model.Measure && execution.Memory["c"] != outcome {
			t.Errorf("expected c=%b, got %b:\n%s", outcome, execution.Memory["c"], text)
		}
	}
}
