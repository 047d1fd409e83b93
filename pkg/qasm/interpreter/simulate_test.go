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
package interpreter

import (
	"maps"
	"math"
	"testing"
)

const epsilon = 1e-9

const bell = "include \"qelib1.inc\"; qreg q[2]; creg c[2]; h q[0]; cx q[0],q[1]; measure q -> c;"

func Test_Simulate_Bell(t *testing.T) {
	execution := simulate(t, bell, SimulationOptions{Shots: 1000, Seed: 1, MaxQubits: 2})
	histogram := execution.Histogram["c"]
	//
	if histogram[0]+histogram[3] != 1000 {
		t.Errorf("expected only outcomes 00 and 11, got %v", histogram)
	} else if histogram[0] < 400 || histogram[3] < 400 {
		t.Errorf("unexpected distribution %v", histogram)
	}
	// Final state is collapsed consistently with memory
	probs := execution.Probabilities()
	if value := execution.Memory["c"]; math.Abs(probs[value]-1) > epsilon {
		t.Errorf("state inconsistent with memory %d", value)
	}
}

func Test_Simulate_Deterministic(t *testing.T) {
	var (
		options = SimulationOptions{Shots: 100, Seed: 42, MaxQubits: 24}
		first   = simulate(t, bell, options)
		second  = simulate(t, bell, options)
	)
	//
	if !maps.Equal(first.Histogram["c"], second.Histogram["c"]) {
		t.Errorf("histograms differ for same seed: %v vs %v", first.Histogram["c"], second.Histogram["c"])
	}
}

func Test_Simulate_NoShots(t *testing.T) {
	execution := simulate(t, "include \"qelib1.inc\"; qreg q[1]; h q[0];", DefaultSimulationOptions())
	//
	if execution.Histogram != nil {
		t.Errorf("unexpected histogram")
	}
	//
	checkProbabilities(t, execution, 0.5, 0.5)
}

func Test_Simulate_Conditional(t *testing.T) {
	execution := simulate(t, "include \"qelib1.inc\"; qreg q[2]; creg c[1]; x q[0]; measure q[0] -> c[0]; "+
		"if(c==1) x q[1]; if(c==0) x q[0];", DefaultSimulationOptions())
	//
	checkProbabilities(t, execution, 0, 0, 0, 1)
	//
	if execution.Memory["c"] != 1 {
		t.Errorf("expected c to be 1, got %d", execution.Memory["c"])
	}
}

func Test_Simulate_Reset(t *testing.T) {
	execution := simulate(t, "include \"qelib1.inc\"; qreg q[2]; x q; reset q[1];", DefaultSimulationOptions())
	//
	checkProbabilities(t, execution, 0, 1, 0, 0)
}

func Test_Simulate_MemoryBits(t *testing.T) {
	execution := simulate(t, "include \"qelib1.inc\"; qreg q[3]; creg c[3]; x q[0]; x q[2]; measure q -> c;",
		DefaultSimulationOptions())
	//
	if execution.Memory["c"] != 5 {
		t.Errorf("expected c to be 5, got %d", execution.Memory["c"])
	}
}

func Test_Simulate_TooManyQubits(t *testing.T) {
	circuit := expand(t, "qreg q[3];")
	//
	if _, err := Simulate(circuit, SimulationOptions{MaxQubits: 2}); err == nil {
		t.Errorf("expected error exceeding qubit limit")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func simulate(t *testing.T, input string, options SimulationOptions) *Execution {
	t.Helper()
	//
	execution, err := Simulate(expand(t, input), options)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return execution
}

func checkProbabilities(t *testing.T, execution *Execution, expected ...float64) {
	t.Helper()
	//
	for i, p := range execution.Probabilities() {
		if math.Abs(p-expected[i]) > epsilon {
			t.Errorf("state %d: expected probability %f, got %f", i, expected[i], p)
		}
	}
}
