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
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/config"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
)

var flipped = []string{"qreg q[2];", "creg c[2];", "x q[1];", "measure q -> c;"}

func Test_Output_Text_01(t *testing.T) {
	out := checkWriteExecution(t, flipped, config.TEXT_FORMAT, 0)
	//
	for _, s := range []string{"Memory", " register | value |", "        c |    10 |"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	//
	if strings.Contains(out, "Histogram") {
		t.Errorf("unexpected histogram:\n%s", out)
	}
}

func Test_Output_Text_02(t *testing.T) {
	out := checkWriteExecution(t, flipped, config.TEXT_FORMAT, 5)
	//
	for _, s := range []string{"Probabilities", "State vector", "Histogram c (5 shots)", " value | count |",
		"    10 |     5 |", "1.000000"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func Test_Output_Json_01(t *testing.T) {
	var report executionReport
	//
	out := checkWriteExecution(t, flipped, config.JSON_FORMAT, 5)
	//
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatal(err)
	}
	//
	if report.Qubits != 2 {
		t.Errorf("expected 2 qubits, got %d", report.Qubits)
	} else if report.Memory["c"] != "10" {
		t.Errorf("expected c=10, got %v", report.Memory)
	} else if math.Abs(report.Probabilities["10"]-1) > 1e-9 || len(report.Probabilities) != 1 {
		t.Errorf("unexpected probabilities %v", report.Probabilities)
	} else if math.Abs(report.StateVector["10"][0]-1) > 1e-9 || len(report.StateVector) != 1 {
		t.Errorf("unexpected state vector %v", report.StateVector)
	} else if report.Shots != 5 || report.Histogram["c"]["10"] != 5 {
		t.Errorf("unexpected histogram %v", report.Histogram)
	}
}

func Test_Output_Json_02(t *testing.T) {
	out := checkWriteExecution(t, []string{"qreg q[1];"}, config.JSON_FORMAT, 0)
	//
	if strings.Contains(out, "histogram") || strings.Contains(out, "shots") {
		t.Errorf("unexpected fields in output:\n%s", out)
	}
}

func Test_Output_Bitstring(t *testing.T) {
	checkBitstring(t, 0, 1, "0")
	checkBitstring(t, 1, 1, "1")
	checkBitstring(t, 2, 3, "010")
	checkBitstring(t, 5, 4, "0101")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkWriteExecution(t *testing.T, statements []string, format string, shots uint) string {
	t.Helper()
	//
	var (
		buf bytes.Buffer
		cfg = config.Default()
	)
	//
	cfg.Format = format
	cfg.Shots = shots
	cfg.StateVector = true
	cfg.Probabilities = true
	//
	options := interpreter.SimulationOptions{Shots: shots, Seed: cfg.Seed, MaxQubits: cfg.MaxQubits}
	//
	circuit, execution, err := simulateSession(statements, options)
	if err != nil {
		t.Fatal(err)
	}
	//
	if err := writeExecution(&buf, circuit, execution, cfg, false); err != nil {
		t.Fatal(err)
	}
	//
	return buf.String()
}

func checkBitstring(t *testing.T, value uint64, width uint, expected string) {
	t.Helper()
	//
	if actual := bitstring(value, width); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}
