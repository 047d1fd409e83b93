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
package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/qasm/compiler"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	"github.com/consensys/go-qasmsim/pkg/util/source"
)

// TOLERANCE determines how closely an observed probability must match its
// expected value.
const TOLERANCE = 1e-6

// Expectation is an outcome which a valid test program is expected to produce.
// This is one of:
//
//	//prob 01 0.5    basis state 01 has probability 0.5
//	//memory c 10    classical register c holds 10 after the first run
//	//qubits 2       the program declares two qubits in total
//
// Bitstrings are written with qubit (or bit) 0 rightmost.  When any "prob" is
// given, all basis states not listed are expected to have probability zero.
type Expectation struct {
	Line int
	Kind string
	Args []string
}

var expectationArity = map[string]int{"prob": 2, "memory": 2, "qubits": 1}

// CheckValid checks that a given test program compiles, expands and simulates,
// and that the outcome matches each of its expectations.
func CheckValid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/valid/%s.qasm", TestDir, test)
	// Enable testing each program in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	expectations, errs := ExtractAttributes(srcfile, extractExpectation)
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(expectations) == 0 {
		t.Fatalf("missing expectations for %s", filename)
	}
	//
	program, _, serrs := compiler.Compile(*srcfile)
	if len(serrs) > 0 {
		t.Fatalf("Error %s failed to compile: %s", filename, errorToString(serrs[0]))
	}
	//
	circuit, err := interpreter.Expand(program)
	if err != nil {
		t.Fatalf("Error %s failed to expand: %s", filename, err)
	}
	//
	execution, err := interpreter.Simulate(circuit, interpreter.DefaultSimulationOptions())
	if err != nil {
		t.Fatalf("Error %s failed to simulate: %s", filename, err)
	}
	//
	checkExpectations(t, filename, circuit, execution, expectations)
}

func extractExpectation(lineno int, lines []source.Line, _ *source.File) (bool, Expectation, error) {
	var contents = lines[lineno].String()
	//
	if !strings.HasPrefix(contents, "//") {
		return false, Expectation{}, nil
	}
	//
	fields := strings.Fields(strings.TrimPrefix(contents, "//"))
	//
	if len(fields) == 0 {
		return false, Expectation{}, nil
	} else if arity, ok := expectationArity[fields[0]]; !ok {
		return false, Expectation{}, nil
	} else if len(fields) != arity+1 {
		return true, Expectation{}, fmt.Errorf("line %d: malformed expectation \"%s\"", lineno+1, contents)
	}
	//
	return true, Expectation{lineno + 1, fields[0], fields[1:]}, nil
}

func checkExpectations(t *testing.T, filename string, circuit *interpreter.Circuit,
	execution *interpreter.Execution, expectations []Expectation) {
	var (
		probs  = execution.Probabilities()
		listed = make(map[int]bool)
	)
	//
	for _, e := range expectations {
		switch e.Kind {
		case "prob":
			state := parseBits(t, filename, e, e.Args[0])
			expected := parseFloat(t, filename, e, e.Args[1])
			//
			if int(state) >= len(probs) {
				t.Errorf("%s:%d: basis state %s out of range", filename, e.Line, e.Args[0])
			} else if math.Abs(probs[state]-expected) > TOLERANCE {
				t.Errorf("%s:%d: expected probability %v for %s, got %v", filename, e.Line, expected, e.Args[0],
					probs[state])
			}
			//
			listed[int(state)] = true
		case "memory":
			reg, ok := circuit.Layout.ClassicalRegister(e.Args[0])
			expected := parseBits(t, filename, e, e.Args[1])
			//
			if !ok {
				t.Errorf("%s:%d: unknown classical register %s", filename, e.Line, e.Args[0])
			} else if actual := execution.Memory[reg.Name]; actual != expected {
				t.Errorf("%s:%d: expected %s=%s, got %0*b", filename, e.Line, e.Args[0], e.Args[1], int(reg.Size),
					actual)
			}
		case "qubits":
			expected, err := strconv.ParseUint(e.Args[0], 10, 32)
			//
			if err != nil {
				t.Fatalf("%s:%d: %s", filename, e.Line, err)
			} else if actual := circuit.Layout.Qubits(); uint64(actual) != expected {
				t.Errorf("%s:%d: expected %d qubits, got %d", filename, e.Line, expected, actual)
			}
		}
	}
	// All unlisted states must be unreachable.
	if len(listed) > 0 {
		for i, p := range probs {
			if !listed[i] && p > TOLERANCE {
				t.Errorf("%s: unexpected probability %v for state %d", filename, p, i)
			}
		}
	}
}

func parseBits(t *testing.T, filename string, e Expectation, bits string) uint64 {
	value, err := strconv.ParseUint(bits, 2, 64)
	//
	if err != nil {
		t.Fatalf("%s:%d: invalid bitstring \"%s\"", filename, e.Line, bits)
	}
	//
	return value
}

func parseFloat(t *testing.T, filename string, e Expectation, str string) float64 {
	value, err := strconv.ParseFloat(str, 64)
	//
	if err != nil {
		t.Fatalf("%s:%d: invalid probability \"%s\"", filename, e.Line, str)
	}
	//
	return value
}
