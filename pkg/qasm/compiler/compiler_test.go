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
package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	"github.com/consensys/go-qasmsim/pkg/util/source"
)

func Test_Compile_Basic(t *testing.T) {
	program := checkCompile(t, "OPENQASM 2.0;\nqreg q[1];\nU(0,0,0) q[0];")
	//
	if program.Version != VERSION || len(program.Statements) != 2 {
		t.Errorf("unexpected program %v", program)
	}
}

func Test_Compile_Stdlib(t *testing.T) {
	program := checkCompile(t, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\nqreg q[1];\nh q[0];")
	//
	var hadamard bool
	//
	for _, g := range program.Gates() {
		hadamard = hadamard || g.Name == "h"
	}
	//
	if !hadamard {
		t.Errorf("expected gate h from standard library")
	}
	// Include statements are eliminated
	for _, s := range program.Statements {
		if _, ok := s.(*ast.Include); ok {
			t.Errorf("unexpected include statement")
		}
	}
}

func Test_Compile_IncludeOnce(t *testing.T) {
	checkCompile(t, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\ninclude \"qelib1.inc\";")
}

func Test_Compile_IncludeRelative(t *testing.T) {
	dir := t.TempDir()
	//
	writeFile(t, filepath.Join(dir, "gates.inc"), "gate flip a { U(pi,0,pi) a; }")
	writeFile(t, filepath.Join(dir, "main.qasm"), "OPENQASM 2.0;\ninclude \"gates.inc\";\nqreg q[1];\nflip q;")
	//
	files, err := source.ReadFiles(filepath.Join(dir, "main.qasm"))
	if err != nil {
		t.Fatal(err)
	}
	//
	program, _, errs := Compile(files...)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs[0].Message())
	}
	// Included statements are spliced in place
	if gate, ok := program.Statements[0].(*ast.GateDecl); !ok || gate.Name != "flip" {
		t.Errorf("expected gate flip first")
	}
}

func Test_Compile_Invalid(t *testing.T) {
	checkCompileError(t, "qreg q[1];", "missing version header")
	checkCompileError(t, "OPENQASM 3.0;", "unsupported version 3.0")
	checkCompileError(t, "OPENQASM 2.0; qreg q[1]; creg q[1];", "duplicate register q")
	checkCompileError(t, "OPENQASM 2.0; qreg q[4000000000];", "quantum registers exceed 30 qubits")
	checkCompileError(t, "OPENQASM 2.0; qreg q[20]; qreg r[11];", "quantum registers exceed 30 qubits")
	checkCompileError(t, "OPENQASM 2.0; gate g a { } gate g b { }", "duplicate gate g")
	checkCompileError(t, "OPENQASM 2.0; include \"qelib1.inc\"; gate h a { }", "duplicate gate h")
	checkCompileError(t, "OPENQASM 2.0; creg c[65];", "classical register c exceeds 64 bits")
}

func Test_Compile_MissingInclude(t *testing.T) {
	srcfile := source.NewSourceFile(filepath.Join(t.TempDir(), "main.qasm"),
		[]byte("OPENQASM 2.0;\ninclude \"missing.inc\";"))
	//
	_, _, errs := Compile(*srcfile)
	//
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	} else if line := errs[0].FirstEnclosingLine(); line.Number() != 2 {
		t.Errorf("expected error on line 2, got line %d", line.Number())
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkCompile(t *testing.T, input string) ast.Program {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test.qasm", []byte(input))
	program, _, errs := Compile(*srcfile)
	//
	for _, err := range errs {
		t.Errorf("unexpected error: %s", err.Message())
	}
	//
	return program
}

func checkCompileError(t *testing.T, input string, msg string) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test.qasm", []byte(input))
	_, _, errs := Compile(*srcfile)
	//
	if len(errs) != 1 {
		t.Errorf("%q: expected one error, got %d", input, len(errs))
	} else if errs[0].Message() != msg {
		t.Errorf("%q: expected error %q, got %q", input, msg, errs[0].Message())
	}
}

func writeFile(t *testing.T, filename string, contents string) {
	t.Helper()
	//
	if err := os.WriteFile(filename, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
}
