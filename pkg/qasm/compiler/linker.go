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
	"fmt"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
	"github.com/consensys/go-qasmsim/pkg/util/source"
)

// MAX_CREG_SIZE is the largest permitted classical register, as determined by
// the width of the values against which registers are compared.
const MAX_CREG_SIZE = 64

// Link a flattened sequence of statements into a complete program (or one or
// more errors).  Linking checks that declarations do not clash: registers
// (both quantum and classical) share a single namespace, and gates share
// another.  Uses of registers and gates are not checked here, as these are
// reported when the program is expanded.
func Link(statements []ast.Statement, srcmaps source.Maps[any]) (ast.Program, source.Maps[any],
	[]source.SyntaxError) {
	var (
		linker = NewLinker(srcmaps)
		errors []source.SyntaxError
	)
	//
	for _, stmt := range statements {
		errors = append(errors, linker.Register(stmt)...)
	}
	//
	if len(errors) != 0 {
		return ast.Program{}, srcmaps, errors
	}
	//
	return ast.NewProgram(VERSION, statements), srcmaps, nil
}

// Linker packages together the various bits of information required for
// linking.
type Linker struct {
	registers map[string]bool
	gates     map[string]bool
	// Total number of qubits declared thus far.
	qubits uint
	srcmap source.Maps[any]
}

// NewLinker constructs a new linker
func NewLinker(srcmap source.Maps[any]) *Linker {
	return &Linker{
		registers: make(map[string]bool),
		gates:     make(map[string]bool),
		srcmap:    srcmap,
	}
}

// Register a statement with this linker, producing errors for any declaration
// which clashes with one registered already.
func (p *Linker) Register(stmt ast.Statement) []source.SyntaxError {
	switch s := stmt.(type) {
	case *ast.QuantumRegister:
		// Total qubits are bounded by what can be simulated.
		if s.Size > statevector.MAX_QUBITS-p.qubits {
			msg := fmt.Sprintf("quantum registers exceed %d qubits", statevector.MAX_QUBITS)
			return p.srcmap.SyntaxErrors(s, msg)
		}
		//
		p.qubits += s.Size
		//
		return p.registerRegister(s, s.Name)
	case *ast.ClassicalRegister:
		if s.Size > MAX_CREG_SIZE {
			msg := fmt.Sprintf("classical register %s exceeds %d bits", s.Name, MAX_CREG_SIZE)
			return p.srcmap.SyntaxErrors(s, msg)
		}
		//
		return p.registerRegister(s, s.Name)
	case *ast.GateDecl:
		if p.gates[s.Name] {
			return p.srcmap.SyntaxErrors(s, fmt.Sprintf("duplicate gate %s", s.Name))
		}
		//
		p.gates[s.Name] = true
	}
	//
	return nil
}

func (p *Linker) registerRegister(stmt ast.Statement, name string) []source.SyntaxError {
	if p.registers[name] {
		return p.srcmap.SyntaxErrors(stmt, fmt.Sprintf("duplicate register %s", name))
	}
	//
	p.registers[name] = true
	//
	return nil
}
