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
package ast

// Statement represents a top-level statement in a QASM program.  Every
// statement is a pointer, such that it can be used as a key in a source map.
type Statement interface {
	isStatement()
}

// Include represents an "include" statement.  These are eliminated during
// compilation by splicing in the statements of the included file.
type Include struct {
	Path string
}

// QuantumRegister declares a register of qubits.
type QuantumRegister struct {
	Name string
	Size uint
}

// ClassicalRegister declares a register of classical bits.
type ClassicalRegister struct {
	Name string
	Size uint
}

// GateDecl declares a gate with zero or more real parameters and one or more
// formal quantum arguments.  The body consists of gate applications (and
// barriers) over the formal arguments only.  Opaque gates have no body.
type GateDecl struct {
	Name   string
	Params []string
	Args   []string
	Body   []Operation[Identifier]
	Opaque bool
}

// QuantumStatement applies a quantum operation at the top level.
type QuantumStatement struct {
	Operation Operation[Argument]
}

// Conditional applies a quantum operation only when a classical register holds
// a given value.
type Conditional struct {
	Register  string
	Value     uint64
	Operation Operation[Argument]
}

func (p *Include) isStatement()           {}
func (p *QuantumRegister) isStatement()   {}
func (p *ClassicalRegister) isStatement() {}
func (p *GateDecl) isStatement()          {}
func (p *QuantumStatement) isStatement()  {}
func (p *Conditional) isStatement()       {}

// Program represents a fully compiled QASM program, where all includes have
// been spliced in.
type Program struct {
	// Version of the language (e.g. "2.0")
	Version string
	// Statements of the program in order.
	Statements []Statement
}

// NewProgram constructs a new program from a given set of statements.
func NewProgram(version string, statements []Statement) Program {
	stmts := make([]Statement, len(statements))
	copy(stmts, statements)
	//
	return Program{version, stmts}
}

// Gates returns the declared gates of this program, in declaration order.
func (p *Program) Gates() []*GateDecl {
	var gates []*GateDecl
	//
	for _, s := range p.Statements {
		if g, ok := s.(*GateDecl); ok {
			gates = append(gates, g)
		}
	}
	//
	return gates
}
