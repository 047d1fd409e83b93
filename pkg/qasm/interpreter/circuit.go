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
	"fmt"
	"strings"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
)

// Register describes a declared register and, for quantum registers, where its
// qubits are positioned within the global state.
type Register struct {
	Name string
	Size uint
	// Offset of the first qubit of this register.  For classical registers,
	// this is always zero.
	Offset uint
}

// Layout records the registers declared by a program.  Quantum registers are
// laid out contiguously in declaration order, such that qubit 0 of the first
// register is global qubit 0.
type Layout struct {
	quantum   []Register
	classical []Register
	// Indices into the arrays above.
	qindex map[string]int
	cindex map[string]int
}

// NewLayout constructs an initially empty layout.
func NewLayout() *Layout {
	return &Layout{qindex: make(map[string]int), cindex: make(map[string]int)}
}

// AddQuantumRegister declares a new quantum register at the end of the layout.
func (p *Layout) AddQuantumRegister(name string, size uint) {
	p.qindex[name] = len(p.quantum)
	p.quantum = append(p.quantum, Register{name, size, p.Qubits()})
}

// AddClassicalRegister declares a new classical register.
func (p *Layout) AddClassicalRegister(name string, size uint) {
	p.cindex[name] = len(p.classical)
	p.classical = append(p.classical, Register{name, size, 0})
}

// QuantumRegister looks up the quantum register of the given name.
func (p *Layout) QuantumRegister(name string) (Register, bool) {
	if i, ok := p.qindex[name]; ok {
		return p.quantum[i], true
	}
	//
	return Register{}, false
}

// ClassicalRegister looks up the classical register of the given name.
func (p *Layout) ClassicalRegister(name string) (Register, bool) {
	if i, ok := p.cindex[name]; ok {
		return p.classical[i], true
	}
	//
	return Register{}, false
}

// QuantumRegisters returns all quantum registers in declaration order.
func (p *Layout) QuantumRegisters() []Register {
	return p.quantum
}

// ClassicalRegisters returns all classical registers in declaration order.
func (p *Layout) ClassicalRegisters() []Register {
	return p.classical
}

// Qubits returns the total number of qubits declared.
func (p *Layout) Qubits() uint {
	if n := len(p.quantum); n > 0 {
		last := p.quantum[n-1]
		return last.Offset + last.Size
	}
	//
	return 0
}

// Qubit determines the global index of a given (valid) quantum item.
func (p *Layout) Qubit(item ast.Item) uint {
	reg, ok := p.QuantumRegister(item.Register)
	//
	if !ok || item.Index >= reg.Size {
		panic(fmt.Sprintf("invalid qubit %s", item))
	}
	//
	return reg.Offset + item.Index
}

// Instruction is a primitive operation of a circuit, over items which have
// been checked against the layout.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// UGate applies the builtin single qubit unitary U(theta,phi,lambda).
type UGate struct {
	Theta, Phi, Lambda float64
	Target             ast.Item
}

// CXGate applies the builtin controlled-NOT.
type CXGate struct {
	Control, Target ast.Item
}

// Measurement measures a qubit into a classical bit.
type Measurement struct {
	Source, Target ast.Item
}

// ResetQubit returns a qubit to the |0> state.
type ResetQubit struct {
	Target ast.Item
}

// BarrierQubits has no effect on simulation.
type BarrierQubits struct {
	Targets []ast.Item
}

func (p *UGate) isInstruction()         {}
func (p *CXGate) isInstruction()        {}
func (p *Measurement) isInstruction()   {}
func (p *ResetQubit) isInstruction()    {}
func (p *BarrierQubits) isInstruction() {}

func (p *UGate) String() string {
	return fmt.Sprintf("U(%g,%g,%g) %s", p.Theta, p.Phi, p.Lambda, p.Target)
}

func (p *CXGate) String() string {
	return fmt.Sprintf("CX %s,%s", p.Control, p.Target)
}

func (p *Measurement) String() string {
	return fmt.Sprintf("measure %s -> %s", p.Source, p.Target)
}

func (p *ResetQubit) String() string {
	return fmt.Sprintf("reset %s", p.Target)
}

func (p *BarrierQubits) String() string {
	var strs = make([]string, len(p.Targets))
	//
	for i, t := range p.Targets {
		strs[i] = t.String()
	}
	//
	return fmt.Sprintf("barrier %s", strings.Join(strs, ","))
}

// Condition guards an instruction, such that it is only applied when the given
// classical register holds the given value.
type Condition struct {
	Register string
	Value    uint64
}

// Step is an instruction with an optional condition.
type Step struct {
	Instruction Instruction
	Condition   *Condition
}

func (p Step) String() string {
	if p.Condition != nil {
		return fmt.Sprintf("if(%s==%d) %s", p.Condition.Register, p.Condition.Value, p.Instruction)
	}
	//
	return p.Instruction.String()
}

// Circuit is the result of expanding a program, and consists of a flat
// sequence of primitive steps over a given register layout.
type Circuit struct {
	Layout *Layout
	Steps  []Step
}
