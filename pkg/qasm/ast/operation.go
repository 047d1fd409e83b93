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

import (
	"fmt"
	"strings"
)

// Operation represents a quantum operation whose operands are of some given
// argument type.  The argument type reflects where we are in the pipeline.  An
// Operation[Identifier] occurs in a gate body and has operands which are formal
// arguments.  An Operation[Argument] occurs at the top level of a program and
// may refer to whole registers.  Finally, an Operation[Item] is one where all
// operands have been resolved to specific qubits.
type Operation[A Argument] interface {
	fmt.Stringer
	// Arguments returns the operands of this operation, in order.
	Arguments() []A
}

// Unitary represents the application of a gate (either a builtin such as U or
// CX, or a user-defined gate) to zero or more real parameters and one or more
// quantum arguments.
type Unitary[A Argument] struct {
	Name   string
	Params []Expr
	Args   []A
}

// NewUnitary constructs a new gate application.
func NewUnitary[A Argument](name string, params []Expr, args ...A) *Unitary[A] {
	return &Unitary[A]{name, params, args}
}

// Arguments implementation for Operation interface.
func (p *Unitary[A]) Arguments() []A {
	return p.Args
}

func (p *Unitary[A]) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Name)
	//
	if len(p.Params) > 0 {
		builder.WriteString("(")
		//
		for i, e := range p.Params {
			if i != 0 {
				builder.WriteString(",")
			}
			//
			builder.WriteString(e.String())
		}
		//
		builder.WriteString(")")
	}
	//
	builder.WriteString(" ")
	builder.WriteString(joinArguments(p.Args))
	//
	return builder.String()
}

// Measure represents the measurement of a quantum argument into a classical
// argument.
type Measure[A Argument] struct {
	Source A
	Target A
}

// Arguments implementation for Operation interface.
func (p *Measure[A]) Arguments() []A {
	return []A{p.Source, p.Target}
}

func (p *Measure[A]) String() string {
	return fmt.Sprintf("measure %s -> %s", p.Source, p.Target)
}

// Reset represents the reset of a quantum argument into the |0> state.
type Reset[A Argument] struct {
	Target A
}

// Arguments implementation for Operation interface.
func (p *Reset[A]) Arguments() []A {
	return []A{p.Target}
}

func (p *Reset[A]) String() string {
	return fmt.Sprintf("reset %s", p.Target)
}

// Barrier prevents optimisations across its arguments.  It has no effect on
// simulation.
type Barrier[A Argument] struct {
	Args []A
}

// Arguments implementation for Operation interface.
func (p *Barrier[A]) Arguments() []A {
	return p.Args
}

func (p *Barrier[A]) String() string {
	return fmt.Sprintf("barrier %s", joinArguments(p.Args))
}

func joinArguments[A Argument](args []A) string {
	var strs = make([]string, len(args))
	//
	for i, a := range args {
		strs[i] = a.String()
	}
	//
	return strings.Join(strs, ",")
}
