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
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	log "github.com/sirupsen/logrus"
)

// Expand a program into a flat circuit of primitive instructions.  Statements
// are processed in order, hence registers and gates must be declared before
// they are used.  Operations applied to whole registers are broadcast across
// the qubits of those registers, and gate applications are expanded
// recursively into the builtin U and CX gates.  Expansion halts at the first
// error, which is a *RuntimeError identifying the top-level statement being
// expanded.
func Expand(program ast.Program) (*Circuit, error) {
	var expander = NewExpander()
	//
	for _, stmt := range program.Statements {
		if err := expander.Statement(stmt); err != nil {
			var rerr *RuntimeError
			// Associate error with statement
			if errors.As(err, &rerr) && rerr.Statement == nil {
				rerr.Statement = stmt
			}
			//
			return nil, err
		}
	}
	//
	log.Debugf("expanded %d gate applications into %d steps over %d qubits", expander.applications,
		len(expander.steps), expander.layout.Qubits())
	//
	return &Circuit{expander.layout, expander.steps}, nil
}

// Caller ordinal given to top-level statements, such that all gates declared
// thus far are visible.
const topLevel = math.MaxUint

type gateEntry struct {
	decl *ast.GateDecl
	// Position of this gate amongst all declared gates.  A gate body can only
	// apply gates with a lower ordinal.
	ordinal uint
}

// Expander is responsible for expanding the statements of a program, one at a
// time, into a sequence of primitive steps.
type Expander struct {
	layout *Layout
	gates  map[string]gateEntry
	steps  []Step
	// Number of gate applications expanded.
	applications uint
}

// NewExpander constructs an expander with no registers or gates declared.
func NewExpander() *Expander {
	return &Expander{layout: NewLayout(), gates: make(map[string]gateEntry)}
}

// Layout returns the registers declared thus far.
func (p *Expander) Layout() *Layout {
	return p.layout
}

// Steps returns the steps generated thus far.
func (p *Expander) Steps() []Step {
	return p.steps
}

// Statement expands a single top-level statement.
func (p *Expander) Statement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.QuantumRegister:
		p.layout.AddQuantumRegister(s.Name, s.Size)
	case *ast.ClassicalRegister:
		p.layout.AddClassicalRegister(s.Name, s.Size)
	case *ast.GateDecl:
		p.gates[s.Name] = gateEntry{s, uint(len(p.gates))}
	case *ast.QuantumStatement:
		return p.expandOperation(s.Operation, nil)
	case *ast.Conditional:
		if _, ok := p.layout.ClassicalRegister(s.Register); !ok {
			return NewRuntimeError(ClassicalRegisterNotFound, s.Register)
		}
		//
		return p.expandOperation(s.Operation, &Condition{s.Register, s.Value})
	default:
		panic(fmt.Sprintf("unexpected statement %T", stmt))
	}
	//
	return nil
}

func (p *Expander) expandOperation(op ast.Operation[ast.Argument], cond *Condition) error {
	switch o := op.(type) {
	case *ast.Unitary[ast.Argument]:
		params, err := Environment(nil).EvalAll(o.Params)
		if err != nil {
			return err
		}
		//
		instances, err := p.broadcast(o.Args, repeat(true, len(o.Args)))
		if err != nil {
			return err
		}
		//
		for _, args := range instances {
			if err := p.applyGate(o.Name, params, args, topLevel, cond); err != nil {
				return err
			}
		}
	case *ast.Measure[ast.Argument]:
		instances, err := p.broadcast(o.Arguments(), []bool{true, false})
		if err != nil {
			return err
		}
		//
		for _, args := range instances {
			p.emit(&Measurement{args[0], args[1]}, cond)
		}
	case *ast.Reset[ast.Argument]:
		instances, err := p.broadcast(o.Arguments(), []bool{true})
		if err != nil {
			return err
		}
		//
		for _, args := range instances {
			p.emit(&ResetQubit{args[0]}, cond)
		}
	case *ast.Barrier[ast.Argument]:
		var targets []ast.Item
		//
		for _, arg := range o.Args {
			items, _, err := p.items(arg, true)
			if err != nil {
				return err
			}
			//
			targets = append(targets, items...)
		}
		//
		p.emit(&BarrierQubits{targets}, cond)
	default:
		panic(fmt.Sprintf("unknown operation %s", op.String()))
	}
	//
	return nil
}

// Apply a gate (either builtin or user-defined) to a given set of real
// parameters and qubits.  The caller is the ordinal of the gate whose body is
// being expanded, or topLevel.
func (p *Expander) applyGate(name string, params []float64, args []ast.Item, caller uint, cond *Condition) error {
	p.applications++
	//
	switch name {
	case "U":
		if err := checkArity(name, params, args, 3, 1); err != nil {
			return err
		}
		//
		p.emit(&UGate{params[0], params[1], params[2], args[0]}, cond)
	case "CX":
		if err := checkArity(name, params, args, 0, 2); err != nil {
			return err
		} else if err := checkDistinct(args); err != nil {
			return err
		}
		//
		p.emit(&CXGate{args[0], args[1]}, cond)
	default:
		return p.applyUserGate(name, params, args, caller, cond)
	}
	//
	return nil
}

func (p *Expander) applyUserGate(name string, params []float64, args []ast.Item, caller uint, cond *Condition) error {
	entry, ok := p.gates[name]
	// Gates declared after the caller are not visible to it.
	if !ok || entry.ordinal >= caller || entry.decl.Opaque {
		return NewRuntimeError(UndefinedGate, name)
	} else if len(params) != len(entry.decl.Params) {
		return NewRuntimeError(WrongNumberOfRealParameters, name)
	}
	//
	table, err := NewBindingTable(name, entry.decl.Args, args)
	if err != nil {
		return err
	} else if err := checkDistinct(args); err != nil {
		return err
	}
	//
	var (
		resolver = NewArgumentResolver(table)
		env      = NewEnvironment(entry.decl.Params, params)
	)
	//
	for _, op := range entry.decl.Body {
		resolved, err := resolver.ResolveOperation(op)
		if err != nil {
			return err
		}
		//
		switch o := resolved.(type) {
		case *ast.Unitary[ast.Item]:
			values, err := env.EvalAll(o.Params)
			if err != nil {
				return err
			}
			//
			if err := p.applyGate(o.Name, values, o.Args, entry.ordinal, cond); err != nil {
				return err
			}
		case *ast.Barrier[ast.Item]:
			p.emit(&BarrierQubits{o.Args}, cond)
		default:
			panic(fmt.Sprintf("unexpected operation in gate body %s", o.String()))
		}
	}
	//
	return nil
}

func (p *Expander) emit(insn Instruction, cond *Condition) {
	p.steps = append(p.steps, Step{insn, cond})
}

// Broadcast the arguments of an operation.  Whole registers are expanded into
// their items, and must all have the same size.  This determines the number of
// instances of the operation generated, with individual items being repeated
// across all instances.
func (p *Expander) broadcast(args []ast.Argument, quantum []bool) ([][]ast.Item, error) {
	var (
		expanded = make([][]ast.Item, len(args))
		whole    = make([]bool, len(args))
		size     = 1
		sized    = false
	)
	//
	for i, arg := range args {
		items, isRegister, err := p.items(arg, quantum[i])
		//
		if err != nil {
			return nil, err
		} else if isRegister && sized && len(items) != size {
			return nil, NewRuntimeError(DifferentSizeRegisters, arg.String())
		} else if isRegister {
			size, sized = len(items), true
		}
		//
		expanded[i], whole[i] = items, isRegister
	}
	//
	instances := make([][]ast.Item, size)
	//
	for j := range instances {
		instances[j] = make([]ast.Item, len(args))
		//
		for i := range args {
			if whole[i] {
				instances[j][i] = expanded[i][j]
			} else {
				instances[j][i] = expanded[i][0]
			}
		}
	}
	//
	return instances, nil
}

// Determine the items referred to by a given argument, along with whether or
// not the argument refers to a whole register.
func (p *Expander) items(arg ast.Argument, quantum bool) ([]ast.Item, bool, error) {
	var (
		reg  Register
		ok   bool
		name string
		kind = QuantumRegisterNotFound
	)
	//
	switch a := arg.(type) {
	case ast.Identifier:
		name = a.Name
	case ast.Item:
		name = a.Register
	}
	//
	if quantum {
		reg, ok = p.layout.QuantumRegister(name)
	} else {
		reg, ok = p.layout.ClassicalRegister(name)
		kind = ClassicalRegisterNotFound
	}
	//
	if !ok {
		return nil, false, NewRuntimeError(kind, name)
	} else if item, isItem := arg.(ast.Item); isItem && item.Index >= reg.Size {
		return nil, false, NewRuntimeError(IndexOutOfBounds, item.String())
	} else if isItem {
		return []ast.Item{item}, false, nil
	}
	// Whole register
	items := make([]ast.Item, reg.Size)
	//
	for i := range items {
		items[i] = ast.NewItem(name, uint(i))
	}
	//
	return items, true, nil
}

func checkArity(name string, params []float64, args []ast.Item, nparams int, nargs int) error {
	if len(params) != nparams {
		return NewRuntimeError(WrongNumberOfRealParameters, name)
	} else if len(args) != nargs {
		return NewRuntimeError(WrongNumberOfQuantumParameters, name)
	}
	//
	return nil
}

func checkDistinct(args []ast.Item) error {
	for i, arg := range args {
		if slices.Contains(args[:i], arg) {
			return NewRuntimeError(RepeatedQuantumArgument, arg.String())
		}
	}
	//
	return nil
}

func repeat[T any](item T, n int) []T {
	items := make([]T, n)
	//
	for i := range items {
		items[i] = item
	}
	//
	return items
}
