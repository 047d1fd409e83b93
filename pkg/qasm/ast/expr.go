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
	"strconv"
)

// Expr represents a real-valued expression used as a parameter for a gate,
// such as "pi/2" or "theta+lambda".  Expressions are evaluated by the
// interpreter, not here.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Real is a numeric literal.
type Real struct {
	Value float64
}

// Pi is the constant "pi".
type Pi struct{}

// Parameter refers to a real parameter of the enclosing gate.
type Parameter struct {
	Name string
}

// Negate is unary minus.
type Negate struct {
	Operand Expr
}

// BinaryOp identifies an arithmetic operator.
type BinaryOp uint8

const (
	// ADD is "+"
	ADD BinaryOp = iota
	// SUB is "-"
	SUB
	// MUL is "*"
	MUL
	// DIV is "/"
	DIV
	// POW is "^"
	POW
)

var binaryOpNames = [...]string{ADD: "+", SUB: "-", MUL: "*", DIV: "/", POW: "^"}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// Binary is an arithmetic operation over two operands.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Function identifies one of the unary functions permitted in expressions.
type Function uint8

const (
	// SIN is sine
	SIN Function = iota
	// COS is cosine
	COS
	// TAN is tangent
	TAN
	// EXP is the exponential function
	EXP
	// LN is the natural logarithm
	LN
	// SQRT is the square root
	SQRT
)

var functionNames = [...]string{SIN: "sin", COS: "cos", TAN: "tan", EXP: "exp", LN: "ln", SQRT: "sqrt"}

func (fn Function) String() string { return functionNames[fn] }

// LookupFunction determines the function of the given name, if any.
func LookupFunction(name string) (Function, bool) {
	for i, n := range functionNames {
		if n == name {
			return Function(i), true
		}
	}
	//
	return 0, false
}

// Call applies a unary function to an operand.
type Call struct {
	Fn      Function
	Operand Expr
}

func (p *Real) isExpr()      {}
func (p *Pi) isExpr()        {}
func (p *Parameter) isExpr() {}
func (p *Negate) isExpr()    {}
func (p *Binary) isExpr()    {}
func (p *Call) isExpr()      {}

func (p *Real) String() string {
	return strconv.FormatFloat(p.Value, 'g', -1, 64)
}

func (p *Pi) String() string { return "pi" }

func (p *Parameter) String() string { return p.Name }

func (p *Negate) String() string {
	return fmt.Sprintf("-%s", p.Operand)
}

func (p *Binary) String() string {
	return fmt.Sprintf("(%s%s%s)", p.Left, p.Op, p.Right)
}

func (p *Call) String() string {
	return fmt.Sprintf("%s(%s)", p.Fn, p.Operand)
}
