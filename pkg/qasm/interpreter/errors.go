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

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	"github.com/consensys/go-qasmsim/pkg/util/source"
)

// RuntimeKind classifies the errors which can arise when expanding (and
// subsequently simulating) a program.
type RuntimeKind uint8

const (
	// QuantumRegisterNotFound indicates a reference to a quantum register (or
	// formal quantum argument) which is not in scope.
	QuantumRegisterNotFound RuntimeKind = iota
	// ClassicalRegisterNotFound indicates a reference to an undeclared
	// classical register.
	ClassicalRegisterNotFound
	// SymbolNotFound indicates a reference to a real parameter which is not in
	// scope.
	SymbolNotFound
	// UndefinedGate indicates an application of a gate which is not declared
	// (or not yet declared), or which is opaque.
	UndefinedGate
	// WrongNumberOfRealParameters indicates a gate applied to the wrong number
	// of real parameters.
	WrongNumberOfRealParameters
	// WrongNumberOfQuantumParameters indicates a gate applied to the wrong
	// number of quantum arguments.
	WrongNumberOfQuantumParameters
	// IndexOutOfBounds indicates an index beyond the size of a register.
	IndexOutOfBounds
	// DifferentSizeRegisters indicates whole registers of different sizes
	// given to the same operation.
	DifferentSizeRegisters
	// RepeatedQuantumArgument indicates the same qubit passed twice to a gate.
	RepeatedQuantumArgument
)

var runtimeKindMessages = [...]string{
	QuantumRegisterNotFound:        "quantum register not found",
	ClassicalRegisterNotFound:      "classical register not found",
	SymbolNotFound:                 "symbol not found",
	UndefinedGate:                  "undefined gate",
	WrongNumberOfRealParameters:    "wrong number of real parameters",
	WrongNumberOfQuantumParameters: "wrong number of quantum parameters",
	IndexOutOfBounds:               "index out of bounds",
	DifferentSizeRegisters:         "different size registers",
	RepeatedQuantumArgument:        "repeated quantum argument",
}

func (k RuntimeKind) String() string {
	return runtimeKindMessages[k]
}

// RuntimeError is a structured error arising during expansion.  It carries the
// offending symbol verbatim, and the top-level statement being expanded when it
// arose.  The latter allows the error to be reported against a location in the
// original source file.
type RuntimeError struct {
	Kind   RuntimeKind
	Symbol string
	// Top-level statement being expanded (nil if not known).
	Statement ast.Statement
}

// NewRuntimeError constructs a runtime error of a given kind for a given
// symbol.
func NewRuntimeError(kind RuntimeKind, symbol string) *RuntimeError {
	return &RuntimeError{kind, symbol, nil}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Symbol)
}

// AsSyntaxError converts a runtime error into a syntax error highlighting the
// top-level statement being expanded when it arose.  Returns nil if the error
// is not a runtime error, or its statement is not known to the source maps.
func AsSyntaxError(err error, srcmaps *source.Maps[any]) *source.SyntaxError {
	var rerr *RuntimeError
	//
	if errors.As(err, &rerr) && rerr.Statement != nil && srcmaps.Has(rerr.Statement) {
		return srcmaps.SyntaxError(rerr.Statement, rerr.Error())
	}
	//
	return nil
}
