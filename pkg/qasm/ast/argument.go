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

import "fmt"

// Argument represents an operand of a quantum operation, such as a gate
// application or measurement.  There are exactly two kinds of argument: an
// Identifier, and an Item.  Inside a gate body, only identifiers can occur and
// these refer to the formal arguments of the enclosing gate.  At the top level
// of a program, an identifier refers to an entire register whilst an item
// refers to a specific qubit (or bit) within a register.
type Argument interface {
	fmt.Stringer
	// Sealed to this package.
	isArgument()
}

// Identifier is a bare name.  When occurring in a gate body, this names a
// formal argument which must be resolved against the arguments supplied at
// the call site before the gate can be applied.
type Identifier struct {
	Name string
}

// NewIdentifier constructs a new identifier argument.
func NewIdentifier(name string) Identifier {
	return Identifier{name}
}

func (p Identifier) isArgument() {}

func (p Identifier) String() string {
	return p.Name
}

// Item is a fully resolved reference to a specific index within a named
// register, such as "q[1]".  Items are plain values and, hence, copying an
// item never aliases the original.
type Item struct {
	// Register being referenced
	Register string
	// Index within the register being referenced
	Index uint
}

// NewItem constructs a new item argument.
func NewItem(register string, index uint) Item {
	return Item{register, index}
}

func (p Item) isArgument() {}

func (p Item) String() string {
	return fmt.Sprintf("%s[%d]", p.Register, p.Index)
}

// Identifiers converts a list of names into a list of identifiers.
func Identifiers(names ...string) []Identifier {
	ids := make([]Identifier, len(names))
	//
	for i, n := range names {
		ids[i] = Identifier{n}
	}
	//
	return ids
}
