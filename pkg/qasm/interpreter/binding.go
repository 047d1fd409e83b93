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

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
)

// BindingTable maps the formal quantum arguments of a gate to the actual
// arguments given at a particular call site.  A table is constructed once per
// gate invocation, and is read-only thereafter.  Since values are items,
// rather than arbitrary arguments, a table can never bind a formal to another
// unresolved name.
type BindingTable struct {
	// Formal names in declaration order.
	names []string
	// Mapping from formal names to actuals.
	bindings map[string]ast.Item
}

// NewBindingTable binds the formal arguments of a given gate positionally
// against the actual arguments of a call site.  This fails if the number of
// actuals does not match the number of formals.  Formals are assumed to be
// distinct (as ensured by the parser).
func NewBindingTable(gate string, formals []string, actuals []ast.Item) (*BindingTable, error) {
	if len(formals) != len(actuals) {
		return nil, NewRuntimeError(WrongNumberOfQuantumParameters, gate)
	}
	//
	var (
		names    = make([]string, len(formals))
		bindings = make(map[string]ast.Item, len(formals))
	)
	//
	for i, formal := range formals {
		if _, ok := bindings[formal]; ok {
			panic(fmt.Sprintf("duplicate formal argument %s in gate %s", formal, gate))
		}
		//
		names[i] = formal
		bindings[formal] = actuals[i]
	}
	//
	return &BindingTable{names, bindings}, nil
}

// Lookup the actual argument bound to a given formal name, if any.
func (p *BindingTable) Lookup(name string) (ast.Item, bool) {
	item, ok := p.bindings[name]
	//
	return item, ok
}

// Len returns the number of bindings in this table.
func (p *BindingTable) Len() int {
	return len(p.names)
}

// Names returns the formal names bound in this table, in declaration order.
func (p *BindingTable) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	//
	return names
}
