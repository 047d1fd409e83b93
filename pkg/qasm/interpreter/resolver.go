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

// ArgumentResolver rewrites references to formal arguments within a gate body
// into the actual arguments given at the call site.  A resolver borrows its
// binding table for the duration of a single gate expansion and never
// modifies it.  Resolvers are stateless and, hence, safe for concurrent use.
type ArgumentResolver struct {
	table *BindingTable
}

// NewArgumentResolver constructs a resolver over a given binding table.
func NewArgumentResolver(table *BindingTable) ArgumentResolver {
	return ArgumentResolver{table}
}

// Resolve a reference to a formal argument into the actual argument to which
// it is bound.  Lookup is by exact name.  The returned item is a copy of that
// held in the table.  If no binding exists, then a QuantumRegisterNotFound
// error is returned carrying the name being resolved.
func (p ArgumentResolver) Resolve(ref ast.Identifier) (ast.Item, error) {
	if item, ok := p.table.Lookup(ref.Name); ok {
		return item, nil
	}
	//
	return ast.Item{}, NewRuntimeError(QuantumRegisterNotFound, ref.Name)
}

// ResolveAll resolves a sequence of references, failing on the first which is
// unbound.
func (p ArgumentResolver) ResolveAll(refs []ast.Identifier) ([]ast.Item, error) {
	items := make([]ast.Item, len(refs))
	//
	for i, ref := range refs {
		item, err := p.Resolve(ref)
		if err != nil {
			return nil, err
		}
		//
		items[i] = item
	}
	//
	return items, nil
}

// ResolveOperation rewrites an operation from a gate body (i.e. a unitary or a
// barrier) into one over actual arguments.  Real parameters are left unevaluated, since these are
// evaluated separately in the environment of the callee.
func (p ArgumentResolver) ResolveOperation(op ast.Operation[ast.Identifier]) (ast.Operation[ast.Item], error) {
	switch o := op.(type) {
	case *ast.Unitary[ast.Identifier]:
		args, err := p.ResolveAll(o.Args)
		if err != nil {
			return nil, err
		}
		//
		return ast.NewUnitary(o.Name, o.Params, args...), nil
	case *ast.Barrier[ast.Identifier]:
		args, err := p.ResolveAll(o.Args)
		if err != nil {
			return nil, err
		}
		//
		return &ast.Barrier[ast.Item]{Args: args}, nil
	default:
		// Measure and reset cannot appear in a gate body.
		panic(fmt.Sprintf("unexpected operation in gate body %s", op.String()))
	}
}
