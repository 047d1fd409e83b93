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
	"sync"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
)

func Test_Resolve_RoundTrip(t *testing.T) {
	var (
		formals = []string{"a", "b", "c"}
		actuals = []ast.Item{ast.NewItem("q", 0), ast.NewItem("q", 1), ast.NewItem("r", 7)}
		table   = newBindingTable(t, "g", formals, actuals)
	)
	//
	resolver := NewArgumentResolver(table)
	//
	for i, formal := range formals {
		item, err := resolver.Resolve(ast.NewIdentifier(formal))
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		} else if item != actuals[i] {
			t.Errorf("resolving %s: expected %s, got %s", formal, actuals[i], item)
		}
	}
}

func Test_Resolve_CloneIndependence(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"q"}, []ast.Item{ast.NewItem("actual", 0)})
		resolver = NewArgumentResolver(table)
	)
	//
	item, err := resolver.Resolve(ast.NewIdentifier("q"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Modify returned item
	item.Register = "other"
	item.Index = 3
	// Table is unaffected
	if again, _ := table.Lookup("q"); again != ast.NewItem("actual", 0) {
		t.Errorf("binding table modified: %s", again)
	}
}

func Test_Resolve_Unbound(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"formal"}, []ast.Item{ast.NewItem("actual", 0)})
		resolver = NewArgumentResolver(table)
	)
	//
	for _, name := range []string{"fmal", "Formal", "formal ", "", "q"} {
		checkUnbound(t, resolver, name)
	}
}

func Test_Resolve_Scenario1(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"q"}, []ast.Item{ast.NewItem("actual", 0)})
		resolver = NewArgumentResolver(table)
	)
	//
	if item, err := resolver.Resolve(ast.NewIdentifier("q")); err != nil {
		t.Errorf("unexpected error: %s", err)
	} else if item != ast.NewItem("actual", 0) {
		t.Errorf("expected actual[0], got %s", item)
	}
}

func Test_Resolve_Scenario2(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"q"}, []ast.Item{ast.NewItem("actual", 0)})
		resolver = NewArgumentResolver(table)
	)
	//
	checkUnbound(t, resolver, "p")
}

func Test_Resolve_Scenario3(t *testing.T) {
	var (
		a        = ast.NewItem("r", 1)
		b        = ast.NewItem("r", 2)
		table    = newBindingTable(t, "g", []string{"a", "b"}, []ast.Item{a, b})
		resolver = NewArgumentResolver(table)
	)
	// Resolve in either order
	for _, order := range [][]string{{"a", "b"}, {"b", "a"}} {
		items, err := resolver.ResolveAll(ast.Identifiers(order...))
		//
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		//
		for i, name := range order {
			expected := a
			if name == "b" {
				expected = b
			}
			//
			if items[i] != expected {
				t.Errorf("resolving %s: expected %s, got %s", name, expected, items[i])
			}
		}
	}
}

func Test_ResolveAll_Unbound(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"a", "b"}, []ast.Item{ast.NewItem("r", 0), ast.NewItem("r", 1)})
		resolver = NewArgumentResolver(table)
	)
	//
	_, err := resolver.ResolveAll(ast.Identifiers("a", "c", "d"))
	//
	var rerr *RuntimeError
	if !errors.As(err, &rerr) || rerr.Symbol != "c" {
		t.Errorf("expected unbound reference to c, got %v", err)
	}
}

func Test_ResolveOperation(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"a", "b"}, []ast.Item{ast.NewItem("q", 1), ast.NewItem("q", 0)})
		resolver = NewArgumentResolver(table)
		op       = ast.NewUnitary("cu1", []ast.Expr{&ast.Parameter{Name: "x"}}, ast.Identifiers("b", "a")...)
	)
	//
	resolved, err := resolver.ResolveOperation(op)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	} else if resolved.String() != "cu1(x) q[0],q[1]" {
		t.Errorf("unexpected operation %s", resolved)
	}
	// Original is unchanged
	if op.String() != "cu1(x) b,a" {
		t.Errorf("operation modified: %s", op)
	}
}

func Test_ResolveOperation_Barrier(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"a", "b"}, []ast.Item{ast.NewItem("q", 1), ast.NewItem("r", 0)})
		resolver = NewArgumentResolver(table)
	)
	//
	resolved, err := resolver.ResolveOperation(&ast.Barrier[ast.Identifier]{Args: ast.Identifiers("a", "b")})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	} else if resolved.String() != "barrier q[1],r[0]" {
		t.Errorf("unexpected operation %s", resolved)
	}
	//
	_, err = resolver.ResolveOperation(&ast.Barrier[ast.Identifier]{Args: ast.Identifiers("a", "c")})
	//
	var rerr *RuntimeError
	if !errors.As(err, &rerr) || rerr.Symbol != "c" {
		t.Errorf("expected unbound reference to c, got %v", err)
	}
}

func Test_ResolveOperation_NotInGateBody(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", []string{"a", "b"}, []ast.Item{ast.NewItem("q", 0), ast.NewItem("q", 1)})
		resolver = NewArgumentResolver(table)
	)
	//
	ops := []ast.Operation[ast.Identifier]{
		&ast.Measure[ast.Identifier]{Source: ast.NewIdentifier("a"), Target: ast.NewIdentifier("b")},
		&ast.Reset[ast.Identifier]{Target: ast.NewIdentifier("a")},
	}
	//
	for _, op := range ops {
		checkPanics(t, op.String(), func() { _, _ = resolver.ResolveOperation(op) })
	}
}

func Test_Resolve_Concurrent(t *testing.T) {
	const workers = 16
	//
	var (
		formals = []string{"a", "b", "c", "d"}
		actuals = []ast.Item{ast.NewItem("q", 0), ast.NewItem("q", 1), ast.NewItem("r", 2), ast.NewItem("r", 3)}
		table   = newBindingTable(t, "g", formals, actuals)
		// Single resolver shared by all workers
		resolver = NewArgumentResolver(table)
		wg       sync.WaitGroup
		failures = make(chan string, workers)
	)
	//
	for w := range workers {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			//
			for i := range 1000 {
				var (
					k    = (w + i) % len(formals)
					item ast.Item
					err  error
				)
				// Bound
				if item, err = resolver.Resolve(ast.NewIdentifier(formals[k])); err != nil || item != actuals[k] {
					failures <- fmt.Sprintf("resolving %s: got %s (%v)", formals[k], item, err)
					return
				}
				// Unbound
				var rerr *RuntimeError
				//
				_, err = resolver.Resolve(ast.NewIdentifier("x"))
				if !errors.As(err, &rerr) || rerr.Kind != QuantumRegisterNotFound || rerr.Symbol != "x" {
					failures <- fmt.Sprintf("resolving x: unexpected error %v", err)
					return
				}
			}
		}()
	}
	//
	wg.Wait()
	close(failures)
	//
	for msg := range failures {
		t.Error(msg)
	}
	// Table is unaffected
	for i, formal := range formals {
		if item, ok := table.Lookup(formal); !ok || item != actuals[i] {
			t.Errorf("binding table modified: %s bound to %s", formal, item)
		}
	}
}

func Test_Resolve_ErrorMessage(t *testing.T) {
	var (
		table    = newBindingTable(t, "g", nil, nil)
		resolver = NewArgumentResolver(table)
	)
	//
	_, err := resolver.Resolve(ast.NewIdentifier("Qubit_1"))
	//
	if err == nil || err.Error() != "quantum register not found: Qubit_1" {
		t.Errorf("unexpected error %v", err)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func newBindingTable(t *testing.T, gate string, formals []string, actuals []ast.Item) *BindingTable {
	t.Helper()
	//
	table, err := NewBindingTable(gate, formals, actuals)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return table
}

func checkPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	//
	fn()
}

func checkUnbound(t *testing.T, resolver ArgumentResolver, name string) {
	t.Helper()
	//
	_, err := resolver.Resolve(ast.NewIdentifier(name))
	//
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Errorf("resolving %q: expected runtime error, got %v", name, err)
	} else if rerr.Kind != QuantumRegisterNotFound || rerr.Symbol != name {
		t.Errorf("resolving %q: unexpected error %s", name, rerr)
	}
}
