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
	"slices"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
)

func Test_BindingTable_Basic(t *testing.T) {
	table, err := NewBindingTable("swap", []string{"a", "b"}, []ast.Item{ast.NewItem("q", 1), ast.NewItem("q", 0)})
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	} else if table.Len() != 2 {
		t.Errorf("expected 2 bindings, got %d", table.Len())
	} else if !slices.Equal(table.Names(), []string{"a", "b"}) {
		t.Errorf("unexpected names %v", table.Names())
	}
	//
	if item, ok := table.Lookup("b"); !ok || item != ast.NewItem("q", 0) {
		t.Errorf("unexpected binding for b: %s", item)
	} else if _, ok := table.Lookup("c"); ok {
		t.Errorf("unexpected binding for c")
	}
}

func Test_BindingTable_Names(t *testing.T) {
	table, _ := NewBindingTable("g", []string{"a"}, []ast.Item{ast.NewItem("q", 0)})
	// Modifying names does not affect table
	names := table.Names()
	names[0] = "z"
	//
	if _, ok := table.Lookup("a"); !ok || table.Names()[0] != "a" {
		t.Errorf("binding table modified")
	}
}

func Test_BindingTable_Arity(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		actuals := make([]ast.Item, n)
		_, err := NewBindingTable("cx", []string{"c", "t"}, actuals)
		//
		var rerr *RuntimeError
		if !errors.As(err, &rerr) || rerr.Kind != WrongNumberOfQuantumParameters || rerr.Symbol != "cx" {
			t.Errorf("%d actuals: unexpected error %v", n, err)
		}
	}
}

func Test_BindingTable_DuplicateFormals(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate formals")
		}
	}()
	//
	_, _ = NewBindingTable("g", []string{"a", "a"}, []ast.Item{ast.NewItem("q", 0), ast.NewItem("q", 1)})
}
