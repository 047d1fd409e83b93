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
package test

import (
	"testing"

	"github.com/consensys/go-qasmsim/pkg/test/util"
)

// ===================================================================
// Valid Tests
// ===================================================================

func Test_Valid_Barrier(t *testing.T) {
	util.CheckValid(t, "barrier")
}

func Test_Valid_Bell(t *testing.T) {
	util.CheckValid(t, "bell")
}

func Test_Valid_Broadcast(t *testing.T) {
	util.CheckValid(t, "broadcast")
}

func Test_Valid_BroadcastMixed(t *testing.T) {
	util.CheckValid(t, "broadcast_mixed")
}

func Test_Valid_Conditional(t *testing.T) {
	util.CheckValid(t, "conditional")
}

func Test_Valid_Empty(t *testing.T) {
	util.CheckValid(t, "empty")
}

func Test_Valid_Functions(t *testing.T) {
	util.CheckValid(t, "functions")
}

func Test_Valid_Ghz(t *testing.T) {
	util.CheckValid(t, "ghz")
}

func Test_Valid_MeasureReset(t *testing.T) {
	util.CheckValid(t, "measure_reset")
}

func Test_Valid_NestedFormals(t *testing.T) {
	util.CheckValid(t, "nested_formals")
}

func Test_Valid_NestedGates(t *testing.T) {
	util.CheckValid(t, "nested_gates")
}

func Test_Valid_Parameters(t *testing.T) {
	util.CheckValid(t, "parameters")
}

func Test_Valid_Scoping(t *testing.T) {
	util.CheckValid(t, "scoping")
}

func Test_Valid_Swap(t *testing.T) {
	util.CheckValid(t, "swap")
}

func Test_Valid_Toffoli(t *testing.T) {
	util.CheckValid(t, "toffoli")
}
