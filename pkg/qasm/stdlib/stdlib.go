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
package stdlib

import (
	_ "embed"

	"github.com/consensys/go-qasmsim/pkg/util/source"
)

// QELIB1 is the name under which the standard gate library is included.
const QELIB1 = "qelib1.inc"

//go:embed qelib1.inc
var qelib1 []byte

// Lookup returns the library file with the given include path, if one exists.
// A fresh source file is returned on each call.
func Lookup(path string) (*source.File, bool) {
	if path == QELIB1 {
		return source.NewSourceFile(QELIB1, qelib1), true
	}
	//
	return nil, false
}
