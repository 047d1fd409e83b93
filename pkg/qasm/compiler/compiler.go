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
package compiler

import (
	"fmt"
	"path/filepath"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	"github.com/consensys/go-qasmsim/pkg/qasm/parser"
	"github.com/consensys/go-qasmsim/pkg/qasm/stdlib"
	"github.com/consensys/go-qasmsim/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// VERSION is the only version of the language accepted.
const VERSION = "2.0"

// Compile takes a given set of source files, and parses them into a single
// (linked) program.  Each file given is considered a root file, and must begin
// with a version header.  Include statements are resolved by splicing the
// statements of the included file in place, with each file included at most
// once.  The standard library "qelib1.inc" is always available, whilst other
// includes are resolved relative to the including file.
func Compile(files ...source.File) (ast.Program, source.Maps[any], []source.SyntaxError) {
	var flattener = newFlattener()
	// Initialise visited map with all top-level files
	for _, sf := range files {
		flattener.visited[filepath.Clean(sf.Filename())] = true
	}
	// Flatten each file in turn.
	for i := range files {
		flattener.flatten(&files[i], true)
	}
	// Link program
	if len(flattener.errors) != 0 {
		return ast.Program{}, *flattener.srcmaps, flattener.errors
	}
	//
	return Link(flattener.statements, *flattener.srcmaps)
}

type flattener struct {
	srcmaps    *source.Maps[any]
	visited    map[string]bool
	statements []ast.Statement
	errors     []source.SyntaxError
}

func newFlattener() *flattener {
	return &flattener{
		srcmaps: source.NewSourceMaps[any](),
		visited: make(map[string]bool),
	}
}

func (p *flattener) flatten(file *source.File, root bool) {
	item, errs := parser.Parse(file)
	// Check for syntax errors
	if len(errs) > 0 {
		p.errors = append(p.errors, errs...)
		return
	}
	//
	p.srcmaps.Join(&item.SourceMap)
	// Check version header
	if root && item.Version == nil {
		p.errors = append(p.errors, *file.SyntaxError(source.NewSpan(0, 0), "missing version header"))
	} else if item.Version != nil && *item.Version != VERSION {
		msg := fmt.Sprintf("unsupported version %s", *item.Version)
		p.errors = append(p.errors, *p.srcmaps.SyntaxError(item.Version, msg))
	}
	//
	for _, stmt := range item.Statements {
		if include, ok := stmt.(*ast.Include); ok {
			p.include(file, include)
		} else {
			p.statements = append(p.statements, stmt)
		}
	}
}

func (p *flattener) include(file *source.File, include *ast.Include) {
	var (
		srcfile  *source.File
		filename = filepath.Clean(filepath.Join(filepath.Dir(file.Filename()), include.Path))
	)
	// Library files take priority
	if lib, ok := stdlib.Lookup(include.Path); ok {
		srcfile = lib
		filename = include.Path
	}
	// Check filename not already included
	if p.visited[filename] {
		return
	}
	// Record that we've seen this file now.
	p.visited[filename] = true
	//
	if srcfile == nil {
		files, err := source.ReadFiles(filename)
		//
		if err != nil {
			p.errors = append(p.errors, *p.srcmaps.SyntaxError(include, err.Error()))
			return
		}
		//
		srcfile = &files[0]
	}
	//
	log.Debug(fmt.Sprintf("including source file %s", filename))
	//
	p.flatten(srcfile, false)
}
