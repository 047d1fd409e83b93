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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	"github.com/consensys/go-qasmsim/pkg/qasm/compiler"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	"github.com/consensys/go-qasmsim/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint64 gets an expected 64bit unsigned integer, or exits if an error
// arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// CompileSourceFiles accepts a set of source files and compiles them into a
// program.  This can result, for example, in one or more syntax errors, etc.
func CompileSourceFiles(filenames []string) (ast.Program, source.Maps[any]) {
	// Read each file
	for _, n := range filenames {
		log.Debug(fmt.Sprintf("including source file %s", n))
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	// Sanity check for errors
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Compile source files
	program, srcmaps, errors := compiler.Compile(srcfiles...)
	// Check for errors
	if len(errors) != 0 {
		// Report errors
		for _, err := range errors {
			printSyntaxError(&err)
		}
		// Fail
		os.Exit(3)
	}
	// Done
	return program, srcmaps
}

// ExpandProgram expands a compiled program into a circuit, or reports the
// error which prevented this.
func ExpandProgram(program ast.Program, srcmaps source.Maps[any]) *interpreter.Circuit {
	circuit, err := interpreter.Expand(program)
	//
	if err != nil {
		printRuntimeError(err, srcmaps)
		os.Exit(4)
	}
	//
	return circuit
}

// Print a runtime error against the statement from which it arose, if this is
// known.
func printRuntimeError(err error, srcmaps source.Maps[any]) {
	if serr := interpreter.AsSyntaxError(err, &srcmaps); serr != nil {
		printSyntaxError(serr)
	} else {
		log.Error(err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	fmt.Print(formatSyntaxError(err))
}

// Format a syntax error with appropriate highlighting.
func formatSyntaxError(err *source.SyntaxError) string {
	var (
		builder    strings.Builder
		span       = err.Span()
		line       = err.FirstEnclosingLine()
		lineOffset = max(0, span.Start()-line.Start())
		// Calculate length (ensures don't overflow line)
		length = max(1, min(line.Length()-lineOffset, span.Length()))
	)
	// Print error + line number
	fmt.Fprintf(&builder, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	builder.WriteString("\n")
	// Print line
	builder.WriteString(line.String())
	builder.WriteString("\n")
	// Print indent (todo: account for tabs)
	builder.WriteString(strings.Repeat(" ", lineOffset))
	// Print highlight
	builder.WriteString(strings.Repeat("^", length))
	builder.WriteString("\n")
	//
	return builder.String()
}
