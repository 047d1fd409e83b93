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

	"github.com/consensys/go-qasmsim/pkg/qasm/compiler"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	"github.com/consensys/go-qasmsim/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file1.qasm file2.qasm ...",
	Short: "check QASM programs are well-formed.",
	Long: `Check that each of the given QASM programs compiles and expands without error,
without simulating them.  Optionally, the expanded circuit is printed.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			exitCode    = 0
			showCircuit = GetFlag(cmd, "circuit")
		)
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		for _, filename := range args {
			exitCode = max(exitCode, checkFile(filename, showCircuit))
		}
		//
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// Check a single file, returning the exit code determined by any errors
// arising.
func checkFile(filename string, showCircuit bool) int {
	srcfiles, err := source.ReadFiles(filename)
	//
	if err != nil {
		fmt.Println(err)
		return 2
	}
	//
	program, srcmaps, errors := compiler.Compile(srcfiles...)
	//
	if len(errors) != 0 {
		for _, err := range errors {
			printSyntaxError(&err)
		}
		//
		return 3
	}
	//
	circuit, err := interpreter.Expand(program)
	//
	if err != nil {
		printRuntimeError(err, srcmaps)
		return 4
	}
	//
	log.Debug(fmt.Sprintf("%s: %d qubits, %d steps", filename, circuit.Layout.Qubits(), len(circuit.Steps)))
	//
	if showCircuit {
		for _, step := range circuit.Steps {
			fmt.Println(step.String())
		}
	}
	//
	return 0
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("circuit", false, "print the expanded circuit")
}
