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

	"github.com/consensys/go-qasmsim/pkg/config"
	"github.com/consensys/go-qasmsim/pkg/qasm/interpreter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] file.qasm",
	Short: "simulate a QASM program.",
	Long: `Simulate a given QASM program, reporting the final values of all classical
registers.  Optionally, the final state (or probabilities) can be reported, and
the program can be rerun a number of times to build a histogram of outcomes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := loadConfig(cmd)
		// Compile source files, or print errors
		program, srcmaps := CompileSourceFiles(args)
		// Expand program, or print errors
		circuit := ExpandProgram(program, srcmaps)
		//
		options := interpreter.SimulationOptions{Shots: cfg.Shots, Seed: cfg.Seed, MaxQubits: cfg.MaxQubits}
		//
		execution, err := interpreter.Simulate(circuit, options)
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
		//
		styled := term.IsTerminal(int(os.Stdout.Fd()))
		//
		if err := writeExecution(os.Stdout, circuit, execution, cfg, styled); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	},
}

// Determine the configuration for this run.  Settings from the profile (if
// given) override the defaults, and flags which are explicitly given override
// both.
func loadConfig(cmd *cobra.Command) config.Config {
	var (
		cfg   = config.Default()
		flags = cmd.Flags()
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		profile, err := config.Load(filename, os.Environ())
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debug(fmt.Sprintf("loaded profile %s", filename))
		//
		cfg = profile.Apply(cfg)
	}
	//
	if flags.Changed("shots") {
		cfg.Shots = GetUint(cmd, "shots")
	}
	//
	if flags.Changed("seed") {
		cfg.Seed = GetUint64(cmd, "seed")
	}
	//
	if flags.Changed("max-qubits") {
		cfg.MaxQubits = GetUint(cmd, "max-qubits")
	}
	//
	if flags.Changed("format") {
		cfg.Format = GetString(cmd, "format")
	}
	//
	if flags.Changed("statevector") {
		cfg.StateVector = GetFlag(cmd, "statevector")
	}
	//
	if flags.Changed("probabilities") {
		cfg.Probabilities = GetFlag(cmd, "probabilities")
	}
	// Sanity check
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Uint("shots", 0, "number of shots used to build a histogram of outcomes")
	runCmd.Flags().Uint64("seed", 0, "seed for sampling measurement outcomes")
	runCmd.Flags().Uint("max-qubits", config.DEFAULT_MAX_QUBITS, "maximum number of qubits to simulate")
	runCmd.Flags().String("format", config.TEXT_FORMAT, "output format (text or json)")
	runCmd.Flags().Bool("statevector", false, "report the final state vector")
	runCmd.Flags().Bool("probabilities", false, "report the probability of each basis state")
	runCmd.Flags().String("config", "", "HCL profile from which to read settings")
}
