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
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path"
	"strings"

	util "github.com/consensys/go-qasmsim/pkg/cmd"
	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("qubits", 3, "Number of qubits")
	rootCmd.Flags().Uint("min-gates", 1, "Minimum number of gates")
	rootCmd.Flags().Uint("max-gates", 8, "Maximum number of gates")
	rootCmd.Flags().Uint("count", 10, "Number of programs to generate")
	rootCmd.Flags().Uint64("seed", 0, "Seed for the random source")
	rootCmd.Flags().String("dir", "testdata/valid", "Directory to write programs into")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] model",
	Short: "Test generation utility for qasmsim.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var cfg TestGenConfig
		// Lookup model
		cfg.model = findModel(args[0])
		cfg.qubits = util.GetUint(cmd, "qubits")
		cfg.minGates = util.GetUint(cmd, "min-gates")
		cfg.maxGates = util.GetUint(cmd, "max-gates")
		cfg.count = util.GetUint(cmd, "count")
		seed := util.GetUint64(cmd, "seed")
		dir := util.GetString(cmd, "dir")
		//
		if cfg.qubits < 3 || cfg.qubits > statevector.DEFAULT_MAX_QUBITS || cfg.minGates > cfg.maxGates {
			fmt.Printf("invalid configuration (between 3 and %d qubits required)\n", statevector.DEFAULT_MAX_QUBITS)
			os.Exit(2)
		}
		//
		rng := rand.New(rand.NewPCG(seed, seed))
		//
		for i := range cfg.count {
			program := generateProgram(cfg, rng)
			filename := path.Join(dir, fmt.Sprintf("%s_%d.auto.qasm", cfg.model.Name, i))
			//
			if err := os.WriteFile(filename, []byte(program.String()), 0644); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
		// Log what happened
		log.Infof("Wrote %d programs to %s\n", cfg.count, dir)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	model    Model
	qubits   uint
	minGates uint
	maxGates uint
	count    uint
}

// Model represents a family of generated programs, along with a hard-coded
// oracle which determines their outcome without simulating them.
type Model struct {
	// Name of the model in question
	Name string
	// Determines whether or not qubits are measured at the end.
	Measure bool
}

var models []Model = []Model{
	{"reversible", false},
	{"measured", true},
}

func findModel(name string) Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	//
	panic(fmt.Sprintf("unknown model \"%s\"", name))
}

// Gate is a classical reversible gate from the standard library, applied to
// one or more distinct qubits.
type Gate struct {
	Name   string
	Qubits []uint
}

// Program is a randomly generated circuit of reversible gates.
type Program struct {
	Model  Model
	Qubits uint
	Gates  []Gate
}

// Generate a random program for the given configuration.
func generateProgram(cfg TestGenConfig, rng *rand.Rand) Program {
	var (
		n     = cfg.minGates + rng.UintN(cfg.maxGates-cfg.minGates+1)
		gates = make([]Gate, n)
	)
	//
	for i := range gates {
		switch rng.IntN(4) {
		case 0:
			gates[i] = Gate{"x", pickQubits(cfg.qubits, 1, rng)}
		case 1:
			gates[i] = Gate{"cx", pickQubits(cfg.qubits, 2, rng)}
		case 2:
			gates[i] = Gate{"swap", pickQubits(cfg.qubits, 2, rng)}
		default:
			gates[i] = Gate{"ccx", pickQubits(cfg.qubits, 3, rng)}
		}
	}
	//
	return Program{cfg.model, cfg.qubits, gates}
}

// Pick n distinct qubits at random.
func pickQubits(qubits uint, n int, rng *rand.Rand) []uint {
	perm := rng.Perm(int(qubits))
	picked := make([]uint, n)
	//
	for i := range picked {
		picked[i] = uint(perm[i])
	}
	//
	return picked
}

// Outcome determines the final basis state of a program, by treating each
// qubit as a classical bit.
func (p *Program) Outcome() uint64 {
	var state uint64
	//
	bit := func(q uint) bool { return state&(1<<q) != 0 }
	flip := func(q uint) { state ^= 1 << q }
	//
	for _, g := range p.Gates {
		switch g.Name {
		case "x":
			flip(g.Qubits[0])
		case "cx":
			if bit(g.Qubits[0]) {
				flip(g.Qubits[1])
			}
		case "ccx":
			if bit(g.Qubits[0]) && bit(g.Qubits[1]) {
				flip(g.Qubits[2])
			}
		case "swap":
			if bit(g.Qubits[0]) != bit(g.Qubits[1]) {
				flip(g.Qubits[0])
				flip(g.Qubits[1])
			}
		default:
			panic(fmt.Sprintf("unknown gate \"%s\"", g.Name))
		}
	}
	//
	return state
}

func (p *Program) String() string {
	var (
		sb      strings.Builder
		outcome = fmt.Sprintf("%0*b", int(p.Qubits), p.Outcome())
	)
	// Expectations
	fmt.Fprintf(&sb, "//prob %s 1\n", outcome)
	//
	if p.Model.Measure {
		fmt.Fprintf(&sb, "//memory c %s\n", outcome)
	}
	//
	fmt.Fprintf(&sb, "//qubits %d\n", p.Qubits)
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", p.Qubits)
	//
	if p.Model.Measure {
		fmt.Fprintf(&sb, "creg c[%d];\n", p.Qubits)
	}
	//
	for _, g := range p.Gates {
		args := make([]string, len(g.Qubits))
		//
		for i, q := range g.Qubits {
			args[i] = fmt.Sprintf("q[%d]", q)
		}
		//
		fmt.Fprintf(&sb, "%s %s;\n", g.Name, strings.Join(args, ","))
	}
	//
	if p.Model.Measure {
		sb.WriteString("measure q -> c;\n")
	}
	//
	return sb.String()
}
