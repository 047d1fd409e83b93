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
	"math/rand/v2"

	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
	"github.com/consensys/go-qasmsim/pkg/util"
)

// SimulationOptions configures the simulation of a circuit.
type SimulationOptions struct {
	// Number of additional runs used to build a histogram of classical
	// outcomes.  If zero, no histogram is produced.
	Shots uint
	// Seed for the random source used to sample measurements.
	Seed uint64
	// Maximum number of qubits which can be simulated.
	MaxQubits uint
}

// DefaultSimulationOptions returns the options used in the absence of any
// configuration.
func DefaultSimulationOptions() SimulationOptions {
	return SimulationOptions{0, 0, statevector.DEFAULT_MAX_QUBITS}
}

// Execution captures the outcome of simulating a circuit.
type Execution struct {
	// Final state of the first run.
	StateVector *statevector.StateVector
	// Classical register values at the end of the first run.
	Memory map[string]uint64
	// For each classical register, the number of times each value was observed
	// across all shots (nil if no shots were requested).
	Histogram map[string]map[uint64]uint
	// Number of shots taken.
	Shots uint
}

// Probabilities returns the probability of observing each basis state in the
// final state of the first run.
func (p *Execution) Probabilities() []float64 {
	return p.StateVector.Probabilities()
}

// Simulate a given circuit.  The circuit is run once to determine the final
// state and classical memory.  If shots are requested, the circuit is then
// rerun that many times to build a histogram of classical outcomes.  The
// outcome is deterministic for a given seed.
func Simulate(circuit *Circuit, options SimulationOptions) (*Execution, error) {
	var (
		stats = util.NewPerfStats()
		rng   = rand.New(rand.NewPCG(options.Seed, options.Seed))
	)
	//
	state, memory, err := circuit.Run(rng, options.MaxQubits)
	if err != nil {
		return nil, err
	}
	//
	execution := &Execution{StateVector: state, Memory: memory, Shots: options.Shots}
	//
	if options.Shots > 0 {
		execution.Histogram = make(map[string]map[uint64]uint)
		//
		for _, reg := range circuit.Layout.ClassicalRegisters() {
			execution.Histogram[reg.Name] = make(map[uint64]uint)
		}
		//
		for range options.Shots {
			_, memory, err := circuit.Run(rng, options.MaxQubits)
			if err != nil {
				return nil, err
			}
			//
			for name, value := range memory {
				execution.Histogram[name][value]++
			}
		}
	}
	//
	stats.Log("Simulation")
	//
	return execution, nil
}

// Run a circuit once from the initial state, producing the final state and the
// values of all classical registers.
func (p *Circuit) Run(rng statevector.Random, maxQubits uint) (*statevector.StateVector, map[string]uint64,
	error) {
	state, err := statevector.New(p.Layout.Qubits(), maxQubits)
	if err != nil {
		return nil, nil, err
	}
	//
	memory := make(map[string]uint64)
	//
	for _, reg := range p.Layout.ClassicalRegisters() {
		memory[reg.Name] = 0
	}
	//
	for _, step := range p.Steps {
		if step.Condition != nil && memory[step.Condition.Register] != step.Condition.Value {
			continue
		}
		//
		switch insn := step.Instruction.(type) {
		case *UGate:
			state.ApplyU(insn.Theta, insn.Phi, insn.Lambda, p.Layout.Qubit(insn.Target))
		case *CXGate:
			state.ApplyCX(p.Layout.Qubit(insn.Control), p.Layout.Qubit(insn.Target))
		case *Measurement:
			var (
				bit   = uint64(1) << insn.Target.Index
				value = memory[insn.Target.Register] &^ bit
			)
			//
			if state.Measure(p.Layout.Qubit(insn.Source), rng) == 1 {
				value |= bit
			}
			//
			memory[insn.Target.Register] = value
		case *ResetQubit:
			state.Reset(p.Layout.Qubit(insn.Target), rng)
		case *BarrierQubits:
			// no effect
		}
	}
	//
	return state, memory, nil
}
