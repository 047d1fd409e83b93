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
package statevector

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DEFAULT_MAX_QUBITS is the default limit on the number of qubits simulated.
// The memory required doubles with each qubit.
const DEFAULT_MAX_QUBITS = 24

// MAX_QUBITS is the largest number of qubits which can be simulated, regardless
// of any configured limit.  A state of this size occupies 16GiB.
const MAX_QUBITS = 30

// Random is a source of uniformly distributed values in [0,1), used to sample
// measurement outcomes.
type Random interface {
	Float64() float64
}

// StateVector holds the 2^n complex amplitudes of an n-qubit system.  Basis
// states are indexed little-endian, hence qubit 0 is the least significant bit
// of an index.
type StateVector struct {
	qubits     uint
	amplitudes []complex128
}

// New constructs the state |0...0> over a given number of qubits.  This fails
// if the number of qubits exceeds either the given limit or MAX_QUBITS.
func New(qubits uint, limit uint) (*StateVector, error) {
	if limit > MAX_QUBITS {
		limit = MAX_QUBITS
	}
	//
	if qubits > limit {
		return nil, fmt.Errorf("too many qubits (%d exceeds limit of %d)", qubits, limit)
	}
	//
	amplitudes := make([]complex128, 1<<qubits)
	amplitudes[0] = 1
	//
	return &StateVector{qubits, amplitudes}, nil
}

// Qubits returns the number of qubits in this state.
func (p *StateVector) Qubits() uint {
	return p.qubits
}

// Amplitudes returns the amplitudes of this state.  The returned slice must not
// be modified.
func (p *StateVector) Amplitudes() []complex128 {
	return p.amplitudes
}

// Probabilities returns the probability of observing each basis state.
func (p *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(p.amplitudes))
	//
	for i, a := range p.amplitudes {
		probs[i] = Norm(a)
	}
	//
	return probs
}

// Clone returns an independent copy of this state.
func (p *StateVector) Clone() *StateVector {
	amplitudes := make([]complex128, len(p.amplitudes))
	copy(amplitudes, p.amplitudes)
	//
	return &StateVector{p.qubits, amplitudes}
}

// ApplyU applies the single qubit unitary U(theta,phi,lambda) to a given qubit,
// where:
//
//	U = [ cos(θ/2)          -e^(iλ)sin(θ/2)     ]
//	    [ e^(iφ)sin(θ/2)     e^(i(φ+λ))cos(θ/2) ]
func (p *StateVector) ApplyU(theta, phi, lambda float64, target uint) {
	var (
		cos = complex(math.Cos(theta/2), 0)
		sin = complex(math.Sin(theta/2), 0)
		u00 = cos
		u01 = -cmplx.Exp(complex(0, lambda)) * sin
		u10 = cmplx.Exp(complex(0, phi)) * sin
		u11 = cmplx.Exp(complex(0, phi+lambda)) * cos
		bit = p.mask(target)
	)
	//
	for i := range p.amplitudes {
		if i&bit == 0 {
			a0, a1 := p.amplitudes[i], p.amplitudes[i|bit]
			p.amplitudes[i] = u00*a0 + u01*a1
			p.amplitudes[i|bit] = u10*a0 + u11*a1
		}
	}
}

// ApplyCX applies a controlled-NOT with a given control and target qubit.
func (p *StateVector) ApplyCX(control, target uint) {
	var (
		cbit = p.mask(control)
		tbit = p.mask(target)
	)
	//
	if cbit == tbit {
		panic("control and target must differ")
	}
	//
	for i := range p.amplitudes {
		if i&cbit != 0 && i&tbit == 0 {
			p.amplitudes[i], p.amplitudes[i|tbit] = p.amplitudes[i|tbit], p.amplitudes[i]
		}
	}
}

// Measure a given qubit in the computational basis, collapsing the state
// accordingly.  The outcome is returned.
func (p *StateVector) Measure(target uint, rng Random) uint {
	var (
		bit = p.mask(target)
		one = p.probabilityOfOne(bit)
	)
	//
	if rng.Float64() < one {
		p.collapse(bit, bit, one)
		return 1
	}
	//
	p.collapse(bit, 0, 1-one)
	//
	return 0
}

// Reset a given qubit to |0>.  This is equivalent to measuring the qubit and
// then flipping it if the outcome was 1.
func (p *StateVector) Reset(target uint, rng Random) {
	if p.Measure(target, rng) == 1 {
		p.ApplyU(math.Pi, 0, math.Pi, target)
	}
}

// ProbabilityOfOne returns the probability that measuring a given qubit yields
// 1.
func (p *StateVector) ProbabilityOfOne(target uint) float64 {
	return p.probabilityOfOne(p.mask(target))
}

func (p *StateVector) probabilityOfOne(bit int) float64 {
	var prob float64
	//
	for i, a := range p.amplitudes {
		if i&bit != 0 {
			prob += Norm(a)
		}
	}
	//
	return prob
}

// Zero out amplitudes inconsistent with the observed value of a given bit, and
// renormalise those remaining.
func (p *StateVector) collapse(bit int, value int, prob float64) {
	scale := complex(1/math.Sqrt(prob), 0)
	//
	for i := range p.amplitudes {
		if i&bit == value {
			p.amplitudes[i] *= scale
		} else {
			p.amplitudes[i] = 0
		}
	}
}

func (p *StateVector) mask(qubit uint) int {
	if qubit >= p.qubits {
		panic(fmt.Sprintf("invalid qubit %d", qubit))
	}
	//
	return 1 << qubit
}

// Norm returns the squared magnitude of an amplitude, which is the probability
// of observing the corresponding basis state.
func Norm(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
