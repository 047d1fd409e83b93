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
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// TEXT_FORMAT reports results in a human readable form.
const TEXT_FORMAT = "text"

// JSON_FORMAT reports results as a single JSON object.
const JSON_FORMAT = "json"

// DEFAULT_MAX_QUBITS is the default limit on the number of simulated qubits.
const DEFAULT_MAX_QUBITS = statevector.DEFAULT_MAX_QUBITS

// Config determines how a program is simulated and how results are reported.
type Config struct {
	// Number of shots used to build histograms (0 for none).
	Shots uint
	// Seed for sampling measurements.
	Seed uint64
	// Maximum number of qubits which can be simulated.
	MaxQubits uint
	// Output format (either "text" or "json").
	Format string
	// Whether to report the final state vector.
	StateVector bool
	// Whether to report the probability of each basis state.
	Probabilities bool
}

// Default returns the configuration used in the absence of a profile or any
// command-line flags.
func Default() Config {
	return Config{
		Shots:     0,
		Seed:      0,
		MaxQubits: DEFAULT_MAX_QUBITS,
		Format:    TEXT_FORMAT,
	}
}

// Validate checks a configuration makes sense.
func (c Config) Validate() error {
	if c.Format != TEXT_FORMAT && c.Format != JSON_FORMAT {
		return fmt.Errorf("unknown output format \"%s\" (expected %s or %s)", c.Format, TEXT_FORMAT, JSON_FORMAT)
	} else if c.MaxQubits == 0 {
		return fmt.Errorf("maximum number of qubits must be positive")
	} else if c.MaxQubits > statevector.MAX_QUBITS {
		return fmt.Errorf("maximum number of qubits cannot exceed %d", statevector.MAX_QUBITS)
	}
	//
	return nil
}

// Profile represents the contents of a configuration file.  Every setting is
// optional, and those which are given override the defaults.
type Profile struct {
	Simulation *SimulationBlock `hcl:"simulation,block"`
	Output     *OutputBlock     `hcl:"output,block"`
}

// SimulationBlock holds the "simulation" settings of a profile.
type SimulationBlock struct {
	Shots     *uint   `hcl:"shots,optional"`
	Seed      *uint64 `hcl:"seed,optional"`
	MaxQubits *uint   `hcl:"max_qubits,optional"`
}

// OutputBlock holds the "output" settings of a profile.
type OutputBlock struct {
	Format        *string `hcl:"format,optional"`
	StateVector   *bool   `hcl:"statevector,optional"`
	Probabilities *bool   `hcl:"probabilities,optional"`
}

// Load a profile from a given HCL file.  Expressions within the file can refer
// to variables of the given environment (as returned by os.Environ) via the
// "env" object.
func Load(filename string, environ []string) (*Profile, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return ParseProfile(bytes, filename, environ)
}

// ParseProfile parses a profile from the given HCL source.
func ParseProfile(src []byte, filename string, environ []string) (*Profile, error) {
	var (
		parser  = hclparse.NewParser()
		profile Profile
	)
	//
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	//
	diags = gohcl.DecodeBody(file.Body, evalContext(environ), &profile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	//
	return &profile, nil
}

// Apply the settings given in this profile to a given configuration.
func (p *Profile) Apply(config Config) Config {
	if s := p.Simulation; s != nil {
		config.Shots = valueOr(s.Shots, config.Shots)
		config.Seed = valueOr(s.Seed, config.Seed)
		config.MaxQubits = valueOr(s.MaxQubits, config.MaxQubits)
	}
	//
	if o := p.Output; o != nil {
		config.Format = valueOr(o.Format, config.Format)
		config.StateVector = valueOr(o.StateVector, config.StateVector)
		config.Probabilities = valueOr(o.Probabilities, config.Probabilities)
	}
	//
	return config
}

func valueOr[T any](value *T, otherwise T) T {
	if value != nil {
		return *value
	}
	//
	return otherwise
}

// Construct an evaluation context where "env" is an object holding each
// variable of the given environment as a string.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	//
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			vars[key] = cty.StringVal(value)
		}
	}
	//
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
