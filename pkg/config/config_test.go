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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-qasmsim/pkg/qasm/statevector"
)

func Test_Config_Default(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration invalid: %s", err)
	}
}

func Test_Config_Validate(t *testing.T) {
	config := Default()
	config.Format = "xml"
	//
	if err := config.Validate(); err == nil {
		t.Errorf("expected error for unknown format")
	}
	//
	config = Default()
	config.MaxQubits = 0
	//
	if err := config.Validate(); err == nil {
		t.Errorf("expected error for zero qubits")
	}
	//
	for _, n := range []uint{statevector.MAX_QUBITS + 1, 63, 64, 100} {
		config.MaxQubits = n
		//
		if err := config.Validate(); err == nil {
			t.Errorf("expected error for %d qubits", n)
		}
	}
	//
	config.MaxQubits = statevector.MAX_QUBITS
	//
	if err := config.Validate(); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func Test_Profile_MaxQubitsTooLarge(t *testing.T) {
	profile := parseProfile(t, "simulation {\n  max_qubits = 64\n}", nil)
	//
	if err := profile.Apply(Default()).Validate(); err == nil {
		t.Errorf("expected error for 64 qubits")
	}
}

func Test_Profile_Full(t *testing.T) {
	profile := parseProfile(t, `
simulation {
  shots      = 1024
  seed       = 7
  max_qubits = 20
}
output {
  format        = "json"
  statevector   = true
  probabilities = false
}`, nil)
	//
	config := profile.Apply(Default())
	expected := Config{Shots: 1024, Seed: 7, MaxQubits: 20, Format: JSON_FORMAT, StateVector: true}
	//
	if config != expected {
		t.Errorf("expected %v, got %v", expected, config)
	}
}

func Test_Profile_Partial(t *testing.T) {
	profile := parseProfile(t, `output { probabilities = true }`, nil)
	//
	config := profile.Apply(Default())
	expected := Default()
	expected.Probabilities = true
	//
	if config != expected {
		t.Errorf("expected %v, got %v", expected, config)
	}
}

func Test_Profile_Empty(t *testing.T) {
	profile := parseProfile(t, "", nil)
	//
	if config := profile.Apply(Default()); config != Default() {
		t.Errorf("empty profile changed configuration: %v", config)
	}
}

func Test_Profile_Environment(t *testing.T) {
	profile := parseProfile(t, `simulation {
  shots = env.QASM_SHOTS
  seed  = env.QASM_SEED * 2
}`, []string{"QASM_SHOTS=64", "QASM_SEED=21", "OTHER=a=b"})
	//
	config := profile.Apply(Default())
	//
	if config.Shots != 64 || config.Seed != 42 {
		t.Errorf("unexpected configuration %v", config)
	}
}

func Test_Profile_Invalid(t *testing.T) {
	checkProfileError(t, `simulation { shots = }`, nil)
	checkProfileError(t, `simulation { colour = "red" }`, nil)
	checkProfileError(t, `noise { }`, nil)
	checkProfileError(t, `simulation { shots = "many" }`, nil)
	checkProfileError(t, `simulation { shots = env.MISSING }`, nil)
}

func Test_Profile_Load(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "profile.hcl")
	//
	if err := os.WriteFile(filename, []byte(`simulation { shots = 3 }`), 0o600); err != nil {
		t.Fatal(err)
	}
	//
	profile, err := Load(filename, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	} else if config := profile.Apply(Default()); config.Shots != 3 {
		t.Errorf("expected 3 shots, got %d", config.Shots)
	}
	//
	if _, err := Load(filepath.Join(t.TempDir(), "missing.hcl"), nil); err == nil {
		t.Errorf("expected error loading missing file")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func parseProfile(t *testing.T, src string, environ []string) *Profile {
	t.Helper()
	//
	profile, err := ParseProfile([]byte(src), "test.hcl", environ)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	//
	return profile
}

func checkProfileError(t *testing.T, src string, environ []string) {
	t.Helper()
	//
	if _, err := ParseProfile([]byte(src), "test.hcl", environ); err == nil {
		t.Errorf("%q: expected error", src)
	}
}
