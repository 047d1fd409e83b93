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
	"fmt"
	"math"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
)

// Environment binds the names of real parameters to their values.  At the top
// level of a program the environment is empty, whilst within a gate body it
// holds exactly the real parameters of that gate.
type Environment map[string]float64

// NewEnvironment binds the given names positionally to the given values.
func NewEnvironment(names []string, values []float64) Environment {
	env := make(Environment, len(names))
	//
	for i, n := range names {
		env[n] = values[i]
	}
	//
	return env
}

// EvalAll evaluates a sequence of expressions in this environment.
func (env Environment) EvalAll(exprs []ast.Expr) ([]float64, error) {
	values := make([]float64, len(exprs))
	//
	for i, e := range exprs {
		val, err := env.Eval(e)
		if err != nil {
			return nil, err
		}
		//
		values[i] = val
	}
	//
	return values, nil
}

// Eval evaluates a given expression in this environment, producing an error if
// it refers to a parameter not in scope.
func (env Environment) Eval(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case *ast.Real:
		return e.Value, nil
	case *ast.Pi:
		return math.Pi, nil
	case *ast.Parameter:
		if val, ok := env[e.Name]; ok {
			return val, nil
		}
		//
		return 0, NewRuntimeError(SymbolNotFound, e.Name)
	case *ast.Negate:
		val, err := env.Eval(e.Operand)
		//
		return -val, err
	case *ast.Binary:
		return env.evalBinary(e)
	case *ast.Call:
		val, err := env.Eval(e.Operand)
		if err != nil {
			return 0, err
		}
		//
		return evalFunction(e.Fn, val), nil
	default:
		panic(fmt.Sprintf("unknown expression %s", expr.String()))
	}
}

func (env Environment) evalBinary(e *ast.Binary) (float64, error) {
	lhs, err := env.Eval(e.Left)
	if err != nil {
		return 0, err
	}
	//
	rhs, err := env.Eval(e.Right)
	if err != nil {
		return 0, err
	}
	//
	switch e.Op {
	case ast.ADD:
		return lhs + rhs, nil
	case ast.SUB:
		return lhs - rhs, nil
	case ast.MUL:
		return lhs * rhs, nil
	case ast.DIV:
		return lhs / rhs, nil
	case ast.POW:
		return math.Pow(lhs, rhs), nil
	default:
		panic(fmt.Sprintf("unknown operator %s", e.Op))
	}
}

func evalFunction(fn ast.Function, val float64) float64 {
	switch fn {
	case ast.SIN:
		return math.Sin(val)
	case ast.COS:
		return math.Cos(val)
	case ast.TAN:
		return math.Tan(val)
	case ast.EXP:
		return math.Exp(val)
	case ast.LN:
		return math.Log(val)
	case ast.SQRT:
		return math.Sqrt(val)
	default:
		panic(fmt.Sprintf("unknown function %s", fn))
	}
}
