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
package lex

import (
	"slices"

	"github.com/consensys/go-qasmsim/pkg/util/source"
)

// Token is a classified range of the input.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule classifies any input accepted by its scanner with a given kind.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a lexing rule which classifies matching input with a given
// kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer splits an input sequence into tokens using an ordered list of rules.
// At each position the first matching rule wins, hence keywords must precede
// any identifier rule.  Tokens of a discarded kind (e.g. whitespace) are
// matched but not returned.
type Lexer[T any] struct {
	rules   []LexRule[T]
	discard []uint
}

// NewLexer constructs a lexer from a given list of rules.
func NewLexer[T any](rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{rules, nil}
}

// Discard marks zero or more token kinds to be dropped from the output.
func (p *Lexer[T]) Discard(kinds ...uint) *Lexer[T] {
	p.discard = append(p.discard, kinds...)
	return p
}

// Tokenize splits a given input into tokens.  The second return identifies any
// suffix of the input which no rule could match, and is empty on success.  A
// rule matching the empty remainder (e.g. Eof) yields a final zero-width
// token.
func (p *Lexer[T]) Tokenize(items []T) ([]Token, source.Span) {
	var tokens []Token
	//
	for index := 0; index <= len(items); {
		kind, n := p.match(items[index:])
		//
		if n == 0 && index == len(items) {
			break
		} else if n == 0 {
			return tokens, source.NewSpan(index, len(items))
		}
		// Eof scanners overshoot the input
		end := min(len(items), index+int(n))
		//
		if !slices.Contains(p.discard, kind) {
			tokens = append(tokens, Token{kind, source.NewSpan(index, end)})
		}
		//
		if index == len(items) {
			break
		}
		//
		index = end
	}
	//
	return tokens, source.NewSpan(len(items), len(items))
}

// Find the first rule matching the start of the input, returning its kind and
// the number of items matched (or zero if none matched).
func (p *Lexer[T]) match(items []T) (uint, uint) {
	for _, r := range p.rules {
		if n := r.scanner(items); n > 0 {
			return r.kind, n
		}
	}
	//
	return 0, 0
}
