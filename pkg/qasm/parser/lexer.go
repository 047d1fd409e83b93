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
package parser

import (
	"github.com/consensys/go-qasmsim/pkg/util/source"
	"github.com/consensys/go-qasmsim/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// COMMENT signals "// ... \n"
const COMMENT uint = 2

// LBRACE signals "("
const LBRACE uint = 3

// RBRACE signals ")"
const RBRACE uint = 4

// LCURLY signals "{"
const LCURLY uint = 5

// RCURLY signals "}"
const RCURLY uint = 6

// LSQUARE signals "["
const LSQUARE uint = 7

// RSQUARE signals "]"
const RSQUARE uint = 8

// COMMA signals ","
const COMMA uint = 9

// SEMICOLON signals ";"
const SEMICOLON uint = 10

// NUMBER signals an integer or real number
const NUMBER uint = 11

// STRING signals a quoted string
const STRING uint = 12

// IDENTIFIER signals a register, gate or parameter name
const IDENTIFIER uint = 20

// KEYWORD_OPENQASM signals the version header
const KEYWORD_OPENQASM uint = 21

// KEYWORD_INCLUDE signals an include statement
const KEYWORD_INCLUDE uint = 22

// KEYWORD_QREG signals a quantum register declaration
const KEYWORD_QREG uint = 23

// KEYWORD_CREG signals a classical register declaration
const KEYWORD_CREG uint = 24

// KEYWORD_GATE signals a gate declaration
const KEYWORD_GATE uint = 25

// KEYWORD_OPAQUE signals an opaque gate declaration
const KEYWORD_OPAQUE uint = 26

// KEYWORD_MEASURE signals a measurement
const KEYWORD_MEASURE uint = 27

// KEYWORD_RESET signals a reset
const KEYWORD_RESET uint = 28

// KEYWORD_BARRIER signals a barrier
const KEYWORD_BARRIER uint = 29

// KEYWORD_IF signals a conditional
const KEYWORD_IF uint = 30

// KEYWORD_PI signals the constant pi
const KEYWORD_PI uint = 31

// KEYWORD_U signals the builtin single qubit unitary
const KEYWORD_U uint = 32

// KEYWORD_CX signals the builtin controlled-not
const KEYWORD_CX uint = 33

// RIGHTARROW signals "->"
const RIGHTARROW uint = 40

// EQUALS_EQUALS signals "=="
const EQUALS_EQUALS uint = 41

// ADD signals "+"
const ADD uint = 42

// SUB signals "-"
const SUB uint = 43

// MUL signals "*"
const MUL uint = 44

// DIV signals "/"
const DIV uint = 45

// POW signals "^"
const POW uint = 46

// Rule for describing whitespace
var whitespace = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\r'), lex.Unit('\n')))

var identifierStart = lex.Or(
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier = lex.And(identifierStart, identifierRest)


// Comments start with "//" and continue until a newline or EOF.
var comment = lex.And(lex.Unit('/', '/'), lex.Until('\n'))

// Keywords must not be immediately followed by identifier characters.
func keyword(word string) lex.Scanner[rune] {
	return lex.Word(word, identifierRest)
}

// lexing rules
var rules = []lex.LexRule[rune]{
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('{'), LCURLY),
	lex.Rule(lex.Unit('}'), RCURLY),
	lex.Rule(lex.Unit('['), LSQUARE),
	lex.Rule(lex.Unit(']'), RSQUARE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit(';'), SEMICOLON),
	lex.Rule(lex.Unit('-', '>'), RIGHTARROW),
	lex.Rule(lex.Unit('=', '='), EQUALS_EQUALS),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(lex.Unit('^'), POW),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Scanner[rune](number), NUMBER),
	lex.Rule(lex.Scanner[rune](strung), STRING),
	lex.Rule(keyword("OPENQASM"), KEYWORD_OPENQASM),
	lex.Rule(keyword("include"), KEYWORD_INCLUDE),
	lex.Rule(keyword("qreg"), KEYWORD_QREG),
	lex.Rule(keyword("creg"), KEYWORD_CREG),
	lex.Rule(keyword("gate"), KEYWORD_GATE),
	lex.Rule(keyword("opaque"), KEYWORD_OPAQUE),
	lex.Rule(keyword("measure"), KEYWORD_MEASURE),
	lex.Rule(keyword("reset"), KEYWORD_RESET),
	lex.Rule(keyword("barrier"), KEYWORD_BARRIER),
	lex.Rule(keyword("if"), KEYWORD_IF),
	lex.Rule(keyword("pi"), KEYWORD_PI),
	lex.Rule(keyword("U"), KEYWORD_U),
	lex.Rule(keyword("CX"), KEYWORD_CX),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Scanner for strings in double quotes, which may be empty.
func strung(items []rune) uint {
	if len(items) == 0 || items[0] != '"' {
		return 0
	}
	//
	for i := 1; i < len(items); i++ {
		if items[i] == '"' {
			return uint(i + 1)
		}
	}
	// unterminated
	return 0
}

// Scanner for integer and real literals, such as "2", "2.0", "1." and ".5e-3".
func number(items []rune) uint {
	var (
		n = len(items)
		i = digits(items, 0)
	)
	//
	if i < n && items[i] == '.' {
		j := digits(items, i+1)
		// Must have a digit on at least one side of the point
		if i == 0 && j == 1 {
			return 0
		}
		//
		i = j
	} else if i == 0 {
		return 0
	}
	// Optional exponent
	if i < n && (items[i] == 'e' || items[i] == 'E') {
		k := i + 1
		//
		if k < n && (items[k] == '+' || items[k] == '-') {
			k++
		}
		//
		if m := digits(items, k); m > k {
			i = m
		}
	}
	//
	return uint(i)
}

func digits(items []rune, start int) int {
	for start < len(items) && '0' <= items[start] && items[start] <= '9' {
		start++
	}
	//
	return start
}

// Lex a given source file into a sequence of zero or more tokens, along with
// any syntax errors arising.  Whitespace and comments are removed.
func Lex(srcfile source.File) ([]lex.Token, []source.SyntaxError) {
	lexer := lex.NewLexer(rules...).Discard(WHITESPACE, COMMENT)
	//
	tokens, unmatched := lexer.Tokenize(srcfile.Contents())
	//
	if unmatched.Length() != 0 {
		err := srcfile.SyntaxError(unmatched, "unknown text encountered")
		return nil, []source.SyntaxError{*err}
	}
	//
	return tokens, nil
}
