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
	"slices"
	"strconv"

	"github.com/consensys/go-qasmsim/pkg/qasm/ast"
	"github.com/consensys/go-qasmsim/pkg/util/source"
	"github.com/consensys/go-qasmsim/pkg/util/source/lex"
)

// UnlinkedSourceFile captures a source file has been successfully parsed but
// which has not yet been linked.  As such, it may still contain include
// statements, or declarations which clash with those of other files.
type UnlinkedSourceFile struct {
	// Version declared in the file header, or nil if the file has no header
	// (as is the case for library files).  When present, this is mapped to the
	// span of the header.
	Version *string
	// Statements making up this file, in order.
	Statements []ast.Statement
	// Mapping of statements back to the source file.
	SourceMap source.Map[any]
}

// Parse accepts a given source file representing a QASM program (or library)
// and parses it into a sequence of statements.
func Parse(srcfile *source.File) (UnlinkedSourceFile, []source.SyntaxError) {
	parser := NewParser(srcfile)
	//
	return parser.Parse()
}

// ============================================================================
// Parser
// ============================================================================

// Parser is a recursive descent parser for OpenQASM 2.0.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Source mapping
	srcmap *source.Map[any]
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	// Construct (initially empty) source mapping
	srcmap := source.NewSourceMap[any](*srcfile)
	//
	return &Parser{srcfile, nil, srcmap, 0}
}

// Parse the given source file into a sequence of zero or more statements
// and/or some number of syntax errors.
func (p *Parser) Parse() (UnlinkedSourceFile, []source.SyntaxError) {
	var (
		item   UnlinkedSourceFile
		errors []source.SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(*p.srcfile); len(errors) > 0 {
		return item, errors
	}
	// Parse optional header
	if p.lookahead().Kind == KEYWORD_OPENQASM {
		var version string
		//
		if version, errors = p.parseHeader(); len(errors) > 0 {
			return item, errors
		}
		// Record span of header
		item.Version = &version
		p.srcmap.Put(item.Version, p.spanOf(0, p.index-1))
	}
	// Continue going until all consumed
	for p.lookahead().Kind != END_OF {
		var (
			start     = p.index
			lookahead = p.lookahead()
			stmt      ast.Statement
		)
		// Determine type of statement
		switch lookahead.Kind {
		case KEYWORD_OPENQASM:
			errors = p.syntaxErrors(lookahead, "misplaced version header")
		case KEYWORD_INCLUDE:
			stmt, errors = p.parseInclude()
		case KEYWORD_QREG, KEYWORD_CREG:
			stmt, errors = p.parseRegister()
		case KEYWORD_GATE:
			stmt, errors = p.parseGate()
		case KEYWORD_OPAQUE:
			stmt, errors = p.parseOpaque()
		case KEYWORD_IF:
			stmt, errors = p.parseConditional()
		default:
			var op ast.Operation[ast.Argument]
			//
			if op, errors = p.parseQuantumOperation(); len(errors) == 0 {
				stmt = &ast.QuantumStatement{Operation: op}
			}
		}
		//
		if len(errors) > 0 {
			return item, errors
		}
		//
		p.srcmap.Put(stmt, p.spanOf(start, p.index-1))
		//
		item.Statements = append(item.Statements, stmt)
	}
	// Copy over source map
	item.SourceMap = *p.srcmap
	//
	return item, nil
}

func (p *Parser) parseHeader() (string, []source.SyntaxError) {
	var (
		errs    []source.SyntaxError
		version lex.Token
	)
	//
	if _, errs = p.expect(KEYWORD_OPENQASM); len(errs) > 0 {
		return "", errs
	} else if version, errs = p.expect(NUMBER); len(errs) > 0 {
		return "", errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return "", errs
	}
	//
	return p.string(version), nil
}

func (p *Parser) parseInclude() (ast.Statement, []source.SyntaxError) {
	var (
		errs []source.SyntaxError
		tok  lex.Token
	)
	//
	if _, errs = p.expect(KEYWORD_INCLUDE); len(errs) > 0 {
		return nil, errs
	} else if tok, errs = p.expect(STRING); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	// Strip quotes
	str := p.string(tok)
	path := str[1 : len(str)-1]
	//
	if path == "" {
		return nil, p.syntaxErrors(tok, "empty include path")
	}
	//
	return &ast.Include{Path: path}, nil
}

func (p *Parser) parseRegister() (ast.Statement, []source.SyntaxError) {
	var (
		quantum = p.lookahead().Kind == KEYWORD_QREG
		errs    []source.SyntaxError
		name    string
		tok     lex.Token
		size    uint
	)
	// Skip over qreg / creg
	p.index++
	//
	if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(LSQUARE); len(errs) > 0 {
		return nil, errs
	} else if tok, errs = p.expect(NUMBER); len(errs) > 0 {
		return nil, errs
	} else if size, errs = p.natural(tok); len(errs) > 0 {
		return nil, errs
	} else if size == 0 {
		return nil, p.syntaxErrors(tok, "register size must be positive")
	} else if _, errs = p.expect(RSQUARE); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	//
	if quantum {
		return &ast.QuantumRegister{Name: name, Size: size}, nil
	}
	//
	return &ast.ClassicalRegister{Name: name, Size: size}, nil
}

func (p *Parser) parseGate() (ast.Statement, []source.SyntaxError) {
	var (
		decl *ast.GateDecl
		errs []source.SyntaxError
	)
	// Parse gate signature
	if _, errs = p.expect(KEYWORD_GATE); len(errs) > 0 {
		return nil, errs
	} else if decl, errs = p.parseGateSignature(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(LCURLY); len(errs) > 0 {
		return nil, errs
	}
	// Parse body until end of block
	for p.lookahead().Kind != RCURLY {
		var (
			start = p.index
			op    ast.Operation[ast.Identifier]
		)
		//
		if op, errs = p.parseGateOperation(); len(errs) > 0 {
			return nil, errs
		}
		//
		p.srcmap.Put(op, p.spanOf(start, p.index-1))
		//
		decl.Body = append(decl.Body, op)
	}
	// Advance past "}"
	p.match(RCURLY)
	//
	return decl, nil
}

func (p *Parser) parseOpaque() (ast.Statement, []source.SyntaxError) {
	var (
		decl *ast.GateDecl
		errs []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_OPAQUE); len(errs) > 0 {
		return nil, errs
	} else if decl, errs = p.parseGateSignature(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	//
	decl.Opaque = true
	//
	return decl, nil
}

// Parse the name, optional real parameters and formal quantum arguments of a
// gate declaration.  Names must be distinct within each list, as they become
// the keys of the binding tables constructed when the gate is invoked.
func (p *Parser) parseGateSignature() (*ast.GateDecl, []source.SyntaxError) {
	var (
		name   string
		params []lex.Token
		args   []lex.Token
		errs   []source.SyntaxError
	)
	//
	if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	// Parse optional parameters
	if p.match(LBRACE) {
		if p.lookahead().Kind != RBRACE {
			if params, errs = parseCommaSeparated(p, p.parseIdentifierToken); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		if _, errs = p.expect(RBRACE); len(errs) > 0 {
			return nil, errs
		}
	}
	// Parse formal arguments
	if args, errs = parseCommaSeparated(p, p.parseIdentifierToken); len(errs) > 0 {
		return nil, errs
	} else if errs = p.checkDistinct(params, "duplicate parameter"); len(errs) > 0 {
		return nil, errs
	} else if errs = p.checkDistinct(args, "duplicate argument"); len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.GateDecl{Name: name, Params: p.strings(params), Args: p.strings(args)}, nil
}

func (p *Parser) parseGateOperation() (ast.Operation[ast.Identifier], []source.SyntaxError) {
	var (
		lookahead = p.lookahead()
		op        ast.Operation[ast.Identifier]
		errs      []source.SyntaxError
	)
	//
	switch lookahead.Kind {
	case KEYWORD_U:
		op, errs = parseBuiltinU(p, p.parseIdentifierArgument)
	case KEYWORD_CX:
		op, errs = parseBuiltinCX(p, p.parseIdentifierArgument)
	case KEYWORD_BARRIER:
		op, errs = parseBarrier(p, p.parseIdentifierArgument)
	case IDENTIFIER:
		op, errs = parseGateApplication(p, p.parseIdentifierArgument)
	case KEYWORD_MEASURE, KEYWORD_RESET, KEYWORD_IF:
		return nil, p.syntaxErrors(lookahead, "operation not permitted in gate body")
	default:
		return nil, p.syntaxErrors(lookahead, "unknown gate operation")
	}
	//
	if len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	//
	return op, nil
}

func (p *Parser) parseConditional() (ast.Statement, []source.SyntaxError) {
	var (
		register string
		tok      lex.Token
		errs     []source.SyntaxError
		op       ast.Operation[ast.Argument]
	)
	//
	if _, errs = p.expect(KEYWORD_IF); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(LBRACE); len(errs) > 0 {
		return nil, errs
	} else if register, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(EQUALS_EQUALS); len(errs) > 0 {
		return nil, errs
	} else if tok, errs = p.expect(NUMBER); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RBRACE); len(errs) > 0 {
		return nil, errs
	}
	//
	value, err := strconv.ParseUint(p.string(tok), 10, 64)
	if err != nil {
		return nil, p.syntaxErrors(tok, "expected natural number")
	}
	//
	if op, errs = p.parseQuantumOperation(); len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Conditional{Register: register, Value: value, Operation: op}, nil
}

func (p *Parser) parseQuantumOperation() (ast.Operation[ast.Argument], []source.SyntaxError) {
	var (
		lookahead = p.lookahead()
		op        ast.Operation[ast.Argument]
		errs      []source.SyntaxError
	)
	//
	switch lookahead.Kind {
	case KEYWORD_U:
		op, errs = parseBuiltinU(p, p.parseArgument)
	case KEYWORD_CX:
		op, errs = parseBuiltinCX(p, p.parseArgument)
	case KEYWORD_BARRIER:
		op, errs = parseBarrier(p, p.parseArgument)
	case KEYWORD_MEASURE:
		op, errs = p.parseMeasure()
	case KEYWORD_RESET:
		op, errs = p.parseReset()
	case IDENTIFIER:
		op, errs = parseGateApplication(p, p.parseArgument)
	default:
		return nil, p.syntaxErrors(lookahead, "unknown statement")
	}
	//
	if len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	//
	return op, nil
}

func (p *Parser) parseMeasure() (ast.Operation[ast.Argument], []source.SyntaxError) {
	var (
		errs     []source.SyntaxError
		src, dst ast.Argument
	)
	//
	if _, errs = p.expect(KEYWORD_MEASURE); len(errs) > 0 {
		return nil, errs
	} else if src, errs = p.parseArgument(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RIGHTARROW); len(errs) > 0 {
		return nil, errs
	} else if dst, errs = p.parseArgument(); len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Measure[ast.Argument]{Source: src, Target: dst}, nil
}

func (p *Parser) parseReset() (ast.Operation[ast.Argument], []source.SyntaxError) {
	var (
		errs   []source.SyntaxError
		target ast.Argument
	)
	//
	if _, errs = p.expect(KEYWORD_RESET); len(errs) > 0 {
		return nil, errs
	} else if target, errs = p.parseArgument(); len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Reset[ast.Argument]{Target: target}, nil
}

// Parse "U(theta,phi,lambda) a".  The number of parameters is not checked
// here, since this is reported at runtime.
func parseBuiltinU[A ast.Argument](p *Parser, arg func() (A, []source.SyntaxError)) (ast.Operation[A],
	[]source.SyntaxError) {
	var (
		params []ast.Expr
		target A
		errs   []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_U); len(errs) > 0 {
		return nil, errs
	} else if params, errs = p.parseParameterList(); len(errs) > 0 {
		return nil, errs
	} else if target, errs = arg(); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.NewUnitary("U", params, target), nil
}

// Parse "CX a, b".
func parseBuiltinCX[A ast.Argument](p *Parser, arg func() (A, []source.SyntaxError)) (ast.Operation[A],
	[]source.SyntaxError) {
	var (
		control, target A
		errs            []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_CX); len(errs) > 0 {
		return nil, errs
	} else if control, errs = arg(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(COMMA); len(errs) > 0 {
		return nil, errs
	} else if target, errs = arg(); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.NewUnitary[A]("CX", nil, control, target), nil
}

func parseBarrier[A ast.Argument](p *Parser, arg func() (A, []source.SyntaxError)) (ast.Operation[A],
	[]source.SyntaxError) {
	var (
		args []A
		errs []source.SyntaxError
	)
	//
	if _, errs = p.expect(KEYWORD_BARRIER); len(errs) > 0 {
		return nil, errs
	} else if args, errs = parseCommaSeparated(p, arg); len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Barrier[A]{Args: args}, nil
}

// Parse "name(params) a, b, ..." where the parameter list is optional.
func parseGateApplication[A ast.Argument](p *Parser, arg func() (A, []source.SyntaxError)) (ast.Operation[A],
	[]source.SyntaxError) {
	var (
		name   string
		params []ast.Expr
		args   []A
		errs   []source.SyntaxError
	)
	//
	if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.lookahead().Kind == LBRACE {
		if params, errs = p.parseParameterList(); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if args, errs = parseCommaSeparated(p, arg); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.NewUnitary(name, params, args...), nil
}

// Parse a bracketed, possibly empty, list of real expressions.
func (p *Parser) parseParameterList() ([]ast.Expr, []source.SyntaxError) {
	var (
		params []ast.Expr
		errs   []source.SyntaxError
	)
	//
	if _, errs = p.expect(LBRACE); len(errs) > 0 {
		return nil, errs
	}
	//
	if p.lookahead().Kind != RBRACE {
		if params, errs = parseCommaSeparated(p, p.parseExpr); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if _, errs = p.expect(RBRACE); len(errs) > 0 {
		return nil, errs
	}
	//
	return params, nil
}

// Parse a top-level argument, which is either a register name "q" or an
// indexed item "q[1]".
func (p *Parser) parseArgument() (ast.Argument, []source.SyntaxError) {
	var (
		name  string
		tok   lex.Token
		index uint
		errs  []source.SyntaxError
	)
	//
	if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	} else if !p.match(LSQUARE) {
		return ast.NewIdentifier(name), nil
	} else if tok, errs = p.expect(NUMBER); len(errs) > 0 {
		return nil, errs
	} else if index, errs = p.natural(tok); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RSQUARE); len(errs) > 0 {
		return nil, errs
	}
	//
	return ast.NewItem(name, index), nil
}

// Parse an argument within a gate body, which can only be the name of a formal
// argument.
func (p *Parser) parseIdentifierArgument() (ast.Identifier, []source.SyntaxError) {
	name, errs := p.parseIdentifier()
	//
	return ast.NewIdentifier(name), errs
}

// ============================================================================
// Expressions
// ============================================================================

// Parse an expression, where "+" and "-" bind loosest.
func (p *Parser) parseExpr() (ast.Expr, []source.SyntaxError) {
	lhs, errs := p.parseTerm()
	//
	for len(errs) == 0 && p.follows(ADD, SUB) {
		var (
			op  = ast.ADD
			rhs ast.Expr
		)
		//
		if p.lookahead().Kind == SUB {
			op = ast.SUB
		}
		//
		p.index++
		//
		if rhs, errs = p.parseTerm(); len(errs) == 0 {
			lhs = &ast.Binary{Op: op, Left: lhs, Right: rhs}
		}
	}
	//
	return lhs, errs
}

func (p *Parser) parseTerm() (ast.Expr, []source.SyntaxError) {
	lhs, errs := p.parseUnary()
	//
	for len(errs) == 0 && p.follows(MUL, DIV) {
		var (
			op  = ast.MUL
			rhs ast.Expr
		)
		//
		if p.lookahead().Kind == DIV {
			op = ast.DIV
		}
		//
		p.index++
		//
		if rhs, errs = p.parseUnary(); len(errs) == 0 {
			lhs = &ast.Binary{Op: op, Left: lhs, Right: rhs}
		}
	}
	//
	return lhs, errs
}

func (p *Parser) parseUnary() (ast.Expr, []source.SyntaxError) {
	if p.match(SUB) {
		operand, errs := p.parseUnary()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		return &ast.Negate{Operand: operand}, nil
	}
	//
	return p.parsePower()
}

// Exponentiation is right associative and binds tighter than unary minus on
// its left, hence "-2^2" is "-(2^2)".
func (p *Parser) parsePower() (ast.Expr, []source.SyntaxError) {
	base, errs := p.parseAtom()
	//
	if len(errs) > 0 || !p.match(POW) {
		return base, errs
	}
	//
	exponent, errs := p.parseUnary()
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return &ast.Binary{Op: ast.POW, Left: base, Right: exponent}, nil
}

func (p *Parser) parseAtom() (ast.Expr, []source.SyntaxError) {
	var lookahead = p.lookahead()
	//
	switch lookahead.Kind {
	case NUMBER:
		p.index++
		//
		val, err := strconv.ParseFloat(p.string(lookahead), 64)
		if err != nil {
			return nil, p.syntaxErrors(lookahead, "malformed numeric literal")
		}
		//
		return &ast.Real{Value: val}, nil
	case KEYWORD_PI:
		p.index++
		//
		return &ast.Pi{}, nil
	case IDENTIFIER:
		p.index++
		//
		name := p.string(lookahead)
		// Check for function call
		if p.lookahead().Kind != LBRACE {
			return &ast.Parameter{Name: name}, nil
		} else if fn, ok := ast.LookupFunction(name); ok {
			operand, errs := p.parseBracketed()
			if len(errs) > 0 {
				return nil, errs
			}
			//
			return &ast.Call{Fn: fn, Operand: operand}, nil
		}
		//
		return nil, p.syntaxErrors(lookahead, "unknown function")
	case LBRACE:
		return p.parseBracketed()
	default:
		return nil, p.syntaxErrors(lookahead, "expected expression")
	}
}

func (p *Parser) parseBracketed() (ast.Expr, []source.SyntaxError) {
	var (
		expr ast.Expr
		errs []source.SyntaxError
	)
	//
	if _, errs = p.expect(LBRACE); len(errs) > 0 {
		return nil, errs
	} else if expr, errs = p.parseExpr(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(RBRACE); len(errs) > 0 {
		return nil, errs
	}
	//
	return expr, nil
}

// ============================================================================
// Helpers
// ============================================================================

// Parse one or more items separated by commas.
func parseCommaSeparated[T any](p *Parser, parse func() (T, []source.SyntaxError)) ([]T, []source.SyntaxError) {
	var items []T
	//
	for {
		item, errs := parse()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		items = append(items, item)
		//
		if !p.match(COMMA) {
			return items, nil
		}
	}
}

func (p *Parser) parseIdentifier() (string, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	//
	if len(errs) > 0 {
		return "", errs
	}
	//
	return p.string(tok), nil
}

func (p *Parser) parseIdentifierToken() (lex.Token, []source.SyntaxError) {
	return p.expect(IDENTIFIER)
}

// Check that no two tokens in a given list have the same text.
func (p *Parser) checkDistinct(tokens []lex.Token, msg string) []source.SyntaxError {
	names := p.strings(tokens)
	//
	for i, tok := range tokens {
		if slices.Contains(names[:i], names[i]) {
			return p.syntaxErrors(tok, msg)
		}
	}
	//
	return nil
}

// Get the text representing each of the given tokens.
func (p *Parser) strings(tokens []lex.Token) []string {
	strs := make([]string, len(tokens))
	//
	for i, tok := range tokens {
		strs[i] = p.string(tok)
	}
	//
	return strs
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Parse the given token as a natural number, such as a register size or index.
func (p *Parser) natural(token lex.Token) (uint, []source.SyntaxError) {
	val, err := strconv.ParseUint(p.string(token), 10, 32)
	//
	if err != nil {
		return 0, p.syntaxErrors(token, "expected natural number")
	}
	//
	return uint(val), nil
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		errs := p.syntaxErrors(lookahead, "unexpected token")
		return lookahead, errs
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	//
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
