package llsl

import (
	"fmt"
)

// ParseOptions configures the parser.
type ParseOptions struct {
	// Recover resynchronizes after a failed top-level statement and keeps
	// parsing to report further syntax errors. The parse still fails.
	Recover bool

	// Reporter receives every diagnostic in addition to the returned errors.
	Reporter Reporter

	// Source and BufferName are attached to diagnostics for display.
	Source     string
	BufferName string
}

// Parser parses shader tokens into an AST.
//
// It looks at one token at a time and never backtracks. Binary operators
// are folded strictly left to right: the language has no precedence levels,
// so a + b * c means (a + b) * c and grouping needs parentheses.
type Parser struct {
	tokens  []Token
	current int

	opts     ParseOptions
	diags    *Diagnostics
	reporter Reporter

	// {received, expected} pairs recorded by expect and consume.
	mismatches []Mismatch
}

// ParseError represents a parsing error.
type ParseError struct {
	Message string
	Token   Token
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Token.Line, e.Token.Column, e.Message)
}

// Mismatch records a token the grammar did not accept.
type Mismatch struct {
	Received Token

	// ExpectedKind is the token kind the grammar required, or TokenUnknown
	// when several kinds would have been accepted (e.g. any expression).
	ExpectedKind TokenKind

	// Expected describes the expectation for messages.
	Expected string
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return NewParserWithOptions(tokens, ParseOptions{})
}

// NewParserWithOptions creates a parser with custom options.
func NewParserWithOptions(tokens []Token, opts ParseOptions) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Kind: TokenEOF})
	}
	diags := NewDiagnostics(opts.Source)
	return &Parser{
		tokens:   tokens,
		opts:     opts,
		diags:    diags,
		reporter: Tee(diags, opts.Reporter),
	}
}

// Parse parses the tokens and returns the Program. On any syntax error the
// program is nil and the error is a SourceErrors list.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{
		Statements: make([]Stmt, 0, 16),
		Info:       ProgramInfo{BufferName: p.opts.BufferName},
	}

	for !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			if !p.opts.Recover {
				break
			}
			p.recover()
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	if p.diags.HasErrors() {
		return nil, p.diags.Errors()
	}
	return prog, nil
}

// Mismatches returns the {received, expected} pairs recorded so far.
func (p *Parser) Mismatches() []Mismatch {
	return p.mismatches
}

// recover skips to just past the next ';' or '}' so parsing can resume at a
// statement boundary.
func (p *Parser) recover() {
	for !p.isAtEnd() {
		p.skipUntil(TokenPunct)
		if p.isAtEnd() {
			return
		}
		tok := p.advance()
		if tok.Lexeme == ";" || tok.Lexeme == "}" {
			return
		}
	}
}

// statement parses one statement.
func (p *Parser) statement() (Stmt, *ParseError) {
	tok := p.peek()

	switch {
	case tok.Is("{"):
		return p.scopedStmt()
	case tok.Kind == TokenIf:
		return p.ifStmt()
	case tok.Kind == TokenWhile:
		return p.whileStmt()
	case tok.Kind == TokenDo:
		return p.doWhileStmt()
	case tok.Kind == TokenFor:
		return p.forStmt()
	case tok.Kind == TokenBreak, tok.Kind == TokenContinue:
		return p.loopModStmt()
	case tok.Kind.IsType():
		return p.declStmt()
	case tok.Is(";"):
		p.advance()
		return &CompoundStmt{Span: p.span(tok)}, nil
	default:
		return p.compoundStmt()
	}
}

// scopedStmt parses a braced block.
func (p *Parser) scopedStmt() (*ScopedStmt, *ParseError) {
	start := p.advance() // consume {

	stmts := make([]Stmt, 0, 4)
	for !p.check("}") {
		if p.isAtEnd() {
			return nil, p.fail("'}'")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume }

	return &ScopedStmt{Statements: stmts, Span: p.span(start)}, nil
}

// ifStmt parses an if statement with an optional else branch.
func (p *Parser) ifStmt() (*IfStmt, *ParseError) {
	start := p.advance() // consume if

	cond, err := p.parenCondition()
	if err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseStmt Stmt
	if p.peek().Kind == TokenElse {
		p.advance()
		elseStmt, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: cond, Then: then, Else: elseStmt, Span: p.span(start)}, nil
}

// whileStmt parses a while loop.
func (p *Parser) whileStmt() (*WhileStmt, *ParseError) {
	start := p.advance() // consume while

	cond, err := p.parenCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{Condition: cond, Body: body, Span: p.span(start)}, nil
}

// doWhileStmt parses do Statement while ( Cond ) ;
func (p *Parser) doWhileStmt() (*DoWhileStmt, *ParseError) {
	start := p.advance() // consume do

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if err := p.consumeKind(TokenWhile); err != nil {
		return nil, err
	}

	cond, err := p.parenCondition()
	if err != nil {
		return nil, err
	}

	if err := p.consume(";"); err != nil {
		return nil, err
	}

	return &DoWhileStmt{Body: body, Condition: cond, Span: p.span(start)}, nil
}

// forStmt parses for ( Decl? ; Cond? ; CompoundExpr? ) Statement.
func (p *Parser) forStmt() (*ForStmt, *ParseError) {
	start := p.advance() // consume for

	if err := p.consume("("); err != nil {
		return nil, err
	}

	// The declaration consumes its own ';'.
	var init *DeclStmt
	if p.check(";") {
		p.advance()
	} else {
		if !p.peek().Kind.IsType() {
			return nil, p.fail("declaration")
		}
		decl, err := p.declStmt()
		if err != nil {
			return nil, err
		}
		init = decl
	}

	var cond Expr
	if !p.check(";") {
		c, err := p.value()
		if err != nil {
			return nil, err
		}
		cond = c
	}
	if err := p.consume(";"); err != nil {
		return nil, err
	}

	var update *CompoundExpr
	if !p.check(")") {
		updateStart := p.peek()
		exprs, err := p.valueList()
		if err != nil {
			return nil, err
		}
		update = &CompoundExpr{Exprs: exprs, Span: p.span(updateStart)}
	}
	if err := p.consume(")"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ForStmt{Init: init, Condition: cond, Update: update, Body: body, Span: p.span(start)}, nil
}

// loopModStmt parses break or continue.
func (p *Parser) loopModStmt() (*LoopModStmt, *ParseError) {
	start := p.advance()
	if err := p.consume(";"); err != nil {
		return nil, err
	}
	return &LoopModStmt{Mod: start.Kind, Span: p.span(start)}, nil
}

// declStmt parses Type id (= Value)? (, id (= Value)?)* ;
func (p *Parser) declStmt() (*DeclStmt, *ParseError) {
	start := p.advance() // consume type keyword

	defs := make([]*DefExpr, 0, 2)
	for {
		name := p.peek()
		if err := p.consumeKind(TokenIdent); err != nil {
			return nil, err
		}

		def := &DefExpr{Name: name.Lexeme}
		if p.check("=") {
			p.advance()
			init, err := p.value()
			if err != nil {
				return nil, err
			}
			def.Init = init
		}
		def.Span = p.span(name)
		defs = append(defs, def)

		if !p.check(",") {
			break
		}
		p.advance()
	}

	if err := p.consume(";"); err != nil {
		return nil, err
	}

	return &DeclStmt{Type: start.Kind, Defs: defs, Span: p.span(start)}, nil
}

// compoundStmt parses a comma separated expression list ending in ';'.
func (p *Parser) compoundStmt() (*CompoundStmt, *ParseError) {
	start := p.peek()

	exprs, err := p.valueList()
	if err != nil {
		return nil, err
	}
	if err := p.consume(";"); err != nil {
		return nil, err
	}

	return &CompoundStmt{Exprs: exprs, Span: p.span(start)}, nil
}

// parenCondition parses ( Cond ).
func (p *Parser) parenCondition() (Expr, *ParseError) {
	if err := p.consume("("); err != nil {
		return nil, err
	}
	cond, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.consume(")"); err != nil {
		return nil, err
	}
	return cond, nil
}

// valueList parses Value (, Value)* without consuming the terminator.
func (p *Parser) valueList() ([]Expr, *ParseError) {
	exprs := make([]Expr, 0, 2)
	for {
		e, err := p.value()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.check(",") {
			return exprs, nil
		}
		p.advance()
	}
}

// value parses an expression followed by a left-folded binary chain.
func (p *Parser) value() (Expr, *ParseError) {
	left, err := p.expression()
	if err != nil {
		return nil, err
	}
	return p.binaryChain(left)
}

// binaryChain folds (op Term)* onto left. Arithmetic, comparison, logical
// and bitwise operators all bind equally.
func (p *Parser) binaryChain(left Expr) (Expr, *ParseError) {
	for p.peek().Kind.IsChainOperator() {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Op:    op.Lexeme,
			Left:  left,
			Right: right,
			Span:  p.spanFrom(left.Pos().Start),
		}
	}
	return left, nil
}

// expression parses an operand that may be an assignment.
func (p *Parser) expression() (Expr, *ParseError) {
	return p.operand(true)
}

// term parses an operand of a binary chain. A term is never an assignment.
func (p *Parser) term() (Expr, *ParseError) {
	return p.operand(false)
}

func (p *Parser) operand(allowAssign bool) (Expr, *ParseError) {
	tok := p.peek()

	switch {
	case tok.Kind == TokenIntLiteral, tok.Kind == TokenFloatLiteral, tok.Kind == TokenStringLiteral:
		p.advance()
		return &Literal{Kind: litKind(tok.Kind), Value: tok.Lexeme, Span: p.span(tok)}, nil

	case tok.Is("+"), tok.Is("-"):
		return p.signedLiteral()

	case tok.Kind.IsType():
		p.advance()
		return p.constructor(tok)

	case tok.Kind == TokenUnOp:
		p.advance()
		operand, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: tok.Lexeme, Operand: operand, Span: p.span(tok)}, nil

	case tok.Kind == TokenIncDecOp:
		p.advance()
		ref, err := p.variableRefOperand()
		if err != nil {
			return nil, err
		}
		return &IncDecExpr{Op: tok.Lexeme, Var: ref, Span: p.span(tok)}, nil

	case tok.Is("("):
		return p.parenthesized()

	case tok.Kind == TokenIdent:
		return p.reference(allowAssign)

	default:
		return nil, p.fail("expression")
	}
}

// signedLiteral parses a + or - directly followed by a numeric literal.
func (p *Parser) signedLiteral() (Expr, *ParseError) {
	sign := p.advance()
	lit := p.peek()
	if lit.Kind != TokenIntLiteral && lit.Kind != TokenFloatLiteral {
		return nil, p.fail("numeric literal")
	}
	p.advance()
	return &Literal{Kind: litKind(lit.Kind), Value: sign.Lexeme + lit.Lexeme, Span: p.span(sign)}, nil
}

// constructor parses ( ValueList? ) after a consumed type keyword.
func (p *Parser) constructor(typeTok Token) (*ConstructExpr, *ParseError) {
	if err := p.consume("("); err != nil {
		return nil, err
	}
	args, err := p.argumentsUntilParen()
	if err != nil {
		return nil, err
	}
	return &ConstructExpr{Target: typeTok.Kind, Args: args, Span: p.span(typeTok)}, nil
}

// argumentsUntilParen parses a possibly empty list and consumes the ')'.
func (p *Parser) argumentsUntilParen() ([]Expr, *ParseError) {
	var args []Expr
	if !p.check(")") {
		list, err := p.valueList()
		if err != nil {
			return nil, err
		}
		args = list
	}
	if err := p.consume(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// parenthesized parses a type cast or a parenthesized expression list.
//
// After "(" a type keyword followed by ")" is a cast; followed by "(" it is
// a constructor that starts the first list element.
func (p *Parser) parenthesized() (Expr, *ParseError) {
	open := p.advance() // consume (

	var exprs []Expr
	if typeTok := p.peek(); typeTok.Kind.IsType() {
		p.advance()
		if p.check(")") {
			p.advance()
			operand, err := p.term()
			if err != nil {
				return nil, err
			}
			return &CastExpr{Target: typeTok.Kind, Operand: operand, Span: p.span(open)}, nil
		}

		ctor, err := p.constructor(typeTok)
		if err != nil {
			return nil, err
		}
		first, err := p.binaryChain(ctor)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, first)
		if !p.check(",") {
			if err := p.consume(")"); err != nil {
				return nil, err
			}
			return &CompoundExpr{Exprs: exprs, Span: p.span(open)}, nil
		}
		p.advance()
	}

	rest, err := p.argumentsUntilParen()
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, rest...)
	return &CompoundExpr{Exprs: exprs, Span: p.span(open)}, nil
}

// reference parses id ([Value])* with an optional assignment tail.
//
// An assignment target keeps every index. A plain reference keeps only the
// last one.
func (p *Parser) reference(allowAssign bool) (Expr, *ParseError) {
	id := p.advance()

	var indices []Expr
	for p.check("[") {
		p.advance()
		index, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := p.consume("]"); err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}

	target := p.span(id)
	if allowAssign && p.peek().Kind == TokenAssign {
		op := p.advance()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		return &AssignExpr{
			Target: &LValue{Name: id.Lexeme, Indices: indices, Span: target},
			Op:     op.Lexeme,
			Value:  val,
			Span:   p.span(id),
		}, nil
	}

	ref := &VariableRef{Name: id.Lexeme, Span: target}
	if len(indices) > 0 {
		ref.Index = indices[len(indices)-1]
	}
	return ref, nil
}

// variableRefOperand parses the operand of ++ or --, which must be a
// variable reference.
func (p *Parser) variableRefOperand() (*VariableRef, *ParseError) {
	if p.peek().Kind != TokenIdent {
		return nil, p.fail("variable")
	}
	e, err := p.reference(false)
	if err != nil {
		return nil, err
	}
	return e.(*VariableRef), nil
}

func litKind(kind TokenKind) LitKind {
	switch kind {
	case TokenIntLiteral:
		return LitInteger
	case TokenFloatLiteral:
		return LitFloatingPoint
	}
	return LitString
}

// Helper methods

func (p *Parser) advance() Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

// check reports whether the current token is the punctuator or operator text.
func (p *Parser) check(text string) bool {
	return p.peek().Is(text)
}

// expect records and reports a mismatch unless the current token has kind.
func (p *Parser) expect(kind TokenKind) *ParseError {
	if p.peek().Kind == kind {
		return nil
	}
	return p.failKind(kind, kind.String())
}

// consumeKind expects kind and advances past it.
func (p *Parser) consumeKind(kind TokenKind) *ParseError {
	if err := p.expect(kind); err != nil {
		return err
	}
	p.advance()
	return nil
}

// consume expects the punctuator or operator text and advances past it.
func (p *Parser) consume(text string) *ParseError {
	if !p.check(text) {
		return p.failKind(ClassifyOperator(text), "'"+text+"'")
	}
	p.advance()
	return nil
}

// fail records a mismatch at the current token, reports it and returns the
// error that aborts the enclosing parse functions.
func (p *Parser) fail(expected string) *ParseError {
	return p.failKind(TokenUnknown, expected)
}

func (p *Parser) failKind(kind TokenKind, expected string) *ParseError {
	tok := p.peek()
	p.mismatches = append(p.mismatches, Mismatch{Received: tok, ExpectedKind: kind, Expected: expected})

	span := p.tokenSpan(tok)
	switch {
	case tok.Kind == TokenEOF:
		p.reporter.Report(span, DiagUnexpectedEOF, expected)
	case tok.Kind == TokenUnknown && len(tok.Lexeme) > 0 && tok.Lexeme[0] == '"':
		p.reporter.Report(span, DiagUnterminatedString)
	case tok.Kind == TokenUnknown:
		p.reporter.Report(span, DiagUnknownSymbol, tok.Lexeme)
	default:
		p.reporter.Report(span, DiagUnexpectedToken, tok.Lexeme, expected)
	}

	return &ParseError{
		Message: fmt.Sprintf("unexpected %s %q, expected %s", tok.Kind, tok.Lexeme, expected),
		Token:   tok,
	}
}

// skipUntil advances to the first token whose kind is in kinds. It always
// stops at end of file.
func (p *Parser) skipUntil(kinds ...TokenKind) {
	for !p.isAtEnd() {
		cur := p.peek().Kind
		for _, k := range kinds {
			if cur == k {
				return
			}
		}
		p.advance()
	}
}

// span runs from start through the last consumed token.
func (p *Parser) span(start Token) Span {
	return p.spanFrom(start.Pos())
}

func (p *Parser) spanFrom(start Position) Span {
	s := Span{Start: start, End: start, Source: p.opts.BufferName}
	if p.current > 0 {
		if last := p.tokens[p.current-1]; last.End.Line != 0 {
			s.End = last.End
		}
	}
	return s
}

// tokenSpan covers tok alone.
func (p *Parser) tokenSpan(tok Token) Span {
	s := spanOf(tok)
	s.Source = p.opts.BufferName
	return s
}
