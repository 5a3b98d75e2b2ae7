package llsl

import (
	"unicode/utf8"
)

// Lexer tokenizes shader source code.
//
// The lexer keeps no state between calls to Next other than its cursor, so
// a Lexer may be drained lazily by a consumer or all at once with Tokenize.
type Lexer struct {
	source string
	pos    int
	line   int
	column int

	// Start of the token being scanned.
	start       int
	startLine   int
	startColumn int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize returns all tokens from the source, ending with TokenEOF.
//
// Unrecognized input never fails tokenization: it degrades to TokenUnknown
// tokens which the parser reports with a precise location.
func (l *Lexer) Tokenize() ([]Token, error) {
	// Estimate ~1 token per 4 characters of source.
	estTokens := len(l.source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	tokens := make([]Token, 0, estTokens)
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// Next scans and returns the next token. Once the source is exhausted every
// call returns a TokenEOF token.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	l.mark()

	if l.isAtEnd() {
		return l.token(TokenEOF)
	}

	c := l.source[l.pos]
	switch {
	case c == '.' && isDigit(l.peekNext()):
		return l.number()
	case c == '"':
		return l.stringLiteral()
	case isDigit(c):
		return l.number()
	case isLetter(c):
		return l.identifier()
	default:
		return l.symbol()
	}
}

// symbol scans a run of punctuation characters. A run that is a known
// operator as a whole is one token. Otherwise only its first character is
// consumed and classified alone, so "x++;" lexes as x + + ;.
func (l *Lexer) symbol() Token {
	end := l.pos
	for end < len(l.source) && !isWordChar(l.source[end]) && !isWhitespace(l.source[end]) {
		end++
	}

	if kind := ClassifyOperator(l.source[l.pos:end]); kind != TokenUnknown {
		l.advanceN(end - l.pos)
		return l.token(kind)
	}

	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.advanceN(size)
	return l.token(ClassifyOperator(l.source[l.start:l.pos]))
}

func (l *Lexer) number() Token {
	if l.peek() == '0' && (l.peekNext() == 'x' || l.peekNext() == 'X') {
		l.advanceN(2)
		for isHexDigit(l.peek()) {
			l.advance()
		}
		return l.token(TokenIntLiteral)
	}

	kind := TokenIntLiteral
	l.digits()

	if l.peek() == '.' {
		l.advance()
		l.digits()
		kind = TokenFloatLiteral
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		// The exponent needs at least one digit; "3else" stays 3 else.
		next := l.peekNext()
		if isDigit(next) || (isSign(next) && isDigit(l.peekAt(2))) {
			l.advance()
			if isSign(l.peek()) {
				l.advance()
			}
			l.digits()
			kind = TokenFloatLiteral
		}
	}

	return l.token(kind)
}

// stringLiteral scans text between double quotes. The token lexeme excludes
// the quotes. An unterminated string becomes TokenUnknown.
func (l *Lexer) stringLiteral() Token {
	l.advance() // opening quote
	contentStart := l.pos
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}
	if l.isAtEnd() {
		return l.token(TokenUnknown)
	}
	tok := l.token(TokenStringLiteral)
	tok.Lexeme = l.source[contentStart:l.pos]
	l.advance() // closing quote
	tok.End = l.cursor()
	return tok
}

func (l *Lexer) identifier() Token {
	for isWordChar(l.peek()) {
		l.advance()
	}
	return l.token(LookupKeyword(l.source[l.start:l.pos]))
}

func (l *Lexer) digits() {
	for isDigit(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && isWhitespace(l.source[l.pos]) {
		l.advance()
	}
}

func (l *Lexer) mark() {
	l.start = l.pos
	l.startLine = l.line
	l.startColumn = l.column
}

func (l *Lexer) token(kind TokenKind) Token {
	return Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.startLine,
		Column: l.startColumn,
		Offset: l.start,
		End:    l.cursor(),
	}
}

func (l *Lexer) cursor() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *Lexer) advance() byte {
	c := l.source[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else if utf8.RuneStart(c) {
		l.column++
	}
	return c
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

func (l *Lexer) peekNext() byte {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
