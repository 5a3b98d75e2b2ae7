package llsl

// TokenKind represents the type of token.
//
// Type keywords double as the type of an expression: Expr.Type reports
// TokenInt, TokenFloat, TokenPoint and so on, TokenVoid for "no value" and
// TokenErr for an operand combination the language rejects.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenStringLiteral

	// Type keywords
	TokenInt
	TokenFloat
	TokenString
	TokenPoint
	TokenVector
	TokenNormal
	TokenColor
	TokenMatrix
	TokenVoid

	// Control keywords
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenDo
	TokenBreak
	TokenContinue

	// Operator classes
	TokenBinOp    // + - * / %
	TokenBitOp    // & | ^ << >>
	TokenCompOp   // < > >= <= == !=
	TokenUnOp     // ! ~
	TokenIncDecOp // ++ --
	TokenLogOp    // && ||
	TokenAssign   // = += -= *= /= %= &= |= ^= <<= >>=
	TokenPunct    // ; ( ) { } [ ] ,

	// Sentinels
	TokenUnknown
	TokenErr
)

var tokenNames = [...]string{
	TokenEOF:           "EOF",
	TokenIdent:         "identifier",
	TokenIntLiteral:    "integer",
	TokenFloatLiteral:  "floating_point",
	TokenStringLiteral: "string_literal",
	TokenInt:           "int",
	TokenFloat:         "float",
	TokenString:        "string",
	TokenPoint:         "point",
	TokenVector:        "vector",
	TokenNormal:        "normal",
	TokenColor:         "color",
	TokenMatrix:        "matrix",
	TokenVoid:          "void",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenWhile:         "while",
	TokenFor:           "for",
	TokenDo:            "do",
	TokenBreak:         "break",
	TokenContinue:      "continue",
	TokenBinOp:         "bin_op",
	TokenBitOp:         "bit_op",
	TokenCompOp:        "comp_op",
	TokenUnOp:          "un_op",
	TokenIncDecOp:      "incdec_op",
	TokenLogOp:         "log_op",
	TokenAssign:        "assignment",
	TokenPunct:         "punctuator",
	TokenUnknown:       "unknown",
	TokenErr:           "err",
}

// String returns the keyword spelling or the class name of the token kind.
func (k TokenKind) String() string {
	if int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "Unknown"
}

// IsOperatorClass reports whether k is one of the eight operator classes.
func (k TokenKind) IsOperatorClass() bool {
	return k >= TokenBinOp && k <= TokenPunct
}

// IsChainOperator reports whether k may join two terms in a binary chain.
func (k TokenKind) IsChainOperator() bool {
	switch k {
	case TokenBinOp, TokenCompOp, TokenLogOp, TokenBitOp:
		return true
	}
	return false
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
	Offset int

	// End is the position just past the token's last character, closing
	// quote included.
	End Position
}

// Pos returns the start position of the token.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// Is reports whether the token is a punctuator or operator spelled text.
func (t Token) Is(text string) bool {
	return t.Kind.IsOperatorClass() && t.Lexeme == text
}

// Span represents a source code location span. End is exclusive.
type Span struct {
	Start  Position
	End    Position
	Source string // Buffer name
}

// Position represents a position in source code.
type Position struct {
	Line   int
	Column int
	Offset int
}

func spanOf(tok Token) Span {
	end := tok.End
	if end.Line == 0 {
		end = tok.Pos()
	}
	return Span{Start: tok.Pos(), End: end}
}
