package llsl

var keywords = map[string]TokenKind{
	// Types
	"int":    TokenInt,
	"float":  TokenFloat,
	"string": TokenString,
	"point":  TokenPoint,
	"vector": TokenVector,
	"normal": TokenNormal,
	"color":  TokenColor,
	"matrix": TokenMatrix,
	"void":   TokenVoid,

	// Control
	"if":       TokenIf,
	"else":     TokenElse,
	"while":    TokenWhile,
	"for":      TokenFor,
	"do":       TokenDo,
	"break":    TokenBreak,
	"continue": TokenContinue,
}

// LookupKeyword classifies an identifier-shaped word. Words that are not
// reserved are TokenIdent.
func LookupKeyword(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return TokenIdent
}

// IsSimpleType reports whether text names a scalar type (int, float, string).
func IsSimpleType(text string) bool {
	return LookupKeyword(text).IsSimpleType()
}

// IsComplexType reports whether text names a geometric type.
func IsComplexType(text string) bool {
	return LookupKeyword(text).IsComplexType()
}

// IsType reports whether text names a declarable type. void is a keyword
// but not a declarable type.
func IsType(text string) bool {
	return LookupKeyword(text).IsType()
}

// IsSimpleType reports whether k is int, float or string.
func (k TokenKind) IsSimpleType() bool {
	switch k {
	case TokenInt, TokenFloat, TokenString:
		return true
	}
	return false
}

// IsComplexType reports whether k is point, vector, normal, color or matrix.
func (k TokenKind) IsComplexType() bool {
	switch k {
	case TokenPoint, TokenVector, TokenNormal, TokenColor, TokenMatrix:
		return true
	}
	return false
}

// IsType reports whether k is a simple or complex type keyword.
func (k TokenKind) IsType() bool {
	return k.IsSimpleType() || k.IsComplexType()
}

// IsKeyword reports whether k is any reserved word.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenInt && k <= TokenContinue
}
