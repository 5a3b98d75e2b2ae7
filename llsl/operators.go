package llsl

// operatorClasses lists the fixed contents of every operator class.
// The classes are disjoint.
var operatorClasses = []struct {
	kind TokenKind
	ops  []string
}{
	{TokenBinOp, []string{"+", "-", "*", "/", "%"}},
	{TokenBitOp, []string{"&", "|", "^", "<<", ">>"}},
	{TokenCompOp, []string{"<", ">", ">=", "<=", "==", "!="}},
	{TokenUnOp, []string{"!", "~"}},
	{TokenIncDecOp, []string{"++", "--"}},
	{TokenLogOp, []string{"&&", "||"}},
	{TokenAssign, []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>="}},
	{TokenPunct, []string{";", "(", ")", "{", "}", "[", "]", ","}},
}

// maxOperatorLen is the length of the longest operator spelling.
const maxOperatorLen = 3

var operators = func() map[string]TokenKind {
	m := make(map[string]TokenKind, 48)
	for _, class := range operatorClasses {
		for _, op := range class.ops {
			m[op] = class.kind
		}
	}
	return m
}()

// ClassifyOperator returns the operator class of op, or TokenUnknown.
func ClassifyOperator(op string) TokenKind {
	if kind, ok := operators[op]; ok {
		return kind
	}
	return TokenUnknown
}

// IsOperator reports whether op is in any operator class.
func IsOperator(op string) bool {
	_, ok := operators[op]
	return ok
}

// Operators returns the spellings that belong to class, in table order.
// It returns nil for kinds that are not operator classes.
func Operators(class TokenKind) []string {
	for _, c := range operatorClasses {
		if c.kind == class {
			return append([]string(nil), c.ops...)
		}
	}
	return nil
}
