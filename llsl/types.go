package llsl

// Type returns int, float or string according to the literal kind.
func (l *Literal) Type() TokenKind {
	switch l.Kind {
	case LitInteger:
		return TokenInt
	case LitFloatingPoint:
		return TokenFloat
	}
	return TokenString
}

// Type returns the constructed type. Arguments are not checked here.
func (c *ConstructExpr) Type() TokenKind { return c.Target }

// Type is always int: ! and ~ have integer results.
func (u *UnaryExpr) Type() TokenKind { return TokenInt }

// Type returns the type of the incremented variable.
func (i *IncDecExpr) Type() TokenKind { return i.Var.Type() }

// Type returns the cast target.
func (c *CastExpr) Type() TokenKind { return c.Target }

// Type returns the element type of a singleton list, void otherwise.
func (c *CompoundExpr) Type() TokenKind {
	if len(c.Exprs) == 1 {
		return c.Exprs[0].Type()
	}
	return TokenVoid
}

// Type returns the memoized type, TokenVoid until the checker resolves it.
func (v *VariableRef) Type() TokenKind {
	if v.typ == TokenEOF {
		return TokenVoid
	}
	return v.typ
}

// Type of a plain assignment is the type of the assigned value; a compound
// assignment has the type of its target.
func (a *AssignExpr) Type() TokenKind {
	if a.Op == "=" {
		return a.Value.Type()
	}
	return a.Target.Type()
}

// Type applies BinaryResultType to the operand types.
func (b *BinaryExpr) Type() TokenKind {
	return BinaryResultType(b.Op, b.Left.Type(), b.Right.Type())
}

// BinaryResultType is the result type of left op right, or TokenErr when the
// combination is invalid. The rules apply top-down:
//
//  1. A string operand requires two strings and == or !=; the result is int.
//  2. Logical and comparison operators produce int.
//  3. Two complex operands must have the same type, which is the result.
//     One complex operand combines with int or float into the complex type.
//     Scalars of the same type keep it; mixed int and float give float.
func BinaryResultType(op string, left, right TokenKind) TokenKind {
	if left == TokenString || right == TokenString {
		if left != right {
			return TokenErr
		}
		if op != "==" && op != "!=" {
			return TokenErr
		}
		return TokenInt
	}

	switch ClassifyOperator(op) {
	case TokenLogOp, TokenCompOp:
		return TokenInt
	}

	lc, rc := left.IsComplexType(), right.IsComplexType()
	switch {
	case lc && rc:
		if left != right {
			return TokenErr
		}
		return left
	case lc || rc:
		complexType, other := left, right
		if rc {
			complexType, other = right, left
		}
		if other == TokenInt || other == TokenFloat {
			return complexType
		}
		return TokenErr
	}

	if left == right {
		return left
	}
	return TokenFloat
}

// Assignable reports whether a value of type actual may initialize or be
// assigned to a variable of type declared. The only implicit conversion is
// int to float.
func Assignable(declared, actual TokenKind) bool {
	return declared == actual || (declared == TokenFloat && actual == TokenInt)
}
