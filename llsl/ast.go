package llsl

// Program is the root of the AST: the ordered statements of one buffer.
type Program struct {
	Statements []Stmt
	Info       ProgramInfo
}

// ProgramInfo carries pipeline annotations for later stages.
type ProgramInfo struct {
	BufferName string

	// Set by the semantic checker.
	Checked       bool
	Valid         bool
	Bindings      int // names bound across all scopes
	MaxScopeDepth int
	MaxLoopDepth  int
}

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Span
}

// Stmt is the interface for statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expressions. Type derives the expression type
// from the node's children each time it is called.
type Expr interface {
	Node
	Type() TokenKind
	exprNode()
}

// Statements

// CompoundStmt is a comma separated list of expressions ending in ';'.
// An empty statement has no expressions.
type CompoundStmt struct {
	Exprs []Expr
	Span  Span
}

func (c *CompoundStmt) Pos() Span { return c.Span }
func (c *CompoundStmt) stmtNode() {}

// ScopedStmt is a braced block that opens a new scope.
type ScopedStmt struct {
	Statements []Stmt
	Span       Span
}

func (s *ScopedStmt) Pos() Span { return s.Span }
func (s *ScopedStmt) stmtNode() {}

// DefExpr is one binding of a declaration: a name and an optional initializer.
type DefExpr struct {
	Name string
	Init Expr // nil when absent
	Span Span
}

func (d *DefExpr) Pos() Span { return d.Span }

// DeclStmt declares one or more variables of the same type.
type DeclStmt struct {
	Type TokenKind
	Defs []*DefExpr
	Span Span
}

func (d *DeclStmt) Pos() Span { return d.Span }
func (d *DeclStmt) stmtNode() {}

// IfStmt represents an if statement.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
	Span      Span
}

func (i *IfStmt) Pos() Span { return i.Span }
func (i *IfStmt) stmtNode() {}

// ForStmt represents a for loop. Init, Condition and Update may be nil.
type ForStmt struct {
	Init      *DeclStmt
	Condition Expr
	Update    *CompoundExpr
	Body      Stmt
	Span      Span
}

func (f *ForStmt) Pos() Span { return f.Span }
func (f *ForStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
	Span      Span
}

func (w *WhileStmt) Pos() Span { return w.Span }
func (w *WhileStmt) stmtNode() {}

// DoWhileStmt represents a do-while loop.
type DoWhileStmt struct {
	Body      Stmt
	Condition Expr
	Span      Span
}

func (d *DoWhileStmt) Pos() Span { return d.Span }
func (d *DoWhileStmt) stmtNode() {}

// LoopModStmt is a break or continue statement.
type LoopModStmt struct {
	Mod  TokenKind // TokenBreak or TokenContinue
	Span Span
}

func (l *LoopModStmt) Pos() Span { return l.Span }
func (l *LoopModStmt) stmtNode() {}

// Expressions

// LitKind is the kind of a literal.
type LitKind uint8

const (
	LitInteger LitKind = iota
	LitFloatingPoint
	LitString
)

// Literal represents a literal value. Value is the source spelling,
// including a leading sign if one was written.
type Literal struct {
	Kind  LitKind
	Value string
	Span  Span
}

func (l *Literal) Pos() Span { return l.Span }
func (l *Literal) exprNode() {}

// ConstructExpr is a type constructor call such as point(0, 1, 0).
type ConstructExpr struct {
	Target TokenKind
	Args   []Expr
	Span   Span
}

func (c *ConstructExpr) Pos() Span { return c.Span }
func (c *ConstructExpr) exprNode() {}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Span  Span
}

func (b *BinaryExpr) Pos() Span { return b.Span }
func (b *BinaryExpr) exprNode() {}

// UnaryExpr represents ! or ~ applied to an operand.
type UnaryExpr struct {
	Op      string
	Operand Expr
	Span    Span
}

func (u *UnaryExpr) Pos() Span { return u.Span }
func (u *UnaryExpr) exprNode() {}

// LValue is the target of an assignment.
type LValue struct {
	Name    string
	Indices []Expr
	Span    Span

	typ TokenKind
}

func (l *LValue) Pos() Span { return l.Span }

// Type returns the declared type of the target once the checker resolved
// it, TokenVoid before.
func (l *LValue) Type() TokenKind {
	if l.typ == TokenEOF {
		return TokenVoid
	}
	return l.typ
}

// SetType records the resolved type of the target.
func (l *LValue) SetType(t TokenKind) { l.typ = t }

// AssignExpr represents plain or compound assignment.
type AssignExpr struct {
	Target *LValue
	Op     string
	Value  Expr
	Span   Span
}

func (a *AssignExpr) Pos() Span { return a.Span }
func (a *AssignExpr) exprNode() {}

// VariableRef reads a variable, optionally through an index. Only the last
// index of a chain such as a[i][j] is kept.
type VariableRef struct {
	Name  string
	Index Expr // nil when not indexed
	Span  Span

	typ TokenKind
}

func (v *VariableRef) Pos() Span { return v.Span }
func (v *VariableRef) exprNode() {}

// SetType records the type resolved by the checker.
func (v *VariableRef) SetType(t TokenKind) { v.typ = t }

// IncDecExpr is a prefix ++ or -- on a variable.
type IncDecExpr struct {
	Op   string
	Var  *VariableRef
	Span Span
}

func (i *IncDecExpr) Pos() Span { return i.Span }
func (i *IncDecExpr) exprNode() {}

// CastExpr is (type) operand.
type CastExpr struct {
	Target  TokenKind
	Operand Expr
	Span    Span
}

func (c *CastExpr) Pos() Span { return c.Span }
func (c *CastExpr) exprNode() {}

// CompoundExpr is a parenthesized, comma separated expression list. It is
// also the update clause of a for loop.
type CompoundExpr struct {
	Exprs []Expr
	Span  Span
}

func (c *CompoundExpr) Pos() Span { return c.Span }
func (c *CompoundExpr) exprNode() {}
