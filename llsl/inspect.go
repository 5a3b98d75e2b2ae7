package llsl

import "fmt"

// Pos returns an empty span naming the buffer.
func (p *Program) Pos() Span { return Span{Source: p.Info.BufferName} }

// Inspect traverses the tree rooted at node in depth-first order, children
// left to right. It calls f(node) and descends into the children when f
// returns true. Nil children are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	case *CompoundStmt:
		inspectExprs(n.Exprs, f)
	case *ScopedStmt:
		for _, s := range n.Statements {
			Inspect(s, f)
		}
	case *DeclStmt:
		for _, d := range n.Defs {
			Inspect(d, f)
		}
	case *DefExpr:
		inspectExpr(n.Init, f)
	case *IfStmt:
		inspectExpr(n.Condition, f)
		inspectStmt(n.Then, f)
		inspectStmt(n.Else, f)
	case *ForStmt:
		if n.Init != nil {
			Inspect(n.Init, f)
		}
		inspectExpr(n.Condition, f)
		if n.Update != nil {
			Inspect(n.Update, f)
		}
		inspectStmt(n.Body, f)
	case *WhileStmt:
		inspectExpr(n.Condition, f)
		inspectStmt(n.Body, f)
	case *DoWhileStmt:
		inspectStmt(n.Body, f)
		inspectExpr(n.Condition, f)
	case *LoopModStmt, *Literal:
		// leaves
	case *ConstructExpr:
		inspectExprs(n.Args, f)
	case *BinaryExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *UnaryExpr:
		inspectExpr(n.Operand, f)
	case *AssignExpr:
		Inspect(n.Target, f)
		inspectExpr(n.Value, f)
	case *LValue:
		inspectExprs(n.Indices, f)
	case *VariableRef:
		inspectExpr(n.Index, f)
	case *IncDecExpr:
		Inspect(n.Var, f)
	case *CastExpr:
		inspectExpr(n.Operand, f)
	case *CompoundExpr:
		inspectExprs(n.Exprs, f)
	default:
		panic(fmt.Sprintf("llsl.Inspect: unexpected node type %T", n))
	}
}

// inspectExpr and inspectStmt avoid passing typed nil pointers as a non-nil
// Node interface.
func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectStmt(s Stmt, f func(Node) bool) {
	if s != nil {
		Inspect(s, f)
	}
}

func inspectExprs(list []Expr, f func(Node) bool) {
	for _, e := range list {
		inspectExpr(e, f)
	}
}
