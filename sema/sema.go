package sema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/llshader/llsl"
)

// ErrNilProgram is returned when Check is called without a program, which
// is what a failed parse produces.
var ErrNilProgram = errors.New("program is nil")

// Options configures semantic checking.
type Options struct {
	// Source is attached to findings for context display.
	Source string

	// Reporter receives every finding in addition to the returned list.
	Reporter llsl.Reporter
}

// checker walks the AST once, maintaining the scope chain and loop depth.
type checker struct {
	scope     *Scope
	loopDepth int

	diags    *llsl.Diagnostics
	reporter llsl.Reporter

	bindings      int
	maxScopeDepth int
	maxLoopDepth  int
}

// Check validates declarations, scoping, condition types and operand types
// of prog and resolves the type of every variable reference.
//
// Findings are returned in source order; an empty result means the program
// is valid. The returned error is non-nil only when prog is nil. prog.Info is
// updated with the outcome.
func Check(prog *llsl.Program, opts Options) (llsl.SourceErrors, error) {
	if prog == nil {
		return nil, ErrNilProgram
	}

	diags := llsl.NewDiagnostics(opts.Source)
	c := &checker{
		diags:    diags,
		reporter: llsl.Tee(diags, opts.Reporter),
	}

	c.checkProgram(prog)

	findings := diags.Errors()
	prog.Info.Checked = true
	prog.Info.Valid = !findings.HasErrors()
	prog.Info.Bindings = c.bindings
	prog.Info.MaxScopeDepth = c.maxScopeDepth
	prog.Info.MaxLoopDepth = c.maxLoopDepth

	if findings.HasErrors() {
		return findings, nil
	}
	return nil, nil
}

func (c *checker) checkProgram(prog *llsl.Program) {
	c.scope = NewScope(nil)
	for _, s := range prog.Statements {
		c.checkStmt(s)
	}
}

func (c *checker) pushScope() {
	c.scope = NewScope(c.scope)
	if d := c.scope.Depth(); d > c.maxScopeDepth {
		c.maxScopeDepth = d
	}
}

func (c *checker) popScope() {
	c.scope = c.scope.Parent()
}

func (c *checker) report(span llsl.Span, id llsl.DiagID, args ...any) {
	c.reporter.Report(span, id, args...)
}

// errorCount lets callers skip follow-up findings for an expression that
// already produced one.
func (c *checker) errorCount() int {
	return c.diags.Errors().Len()
}

func (c *checker) checkStmt(stmt llsl.Stmt) {
	switch s := stmt.(type) {
	case *llsl.CompoundStmt:
		for _, e := range s.Exprs {
			c.checkExpr(e)
		}

	case *llsl.ScopedStmt:
		c.pushScope()
		for _, inner := range s.Statements {
			c.checkStmt(inner)
		}
		c.popScope()

	case *llsl.DeclStmt:
		c.checkDecl(s)

	case *llsl.IfStmt:
		c.checkCondition(s.Condition)
		c.checkStmt(s.Then)
		if s.Else != nil {
			c.checkStmt(s.Else)
		}

	case *llsl.ForStmt:
		// The loop scope covers the initializer, condition, update and body.
		if s.Init != nil {
			c.pushScope()
			c.checkDecl(s.Init)
		}
		if s.Condition != nil {
			c.checkCondition(s.Condition)
		}
		c.enterLoop()
		if s.Update != nil {
			c.checkExpr(s.Update)
		}
		c.checkStmt(s.Body)
		c.exitLoop()
		if s.Init != nil {
			c.popScope()
		}

	case *llsl.WhileStmt:
		c.checkCondition(s.Condition)
		c.enterLoop()
		c.checkStmt(s.Body)
		c.exitLoop()

	case *llsl.DoWhileStmt:
		c.enterLoop()
		c.checkStmt(s.Body)
		c.exitLoop()
		c.checkCondition(s.Condition)

	case *llsl.LoopModStmt:
		if c.loopDepth == 0 {
			c.report(s.Span, llsl.DiagLoopControl, s.Mod)
		}

	default:
		panic(fmt.Sprintf("sema: unexpected statement type %T", stmt))
	}
}

func (c *checker) enterLoop() {
	c.loopDepth++
	if c.loopDepth > c.maxLoopDepth {
		c.maxLoopDepth = c.loopDepth
	}
}

func (c *checker) exitLoop() {
	c.loopDepth--
}

// checkDecl binds each name of the declaration in the current scope.
func (c *checker) checkDecl(decl *llsl.DeclStmt) {
	for _, def := range decl.Defs {
		if _, exists := c.scope.LookupLocal(def.Name); exists {
			c.report(def.Span, llsl.DiagRedeclaration, def.Name)
			continue
		}

		if def.Init != nil {
			before := c.errorCount()
			initType := c.checkExpr(def.Init)
			if c.errorCount() == before && !llsl.Assignable(decl.Type, initType) {
				c.report(def.Span, llsl.DiagTypeMismatch, def.Name, decl.Type, initType)
			}
		}

		// Bound even after a mismatch so later uses do not report again.
		c.scope.Insert(def.Name, decl.Type)
		c.bindings++
	}
}

// checkCondition requires cond to be exactly int.
func (c *checker) checkCondition(cond llsl.Expr) {
	before := c.errorCount()
	typ := c.checkExpr(cond)
	if c.errorCount() == before && typ != llsl.TokenInt {
		c.report(cond.Pos(), llsl.DiagConditionType, typ)
	}
}

// checkExpr resolves variable references below expr, reports invalid
// operand combinations and returns the type of expr.
func (c *checker) checkExpr(expr llsl.Expr) llsl.TokenKind {
	switch e := expr.(type) {
	case *llsl.Literal:
		// nothing to resolve

	case *llsl.ConstructExpr:
		for _, arg := range e.Args {
			c.checkExpr(arg)
		}

	case *llsl.BinaryExpr:
		before := c.errorCount()
		left := c.checkExpr(e.Left)
		right := c.checkExpr(e.Right)
		if c.errorCount() == before && e.Type() == llsl.TokenErr {
			c.report(e.Span, llsl.DiagTypeInference, e.Op, left, right)
		}

	case *llsl.UnaryExpr:
		c.checkExpr(e.Operand)

	case *llsl.AssignExpr:
		c.checkAssign(e)

	case *llsl.VariableRef:
		c.resolveRef(e)

	case *llsl.IncDecExpr:
		c.resolveRef(e.Var)

	case *llsl.CastExpr:
		c.checkExpr(e.Operand)

	case *llsl.CompoundExpr:
		for _, inner := range e.Exprs {
			c.checkExpr(inner)
		}

	default:
		panic(fmt.Sprintf("sema: unexpected expression type %T", expr))
	}

	return expr.Type()
}

func (c *checker) resolveRef(ref *llsl.VariableRef) {
	if ref.Index != nil {
		c.checkExpr(ref.Index)
	}
	typ, ok := c.scope.Lookup(ref.Name, true)
	if !ok {
		c.report(ref.Span, llsl.DiagUndeclared, ref.Name)
		return
	}
	ref.SetType(typ)
}

// checkAssign resolves the target and checks the assigned value against it.
func (c *checker) checkAssign(a *llsl.AssignExpr) {
	for _, index := range a.Target.Indices {
		c.checkExpr(index)
	}

	target, declared := c.scope.Lookup(a.Target.Name, true)
	if !declared {
		c.report(a.Target.Span, llsl.DiagUndeclared, a.Target.Name)
	} else {
		a.Target.SetType(target)
	}

	before := c.errorCount()
	value := c.checkExpr(a.Value)
	if !declared || c.errorCount() != before {
		return
	}

	if !assignCompatible(a.Op, target, value) {
		c.report(a.Span, llsl.DiagAssignMismatch, a.Target.Name, a.Op, target, value)
	}
}

// assignCompatible applies the declaration rule to "=" and the binary
// operator rule to compound assignment. A compound result must be
// assignable back to the target, so int i; i += 1.5 is rejected like
// i = 1.5.
func assignCompatible(op string, target, value llsl.TokenKind) bool {
	if op == "=" {
		return llsl.Assignable(target, value)
	}

	result := llsl.BinaryResultType(strings.TrimSuffix(op, "="), target, value)
	return result != llsl.TokenErr && llsl.Assignable(target, result)
}
