package llsl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// Helper function to parse source code
func parseSource(t *testing.T, source string) *Program {
	t.Helper()
	prog, err := tryParseSource(t, source)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return prog
}

// Helper function to try parsing (may return error)
func tryParseSource(t *testing.T, source string) (*Program, error) {
	t.Helper()
	tokens, lexErr := NewLexer(source).Tokenize()
	if lexErr != nil {
		return nil, lexErr
	}
	return NewParserWithOptions(tokens, ParseOptions{Source: source}).Parse()
}

// singleExpr parses source, which must be one expression statement, and
// returns the expression.
func singleExpr(t *testing.T, source string) Expr {
	t.Helper()
	prog := parseSource(t, source)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	stmt, ok := prog.Statements[0].(*CompoundStmt)
	if !ok {
		t.Fatalf("expected CompoundStmt, got %T", prog.Statements[0])
	}
	if len(stmt.Exprs) != 1 {
		t.Fatalf("expected 1 expression, got %d", len(stmt.Exprs))
	}
	return stmt.Exprs[0]
}

// assignedValue returns the right-hand side of "x = <value>;".
func assignedValue(t *testing.T, source string) Expr {
	t.Helper()
	assign, ok := singleExpr(t, source).(*AssignExpr)
	if !ok {
		t.Fatalf("expected AssignExpr, got %T", singleExpr(t, source))
	}
	return assign.Value
}

func TestParseDeclaration(t *testing.T) {
	prog := parseSource(t, "int x = 3, y;")

	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*DeclStmt)
	if !ok {
		t.Fatalf("expected DeclStmt, got %T", prog.Statements[0])
	}
	if decl.Type != TokenInt {
		t.Errorf("expected type int, got %v", decl.Type)
	}
	if len(decl.Defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(decl.Defs))
	}
	if decl.Defs[0].Name != "x" || decl.Defs[1].Name != "y" {
		t.Errorf("expected names x, y, got %s, %s", decl.Defs[0].Name, decl.Defs[1].Name)
	}
	lit, ok := decl.Defs[0].Init.(*Literal)
	if !ok || lit.Value != "3" || lit.Kind != LitInteger {
		t.Errorf("expected integer literal 3, got %#v", decl.Defs[0].Init)
	}
	if decl.Defs[1].Init != nil {
		t.Errorf("expected no initializer for y, got %T", decl.Defs[1].Init)
	}
}

func TestParseComplexDeclaration(t *testing.T) {
	prog := parseSource(t, "point p = point(1, 2.5, -3);")

	decl := prog.Statements[0].(*DeclStmt)
	ctor, ok := decl.Defs[0].Init.(*ConstructExpr)
	if !ok {
		t.Fatalf("expected ConstructExpr, got %T", decl.Defs[0].Init)
	}
	if ctor.Target != TokenPoint {
		t.Errorf("expected point constructor, got %v", ctor.Target)
	}
	if len(ctor.Args) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(ctor.Args))
	}
	if lit, ok := ctor.Args[2].(*Literal); !ok || lit.Value != "-3" {
		t.Errorf("expected literal -3, got %#v", ctor.Args[2])
	}
}

func TestParseLeftToRightFolding(t *testing.T) {
	// a + b * c is (a + b) * c
	value := assignedValue(t, "x = a + b * c;")

	outer, ok := value.(*BinaryExpr)
	if !ok || outer.Op != "*" {
		t.Fatalf("expected outer '*', got %#v", value)
	}
	inner, ok := outer.Left.(*BinaryExpr)
	if !ok || inner.Op != "+" {
		t.Fatalf("expected inner '+', got %#v", outer.Left)
	}
	if ref, ok := outer.Right.(*VariableRef); !ok || ref.Name != "c" {
		t.Errorf("expected c on the right, got %#v", outer.Right)
	}
}

func TestParseMixedOperatorChain(t *testing.T) {
	// All chain operators bind equally.
	value := assignedValue(t, "x = a < b && c | d;")

	var ops []string
	for e := value; ; {
		b, ok := e.(*BinaryExpr)
		if !ok {
			break
		}
		ops = append(ops, b.Op)
		e = b.Left
	}
	if got := strings.Join(ops, " "); got != "| && <" {
		t.Errorf("expected fold order '| && <', got %q", got)
	}
}

func TestParseParenthesizedGrouping(t *testing.T) {
	value := assignedValue(t, "x = a + (b * c);")

	bin, ok := value.(*BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected '+', got %#v", value)
	}
	group, ok := bin.Right.(*CompoundExpr)
	if !ok || len(group.Exprs) != 1 {
		t.Fatalf("expected single-element CompoundExpr, got %#v", bin.Right)
	}
	if inner, ok := group.Exprs[0].(*BinaryExpr); !ok || inner.Op != "*" {
		t.Errorf("expected '*' inside parentheses, got %#v", group.Exprs[0])
	}
}

func TestParseIndexAsymmetry(t *testing.T) {
	assign, ok := singleExpr(t, "a[1][2] = b[3][4];").(*AssignExpr)
	if !ok {
		t.Fatal("expected AssignExpr")
	}
	if len(assign.Target.Indices) != 2 {
		t.Errorf("assignment target: expected 2 indices, got %d", len(assign.Target.Indices))
	}

	ref, ok := assign.Value.(*VariableRef)
	if !ok {
		t.Fatalf("expected VariableRef, got %T", assign.Value)
	}
	lit, ok := ref.Index.(*Literal)
	if !ok || lit.Value != "4" {
		t.Errorf("reference: expected only the last index 4, got %#v", ref.Index)
	}
}

func TestParseSignedLiterals(t *testing.T) {
	tests := []struct {
		source string
		value  string
		kind   LitKind
	}{
		{"x = -1;", "-1", LitInteger},
		{"x = +2;", "+2", LitInteger},
		{"x = -1.5;", "-1.5", LitFloatingPoint},
		{"x = -.5e3;", "-.5e3", LitFloatingPoint},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			lit, ok := assignedValue(t, tt.source).(*Literal)
			if !ok {
				t.Fatal("expected Literal")
			}
			if lit.Value != tt.value || lit.Kind != tt.kind {
				t.Errorf("got %q (%v), want %q (%v)", lit.Value, lit.Kind, tt.value, tt.kind)
			}
		})
	}

	// After an operand the sign is a binary operator.
	bin, ok := assignedValue(t, "x = a - -1;").(*BinaryExpr)
	if !ok || bin.Op != "-" {
		t.Fatal("expected binary '-'")
	}
	if lit, ok := bin.Right.(*Literal); !ok || lit.Value != "-1" {
		t.Errorf("expected literal -1 on the right, got %#v", bin.Right)
	}
}

func TestParseCastAndConstructor(t *testing.T) {
	cast, ok := assignedValue(t, "x = (float) y + 1;").(*BinaryExpr)
	if !ok {
		t.Fatal("expected the cast to bind to its operand only")
	}
	if c, ok := cast.Left.(*CastExpr); !ok || c.Target != TokenFloat {
		t.Errorf("expected float cast, got %#v", cast.Left)
	}

	list, ok := assignedValue(t, "x = (point(1, 2, 3) * 2, 4);").(*CompoundExpr)
	if !ok {
		t.Fatal("expected CompoundExpr")
	}
	if len(list.Exprs) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(list.Exprs))
	}
	first, ok := list.Exprs[0].(*BinaryExpr)
	if !ok {
		t.Fatalf("expected binary first element, got %T", list.Exprs[0])
	}
	if ctor, ok := first.Left.(*ConstructExpr); !ok || ctor.Target != TokenPoint {
		t.Errorf("expected point constructor, got %#v", first.Left)
	}

	single, ok := assignedValue(t, "x = (color(0));").(*CompoundExpr)
	if !ok || single.Type() != TokenColor {
		t.Errorf("expected singleton list of type color, got %#v", single)
	}

	empty, ok := assignedValue(t, "x = vector();").(*ConstructExpr)
	if !ok || len(empty.Args) != 0 {
		t.Errorf("expected empty constructor, got %#v", empty)
	}
}

func TestParseUnaryAndIncDec(t *testing.T) {
	bin, ok := assignedValue(t, "x = ~a & b;").(*BinaryExpr)
	if !ok || bin.Op != "&" {
		t.Fatal("expected '&'")
	}
	if u, ok := bin.Left.(*UnaryExpr); !ok || u.Op != "~" {
		t.Errorf("expected unary '~' on the left, got %#v", bin.Left)
	}

	inc, ok := singleExpr(t, "++i[2];").(*IncDecExpr)
	if !ok || inc.Op != "++" {
		t.Fatal("expected '++'")
	}
	if inc.Var.Name != "i" || inc.Var.Index == nil {
		t.Errorf("expected indexed reference to i, got %#v", inc.Var)
	}
}

func TestParseAssignments(t *testing.T) {
	nested, ok := singleExpr(t, "x = y = 3;").(*AssignExpr)
	if !ok {
		t.Fatal("expected AssignExpr")
	}
	if inner, ok := nested.Value.(*AssignExpr); !ok || inner.Target.Name != "y" {
		t.Errorf("expected nested assignment to y, got %#v", nested.Value)
	}

	for _, op := range Operators(TokenAssign) {
		src := "x " + op + " 1;"
		assign, ok := singleExpr(t, src).(*AssignExpr)
		if !ok || assign.Op != op {
			t.Errorf("%q: expected assignment with %q", src, op)
		}
	}

	prog := parseSource(t, "x = 1, y += 2;")
	if n := len(prog.Statements[0].(*CompoundStmt).Exprs); n != 2 {
		t.Errorf("expected 2 expressions, got %d", n)
	}
}

func TestParseControlFlow(t *testing.T) {
	source := `
if (a) x = 1; else { x = 2; }
while (i < 10) ++i;
do { i -= 1; } while (i);
for (int j = 0; j < 4; j += 1, k = j) { break; }
for (;;) continue;
;
`
	prog := parseSource(t, source)

	if len(prog.Statements) != 6 {
		t.Fatalf("expected 6 statements, got %d", len(prog.Statements))
	}

	ifStmt, ok := prog.Statements[0].(*IfStmt)
	if !ok {
		t.Fatalf("statement 0: expected IfStmt, got %T", prog.Statements[0])
	}
	if _, ok := ifStmt.Then.(*CompoundStmt); !ok {
		t.Errorf("if: expected CompoundStmt then-branch, got %T", ifStmt.Then)
	}
	if _, ok := ifStmt.Else.(*ScopedStmt); !ok {
		t.Errorf("if: expected ScopedStmt else-branch, got %T", ifStmt.Else)
	}

	if _, ok := prog.Statements[1].(*WhileStmt); !ok {
		t.Errorf("statement 1: expected WhileStmt, got %T", prog.Statements[1])
	}

	doWhile, ok := prog.Statements[2].(*DoWhileStmt)
	if !ok {
		t.Fatalf("statement 2: expected DoWhileStmt, got %T", prog.Statements[2])
	}
	if ref, ok := doWhile.Condition.(*VariableRef); !ok || ref.Name != "i" {
		t.Errorf("do-while: expected condition i, got %#v", doWhile.Condition)
	}

	forStmt, ok := prog.Statements[3].(*ForStmt)
	if !ok {
		t.Fatalf("statement 3: expected ForStmt, got %T", prog.Statements[3])
	}
	if forStmt.Init == nil || forStmt.Init.Defs[0].Name != "j" {
		t.Errorf("for: expected declaration of j, got %#v", forStmt.Init)
	}
	if forStmt.Condition == nil {
		t.Error("for: expected condition")
	}
	if forStmt.Update == nil || len(forStmt.Update.Exprs) != 2 {
		t.Errorf("for: expected 2 update expressions, got %#v", forStmt.Update)
	}
	body := forStmt.Body.(*ScopedStmt)
	if mod, ok := body.Statements[0].(*LoopModStmt); !ok || mod.Mod != TokenBreak {
		t.Errorf("for: expected break in body, got %#v", body.Statements[0])
	}

	empty, ok := prog.Statements[4].(*ForStmt)
	if !ok {
		t.Fatalf("statement 4: expected ForStmt, got %T", prog.Statements[4])
	}
	if empty.Init != nil || empty.Condition != nil || empty.Update != nil {
		t.Error("for(;;): expected all clauses empty")
	}

	if stmt, ok := prog.Statements[5].(*CompoundStmt); !ok || len(stmt.Exprs) != 0 {
		t.Errorf("statement 5: expected empty statement, got %#v", prog.Statements[5])
	}
}

func TestParseDanglingElse(t *testing.T) {
	prog := parseSource(t, "if (a) if (b) x = 1; else x = 2;")

	outer := prog.Statements[0].(*IfStmt)
	if outer.Else != nil {
		t.Error("else should bind to the inner if")
	}
	inner, ok := outer.Then.(*IfStmt)
	if !ok || inner.Else == nil {
		t.Errorf("expected inner if with else, got %#v", outer.Then)
	}
}

func TestParseStatementPositions(t *testing.T) {
	prog := parseSource(t, "int x;\n  while (x) { }")

	pos := prog.Statements[1].Pos().Start
	if pos.Line != 2 || pos.Column != 3 {
		t.Errorf("expected while at 2:3, got %d:%d", pos.Line, pos.Column)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		kind     ErrorKind
		id       DiagID
		expected string
		line     int
		column   int
	}{
		{"missing initializer", "int x = ;", KindSyntax, DiagUnexpectedToken, "expression", 1, 9},
		{"missing name", "float = 1;", KindSyntax, DiagUnexpectedToken, "identifier", 1, 7},
		{"missing semicolon", "x = 1 y = 2;", KindSyntax, DiagUnexpectedToken, "';'", 1, 7},
		{"for without declaration", "for (i = 0; i; ) {}", KindSyntax, DiagUnexpectedToken, "declaration", 1, 6},
		{"unsigned variable", "x = -y;", KindSyntax, DiagUnexpectedToken, "numeric literal", 1, 6},
		{"incdec on literal", "++1;", KindSyntax, DiagUnexpectedToken, "variable", 1, 3},
		{"glued postfix incdec", "i++;", KindSyntax, DiagUnexpectedToken, "numeric literal", 1, 3},
		{"unknown symbol", "x = 1 @ 2;", KindLexical, DiagUnknownSymbol, "';'", 1, 7},
		{"unterminated string", `x = "abc`, KindLexical, DiagUnterminatedString, "expression", 1, 5},
		{"missing brace", "{ x = 1;", KindSyntax, DiagUnexpectedEOF, "'}'", 1, 9},
		{"missing while", "do x = 1; (x);", KindSyntax, DiagUnexpectedToken, "while", 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := NewLexer(tt.source).Tokenize()
			parser := NewParser(tokens)
			prog, err := parser.Parse()
			if err == nil {
				t.Fatal("expected error")
			}
			if prog != nil {
				t.Error("expected nil program on error")
			}

			var list SourceErrors
			if !errors.As(err, &list) || list.Len() != 1 {
				t.Fatalf("expected exactly one SourceError, got %v", err)
			}
			e := list[0]
			if e.Kind != tt.kind || e.ID != tt.id {
				t.Errorf("got kind %v id %d, want kind %v id %d", e.Kind, e.ID, tt.kind, tt.id)
			}
			if e.Span.Start.Line != tt.line || e.Span.Start.Column != tt.column {
				t.Errorf("got position %d:%d, want %d:%d",
					e.Span.Start.Line, e.Span.Start.Column, tt.line, tt.column)
			}

			mismatches := parser.Mismatches()
			if len(mismatches) != 1 {
				t.Fatalf("expected 1 mismatch, got %d", len(mismatches))
			}
			if mismatches[0].Expected != tt.expected {
				t.Errorf("expected mismatch %q, got %q", tt.expected, mismatches[0].Expected)
			}
		})
	}
}

func TestParseMismatchExpectedKind(t *testing.T) {
	tests := []struct {
		source string
		kind   TokenKind
	}{
		{"float = 1;", TokenIdent},
		{"do x = 1; (x);", TokenWhile},
		{"x = 1 y = 2;", TokenPunct},
		{"int x = ;", TokenUnknown},
		{"x = -y;", TokenUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, _ := NewLexer(tt.source).Tokenize()
			parser := NewParser(tokens)
			if _, err := parser.Parse(); err == nil {
				t.Fatal("expected error")
			}
			mismatches := parser.Mismatches()
			if len(mismatches) != 1 {
				t.Fatalf("expected 1 mismatch, got %d", len(mismatches))
			}
			if got := mismatches[0].ExpectedKind; got != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, got)
			}
		})
	}
}

func TestParseSpans(t *testing.T) {
	type pos struct{ line, column int }
	check := func(t *testing.T, what string, span Span, start, end pos) {
		t.Helper()
		if got := (pos{span.Start.Line, span.Start.Column}); got != start {
			t.Errorf("%s: start %v, want %v", what, got, start)
		}
		if got := (pos{span.End.Line, span.End.Column}); got != end {
			t.Errorf("%s: end %v, want %v", what, got, end)
		}
	}

	prog := parseSource(t, "int x = a + 12;\ns = \"ab\";\na[1][2] = b;\n{\n  x = 1;\n}")
	if len(prog.Statements) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Statements))
	}

	decl := prog.Statements[0].(*DeclStmt)
	check(t, "declaration", decl.Span, pos{1, 1}, pos{1, 16})
	check(t, "definition", decl.Defs[0].Span, pos{1, 5}, pos{1, 15})
	check(t, "binary", decl.Defs[0].Init.Pos(), pos{1, 9}, pos{1, 15})
	if decl.Span.End.Offset != 15 {
		t.Errorf("declaration: end offset %d, want 15", decl.Span.End.Offset)
	}

	str := prog.Statements[1].(*CompoundStmt)
	check(t, "string statement", str.Span, pos{2, 1}, pos{2, 10})
	check(t, "string literal", str.Exprs[0].(*AssignExpr).Value.Pos(), pos{2, 5}, pos{2, 9})

	assign := prog.Statements[2].(*CompoundStmt).Exprs[0].(*AssignExpr)
	check(t, "assignment target", assign.Target.Span, pos{3, 1}, pos{3, 8})
	check(t, "assignment", assign.Span, pos{3, 1}, pos{3, 12})

	check(t, "block", prog.Statements[3].Pos(), pos{4, 1}, pos{6, 2})
}

func TestParseErrorsUnwrapToSentinel(t *testing.T) {
	_, err := tryParseSource(t, "int x = ;")
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("expected errors.Is(err, ErrSyntax), got %v", err)
	}
	if errors.Is(err, ErrLexical) {
		t.Error("syntax error should not match ErrLexical")
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	_, err := tryParseSource(t, "int x = ; float = 1; y = 2;")

	var list SourceErrors
	if !errors.As(err, &list) {
		t.Fatalf("expected SourceErrors, got %T", err)
	}
	if list.Len() != 1 {
		t.Errorf("expected 1 error without recovery, got %d", list.Len())
	}
}

func TestParseRecover(t *testing.T) {
	source := "int x = ; int y = 2; float = 1; y = 3;"
	tokens, _ := NewLexer(source).Tokenize()
	prog, err := NewParserWithOptions(tokens, ParseOptions{Recover: true, Source: source}).Parse()

	if prog != nil {
		t.Error("expected nil program after recovered errors")
	}
	var list SourceErrors
	if !errors.As(err, &list) {
		t.Fatalf("expected SourceErrors, got %T", err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", list.Len(), list.FormatAll())
	}
	wantCols := []int{9, 28}
	for i, want := range wantCols {
		if got := list[i].Span.Start.Column; got != want {
			t.Errorf("error %d: expected column %d, got %d", i, want, got)
		}
	}
}

type recordingReporter struct {
	ids []DiagID
}

func (r *recordingReporter) Report(_ Span, id DiagID, _ ...any) {
	r.ids = append(r.ids, id)
}

func TestParseReporter(t *testing.T) {
	rep := &recordingReporter{}
	tokens, _ := NewLexer("x = ;").Tokenize()
	_, err := NewParserWithOptions(tokens, ParseOptions{Reporter: rep}).Parse()
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rep.ids) != 1 || rep.ids[0] != DiagUnexpectedToken {
		t.Errorf("expected one DiagUnexpectedToken report, got %v", rep.ids)
	}
}

func TestParseBufferName(t *testing.T) {
	tokens, _ := NewLexer("x = ;").Tokenize()
	_, err := NewParserWithOptions(tokens, ParseOptions{BufferName: "main.llsl", Source: "x = ;"}).Parse()

	var list SourceErrors
	if !errors.As(err, &list) {
		t.Fatalf("expected SourceErrors, got %T", err)
	}
	if list[0].Span.Source != "main.llsl" {
		t.Errorf("expected buffer name in span, got %q", list[0].Span.Source)
	}
	if !strings.Contains(list.FormatAll(), "main.llsl:1:5") {
		t.Errorf("expected buffer location in formatted error, got:\n%s", list.FormatAll())
	}
}

func TestParseWithoutEOFToken(t *testing.T) {
	tokens := []Token{
		{Kind: TokenIdent, Lexeme: "x", Line: 1, Column: 1},
		{Kind: TokenAssign, Lexeme: "=", Line: 1, Column: 3},
		{Kind: TokenIntLiteral, Lexeme: "1", Line: 1, Column: 5},
		{Kind: TokenPunct, Lexeme: ";", Line: 1, Column: 6},
	}
	prog, err := NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Errorf("expected 1 statement, got %d", len(prog.Statements))
	}
}

func TestIsIncomplete(t *testing.T) {
	tests := []struct {
		source     string
		incomplete bool
	}{
		{"int x = 3", true},
		{"{ x = 1;", true},
		{"if (a)", true},
		{"for (int i = 0;", true},
		{"int x = ;", false},
		{`x = "abc`, false},
		{"x = 1;", false},
	}

	for _, tt := range tests {
		_, err := tryParseSource(t, tt.source)
		if got := IsIncomplete(err); got != tt.incomplete {
			t.Errorf("IsIncomplete(%q) = %v, want %v (err: %v)", tt.source, got, tt.incomplete, err)
		}
	}

	wrapped := fmt.Errorf("parse error: %w", SourceErrors{{ID: DiagUnexpectedEOF}})
	if !IsIncomplete(wrapped) {
		t.Error("IsIncomplete should see through wrapping")
	}
}

// shape flattens a tree into a comparable list of node descriptions.
func shape(prog *Program) []string {
	var out []string
	Inspect(prog, func(n Node) bool {
		switch n := n.(type) {
		case *BinaryExpr:
			out = append(out, "binary "+n.Op)
		case *Literal:
			out = append(out, "literal "+n.Value)
		case *VariableRef:
			out = append(out, "ref "+n.Name)
		case *AssignExpr:
			out = append(out, "assign "+n.Op)
		default:
			out = append(out, fmt.Sprintf("%T", n))
		}
		return true
	})
	return out
}

// untokenize joins token lexemes back into source text.
func untokenize(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenEOF:
		case TokenStringLiteral:
			parts = append(parts, `"`+tok.Lexeme+`"`)
		default:
			parts = append(parts, tok.Lexeme)
		}
	}
	return strings.Join(parts, " ")
}

func TestParseRoundTripThroughTokens(t *testing.T) {
	source := `
string s = "a b";
vector v = vector(1, -2.5, .5), w;
for (int i = 0; i < 3; i += 1) {
    v[i] = (float) i * 2 + -1;
    if (s == "x") continue; else { ++i; }
}
do { w = (v * 2, 1); } while (!i);
`
	tokens, _ := NewLexer(source).Tokenize()
	first := parseSource(t, source)
	second := parseSource(t, untokenize(tokens))

	a, b := shape(first), shape(second)
	if strings.Join(a, "\n") != strings.Join(b, "\n") {
		t.Errorf("reparsed tree differs:\nfirst:  %v\nsecond: %v", a, b)
	}
}
