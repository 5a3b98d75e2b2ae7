// Package llsl provides lexing and parsing for the llshader shading language.
//
// The language is a small procedural shading language with scalar types
// (int, float, string) and geometric types (point, vector, normal, color,
// matrix). Programs are a flat list of statements: declarations, blocks,
// if/else, for, while and do-while loops, break/continue and expression
// statements.
//
// # Components
//
//   - Lexer: Tokenizes source text into classified tokens
//   - Keyword and operator tables: Classify words and symbol runs
//   - Parser: Parses tokens into an AST (Abstract Syntax Tree)
//   - AST: Statement and expression nodes; every expression derives its
//     type from its children
//   - Diagnostics: Reporter interface and SourceError values
//
// Semantic checking (scopes, declarations, condition types) lives in the
// sema package.
//
// # Usage
//
//	lexer := llsl.NewLexer(`int x = 3; float y = x + 1.5;`)
//	tokens, err := lexer.Tokenize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	parser := llsl.NewParser(tokens)
//	prog, err := parser.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Operators
//
// Binary operators have no precedence: a chain such as a + b * c == d is
// folded left to right as ((a + b) * c) == d. Use parentheses to group.
package llsl
