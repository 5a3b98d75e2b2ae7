// Package sema performs semantic checking of llsl programs.
//
// Check walks the AST once, depth first. Blocks and for loops with an
// initializer open a new Scope; every scope is closed when its statement
// ends, also after a finding. The checker reports:
//
//   - redeclaration of a name within the same scope
//   - declaration initializers whose type is not the declared type
//     (int initializing float is the one implicit conversion)
//   - conditions whose type is not int
//   - operand combinations the binary type rules reject
//   - assignments that do not fit their target
//   - references to undeclared variables
//   - break and continue outside a loop
//
// Findings go to an optional llsl.Reporter and are returned as an ordered
// llsl.SourceErrors list. The outcome is all or nothing: a program with any
// finding is invalid and must not be handed to code generation.
package sema
