// Package llshader provides a Pure Go front end for the llshader shading
// language.
//
// llshader turns shader source into a type-checked AST that a code
// generator can lower. The package provides a simple, high-level API as well
// as access to the individual stages:
//
//	prog, err := llshader.Frontend(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Code generation is not part of this module. A Backend receives the checked
// program from Compile:
//
//	out, err := llshader.Compile(source, myBackend)
package llshader

import (
	"errors"
	"fmt"

	"github.com/gogpu/llshader/llsl"
	"github.com/gogpu/llshader/sema"
)

// ErrInvalidProgram is returned when a program that did not pass semantic
// checking is handed to code generation.
var ErrInvalidProgram = errors.New("program has not passed semantic checking")

// Backend lowers a checked program to a target representation.
type Backend interface {
	Generate(prog *llsl.Program) ([]byte, error)
}

// CompileOptions configures the front end.
type CompileOptions struct {
	// BufferName names the source in diagnostics (usually the file name).
	BufferName string

	// Recover keeps parsing after a syntax error to report more of them.
	Recover bool

	// Reporter receives every diagnostic as it is produced.
	Reporter llsl.Reporter
}

// DefaultOptions returns sensible default options.
func DefaultOptions() CompileOptions {
	return CompileOptions{
		BufferName: "<input>",
	}
}

// Parse parses source code to an AST using default options.
//
// This is the first stage of compilation. The AST is not yet checked:
// variable references have no type until Check runs.
func Parse(source string) (*llsl.Program, error) {
	return ParseWithOptions(source, DefaultOptions())
}

// ParseWithOptions parses source code to an AST with custom options.
func ParseWithOptions(source string, opts CompileOptions) (*llsl.Program, error) {
	lexer := llsl.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}

	parser := llsl.NewParserWithOptions(tokens, llsl.ParseOptions{
		Recover:    opts.Recover,
		Reporter:   opts.Reporter,
		Source:     source,
		BufferName: opts.BufferName,
	})
	prog, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return prog, nil
}

// Check runs semantic checking on a parsed program. source is only used for
// error context and may be empty.
//
// The returned error wraps the ordered list of findings (llsl.SourceErrors).
func Check(prog *llsl.Program, source string) error {
	return checkWithOptions(prog, source, DefaultOptions())
}

func checkWithOptions(prog *llsl.Program, source string, opts CompileOptions) error {
	findings, err := sema.Check(prog, sema.Options{Source: source, Reporter: opts.Reporter})
	if err != nil {
		return fmt.Errorf("semantic error: %w", err)
	}
	if findings.HasErrors() {
		return fmt.Errorf("semantic error: %w", findings)
	}
	return nil
}

// Frontend parses and checks source code using default options.
func Frontend(source string) (*llsl.Program, error) {
	return FrontendWithOptions(source, DefaultOptions())
}

// FrontendWithOptions parses and checks source code with custom options.
// The program is returned only if both stages succeed.
func FrontendWithOptions(source string, opts CompileOptions) (*llsl.Program, error) {
	prog, err := ParseWithOptions(source, opts)
	if err != nil {
		return nil, err
	}
	if err := checkWithOptions(prog, source, opts); err != nil {
		return nil, err
	}
	return prog, nil
}

// Compile runs the front end and hands the checked program to backend.
//
// The pipeline is:
//  1. Tokenize and parse source to AST
//  2. Check scopes and types
//  3. Generate output with backend
func Compile(source string, backend Backend) ([]byte, error) {
	return CompileWithOptions(source, backend, DefaultOptions())
}

// CompileWithOptions is Compile with custom options.
func CompileWithOptions(source string, backend Backend, opts CompileOptions) ([]byte, error) {
	prog, err := FrontendWithOptions(source, opts)
	if err != nil {
		return nil, err
	}
	return Generate(prog, backend)
}

// Generate hands an already checked program to backend. Programs that were
// not checked, or failed checking, are rejected with ErrInvalidProgram.
func Generate(prog *llsl.Program, backend Backend) ([]byte, error) {
	if prog == nil || !prog.Info.Checked || !prog.Info.Valid {
		return nil, ErrInvalidProgram
	}
	out, err := backend.Generate(prog)
	if err != nil {
		return nil, fmt.Errorf("code generation error: %w", err)
	}
	return out, nil
}
