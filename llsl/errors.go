package llsl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a diagnostic.
type ErrorKind uint8

const (
	KindLexical ErrorKind = iota
	KindSyntax
	KindRedeclaration
	KindTypeMismatch
	KindConditionType
	KindTypeInference
	KindUndeclared
	KindLoopControl
)

// Sentinel errors, one per ErrorKind. A *SourceError unwraps to the sentinel
// of its kind so callers can test with errors.Is.
var (
	ErrLexical       = errors.New("lexical error")
	ErrSyntax        = errors.New("syntax error")
	ErrRedeclaration = errors.New("redeclaration")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrConditionType = errors.New("condition type")
	ErrTypeInference = errors.New("type inference")
	ErrUndeclared    = errors.New("undeclared variable")
	ErrLoopControl   = errors.New("loop control outside loop")
)

var kindSentinels = [...]error{
	KindLexical:       ErrLexical,
	KindSyntax:        ErrSyntax,
	KindRedeclaration: ErrRedeclaration,
	KindTypeMismatch:  ErrTypeMismatch,
	KindConditionType: ErrConditionType,
	KindTypeInference: ErrTypeInference,
	KindUndeclared:    ErrUndeclared,
	KindLoopControl:   ErrLoopControl,
}

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	if int(k) < len(kindSentinels) {
		return kindSentinels[k].Error()
	}
	return "unknown error"
}

// SourceError represents an error with source location information.
type SourceError struct {
	Kind    ErrorKind
	ID      DiagID
	Message string
	Span    Span
	Source  string // Original source code (for context display)
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Span.Start.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// Unwrap returns the sentinel error for the error kind.
func (e *SourceError) Unwrap() error {
	if int(e.Kind) < len(kindSentinels) {
		return kindSentinels[e.Kind]
	}
	return nil
}

// FormatWithContext returns the error message with source context.
// Shows the problematic line with a caret pointing to the error location.
func (e *SourceError) FormatWithContext() string {
	if e.Source == "" || e.Span.Start.Line == 0 {
		return e.Error()
	}

	lines := strings.Split(e.Source, "\n")
	lineNum := e.Span.Start.Line
	if lineNum < 1 || lineNum > len(lines) {
		return e.Error()
	}

	line := lines[lineNum-1]
	col := e.Span.Start.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	if e.Span.Source != "" {
		fmt.Fprintf(&sb, "  --> %s:%d:%d\n", e.Span.Source, lineNum, col)
	} else {
		fmt.Fprintf(&sb, "  --> line %d:%d\n", lineNum, col)
	}
	sb.WriteString("   |\n")
	fmt.Fprintf(&sb, "%3d| %s\n", lineNum, line)
	fmt.Fprintf(&sb, "   | %s^\n", strings.Repeat(" ", col-1))

	return sb.String()
}

// NewSourceError creates a new SourceError.
func NewSourceError(kind ErrorKind, message string, span Span, source string) *SourceError {
	return &SourceError{
		Kind:    kind,
		Message: message,
		Span:    span,
		Source:  source,
	}
}

// SourceErrors represents an ordered list of source errors.
type SourceErrors []*SourceError

// Error implements the error interface.
func (el SourceErrors) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	if len(el) == 1 {
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// Unwrap exposes every error in the list to errors.Is and errors.As.
func (el SourceErrors) Unwrap() []error {
	errs := make([]error, len(el))
	for i, e := range el {
		errs[i] = e
	}
	return errs
}

// FormatAll returns all errors formatted with context.
func (el SourceErrors) FormatAll() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.FormatWithContext())
	}
	return sb.String()
}

// Add adds an error to the list.
func (el *SourceErrors) Add(err *SourceError) {
	*el = append(*el, err)
}

// Len returns the number of errors.
func (el SourceErrors) Len() int {
	return len(el)
}

// HasErrors returns true if there are any errors.
func (el SourceErrors) HasErrors() bool {
	return len(el) > 0
}

// OfKind returns the errors of the given kind, in order.
func (el SourceErrors) OfKind(kind ErrorKind) SourceErrors {
	var out SourceErrors
	for _, e := range el {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// IsIncomplete reports whether err describes input that ended too early:
// its only syntax error was raised at end of file. Interactive front ends use
// it to keep reading lines.
func IsIncomplete(err error) bool {
	var list SourceErrors
	if !errors.As(err, &list) || len(list) != 1 {
		return false
	}
	return list[0].ID == DiagUnexpectedEOF
}
