package llsl

import "fmt"

// DiagID identifies a diagnostic message.
type DiagID uint8

const (
	DiagUnexpectedToken DiagID = iota
	DiagUnexpectedEOF
	DiagUnknownSymbol
	DiagUnterminatedString
	DiagRedeclaration
	DiagTypeMismatch
	DiagAssignMismatch
	DiagConditionType
	DiagTypeInference
	DiagUndeclared
	DiagLoopControl
)

var diagnosticTable = [...]struct {
	kind   ErrorKind
	format string
}{
	DiagUnexpectedToken:    {KindSyntax, "unexpected token %q, expected %s"},
	DiagUnexpectedEOF:      {KindSyntax, "unexpected end of input, expected %s"},
	DiagUnknownSymbol:      {KindLexical, "unknown symbol %q"},
	DiagUnterminatedString: {KindLexical, "unterminated string literal"},
	DiagRedeclaration:      {KindRedeclaration, "redeclaration of variable %q"},
	DiagTypeMismatch:       {KindTypeMismatch, "type mismatch in declaration of %q: cannot initialize %s with %s"},
	DiagAssignMismatch:     {KindTypeMismatch, "type mismatch in assignment to %q: cannot apply %q to %s and %s"},
	DiagConditionType:      {KindConditionType, "condition must be int, got %s"},
	DiagTypeInference:      {KindTypeInference, "invalid operands to %q: %s and %s"},
	DiagUndeclared:         {KindUndeclared, "use of undeclared variable %q"},
	DiagLoopControl:        {KindLoopControl, "%s statement not within a loop"},
}

// Kind returns the error kind a diagnostic belongs to.
func (id DiagID) Kind() ErrorKind {
	if int(id) < len(diagnosticTable) {
		return diagnosticTable[id].kind
	}
	return KindSyntax
}

// Format renders the diagnostic message with its arguments.
func (id DiagID) Format(args ...any) string {
	if int(id) >= len(diagnosticTable) {
		return fmt.Sprintf("diagnostic %d", id)
	}
	return fmt.Sprintf(diagnosticTable[id].format, args...)
}

// Reporter receives diagnostics from the parser and the checker. It only
// collects; formatting and printing are up to the implementation.
type Reporter interface {
	Report(span Span, id DiagID, args ...any)
}

// Diagnostics is a Reporter that accumulates SourceErrors in report order.
type Diagnostics struct {
	source string
	errors SourceErrors
}

// NewDiagnostics creates a collector. source is attached to every error for
// context display and may be empty.
func NewDiagnostics(source string) *Diagnostics {
	return &Diagnostics{source: source}
}

// Report implements Reporter.
func (d *Diagnostics) Report(span Span, id DiagID, args ...any) {
	d.errors.Add(&SourceError{
		Kind:    id.Kind(),
		ID:      id,
		Message: id.Format(args...),
		Span:    span,
		Source:  d.source,
	})
}

// Errors returns the collected errors.
func (d *Diagnostics) Errors() SourceErrors {
	return d.errors
}

// HasErrors reports whether anything was reported.
func (d *Diagnostics) HasErrors() bool {
	return d.errors.HasErrors()
}

// Err returns the collected errors as an error, or nil if there are none.
func (d *Diagnostics) Err() error {
	if !d.errors.HasErrors() {
		return nil
	}
	return d.errors
}

// tee forwards every report to all reporters.
type tee []Reporter

func (t tee) Report(span Span, id DiagID, args ...any) {
	for _, r := range t {
		r.Report(span, id, args...)
	}
}

// Tee returns a Reporter that forwards to each non-nil reporter.
func Tee(reporters ...Reporter) Reporter {
	var t tee
	for _, r := range reporters {
		if r != nil {
			t = append(t, r)
		}
	}
	if len(t) == 1 {
		return t[0]
	}
	return t
}
