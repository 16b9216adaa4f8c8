package diag

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/internal/token"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Error is a single parse diagnostic. Parsing never aborts on one of
// these; they accumulate in a Sink while the parser keeps building a
// structurally valid tree.
type Error struct {
	Span     token.Span
	Severity Severity
	Message  string

	// Found and Expected are populated for unexpected-token errors so
	// tooling can offer completions; Message already renders them.
	Found    string
	Expected []string
}

func (e Error) Error() string {
	return fmt.Sprintf("%d..%d: %s", e.Span.Start, e.Span.End, e.Message)
}

// Message builds a free-form error diagnostic.
func Message(span token.Span, msg string) Error {
	return Error{Span: span, Severity: SeverityError, Message: msg}
}

// UnexpectedToken builds a diagnostic for a token that does not fit the
// grammar, carrying the set of token descriptions that would have.
func UnexpectedToken(span token.Span, found string, expected ...string) Error {
	msg := fmt.Sprintf("unexpected token `%s`", found)
	if len(expected) > 0 {
		quoted := make([]string, len(expected))
		for i, e := range expected {
			quoted[i] = "`" + e + "`"
		}
		msg += ", expected one of " + strings.Join(quoted, ", ")
	}
	return Error{
		Span:     span,
		Severity: SeverityError,
		Message:  msg,
		Found:    found,
		Expected: expected,
	}
}

// Sink is an append-only diagnostic collector. The order of collected
// errors matches parse order; nothing is ever removed.
type Sink struct {
	errors []Error
}

// Emit appends a diagnostic.
func (s *Sink) Emit(e Error) {
	s.errors = append(s.errors, e)
}

// Errors returns the collected diagnostics in emission order.
func (s *Sink) Errors() []Error {
	return s.errors
}

// HasErrors reports whether any error-severity diagnostic was emitted.
func (s *Sink) HasErrors() bool {
	for _, e := range s.errors {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
