package diag_test

import (
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/diag"
	"github.com/lumen-lang/lumen/internal/token"
)

func TestUnexpectedTokenMessage(t *testing.T) {
	span := token.Span{Start: 4, End: 5, Line: 1, Column: 5}
	err := diag.UnexpectedToken(span, "identifier", "=", ":")

	if !strings.Contains(err.Message, "unexpected token `identifier`") {
		t.Errorf("message = %q", err.Message)
	}
	if !strings.Contains(err.Message, "`=`") || !strings.Contains(err.Message, "`:`") {
		t.Errorf("expected set missing from %q", err.Message)
	}
	if err.Found != "identifier" || len(err.Expected) != 2 {
		t.Error("structured fields lost")
	}
}

func TestSinkIsAppendOnly(t *testing.T) {
	var sink diag.Sink

	if sink.HasErrors() {
		t.Error("fresh sink reports errors")
	}

	sink.Emit(diag.Message(token.Span{Start: 0, End: 1}, "first"))
	sink.Emit(diag.Message(token.Span{Start: 2, End: 3}, "second"))

	errs := sink.Errors()
	if len(errs) != 2 {
		t.Fatalf("len = %d, want 2", len(errs))
	}
	if errs[0].Message != "first" || errs[1].Message != "second" {
		t.Error("emission order not preserved")
	}
	if !sink.HasErrors() {
		t.Error("sink with errors reports none")
	}
}

func TestWarningsDoNotCountAsErrors(t *testing.T) {
	var sink diag.Sink
	e := diag.Message(token.Span{}, "heads up")
	e.Severity = diag.SeverityWarning
	sink.Emit(e)

	if sink.HasErrors() {
		t.Error("a warning alone should not trip HasErrors")
	}
}
