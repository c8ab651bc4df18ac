package diag

import (
	"errors"
	"strings"
	"testing"
)

func TestSeverityByCode(t *testing.T) {
	if Lex.Severity() != Error {
		t.Errorf("lex should be an error")
	}
	if Syntax.Severity() != Error {
		t.Errorf("syntax should be an error")
	}
	if DuplicateKey.Severity() != Warning {
		t.Errorf("duplicate-key should be a warning")
	}
	if UnresolvedComment.Severity() != Warning {
		t.Errorf("unresolved-comment should be a warning")
	}
}

func TestErr(t *testing.T) {
	var l List
	if l.Err() != nil {
		t.Fatalf("empty list: %v", l.Err())
	}
	l.Add(DuplicateKey, 1, 1, "duplicate key %q", "a")
	if l.Err() != nil {
		t.Fatalf("warnings only: %v", l.Err())
	}
	if l.HasErrors() {
		t.Errorf("warnings only, HasErrors true")
	}
	l.Add(Syntax, 2, 5, "expected value")
	err := l.Err()
	if err == nil {
		t.Fatalf("no error for syntax diagnostic")
	}
	var d *Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("cannot unwrap diagnostic from %v", err)
	}
	if d.Line != 2 || d.Col != 5 {
		t.Errorf("wrong position: %d:%d", d.Line, d.Col)
	}
	l.Add(Lex, 3, 1, "unterminated string")
	if !strings.Contains(l.Err().Error(), "1 more error") {
		t.Errorf("summary missing count: %v", l.Err())
	}
}

func TestCount(t *testing.T) {
	var l List
	l.Add(Lex, 1, 1, "bad escape")
	l.Add(Lex, 1, 7, "bad escape")
	l.Add(Syntax, 2, 1, "expected value")
	if got := l.Count(Lex); got != 2 {
		t.Errorf("Count(Lex) = %d, want 2", got)
	}
	if got := l.Count(UnresolvedComment); got != 0 {
		t.Errorf("Count(UnresolvedComment) = %d, want 0", got)
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Diagnostic{Code: Syntax, Severity: Error, Msg: "expected value", Line: 3, Col: 9}
	if got := d.Error(); got != "3:9: syntax: expected value" {
		t.Errorf("Error() = %q", got)
	}
	d.Line = 0
	if got := d.Error(); got != "syntax: expected value" {
		t.Errorf("positionless Error() = %q", got)
	}
}
