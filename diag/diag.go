// Package diag defines the diagnostic records accumulated while reading
// and writing jot documents. Diagnostics are collected, never thrown:
// every entry point returns its result together with the problems found,
// and a result with diagnostics is still usable.
package diag

import (
	"fmt"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("<severity %d>", int(s))
	}
}

// Code classifies a diagnostic.
type Code int

const (
	// Lex covers unterminated literals and comments and invalid escapes.
	Lex Code = iota
	// Syntax covers unexpected tokens and missing separators or colons.
	Syntax
	// DuplicateKey reports a repeated object key. The member is kept.
	DuplicateKey
	// UnresolvedComment reports a comment whose path no longer resolves
	// at serialization time. The comment is dropped.
	UnresolvedComment
)

func (c Code) String() string {
	switch c {
	case Lex:
		return "lex"
	case Syntax:
		return "syntax"
	case DuplicateKey:
		return "duplicate-key"
	case UnresolvedComment:
		return "unresolved-comment"
	default:
		return fmt.Sprintf("<code %d>", int(c))
	}
}

// Severity returns the severity implied by the code. Lex and Syntax
// problems are errors, the rest are warnings.
func (c Code) Severity() Severity {
	switch c {
	case Lex, Syntax:
		return Error
	default:
		return Warning
	}
}

// Diagnostic is one recoverable problem. Line and Col are 1-based; a
// zero Line means the problem has no source position.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Msg      string
	Line     int
	Col      int
}

func (d *Diagnostic) Error() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Code, d.Msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Col, d.Code, d.Msg)
}

// List accumulates diagnostics in encounter order.
type List []Diagnostic

// Add appends a diagnostic with the code's implied severity.
func (l *List) Add(code Code, line, col int, format string, args ...any) {
	*l = append(*l, Diagnostic{
		Code:     code,
		Severity: code.Severity(),
		Msg:      fmt.Sprintf(format, args...),
		Line:     line,
		Col:      col,
	})
}

func (l List) HasErrors() bool {
	for i := range l {
		if l[i].Severity == Error {
			return true
		}
	}
	return false
}

// Count returns the number of diagnostics with the given code.
func (l List) Count(code Code) int {
	n := 0
	for i := range l {
		if l[i].Code == code {
			n++
		}
	}
	return n
}

// Err materializes error-severity diagnostics into a single error, or
// nil if the list holds only warnings. The first error is wrapped so
// callers can inspect it with errors.As.
func (l List) Err() error {
	var first *Diagnostic
	n := 0
	for i := range l {
		if l[i].Severity != Error {
			continue
		}
		if first == nil {
			first = &l[i]
		}
		n++
	}
	if first == nil {
		return nil
	}
	if n == 1 {
		return first
	}
	return fmt.Errorf("%w (and %d more errors)", first, n-1)
}
