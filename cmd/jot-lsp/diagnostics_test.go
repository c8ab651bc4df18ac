package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/jot-format/go-jot/diag"
)

func TestDiagnosticsFor(t *testing.T) {
	var diags diag.List
	diags.Add(diag.Syntax, 3, 7, "unexpected token %q", "}")
	diags.Add(diag.DuplicateKey, 0, 0, "duplicate key %q", "a")

	got := diagnosticsFor(diags)
	want := []protocol.Diagnostic{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 2, Character: 6},
				End:   protocol.Position{Line: 2, Character: 7},
			},
			Severity: protocol.DiagnosticSeverityError,
			Code:     "syntax",
			Source:   "jot",
			Message:  `unexpected token "}"`,
		},
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 1},
			},
			Severity: protocol.DiagnosticSeverityWarning,
			Code:     "duplicate-key",
			Source:   "jot",
			Message:  `duplicate key "a"`,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestLineColToOffset(t *testing.T) {
	content := "ab\ncdé\nf"
	tests := []struct {
		name string
		line int
		col  int
		want int
	}{
		{"start", 0, 0, 0},
		{"first line", 0, 1, 1},
		{"second line start", 1, 0, 3},
		{"column after a multibyte rune", 1, 3, 7},
		{"past the end", 9, 0, len(content)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lineColToOffset(content, tc.line, tc.col); got != tc.want {
				t.Errorf("lineColToOffset(%d, %d) = %d, want %d", tc.line, tc.col, got, tc.want)
			}
		})
	}
}
