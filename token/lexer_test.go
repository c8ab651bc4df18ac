package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jot-format/go-jot/diag"
)

type tok struct {
	Type  TokenType
	Bytes string
}

func lex(t *testing.T, in string) ([]Token, diag.List) {
	t.Helper()
	var diags diag.List
	toks := Tokenize([]byte(in), &diags)
	if n := len(toks); n == 0 || toks[n-1].Type != TEOF {
		t.Fatalf("tokenize %q: missing TEOF", in)
	}
	return toks[:len(toks)-1], diags
}

func project(toks []Token) []tok {
	res := []tok{}
	for i := range toks {
		res = append(res, tok{Type: toks[i].Type, Bytes: string(toks[i].Bytes)})
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []tok
	}{
		{"{}", []tok{{TLCurl, "{"}, {TRCurl, "}"}}},
		{"[1, 2]", []tok{
			{TLSquare, "["}, {TNumber, "1"}, {TComma, ","},
			{TNumber, "2"}, {TRSquare, "]"},
		}},
		{"a: b", []tok{{TWord, "a"}, {TColon, ":"}, {TWord, "b"}}},
		{"a:b", []tok{{TWord, "a"}, {TColon, ":"}, {TWord, "b"}}},
		{"key: 'val'", []tok{{TWord, "key"}, {TColon, ":"}, {TString, "'val'"}}},
		{"true false null", []tok{{TTrue, "true"}, {TFalse, "false"}, {TNull, "null"}}},
		{"null]", []tok{{TNull, "null"}, {TRSquare, "]"}}},
		{"x#c", []tok{{TWord, "x"}, {TComment, "#c"}}},
		{"path/to/file", []tok{{TWord, "path/to/file"}}},
		{"https://hello.world", []tok{
			{TWord, "https"}, {TColon, ":"}, {TComment, "//hello.world"},
		}},
		{"a // rest of line\nb", []tok{
			{TWord, "a"}, {TComment, "// rest of line"}, {TWord, "b"},
		}},
		{"/* one */ /* two */", []tok{
			{TComment, "/* one */"}, {TComment, "/* two */"},
		}},
		{"\n\t {\r\n }\n", []tok{{TLCurl, "{"}, {TRCurl, "}"}}},
		{"", []tok{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks, diags := lex(t, tt.in)
			if diff := cmp.Diff(tt.want, project(toks)); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want TokenType
	}{
		{"true", TTrue},
		{"false", TFalse},
		{"null", TNull},
		{"truest", TWord},
		{"falsely", TWord},
		{"nullable", TWord},
		{"0", TNumber},
		{"-3", TNumber},
		{"+5", TNumber},
		{"-0", TNumber},
		{"0.01", TNumber},
		{"0e21", TNumber},
		{"0E-2", TNumber},
		{"-1.23e-10", TNumber},
		{"012", TWord},
		{"1e999", TWord},
		{"1.2.3", TWord},
		{"3kb", TWord},
		{"1.", TWord},
		{".5", TWord},
		{"-", TWord},
		{"--2", TWord},
		{"1e", TWord},
		{"x-y_z", TWord},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks, diags := lex(t, tt.in)
			if len(toks) != 1 {
				t.Fatalf("got %d tokens, want 1", len(toks))
			}
			if toks[0].Type != tt.want {
				t.Errorf("type = %s, want %s", toks[0].Type, tt.want)
			}
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
}

func TestNumberValue(t *testing.T) {
	toks, _ := lex(t, "-1.23e-10")
	if len(toks) != 1 || toks[0].Type != TNumber {
		t.Fatalf("got %v, want one TNumber", project(toks))
	}
	if got := toks[0].Number(); got != -1.23e-10 {
		t.Errorf("Number() = %v, want -1.23e-10", got)
	}
}

func TestStringRecovery(t *testing.T) {
	t.Run("bad escape", func(t *testing.T) {
		toks, diags := lex(t, `"a\qb"`)
		if len(toks) != 1 || toks[0].Type != TString {
			t.Fatalf("got %v, want one TString", project(toks))
		}
		if got := toks[0].String(); got != "aqb" {
			t.Errorf("String() = %q, want %q", got, "aqb")
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
	t.Run("unterminated at eof", func(t *testing.T) {
		toks, diags := lex(t, `"abc`)
		if len(toks) != 1 || toks[0].String() != "abc" {
			t.Fatalf("got %v, want one string %q", project(toks), "abc")
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
	t.Run("unterminated at newline", func(t *testing.T) {
		toks, diags := lex(t, "\"ab\ncd")
		want := []tok{{TString, `"ab`}, {TWord, "cd"}}
		if diff := cmp.Diff(want, project(toks)); diff != "" {
			t.Errorf("tokens (-want +got):\n%s", diff)
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
	t.Run("lone surrogate", func(t *testing.T) {
		toks, diags := lex(t, `"\ud800"`)
		if len(toks) != 1 || toks[0].String() != "�" {
			t.Fatalf("got %q, want replacement char", toks[0].String())
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
	t.Run("bad unicode escape", func(t *testing.T) {
		toks, diags := lex(t, `"\u12G4"`)
		if len(toks) != 1 || toks[0].String() != "�12G4" {
			t.Fatalf("got %q, want replacement char plus raw text", toks[0].String())
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
	t.Run("diagnostic position", func(t *testing.T) {
		_, diags := lex(t, "x: 1\ny: \"a\\qb\"")
		if len(diags) != 1 {
			t.Fatalf("diagnostics = %v, want one", diags)
		}
		if diags[0].Line != 2 || diags[0].Col != 6 {
			t.Errorf("position = %d:%d, want 2:6", diags[0].Line, diags[0].Col)
		}
	})
}

func TestMStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "indent stripped to opening column",
			in:   "key: '''\n  line1\n  line2\n  '''",
			want: "line1\nline2",
		},
		{
			name: "deeper indent kept",
			in:   "a: '''\n     x\n   '''",
			want: "  x",
		},
		{
			name: "content on opening line",
			in:   "'''one liner'''",
			want: "one liner",
		},
		{
			name: "trailing newline dropped",
			in:   "'''\nbody\n'''",
			want: "body",
		},
		{
			name: "blank interior line",
			in:   "'''\na\n\nb\n'''",
			want: "a\n\nb",
		},
		{
			name: "quotes inside",
			in:   "'''it's a \"test\"'''",
			want: "it's a \"test\"",
		},
		{
			name: "empty",
			in:   "''''''",
			want: "",
		},
		{
			name: "carriage returns dropped",
			in:   "'''\r\nbody\r\n'''",
			want: "body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, diags := lex(t, tt.in)
			var ms *Token
			for i := range toks {
				if toks[i].Type == TMString {
					ms = &toks[i]
					break
				}
			}
			if ms == nil {
				t.Fatalf("no TMString in %v", project(toks))
			}
			if got := ms.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
	t.Run("unterminated", func(t *testing.T) {
		toks, diags := lex(t, "'''abc")
		if len(toks) != 1 || toks[0].Type != TMString {
			t.Fatalf("got %v, want one TMString", project(toks))
		}
		if got := toks[0].String(); got != "abc" {
			t.Errorf("String() = %q, want %q", got, "abc")
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
}

func TestComments(t *testing.T) {
	tests := []struct {
		in     string
		marker string
		text   string
	}{
		{"// hello", "//", "hello"},
		{"//no space", "//", "no space"},
		{"# hi there ", "#", "hi there"},
		{"/* block */", "/*", "block"},
		{"/* multi\nline */", "/*", "multi\nline"},
		{"#", "#", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks, diags := lex(t, tt.in)
			if len(toks) != 1 || toks[0].Type != TComment {
				t.Fatalf("got %v, want one TComment", project(toks))
			}
			if got := toks[0].CommentMarker(); got != tt.marker {
				t.Errorf("CommentMarker() = %q, want %q", got, tt.marker)
			}
			if got := toks[0].CommentText(); got != tt.text {
				t.Errorf("CommentText() = %q, want %q", got, tt.text)
			}
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
		})
	}
	t.Run("unterminated block", func(t *testing.T) {
		toks, diags := lex(t, "/* open\na: 1")
		if len(toks) != 1 || toks[0].Type != TComment {
			t.Fatalf("got %v, want one TComment", project(toks))
		}
		if got := toks[0].CommentText(); got != "open\na: 1" {
			t.Errorf("CommentText() = %q", got)
		}
		if diags.Count(diag.Lex) != 1 {
			t.Errorf("diagnostics = %v, want one lex error", diags)
		}
	})
}

func TestTokenPositions(t *testing.T) {
	toks, _ := lex(t, "{\n  a: 1\n}")
	want := []struct {
		line, col int
	}{
		{1, 1}, // {
		{2, 3}, // a
		{2, 4}, // :
		{2, 6}, // 1
		{3, 1}, // }
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		l, c := toks[i].Pos.LineCol()
		if l != w.line || c != w.col {
			t.Errorf("token %d %s at %d:%d, want %d:%d", i, toks[i].Type, l, c, w.line, w.col)
		}
	}
}
