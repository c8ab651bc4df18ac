package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/cpath"
)

// ctag flattens a comment to its observable attachment for diffing.
type ctag struct {
	Place  string
	Path   string
	Marker string
	Text   string
	Line   int
	Col    int
}

func tags(cs []ir.Comment) []ctag {
	var res []ctag
	for _, c := range cs {
		res = append(res, ctag{
			Place:  c.Placement.String(),
			Path:   c.Path.String(),
			Marker: c.Marker,
			Text:   c.Text,
			Line:   c.Line,
			Col:    c.Col,
		})
	}
	return res
}

func TestComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []ctag
	}{
		{
			"trailing on same line",
			"{ 'aaa': 123 // comment aaa\n}",
			[]ctag{{"trailing", "$.aaa", "//", "comment aaa", 1, 14}},
		},
		{
			"leading above member",
			"{\n  # about a\n  a: 1\n}",
			[]ctag{{"leading", "$.a", "#", "about a", 2, 3}},
		},
		{
			"leading block before value",
			`{ /* c */ a: 1 }`,
			[]ctag{{"leading", "$.a", "/*", "c", 1, 3}},
		},
		{
			"trailing then leading",
			"a: 1 // x\n// y\nb: 2",
			[]ctag{
				{"trailing", "$.a", "//", "x", 1, 6},
				{"leading", "$.b", "//", "y", 2, 1},
			},
		},
		{
			"dangling before close",
			"{\n  a: 1\n  // left behind\n}",
			[]ctag{{"dangling", "$", "//", "left behind", 3, 3}},
		},
		{
			"dangling in empty array",
			"[\n  # empty\n]",
			[]ctag{{"dangling", "$", "#", "empty", 2, 3}},
		},
		{
			"footer after braceless root",
			"a: 1\n# done",
			[]ctag{{"footer", "$", "#", "done", 2, 1}},
		},
		{
			"header and footer around root",
			"// header\n{a: 1}\n// footer",
			[]ctag{
				{"leading", "$", "//", "header", 1, 1},
				{"footer", "$", "//", "footer", 3, 1},
			},
		},
		{
			"trailing on root close",
			`{a: 1} // tail`,
			[]ctag{{"trailing", "$", "//", "tail", 1, 8}},
		},
		{
			"array elements",
			"[\n  1 // one\n  // before two\n  2\n]",
			[]ctag{
				{"trailing", "$[0]", "//", "one", 2, 5},
				{"leading", "$[1]", "//", "before two", 3, 3},
			},
		},
		{
			"between key and colon",
			`{a /* k */ : 1}`,
			[]ctag{{"leading", "$.a", "/*", "k", 1, 4}},
		},
		{
			"trailing on nested close",
			"{cfg: {val: 1} // c\n}",
			[]ctag{{"trailing", "$.cfg", "//", "c", 1, 16}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Parse([]byte(tc.in))
			if len(res.Diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diagStrings(res.Diags))
			}
			if diff := cmp.Diff(tc.want, tags(res.Comments)); diff != "" {
				t.Errorf("comments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Comments inside duplicate keys carry member ordinals so they resolve
// to the occurrence they were written in, even though the display form
// of both paths is the same.
func TestCommentPathsPinDuplicates(t *testing.T) {
	in := "{\n" +
		"  cfg: {\n    val: 1 // first\n  }\n" +
		"  cfg: {\n    val: 2 // second\n  }\n" +
		"}"
	res := Parse([]byte(in))
	wantPaths := []cpath.Path{
		{cpath.FieldAt("cfg", 0), cpath.FieldAt("val", 0)},
		{cpath.FieldAt("cfg", 1), cpath.FieldAt("val", 0)},
	}
	var gotPaths []cpath.Path
	for _, c := range res.Comments {
		gotPaths = append(gotPaths, c.Path)
	}
	if diff := cmp.Diff(wantPaths, gotPaths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	for i, c := range res.Comments {
		want := res.Root.Members[i].Value.Members[0].Value
		if got := ir.Resolve(res.Root, c.Path); got != want {
			t.Errorf("comment %d resolves to %v, want occurrence %d", i, got, i)
		}
	}
}

func TestCommentKinds(t *testing.T) {
	res := Parse([]byte("{a: 1 /* b */ // l\n}"))
	if n := len(res.Comments); n != 2 {
		t.Fatalf("got %d comments, want 2", n)
	}
	if got := res.Comments[0].Kind; got != ir.BlockComment {
		t.Errorf("first comment kind = %v, want block", got)
	}
	if got := res.Comments[1].Kind; got != ir.LineComment {
		t.Errorf("second comment kind = %v, want line", got)
	}
}

func TestParseCommentsOff(t *testing.T) {
	res := Parse([]byte("{a: 1 // c\n# d\n}"), ParseComments(false))
	if len(res.Comments) != 0 {
		t.Errorf("got %d comments, want none", len(res.Comments))
	}
	if len(res.Diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diagStrings(res.Diags))
	}
	want := obj(member("a", num(1)))
	if diff := cmp.Diff(want, res.Root); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentOnlyDocument(t *testing.T) {
	res := Parse([]byte("# just a comment"))
	if res.Root.Type != ir.NullType {
		t.Errorf("root type = %v, want null", res.Root.Type)
	}
	wantDiags := []string{`1:17: syntax: empty document`}
	if diff := cmp.Diff(wantDiags, diagStrings(res.Diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	want := []ctag{{"footer", "$", "#", "just a comment", 1, 1}}
	if diff := cmp.Diff(want, tags(res.Comments)); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	res := Parse([]byte("{a: 1\n/* open\nnever closed"))
	want := []ctag{{"dangling", "$", "/*", "open\nnever closed", 2, 1}}
	if diff := cmp.Diff(want, tags(res.Comments)); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
	wantDiags := []string{
		`2:1: lex: unterminated block comment`,
		`3:13: syntax: unterminated object`,
	}
	if diff := cmp.Diff(wantDiags, diagStrings(res.Diags)); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}
