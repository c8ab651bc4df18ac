package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/format"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/cpath"
)

func leading(path cpath.Path, marker, text string) ir.Comment {
	return comment(ir.Leading, path, marker, text)
}

func trailing(path cpath.Path, marker, text string) ir.Comment {
	return comment(ir.Trailing, path, marker, text)
}

func dangling(path cpath.Path, marker, text string) ir.Comment {
	return comment(ir.Dangling, path, marker, text)
}

func footer(marker, text string) ir.Comment {
	return comment(ir.Footer, nil, marker, text)
}

func comment(p ir.Placement, path cpath.Path, marker, text string) ir.Comment {
	kind := ir.LineComment
	if marker == "/*" {
		kind = ir.BlockComment
	}
	return ir.Comment{
		Kind:      kind,
		Marker:    marker,
		Text:      text,
		Placement: p,
		Path:      path,
	}
}

func TestEncodeComments(t *testing.T) {
	tests := []struct {
		name string
		y    *ir.Node
		cs   []ir.Comment
		opts []EncodeOption
		want string
	}{
		{
			"object placements",
			obj(member("a", ir.FromNumber(1)), member("b", ir.FromNumber(2))),
			[]ir.Comment{
				leading(cpath.Path{cpath.Field("a")}, "#", "lead a"),
				trailing(cpath.Path{cpath.Field("a")}, "//", "tail a"),
				leading(cpath.Path{cpath.Field("b")}, "/*", "between"),
				dangling(nil, "#", "dangle"),
				footer("//", "footer"),
			},
			nil,
			"{\n" +
				"  # lead a\n" +
				"  a: 1 // tail a\n" +
				"  /* between */\n" +
				"  b: 2\n" +
				"  # dangle\n" +
				"}\n" +
				"// footer\n",
		},
		{
			"scalar root",
			ir.FromNumber(42),
			[]ir.Comment{
				leading(nil, "#", "head"),
				trailing(nil, "#", "tail"),
			},
			nil,
			"# head\n42 # tail\n",
		},
		{
			"array placements",
			arr(ir.FromNumber(1), ir.FromNumber(2)),
			[]ir.Comment{
				trailing(cpath.Path{cpath.Index(0)}, "//", "one"),
				leading(cpath.Path{cpath.Index(1)}, "#", "before"),
				dangling(nil, "#", "end"),
			},
			nil,
			"[\n" +
				"  1 // one\n" +
				"  # before\n" +
				"  2\n" +
				"  # end\n" +
				"]\n",
		},
		{
			"dangling keeps container open",
			obj(member("a", obj())),
			[]ir.Comment{
				dangling(cpath.Path{cpath.Field("a")}, "#", "todo"),
			},
			nil,
			"{\n  a: {\n    # todo\n  }\n}\n",
		},
		{
			"omit root braces",
			obj(member("a", ir.FromNumber(1))),
			[]ir.Comment{
				trailing(nil, "#", "tail"),
				footer("#", "foot"),
			},
			[]EncodeOption{OmitRootBraces(true)},
			"a: 1\n# tail\n# foot\n",
		},
		{
			"empty comment text",
			obj(member("a", ir.FromNumber(1))),
			[]ir.Comment{
				trailing(cpath.Path{cpath.Field("a")}, "#", ""),
				leading(cpath.Path{cpath.Field("a")}, "/*", ""),
			},
			nil,
			"{\n  /* */\n  a: 1 #\n}\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]EncodeOption{EncodeComments(tc.cs)}, tc.opts...)
			got := encodeString(t, tc.y, opts...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnresolvedComments(t *testing.T) {
	y := obj(member("a", ir.FromNumber(1)))
	cs := []ir.Comment{
		trailing(cpath.Path{cpath.Field("zzz")}, "//", "gone"),
		dangling(cpath.Path{cpath.Field("a")}, "#", "not a container"),
	}
	buf := bytes.NewBuffer(nil)
	diags, err := Encode(y, buf, EncodeComments(cs))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.String(), "{\n  a: 1\n}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	wantDiags := []string{
		`unresolved-comment: dropping comment: nothing at $.zzz`,
		`unresolved-comment: dropping comment: $.a is not a container`,
	}
	var gotDiags []string
	for i := range diags {
		gotDiags = append(gotDiags, diags[i].Error())
	}
	if diff := cmp.Diff(wantDiags, gotDiags); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if diags.HasErrors() {
		t.Error("unresolved comments must stay warnings")
	}
	if n := diags.Count(diag.UnresolvedComment); n != 2 {
		t.Errorf("unresolved count = %d, want 2", n)
	}
}

func TestJSONDropsComments(t *testing.T) {
	y := obj(member("a", ir.FromNumber(1)))
	cs := []ir.Comment{
		trailing(cpath.Path{cpath.Field("a")}, "//", "tail"),
		footer("#", "foot"),
	}
	buf := bytes.NewBuffer(nil)
	diags, err := Encode(y, buf, EncodeComments(cs), EncodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.String(), "{\n  \"a\": 1\n}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if len(diags) != 0 {
		t.Errorf("json comment drop produced diagnostics: %v", diags)
	}
}
