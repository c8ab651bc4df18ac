package ir

import (
	"testing"

	"github.com/jot-format/go-jot/ir/cpath"
)

func TestResolve(t *testing.T) {
	root := FromMembers([]Member{
		{Key: "cfg", Value: FromMembers([]Member{{Key: "val", Value: FromNumber(1)}})},
		{Key: "list", Value: FromSlice([]*Node{FromString("a"), FromString("b")})},
		{Key: "cfg", Value: FromMembers([]Member{{Key: "val", Value: FromNumber(2)}})},
	})

	tests := []struct {
		name string
		p    cpath.Path
		want *Node
	}{
		{"root", nil, root},
		{"first match", cpath.Path{cpath.Field("cfg"), cpath.Field("val")}, FromNumber(1)},
		{"pinned ordinal", cpath.Path{cpath.FieldAt("cfg", 2), cpath.Field("val")}, FromNumber(2)},
		{"stale ordinal falls back", cpath.Path{cpath.FieldAt("cfg", 1), cpath.Field("val")}, FromNumber(1)},
		{"index", cpath.Path{cpath.Field("list"), cpath.Index(1)}, FromString("b")},
		{"missing key", cpath.Path{cpath.Field("nope")}, nil},
		{"index out of range", cpath.Path{cpath.Field("list"), cpath.Index(5)}, nil},
		{"field step on array", cpath.Path{cpath.Field("list"), cpath.Field("x")}, nil},
		{"index step on object", cpath.Path{cpath.Index(0)}, nil},
		{"step into scalar", cpath.Path{cpath.Field("cfg"), cpath.Field("val"), cpath.Field("deep")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(root, tt.p)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Resolve(%s) = %v, want nil", tt.p, got)
				}
				return
			}
			if got == nil || !Equal(got, tt.want) {
				t.Errorf("Resolve(%s) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
