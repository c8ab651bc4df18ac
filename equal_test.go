package jot

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"layout and quoting wash out", "{a: 1, b: two}", "a: 1\nb: \"two\"", true},
		{"comments wash out", "# x\na: 1", "a: 1 // y", true},
		{"member order counts", "{a: 1, b: 2}", "{b: 2, a: 1}", false},
		{"values count", "{a: 1}", "{a: 2}", false},
		{"duplicate keys count", "{a: 1, a: 1}", "{a: 1}", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal([]byte(tc.a), []byte(tc.b)); got != tc.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
