package jot

import (
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

// Equal reports whether two documents carry the same values in the
// same order. Layout, quoting, and comments do not count; member order
// and duplicate keys do.
func Equal(a, b []byte) bool {
	ra := parse.Parse(a, parse.ParseComments(false))
	rb := parse.Parse(b, parse.ParseComments(false))
	return ir.Equal(ra.Root, rb.Root)
}
