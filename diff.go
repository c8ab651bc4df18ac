package jot

import (
	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/libdiff"
	"github.com/jot-format/go-jot/parse"
)

// Diff renders the line edits between the normalized forms of two
// documents. Layout and quoting differences wash out; value, order,
// and comment changes remain. The bool reports whether the normalized
// forms differ.
func Diff(a, b []byte) (string, bool, diag.List) {
	ra := parse.Parse(a)
	rb := parse.Parse(b)
	var diags diag.List
	diags = append(diags, ra.Diags...)
	diags = append(diags, rb.Diags...)
	ta := encode.MustString(ra.Root, encode.EncodeComments(ra.Comments))
	tb := encode.MustString(rb.Root, encode.EncodeComments(rb.Comments))
	text, differs := libdiff.Strings(ta+"\n", tb+"\n")
	return text, differs, diags
}
