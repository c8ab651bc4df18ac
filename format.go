package jot

import (
	"bytes"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/parse"
)

// Format parses src and writes it back out with normalized layout,
// comments kept in place. Malformed input still formats: the parser
// recovers what it can and the problems come back in the diagnostics.
// Callers that want to reject broken documents check HasErrors on the
// returned list.
func Format(src []byte, opts ...encode.EncodeOption) ([]byte, diag.List, error) {
	res := parse.Parse(src)
	if debug.Encode() {
		debug.Logf("format: %d bytes, %d comments, %d parse diags\n",
			len(src), len(res.Comments), len(res.Diags))
	}
	diags := res.Diags
	buf := bytes.NewBuffer(nil)
	opts = append(opts, encode.EncodeComments(res.Comments))
	encDiags, err := encode.Encode(res.Root, buf, opts...)
	diags = append(diags, encDiags...)
	if err != nil {
		return nil, diags, err
	}
	return buf.Bytes(), diags, nil
}

// FormatString is Format for strings.
func FormatString(src string, opts ...encode.EncodeOption) (string, diag.List, error) {
	out, diags, err := Format([]byte(src), opts...)
	return string(out), diags, err
}
