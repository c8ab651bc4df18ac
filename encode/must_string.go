package encode

import (
	"bytes"
	"strings"

	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/ir"
)

// String encodes y to a string.
func String(y *ir.Node, opts ...EncodeOption) (string, diag.List, error) {
	buf := bytes.NewBuffer(nil)
	diags, err := Encode(y, buf, opts...)
	if err != nil {
		return "", diags, err
	}
	return buf.String(), diags, nil
}

// MustString encodes a known-good tree, trimming the final newline. It
// panics when encoding fails, which only a broken writer or format can
// cause.
func MustString(y *ir.Node, opts ...EncodeOption) string {
	s, _, err := String(y, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
