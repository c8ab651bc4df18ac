package encode

import (
	"github.com/jot-format/go-jot/format"
	"github.com/jot-format/go-jot/ir"
)

type EncodeOption func(*EncState)

// EncodeFormat selects the output format. The zero value is jot.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeComments supplies the comments to weave back into the output,
// usually the comment list from a parse result. Comments whose path no
// longer resolves against the tree being encoded are dropped with an
// unresolved-comment warning. JSON output drops all comments silently.
func EncodeComments(cs []ir.Comment) EncodeOption {
	return func(es *EncState) { es.withComments = cs }
}

// EncodeIndent sets the indent width in spaces, defaulting to 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeEOL sets the line terminator, defaulting to "\n".
func EncodeEOL(s string) EncodeOption {
	return func(es *EncState) { es.eol = s }
}

// BracesSameLine controls whether a member's container value opens on
// the key's line or on the next line. It defaults to true.
func BracesSameLine(v bool) EncodeOption {
	return func(es *EncState) { es.sameLine = v }
}

// OmitRootBraces writes a root object without its surrounding braces.
// It only applies to jot output of a non-empty root object.
func OmitRootBraces(v bool) EncodeOption {
	return func(es *EncState) { es.omitRoot = v }
}

// QuoteAlways quotes every string and key, even ones that would read
// back as the same bare word.
func QuoteAlways(v bool) EncodeOption {
	return func(es *EncState) { es.quoteAlways = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
