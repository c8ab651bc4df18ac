package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/format"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// EncState carries the output settings and the comment attachments for
// one Encode call.
type EncState struct {
	depth  int
	indent int
	eol    string

	sameLine    bool
	omitRoot    bool
	quoteAlways bool
	format      format.Format

	// suppressNL makes the next writeNL emit only indentation, so a
	// braceless root does not begin with a blank line.
	suppressNL bool

	withComments []ir.Comment
	attach       map[*ir.Node]*attachment
	footer       []ir.Comment

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes y to w. The returned diagnostics report comments that
// could not be placed; the error reports write failures and formats
// Encode cannot produce.
func Encode(y *ir.Node, w io.Writer, opts ...EncodeOption) (diag.List, error) {
	es := &EncState{
		indent:   2,
		eol:      "\n",
		sameLine: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	var diags diag.List
	if es.format.IsYAML() {
		return diags, fmt.Errorf("%w: use the convert package for %s output", ErrEncoding, es.format)
	}
	if es.format.IsJSON() {
		// JSON cannot carry comments.
		es.withComments = nil
		es.omitRoot = false
	}
	if len(es.withComments) != 0 {
		es.attach, es.footer = resolveComments(y, es.withComments, &diags)
	}
	if err := es.encodeRoot(y, w); err != nil {
		return diags, err
	}
	return diags, nil
}

func (es *EncState) encodeRoot(y *ir.Node, w io.Writer) error {
	a := es.attach[y]
	if a != nil {
		for i := range a.leading {
			if err := es.writeString(w, renderComment(es, &a.leading[i])+es.eol); err != nil {
				return err
			}
		}
	}
	if es.omitRoot && y.Type == ir.ObjectType && len(y.Members) > 0 {
		es.suppressNL = true
		if err := es.writeMembers(y, w); err != nil {
			return err
		}
		if err := es.writeString(w, es.eol); err != nil {
			return err
		}
		if a != nil {
			for i := range a.trailing {
				if err := es.writeString(w, renderComment(es, &a.trailing[i])+es.eol); err != nil {
					return err
				}
			}
		}
		return es.writeFooter(w)
	}
	if err := es.encode(y, w); err != nil {
		return err
	}
	if a != nil {
		for i := range a.trailing {
			if err := es.writeTrailing(w, &a.trailing[i]); err != nil {
				return err
			}
		}
	}
	if err := es.writeString(w, es.eol); err != nil {
		return err
	}
	return es.writeFooter(w)
}

func (es *EncState) writeFooter(w io.Writer) error {
	for i := range es.footer {
		if err := es.writeString(w, renderComment(es, &es.footer[i])+es.eol); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) encode(y *ir.Node, w io.Writer) error {
	es.colorType = y.Type
	switch y.Type {
	case ir.ObjectType:
		return es.encodeObject(y, w)
	case ir.ArrayType:
		return es.encodeArray(y, w)
	case ir.StringType:
		return es.encodeString(y, w)
	case ir.NumberType:
		return es.encodeNumber(y, w)
	case ir.BoolType:
		return es.encodeBool(y, w)
	default:
		return es.encodeNull(w)
	}
}

func (es *EncState) encodeObject(y *ir.Node, w io.Writer) error {
	if len(y.Members) == 0 && !es.hasDangling(y) {
		return es.writeString(w, "{}")
	}
	if err := es.writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	if err := es.writeMembers(y, w); err != nil {
		return err
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return es.writeString(w, "}")
}

func (es *EncState) writeMembers(y *ir.Node, w io.Writer) error {
	last := len(y.Members) - 1
	for i := range y.Members {
		m := &y.Members[i]
		a := es.attach[m.Value]
		if a != nil {
			for j := range a.leading {
				if err := es.writeComment(w, &a.leading[j]); err != nil {
					return err
				}
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := es.writeField(w, m.Key); err != nil {
			return err
		}
		if err := es.writeMemberValue(m.Value, w); err != nil {
			return err
		}
		if es.format.IsJSON() && i < last {
			if err := es.writeString(w, ","); err != nil {
				return err
			}
		}
		if a != nil {
			for j := range a.trailing {
				if err := es.writeTrailing(w, &a.trailing[j]); err != nil {
					return err
				}
			}
		}
	}
	return es.writeDangling(y, w)
}

func (es *EncState) writeMemberValue(y *ir.Node, w io.Writer) error {
	es.colorType = y.Type
	switch {
	case y.Type == ir.ObjectType || y.Type == ir.ArrayType:
		if es.emptyContainer(y) || es.sameLine || es.format.IsJSON() {
			if err := es.writeString(w, " "); err != nil {
				return err
			}
			return es.encode(y, w)
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		return es.encode(y, w)
	case y.Type == ir.StringType && es.useMString(y.String):
		es.depth++
		defer func() { es.depth-- }()
		if err := es.writeNL(w); err != nil {
			return err
		}
		return es.emitMString(y.String, w)
	default:
		if err := es.writeString(w, " "); err != nil {
			return err
		}
		return es.encode(y, w)
	}
}

func (es *EncState) encodeArray(y *ir.Node, w io.Writer) error {
	if len(y.Values) == 0 && !es.hasDangling(y) {
		return es.writeString(w, "[]")
	}
	if err := es.writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	last := len(y.Values) - 1
	for i, v := range y.Values {
		a := es.attach[v]
		if a != nil {
			for j := range a.leading {
				if err := es.writeComment(w, &a.leading[j]); err != nil {
					return err
				}
			}
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := es.encode(v, w); err != nil {
			return err
		}
		if es.format.IsJSON() && i < last {
			if err := es.writeString(w, ","); err != nil {
				return err
			}
		}
		if a != nil {
			for j := range a.trailing {
				if err := es.writeTrailing(w, &a.trailing[j]); err != nil {
					return err
				}
			}
		}
	}
	if err := es.writeDangling(y, w); err != nil {
		return err
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return es.writeString(w, "]")
}

func (es *EncState) emptyContainer(y *ir.Node) bool {
	switch y.Type {
	case ir.ObjectType:
		return len(y.Members) == 0 && !es.hasDangling(y)
	case ir.ArrayType:
		return len(y.Values) == 0 && !es.hasDangling(y)
	}
	return false
}

// String encoding

func (es *EncState) encodeString(y *ir.Node, w io.Writer) error {
	if es.useMString(y.String) {
		return es.emitMString(y.String, w)
	}
	v := es.quoteString(y.String)
	return es.writeString(w, es.stringColor(v))
}

// useMString reports whether v round-trips through the triple quoted
// form: it must span lines and contain neither a closing quote run nor
// carriage returns, which that form cannot carry.
func (es *EncState) useMString(v string) bool {
	if es.quoteAlways || es.format.IsJSON() {
		return false
	}
	return strings.Contains(v, "\n") &&
		!strings.Contains(v, "'''") &&
		!strings.Contains(v, "\r")
}

// emitMString writes v in triple quoted form starting at the current
// output position. Lines are indented to the opening quotes so the
// reader strips the indentation back out.
func (es *EncState) emitMString(v string, w io.Writer) error {
	q := es.color(ir.StringType, LiteralMultiColor, "'''")
	if err := es.writeString(w, q); err != nil {
		return err
	}
	for _, ln := range strings.Split(v, "\n") {
		if ln == "" {
			if err := es.writeString(w, es.eol); err != nil {
				return err
			}
			continue
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := es.writeString(w, es.color(ir.StringType, LiteralMultiColor, ln)); err != nil {
			return err
		}
	}
	if err := es.writeNL(w); err != nil {
		return err
	}
	return es.writeString(w, q)
}

func (es *EncState) quoteString(v string) string {
	if es.format.IsJSON() {
		return token.Quote(v, false)
	}
	if es.quoteAlways || token.NeedsQuote(v) {
		return token.Quote(v, true)
	}
	return v
}

// Number encoding

func (es *EncState) encodeNumber(y *ir.Node, w io.Writer) error {
	v := formatFloat(y.Number)
	return es.writeString(w, es.color(ir.NumberType, ValueColor, v))
}

// formatFloat renders a double the way encoding/json does: the
// shortest representation that reads back exactly, scientific form
// outside [1e-6, 1e21), and null for values jot numbers cannot carry.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	abs := math.Abs(f)
	fmtByte := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	b := strconv.AppendFloat(nil, f, fmtByte, -1, 64)
	if fmtByte == 'e' {
		if n := len(b); n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}

// Bool and null encoding

func (es *EncState) encodeBool(y *ir.Node, w io.Writer) error {
	v := strconv.FormatBool(y.Bool)
	return es.writeString(w, es.color(ir.BoolType, ValueColor, v))
}

func (es *EncState) encodeNull(w io.Writer) error {
	return es.writeString(w, es.color(ir.NullType, ValueColor, "null"))
}

// Field writing

func (es *EncState) writeField(w io.Writer, f string) error {
	if es.format.IsJSON() || es.quoteAlways || token.NeedsQuote(f) {
		f = token.Quote(f, !es.format.IsJSON())
	}
	f = es.color(ir.ObjectType, FieldColor, f)
	sep := es.color(ir.ObjectType, SepColor, ":")
	return es.writeString(w, f+sep)
}

// Low level writing

func (es *EncState) writeNL(w io.Writer) error {
	pad := strings.Repeat(" ", es.indent*es.depth)
	if es.suppressNL {
		es.suppressNL = false
		return es.writeString(w, pad)
	}
	return es.writeString(w, es.eol+pad)
}

func (es *EncState) writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Color application

func (es *EncState) color(t ir.Type, a ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, a, v)
}

func (es *EncState) stringColor(v string) string {
	if es.Color == nil {
		return v
	}
	attr := LiteralSingleColor
	if len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
		attr = ValueColor
	}
	return es.Color(ir.StringType, attr, v)
}
