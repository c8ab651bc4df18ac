package encode

import (
	"io"

	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/ir"
)

// attachment groups the comments that landed on one node.
type attachment struct {
	leading  []ir.Comment
	trailing []ir.Comment
	dangling []ir.Comment
}

// resolveComments resolves every comment path against the tree being
// encoded. The tree may have been edited since the comments were
// collected, so a path can miss; those comments are dropped with a
// warning rather than failing the encode.
func resolveComments(root *ir.Node, cs []ir.Comment, diags *diag.List) (map[*ir.Node]*attachment, []ir.Comment) {
	att := map[*ir.Node]*attachment{}
	var footer []ir.Comment
	for _, c := range cs {
		if c.Placement == ir.Footer {
			footer = append(footer, c)
			continue
		}
		target := ir.Resolve(root, c.Path)
		if target == nil {
			diags.Add(diag.UnresolvedComment, c.Line, c.Col,
				"dropping comment: nothing at %s", c.Path)
			continue
		}
		if c.Placement == ir.Dangling &&
			target.Type != ir.ObjectType && target.Type != ir.ArrayType {
			diags.Add(diag.UnresolvedComment, c.Line, c.Col,
				"dropping comment: %s is not a container", c.Path)
			continue
		}
		a := att[target]
		if a == nil {
			a = &attachment{}
			att[target] = a
		}
		switch c.Placement {
		case ir.Trailing:
			a.trailing = append(a.trailing, c)
		case ir.Dangling:
			a.dangling = append(a.dangling, c)
		default:
			a.leading = append(a.leading, c)
		}
	}
	return att, footer
}

func (es *EncState) hasDangling(y *ir.Node) bool {
	a := es.attach[y]
	return a != nil && len(a.dangling) > 0
}

func (es *EncState) writeDangling(y *ir.Node, w io.Writer) error {
	a := es.attach[y]
	if a == nil {
		return nil
	}
	for i := range a.dangling {
		if err := es.writeComment(w, &a.dangling[i]); err != nil {
			return err
		}
	}
	return nil
}

// writeComment writes c on its own line at the current depth.
func (es *EncState) writeComment(w io.Writer, c *ir.Comment) error {
	if err := es.writeNL(w); err != nil {
		return err
	}
	return es.writeString(w, renderComment(es, c))
}

// writeTrailing writes c at the end of the current line.
func (es *EncState) writeTrailing(w io.Writer, c *ir.Comment) error {
	return es.writeString(w, " "+renderComment(es, c))
}

func renderComment(es *EncState, c *ir.Comment) string {
	if c.Kind == ir.BlockComment {
		if c.Text == "" {
			return es.color(es.colorType, CommentColor, "/* */")
		}
		return es.color(es.colorType, CommentColor, "/* "+c.Text+" */")
	}
	marker := c.Marker
	if marker == "" {
		// Hand-built comments may omit the marker.
		marker = "#"
	}
	v := marker
	if c.Text != "" {
		v = marker + " " + c.Text
	}
	return es.color(es.colorType, CommentColor, v)
}
