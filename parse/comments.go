package parse

import (
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/cpath"
	"github.com/jot-format/go-jot/token"
)

// anchor remembers where the most recently completed value ended. A
// comment starting on that line trails the value; any other comment
// waits in pending.
type anchor struct {
	line int
	path cpath.Path
}

// trivia processes the comment tokens sitting in front of the next
// significant token.
func (p *parser) trivia() {
	for p.toks[p.i].Type == token.TComment {
		p.comment(&p.toks[p.i])
		p.i++
	}
}

func (p *parser) comment(t *token.Token) {
	if !p.opts.comments {
		return
	}
	line, col := t.Pos.LineCol()
	c := ir.Comment{
		Kind:   commentKind(t),
		Marker: t.CommentMarker(),
		Text:   t.CommentText(),
		Line:   line,
		Col:    col,
	}
	if p.last != nil && line == p.last.line {
		c.Placement = ir.Trailing
		c.Path = p.last.path
		p.res.Comments = append(p.res.Comments, c)
		return
	}
	p.pending = append(p.pending, c)
}

func commentKind(t *token.Token) ir.CommentKind {
	if t.CommentMarker() == "/*" {
		return ir.BlockComment
	}
	return ir.LineComment
}

// flushPending gives every pending comment the placement and path of
// the construct that finally claimed it and moves them to the result.
// Values claim pending comments as leading, closing brackets as
// dangling, and the end of input as footers.
func (p *parser) flushPending(placement ir.Placement, path cpath.Path) {
	for _, c := range p.pending {
		c.Placement = placement
		c.Path = path
		p.res.Comments = append(p.res.Comments, c)
	}
	p.pending = p.pending[:0]
}

func (p *parser) setLast(end *token.Token, path cpath.Path) {
	p.last = &anchor{line: p.endLine(end), path: path}
}
