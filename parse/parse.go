package parse

import (
	"strconv"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/cpath"
	"github.com/jot-format/go-jot/token"
)

// Result holds everything parsing produced: the value tree, the
// comments found in the input, and the diagnostics describing what, if
// anything, was wrong with it.
//
// Root is never nil. When the input is empty or the root value is
// unrecoverable, Root is a null node and Diags says why.
type Result struct {
	Root     *ir.Node
	Comments []ir.Comment
	Diags    diag.List
}

// Err returns nil when parsing produced no error-severity diagnostics,
// and otherwise an error summarizing them. Warnings alone do not make
// Err non-nil.
func (r *Result) Err() error {
	return r.Diags.Err()
}

// Parse parses d and returns the result. It does not fail: malformed
// input yields the best tree the parser could recover together with
// diagnostics in Result.Diags. Callers that want all-or-nothing
// behavior check Result.Err.
func Parse(d []byte, opts ...ParseOption) *Result {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	res := &Result{}
	lx := token.NewLexer(d, &res.Diags)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Type == token.TEOF {
			break
		}
	}
	if debug.Lex() {
		for i := range toks {
			debug.Logf("lex: %s\n", toks[i].Info())
		}
	}
	p := &parser{toks: toks, doc: lx.Doc(), opts: pOpts, res: res}
	p.parseRoot()
	if debug.Parse() {
		debug.Logf("parse: %d tokens %d comments %d diags root %s\n",
			len(toks), len(res.Comments), len(res.Diags), res.Root.Type)
	}
	return res
}

type parser struct {
	toks []token.Token
	i    int
	doc  *token.Doc
	opts *parseOpts
	res  *Result

	// pending holds comments awaiting a value to lead, a container
	// close to dangle in, or the end of input to become footers.
	pending []ir.Comment

	// last anchors trailing comments to the most recently completed
	// value.
	last *anchor
}

// peek returns the next significant token without consuming it,
// processing any comments in front of it.
func (p *parser) peek() *token.Token {
	p.trivia()
	return &p.toks[p.i]
}

// advance consumes and returns the next significant token. The end of
// input sentinel is never consumed.
func (p *parser) advance() *token.Token {
	t := p.peek()
	if t.Type != token.TEOF {
		p.i++
	}
	return t
}

func (p *parser) syntax(t *token.Token, format string, args ...any) {
	line, col := t.Pos.LineCol()
	p.res.Diags.Add(diag.Syntax, line, col, format, args...)
}

func tokenLabel(t *token.Token) string {
	if t.Type == token.TEOF {
		return "end of input"
	}
	return strconv.Quote(string(t.Bytes))
}

func keyText(t *token.Token) string {
	switch t.Type {
	case token.TString, token.TMString:
		return t.String()
	default:
		return string(t.Bytes)
	}
}

func startsScalar(t token.TokenType) bool {
	switch t {
	case token.TString, token.TMString, token.TWord, token.TNumber,
		token.TTrue, token.TFalse, token.TNull:
		return true
	}
	return false
}

// colonFollows reports whether the token after the current one is a
// colon, looking through comments. It drives braceless root
// detection: a scalar followed by a colon is a key, not a root value.
func (p *parser) colonFollows() bool {
	for i := p.i + 1; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case token.TComment:
			continue
		case token.TColon:
			return true
		default:
			return false
		}
	}
	return false
}

func (p *parser) parseRoot() {
	t := p.peek()
	if t.Type == token.TEOF {
		p.syntax(t, "empty document")
		p.res.Root = ir.Null()
		p.flushPending(ir.Footer, nil)
		return
	}
	if startsScalar(t.Type) && p.colonFollows() {
		if p.opts.requireBraces {
			p.syntax(t, "document root must be braced")
		}
		p.flushPending(ir.Leading, nil)
		y := &ir.Node{Type: ir.ObjectType}
		p.last = nil
		p.members(y, nil, false)
		p.res.Root = y
		p.flushPending(ir.Footer, nil)
		return
	}
	val, end := p.value(nil)
	if val == nil {
		p.advance()
		val = ir.Null()
	} else {
		p.setLast(end, nil)
	}
	p.res.Root = val
	if t := p.peek(); t.Type != token.TEOF {
		p.syntax(t, "unexpected %s after document root", tokenLabel(t))
		for p.peek().Type != token.TEOF {
			p.advance()
		}
	}
	p.flushPending(ir.Footer, nil)
}

// value parses one value and returns it with its final token. A token
// that cannot start a value is left unconsumed and (nil, token) is
// returned so the caller can decide how to recover.
func (p *parser) value(path cpath.Path) (*ir.Node, *token.Token) {
	t := p.peek()
	switch t.Type {
	case token.TEOF, token.TColon, token.TComma, token.TRCurl, token.TRSquare:
		p.syntax(t, "expected value, found %s", tokenLabel(t))
		return nil, t
	}
	p.flushPending(ir.Leading, path)
	p.advance()
	switch t.Type {
	case token.TLCurl:
		y := &ir.Node{Type: ir.ObjectType}
		p.last = nil
		end := p.members(y, path, true)
		return y, end
	case token.TLSquare:
		y := &ir.Node{Type: ir.ArrayType}
		p.last = nil
		end := p.elements(y, path)
		return y, end
	case token.TNumber:
		return ir.FromNumber(t.Number()), t
	case token.TTrue:
		return ir.FromBool(true), t
	case token.TFalse:
		return ir.FromBool(false), t
	case token.TNull:
		return ir.Null(), t
	default:
		return ir.FromString(t.String()), t
	}
}

// members parses object members until the object closes, returning the
// closing token. With braced false it parses a braceless root and only
// the end of input closes it.
func (p *parser) members(y *ir.Node, path cpath.Path, braced bool) *token.Token {
	sawItem := false
	for {
		t := p.peek()
		switch t.Type {
		case token.TEOF:
			if braced {
				p.syntax(t, "unterminated object")
				p.flushPending(ir.Dangling, path)
			}
			return t
		case token.TRCurl:
			p.advance()
			if !braced {
				p.syntax(t, "unexpected %q", "}")
				continue
			}
			p.flushPending(ir.Dangling, path)
			return t
		case token.TRSquare:
			p.advance()
			if !braced {
				p.syntax(t, "unexpected %q", "]")
				continue
			}
			p.syntax(t, "expected %q to close object, found %q", "}", "]")
			p.flushPending(ir.Dangling, path)
			return t
		case token.TComma:
			if !sawItem {
				p.syntax(t, "unexpected %q", ",")
			}
			sawItem = false
			p.advance()
		case token.TColon:
			p.syntax(t, "expected key, found %q", ":")
			p.advance()
		case token.TLCurl, token.TLSquare:
			p.syntax(t, "expected key, found %q", string(t.Bytes))
			p.advance()
		default:
			p.member(y, path, t)
			sawItem = true
		}
	}
}

// member parses one key, colon, and value. When the colon or value is
// missing the member is dropped and the rest of its line skipped.
func (p *parser) member(y *ir.Node, path cpath.Path, key *token.Token) {
	p.advance()
	k := keyText(key)
	if c := p.peek(); c.Type != token.TColon {
		p.syntax(c, "expected %q after key %q", ":", k)
		p.resync(p.endLine(key))
		return
	}
	p.advance()
	if ir.Get(y, k) != nil {
		line, col := key.Pos.LineCol()
		p.res.Diags.Add(diag.DuplicateKey, line, col, "duplicate key %q", k)
	}
	memberPath := path.With(cpath.FieldAt(k, len(y.Members)))
	val, end := p.value(memberPath)
	if val == nil {
		p.resync(p.endLine(key))
		return
	}
	y.Members = append(y.Members, ir.Member{Key: k, Value: val})
	p.setLast(end, memberPath)
}

// elements parses array elements until the array closes, returning the
// closing token.
func (p *parser) elements(y *ir.Node, path cpath.Path) *token.Token {
	sawItem := false
	for {
		t := p.peek()
		switch t.Type {
		case token.TEOF:
			p.syntax(t, "unterminated array")
			p.flushPending(ir.Dangling, path)
			return t
		case token.TRSquare:
			p.advance()
			p.flushPending(ir.Dangling, path)
			return t
		case token.TRCurl:
			p.advance()
			p.syntax(t, "expected %q to close array, found %q", "]", "}")
			p.flushPending(ir.Dangling, path)
			return t
		case token.TComma:
			if !sawItem {
				p.syntax(t, "unexpected %q", ",")
			}
			sawItem = false
			p.advance()
		case token.TColon:
			p.syntax(t, "expected value, found %q", ":")
			p.advance()
		default:
			eltPath := path.With(cpath.Index(len(y.Values)))
			val, end := p.value(eltPath)
			y.Values = append(y.Values, val)
			p.setLast(end, eltPath)
			sawItem = true
		}
	}
}

// resync skips the remainder of a broken member: everything on
// fromLine, plus one comma so the next member parses cleanly. It stops
// at a closing token so container structure survives.
func (p *parser) resync(fromLine int) {
	for {
		t := p.peek()
		switch t.Type {
		case token.TEOF, token.TRCurl, token.TRSquare:
			return
		case token.TComma:
			p.advance()
			return
		}
		if line, _ := t.Pos.LineCol(); line > fromLine {
			return
		}
		p.advance()
	}
}

// endLine returns the line on which t's final byte sits. Multiline
// strings and block comments can end well below where they begin.
func (p *parser) endLine(t *token.Token) int {
	end := t.Pos.Off
	if n := len(t.Bytes); n > 0 {
		end += n - 1
	}
	line, _ := p.doc.LineCol(end)
	return line
}
