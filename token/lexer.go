package token

import (
	"strconv"

	"github.com/jot-format/go-jot/diag"
)

// Lexer scans one token at a time from jot source text. Problems go to
// the shared diagnostic list and scanning resumes at the next plausible
// boundary.
type Lexer struct {
	doc   *Doc
	d     []byte
	i     int
	diags *diag.List
}

func NewLexer(src []byte, diags *diag.List) *Lexer {
	doc := NewDoc(src)
	return &Lexer{doc: doc, d: doc.Bytes(), diags: diags}
}

// Doc returns the position table for the scanned source.
func (l *Lexer) Doc() *Doc { return l.doc }

// Tokenize scans src to the end and returns all tokens. The last token
// is always TEOF.
func Tokenize(src []byte, diags *diag.List) []Token {
	lx := NewLexer(src, diags)
	var toks []Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Type == TEOF {
			return toks
		}
	}
}

// Next returns the next token. At the end of input it returns a TEOF
// token positioned at the end of the source.
func (l *Lexer) Next() Token {
	l.skipSpace()
	if l.i >= len(l.d) {
		return Token{Type: TEOF, Pos: l.doc.Pos(len(l.d))}
	}
	start := l.i
	switch l.d[l.i] {
	case '{':
		l.i++
		return Token{Type: TLCurl, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
	case '}':
		l.i++
		return Token{Type: TRCurl, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
	case '[':
		l.i++
		return Token{Type: TLSquare, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
	case ']':
		l.i++
		return Token{Type: TRSquare, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
	case ':':
		l.i++
		return Token{Type: TColon, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
	case ',':
		l.i++
		return Token{Type: TComma, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
	case '"':
		return l.quoted()
	case '\'':
		if l.i+3 <= len(l.d) && string(l.d[l.i:l.i+3]) == "'''" {
			return l.mstring()
		}
		return l.quoted()
	case '#':
		return l.lineComment()
	case '/':
		if l.i+1 < len(l.d) {
			switch l.d[l.i+1] {
			case '/':
				return l.lineComment()
			case '*':
				return l.blockComment()
			}
		}
	}
	return l.word()
}

func (l *Lexer) skipSpace() {
	for l.i < len(l.d) {
		switch l.d[l.i] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			l.i++
		default:
			return
		}
	}
}

func (l *Lexer) lexErr(off int, err error) {
	line, col := l.doc.LineCol(off)
	l.diags.Add(diag.Lex, line, col, "%s", err)
}

func (l *Lexer) quoted() Token {
	start := l.i
	n, terminated, probs := scanQuoted(l.d[start:])
	for _, p := range probs {
		l.lexErr(start+p.off, p.err)
	}
	if !terminated {
		l.lexErr(start, ErrUnterminated)
	}
	l.i += n
	return Token{Type: TString, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
}

func (l *Lexer) mstring() Token {
	start := l.i
	n, terminated := scanMString(l.d[start:])
	if !terminated {
		l.lexErr(start, ErrUnterminatedMulti)
	}
	l.i += n
	return Token{Type: TMString, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
}

func (l *Lexer) lineComment() Token {
	start := l.i
	for l.i < len(l.d) && l.d[l.i] != '\n' {
		l.i++
	}
	return Token{Type: TComment, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
}

func (l *Lexer) blockComment() Token {
	start := l.i
	l.i += 2
	for l.i < len(l.d) {
		if l.d[l.i] == '*' && l.i+1 < len(l.d) && l.d[l.i+1] == '/' {
			l.i += 2
			return Token{Type: TComment, Pos: l.doc.Pos(start), Bytes: l.d[start:l.i]}
		}
		l.i++
	}
	l.lexErr(start, ErrUnterminatedBlock)
	l.i = len(l.d)
	return Token{Type: TComment, Pos: l.doc.Pos(start), Bytes: l.d[start:]}
}

func (l *Lexer) word() Token {
	start := l.i
	l.i += wordLen(l.d[start:])
	d := l.d[start:l.i]
	return Token{Type: classify(d), Pos: l.doc.Pos(start), Bytes: d}
}

// wordLen returns the length of the bare word at the start of d. Words
// stop at whitespace, structural punctuation, and comment openers. A
// lone slash does not open a comment, so paths scan as one word.
func wordLen(d []byte) int {
	i := 0
	for i < len(d) {
		switch d[i] {
		case ' ', '\t', '\r', '\n', '\v', '\f', '{', '}', '[', ']', ':', ',', '#':
			return i
		case '/':
			if i+1 < len(d) && (d[i+1] == '/' || d[i+1] == '*') {
				return i
			}
		}
		i++
	}
	return i
}

// classify decides between keyword, number, and word. Numbers must
// match the grammar in full and fit a float64; anything else, including
// overflow like 1e999, stays a word.
func classify(d []byte) TokenType {
	switch string(d) {
	case "true":
		return TTrue
	case "false":
		return TFalse
	case "null":
		return TNull
	}
	if n, err := number(d); err == nil && n == len(d) {
		if _, err := strconv.ParseFloat(string(d), 64); err == nil {
			return TNumber
		}
	}
	return TWord
}
