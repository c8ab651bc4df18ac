// Package token turns jot source text into a token stream. The lexer
// never fails: malformed input produces diagnostics and the lexer
// resynchronizes at the next plausible token boundary.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TMString
	TWord
	TNumber
	TTrue
	TFalse
	TNull
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TMString: "TMString",
		TWord:    "TWord",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TComment: "TComment",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded payload of the token: quoted and multiline
// strings are unescaped, everything else is the raw text.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TMString:
		_, col := t.Pos.LineCol()
		return mstringToString(t.Bytes, col-1)
	default:
		return string(t.Bytes)
	}
}

// Number returns the float64 value of a TNumber token. The lexer only
// classifies full matches of the number grammar that fit a double, so
// the conversion cannot fail on lexer output.
func (t *Token) Number() float64 {
	f, _ := strconv.ParseFloat(string(t.Bytes), 64)
	return f
}

// CommentMarker returns "//", "#", or "/*" for a TComment token.
func (t *Token) CommentMarker() string {
	switch {
	case len(t.Bytes) >= 2 && t.Bytes[0] == '/' && t.Bytes[1] == '/':
		return "//"
	case len(t.Bytes) >= 2 && t.Bytes[0] == '/' && t.Bytes[1] == '*':
		return "/*"
	default:
		return "#"
	}
}

// CommentText returns the comment body with its delimiters stripped and
// surrounding whitespace trimmed.
func (t *Token) CommentText() string {
	d := t.Bytes
	switch t.CommentMarker() {
	case "//":
		d = d[2:]
	case "#":
		d = d[1:]
	case "/*":
		d = d[2:]
		if n := len(d); n >= 2 && d[n-2] == '*' && d[n-1] == '/' {
			d = d[:n-2]
		}
	}
	return strings.TrimSpace(string(d))
}
