package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// NeedsQuote reports whether a string value cannot be written bare,
// that is, whether it would fail to lex back as a single word with the
// same text. Keywords, numbers, and strings opening with a quote
// character all need quotes.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '"', '\'':
		return true
	}
	if wordLen([]byte(v)) != len(v) {
		return true
	}
	return classify([]byte(v)) != TWord
}

// PathQuoteField reports whether an object key must be quoted inside a
// comment path, either because it needs quotes as a value or because it
// contains path syntax.
func PathQuoteField(v string) bool {
	return NeedsQuote(v) || strings.ContainsAny(v, ".[#")
}

// Quote returns v as a quoted string. With autoSingle, single quotes
// are chosen when v contains more double quotes than single quotes.
func Quote(v string, autoSingle bool) string {
	q := byte('"')
	if autoSingle && strings.Count(v, `"`) > strings.Count(v, `'`) {
		q = '\''
	}
	return quoteWith(v, q)
}

func quoteWith(v string, q byte) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = q
	for _, r := range v {
		switch r {
		case rune(q):
			d = append(d, '\\', q)
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs := []byte{byte(r >> 8), byte(r)}
				cps := hex.AppendEncode(nil, ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, q))
}

// QuotedToString decodes a quoted string token. The input begins with
// the quote character; the closing quote is optional because recovered
// tokens may run to the end of the line. Bad escapes decode to the
// escaped character itself, matching the lexer's recovery.
func QuotedToString(d []byte) string {
	qc := d[0]
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		c := d[i]
		if c == qc {
			break
		}
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= len(d) {
			b.WriteByte('\\')
			break
		}
		switch d[i] {
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '/':
			b.WriteByte('/')
			i++
		case '\\', '\'', '"':
			b.WriteByte(d[i])
			i++
		case 'u':
			r, n := decodeUnicodeEscape(d[i-1:])
			b.WriteRune(r)
			i += n - 1
		default:
			r, sz := utf8.DecodeRune(d[i:])
			b.WriteRune(r)
			i += sz
		}
	}
	return b.String()
}

// decodeUnicodeEscape decodes a \uXXXX escape at the start of d,
// combining surrogate pairs when a second escape follows. It returns
// the rune and the number of bytes consumed. Malformed escapes yield
// utf8.RuneError over the bytes that scanned as hex.
func decodeUnicodeEscape(d []byte) (rune, int) {
	if len(d) < 6 || !allHex(d[2:6]) {
		return utf8.RuneError, 2
	}
	r := hexRune(d[2:6])
	n := 6
	if utf16.IsSurrogate(r) {
		if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' && allHex(d[8:12]) {
			r2 := hexRune(d[8:12])
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				return dec, 12
			}
		}
		return utf8.RuneError, n
	}
	return r, n
}

func hexRune(d []byte) rune {
	dst := []byte{0, 0}
	hex.Decode(dst, d)
	return rune(dst[0])<<8 | rune(dst[1])
}

func allHex(d []byte) bool {
	for _, c := range d {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

type scanProb struct {
	off int
	err error
}

// scanQuoted finds the extent of the quoted string starting at d[0] and
// collects escape problems. A raw newline or the end of input terminates
// an unclosed string; terminated reports whether the closing quote was
// found. Offsets in the problems are relative to d.
func scanQuoted(d []byte) (n int, terminated bool, probs []scanProb) {
	qc := d[0]
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case qc:
			return i + 1, true, probs
		case '\n':
			return i, false, probs
		case '\\':
			if i+1 >= len(d) {
				return len(d), false, probs
			}
			switch d[i+1] {
			case 'b', 'f', 'n', 'r', 't', '/', '\\', '\'', '"':
				i += 2
			case 'u':
				if i+6 > len(d) || !allHex(d[i+2:i+6]) {
					probs = append(probs, scanProb{off: i, err: ErrBadUnicode})
					i += 2
					continue
				}
				r := hexRune(d[i+2 : i+6])
				i += 6
				if utf16.IsSurrogate(r) {
					if i+6 <= len(d) && d[i] == '\\' && d[i+1] == 'u' && allHex(d[i+2:i+6]) &&
						utf16.DecodeRune(r, hexRune(d[i+2:i+6])) != utf8.RuneError {
						i += 6
						continue
					}
					probs = append(probs, scanProb{off: i - 6, err: ErrLoneSurrogate})
				}
			case '\n':
				probs = append(probs, scanProb{off: i, err: ErrBadEscape})
				return i + 1, false, probs
			default:
				probs = append(probs, scanProb{off: i, err: ErrBadEscape})
				i += 2
			}
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				probs = append(probs, scanProb{off: i, err: ErrBadUTF8})
			}
			i += sz
		}
	}
	return len(d), false, probs
}
