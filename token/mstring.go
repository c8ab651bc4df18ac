package token

import "strings"

// scanMString finds the extent of a multiline string starting at the
// opening ''' and returns how many bytes it spans and whether the
// closing ''' was found.
func scanMString(d []byte) (int, bool) {
	quotes := 0
	for i := 3; i < len(d); i++ {
		if d[i] == '\'' {
			quotes++
			if quotes == 3 {
				return i + 1, true
			}
		} else {
			quotes = 0
		}
	}
	return len(d), false
}

// mstringToString decodes a multiline string token. col is the zero
// based column of the opening quote; that many whitespace characters
// are stripped from each content line. No escapes are processed.
// Content may start on the opening line, otherwise the first newline
// is skipped. One newline immediately before the closing quotes is
// dropped, and carriage returns are dropped everywhere.
func mstringToString(d []byte, col int) string {
	d = d[3:]
	if len(d) >= 3 && string(d[len(d)-3:]) == "'''" {
		d = d[:len(d)-3]
	}
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == '\t' || d[i] == '\r') {
		i++
	}
	if i < len(d) && d[i] == '\n' {
		i++
		i += skipIndent(d[i:], col)
	}
	b := &strings.Builder{}
	lastLF := false
	for i < len(d) {
		switch d[i] {
		case '\n':
			b.WriteByte('\n')
			lastLF = true
			i++
			i += skipIndent(d[i:], col)
		case '\r':
			i++
		default:
			b.WriteByte(d[i])
			lastLF = false
			i++
		}
	}
	s := b.String()
	if lastLF {
		s = s[:len(s)-1]
	}
	return s
}

func skipIndent(d []byte, n int) int {
	i := 0
	for i < n && i < len(d) && (d[i] == ' ' || d[i] == '\t' || d[i] == '\r') {
		i++
	}
	return i
}
