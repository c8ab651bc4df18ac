// Package cpath implements comment paths, the addresses that tie a
// parsed comment to a member or element of the value tree.
//
// The display form is JSONPath-like:
//
//	$             root
//	$.a.b         member b of object at member a
//	$.list[2]     third element of the array at member list
//	$.'odd key'   quoted member key
//
// A field step may pin a member ordinal for duplicate keys, written
// .key#2 in parsed input. Ordinals are kept on the Step but left out of
// the display form.
package cpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jot-format/go-jot/token"
)

var ErrPath = errors.New("bad path")

type StepKind int

const (
	FieldStep StepKind = iota
	IndexStep
)

// Step is one segment of a Path. Field steps carry the member key and
// the ordinal of the member in its object, -1 meaning the first member
// with that key. Index steps carry the element index.
type Step struct {
	Kind  StepKind
	Key   string
	Index int
}

func Field(key string) Step {
	return Step{Kind: FieldStep, Key: key, Index: -1}
}

func FieldAt(key string, member int) Step {
	return Step{Kind: FieldStep, Key: key, Index: member}
}

func Index(i int) Step {
	return Step{Kind: IndexStep, Index: i}
}

// Path addresses a member or element in a value tree. The empty path is
// the root itself.
type Path []Step

// With returns a copy of p extended by s. Paths share no backing array
// with their extensions, so a parent path can be extended repeatedly.
func (p Path) With(s Step) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, s := range p {
		switch s.Kind {
		case FieldStep:
			b.WriteByte('.')
			if token.PathQuoteField(s.Key) {
				b.WriteString(token.Quote(s.Key, true))
			} else {
				b.WriteString(s.Key)
			}
		case IndexStep:
			fmt.Fprintf(b, "[%d]", s.Index)
		}
	}
	return b.String()
}

// Parse reads the display form of a path. The leading $ is optional, as
// is the dot before the first field. A field step may carry an explicit
// member ordinal as .key#2, pinning the step to member position 2 of
// the owning object.
func Parse(s string) (Path, error) {
	if s == "" || s == "$" {
		return nil, nil
	}
	i := 0
	if s[0] == '$' {
		i = 1
	}
	var p Path
	for i < len(s) {
		switch {
		case s[i] == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unclosed index in %q", ErrPath, s)
			}
			idx, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: index %q in %q", ErrPath, s[i+1:i+j], s)
			}
			p = append(p, Index(idx))
			i += j + 1
		case s[i] == '.':
			step, n, err := parseFieldStep(s[i+1:])
			if err != nil {
				return nil, err
			}
			p = append(p, step)
			i += 1 + n
		case len(p) == 0 && (i == 0 || i == 1):
			step, n, err := parseFieldStep(s[i:])
			if err != nil {
				return nil, err
			}
			p = append(p, step)
			i += n
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, s[i], s)
		}
	}
	return p, nil
}

// parseFieldStep reads a key, quoted or bare, plus an optional #ordinal
// and returns the step and the bytes consumed.
func parseFieldStep(s string) (Step, int, error) {
	if s == "" {
		return Step{}, 0, fmt.Errorf("%w: missing key", ErrPath)
	}
	var key string
	var i int
	if s[0] == '\'' || s[0] == '"' {
		n, err := quotedEnd(s)
		if err != nil {
			return Step{}, 0, err
		}
		key = token.QuotedToString([]byte(s[:n]))
		i = n
	} else {
		i = strings.IndexAny(s, ".[#")
		if i < 0 {
			i = len(s)
		}
		if i == 0 {
			return Step{}, 0, fmt.Errorf("%w: missing key", ErrPath)
		}
		key = s[:i]
	}
	step := Field(key)
	if i < len(s) && s[i] == '#' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i+1 {
			return Step{}, 0, fmt.Errorf("%w: missing member ordinal", ErrPath)
		}
		ord, _ := strconv.Atoi(s[i+1 : j])
		step.Index = ord
		i = j
	}
	return step, i, nil
}

func quotedEnd(s string) (int, error) {
	q := s[0]
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
		case q:
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, fmt.Errorf("%w: unterminated key in %q", ErrPath, s)
}
