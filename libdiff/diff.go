package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

// Lines computes the line-level edits turning from into to.
func Lines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	fr, tr, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(fr, tr, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Strings renders the edits turning a into b, one line per edit with
// "-" and "+" prefixes, and reports whether the two differ.
func Strings(a, b string) (string, bool) {
	if a == b {
		return "", false
	}
	var sb strings.Builder
	renderDiffs(&sb, Lines(a, b), false)
	return sb.String(), true
}

// Nodes renders the edit script between the jot encodings of two
// trees. Differences in comments are invisible here because they are
// not part of the trees.
func Nodes(from, to *ir.Node) (string, bool) {
	return Strings(encode.MustString(from)+"\n", encode.MustString(to)+"\n")
}

// Render writes edits to w, coloring deletions red and insertions
// green when colors is set.
func Render(w io.Writer, diffs []diffpatch.Diff, colors bool) error {
	var sb strings.Builder
	renderDiffs(&sb, diffs, colors)
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderDiffs(sb *strings.Builder, diffs []diffpatch.Diff, colors bool) {
	for i := range diffs {
		d := &diffs[i]
		prefix := " "
		paint := func(s string, _ ...any) string { return s }
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			if colors {
				paint = literally(color.RedString)
			}
		case diffpatch.DiffInsert:
			prefix = "+"
			if colors {
				paint = literally(color.GreenString)
			}
		}
		for _, ln := range splitKeepLines(d.Text) {
			sb.WriteString(paint(prefix + ln))
			sb.WriteByte('\n')
		}
	}
}

// literally stops percent signs in the text from being read as verbs.
func literally(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

// splitKeepLines splits on newlines, dropping the trailing empty piece
// a final newline produces.
func splitKeepLines(v string) []string {
	lines := strings.Split(v, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
