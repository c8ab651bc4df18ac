// Package parse turns jot text into a value tree, a comment list, and
// diagnostics.
//
// # Usage
//
//	res := parse.Parse(d)
//	if err := res.Err(); err != nil {
//		return err
//	}
//	work(res.Root)
//
// Parse never fails outright. Malformed input yields the best tree the
// parser could recover together with error diagnostics, so tools can
// show everything wrong with a document in one pass instead of
// stopping at the first problem. Callers that want all-or-nothing
// behavior check Result.Err.
//
// # Comments
//
// Comments are not part of the value tree. They are returned in
// Result.Comments, each holding its text, a placement, and the path of
// the value it attaches to. A comment on the same line as the end of a
// value trails that value; a comment above a value leads it; a comment
// alone before a closing bracket dangles in the container; comments
// after the last value are document footers. The encode package
// reunites them with the tree when writing.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - parsed value representation
//   - github.com/jot-format/go-jot/token - the underlying lexer
//   - github.com/jot-format/go-jot/encode - writing trees back out
package parse
