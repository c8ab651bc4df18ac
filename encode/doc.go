// Package encode writes IR nodes as jot or JSON text.
//
// # Usage
//
//	y := ir.FromMap(map[string]*ir.Node{
//		"name": ir.FromString("alice"),
//		"age":  ir.FromNumber(30),
//	})
//	diags, err := encode.Encode(y, os.Stdout)
//
//	// JSON output
//	diags, err = encode.Encode(y, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// # Comments
//
// Comments live beside the tree, not in it. Pass a parse result's
// comment list with EncodeComments to weave them back into the output.
// Each comment names the path it attaches to; when the tree has been
// edited so a path no longer resolves, the comment is dropped and the
// returned diagnostics carry an unresolved-comment warning. Encoding
// never fails because of a stranded comment.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - IR representation
//   - github.com/jot-format/go-jot/parse - parse text to IR
//   - github.com/jot-format/go-jot/convert - YAML and Go value bridges
package encode
