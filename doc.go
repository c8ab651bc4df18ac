// Package jot reads and writes jot, a configuration format that
// treats JSON as a strict subset: commas are optional, plain words
// need no quotes, and comments are kept, not discarded.
//
// # Usage
//
//	out, diags, err := jot.Format(src)
//
// The subpackages do the work. parse builds the value tree, encode
// writes it back out, convert crosses into plain Go values and YAML,
// and query evaluates expressions over a document. This package ties
// them together for whole-document operations: Format, Merge, Diff,
// and Equal.
//
// Reading and writing never stop at the first problem. Both directions
// return a diag.List describing everything found along the way, and
// the result stays usable even when the list is non-empty.
package jot
