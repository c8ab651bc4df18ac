// Package libdiff renders line diffs between jot documents. The fmt
// and check commands use it to show what rewriting a file would
// change.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/encode - produces the text compared
package libdiff
