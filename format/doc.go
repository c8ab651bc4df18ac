// Package format names the text formats the module reads and writes.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/encode - Encode IR to text
//   - github.com/jot-format/go-jot/convert - Convert between formats
package format
