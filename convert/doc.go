// Package convert bridges jot trees to plain Go values and to YAML.
//
// # Usage
//
//	y, err := convert.FromYAML(d)
//	v := convert.ToAny(y)
//	d, err = convert.ToYAML(y)
//
// ToAny and map input lose member order and duplicate keys, same as a
// JSON decoder. ToOrdered and yaml.MapSlice input keep both.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - the tree being converted
//   - github.com/jot-format/go-jot/encode - jot and JSON output
package convert
