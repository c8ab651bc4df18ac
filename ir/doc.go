// Package ir provides the intermediate representation (IR) for jot
// documents.
//
// # Overview
//
// A jot document parses to a tree of nodes plus a side list of
// comments. The tree is purely semantic: it carries no positions and no
// comment text, so two documents that differ only in layout or comments
// produce equal trees.
//
// # Node Structure
//
// A Node represents a single value. The Type field selects which
// payload field is meaningful:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number (float64, the only numeric representation)
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Members, in source order
//
// Objects are association lists, not maps. Duplicate keys are kept as
// written; parse reports them, and Get takes the first match. Use
// GetAll to observe every value of a repeated key.
//
// # Comments
//
// Comments never live inside Node. The Comment type carries the text,
// the marker, a placement, and a cpath.Path naming the member or
// element it belongs to. parse produces the list and encode resolves
// each path against the tree it is given, dropping (with a diagnostic)
// comments whose paths no longer resolve.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromNumber(42)
//	obj := ir.FromMembers([]ir.Member{
//	    {Key: "key", Value: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromNumber(1), ir.FromNumber(2)})
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone nodes or synchronize
// access when sharing them between goroutines.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/parse - Parses text into IR nodes
//   - github.com/jot-format/go-jot/encode - Encodes IR nodes to text
//   - github.com/jot-format/go-jot/ir/cpath - Comment path syntax
package ir
