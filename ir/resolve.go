package ir

import "github.com/jot-format/go-jot/ir/cpath"

// Resolve walks p from root and returns the node it names, or nil when
// any step fails. A field step with a member ordinal resolves to that
// member when its key still matches, and falls back to the first member
// with the key otherwise.
func Resolve(root *Node, p cpath.Path) *Node {
	y := root
	for _, s := range p {
		if y == nil {
			return nil
		}
		switch s.Kind {
		case cpath.FieldStep:
			if y.Type != ObjectType {
				return nil
			}
			y = resolveField(y, s)
		case cpath.IndexStep:
			if y.Type != ArrayType || s.Index < 0 || s.Index >= len(y.Values) {
				return nil
			}
			y = y.Values[s.Index]
		default:
			return nil
		}
	}
	return y
}

func resolveField(y *Node, s cpath.Step) *Node {
	if s.Index >= 0 && s.Index < len(y.Members) && y.Members[s.Index].Key == s.Key {
		return y.Members[s.Index].Value
	}
	return Get(y, s.Key)
}
