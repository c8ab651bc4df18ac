package ir

import (
	"maps"
	"slices"
)

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	return map[Type]string{
		NullType:   "null",
		BoolType:   "bool",
		NumberType: "number",
		StringType: "string",
		ArrayType:  "array",
		ObjectType: "object",
	}[t]
}

// Types returns all node types.
func Types() []Type {
	return []Type{NullType, BoolType, NumberType, StringType, ArrayType, ObjectType}
}

// Node is one value in a jot document. The zero value is null. Exactly
// one payload field is meaningful, selected by Type.
type Node struct {
	Type Type

	String string
	Number float64
	Bool   bool

	Values  []*Node
	Members []Member
}

// Member is one key value pair of an object. Members keep their source
// order, and duplicate keys are kept as written.
type Member struct {
	Key   string
	Value *Node
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromNumber(v float64) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{Type: ArrayType, Values: ySlice}
}

func FromMembers(ms []Member) *Node {
	return &Node{Type: ObjectType, Members: ms}
}

// FromMap builds an object with the keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType, Members: make([]Member, 0, len(yMap))}
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Members = append(res.Members, Member{Key: key, Value: yMap[key]})
	}
	return res
}

// Get returns the value of the first member named key, or nil.
func Get(y *Node, key string) *Node {
	for i := range y.Members {
		if y.Members[i].Key == key {
			return y.Members[i].Value
		}
	}
	return nil
}

// GetAll returns the values of every member named key, in order.
func GetAll(y *Node, key string) []*Node {
	var res []*Node
	for i := range y.Members {
		if y.Members[i].Key == key {
			res = append(res, y.Members[i].Value)
		}
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Number: y.Number,
		Bool:   y.Bool,
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	if y.Members != nil {
		res.Members = make([]Member, len(y.Members))
		for i := range y.Members {
			res.Members[i] = Member{
				Key:   y.Members[i].Key,
				Value: y.Members[i].Value.Clone(),
			}
		}
	}
	return res
}

// Visit calls f on y and, when f returns true on the pre visit, on
// every node below it. f runs once before the children and once after.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
		for i := range y.Members {
			if err := y.Members[i].Value.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
