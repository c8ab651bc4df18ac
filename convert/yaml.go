package convert

import (
	"github.com/goccy/go-yaml"

	"github.com/jot-format/go-jot/ir"
)

// FromYAML parses YAML into a node. Mapping order is preserved.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToYAML renders a node as YAML. Member order is preserved; comments
// are not, since they live outside the tree.
func ToYAML(y *ir.Node) ([]byte, error) {
	return yaml.MarshalWithOptions(ToOrdered(y), yaml.IndentSequence(true))
}
