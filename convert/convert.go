package convert

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jot-format/go-jot/ir"
)

var ErrConvert = errors.New("convert")

// ToAny converts a node to plain Go values: nil, bool, float64, string,
// []any, and map[string]any. Member order is lost and duplicate keys
// collapse to the last occurrence, matching what a JSON decoder would
// have produced.
func ToAny(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.BoolType:
		return y.Bool
	case ir.NumberType:
		return y.Number
	case ir.StringType:
		return y.String
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(y.Members))
		for i := range y.Members {
			res[y.Members[i].Key] = ToAny(y.Members[i].Value)
		}
		return res
	default:
		return nil
	}
}

// ToOrdered is ToAny except objects become yaml.MapSlice values, so
// member order and duplicate keys survive the trip.
func ToOrdered(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToOrdered(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(y.Members))
		for i := range y.Members {
			res[i] = yaml.MapItem{
				Key:   y.Members[i].Key,
				Value: ToOrdered(y.Members[i].Value),
			}
		}
		return res
	default:
		return ToAny(y)
	}
}

// FromAny builds a node from plain Go values, the shapes JSON and YAML
// decoders produce. Map keys come out sorted; use yaml.MapSlice input
// to keep an explicit order.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case float64:
		return ir.FromNumber(x), nil
	case float32:
		return ir.FromNumber(float64(x)), nil
	case int:
		return ir.FromNumber(float64(x)), nil
	case int8:
		return ir.FromNumber(float64(x)), nil
	case int16:
		return ir.FromNumber(float64(x)), nil
	case int32:
		return ir.FromNumber(float64(x)), nil
	case int64:
		return ir.FromNumber(float64(x)), nil
	case uint:
		return ir.FromNumber(float64(x)), nil
	case uint8:
		return ir.FromNumber(float64(x)), nil
	case uint16:
		return ir.FromNumber(float64(x)), nil
	case uint32:
		return ir.FromNumber(float64(x)), nil
	case uint64:
		return ir.FromNumber(float64(x)), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType, Members: make([]ir.Member, 0, len(x))}
		for _, item := range x {
			key, err := anyKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Members = append(res.Members, ir.Member{Key: key, Value: val})
		}
		return res, nil
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			yMap[k] = v
		}
		return ir.FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrConvert, v)
	}
}

// anyKey renders a decoded map key as an object key. YAML allows
// non-string keys; jot objects do not.
func anyKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("%w: cannot use %T as an object key", ErrConvert, k)
	}
}
