// Package codec serializes tree nodes to and from YAML and JSON. JSON
// is handled as the YAML subset it is, so one decoder covers both.
// Object field order survives round trips: mappings decode into ordered
// yaml.MapSlice values rather than Go maps.
package codec

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/treedot/treedot/ir"
)

// Decode parses YAML or JSON input into a tree, preserving mapping key
// order.
func Decode(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return fromAny(v)
}

// EncodeYAML renders a tree as YAML with object fields in tree order.
func EncodeYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(toAny(node))
}

// EncodeJSON renders a tree as JSON with object fields in tree order.
func EncodeJSON(node *ir.Node) ([]byte, error) {
	return yaml.MarshalWithOptions(toAny(node), yaml.JSON())
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			child, err := fromAny(item.Value)
			if err != nil {
				return nil, err
			}
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			kvs[i] = ir.KeyVal{Key: key, Val: child}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		nodeMap := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			child, err := fromAny(v)
			if err != nil {
				return nil, err
			}
			nodeMap[k] = child
		}
		return ir.FromMap(nodeMap), nil
	case []any:
		nodes := make([]*ir.Node, len(x))
		for i, elem := range x {
			child, err := fromAny(elem)
			if err != nil {
				return nil, err
			}
			nodes[i] = child
		}
		return ir.FromSlice(nodes), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	default:
		return nil, fmt.Errorf("decoding: unsupported value of type %T", v)
	}
}

func toAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toAny(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elem := range node.Values {
			res[i] = toAny(elem)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	default:
		panic("impossible production")
	}
}
