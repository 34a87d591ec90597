// Package govalue converts between plain Go values (nested
// map[string]any / []any trees and scalars) and ir.Node trees.
package govalue

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/treedot/treedot/ir"
	"github.com/treedot/treedot/ir/dotpath"
)

// FromGo converts a Go value into a tree node. map[string]any becomes an
// object with sorted fields (Go maps have no order to preserve), []any
// an array, scalars their leaf node. Anything else round-trips through
// encoding/json. Cyclic values are detected with a visited set and fail
// with a ConvertError rather than recursing forever.
func FromGo(v any) (*ir.Node, error) {
	seen := map[uintptr]bool{}
	return fromGo(v, "", seen)
}

func fromGo(v any, fieldPath string, seen map[uintptr]bool) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return &ir.Node{Type: ir.NumberType, Number: x.String()}, nil
	case map[string]any:
		return mapFromGo(x, fieldPath, seen)
	case []any:
		return sliceFromGo(x, fieldPath, seen)
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, &ConvertError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("unsupported value of type %T", v),
				Err:       err,
			}
		}
		var plain any
		if err := json.Unmarshal(d, &plain); err != nil {
			return nil, &ConvertError{FieldPath: fieldPath, Message: "round-trip decode failed", Err: err}
		}
		return fromGo(plain, fieldPath, seen)
	}
}

func mapFromGo(m map[string]any, fieldPath string, seen map[uintptr]bool) (*ir.Node, error) {
	ptr := reflect.ValueOf(m).Pointer()
	if seen[ptr] {
		return nil, &ConvertError{
			FieldPath: fieldPath,
			Message:   "circular reference detected",
		}
	}
	seen[ptr] = true
	defer delete(seen, ptr)

	nodeMap := make(map[string]*ir.Node, len(m))
	for k, v := range m {
		child, err := fromGo(v, dotpath.Join(fieldPath, k), seen)
		if err != nil {
			return nil, err
		}
		nodeMap[k] = child
	}
	return ir.FromMap(nodeMap), nil
}

func sliceFromGo(s []any, fieldPath string, seen map[uintptr]bool) (*ir.Node, error) {
	if s != nil {
		ptr := reflect.ValueOf(s).Pointer()
		if seen[ptr] {
			return nil, &ConvertError{
				FieldPath: fieldPath,
				Message:   "circular reference detected",
			}
		}
		seen[ptr] = true
		defer delete(seen, ptr)
	}

	nodes := make([]*ir.Node, len(s))
	for i, v := range s {
		child, err := fromGo(v, fmt.Sprintf("%s.%d", fieldPath, i), seen)
		if err != nil {
			return nil, err
		}
		nodes[i] = child
	}
	return ir.FromSlice(nodes), nil
}

// ToGo converts a tree node into a plain Go value: objects become
// map[string]any (field order is lost), arrays []any, leaves their Go
// scalar. A nil node converts to nil.
func ToGo(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		fields := ir.ToMap(node)
		res := make(map[string]any, len(fields))
		for k, v := range fields {
			res[k] = ToGo(v)
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToGo(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}
