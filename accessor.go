package treedot

import (
	"slices"
	"strconv"

	"github.com/treedot/treedot/ir"
	"github.com/treedot/treedot/ir/dotpath"
)

// Get walks path from root and returns the node it resolves to. A
// missing path is a normal outcome, not an error: if any segment fails
// to resolve, or the path is malformed, Get returns def. Callers pass a
// nil def to use the missing-sentinel.
//
// The returned node is the live node in the tree, not a copy.
func Get(root *ir.Node, path string, def *ir.Node) *ir.Node {
	if root == nil {
		return def
	}
	segs, err := dotpath.Parse(path)
	if err != nil {
		return def
	}
	cur := root
	for _, seg := range segs {
		cur = child(cur, seg)
		if cur == nil {
			return def
		}
	}
	return cur
}

// Has reports whether every segment of path resolves to an existing key.
func Has(root *ir.Node, path string) bool {
	return Get(root, path, nil) != nil
}

// Set assigns value at path, mutating root in place. Intermediate nodes
// that are absent or are not containers are overwritten with fresh empty
// objects; this silently destroys any leaf sitting in the way (the
// destructive-overwrite contract). Sequence intermediates are descended
// when the segment is a valid index, grown by one when the segment
// equals their length, and otherwise overwritten with an object.
//
// A nil value is stored as an explicit null node. The only failure is
// ErrBadPath for an empty or malformed path.
func Set(root *ir.Node, path string, value *ir.Node) error {
	segs, err := dotpath.Parse(path)
	if err != nil {
		return err
	}
	if value == nil {
		value = ir.Null()
	}
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		cur = descend(cur, seg)
	}
	put(cur, segs[len(segs)-1], value)
	return nil
}

// Delete removes the node at path and returns it, or nil when the path
// does not resolve. Deleting a non-existent path is a no-op. Removing a
// sequence element shifts later elements down one index. ErrBadPath is
// the only failure.
func Delete(root *ir.Node, path string) (*ir.Node, error) {
	if _, err := dotpath.Parse(path); err != nil {
		return nil, err
	}
	parentPath, last := dotpath.RSplit(path)
	cur := root
	if parentPath != "" {
		cur = Get(root, parentPath, nil)
		if cur == nil {
			return nil, nil
		}
	}
	switch cur.Type {
	case ir.ObjectType:
		for i := range cur.Fields {
			if cur.Fields[i].String != last {
				continue
			}
			prev := cur.Values[i]
			cur.Fields = slices.Delete(cur.Fields, i, i+1)
			cur.Values = slices.Delete(cur.Values, i, i+1)
			reindex(cur, i)
			prev.Parent = nil
			return prev, nil
		}
		return nil, nil
	case ir.ArrayType:
		i, ok := arrayIndex(cur, last, false)
		if !ok {
			return nil, nil
		}
		prev := cur.Values[i]
		cur.Values = slices.Delete(cur.Values, i, i+1)
		reindex(cur, i)
		prev.Parent = nil
		return prev, nil
	default:
		return nil, nil
	}
}

// child resolves one segment against cur, nil when the segment is
// absent or cur is not a container.
func child(cur *ir.Node, seg string) *ir.Node {
	switch cur.Type {
	case ir.ObjectType:
		return ir.Get(cur, seg)
	case ir.ArrayType:
		i, ok := arrayIndex(cur, seg, false)
		if !ok {
			return nil
		}
		return cur.Values[i]
	default:
		return nil
	}
}

// descend resolves one intermediate segment for a write, creating or
// overwriting as the destructive-overwrite contract requires.
func descend(cur *ir.Node, seg string) *ir.Node {
	switch cur.Type {
	case ir.ObjectType:
		next := ir.Get(cur, seg)
		if next == nil {
			next = &ir.Node{Type: ir.ObjectType}
			appendField(cur, seg, next)
			return next
		}
		if next.Type.IsLeaf() {
			resetToObject(next)
		}
		return next
	case ir.ArrayType:
		i, ok := arrayIndex(cur, seg, true)
		if !ok {
			resetToObject(cur)
			return descend(cur, seg)
		}
		if i == len(cur.Values) {
			next := &ir.Node{Type: ir.ObjectType}
			appendElem(cur, next)
			return next
		}
		next := cur.Values[i]
		if next.Type.IsLeaf() {
			resetToObject(next)
		}
		return next
	default:
		resetToObject(cur)
		return descend(cur, seg)
	}
}

// put assigns value under the final segment of a write.
func put(cur *ir.Node, seg string, value *ir.Node) {
	switch cur.Type {
	case ir.ObjectType:
		for i := range cur.Fields {
			if cur.Fields[i].String != seg {
				continue
			}
			cur.Values[i].Parent = nil
			value.Parent = cur
			value.ParentIndex = i
			value.ParentField = seg
			cur.Values[i] = value
			return
		}
		appendField(cur, seg, value)
	case ir.ArrayType:
		i, ok := arrayIndex(cur, seg, true)
		if !ok {
			resetToObject(cur)
			appendField(cur, seg, value)
			return
		}
		if i == len(cur.Values) {
			appendElem(cur, value)
			return
		}
		cur.Values[i].Parent = nil
		value.Parent = cur
		value.ParentIndex = i
		value.ParentField = ""
		cur.Values[i] = value
	default:
		resetToObject(cur)
		appendField(cur, seg, value)
	}
}

// arrayIndex parses seg as an index into cur's values. With grow set,
// an index equal to the current length is accepted.
func arrayIndex(cur *ir.Node, seg string, grow bool) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 {
		return 0, false
	}
	n := len(cur.Values)
	if i < n || (grow && i == n) {
		return i, true
	}
	return 0, false
}

func appendField(cur *ir.Node, seg string, value *ir.Node) {
	i := len(cur.Fields)
	field := &ir.Node{
		Parent:      cur,
		ParentIndex: i,
		ParentField: seg,
		Type:        ir.StringType,
		String:      seg,
	}
	value.Parent = cur
	value.ParentIndex = i
	value.ParentField = seg
	cur.Fields = append(cur.Fields, field)
	cur.Values = append(cur.Values, value)
}

func appendElem(cur *ir.Node, value *ir.Node) {
	value.Parent = cur
	value.ParentIndex = len(cur.Values)
	value.ParentField = ""
	cur.Values = append(cur.Values, value)
}

// resetToObject overwrites n in place with a fresh empty object,
// keeping its position in the parent intact.
func resetToObject(n *ir.Node) {
	n.Type = ir.ObjectType
	n.Fields = nil
	n.Values = nil
	n.String = ""
	n.Bool = false
	n.Number = ""
	n.Int64 = nil
	n.Float64 = nil
}

// reindex restores ParentIndex on cur's children from position i on,
// after a slice deletion.
func reindex(cur *ir.Node, i int) {
	for j := i; j < len(cur.Values); j++ {
		cur.Values[j].ParentIndex = j
	}
	for j := i; j < len(cur.Fields); j++ {
		cur.Fields[j].ParentIndex = j
	}
}
