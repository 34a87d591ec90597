package treedot

import (
	"fmt"
	"strconv"

	"github.com/treedot/treedot/debug"
	"github.com/treedot/treedot/ir"
	"github.com/treedot/treedot/ir/dotpath"
)

// Entry is one (path, value) pair of an enumeration. Value is the live
// node in the tree; clone it before re-parenting it elsewhere.
type Entry struct {
	Path  string
	Value *ir.Node
}

// Scan enumerates every node strictly below root in deterministic
// depth-first pre-order: a container's entry is emitted before its
// children's, object fields follow insertion order, array elements
// index order. Array elements are addressed by decimal index segments.
//
// A container reachable twice (a cycle, or a shared subtree) fails fast
// with ErrCycle; Scan never hangs on a malformed graph.
func Scan(root *ir.Node) ([]Entry, error) {
	if root == nil {
		return nil, nil
	}
	var entries []Entry
	seen := map[*ir.Node]bool{}
	if err := scanFrom(root, "", seen, &entries); err != nil {
		return nil, err
	}
	if debug.Scan() {
		debug.Logf("scan: %d entries below root\n", len(entries))
	}
	return entries, nil
}

func scanFrom(cur *ir.Node, prefix string, seen map[*ir.Node]bool, dst *[]Entry) error {
	if seen[cur] {
		return fmt.Errorf("%w at %q", ErrCycle, prefix)
	}
	seen[cur] = true
	switch cur.Type {
	case ir.ObjectType:
		for i := range cur.Fields {
			if err := scanChild(cur.Values[i], dotpath.Join(prefix, cur.Fields[i].String), seen, dst); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, elem := range cur.Values {
			if err := scanChild(elem, dotpath.Join(prefix, strconv.Itoa(i)), seen, dst); err != nil {
				return err
			}
		}
	}
	return nil
}

func scanChild(child *ir.Node, path string, seen map[*ir.Node]bool, dst *[]Entry) error {
	*dst = append(*dst, Entry{Path: path, Value: child})
	if child.Type.IsContainer() {
		return scanFrom(child, path, seen, dst)
	}
	return nil
}
