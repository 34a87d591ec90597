package treedot

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/treedot/treedot/debug"
	"github.com/treedot/treedot/govalue"
	"github.com/treedot/treedot/ir"
)

// Merge enumerates source and writes every entry into target, returning
// target for chaining. Source entries are cloned before insertion so the
// two trees never share nodes. Enumeration is parent-before-child and
// Set is last-write-wins, so a deeper source entry always wins over a
// shallower one for the same final location; colliding leaves take the
// source's value. When target and source live in the same tree the
// source is snapshotted first, so merging a subtree into its own
// ancestor sees the pre-merge values throughout.
func Merge(target, source *ir.Node) (*ir.Node, error) {
	if target != nil && source != nil && target.Root() == source.Root() {
		// overlapping trees: snapshot the source so writes into the
		// target cannot leak into entries still to be merged
		source = source.Clone()
	}
	entries, err := Scan(source)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if debug.Merge() {
			debug.Logf("merge: set %q (%s)\n", e.Path, e.Value.Type)
		}
		if err := Set(target, e.Path, e.Value.Clone()); err != nil {
			return nil, fmt.Errorf("merging %q: %w", e.Path, err)
		}
	}
	return target, nil
}

// ForEach invokes fn once per enumerated entry. fn's mutations of root
// mid-pass have implementation-defined results.
func ForEach(root *ir.Node, fn func(path string, value *ir.Node)) error {
	entries, err := Scan(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fn(e.Path, e.Value)
	}
	return nil
}

// Map rewrites every entry of root with fn's result. The entry list is
// a snapshot captured before any write, so fn never observes its own or
// a prior call's writes mid-pass.
func Map(root *ir.Node, fn func(path string, value *ir.Node) *ir.Node) error {
	entries, err := Scan(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := Set(root, e.Path, fn(e.Path, e.Value)); err != nil {
			return fmt.Errorf("mapping %q: %w", e.Path, err)
		}
	}
	return nil
}

// Filter deletes every entry for which keep returns false. Entries are
// captured in a pre-mutation snapshot and visited in reverse enumeration
// order, children before parents and higher array indices before lower,
// so a delete never shifts a snapshot path still to be visited. Dropping
// a container drops whatever is left under it.
func Filter(root *ir.Node, keep func(path string, value *ir.Node) bool) error {
	entries, err := Scan(root)
	if err != nil {
		return err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if keep(e.Path, e.Value) {
			continue
		}
		if _, err := Delete(root, e.Path); err != nil {
			return fmt.Errorf("filtering %q: %w", e.Path, err)
		}
	}
	return nil
}

// FilterExpr is Filter with the predicate given as an expr program. The
// program sees two variables: path (string) and value (the entry's value
// as a plain Go value), and must evaluate to a bool.
//
//	FilterExpr(root, `path != "secrets" && value != nil`)
func FilterExpr(root *ir.Node, src string) error {
	prg, err := expr.Compile(src, expr.Env(map[string]any{
		"path":  "",
		"value": nil,
	}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("compiling filter %q: %w", src, err)
	}
	var evalErr error
	err = Filter(root, func(path string, value *ir.Node) bool {
		if evalErr != nil {
			return true
		}
		res, err := expr.Run(prg, map[string]any{
			"path":  path,
			"value": govalue.ToGo(value),
		})
		if err != nil {
			evalErr = fmt.Errorf("filter %q at %q: %w", src, path, err)
			return true
		}
		return res.(bool)
	})
	if err != nil {
		return err
	}
	return evalErr
}
