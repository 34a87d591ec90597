package treedot

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/treedot/treedot/codec"
	"github.com/treedot/treedot/debug"
	"github.com/treedot/treedot/ir"
)

// MergePatch applies an RFC 7386 JSON merge patch to target, mutating
// it in place, and returns it for chaining. The patch document is plain
// JSON: object members overwrite, nulls delete.
//
// The patch is applied on a JSON rendering of the tree, so field order
// of patched objects is not preserved.
func MergePatch(target *ir.Node, patch []byte) (*ir.Node, error) {
	docJSON, err := codec.EncodeJSON(target)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s onto %s\n", patch, docJSON)
	}
	merged, err := jsonpatch.MergePatch(docJSON, patch)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	res, err := codec.Decode(merged)
	if err != nil {
		return nil, err
	}
	parent, pi, pf := target.Parent, target.ParentIndex, target.ParentField
	res.CloneTo(target)
	target.Parent, target.ParentIndex, target.ParentField = parent, pi, pf
	return target, nil
}
