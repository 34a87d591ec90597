package treedot

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treedot/treedot/debug"
	"github.com/treedot/treedot/ir"
)

type ChangeKind int

const (
	AddChange ChangeKind = iota
	DeleteChange
	ReplaceChange
)

func (k ChangeKind) String() string {
	switch k {
	case AddChange:
		return "add"
	case DeleteChange:
		return "delete"
	case ReplaceChange:
		return "replace"
	default:
		return "<unknown kind>"
	}
}

// Change is one difference between two trees. From is set for delete
// and replace, To for add and replace. For a replace between two
// multi-line strings, Text carries a textual patch of the change.
type Change struct {
	Path string
	Kind ChangeKind
	From *ir.Node
	To   *ir.Node
	Text string
}

// Diff compares two trees path by path and reports added, deleted and
// replaced entries in from's enumeration order (adds follow, in to's
// order). Entries below an added, deleted or kind-changed container are
// folded into the container's single change.
func Diff(from, to *ir.Node) ([]Change, error) {
	fromEntries, err := Scan(from)
	if err != nil {
		return nil, err
	}
	toEntries, err := Scan(to)
	if err != nil {
		return nil, err
	}
	fromByPath := make(map[string]*ir.Node, len(fromEntries))
	for _, e := range fromEntries {
		fromByPath[e.Path] = e.Value
	}
	toByPath := make(map[string]*ir.Node, len(toEntries))
	for _, e := range toEntries {
		toByPath[e.Path] = e.Value
	}

	var changes []Change
	var folded []string
	for _, e := range fromEntries {
		if underAny(e.Path, folded) {
			continue
		}
		toVal, ok := toByPath[e.Path]
		if !ok {
			if e.Value.Type.IsContainer() {
				folded = append(folded, e.Path)
			}
			changes = append(changes, Change{Path: e.Path, Kind: DeleteChange, From: e.Value})
			continue
		}
		if e.Value.Type.IsContainer() && toVal.Type == e.Value.Type {
			// children report their own changes
			continue
		}
		if ir.Equal(e.Value, toVal) {
			continue
		}
		if e.Value.Type.IsContainer() || toVal.Type.IsContainer() {
			folded = append(folded, e.Path)
		}
		ch := Change{Path: e.Path, Kind: ReplaceChange, From: e.Value, To: toVal}
		ch.Text = textDiff(e.Value, toVal)
		changes = append(changes, ch)
	}
	for _, e := range toEntries {
		if _, ok := fromByPath[e.Path]; ok {
			continue
		}
		if underAny(e.Path, folded) {
			continue
		}
		if e.Value.Type.IsContainer() {
			folded = append(folded, e.Path)
		}
		changes = append(changes, Change{Path: e.Path, Kind: AddChange, To: e.Value})
	}
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(changes))
	}
	return changes, nil
}

// textDiff renders a patch between two multi-line string leaves, ""
// otherwise.
func textDiff(from, to *ir.Node) string {
	if from.Type != ir.StringType || to.Type != ir.StringType {
		return ""
	}
	if !strings.Contains(from.String, "\n") && !strings.Contains(to.String, "\n") {
		return ""
	}
	dmp := diffpatch.New()
	return dmp.PatchToText(dmp.PatchMake(from.String, to.String))
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p+".") {
			return true
		}
	}
	return false
}
