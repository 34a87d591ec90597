package ir

import (
	"testing"
)

func TestFromMapSortsFields(t *testing.T) {
	node := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
		"c": FromInt(3),
	})
	if node.Type != ObjectType {
		t.Fatalf("expected object, got %s", node.Type)
	}
	want := []string{"a", "b", "c"}
	for i, f := range node.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestFromKeyValsPreservesOrder(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	if node.Fields[0].String != "z" || node.Fields[1].String != "a" {
		t.Errorf("field order not preserved: %q, %q", node.Fields[0].String, node.Fields[1].String)
	}
	for i, v := range node.Values {
		if v.Parent != node {
			t.Errorf("value %d parent not set", i)
		}
		if v.ParentIndex != i {
			t.Errorf("value %d ParentIndex = %d", i, v.ParentIndex)
		}
	}
}

func TestGet(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("mahdi")},
	})
	if got := Get(node, "name"); got == nil || got.String != "mahdi" {
		t.Errorf("Get(name) = %v", got)
	}
	if got := Get(node, "nope"); got != nil {
		t.Errorf("Get(nope) = %v, want nil", got)
	}
	if got := Get(FromString("leaf"), "x"); got != nil {
		t.Errorf("Get on leaf = %v, want nil", got)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "city", Val: FromKeyVals([]KeyVal{
			{Key: "name", Val: FromString("mashhad")},
		})},
		{Key: "tags", Val: FromSlice([]*Node{FromString("x"), FromInt(5)})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone not equal to original")
	}
	// mutating the clone must not touch the original
	cp.Values[0].Values[0].String = "other"
	if Get(Get(orig, "city"), "name").String != "mashhad" {
		t.Error("clone shares nodes with original")
	}
	// parent links point into the clone
	if cp.Values[0].Parent != cp {
		t.Error("clone child parent not re-homed")
	}
}

func TestPath(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "b", Val: FromString("v")}}),
		})},
	})
	if got := root.Path(); got != "" {
		t.Errorf("root path = %q, want \"\"", got)
	}
	leaf := root.Values[0].Values[0].Values[0]
	if got := leaf.Path(); got != "a.0.b" {
		t.Errorf("leaf path = %q, want %q", got, "a.0.b")
	}
}

func TestTypePredicates(t *testing.T) {
	for _, typ := range Types() {
		if typ.IsLeaf() == typ.IsContainer() {
			t.Errorf("%s: IsLeaf and IsContainer agree", typ)
		}
	}
	if !ObjectType.IsContainer() || !ArrayType.IsContainer() {
		t.Error("object/array should be containers")
	}
	if !NullType.IsLeaf() || !StringType.IsLeaf() {
		t.Error("null/string should be leaves")
	}
}
