package treedot

import (
	"testing"

	"github.com/treedot/treedot/ir"
)

func TestMergePatch(t *testing.T) {
	r := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromInt(2)},
	})
	res, err := MergePatch(r, []byte(`{"b": null, "c": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if res != r {
		t.Error("MergePatch did not return its target")
	}
	if got := Get(r, "a", nil); got == nil || *got.Int64 != 1 {
		t.Errorf("a = %v", got)
	}
	if Has(r, "b") {
		t.Error("b survived null member")
	}
	if got := Get(r, "c", nil); got == nil || *got.Int64 != 3 {
		t.Errorf("c = %v", got)
	}
}

func TestMergePatchNested(t *testing.T) {
	r := personRoot()
	if _, err := MergePatch(r, []byte(`{"city": {"code": "021"}}`)); err != nil {
		t.Fatal(err)
	}
	// merge patch merges objects member-wise
	if got := Get(r, "city.code", nil); got == nil || got.String != "021" {
		t.Errorf("city.code = %v", got)
	}
	if got := Get(r, "city.name", nil); got == nil || got.String != "mashhad" {
		t.Errorf("city.name = %v", got)
	}
}

func TestMergePatchBadPatch(t *testing.T) {
	r := personRoot()
	if _, err := MergePatch(r, []byte(`{`)); err == nil {
		t.Error("expected error on malformed patch")
	}
}
