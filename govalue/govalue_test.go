package govalue

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treedot/treedot/ir"
)

func TestFromGo(t *testing.T) {
	n, err := FromGo(map[string]any{
		"name": "mahdi",
		"age":  30,
		"tags": []any{"x", "y"},
		"ok":   true,
		"rate": 1.5,
		"nope": nil,
	})
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.ObjectType {
		t.Fatalf("got %v", n.Type)
	}
	// map keys come out sorted
	var fields []string
	for _, f := range n.Fields {
		fields = append(fields, f.String)
	}
	want := []string{"age", "name", "nope", "ok", "rate", "tags"}
	if d := cmp.Diff(want, fields); d != "" {
		t.Error(d)
	}
	if got := ir.Get(n, "name"); got == nil || got.String != "mahdi" {
		t.Errorf("name = %v", got)
	}
	if got := ir.Get(n, "age"); got == nil || *got.Int64 != 30 {
		t.Errorf("age = %v", got)
	}
	if got := ir.Get(n, "nope"); got == nil || got.Type != ir.NullType {
		t.Errorf("nope = %v", got)
	}
	tags := ir.Get(n, "tags")
	if tags == nil || tags.Type != ir.ArrayType || len(tags.Values) != 2 {
		t.Fatalf("tags = %v", tags)
	}
	if tags.Values[1].String != "y" {
		t.Errorf("tags[1] = %v", tags.Values[1])
	}
}

func TestFromGoParentLinks(t *testing.T) {
	n, err := FromGo(map[string]any{"a": []any{1}})
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(n, "a")
	if a.Parent != n {
		t.Error("child not linked to parent")
	}
	if a.Values[0].Parent != a || a.Values[0].ParentIndex != 0 {
		t.Error("element not linked to array")
	}
}

func TestFromGoStruct(t *testing.T) {
	// unsupported types round-trip through encoding/json
	type city struct {
		Name string `json:"name"`
	}
	n, err := FromGo(city{Name: "mashhad"})
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(n, "name"); got == nil || got.String != "mashhad" {
		t.Errorf("name = %v", got)
	}
}

func TestFromGoCycle(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	_, err := FromGo(m)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	var cerr *ConvertError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %T", err)
	}
	if cerr.FieldPath != "self" {
		t.Errorf("FieldPath = %q", cerr.FieldPath)
	}
}

func TestFromGoSharedNotCycle(t *testing.T) {
	// the same map reachable twice as siblings is not a cycle
	shared := map[string]any{"k": 1}
	n, err := FromGo(map[string]any{"a": shared, "b": shared})
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(ir.Get(n, "b"), "k"); got == nil || *got.Int64 != 1 {
		t.Errorf("b.k = %v", got)
	}
}

func TestToGo(t *testing.T) {
	src := map[string]any{
		"name": "mahdi",
		"age":  30,
		"tags": []any{"x", "y"},
		"ok":   true,
		"nope": nil,
	}
	n, err := FromGo(src)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(src, ToGo(n)); d != "" {
		t.Error(d)
	}
}

func TestToGoNil(t *testing.T) {
	if got := ToGo(nil); got != nil {
		t.Errorf("got %v", got)
	}
}
