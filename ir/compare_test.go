package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},

		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array content", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{
			"Object content",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1,
		},
		{
			"Object keys",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1,
		},

		{"nil < node", nil, Null(), -1},
		{"nil == nil", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if tt.expected != 0 {
				if got := Compare(tt.b, tt.a); got != -tt.expected {
					t.Errorf("reversed Compare = %d, want %d", got, -tt.expected)
				}
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("mahdi")},
		{Key: "city", Val: FromKeyVals([]KeyVal{
			{Key: "code", Val: FromString("051")},
		})},
	})
	if !Equal(a, a.Clone()) {
		t.Error("node not equal to its clone")
	}
	b := a.Clone()
	b.Values[1].Values[0].String = "052"
	if Equal(a, b) {
		t.Error("nodes with different leaves compare equal")
	}
}
