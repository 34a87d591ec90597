package dotpath

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single segment",
			input: "a",
			want:  []string{"a"},
		},
		{
			name:  "nested path",
			input: "a.b.c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "index segments",
			input: "a.0.b",
			want:  []string{"a", "0", "b"},
		},
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty middle segment",
			input:   "a..b",
			wantErr: true,
		},
		{
			name:    "leading separator",
			input:   ".a",
			wantErr: true,
		},
		{
			name:    "trailing separator",
			input:   "a.",
			wantErr: true,
		},
		{
			name:    "lone separator",
			input:   ".",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrBadPath) {
					t.Errorf("Parse(%q) error %v, want ErrBadPath", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		prefix, suffix, want string
	}{
		{"a", "b.c", "a.b.c"},
		{"", "b", "b"},
		{"a", "", "a"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := Join(tt.prefix, tt.suffix); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.prefix, tt.suffix, got, tt.want)
		}
	}
}

func TestRSplit(t *testing.T) {
	tests := []struct {
		input, parent, last string
	}{
		{"a.b.c", "a.b", "c"},
		{"a", "", "a"},
		{"", "", ""},
	}
	for _, tt := range tests {
		parent, last := RSplit(tt.input)
		if parent != tt.parent || last != tt.last {
			t.Errorf("RSplit(%q) = (%q, %q), want (%q, %q)", tt.input, parent, last, tt.parent, tt.last)
		}
	}
}

func TestString(t *testing.T) {
	segs, err := Parse("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if got := String(segs); got != "a.b.c" {
		t.Errorf("String(%v) = %q, want %q", segs, got, "a.b.c")
	}
}
