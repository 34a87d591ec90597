package dotpath

import (
	"errors"
	"fmt"
	"strings"
)

// Sep separates path segments in canonical textual form.
const Sep = "."

// ErrBadPath is the error for structurally unusable paths: empty input
// or a path containing an empty segment.
var ErrBadPath = errors.New("bad path")

// Parse splits a dot path into its segments.
//
// Examples:
//   - Parse("a.b.c") → ["a", "b", "c"]
//   - Parse("a") → ["a"]
//   - Parse("") → ErrBadPath
//   - Parse("a..b") → ErrBadPath
//   - Parse(".a") → ErrBadPath
func Parse(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	segs := strings.Split(path, Sep)
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, path)
		}
	}
	return segs, nil
}

// Join joins a path prefix with a suffix. Either side may be empty.
//
// Examples:
//   - Join("a", "b.c") → "a.b.c"
//   - Join("", "b") → "b"
//   - Join("a", "") → "a"
func Join(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + Sep + suffix
}

// String renders parsed segments back into canonical textual form.
func String(segs []string) string {
	return strings.Join(segs, Sep)
}

// RSplit splits a path into the parent path and the last segment.
//
// Examples:
//   - RSplit("a.b.c") → ("a.b", "c")
//   - RSplit("a") → ("", "a")
//   - RSplit("") → ("", "")
func RSplit(path string) (parent, last string) {
	if path == "" {
		return "", ""
	}
	i := strings.LastIndex(path, Sep)
	if i == -1 {
		return "", path
	}
	return path[:i], path[i+1:]
}
