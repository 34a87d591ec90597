// Package dotpath parses and assembles flat dot-separated paths.
//
// A dot path addresses a node in an ir.Node tree segment by segment:
//   - "a.b" - field "b" of object field "a"
//   - "a.0" - first element of array "a" (indices are decimal segments)
//
// # Usage
//
//	segs, err := dotpath.Parse("city.name")
//	p := dotpath.Join("city", "name")
//	parent, last := dotpath.RSplit("a.b.c")
//
// Segments are opaque strings; there is no escaping, so a key containing
// a literal '.' cannot be addressed. This is a documented limitation of
// the flat syntax, not a bug.
//
// Parse rejects malformed input for every caller: an empty path or a
// path with an empty segment ("a..b", ".a", "a.") is ErrBadPath. Read
// operations built on top of this package swallow that error and report
// the path as not found; write operations surface it.
//
// # Related Packages
//
//   - github.com/treedot/treedot/ir - tree representation
package dotpath
