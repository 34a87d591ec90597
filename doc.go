// Package treedot provides path-addressed access to nested tree
// containers: read, write, existence check and delete through flat
// dot paths ("a.b.c"), full deterministic enumeration, structural
// merge, bulk transforms, and a read-through path cache with explicit
// invalidation.
//
// Trees are ir.Node values; the caller owns the root and every mutating
// operation mutates it in place through the *ir.Node handle. Reads never
// fail: a missing or malformed path yields the caller's default (nil is
// the missing-sentinel, distinct from an explicit null node). Writes fail
// only on structurally unusable paths, with dotpath.ErrBadPath.
//
// Nothing here blocks or performs I/O, and nothing locks: mutating a root
// from several goroutines at once, or from a callback while a scan is in
// flight, is the caller's problem.
package treedot
