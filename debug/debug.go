// Package debug provides env-var gated debug tracing for treedot.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Merge bool
	Cache bool
	Diff  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("TD_DEBUG_SCAN")
	d.Merge = boolEnv("TD_DEBUG_MERGE")
	d.Cache = boolEnv("TD_DEBUG_CACHE")
	d.Diff = boolEnv("TD_DEBUG_DIFF")
	d.Patch = boolEnv("TD_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Merge() bool {
	return d.Merge
}
func Cache() bool {
	return d.Cache
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
