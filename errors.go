package treedot

import (
	"errors"

	"github.com/treedot/treedot/ir/dotpath"
)

var (
	// ErrBadPath is returned by write-class operations handed an
	// empty or malformed path.
	ErrBadPath = dotpath.ErrBadPath

	// ErrCycle is returned by Scan (and everything built on it) when
	// a container node is reachable twice. Trees must be acyclic and
	// unshared; the visited-set guard fails fast instead of hanging.
	ErrCycle = errors.New("container cycle")
)
