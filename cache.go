package treedot

import (
	"github.com/treedot/treedot/debug"
	"github.com/treedot/treedot/ir"
)

// Cache wraps a root with a path→value index for O(1) repeated lookups.
// The index matches the root at the moment of the last build; it is NOT
// a transparent cache. Any mutation of the root other than the cache's
// own Set leaves the index stale, and the cache does not detect this:
// callers own the responsibility to call Refresh after out-of-band
// mutation. Invalidation is pull-based by design; the root carries no
// mutation hooks to observe.
//
// Multiple caches over the same root are independent and can diverge.
// Cache is not safe for concurrent use.
type Cache struct {
	root  *ir.Node
	index map[string]*ir.Node
}

// NewCache builds a cache over root, eagerly indexing every path a Scan
// of root yields.
func NewCache(root *ir.Node) (*Cache, error) {
	c := &Cache{root: root}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the indexed value for path, which may be stale relative
// to the live root. On an index miss it falls back to the root and
// lazily indexes a found value, so paths added to the root after
// construction become visible through Get.
func (c *Cache) Get(path string, def *ir.Node) *ir.Node {
	if v, ok := c.index[path]; ok {
		return v
	}
	v := Get(c.root, path, nil)
	if v == nil {
		if debug.Cache() {
			debug.Logf("cache: miss %q\n", path)
		}
		return def
	}
	c.index[path] = v
	return v
}

// Set writes both the index entry and the root. This is the only
// mutation that keeps the cache consistent for the written path.
func (c *Cache) Set(path string, value *ir.Node) error {
	if err := Set(c.root, path, value); err != nil {
		return err
	}
	if value == nil {
		value = Get(c.root, path, nil)
	}
	c.index[path] = value
	return nil
}

// Has reports index membership, not presence in the live root. A path
// added to the root behind the cache's back reads as absent until
// discovered via Get or Refresh.
func (c *Cache) Has(path string) bool {
	_, ok := c.index[path]
	return ok
}

// Refresh discards the index and rebuilds it from the live root. It is
// the sole staleness-restoring operation.
func (c *Cache) Refresh() error {
	entries, err := Scan(c.root)
	if err != nil {
		return err
	}
	idx := make(map[string]*ir.Node, len(entries))
	for _, e := range entries {
		idx[e.Path] = e.Value
	}
	c.index = idx
	if debug.Cache() {
		debug.Logf("cache: refreshed, %d paths\n", len(idx))
	}
	return nil
}

// Len returns the number of indexed paths.
func (c *Cache) Len() int {
	return len(c.index)
}

// Root returns the wrapped root.
func (c *Cache) Root() *ir.Node {
	return c.root
}
