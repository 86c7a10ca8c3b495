// Package regexcache memoizes compilation of the metadata corpus's regular
// expressions so no pattern string is ever compiled more than once.
package regexcache

import (
	"regexp"
	"sync"

	"go.uber.org/atomic"
)

// Cache is safe for concurrent use. Insertion is guarded by a mutex; hits
// are served from a plain map read under a read lock, and a miss races are
// harmless since compiling the same pattern twice produces equivalent,
// interchangeable *regexp.Regexp values.
type Cache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
	hits     atomic.Uint64
	misses   atomic.Uint64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{compiled: make(map[string]*regexp.Regexp)}
}

// Get returns the compiled regexp for pattern, compiling and memoizing it
// on first use. It panics if pattern does not compile: the corpus is
// trusted, opaque, pre-validated input, and a malformed pattern indicates
// corrupt metadata rather than a recoverable runtime condition.
func (c *Cache) Get(pattern string) *regexp.Regexp {
	c.mu.RLock()
	re, ok := c.compiled[pattern]
	c.mu.RUnlock()
	if ok {
		c.hits.Inc()
		return re
	}

	re = regexp.MustCompile(pattern)

	c.mu.Lock()
	if existing, ok := c.compiled[pattern]; ok {
		re = existing
	} else {
		c.compiled[pattern] = re
	}
	c.mu.Unlock()

	c.misses.Inc()
	return re
}

// MatchFull reports whether s matches pattern in its entirety. Metadata
// validation patterns are documented to match the whole national
// significant number, so the pattern is anchored on both ends before
// evaluation; patterns already anchored by the corpus are unaffected since
// "^^" and "$$" behave the same as a single anchor in RE2.
func (c *Cache) MatchFull(pattern, s string) bool {
	if pattern == "" {
		return false
	}
	re := c.Get("^(?:" + pattern + ")$")
	return re.MatchString(s)
}

// Stats returns the number of cache hits and misses observed so far, for
// diagnostics only.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
