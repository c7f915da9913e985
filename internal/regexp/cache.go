package regexp

// CacheSize is the fixed slot count for the compiled-pattern LRU. Instantiate
// one Cache per search-service owner; do not share a single cache across
// documents.
const CacheSize = 8

type cacheSlot struct {
	used    bool
	pattern string
	prog    *Program
}

// Cache is a fixed 8-slot LRU of compiled patterns, keyed by pattern text.
type Cache struct {
	slots [CacheSize]cacheSlot
	// order holds slot indices from least- to most-recently used.
	order [CacheSize]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.order {
		c.order[i] = i
	}
	return c
}

// Get compiles pattern on a cache miss, evicting the least-recently-used
// slot if the cache is full. Returns a CompileError unchanged from Compile.
func (c *Cache) Get(pattern string) (*Program, error) {
	for i, s := range c.slots {
		if s.used && s.pattern == pattern {
			c.touch(i)
			return s.prog, nil
		}
	}

	prog, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	slot := c.lruSlot()
	c.slots[slot] = cacheSlot{used: true, pattern: pattern, prog: prog}
	c.touch(slot)
	return prog, nil
}

// lruSlot returns the first unused slot, or the least-recently-used slot
// if all are occupied.
func (c *Cache) lruSlot() int {
	for i, s := range c.slots {
		if !s.used {
			return i
		}
	}
	return c.order[0]
}

// touch marks slot as most-recently used.
func (c *Cache) touch(slot int) {
	for i, s := range c.order {
		if s == slot {
			copy(c.order[i:], c.order[i+1:])
			c.order[CacheSize-1] = slot
			return
		}
	}
}
