package resolver

import (
	"strings"

	"github.com/tzsearch/timezone-search-go/tzsearch"
)

const defaultCacheCapacity = 256

// anchorBucketLayout truncates the anchor wall-clock to minute precision for
// cache keys; offset rules are minute-granular.
const anchorBucketLayout = "2006-01-02T15:04"

// offsetCluster groups candidate zones that share one (offset, abbreviation)
// pair at the anchor, in first-seen candidate order. A marker cluster holds
// zones without a readable pair at the anchor; its pair is a synthetic key
// (see markerPairFor) that must not be reported as a real pair.
type offsetCluster struct {
	pair   tzsearch.OffsetName
	zones  []tzsearch.ZoneIDString
	marker bool
}

// cacheEntry memoizes the anchor-dependent part of a search: the narrowed
// candidate set and its clusters. Classification is recomputed per search
// because it additionally depends on the unsafe flag, which is not part of
// the key.
type cacheEntry struct {
	candidates []tzsearch.ZoneIDString
	clusters   []offsetCluster
}

// searchCache is the instance-scoped memo of one Resolver. It is deliberately
// unsynchronized: a Resolver serves one goroutine/context at a time.
// On overflow the cache is reset wholesale, which keeps the steady state
// allocation-free and the behavior trivially predictable.
type searchCache struct {
	capacity int
	entries  map[string]cacheEntry
}

func newSearchCache(capacity int) *searchCache {
	return &searchCache{
		capacity: capacity,
		entries:  make(map[string]cacheEntry),
	}
}

func (c *searchCache) get(key string) (cacheEntry, bool) {
	entry, ok := c.entries[key]

	return entry, ok
}

func (c *searchCache) put(key string, entry cacheEntry) {
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.entries = make(map[string]cacheEntry)
	}

	c.entries[key] = entry
}

func (c *searchCache) len() int {
	return len(c.entries)
}

// cacheKeyFor builds the cache key from everything the memoized stages depend
// on: the constraint set, the country filter, the DST hint, and the anchor
// bucket. The unsafe flag is deliberately absent, see cacheEntry.
func cacheKeyFor(inputs tzsearch.SearchInputs) string {
	var sb strings.Builder

	sb.WriteString(inputs.Constraints.Hash())
	sb.WriteString("|")
	sb.WriteString(inputs.Countries.Signature())
	sb.WriteString("|")
	sb.WriteString(inputs.Hint.String())
	sb.WriteString("|")
	sb.WriteString(wallClockUTC(inputs.Anchor).Format(anchorBucketLayout))

	return sb.String()
}
