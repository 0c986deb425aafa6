package main

import (
	"os"
	"sync"
	"time"
)

/* CachedListing:
 * A rendered directory listing plus the time it was rendered,
 * compared against the directory mtime by the freshness monitor.
 */
type CachedListing struct {
	Body       []byte
	RenderedAt int64
}

/* ListingCache:
 * Bounded LRU of rendered directory listings keyed by absolute
 * path. This is the one piece of shared mutable state in the
 * server, guarded by a RW mutex. File contents are never cached,
 * files always stream from disk.
 */
type ListingCache struct {
	CacheMap *FixedMap
	Mutex    sync.RWMutex
}

func NewListingCache(size int) *ListingCache {
	lc := new(ListingCache)
	lc.CacheMap = NewFixedMap(size)
	lc.Mutex = sync.RWMutex{}
	return lc
}

func (lc *ListingCache) Fetch(absPath string) ([]byte, bool) {
	lc.Mutex.RLock()
	listing := lc.CacheMap.Get(absPath)
	lc.Mutex.RUnlock()

	if listing == nil {
		return nil, false
	}
	return listing.Body, true
}

func (lc *ListingCache) Put(absPath string, body []byte) {
	lc.Mutex.Lock()
	lc.CacheMap.Put(absPath, &CachedListing{body, time.Now().UnixNano()})
	lc.Mutex.Unlock()
}

func (lc *ListingCache) Remove(absPath string) {
	lc.Mutex.Lock()
	lc.CacheMap.Remove(absPath)
	lc.Mutex.Unlock()
}

/* Periodically drop listings whose directory changed on disk */
func startListingMonitor(config *ServerConfig) {
	go func() {
		for {
			/* Sleep so we don't take up all the precious CPU time :) */
			time.Sleep(config.CacheCheck)

			checkListingFreshness(config)
		}
	}()
}

func checkListingFreshness(config *ServerConfig) {
	cache := config.ListingCache

	/* Get cache write lock up front, we may have to delete */
	cache.Mutex.Lock()

	for path := range cache.CacheMap.Map {
		listing := cache.CacheMap.Get(path)

		stat, err := os.Stat(path)
		if err != nil {
			/* Directory gone, drop the listing */
			config.LogSystemError("Failed to stat dir in listing cache: %s\n", path)
			cache.CacheMap.Remove(path)
			continue
		}

		if stat.ModTime().UnixNano() > listing.RenderedAt {
			cache.CacheMap.Remove(path)
		}
	}

	cache.Mutex.Unlock()
}
