package bundestag

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for cached protocols.
const DefaultCacheTTL = 24 * time.Hour

// cacheEntry holds a cached protocol and its expiration time.
type cacheEntry struct {
	protocol  Protocol
	expiresAt time.Time
}

// ProtocolCache is a thread-safe, in-memory TTL cache for fetched protocols.
// Entries are lazily expired on access (checked during Get).
type ProtocolCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	defaultTTL time.Duration
}

// NewProtocolCache creates a new cache with the given default TTL.
func NewProtocolCache(defaultTTL time.Duration) *ProtocolCache {
	return &ProtocolCache{
		entries:    make(map[string]cacheEntry),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a cached protocol by ID. Returns the protocol and true if
// found and not expired. Expired entries are lazily removed on access.
func (protocolCache *ProtocolCache) Get(id string) (Protocol, bool) {
	protocolCache.mu.RLock()
	entry, exists := protocolCache.entries[id]
	protocolCache.mu.RUnlock()

	if !exists {
		return Protocol{}, false
	}

	if time.Now().After(entry.expiresAt) {
		protocolCache.mu.Lock()
		// Re-check in case another goroutine already removed or replaced it.
		if current, stillExists := protocolCache.entries[id]; stillExists && time.Now().After(current.expiresAt) {
			delete(protocolCache.entries, id)
		}
		protocolCache.mu.Unlock()
		return Protocol{}, false
	}

	return entry.protocol, true
}

// Set stores a protocol in the cache with the default TTL.
func (protocolCache *ProtocolCache) Set(id string, protocol Protocol) {
	protocolCache.mu.Lock()
	protocolCache.entries[id] = cacheEntry{
		protocol:  protocol,
		expiresAt: time.Now().Add(protocolCache.defaultTTL),
	}
	protocolCache.mu.Unlock()
}

// Len returns the number of entries currently in the cache (including
// potentially expired ones).
func (protocolCache *ProtocolCache) Len() int {
	protocolCache.mu.RLock()
	count := len(protocolCache.entries)
	protocolCache.mu.RUnlock()
	return count
}
