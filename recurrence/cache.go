package recurrence

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cyp0633/rrulekit/rrule"
)

// CacheEntry is the cached outcome of reading one RRULE value
type CacheEntry struct {
	Rule       rrule.Rule
	Err        error
	ExpiresAt  time.Time
	AccessedAt time.Time
}

// RuleCache remembers parse and validation outcomes per RRULE text and parser policy.
// Failures are cached too; the outcome for a given input never changes.
type RuleCache struct {
	entries         map[string]*CacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	logger          *slog.Logger
}

// CacheOption configures a RuleCache
type CacheOption func(*RuleCache)

// WithCacheLogger sets the logger used for eviction messages
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *RuleCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewRuleCache creates a new rule cache and starts its cleanup goroutine
func NewRuleCache(config CacheConfig, opts ...CacheOption) *RuleCache {
	cache := &RuleCache{
		entries:         make(map[string]*CacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if cache.cleanupInterval <= 0 {
		cache.cleanupInterval = DefaultCacheConfig.CleanupInterval
	}
	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupLoop()

	return cache
}

// cacheKey hashes the parser policy together with the rule text, so strict and
// lenient outcomes for the same text never collide.
func cacheKey(policy rrule.ParserConfig, text string) string {
	hasher := sha256.New()
	fmt.Fprintf(hasher, "strict=%t;dup=%t\n", policy.StrictValues, policy.RejectDuplicateKeys)
	hasher.Write([]byte(text))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

// Get returns the cached outcome for text if present and not expired.
// The returned rule is a copy.
func (c *RuleCache) Get(policy rrule.ParserConfig, text string) (CacheEntry, bool) {
	key := cacheKey(policy, text)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return CacheEntry{}, false
	}

	now := time.Now()
	if now.After(entry.ExpiresAt) {
		delete(c.entries, key)
		return CacheEntry{}, false
	}
	entry.AccessedAt = now

	out := *entry
	out.Rule = entry.Rule.Clone()
	return out, true
}

// Set stores an outcome for text
func (c *RuleCache) Set(policy rrule.ParserConfig, text string, rule rrule.Rule, err error) {
	key := cacheKey(policy, text)
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = &CacheEntry{
		Rule:       rule.Clone(),
		Err:        err,
		ExpiresAt:  now.Add(c.ttl),
		AccessedAt: now,
	}

	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}
}

// cleanup removes expired entries, then the least recently used ones while over
// the limit. Callers hold the write lock.
func (c *RuleCache) cleanup() {
	now := time.Now()
	expired := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			expired++
		}
	}

	evicted := 0
	if over := len(c.entries) - c.maxEntries; over > 0 {
		keys := make([]string, 0, len(c.entries))
		for key := range c.entries {
			keys = append(keys, key)
		}
		slices.SortFunc(keys, func(a, b string) int {
			return c.entries[a].AccessedAt.Compare(c.entries[b].AccessedAt)
		})
		for _, key := range keys[:over] {
			delete(c.entries, key)
			evicted++
		}
	}

	if expired > 0 || evicted > 0 {
		c.logger.Debug("rule cache cleanup",
			"expired", expired,
			"evicted", evicted,
			"remaining", len(c.entries),
		)
	}
}

func (c *RuleCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache
func (c *RuleCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*CacheEntry)
	c.mutex.Unlock()
}

// Stats returns cache statistics
func (c *RuleCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	stats := CacheStats{TotalEntries: len(c.entries)}
	now := time.Now()
	for _, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			stats.ExpiredEntries++
		}
	}
	stats.ActiveEntries = stats.TotalEntries - stats.ExpiredEntries
	return stats
}

// CacheStats provides information about cache contents
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}
