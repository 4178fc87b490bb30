package recurrence

import (
	"time"

	"github.com/cyp0633/rrulekit/rrule"
)

// CacheConfig holds configuration for the rule cache
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before eviction
	CleanupInterval time.Duration // How often to drop expired entries
}

// DefaultCacheConfig provides sensible defaults for rule caching
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

// EngineConfig holds configuration options for the recurrence engine
type EngineConfig struct {
	CacheEnabled bool
	CacheConfig  CacheConfig

	// Parser decides how strictly RRULE values are read
	Parser rrule.ParserConfig
}

// DefaultEngineConfig caches results and parses strictly
var DefaultEngineConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,
	Parser:       rrule.DefaultParserConfig,
}

// LenientEngineConfig accepts RRULEs from producers that emit unknown
// FREQ/INTERVAL/WKST values or repeat parts
var LenientEngineConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,
	Parser:       rrule.LenientParserConfig,
}

// DisabledCacheConfig turns off caching entirely
var DisabledCacheConfig = EngineConfig{
	CacheEnabled: false,
	CacheConfig:  CacheConfig{}, // Not used
	Parser:       rrule.DefaultParserConfig,
}
