package services

import (
	"sync"
	"time"

	"sikap-api/models"
)

// SettingsCache is an explicit TTL cache for site settings, injected into
// the settings controller instead of a module-level table so lifecycle and
// invalidation stay visible and testable.
type SettingsCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]settingsCacheEntry
}

type settingsCacheEntry struct {
	settings  []models.SiteSetting
	expiresAt time.Time
}

const defaultSettingsTTL = 5 * time.Minute

func NewSettingsCache(ttl time.Duration) *SettingsCache {
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	return &SettingsCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]settingsCacheEntry),
	}
}

// Get returns the cached settings for a group key, or ok=false when absent
// or expired.
func (c *SettingsCache) Get(key string) ([]models.SiteSetting, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.settings, true
}

// Put stores settings for a group key with the cache's TTL.
func (c *SettingsCache) Put(key string, settings []models.SiteSetting) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = settingsCacheEntry{
		settings:  settings,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate drops one group key.
func (c *SettingsCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every cached group. Called after any settings write.
func (c *SettingsCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]settingsCacheEntry)
}
