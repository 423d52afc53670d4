package services

import (
	"testing"
	"time"

	"sikap-api/models"
)

func TestSettingsCacheReturnsEntriesUntilExpiry(t *testing.T) {
	current := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache := NewSettingsCache(5 * time.Minute)
	cache.now = func() time.Time { return current }

	settings := []models.SiteSetting{{SettingKey: "site_name", Value: "SIKAP"}}
	cache.Put("group:general", settings)

	got, ok := cache.Get("group:general")
	if !ok || len(got) != 1 || got[0].Value != "SIKAP" {
		t.Fatalf("expected cached settings, got %v ok=%v", got, ok)
	}

	// Advance past the TTL.
	current = current.Add(6 * time.Minute)
	if _, ok := cache.Get("group:general"); ok {
		t.Fatal("expected expired entry to be a miss")
	}
}

func TestSettingsCacheMissesUnknownKeys(t *testing.T) {
	cache := NewSettingsCache(time.Minute)
	if _, ok := cache.Get("group:missing"); ok {
		t.Fatal("expected a miss for an unknown key")
	}
}

func TestSettingsCacheInvalidateAndClear(t *testing.T) {
	cache := NewSettingsCache(time.Hour)

	cache.Put("group:a", []models.SiteSetting{{SettingKey: "k1"}})
	cache.Put("group:b", []models.SiteSetting{{SettingKey: "k2"}})

	cache.Invalidate("group:a")
	if _, ok := cache.Get("group:a"); ok {
		t.Fatal("expected invalidated key to be a miss")
	}
	if _, ok := cache.Get("group:b"); !ok {
		t.Fatal("other keys should survive a single invalidation")
	}

	cache.Clear()
	if _, ok := cache.Get("group:b"); ok {
		t.Fatal("expected all keys gone after Clear")
	}
}
