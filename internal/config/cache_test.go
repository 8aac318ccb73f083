package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, k := range []string{"CACHE_ENABLED", "CACHE_TTL", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache", cfg.Prefix)
	assert.Equal(t, 1048576, cfg.MaxBodyBytes)
}

// The enable switch accepts the usual boolean spellings regardless of
// case, same as the rate limiter's.
func TestLoadCacheConfigEnabledSpellings(t *testing.T) {
	for _, v := range []string{"TRUE", "True", "1", "yes", "on"} {
		t.Setenv("CACHE_ENABLED", v)
		assert.True(t, LoadCacheConfig().Enabled, "CACHE_ENABLED=%s", v)
	}
	for _, v := range []string{"FALSE", "False", "0", "no", "off"} {
		t.Setenv("CACHE_ENABLED", v)
		assert.False(t, LoadCacheConfig().Enabled, "CACHE_ENABLED=%s", v)
	}
}
