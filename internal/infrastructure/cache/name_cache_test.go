package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"procompare/internal/core/id"
)

func TestNameCache_HitWithinTTL(t *testing.T) {
	c := NewNameCache(time.Minute)
	key := id.New()

	calls := 0
	resolve := func() string {
		calls++
		return "Maintenance"
	}

	assert.Equal(t, "Maintenance", c.Get(key, resolve))
	assert.Equal(t, "Maintenance", c.Get(key, resolve))
	assert.Equal(t, 1, calls)
}

func TestNameCache_ZeroTTLDisables(t *testing.T) {
	c := NewNameCache(0)
	key := id.New()

	calls := 0
	resolve := func() string {
		calls++
		return "Production"
	}

	c.Get(key, resolve)
	c.Get(key, resolve)
	assert.Equal(t, 2, calls)
}

func TestNameCache_Invalidate(t *testing.T) {
	c := NewNameCache(time.Minute)
	key := id.New()

	calls := 0
	resolve := func() string {
		calls++
		return "Finance"
	}

	c.Get(key, resolve)
	c.Invalidate(key)
	c.Get(key, resolve)
	assert.Equal(t, 2, calls)
}
