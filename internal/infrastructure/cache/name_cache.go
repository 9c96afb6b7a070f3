// Package cache provides a time-bounded name lookup cache fronting the
// catalog services. It exists for latency only; correctness never depends
// on a hit.
package cache

import (
	"context"
	"sync"
	"time"

	"procompare/internal/core/id"
)

type entry struct {
	name    string
	expires time.Time
}

// NameCache memoizes name lookups with a TTL. Safe for concurrent use.
type NameCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[id.ID]entry
}

// NewNameCache creates a cache with the given TTL. A zero or negative TTL
// disables caching entirely.
func NewNameCache(ttl time.Duration) *NameCache {
	return &NameCache{
		ttl:     ttl,
		entries: make(map[id.ID]entry),
	}
}

// Get returns the cached name for key, resolving and storing it on miss.
func (c *NameCache) Get(key id.ID, resolve func() string) string {
	if c.ttl <= 0 {
		return resolve()
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(e.expires) {
		return e.name
	}

	name := resolve()

	c.mu.Lock()
	c.entries[key] = entry{name: name, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return name
}

// Invalidate drops one key, typically after a catalog mutation.
func (c *NameCache) Invalidate(key id.ID) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// typeNameSource is the slice of the product type service the resolver needs.
type typeNameSource interface {
	ResolveName(ctx context.Context, typeID *id.ID) string
}

// TypeNameResolver adapts the product type catalog to the comparison
// engine's resolver contract with TTL caching in front.
type TypeNameResolver struct {
	source typeNameSource
	cache  *NameCache
}

// NewTypeNameResolver creates a cached type name resolver.
func NewTypeNameResolver(source typeNameSource, ttl time.Duration) *TypeNameResolver {
	return &TypeNameResolver{source: source, cache: NewNameCache(ttl)}
}

// TypeName resolves a classification name, defaulting to "Unknown".
func (r *TypeNameResolver) TypeName(ctx context.Context, typeID *id.ID) string {
	if typeID == nil || id.IsNil(*typeID) {
		return r.source.ResolveName(ctx, typeID)
	}
	return r.cache.Get(*typeID, func() string {
		return r.source.ResolveName(ctx, typeID)
	})
}

// deptNameSource is the slice of the department service the resolver needs.
type deptNameSource interface {
	ResolveName(ctx context.Context, deptID id.ID) string
}

// DeptNameResolver adapts the department catalog with TTL caching.
type DeptNameResolver struct {
	source deptNameSource
	cache  *NameCache
}

// NewDeptNameResolver creates a cached department name resolver.
func NewDeptNameResolver(source deptNameSource, ttl time.Duration) *DeptNameResolver {
	return &DeptNameResolver{source: source, cache: NewNameCache(ttl)}
}

// DepartmentName resolves a department name, defaulting to "Unknown".
func (r *DeptNameResolver) DepartmentName(ctx context.Context, deptID id.ID) string {
	return r.cache.Get(deptID, func() string {
		return r.source.ResolveName(ctx, deptID)
	})
}
