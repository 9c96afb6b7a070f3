package comparison

import (
	"context"
	"sync"

	"procompare/internal/core/id"
	"procompare/internal/domain/catalogs/supplier"
)

// lookupCache memoizes classification, department and supplier name lookups
// for the duration of one search call. It is built per call and shared by
// the concurrent group/line workers, never held between requests.
type lookupCache struct {
	types     TypeNameResolver
	depts     DeptNameResolver
	suppliers OfferRepository

	mu            sync.Mutex
	typeNames     map[id.ID]string
	deptNames     map[id.ID]string
	supplierNames map[id.ID]string
}

func newLookupCache(types TypeNameResolver, depts DeptNameResolver, suppliers OfferRepository) *lookupCache {
	return &lookupCache{
		types:         types,
		depts:         depts,
		suppliers:     suppliers,
		typeNames:     make(map[id.ID]string),
		deptNames:     make(map[id.ID]string),
		supplierNames: make(map[id.ID]string),
	}
}

func (c *lookupCache) typeName(ctx context.Context, typeID *id.ID) string {
	if typeID == nil || id.IsNil(*typeID) {
		return c.types.TypeName(ctx, typeID)
	}

	c.mu.Lock()
	if name, ok := c.typeNames[*typeID]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := c.types.TypeName(ctx, typeID)

	c.mu.Lock()
	c.typeNames[*typeID] = name
	c.mu.Unlock()
	return name
}

func (c *lookupCache) departmentName(ctx context.Context, deptID id.ID) string {
	c.mu.Lock()
	if name, ok := c.deptNames[deptID]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := c.depts.DepartmentName(ctx, deptID)

	c.mu.Lock()
	c.deptNames[deptID] = name
	c.mu.Unlock()
	return name
}

// supplierName resolves a supplier reference to its display name, defaulting
// to "Unknown" when the lookup fails. Resolution failure never fails a line.
func (c *lookupCache) supplierName(ctx context.Context, supplierID id.ID) string {
	c.mu.Lock()
	if name, ok := c.supplierNames[supplierID]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := supplier.UnknownName
	if sup, err := c.suppliers.GetSupplier(ctx, supplierID); err == nil && sup != nil {
		name = sup.Name
	}

	c.mu.Lock()
	c.supplierNames[supplierID] = name
	c.mu.Unlock()
	return name
}
