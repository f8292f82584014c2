// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"cmp"
	"slices"
	"sync"

	"github.com/MKhiriev/health-enclave/models"
)

// Catalog is the known-metadata set: everything the peer has advertised,
// stored or not. Adding the same identifier twice keeps the first record.
type Catalog struct {
	mu    sync.RWMutex
	items map[models.DocumentIdentifier]models.DocumentMetadata
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[models.DocumentIdentifier]models.DocumentMetadata)}
}

// Add records md and reports whether it was new.
func (c *Catalog) Add(md models.DocumentMetadata) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[md.ID]; ok {
		return false
	}
	c.items[md.ID] = md
	return true
}

// Get returns the advertised metadata for id.
func (c *Catalog) Get(id models.DocumentIdentifier) (models.DocumentMetadata, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	md, ok := c.items[id]
	return md, ok
}

// Has reports whether id was advertised.
func (c *Catalog) Has(id models.DocumentIdentifier) bool {
	_, ok := c.Get(id)
	return ok
}

// Remove forgets id.
func (c *Catalog) Remove(id models.DocumentIdentifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
}

// Len is the number of known identifiers.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// List returns the known metadata ordered by creation time.
func (c *Catalog) List() []models.DocumentMetadata {
	c.mu.RLock()
	out := make([]models.DocumentMetadata, 0, len(c.items))
	for _, md := range c.items {
		out = append(out, md)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.DocumentMetadata) int {
		if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
