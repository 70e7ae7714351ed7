package cache

import (
	"fmt"
	"net/http"

	"orderdesk/internal/models"
)

// CatalogCacheRepo holds the warm product view the pricing engine snapshots
// against during a commit.
type CatalogCacheRepo struct {
	cch KV
}

func NewCatalogCache(cch KV) *CatalogCacheRepo {
	return &CatalogCacheRepo{cch: cch}
}

func (c *CatalogCacheRepo) PutProduct(p models.Product) {
	c.cch.Put(p.ID, p)
}

func (c *CatalogCacheRepo) GetProduct(id string) (models.Product, error) {
	v, ok := c.cch.Get(id)
	if !ok {
		return models.Product{}, NewErrorHandler(fmt.Errorf("product %s not found", id), http.StatusNotFound)
	}
	p, ok := v.(models.Product)
	if !ok {
		return models.Product{},
			NewErrorHandler(fmt.Errorf("failed to convert product %s to its struct", id),
				http.StatusInternalServerError)
	}
	return p, nil
}

// Snapshot returns an immutable point-in-time catalog; commits price against
// this view so a concurrent cache refresh cannot change unit prices midway.
func (c *CatalogCacheRepo) Snapshot() models.Catalog {
	snap := c.cch.Snapshot()
	out := make(models.Catalog, len(snap))
	for _, v := range snap {
		if p, ok := v.(models.Product); ok {
			out[p.ID] = p
		}
	}
	return out
}
