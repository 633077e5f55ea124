package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/printshop/catalog-api/internal/domain"
)

// ProductRepository is an in-memory implementation for local development and
// tests. It mirrors the document-store semantics: ascending-id listings,
// skip/limit pagination, tag membership filtering.
type ProductRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{items: make(map[string]domain.Product)}
}

func (r *ProductRepository) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return cloneProduct(product), nil
}

func (r *ProductRepository) List(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		if filter.Tag != "" && !slices.Contains(product.Tags, filter.Tag) {
			continue
		}
		matched = append(matched, cloneProduct(product))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	return paginate(matched, filter.Offset, filter.Limit), nil
}

func (r *ProductRepository) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == "" {
		product.ID = domain.NewID()
	}
	if err := domain.ValidateProduct(product); err != nil {
		return domain.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[product.ID] = cloneProduct(product)
	return product, nil
}

func (r *ProductRepository) Edit(_ context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	merged := cloneProduct(current)
	patch.ApplyTo(&merged)
	merged.ID = id
	if err := domain.ValidateProduct(merged); err != nil {
		return domain.Product{}, err
	}

	r.items[id] = cloneProduct(merged)
	return merged, nil
}

// Remove is idempotent: deleting a missing id is not an error.
func (r *ProductRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// lookup is used by the order repository to resolve references without
// taking the public Get path.
func (r *ProductRepository) lookup(id string) (domain.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, false
	}
	return cloneProduct(product), true
}

func cloneProduct(p domain.Product) domain.Product {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func paginate[T any](items []T, offset, limit int64) []T {
	if offset >= int64(len(items)) {
		return []T{}
	}
	if offset > 0 {
		items = items[offset:]
	}
	// limit<=0 means unlimited, matching the store's skip/limit semantics.
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

var _ domain.ProductRepository = (*ProductRepository)(nil)
