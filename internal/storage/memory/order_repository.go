package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/printshop/catalog-api/internal/domain"
)

// OrderRepository is the in-memory counterpart of the document-store order
// repository. Product references are resolved against the sibling product
// repository on every read; dangling references are omitted.
type OrderRepository struct {
	mu       sync.RWMutex
	items    map[string]domain.Order
	products *ProductRepository
}

func NewOrderRepository(products *ProductRepository) *OrderRepository {
	return &OrderRepository{
		items:    make(map[string]domain.Order),
		products: products,
	}
}

func (r *OrderRepository) Get(_ context.Context, id string) (domain.ResolvedOrder, error) {
	r.mu.RLock()
	order, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return domain.ResolvedOrder{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return r.resolve(order), nil
}

func (r *OrderRepository) List(_ context.Context, filter domain.OrderFilter) ([]domain.ResolvedOrder, error) {
	r.mu.RLock()
	matched := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if filter.Username != "" && order.Username != filter.Username {
			continue
		}
		if filter.ProductID != "" && !slices.Contains(order.Products, filter.ProductID) {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		matched = append(matched, cloneOrder(order))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	matched = paginate(matched, filter.Offset, filter.Limit)

	resolved := make([]domain.ResolvedOrder, 0, len(matched))
	for _, order := range matched {
		resolved = append(resolved, r.resolve(order))
	}
	return resolved, nil
}

func (r *OrderRepository) Create(_ context.Context, order domain.Order) (domain.ResolvedOrder, error) {
	if order.ID == "" {
		order.ID = domain.NewID()
	}
	if order.Status == "" {
		order.Status = domain.StatusCreated
	}
	if err := domain.ValidateOrder(order); err != nil {
		return domain.ResolvedOrder{}, err
	}

	r.mu.Lock()
	r.items[order.ID] = cloneOrder(order)
	r.mu.Unlock()

	return r.resolve(order), nil
}

func (r *OrderRepository) Edit(_ context.Context, id string, patch domain.OrderPatch) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}

	merged := cloneOrder(current)
	patch.ApplyTo(&merged)
	merged.ID = id
	if err := domain.ValidateOrder(merged); err != nil {
		return domain.Order{}, err
	}
	if !current.Status.CanTransitionTo(merged.Status) {
		return domain.Order{}, &domain.ValidationError{
			Message: "Order validation failed",
			Fields:  map[string]string{"status": fmt.Sprintf("cannot transition from %s to %s", current.Status, merged.Status)},
		}
	}

	r.items[id] = cloneOrder(merged)
	return merged, nil
}

func (r *OrderRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *OrderRepository) resolve(order domain.Order) domain.ResolvedOrder {
	products := make([]domain.Product, 0, len(order.Products))
	for _, ref := range order.Products {
		if product, ok := r.products.lookup(ref); ok {
			products = append(products, product)
		}
	}
	return domain.ResolvedOrder{
		ID:       order.ID,
		Username: order.Username,
		Products: products,
		Status:   order.Status,
	}
}

func cloneOrder(o domain.Order) domain.Order {
	o.Products = slices.Clone(o.Products)
	return o
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
