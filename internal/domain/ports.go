package domain

import "context"

// ProductFilter narrows a product listing. Zero values mean "no filter";
// Limit<=0 falls back to the caller's default, repositories do not cap it.
type ProductFilter struct {
	Offset int64
	Limit  int64
	Tag    string
}

// OrderFilter narrows an order listing. The three optional filters combine
// with AND semantics.
type OrderFilter struct {
	Offset    int64
	Limit     int64
	Username  string
	ProductID string
	Status    Status
}

// ProductRepository owns Product documents. Listings are ordered by ascending
// id so pagination is stable and deterministic.
type ProductRepository interface {
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Edit(ctx context.Context, id string, patch ProductPatch) (Product, error)
	Remove(ctx context.Context, id string) error
}

// OrderRepository owns Order documents. Reads resolve product references;
// Edit returns the stored (unresolved) document.
type OrderRepository interface {
	Get(ctx context.Context, id string) (ResolvedOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]ResolvedOrder, error)
	Create(ctx context.Context, order Order) (ResolvedOrder, error)
	Edit(ctx context.Context, id string, patch OrderPatch) (Order, error)
	Remove(ctx context.Context, id string) error
}
