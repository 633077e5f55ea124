package mongox

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/printshop/catalog-api/internal/domain"
)

// OrderRepository persists orders with product references and resolves them
// into embedded product documents on reads, one $in lookup per read.
type OrderRepository struct {
	orders   *mongo.Collection
	products *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		orders:   db.Collection("orders"),
		products: db.Collection("products"),
	}
}

func (r *OrderRepository) Get(ctx context.Context, id string) (domain.ResolvedOrder, error) {
	order, err := r.find(ctx, id)
	if err != nil {
		return domain.ResolvedOrder{}, err
	}

	resolved, err := r.resolve(ctx, []domain.Order{order})
	if err != nil {
		return domain.ResolvedOrder{}, err
	}
	return resolved[0], nil
}

func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.ResolvedOrder, error) {
	query := bson.M{}
	if filter.Username != "" {
		query["username"] = filter.Username
	}
	if filter.ProductID != "" {
		query["products"] = filter.ProductID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(filter.Offset)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	orders := make([]domain.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return r.resolve(ctx, orders)
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.ResolvedOrder, error) {
	if order.ID == "" {
		order.ID = domain.NewID()
	}
	if order.Status == "" {
		order.Status = domain.StatusCreated
	}
	if err := domain.ValidateOrder(order); err != nil {
		return domain.ResolvedOrder{}, err
	}

	if _, err := r.orders.InsertOne(ctx, order); err != nil {
		return domain.ResolvedOrder{}, fmt.Errorf("insert order: %w", err)
	}

	resolved, err := r.resolve(ctx, []domain.Order{order})
	if err != nil {
		return domain.ResolvedOrder{}, err
	}
	return resolved[0], nil
}

func (r *OrderRepository) Edit(ctx context.Context, id string, patch domain.OrderPatch) (domain.Order, error) {
	current, err := r.find(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	merged := current
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

	if _, err := r.orders.ReplaceOne(ctx, bson.M{"_id": id}, merged); err != nil {
		return domain.Order{}, fmt.Errorf("replace order: %w", err)
	}
	return merged, nil
}

func (r *OrderRepository) Remove(ctx context.Context, id string) error {
	if _, err := r.orders.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepository) find(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// resolve swaps product references for the referenced documents. References
// to since-deleted products are dropped, never null-filled.
func (r *OrderRepository) resolve(ctx context.Context, orders []domain.Order) ([]domain.ResolvedOrder, error) {
	refs := lo.Uniq(lo.Flatten(lo.Map(orders, func(o domain.Order, _ int) []string {
		return o.Products
	})))

	byID := make(map[string]domain.Product, len(refs))
	if len(refs) > 0 {
		cursor, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": refs}})
		if err != nil {
			return nil, fmt.Errorf("resolve products: %w", err)
		}
		var products []domain.Product
		if err := cursor.All(ctx, &products); err != nil {
			return nil, fmt.Errorf("decode resolved products: %w", err)
		}
		for _, product := range products {
			byID[product.ID] = product
		}
	}

	resolved := make([]domain.ResolvedOrder, 0, len(orders))
	for _, order := range orders {
		products := lo.FilterMap(order.Products, func(ref string, _ int) (domain.Product, bool) {
			product, ok := byID[ref]
			return product, ok
		})
		resolved = append(resolved, domain.ResolvedOrder{
			ID:       order.ID,
			Username: order.Username,
			Products: products,
			Status:   order.Status,
		})
	}
	return resolved, nil
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
