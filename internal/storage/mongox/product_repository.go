package mongox

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/printshop/catalog-api/internal/domain"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

func (r *ProductRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}
	if filter.Tag != "" {
		// Array field: equality match means membership.
		query["tags"] = filter.Tag
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(filter.Offset)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == "" {
		product.ID = domain.NewID()
	}
	if err := domain.ValidateProduct(product); err != nil {
		return domain.Product{}, err
	}

	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) Edit(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	merged, err := r.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	patch.ApplyTo(&merged)
	merged.ID = id
	if err := domain.ValidateProduct(merged); err != nil {
		return domain.Product{}, err
	}

	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, merged); err != nil {
		return domain.Product{}, fmt.Errorf("replace product: %w", err)
	}
	return merged, nil
}

// Remove is idempotent: a zero delete count is not an error.
func (r *ProductRepository) Remove(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

var _ domain.ProductRepository = (*ProductRepository)(nil)
