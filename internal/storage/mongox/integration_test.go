package mongox_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/printshop/catalog-api/internal/domain"
	"github.com/printshop/catalog-api/internal/storage/mongox"
)

// Integration tests run only against a real instance, e.g.
//
//	MONGO_URI=mongodb://localhost:27017/ go test ./internal/storage/mongox/
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongox.Connect(ctx, uri, fmt.Sprintf("catalog_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = db.Client().Disconnect(ctx)
	})
	return db
}

func testProduct(id string, tags ...string) domain.Product {
	return domain.Product{
		ID:          id,
		Description: "description for " + id,
		ImgThumb:    "https://images.example.com/thumb/" + id + ".jpg",
		Img:         "https://images.example.com/full/" + id + ".jpg",
		UserID:      "user-1",
		UserName:    "Test User",
		Tags:        tags,
	}
}

func TestCheckHealth(t *testing.T) {
	db := testDB(t)

	require.NoError(t, mongox.CheckHealth(context.Background(), db))
}

func TestProductRepository_RoundTrip(t *testing.T) {
	db := testDB(t)
	repo := mongox.NewProductRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testProduct("", "dog"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := repo.Edit(ctx, created.ID, domain.ProductPatch{
		Description: domain.SetField("updated description"),
	})
	require.NoError(t, err)
	assert.Equal(t, "updated description", updated.Description)
	assert.Equal(t, created.UserName, updated.UserName)

	require.NoError(t, repo.Remove(ctx, created.ID))
	require.NoError(t, repo.Remove(ctx, created.ID), "removing a missing id is not an error")

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepository_ListFiltersAndPaginates(t *testing.T) {
	db := testDB(t)
	repo := mongox.NewProductRepository(db)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		tags := []string{"cat"}
		if i%2 == 0 {
			tags = []string{"dog"}
		}
		_, err := repo.Create(ctx, testProduct(fmt.Sprintf("p%03d", i), tags...))
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, domain.ProductFilter{Offset: 2, Limit: 3})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "p002", page[0].ID)

	dogs, err := repo.List(ctx, domain.ProductFilter{Limit: 25, Tag: "dog"})
	require.NoError(t, err)
	require.Len(t, dogs, 4)
	for _, p := range dogs {
		assert.Contains(t, p.Tags, "dog")
	}
}

func TestOrderRepository_ResolvesAndFilters(t *testing.T) {
	db := testDB(t)
	products := mongox.NewProductRepository(db)
	orders := mongox.NewOrderRepository(db)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2"} {
		_, err := products.Create(ctx, testProduct(id))
		require.NoError(t, err)
	}

	created, err := orders.Create(ctx, domain.Order{
		ID:       "o1",
		Username: "a@b.com",
		Products: []string{"p1", "p2"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, created.Status)
	require.Len(t, created.Products, 2)

	_, err = orders.Create(ctx, domain.Order{
		ID:       "o2",
		Username: "c@d.com",
		Products: []string{"p1"},
	})
	require.NoError(t, err)

	mine, err := orders.List(ctx, domain.OrderFilter{Limit: 25, Username: "a@b.com"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "o1", mine[0].ID)

	withP2, err := orders.List(ctx, domain.OrderFilter{Limit: 25, ProductID: "p2"})
	require.NoError(t, err)
	require.Len(t, withP2, 1)
	assert.Equal(t, "o1", withP2[0].ID)

	// Deleting a referenced product drops it from resolution without touching
	// the stored reference list.
	require.NoError(t, products.Remove(ctx, "p2"))
	got, err := orders.Get(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "p1", got.Products[0].ID)
}

func TestOrderRepository_EditTransitions(t *testing.T) {
	db := testDB(t)
	products := mongox.NewProductRepository(db)
	orders := mongox.NewOrderRepository(db)
	ctx := context.Background()

	_, err := products.Create(ctx, testProduct("p1"))
	require.NoError(t, err)
	_, err = orders.Create(ctx, domain.Order{ID: "o1", Username: "a@b.com", Products: []string{"p1"}})
	require.NoError(t, err)

	updated, err := orders.Edit(ctx, "o1", domain.OrderPatch{
		Status: domain.SetField(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	_, err = orders.Edit(ctx, "o1", domain.OrderPatch{
		Status: domain.SetField(domain.Status("SHIPPED")),
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}
