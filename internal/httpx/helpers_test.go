package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/printshop/catalog-api/internal/authx"
	"github.com/printshop/catalog-api/internal/domain"
	"github.com/printshop/catalog-api/internal/httpx"
	"github.com/printshop/catalog-api/internal/storage/memory"
)

const testSecret = "test-secret"

type testServer struct {
	router   *chi.Mux
	products *memory.ProductRepository
	orders   *memory.OrderRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	gate := authx.NewTokenVerifier([]byte(testSecret))
	router := httpx.NewRouter(log, gate)

	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository(products)

	(&httpx.ProductsHandler{Repo: products, Log: log}).Register(router)
	(&httpx.OrdersHandler{Repo: orders, Log: log, Service: "catalog-api-test"}).Register(router)

	return &testServer{router: router, products: products, orders: orders}
}

// token issues a bearer token the test verifier accepts.
func token(t *testing.T, email string) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	if email != "" {
		claims["email"] = email
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func productFixture(id string, tags ...string) domain.Product {
	return domain.Product{
		ID:          id,
		Description: gofakeit.Sentence(4),
		ImgThumb:    "https://images.example.com/thumb/" + id + ".jpg",
		Img:         "https://images.example.com/full/" + id + ".jpg",
		UserID:      gofakeit.Username(),
		UserName:    gofakeit.Name(),
		Tags:        tags,
	}
}

func (s *testServer) seedProduct(t *testing.T, id string, tags ...string) domain.Product {
	t.Helper()
	created, err := s.products.Create(context.Background(), productFixture(id, tags...))
	require.NoError(t, err)
	return created
}
