package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/printshop/catalog-api/internal/domain"
	"github.com/printshop/catalog-api/internal/redisx"
)

// ProductsHandler translates HTTP-shaped input into product repository calls.
// Reads are open; writes require an authenticated identity.
type ProductsHandler struct {
	Repo  domain.ProductRepository
	Cache *redisx.ProductCache // optional
	Log   *logrus.Logger
}

func (h *ProductsHandler) Register(r chi.Router) {
	r.Get("/products", h.list)
	r.Get("/products/{id}", h.get)
	r.Post("/products", h.create)
	r.Put("/products/{id}", h.edit)
	r.Delete("/products/{id}", h.remove)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	offset, limit := pageParams(r)

	products, err := h.Repo.List(r.Context(), domain.ProductFilter{
		Offset: offset,
		Limit:  limit,
		Tag:    r.URL.Query().Get("tag"),
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	if h.Cache != nil {
		if product, ok := h.Cache.Get(ctx, id); ok {
			writeJSON(w, http.StatusOK, product)
			return
		}
	}

	product, err := h.Repo.Get(ctx, id)
	if err != nil {
		// A missing id surfaces through the uniform not-found shape.
		writeError(w, h.Log, err)
		return
	}

	if h.Cache != nil {
		h.Cache.Set(ctx, product)
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFrom(r.Context()); !ok {
		writeError(w, h.Log, errForbidden)
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	created, err := h.Repo.Create(r.Context(), product)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *ProductsHandler) edit(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFrom(r.Context()); !ok {
		writeError(w, h.Log, errForbidden)
		return
	}

	var patch domain.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := h.Repo.Edit(r.Context(), id, patch)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	if h.Cache != nil {
		h.Cache.Invalidate(r.Context(), id)
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProductsHandler) remove(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFrom(r.Context()); !ok {
		writeError(w, h.Log, errForbidden)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Repo.Remove(r.Context(), id); err != nil {
		writeError(w, h.Log, err)
		return
	}

	if h.Cache != nil {
		h.Cache.Invalidate(r.Context(), id)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
