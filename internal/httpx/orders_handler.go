package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/printshop/catalog-api/internal/domain"
	"github.com/printshop/catalog-api/internal/events"
	kafkax "github.com/printshop/catalog-api/internal/kafka"
)

// OrdersHandler translates HTTP-shaped input into order repository calls.
// Identity is optional on both routes, but when present it pins the order to
// the authenticated account: creation overrides any caller-supplied username
// and listing is scoped to the account's own orders.
type OrdersHandler struct {
	Repo     domain.OrderRepository
	Producer *kafkax.Producer // optional
	Log      *logrus.Logger
	Service  string
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.create)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	offset, limit := pageParams(r)
	q := r.URL.Query()

	filter := domain.OrderFilter{
		Offset:    offset,
		Limit:     limit,
		ProductID: q.Get("productId"),
		Status:    domain.Status(q.Get("status")),
	}
	// An authenticated caller only ever sees their own orders; an anonymous
	// caller sees all of them.
	if identity, ok := identityFrom(r.Context()); ok {
		filter.Username = identity.Email
	}

	orders, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	// Guest checkout keeps the supplied name; a logged-in checkout is always
	// attributed to the account.
	if identity, ok := identityFrom(r.Context()); ok {
		order.Username = identity.Email
	}

	created, err := h.Repo.Create(r.Context(), order)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	h.publishCreated(r, created)
	writeJSON(w, http.StatusOK, created)
}

func (h *OrdersHandler) publishCreated(r *http.Request, order domain.ResolvedOrder) {
	if h.Producer == nil {
		return
	}

	refs := make([]string, 0, len(order.Products))
	for _, p := range order.Products {
		refs = append(refs, p.ID)
	}
	ev := events.Envelope{
		EventID:       uuid.NewString(),
		EventType:     events.EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: order.ID,
		Payload: kafkax.MustMarshal(events.OrderCreatedPayload{
			OrderID:  order.ID,
			Username: order.Username,
			Products: refs,
			Status:   string(order.Status),
		}),
	}

	h.Producer.Publish(events.PartitionKey(order.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(events.EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
