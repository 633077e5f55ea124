package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/printshop/catalog-api/internal/authx"
	"github.com/printshop/catalog-api/internal/domain"
)

// errForbidden marks a gated write attempted without an identity.
var errForbidden = errors.New("forbidden")

type errorBody struct {
	Error        string            `json:"error"`
	ErrorDetails map[string]string `json:"errorDetails,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single translation point from the error taxonomy to the
// wire. Anything unclassified becomes a logged 500 with an opaque body.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Message, ErrorDetails: verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
	case errors.Is(err, errForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "Forbidden"})
	case errors.Is(err, authx.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
	default:
		log.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal Error"})
	}
}

// notFoundHandler is the uniform fallback: unknown routes and handlers that
// decline a missing id both end up here, so "not found" has one wire shape.
func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
}
