package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/printshop/catalog-api/internal/authx"
)

type contextKey string

const identityKey contextKey = "identity"

// EnsureIdentity verifies bearer credentials once per request, upstream of
// every handler. Requests without credentials continue anonymously; handlers
// decide whether an identity is required. Credentials that fail verification
// short-circuit with 401 before any handler runs.
func EnsureIdentity(gate authx.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
				return
			}

			identity, err := gate.Verify(r.Context(), token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
		})
	}
}

func withIdentity(ctx context.Context, identity authx.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFrom reads the optional current identity attached by EnsureIdentity.
func identityFrom(ctx context.Context) (authx.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(authx.Identity)
	return identity, ok
}
