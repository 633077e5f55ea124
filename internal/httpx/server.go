package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/printshop/catalog-api/internal/authx"
	"github.com/printshop/catalog-api/internal/metrics"
)

// NewRouter assembles the middleware chain: identity verification runs once
// per request before any handler; unknown routes get the uniform JSON 404.
func NewRouter(log *logrus.Logger, gate authx.Gate) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(CORS)
	r.Use(RequestLogger(log))
	r.Use(Recover(log))
	r.Use(metrics.Middleware)
	r.Use(EnsureIdentity(gate))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	return r
}

// CORS mirrors the browser-facing header set the frontend depends on.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "POST, GET, PUT, DELETE, OPTIONS, XMODIFY")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Max-Age", "86400")
		h.Set("Access-Control-Allow-Headers", "X-Requested-With, X-HTTP-Method-Override, Content-Type, Accept, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  middleware.GetReqID(r.Context()),
			}).Info("request")
		})
	}
}

// Recover turns panics into the opaque 500 body. If the response already
// started, the first write wins and nothing more is sent.
func Recover(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rec := recover(); rec != nil {
					log.WithField("panic", rec).Error("request panicked")
					if ww.BytesWritten() == 0 {
						writeJSON(ww, http.StatusInternalServerError, errorBody{Error: "Internal Error"})
					}
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
