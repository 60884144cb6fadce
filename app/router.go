package app

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/mytheresa/go-inventory/app/api"
	"github.com/mytheresa/go-inventory/app/catalog"
	"github.com/mytheresa/go-inventory/app/categories"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Categories *categories.CategoryHandler
	Catalog    *catalog.CatalogHandler
	Health     Pinger
}

// NewRouter registers every route and wraps the mux with request logging
// and panic recovery.
func NewRouter(h Handlers, log logrus.FieldLogger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/categories", h.Categories.HandleGetAll)
	mux.HandleFunc("POST /api/categories", h.Categories.HandleCreate)
	mux.HandleFunc("GET /api/categories/{id}", h.Categories.HandleGet)
	mux.HandleFunc("PUT /api/categories/{id}", h.Categories.HandleUpdate)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Categories.HandleDelete)
	mux.HandleFunc("GET /api/categories/{id}/products", h.Catalog.HandleGetByCategory)

	mux.HandleFunc("GET /api/products", h.Catalog.HandleGetAll)
	mux.HandleFunc("POST /api/products", h.Catalog.HandleCreate)
	mux.HandleFunc("GET /api/products/{id}", h.Catalog.HandleGetProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.Catalog.HandleUpdate)
	mux.HandleFunc("DELETE /api/products/{id}", h.Catalog.HandleDelete)

	mux.HandleFunc("GET /healthz", healthHandler(h.Health, log))

	return withRecovery(withRequestLogging(mux, log), log)
}

func healthHandler(p Pinger, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			if err := p.PingContext(r.Context()); err != nil {
				log.WithError(err).Warn("Health check failed")
				api.ErrorResponseJSON(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		api.OKResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withRequestLogging(next http.Handler, log logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("Request completed")
	})
}

func withRecovery(next http.Handler, log logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				log.WithFields(logrus.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rv,
					"stack":  string(debug.Stack()),
				}).Error("Recovered from panic")
				api.ErrorResponseJSON(w, http.StatusInternalServerError, api.InternalErrorMessage)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
