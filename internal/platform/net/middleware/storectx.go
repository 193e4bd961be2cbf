package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"commitkings/internal/platform/store"
)

// StoreContext copies the request id onto the storage context so query
// tracing can correlate SQL with the request that issued it
func StoreContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := chimw.GetReqID(r.Context()); id != "" {
				r = r.WithContext(store.WithRequestID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
