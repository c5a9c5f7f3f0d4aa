package httpserver

import "net/http"

// HealthCheckHandler returns a liveness probe handler.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ALIVE"))
	}
}
