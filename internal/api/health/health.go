// Package health provides the health-check route group.
package health

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nbportal/portal/internal/api/response"
)

// Blueprint serves GET /health.
type Blueprint struct{}

// New returns the health blueprint.
func New() Blueprint { return Blueprint{} }

func (Blueprint) Name() string { return "health" }

// Register attaches the health route.
func (b Blueprint) Register(r *mux.Router) {
	r.HandleFunc("/health", b.check).Methods(http.MethodGet)
}

// check reports that the server is running.
func (Blueprint) check(w http.ResponseWriter, r *http.Request) {
	response.Success(w, "OK")
}
