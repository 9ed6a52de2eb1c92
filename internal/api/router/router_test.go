package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/nbportal/portal/internal/api/response"
)

type fakeBlueprint struct {
	name string
}

func (b fakeBlueprint) Name() string { return b.name }

func (b fakeBlueprint) Register(r *mux.Router) {
	r.HandleFunc("/"+b.name, func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, b.name)
	}).Methods(http.MethodGet)
}

func TestBlueprintsRegistered(t *testing.T) {
	r := New(Options{Blueprints: []Blueprint{fakeBlueprint{"alpha"}, fakeBlueprint{"beta"}}})

	for _, path := range []string{"/alpha", "/beta"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestNotFoundIsJSONEnvelope(t *testing.T) {
	r := New(Options{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != http.StatusNotFound {
		t.Errorf("envelope code = %d, want 404", env.Code)
	}
}

func TestMethodNotAllowedIsJSONEnvelope(t *testing.T) {
	r := New(Options{Blueprints: []Blueprint{fakeBlueprint{"alpha"}}})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/alpha", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != http.StatusMethodNotAllowed {
		t.Errorf("envelope code = %d, want 405", env.Code)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	r := New(Options{Blueprints: []Blueprint{fakeBlueprint{"alpha"}}})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alpha", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request ID header on the response")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	r := New(Options{Blueprints: []Blueprint{fakeBlueprint{"alpha"}}})
	req := httptest.NewRequest(http.MethodGet, "/alpha", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("request ID = %q, want caller-supplied", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := New(Options{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
}
