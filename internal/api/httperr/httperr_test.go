package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nbportal/portal/internal/api/response"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return env
}

func TestRenderTypedErrors(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		code int
	}{
		{"bad request", BadRequest("malformed payload"), http.StatusBadRequest},
		{"not found", NotFound("no such notebook"), http.StatusNotFound},
		{"unauthorized", Unauthorized(""), http.StatusUnauthorized},
		{"forbidden", Forbidden(""), http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Render(rec, tc.err)

			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d", rec.Code, tc.code)
			}
			env := decodeEnvelope(t, rec)
			if env.Code != tc.code {
				t.Errorf("envelope code = %d, want %d", env.Code, tc.code)
			}
			if env.Message != tc.err.Message {
				t.Errorf("envelope message = %q, want %q", env.Message, tc.err.Message)
			}
		})
	}
}

func TestRenderBadGatewayKeepsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	Render(rec, BadGateway("upstream exploded"))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != http.StatusBadGateway {
		t.Errorf("envelope code = %d, want 502", env.Code)
	}
	// The body takes the bad-request shape, not the gateway error's own text.
	if env.Message != descriptions[http.StatusBadRequest] {
		t.Errorf("envelope message = %q, want bad-request description", env.Message)
	}
}

func TestRenderUnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	Render(rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != http.StatusInternalServerError {
		t.Errorf("envelope code = %d, want 500", env.Code)
	}
}

func TestHandlerFuncRendersReturnedError(t *testing.T) {
	h := HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		return Forbidden("")
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestDefaultDescriptions(t *testing.T) {
	if BadRequest("").Message == "" {
		t.Error("expected default description for bad request")
	}
	if got := NotFound("").Message; got != descriptions[http.StatusNotFound] {
		t.Errorf("unexpected default description %q", got)
	}
}
