// Package router assembles the application's route groups onto a single
// gorilla/mux router.
package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/nbportal/portal/internal/api/httperr"
	"github.com/nbportal/portal/internal/metrics"
	"github.com/nbportal/portal/pkg/logger"
)

// Blueprint is a named group of URL-to-handler bindings. The set of
// blueprints is enumerated at compile time and registered in one pass.
type Blueprint interface {
	Name() string
	Register(r *mux.Router)
}

// Options configures router assembly.
type Options struct {
	Log        *logger.Logger
	StaticDir  string
	Blueprints []Blueprint
}

// New builds the router: JSON error handlers, request-ID and access-log
// middleware, the metrics endpoint, static assets, and every blueprint.
func New(opts Options) *mux.Router {
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httperr.Render(w, httperr.NotFound(""))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httperr.Render(w, &httperr.Error{Code: http.StatusMethodNotAllowed, Message: "method not allowed"})
	})

	r.Use(requestIDMiddleware, accessLogMiddleware(log))

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	if opts.StaticDir != "" {
		fs := http.FileServer(http.Dir(opts.StaticDir))
		r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs)).Methods(http.MethodGet)
	}

	for _, bp := range opts.Blueprints {
		bp.Register(r)
		log.Debugf("registered blueprint %s", bp.Name())
	}

	return r
}

const requestIDHeader = "X-Request-ID"

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func accessLogMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"request_id": r.Header.Get(requestIDHeader),
				"duration":   time.Since(start).String(),
			}).Debug("request handled")
		})
	}
}
