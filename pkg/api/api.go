// Package api exposes the customer store over HTTP.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"customerstore/pkg/customer"
	"customerstore/pkg/logger"
)

// Handlers serves the customer endpoints.
type Handlers struct {
	repo   customer.Repository
	log    *logger.Logger
	tracer trace.Tracer
}

// New creates the HTTP handlers around repo.
func New(repo customer.Repository, log *logger.Logger, tracer trace.Tracer) *Handlers {
	return &Handlers{repo: repo, log: log, tracer: tracer}
}

// Router builds the route table with middleware applied.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.recoverMiddleware, requestIDMiddleware, h.traceMiddleware, h.logMiddleware)

	r.HandleFunc("/Customer", h.appendCustomers).Methods(http.MethodPost)
	r.HandleFunc("/Customer", h.listCustomers).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return r
}
