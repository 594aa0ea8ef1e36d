package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"customerstore/pkg/customer"
	"customerstore/pkg/otel"
)

// appendCustomers validates and stores a batch of customers.
// @Summary Append customers
// @Description Validates each customer and inserts the valid ones in name order.
// @Description Rejected records are listed one per line in a 400 response.
// @Accept json
// @Produce plain
// @Param customers body []customer.Customer true "Customers"
// @Success 200
// @Failure 400 {string} string "validation errors"
// @Failure 500 {string} string "internal error"
// @Router /Customer [post]
func (h *Handlers) appendCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "appendCustomers")
	defer span.End()

	var batch []customer.Customer
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("batch.size", len(batch)))

	err := h.repo.Append(ctx, batch)
	var verr *customer.ValidationError
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, customer.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &verr):
		h.log.Info(ctx, "customers rejected", "count", len(verr.Messages()))
		http.Error(w, verr.Error(), http.StatusBadRequest)
	default:
		h.log.Error(ctx, "append customers", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// listCustomers returns every stored customer.
// @Summary List customers
// @Description Returns all customers sorted by last name, then first name.
// @Produce json
// @Success 200 {array} customer.Customer
// @Failure 500 {string} string "internal error"
// @Router /Customer [get]
func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listCustomers")
	defer span.End()

	customers, err := h.repo.List(ctx)
	if err != nil {
		h.log.Error(ctx, "list customers", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if customers == nil {
		customers = []customer.Customer{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(customers); err != nil {
		h.log.Error(ctx, "encode customers", "error", err)
	}
}

// health reports liveness.
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
