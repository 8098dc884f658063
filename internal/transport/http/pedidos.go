package httptransport

import (
	"fmt"
	"net/http"
	"time"
)

// pedidoRequest is the write body for orders.
type pedidoRequest struct {
	ClienteID   int64  `json:"cliente_id"   validate:"gt=0"`
	FechaPedido string `json:"fecha_pedido" validate:"required"`
}

// fecha parses the order date, accepting both the date-only form the
// admin form submits and the full timestamp form the store emits.
func (r *pedidoRequest) fecha() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", r.FechaPedido); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", r.FechaPedido); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("fecha_pedido no válida: %q", r.FechaPedido)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondRecords(w, orders)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[pedidoRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	fecha, err := req.fecha()
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.CreateOrder(r.Context(), req.ClienteID, fecha); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusCreated, "Pedido creado correctamente")
}

func (h *HTTPTransport) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	req, err := decodeAndValidate[pedidoRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	fecha, err := req.fecha()
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.UpdateOrder(r.Context(), id, req.ClienteID, fecha); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Pedido actualizado correctamente")
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Pedido eliminado correctamente")
}
