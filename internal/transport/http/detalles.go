package httptransport

import (
	"net/http"
)

// detalleRequest is the write body for order lines.
type detalleRequest struct {
	PedidoID   int64 `json:"pedido_id"   validate:"gt=0"`
	ProductoID int64 `json:"producto_id" validate:"gt=0"`
	Cantidad   int   `json:"cantidad"    validate:"gt=0"`
}

func (h *HTTPTransport) listOrderLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.service.ListOrderLines(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondRecords(w, lines)
}

func (h *HTTPTransport) createOrderLine(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[detalleRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.CreateOrderLine(r.Context(), req.PedidoID, req.ProductoID, req.Cantidad); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusCreated, "Detalle creado correctamente")
}

func (h *HTTPTransport) updateOrderLine(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	req, err := decodeAndValidate[detalleRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.UpdateOrderLine(r.Context(), id, req.PedidoID, req.ProductoID, req.Cantidad); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Detalle actualizado correctamente")
}

func (h *HTTPTransport) deleteOrderLine(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	if err := h.service.DeleteOrderLine(r.Context(), id); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Detalle eliminado correctamente")
}
