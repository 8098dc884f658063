package httptransport

import (
	"net/http"

	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
)

// clienteRequest is the write body for customers.
type clienteRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Telefono string `json:"telefono"`
}

// toModel converts clienteRequest to the customer model.
func (r *clienteRequest) toModel() customer.Customer {
	return customer.Customer{
		Name:  r.Nombre,
		Email: r.Email,
		Phone: r.Telefono,
	}
}

func (h *HTTPTransport) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondRecords(w, customers)
}

func (h *HTTPTransport) createCustomer(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[clienteRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.CreateCustomer(r.Context(), req.toModel()); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusCreated, "Cliente creado correctamente")
}

func (h *HTTPTransport) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	req, err := decodeAndValidate[clienteRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.UpdateCustomer(r.Context(), id, req.toModel()); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Cliente actualizado correctamente")
}

func (h *HTTPTransport) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Cliente eliminado correctamente")
}
