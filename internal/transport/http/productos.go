package httptransport

import (
	"net/http"

	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
)

// productoRequest is the write body for products. The admin client has
// already coerced precio from its display string.
type productoRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Precio      float64 `json:"precio" validate:"gte=0"`
	Descripcion string  `json:"descripcion"`
}

// toModel converts productoRequest to the product model.
func (r *productoRequest) toModel() product.Product {
	return product.Product{
		Name:        r.Nombre,
		Price:       r.Precio,
		Description: r.Descripcion,
	}
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondRecords(w, products)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAndValidate[productoRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.CreateProduct(r.Context(), req.toModel()); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusCreated, "Producto creado correctamente")
}

func (h *HTTPTransport) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	req, err := decodeAndValidate[productoRequest](r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())

		return
	}

	if err := h.service.UpdateProduct(r.Context(), id, req.toModel()); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Producto actualizado correctamente")
}

func (h *HTTPTransport) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "identificador no válido")

		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, r, err)

		return
	}

	respondMessage(w, http.StatusOK, "Producto eliminado correctamente")
}
