package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
	"github.com/jortega-dev/tienda-admin/internal/service/services/storesvc"
)

type fakeService struct {
	customers  []customer.Customer
	products   []product.Product
	orders     []order.Order
	orderLines []orderline.OrderLine

	createdCustomers []customer.Customer
	updatedCustomer  int64
	deletedCustomer  int64

	createdOrderCustomer int64
	createdOrderDate     time.Time

	createdLineQuantity int

	err error
}

func (f *fakeService) ListCustomers(context.Context) ([]customer.Customer, error) {
	return f.customers, f.err
}

func (f *fakeService) CreateCustomer(_ context.Context, c customer.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.createdCustomers = append(f.createdCustomers, c)

	return nil
}

func (f *fakeService) UpdateCustomer(_ context.Context, id int64, _ customer.Customer) error {
	f.updatedCustomer = id

	return f.err
}

func (f *fakeService) DeleteCustomer(_ context.Context, id int64) error {
	f.deletedCustomer = id

	return f.err
}

func (f *fakeService) ListProducts(context.Context) ([]product.Product, error) {
	return f.products, f.err
}

func (f *fakeService) CreateProduct(context.Context, product.Product) error { return f.err }

func (f *fakeService) UpdateProduct(context.Context, int64, product.Product) error { return f.err }

func (f *fakeService) DeleteProduct(context.Context, int64) error { return f.err }

func (f *fakeService) ListOrders(context.Context) ([]order.Order, error) {
	return f.orders, f.err
}

func (f *fakeService) CreateOrder(_ context.Context, customerID int64, orderDate time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.createdOrderCustomer = customerID
	f.createdOrderDate = orderDate

	return nil
}

func (f *fakeService) UpdateOrder(context.Context, int64, int64, time.Time) error { return f.err }

func (f *fakeService) DeleteOrder(context.Context, int64) error { return f.err }

func (f *fakeService) ListOrderLines(context.Context) ([]orderline.OrderLine, error) {
	return f.orderLines, f.err
}

func (f *fakeService) CreateOrderLine(_ context.Context, _, _ int64, quantity int) error {
	if f.err != nil {
		return f.err
	}
	f.createdLineQuantity = quantity

	return nil
}

func (f *fakeService) UpdateOrderLine(context.Context, int64, int64, int64, int) error {
	return f.err
}

func (f *fakeService) DeleteOrderLine(context.Context, int64) error { return f.err }

func newTestTransport(svc *fakeService) *HTTPTransport {
	h := NewHTTPTransport(svc)
	h.RegisterRoutes()

	return h
}

func doRequest(h *HTTPTransport, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	return payload
}

func TestListCustomersEnvelope(t *testing.T) {
	h := newTestTransport(&fakeService{customers: []customer.Customer{
		{ID: 1, Name: "Ana", Email: "ana@example.com"},
	}})

	rec := doRequest(h, http.MethodGet, "/api/clientes/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	records, ok := payload["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	first := records[0].(map[string]any)
	assert.Equal(t, "Ana", first["nombre"])
}

func TestCreateCustomer(t *testing.T) {
	svc := &fakeService{}
	h := newTestTransport(svc)

	rec := doRequest(h, http.MethodPost, "/api/clientes/",
		`{"nombre": "Ana", "email": "ana@example.com", "telefono": "555-0001"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Cliente creado correctamente", decodeBody(t, rec)["message"])
	require.Len(t, svc.createdCustomers, 1)
	assert.Equal(t, "Ana", svc.createdCustomers[0].Name)
	assert.Equal(t, "555-0001", svc.createdCustomers[0].Phone)
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	svc := &fakeService{}
	h := newTestTransport(svc)

	rec := doRequest(h, http.MethodPost, "/api/clientes/",
		`{"nombre": "Ana", "email": "no-es-un-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.createdCustomers)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	h := newTestTransport(&fakeService{err: postgres.ErrNotFound})

	rec := doRequest(h, http.MethodPut, "/api/clientes/99",
		`{"nombre": "Ana", "email": "ana@example.com"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "registro no encontrado", decodeBody(t, rec)["message"])
}

func TestDeleteCustomer(t *testing.T) {
	svc := &fakeService{}
	h := newTestTransport(svc)

	rec := doRequest(h, http.MethodDelete, "/api/clientes/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), svc.deletedCustomer)
}

func TestDeleteCustomerBadID(t *testing.T) {
	h := newTestTransport(&fakeService{})

	rec := doRequest(h, http.MethodDelete, "/api/clientes/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductNegativePrice(t *testing.T) {
	h := newTestTransport(&fakeService{})

	rec := doRequest(h, http.MethodPost, "/api/productos/",
		`{"nombre": "Mouse", "precio": -5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderParsesDateOnly(t *testing.T) {
	svc := &fakeService{}
	h := newTestTransport(svc)

	rec := doRequest(h, http.MethodPost, "/api/pedidos/",
		`{"cliente_id": 3, "fecha_pedido": "2024-05-01"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(3), svc.createdOrderCustomer)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), svc.createdOrderDate)
}

func TestCreateOrderAcceptsFullTimestamp(t *testing.T) {
	svc := &fakeService{}
	h := newTestTransport(svc)

	rec := doRequest(h, http.MethodPost, "/api/pedidos/",
		`{"cliente_id": 3, "fecha_pedido": "2024-05-01 10:30:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 10, svc.createdOrderDate.Hour())
}

func TestCreateOrderBadDate(t *testing.T) {
	h := newTestTransport(&fakeService{})

	rec := doRequest(h, http.MethodPost, "/api/pedidos/",
		`{"cliente_id": 3, "fecha_pedido": "mayo"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderLineInvalidReference(t *testing.T) {
	h := newTestTransport(&fakeService{err: storesvc.ErrInvalidReference})

	rec := doRequest(h, http.MethodPost, "/api/detalles-pedidos/",
		`{"pedido_id": 99, "producto_id": 1, "cantidad": 2}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "la referencia indicada no existe", decodeBody(t, rec)["message"])
}

func TestCreateOrderLine(t *testing.T) {
	svc := &fakeService{}
	h := newTestTransport(svc)

	rec := doRequest(h, http.MethodPost, "/api/detalles-pedidos/",
		`{"pedido_id": 4, "producto_id": 2, "cantidad": 3}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 3, svc.createdLineQuantity)
}

func TestListOrderLinesIncludesSnapshots(t *testing.T) {
	h := newTestTransport(&fakeService{orderLines: []orderline.OrderLine{
		{
			ID:        1,
			OrderID:   4,
			ProductID: 2,
			Quantity:  3,
			Product:   orderline.ProductInfo{Name: "Mouse", Price: 19.99},
			Order:     orderline.OrderInfo{OrderDate: "2024-05-01 10:00:00", CustomerName: "Ana"},
			Subtotal:  59.97,
		},
	}})

	rec := doRequest(h, http.MethodGet, "/api/detalles-pedidos/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	records := decodeBody(t, rec)["records"].([]any)
	require.Len(t, records, 1)
	first := records[0].(map[string]any)
	assert.Equal(t, 59.97, first["subtotal"])
	producto := first["producto"].(map[string]any)
	assert.Equal(t, "Mouse", producto["nombre"])
}

func TestServiceFailureIsInternalError(t *testing.T) {
	h := newTestTransport(&fakeService{err: context.DeadlineExceeded})

	rec := doRequest(h, http.MethodGet, "/api/productos/", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error interno del servidor", decodeBody(t, rec)["message"])
}
