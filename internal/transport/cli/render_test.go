package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
)

func TestRenderCustomersEmptyState(t *testing.T) {
	out := &bytes.Buffer{}

	renderCustomers(out, nil)

	assert.Equal(t, "No hay clientes registrados\n", out.String())
}

func TestRenderCustomersTable(t *testing.T) {
	out := &bytes.Buffer{}

	renderCustomers(out, []customer.Customer{
		{ID: 1, Name: "Ana", Email: "ana@example.com"},
	})

	assert.Contains(t, out.String(), "Ana")
	assert.Contains(t, out.String(), "ana@example.com")
	// missing phone renders as a dash
	assert.Contains(t, out.String(), "-")
}

func TestRenderOrderLinesShowsSnapshots(t *testing.T) {
	out := &bytes.Buffer{}

	renderOrderLines(out, []orderline.OrderLine{
		{
			ID:       1,
			OrderID:  4,
			Quantity: 3,
			Product:  orderline.ProductInfo{Name: "Mouse", Price: 19.99},
			Order:    orderline.OrderInfo{CustomerName: "Ana"},
			Subtotal: 59.97,
		},
	})

	assert.Contains(t, out.String(), "#4")
	assert.Contains(t, out.String(), "Mouse")
	assert.Contains(t, out.String(), "$59.97")
}
