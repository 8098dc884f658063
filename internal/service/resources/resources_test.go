package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/tienda-admin/internal/service/controller"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
)

func TestOrderSchemaSeedTruncatesTimestamp(t *testing.T) {
	seed := OrderSchema().Seed(order.Order{
		ID:         4,
		CustomerID: 3,
		OrderDate:  "2024-05-01 10:00:00",
	})

	assert.Equal(t, controller.Draft{
		"cliente_id":   "3",
		"fecha_pedido": "2024-05-01",
	}, seed)
}

func TestOrderSchemaSeedKeepsDateOnlyValue(t *testing.T) {
	seed := OrderSchema().Seed(order.Order{CustomerID: 1, OrderDate: "2024-05-01"})

	assert.Equal(t, "2024-05-01", seed["fecha_pedido"])
}

func TestProductSchemaBodyParsesPrice(t *testing.T) {
	body, err := ProductSchema().Body(controller.Draft{
		"nombre":      "Mouse",
		"precio":      "19.99",
		"descripcion": "",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"nombre":      "Mouse",
		"precio":      19.99,
		"descripcion": "",
	}, body)
}

func TestProductSchemaSeedFormatsPrice(t *testing.T) {
	seed := ProductSchema().Seed(product.Product{Name: "Mouse", Price: 19.99})

	assert.Equal(t, "19.99", seed["precio"])
}

func TestOrderLineSchemaBodyCoercesForeignKeys(t *testing.T) {
	body, err := OrderLineSchema().Body(controller.Draft{
		"pedido_id":   "4",
		"producto_id": "2",
		"cantidad":    "3",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"pedido_id":   int64(4),
		"producto_id": int64(2),
		"cantidad":    int64(3),
	}, body)
}

func TestOrderLineSchemaSeedStringifiesIdentifiers(t *testing.T) {
	seed := OrderLineSchema().Seed(orderline.OrderLine{
		OrderID:   4,
		ProductID: 2,
		Quantity:  3,
	})

	assert.Equal(t, controller.Draft{
		"pedido_id":   "4",
		"producto_id": "2",
		"cantidad":    "3",
	}, seed)
}
