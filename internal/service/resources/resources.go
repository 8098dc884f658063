package resources

import (
	"context"
	"strconv"

	"github.com/jortega-dev/tienda-admin/internal/dal/api"
	"github.com/jortega-dev/tienda-admin/internal/service/controller"
	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
)

// Store resource paths.
const (
	CustomersPath  = "/clientes"
	ProductsPath   = "/productos"
	OrdersPath     = "/pedidos"
	OrderLinesPath = "/detalles-pedidos"
)

// CustomerSchema is the form configuration for customers.
func CustomerSchema() controller.Schema[customer.Customer] {
	return controller.Schema[customer.Customer]{
		Title:    "el cliente",
		Endpoint: CustomersPath,
		Fields: []controller.Field{
			{Name: "nombre", Kind: controller.Text, Required: true},
			{Name: "email", Kind: controller.Text, Required: true},
			{Name: "telefono", Kind: controller.Text},
		},
		Seed: func(c customer.Customer) controller.Draft {
			return controller.Draft{
				"nombre":   c.Name,
				"email":    c.Email,
				"telefono": c.Phone,
			}
		},
	}
}

// ProductSchema is the form configuration for products. The price is
// edited as text and parsed to a number on submit.
func ProductSchema() controller.Schema[product.Product] {
	return controller.Schema[product.Product]{
		Title:    "el producto",
		Endpoint: ProductsPath,
		Fields: []controller.Field{
			{Name: "nombre", Kind: controller.Text, Required: true},
			{Name: "precio", Kind: controller.Decimal, Required: true},
			{Name: "descripcion", Kind: controller.Text},
		},
		Seed: func(p product.Product) controller.Draft {
			return controller.Draft{
				"nombre":      p.Name,
				"precio":      strconv.FormatFloat(p.Price, 'f', -1, 64),
				"descripcion": p.Description,
			}
		},
	}
}

// OrderSchema is the form configuration for orders. Editing seeds the
// customer foreign key as a string and truncates the order date to its
// date-only prefix.
func OrderSchema() controller.Schema[order.Order] {
	return controller.Schema[order.Order]{
		Title:    "el pedido",
		Endpoint: OrdersPath,
		Fields: []controller.Field{
			{Name: "cliente_id", Kind: controller.Integer, Required: true},
			{Name: "fecha_pedido", Kind: controller.Date, Required: true},
		},
		Seed: func(o order.Order) controller.Draft {
			return controller.Draft{
				"cliente_id":   strconv.FormatInt(o.CustomerID, 10),
				"fecha_pedido": order.DateOnly(o.OrderDate),
			}
		},
	}
}

// OrderLineSchema is the form configuration for order lines.
func OrderLineSchema() controller.Schema[orderline.OrderLine] {
	return controller.Schema[orderline.OrderLine]{
		Title:    "el detalle",
		Endpoint: OrderLinesPath,
		Fields: []controller.Field{
			{Name: "pedido_id", Kind: controller.Integer, Required: true},
			{Name: "producto_id", Kind: controller.Integer, Required: true},
			{Name: "cantidad", Kind: controller.Integer, Required: true},
		},
		Seed: func(l orderline.OrderLine) controller.Draft {
			return controller.Draft{
				"pedido_id":   strconv.FormatInt(l.OrderID, 10),
				"producto_id": strconv.FormatInt(l.ProductID, 10),
				"cantidad":    strconv.Itoa(l.Quantity),
			}
		},
	}
}

// Set bundles the four controllers plus the reference caches backing the
// foreign-key dropdowns. Reference lists are fetched independently of the
// primary lists and never block them.
type Set struct {
	Customers  *controller.Controller[customer.Customer]
	Products   *controller.Controller[product.Product]
	Orders     *controller.Controller[order.Order]
	OrderLines *controller.Controller[orderline.OrderLine]

	CustomerRefs *controller.ListCache[customer.Customer]
	OrderRefs    *controller.ListCache[order.Order]
	ProductRefs  *controller.ListCache[product.Product]
}

// NewSet instantiates every resource controller over one store client.
func NewSet(client *api.Client, gate controller.Gate, notifier controller.Notifier) *Set {
	customers := api.NewResource[customer.Customer](client, CustomersPath)
	products := api.NewResource[product.Product](client, ProductsPath)
	orders := api.NewResource[order.Order](client, OrdersPath)
	orderLines := api.NewResource[orderline.OrderLine](client, OrderLinesPath)

	s := &Set{
		CustomerRefs: controller.NewListCache[customer.Customer](),
		OrderRefs:    controller.NewListCache[order.Order](),
		ProductRefs:  controller.NewListCache[product.Product](),
	}

	s.Customers = controller.NewController(CustomerSchema(), customers, gate, notifier)
	s.Products = controller.NewController(ProductSchema(), products, gate, notifier)
	s.Orders = controller.NewController(OrderSchema(), orders, gate, notifier,
		controller.WithAuxiliary[order.Order](controller.Auxiliary{
			Name: "clientes",
			Fetch: func(ctx context.Context) error {
				return s.CustomerRefs.Refresh(ctx, customers.List)
			},
		}),
	)
	s.OrderLines = controller.NewController(OrderLineSchema(), orderLines, gate, notifier,
		controller.WithAuxiliary[orderline.OrderLine](controller.Auxiliary{
			Name: "pedidos",
			Fetch: func(ctx context.Context) error {
				return s.OrderRefs.Refresh(ctx, orders.List)
			},
		}),
		controller.WithAuxiliary[orderline.OrderLine](controller.Auxiliary{
			Name: "productos",
			Fetch: func(ctx context.Context) error {
				return s.ProductRefs.Refresh(ctx, products.List)
			},
		}),
	)

	return s
}
