package orderline

import "fmt"

// ProductInfo is the product snapshot embedded in list responses.
type ProductInfo struct {
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

// OrderInfo is the order snapshot embedded in list responses.
type OrderInfo struct {
	OrderDate    string `json:"fecha_pedido"`
	CustomerName string `json:"cliente_nombre"`
}

// OrderLine represents one line of an order. Subtotal is computed by the
// store (quantity times unit price) and never sent on writes.
type OrderLine struct {
	ID        int64       `json:"id"`
	OrderID   int64       `json:"pedido_id"`
	ProductID int64       `json:"producto_id"`
	Quantity  int         `json:"cantidad"`
	Product   ProductInfo `json:"producto"`
	Order     OrderInfo   `json:"pedido"`
	Subtotal  float64     `json:"subtotal"`
}

// EntityID returns the server-assigned identifier.
func (l OrderLine) EntityID() int64 { return l.ID }

// Label returns the value shown in confirmation prompts.
func (l OrderLine) Label() string { return fmt.Sprintf("#%d", l.ID) }
