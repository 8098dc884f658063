package order

import "fmt"

// CustomerInfo is the customer snapshot embedded in list responses.
type CustomerInfo struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// Order represents an order record in the remote store. OrderDate is kept
// as the wire string: the store may return either a plain date or a full
// timestamp ("2024-05-01 10:00:00"), and the form layer only ever needs
// the date prefix.
type Order struct {
	ID         int64        `json:"id"`
	CustomerID int64        `json:"cliente_id"`
	OrderDate  string       `json:"fecha_pedido"`
	Customer   CustomerInfo `json:"cliente"`
}

// EntityID returns the server-assigned identifier.
func (o Order) EntityID() int64 { return o.ID }

// Label returns the value shown in confirmation prompts.
func (o Order) Label() string {
	return fmt.Sprintf("#%d (%s)", o.ID, o.Customer.Name)
}

// DateOnly truncates a store timestamp to its date prefix.
func DateOnly(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}

	return ts
}
