package product

// Product represents a product record in the remote store.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Price       float64 `json:"precio"`
	Description string  `json:"descripcion,omitempty"`
}

// EntityID returns the server-assigned identifier.
func (p Product) EntityID() int64 { return p.ID }

// Label returns the value shown in confirmation prompts.
func (p Product) Label() string { return p.Name }
