package customer

// Customer represents a customer record in the remote store.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"telefono,omitempty"`
}

// EntityID returns the server-assigned identifier.
func (c Customer) EntityID() int64 { return c.ID }

// Label returns the value shown in confirmation prompts.
func (c Customer) Label() string { return c.Name }
