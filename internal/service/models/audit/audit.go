package audit

import "time"

// Actions recorded for store mutations.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is the payload published for every successful store mutation.
type Event struct {
	Entity   string    `json:"entity"`
	Action   string    `json:"action"`
	EntityID int64     `json:"entityId"`
	At       time.Time `json:"at"`
}

// Message is one pending row of the audit outbox.
type Message struct {
	ID           int64
	ExchangeName string
	RoutingKey   string
	ContentType  string
	Payload      []byte
	RetryCount   int
}
