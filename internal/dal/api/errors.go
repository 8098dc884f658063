package api

import (
	"errors"
	"fmt"
)

// StatusError is a server rejection: the request reached the store and
// came back with a non-success status. Message carries the store's
// user-facing text when the response body had one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store rejected request (status %d): %s", e.Status, e.Message)
	}

	return fmt.Sprintf("store rejected request (status %d)", e.Status)
}

// UserMessage returns the text to surface to the user for err. Server
// rejections keep the store's message, everything else degrades to a
// generic connection failure.
func UserMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}

	return "no se pudo conectar con el servidor"
}
