package controller

import (
	"errors"
	"fmt"
	"strconv"
)

// Entity is implemented by every record model managed by a controller.
type Entity interface {
	EntityID() int64
	Label() string
}

// Draft holds not-yet-submitted field values keyed by wire field name.
// Values are display-layer strings, the way form inputs hold them.
type Draft map[string]string

// FieldKind drives the string coercion applied before transmission.
type FieldKind int

const (
	Text FieldKind = iota
	Integer
	Decimal
	Date
)

// Field describes one form field of an entity schema.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// ErrFieldRequired reports a required field left empty. The form layer
// marks such fields required, so hitting this is a programming gap, not a
// normal runtime condition.
var ErrFieldRequired = errors.New("required field is empty")

// Schema is the per-entity configuration a controller is instantiated
// with: where the collection lives, which fields the form carries and how
// an existing record seeds the form for editing.
type Schema[T Entity] struct {
	// Title is the lowercase display name used in user-facing messages.
	Title string
	// Endpoint is the resource path on the store, e.g. "/clientes".
	Endpoint string
	Fields   []Field
	// Seed maps a record to the display strings shown when editing it.
	Seed func(T) Draft
}

// Body coerces a draft into the JSON body the store expects. Numeric
// fields are parsed from their display strings; text and date fields are
// transmitted verbatim.
func (s Schema[T]) Body(d Draft) (map[string]any, error) {
	body := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		value := d[f.Name]
		if value == "" {
			if f.Required {
				return nil, fmt.Errorf("%s: %w", f.Name, ErrFieldRequired)
			}
			if f.Kind == Text || f.Kind == Date {
				body[f.Name] = value
			}

			continue
		}

		switch f.Kind {
		case Integer:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: not a valid integer: %w", f.Name, err)
			}
			body[f.Name] = n
		case Decimal:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: not a valid number: %w", f.Name, err)
			}
			body[f.Name] = n
		default:
			body[f.Name] = value
		}
	}

	return body, nil
}
