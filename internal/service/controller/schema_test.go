package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int64
	Name string
}

func (w widget) EntityID() int64 { return w.ID }
func (w widget) Label() string   { return w.Name }

func productLikeSchema() Schema[widget] {
	return Schema[widget]{
		Title:    "el producto",
		Endpoint: "/productos",
		Fields: []Field{
			{Name: "nombre", Kind: Text, Required: true},
			{Name: "precio", Kind: Decimal, Required: true},
			{Name: "descripcion", Kind: Text},
		},
	}
}

func TestSchemaBodyCoercesDecimal(t *testing.T) {
	body, err := productLikeSchema().Body(Draft{
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

func TestSchemaBodyCoercesInteger(t *testing.T) {
	s := Schema[widget]{
		Fields: []Field{
			{Name: "cliente_id", Kind: Integer, Required: true},
			{Name: "fecha_pedido", Kind: Date, Required: true},
		},
	}

	body, err := s.Body(Draft{"cliente_id": "3", "fecha_pedido": "2024-05-01"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), body["cliente_id"])
	assert.Equal(t, "2024-05-01", body["fecha_pedido"])
}

func TestSchemaBodyRequiredFieldEmpty(t *testing.T) {
	_, err := productLikeSchema().Body(Draft{"nombre": "Mouse"})

	assert.ErrorIs(t, err, ErrFieldRequired)
}

func TestSchemaBodyRejectsBadNumber(t *testing.T) {
	_, err := productLikeSchema().Body(Draft{"nombre": "Mouse", "precio": "gratis"})

	assert.Error(t, err)
}
