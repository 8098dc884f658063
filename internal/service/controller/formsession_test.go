package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormSessionStartsCreating(t *testing.T) {
	s := NewFormSession()

	assert.Equal(t, Creating, s.Mode())
	_, editing := s.EditingID()
	assert.False(t, editing)
	assert.Empty(t, s.Draft())
}

func TestFormSessionBeginEditSeedsDraft(t *testing.T) {
	s := NewFormSession()
	s.SetField("nombre", "borrador")

	s.BeginEdit(7, Draft{"nombre": "Ana", "email": "ana@ejemplo.com"})

	assert.Equal(t, Editing, s.Mode())
	id, editing := s.EditingID()
	assert.True(t, editing)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "Ana", s.Field("nombre"))
	assert.Equal(t, "ana@ejemplo.com", s.Field("email"))
}

func TestFormSessionResetIsIdempotent(t *testing.T) {
	s := NewFormSession()
	s.BeginEdit(3, Draft{"nombre": "Ana"})

	s.Reset()
	first := s.Draft()
	firstMode := s.Mode()

	s.Reset()

	assert.Equal(t, firstMode, s.Mode())
	assert.Equal(t, Creating, s.Mode())
	assert.Equal(t, first, s.Draft())
	assert.Empty(t, s.Draft())
	_, editing := s.EditingID()
	assert.False(t, editing)
}

func TestFormSessionDraftIsACopy(t *testing.T) {
	s := NewFormSession()
	s.SetField("nombre", "Ana")

	draft := s.Draft()
	draft["nombre"] = "mutado"

	assert.Equal(t, "Ana", s.Field("nombre"))
}
