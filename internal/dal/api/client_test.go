package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type producto struct {
	ID    int64   `json:"id"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

func newTestResource(t *testing.T, handler http.HandlerFunc) *Resource[producto] {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := MustNewClient(WithBaseURL(server.URL))

	return NewResource[producto](client, "/productos")
}

func TestResourceList(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/productos", r.URL.Path)
		w.Write([]byte(`{"records": [{"id": 1, "nombre": "Mouse", "precio": 19.99}]}`))
	})

	records, err := resource.List(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, producto{ID: 1, Name: "Mouse", Price: 19.99}, records[0])
}

func TestResourceListMissingRecordsField(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message": "sin datos"}`))
	})

	records, err := resource.List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestResourceListMalformedRecords(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"records": "no es una lista"}`))
	})

	records, err := resource.List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, records)
}

func TestResourceListServerRejection(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "error interno del servidor"}`))
	})

	records, err := resource.List(context.Background())
	require.Error(t, err)

	assert.Empty(t, records)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Equal(t, "error interno del servidor", UserMessage(err))
}

func TestResourceCreateSendsCoercedBody(t *testing.T) {
	var received map[string]any
	resource := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "producto creado correctamente"}`))
	})

	message, err := resource.Create(context.Background(), map[string]any{"nombre": "Mouse", "precio": 19.99})
	require.NoError(t, err)

	assert.Equal(t, "producto creado correctamente", message)
	assert.Equal(t, 19.99, received["precio"])
}

func TestResourceCreateAcceptsPlain200(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message": "cliente creado correctamente"}`))
	})

	message, err := resource.Create(context.Background(), map[string]any{"nombre": "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "cliente creado correctamente", message)
}

func TestResourceUpdatePath(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/productos/7", r.URL.Path)
		w.Write([]byte(`{"message": "producto actualizado correctamente"}`))
	})

	message, err := resource.Update(context.Background(), 7, map[string]any{"nombre": "Mouse"})
	require.NoError(t, err)

	assert.Equal(t, "producto actualizado correctamente", message)
}

func TestResourceRemovePath(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/productos/7", r.URL.Path)
		w.Write([]byte(`{"message": "producto eliminado correctamente"}`))
	})

	message, err := resource.Remove(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "producto eliminado correctamente", message)
}

func TestResourceWriteRejection(t *testing.T) {
	resource := newTestResource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "la referencia indicada no existe"}`))
	})

	_, err := resource.Create(context.Background(), map[string]any{"pedido_id": 99})
	require.Error(t, err)

	assert.Equal(t, "la referencia indicada no existe", UserMessage(err))
}

func TestResourceConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := MustNewClient(WithBaseURL(server.URL))
	resource := NewResource[producto](client, "/productos")

	records, err := resource.List(context.Background())
	require.Error(t, err)

	assert.Empty(t, records)
	assert.Equal(t, "no se pudo conectar con el servidor", UserMessage(err))
}
