package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jortega-dev/tienda-admin/internal/dal/postgres"
	"github.com/jortega-dev/tienda-admin/internal/service/services/storesvc"
)

var validate = validator.New()

// listResponse is the envelope every list endpoint answers with.
type listResponse struct {
	Records any `json:"records"`
}

// messageResponse is the envelope every write endpoint answers with.
type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}

func respondRecords(w http.ResponseWriter, records any) {
	respondJSON(w, http.StatusOK, listResponse{Records: records})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// respondError maps service failures onto the store's status conventions.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, postgres.ErrNotFound):
		respondMessage(w, http.StatusNotFound, "registro no encontrado")
	case errors.Is(err, storesvc.ErrInvalidReference):
		respondMessage(w, http.StatusBadRequest, "la referencia indicada no existe")
	default:
		slog.Error("Error handling request", "path", r.URL.Path, "error", err)
		respondMessage(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeAndValidate decodes a JSON request body and runs struct
// validation on it.
func decodeAndValidate[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if err := validate.Struct(&req); err != nil {
		return req, err
	}

	return req, nil
}
