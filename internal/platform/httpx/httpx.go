// Package httpx reúne los helpers HTTP compartidos por los handlers de cada módulo.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dog-walk-service/internal/domain/errs"
	"dog-walk-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor traduce la taxonomía de errs a un status HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError escribe el error como texto plano. Los 5xx no exponen detalle al cliente.
func WriteError(w http.ResponseWriter, log logger.Logger, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusInternalServerError:
		log.Error("request failed", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", status)
	case http.StatusServiceUnavailable:
		log.Warn("store unavailable", map[string]any{"error": err.Error()})
		http.Error(w, "service unavailable", status)
	default:
		http.Error(w, err.Error(), status)
	}
}

// DecodeJSON rechaza campos desconocidos.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errs.Invalid("invalid json")
	}
	return nil
}

// IDParam lee un id numérico de la ruta.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Invalid("%s must be a positive integer", name)
	}
	return id, nil
}
