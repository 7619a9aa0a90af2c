package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"moviles/internal/model"
	"moviles/internal/service"

	"github.com/rs/zerolog"
)

// ProductoHandler handles producto-related HTTP requests.
type ProductoHandler struct {
	service service.ProductoService
	logger  zerolog.Logger
}

// NewProductoHandler creates a new producto handler.
func NewProductoHandler(service service.ProductoService, logger zerolog.Logger) *ProductoHandler {
	return &ProductoHandler{
		service: service,
		logger:  logger.With().Str("handler", "producto").Logger(),
	}
}

// List handles GET /api/productos requests.
func (h *ProductoHandler) List(w http.ResponseWriter, r *http.Request) {
	productos, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve productos", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, productos, h.logger)
}

// Get handles GET /api/productos/{id} requests.
func (h *ProductoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid producto ID", h.logger)
		return
	}

	producto, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve producto", h.logger)
		return
	}

	if producto == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, producto, h.logger)
}

// Create handles POST /api/productos requests.
// Any id in the payload is ignored; the store assigns one.
func (h *ProductoHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeProducto(w, r)
	if !ok {
		return
	}
	payload.ID = 0

	created, err := h.service.Save(r.Context(), payload)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to create producto", h.logger)
		return
	}

	h.logger.Info().Int64("producto_id", created.ID).Msg("producto created")

	writeJSON(w, http.StatusOK, created, h.logger)
}

// Update handles PUT /api/productos/{id} requests.
func (h *ProductoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid producto ID", h.logger)
		return
	}

	payload, ok := h.decodeProducto(w, r)
	if !ok {
		return
	}

	existing, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve producto", h.logger)
		return
	}

	if existing == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	existing.Overwrite(*payload)

	updated, err := h.service.Save(r.Context(), existing)
	if err != nil {
		if errors.Is(err, model.ErrProductoNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to update producto", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated, h.logger)
}

// Delete handles DELETE /api/productos/{id} requests.
// Deleting an ID that does not exist succeeds like any other delete.
func (h *ProductoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid producto ID", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to delete producto", h.logger)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// decodeProducto reads a Producto body. A JSON null is rejected like
// malformed JSON.
func (h *ProductoHandler) decodeProducto(w http.ResponseWriter, r *http.Request) (*model.Producto, bool) {
	var payload *model.Producto
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return nil, false
	}
	return payload, true
}
