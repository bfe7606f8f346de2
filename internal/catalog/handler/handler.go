// Package handler exposes the catalog over REST.
package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/internal/catalog/service"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/logger"
)

// RootMessage is served on GET /.
const RootMessage = "Media Tracker API is running"

// MediaHandler serves the media and lookup endpoints.
type MediaHandler struct {
	catalog service.MediaCatalog
	lookup  service.MetadataLookup
	logger  interfaces.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(catalog service.MediaCatalog, lookup service.MetadataLookup, logger interfaces.Logger) *MediaHandler {
	return &MediaHandler{
		catalog: catalog,
		lookup:  lookup,
		logger:  logger,
	}
}

// log returns the request scoped logger, which carries the request id.
func (h *MediaHandler) log(r *http.Request) interfaces.Logger {
	return logger.FromContextOr(r.Context(), h.logger)
}

// Root answers the liveness banner.
func (h *MediaHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(RootMessage))
}

// Health always reports healthy while the process serves requests.
func (h *MediaHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, StatusResponse{Status: "healthy"}, h.log(r))
}

// Ready reports whether the store answers.
func (h *MediaHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Ping(r.Context()); err != nil {
		h.log(r).Warn("Readiness check failed", interfaces.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"}, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{Status: "ready"}, h.log(r))
}

// ListMedia handles GET /api/media
func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, items, h.log(r))
}

// GetMedia handles GET /api/media/{id}
func (h *MediaHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mediaID(w, r)
	if !ok {
		return
	}
	item, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, item, h.log(r))
}

// CreateMedia handles POST /api/media
func (h *MediaHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var draft domain.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		respondError(w, err, h.log(r))
		return
	}
	item, err := h.catalog.Create(r.Context(), draft)
	if err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusCreated, item, h.log(r))
}

// UpdateMedia handles PUT /api/media/{id}
func (h *MediaHandler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mediaID(w, r)
	if !ok {
		return
	}
	var draft domain.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		respondError(w, err, h.log(r))
		return
	}
	item, err := h.catalog.Update(r.Context(), id, draft)
	if err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, item, h.log(r))
}

// PatchMedia handles PATCH /api/media/{id}
func (h *MediaHandler) PatchMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mediaID(w, r)
	if !ok {
		return
	}
	var patch domain.MediaPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		respondError(w, err, h.log(r))
		return
	}
	item, err := h.catalog.Patch(r.Context(), id, patch)
	if err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, item, h.log(r))
}

// DeleteMedia handles DELETE /api/media/{id}
func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := h.mediaID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.Delete(r.Context(), id); err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Media deleted"}, h.log(r))
}

// Lookup handles GET /api/lookup?query=
func (h *MediaHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	candidates, err := h.lookup.Search(r.Context(), query)
	if err != nil {
		respondError(w, err, h.log(r))
		return
	}
	respondJSON(w, http.StatusOK, candidates, h.log(r))
}

// mediaID parses the {id} path parameter. A malformed id cannot name a
// stored item, so it is answered like an unknown one.
func (h *MediaHandler) mediaID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, domain.ErrMediaNotFound, h.log(r))
		return uuid.Nil, false
	}
	return id, true
}
