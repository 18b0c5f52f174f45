package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linkhive/apiserver/internal/services"
	"github.com/linkhive/apiserver/internal/store"
	"github.com/rs/zerolog/log"
)

// PublicProfileHandler serves the anonymous public profile view.
type PublicProfileHandler struct {
	service *services.PublicService
}

func NewPublicProfileHandler(service *services.PublicService) *PublicProfileHandler {
	return &PublicProfileHandler{service: service}
}

// PublicProfileRouter registers the public profile route. No authentication.
func PublicProfileRouter(r chi.Router, service *services.PublicService) {
	handler := NewPublicProfileHandler(service)

	r.Get("/{username}", handler.Resolve)
}

// Resolve renders the denormalized profile for a public username.
func (h *PublicProfileHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		writeError(w, http.StatusNotFound, codeProfileNotFound, "user not found")
		return
	}

	view, err := h.service.Resolve(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, codeProfileNotFound, "user not found")
			return
		}
		log.Error().Err(err).Str("username", username).Msg("failed to resolve public profile")
		writeError(w, http.StatusInternalServerError, codeStorageError, "server error while fetching profile")
		return
	}

	writeJSON(w, http.StatusOK, view)
}
