package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linkhive/apiserver/internal/services"
	"github.com/linkhive/apiserver/internal/store"
	"github.com/linkhive/apiserver/types"
	"github.com/rs/zerolog/log"
)

// CustomizationHandler provides the owner's save/load endpoints.
type CustomizationHandler struct {
	service *services.CustomizationService
	dev     bool
}

// NewCustomizationHandler constructs a handler with the provided service.
// dev enables error details in responses.
func NewCustomizationHandler(service *services.CustomizationService, dev bool) *CustomizationHandler {
	return &CustomizationHandler{service: service, dev: dev}
}

// CustomizationRouter registers the customization routes. All routes
// require authentication.
func CustomizationRouter(
	r chi.Router,
	service *services.CustomizationService,
	authMiddleware func(http.Handler) http.Handler,
	dev bool,
) {
	handler := NewCustomizationHandler(service, dev)

	r.Use(authMiddleware)
	r.Get("/", handler.Load)
	r.Post("/", handler.Save)
}

// Load returns the owner's current customization payload.
func (h *CustomizationHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, codeAuthInvalidToken, "unauthorized")
		return
	}

	payload, err := h.service.Load(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// A verified session pointing at a missing user row is a
			// consistency fault; log it and fail the request.
			log.Error().Int("user_id", userID).Msg("authenticated user has no user row")
			writeError(w, http.StatusNotFound, codeUserNotFound, "user not found")
			return
		}
		log.Error().Err(err).Int("user_id", userID).Msg("failed to load customization")
		h.writeServerError(w, "server error while fetching customization", err)
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

// Save validates and persists the submitted customization payload.
func (h *CustomizationHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, codeAuthInvalidToken, "unauthorized")
		return
	}

	var payload types.Customization
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
		return
	}

	username, err := h.service.Save(r.Context(), userID, payload)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeError(w, http.StatusBadRequest, validationErr.Code, validationErr.Message)
		case errors.Is(err, store.ErrNotFound):
			log.Error().Int("user_id", userID).Msg("authenticated user has no user row")
			writeError(w, http.StatusNotFound, codeUserNotFound, "user not found")
		default:
			log.Error().Err(err).Int("user_id", userID).Msg("failed to save customization")
			h.writeServerError(w, "server error while saving customization", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, SaveCustomizationResponse{
		Success:  true,
		Message:  "Customization saved successfully",
		Username: username,
	})
}

// SaveCustomizationResponse confirms a save and carries the username the
// client navigates to.
type SaveCustomizationResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

func (h *CustomizationHandler) writeServerError(w http.ResponseWriter, message string, err error) {
	if h.dev {
		writeErrorDetails(w, http.StatusInternalServerError, codeStorageError, message, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, codeStorageError, message)
}
