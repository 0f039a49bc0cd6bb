package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the system
//	@Description	Creates the very first admin identity on an empty database. Only available while a bootstrap token is configured, and only works once.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.BootstrapRequest	true	"Bootstrap token and admin details"
//	@Success		201		{object}	campussdk.BootstrapResponse	"New admin id"
//	@Failure		400		{object}	campussdk.ErrorResponse		"Invalid request body"
//	@Failure		401		{object}	campussdk.ErrorResponse		"Wrong token or already bootstrapped"
//	@Failure		404		{object}	campussdk.ErrorResponse		"Bootstrap not enabled"
//	@Failure		500		{object}	campussdk.ErrorResponse		"Failed to create admin"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		campussdk.ErrNotFound.WriteError(w)
		return
	}

	// 2. Parse request body
	var req campussdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		campussdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Username == "" || req.Password == "" {
		campussdk.ErrInvalidRequest.WriteError(w)
		return
	}

	// 3. Perform bootstrap
	adminID, err := h.BootstrapService.Bootstrap(r.Context(), req.Token, service.BootstrapData{
		Username:  strings.TrimSpace(req.Username),
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready),
			errors.Is(err, service.ErrBootstrapUnauthorized):
			(&campussdk.APIError{
				StatusCode:  http.StatusUnauthorized,
				Code:        "unauthorized",
				Description: "bootstrap not authorized",
			}).WriteError(w)
		default:
			l.Error("bootstrap failed", "err", err)
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, campussdk.BootstrapResponse{AdminID: adminID})
}
