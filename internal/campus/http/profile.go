package http

import (
	"errors"
	"net/http"

	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
)

type MeHandler struct{}

// ServeHTTP returns the authenticated identity.
//
//	@Summary		Get own identity
//	@Description	Returns the identity behind the bearer token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	campussdk.User			"Authenticated identity"
//	@Failure		401	{object}	campussdk.ErrorResponse	"Invalid or missing token"
//	@Router			/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := identityFromContext(r.Context())
	if !ok {
		campussdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toSDKUser(u))
}

type ProfileHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP returns a public profile by handle.
//
//	@Summary		Get a public profile
//	@Description	Resolves a handle, case-insensitively, to its public identity record.
//	@Tags			Auth
//	@Produce		json
//	@Param			handle	path		string					true	"Handle"
//	@Success		200		{object}	campussdk.User			"Public identity"
//	@Failure		404		{object}	campussdk.ErrorResponse	"No such handle"
//	@Router			/auth/users/{handle} [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")

	u, err := h.AccountService.GetByUsername(r.Context(), handle)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			campussdk.ErrNotFound.WriteError(w)
			return
		}
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKUser(u))
}
