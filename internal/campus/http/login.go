package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles login.
//
//	@Summary		Log in
//	@Description	Verifies handle and password and returns a fresh identity token. The handle matches case-insensitively. Pending and rejected identities are refused even with correct credentials.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	campussdk.AuthResponse	"Token and identity"
//	@Failure		401		{object}	campussdk.ErrorResponse	"Invalid credentials"
//	@Failure		403		{object}	campussdk.ErrorResponse	"Pending approval or rejected"
//	@Failure		500		{object}	campussdk.ErrorResponse	"Internal server error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req campussdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		campussdk.ErrInvalidRequest.WriteError(w)
		return
	}

	res, err := h.AccountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			campussdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrPendingApproval):
			campussdk.ErrPendingApproval.WriteError(w)
		case errors.Is(err, service.ErrAccountRejected):
			campussdk.ErrAccountRejected.WriteError(w)
		default:
			l.Error("login failed", "err", err)
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.AuthResponse{
		Token: res.Token,
		User:  toSDKUser(res.User),
	})
}
