package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
)

type RefreshHandler struct {
	TokenService   *service.TokenService
	AccountService *service.AccountService
}

// ServeHTTP handles token refresh.
//
//	@Summary		Refresh an identity token
//	@Description	Exchanges a signature-valid token for a fresh one. Expired tokens are accepted deliberately; tampered ones are not. The token may arrive as a bearer header or in the body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.RefreshRequest	false	"Token to exchange (alternative to Authorization header)"
//	@Success		200		{object}	campussdk.AuthResponse		"Fresh token and identity"
//	@Failure		401		{object}	campussdk.ErrorResponse		"Token not authentic or identity gone"
//	@Failure		500		{object}	campussdk.ErrorResponse		"Internal server error"
//	@Router			/auth/refresh-token [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := bearerToken(r)
	if raw == "" {
		var req campussdk.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			raw = req.Token
		}
	}
	if raw == "" {
		campussdk.ErrInvalidToken.WriteError(w)
		return
	}

	fresh, err := h.TokenService.Refresh(r.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken),
			errors.Is(err, service.ErrUnknownIdentity):
			campussdk.ErrInvalidToken.WriteError(w)
		default:
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	// Resolve the identity behind the fresh token for the response body.
	u, err := h.TokenService.Authenticate(r.Context(), fresh)
	if err != nil {
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.AuthResponse{
		Token: fresh,
		User:  toSDKUser(u),
	})
}
