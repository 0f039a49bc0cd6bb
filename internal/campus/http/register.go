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

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles registration.
//
//	@Summary		Register a new identity
//	@Description	Creates a student or faculty identity. Students must present an active college identifier and are logged in immediately; faculty are parked pending admin review and receive no token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	campussdk.AuthResponse		"Created identity, with token when active"
//	@Failure		400		{object}	campussdk.ErrorResponse		"Malformed request or invalid identifier"
//	@Failure		409		{object}	campussdk.ErrorResponse		"Username already taken"
//	@Failure		500		{object}	campussdk.ErrorResponse		"Internal server error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req campussdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		campussdk.ErrInvalidRequest.WriteError(w)
		return
	}

	res, err := h.AccountService.Register(r.Context(), service.RegisterParams{
		Username:   req.Username,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Role:       req.Role,
		UID:        req.UID,
		Year:       req.Year,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken),
			errors.Is(err, service.ErrReservedUsername):
			campussdk.ErrUsernameTaken.WriteError(w)
		case errors.Is(err, service.ErrInvalidUID),
			errors.Is(err, service.ErrUIDAlreadyBound):
			campussdk.ErrInvalidUID.WriteError(w)
		case errors.Is(err, service.ErrInvalidRole),
			errors.Is(err, service.ErrInvalidDepartment),
			errors.Is(err, service.ErrInvalidYear),
			errors.Is(err, service.ErrInvalidCredentials):
			campussdk.ErrInvalidRequest.WriteError(w)
		default:
			l.Error("registration failed", "err", err)
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, campussdk.AuthResponse{
		Token: res.Token,
		User:  toSDKUser(res.User),
	})
}
