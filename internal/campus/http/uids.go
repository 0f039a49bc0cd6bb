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

type UIDHandler struct {
	UIDService *service.UIDService
}

// HandleAdd adds one allow-list entry.
//
//	@Summary		Add a college identifier
//	@Description	Adds one entry to the student registration allow-list. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.AddUIDRequest	true	"Identifier"
//	@Success		201		{object}	campussdk.StudentUID	"Added entry"
//	@Failure		400		{object}	campussdk.ErrorResponse	"Missing fields or unknown department/year"
//	@Failure		403		{object}	campussdk.ErrorResponse	"Not an admin"
//	@Failure		409		{object}	campussdk.ErrorResponse	"Identifier already listed"
//	@Router			/admin/uids [post].
func (h *UIDHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req campussdk.AddUIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		campussdk.ErrInvalidRequest.WriteError(w)
		return
	}

	entry, err := h.UIDService.Add(ctx, req.UID, req.Department, req.Year)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUIDExists):
			campussdk.ErrConflict.WriteError(w)
		case errors.Is(err, service.ErrInvalidUID),
			errors.Is(err, service.ErrInvalidDepartment),
			errors.Is(err, service.ErrInvalidYear):
			campussdk.ErrInvalidRequest.WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to add uid", "err", err)
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.StudentUID{
		UID:        entry.UID,
		Department: entry.Department,
		Year:       entry.Year,
		Status:     entry.Status,
		CreatedAt:  entry.CreatedAt,
	})
}

// HandleDeactivate retires one allow-list entry.
//
//	@Summary		Deactivate a college identifier
//	@Description	Marks an allow-list entry inactive so it can no longer be used to register. Identities already bound to it are unaffected. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			uid	path		string						true	"Identifier"
//	@Success		200	{object}	campussdk.StatusResponse	"Deactivated"
//	@Failure		403	{object}	campussdk.ErrorResponse		"Not an admin"
//	@Failure		404	{object}	campussdk.ErrorResponse		"Unknown identifier"
//	@Router			/admin/uids/{uid} [delete].
func (h *UIDHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UIDService.Deactivate(ctx, r.PathValue("uid")); err != nil {
		if errors.Is(err, service.ErrUIDNotFound) {
			campussdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to deactivate uid", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.StatusResponse{Status: "ok"})
}
