package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

type FacultyHandler struct {
	FacultyService *service.FacultyService
}

// HandleSubmit files a faculty promotion request for the caller.
//
//	@Summary		Submit a faculty request
//	@Description	Files a promotion request for the authenticated identity. A handle gets at most one request, ever.
//	@Tags			Faculty
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	campussdk.FacultyRequest	"Filed request"
//	@Failure		400	{object}	campussdk.ErrorResponse		"A request already exists for this handle"
//	@Failure		401	{object}	campussdk.ErrorResponse		"Invalid or missing token"
//	@Router			/auth/faculty-request [post].
func (h *FacultyHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	u, ok := identityFromContext(r.Context())
	if !ok {
		campussdk.ErrInvalidToken.WriteError(w)
		return
	}

	fr, err := h.FacultyService.Submit(r.Context(), u)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRequest) {
			campussdk.ErrInvalidRequest.WriteError(w)
			return
		}
		campussdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKFacultyRequest(fr))
}

// HandleList returns the review queue.
//
//	@Summary		List faculty requests
//	@Description	Returns every faculty request, newest first. Admin only.
//	@Tags			Faculty
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	campussdk.FacultyRequestsResponse	"Review queue"
//	@Failure		401	{object}	campussdk.ErrorResponse				"Invalid or missing token"
//	@Failure		403	{object}	campussdk.ErrorResponse				"Not an admin"
//	@Router			/auth/faculty-requests [get].
func (h *FacultyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.FacultyService.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list faculty requests", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]campussdk.FacultyRequest, 0, len(requests))
	for _, fr := range requests {
		out = append(out, toSDKFacultyRequest(fr))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.FacultyRequestsResponse{Requests: out})
}

// HandleApprove approves a pending request.
//
//	@Summary		Approve a faculty request
//	@Description	Activates the requester as faculty. A request is decided at most once; losing a decision race yields 409.
//	@Tags			Faculty
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Request id"
//	@Success		200	{object}	campussdk.FacultyRequest	"Decided request"
//	@Failure		403	{object}	campussdk.ErrorResponse		"Not an admin"
//	@Failure		404	{object}	campussdk.ErrorResponse		"No such request"
//	@Failure		409	{object}	campussdk.ErrorResponse		"Already decided"
//	@Router			/auth/faculty-requests/{id}/approve [post].
func (h *FacultyHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.FacultyService.Approve)
}

// HandleReject rejects a pending request.
//
//	@Summary		Reject a faculty request
//	@Description	Closes the request and permanently bars the identity from logging in.
//	@Tags			Faculty
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Request id"
//	@Success		200	{object}	campussdk.FacultyRequest	"Decided request"
//	@Failure		403	{object}	campussdk.ErrorResponse		"Not an admin"
//	@Failure		404	{object}	campussdk.ErrorResponse		"No such request"
//	@Failure		409	{object}	campussdk.ErrorResponse		"Already decided"
//	@Router			/auth/faculty-requests/{id}/reject [post].
func (h *FacultyHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.FacultyService.Reject)
}

func (h *FacultyHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	decision func(ctx context.Context, requestID, adminID string) (domain.FacultyRequest, error),
) {
	admin, ok := identityFromContext(r.Context())
	if !ok {
		campussdk.ErrInvalidToken.WriteError(w)
		return
	}

	fr, err := decision(r.Context(), r.PathValue("id"), admin.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			campussdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrAlreadyDecided):
			campussdk.ErrConflict.WriteError(w)
		default:
			slogx.FromContext(r.Context()).Error("faculty decision failed", "err", err)
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKFacultyRequest(fr))
}
