package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

type NoticesHandler struct {
	NoticeService *service.NoticeService
}

// HandleCreate publishes a notice.
//
//	@Summary		Publish a notice
//	@Description	Publishes an announcement and fans a notification out to every active identity in the target department ("all" reaches everyone). Fan-out is asynchronous and never fails the publish.
//	@Tags			Notices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.CreateNoticeRequest	true	"Notice"
//	@Success		201		{object}	campussdk.Notice				"Published notice"
//	@Failure		400		{object}	campussdk.ErrorResponse			"Missing fields or unknown department"
//	@Failure		403		{object}	campussdk.ErrorResponse			"Students cannot publish notices"
//	@Router			/notices [post].
func (h *NoticesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	author, ok := identityFromContext(ctx)
	if !ok {
		campussdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req campussdk.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		campussdk.ErrInvalidRequest.WriteError(w)
		return
	}

	n, err := h.NoticeService.Create(ctx, author, req.Title, req.Content, req.Department)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidNotice),
			errors.Is(err, service.ErrInvalidDepartment):
			campussdk.ErrInvalidRequest.WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to publish notice", "err", err)
			campussdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKNotice(n))
}

// HandleList returns a department feed.
//
//	@Summary		List notices
//	@Description	Returns the feed for a department, newest first. Department feeds include the "all" scope; asking for "all" returns everything. Served from a short-lived cache.
//	@Tags			Notices
//	@Produce		json
//	@Param			department	query		string					false	"Department (defaults to all)"
//	@Success		200			{object}	campussdk.NoticesResponse	"Feed"
//	@Failure		400			{object}	campussdk.ErrorResponse		"Unknown department"
//	@Router			/notices [get].
func (h *NoticesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	department := r.URL.Query().Get("department")
	if department == "" {
		department = domain.DepartmentAll
	}

	notices, err := h.NoticeService.List(ctx, department)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDepartment) {
			campussdk.ErrInvalidRequest.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to list notices", "err", err)
		campussdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]campussdk.Notice, 0, len(notices))
	for _, n := range notices {
		out = append(out, toSDKNotice(n))
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.NoticesResponse{Notices: out})
}
