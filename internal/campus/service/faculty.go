package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/store"
	"github.com/campusconnect/campuscore/pkg/idx"
	"github.com/campusconnect/campuscore/pkg/slogx"
)

var (
	ErrRequestNotFound  = errors.New("request_not_found")
	ErrAlreadyDecided   = errors.New("request_already_decided")
	ErrDuplicateRequest = errors.New("duplicate_request")
)

// FacultyService reviews pending faculty registrations. Every decision is
// one-way: once a request leaves pending it can never be decided again.
type FacultyService struct {
	Store store.Store
}

// Submit files a promotion request for an already-registered identity. A
// handle gets at most one request, ever; resubmitting after a decision is
// also a duplicate.
func (s *FacultyService) Submit(ctx context.Context, u domain.User) (domain.FacultyRequest, error) {
	now := time.Now().UTC()

	if _, err := s.Store.FacultyRequests().GetRequestByUsername(ctx, u.Username); err == nil {
		return domain.FacultyRequest{}, ErrDuplicateRequest
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.FacultyRequest{}, err
	}

	fr := domain.FacultyRequest{
		ID:         idx.New().String(),
		UserID:     u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Status:     domain.RequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.FacultyRequests().CreateRequest(ctx, fr); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.FacultyRequest{}, ErrDuplicateRequest
		}
		return domain.FacultyRequest{}, err
	}
	return fr, nil
}

// List returns all requests, newest first, for the admin review queue.
func (s *FacultyService) List(ctx context.Context) ([]domain.FacultyRequest, error) {
	return s.Store.FacultyRequests().ListRequests(ctx)
}

// Approve activates the requester as faculty.
func (s *FacultyService) Approve(ctx context.Context, requestID, adminID string) (domain.FacultyRequest, error) {
	return s.decide(ctx, requestID, adminID, domain.RequestApproved)
}

// Reject closes the request and bars the identity from ever logging in.
func (s *FacultyService) Reject(ctx context.Context, requestID, adminID string) (domain.FacultyRequest, error) {
	return s.decide(ctx, requestID, adminID, domain.RequestRejected)
}

// decide applies a review outcome to a still-pending request and mutates the
// requester's identity in the same transaction. Two concurrent decisions race
// on the status-guarded UPDATE; the loser sees zero rows and gets
// ErrAlreadyDecided.
func (s *FacultyService) decide(ctx context.Context, requestID, adminID, outcome string) (domain.FacultyRequest, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	var decided domain.FacultyRequest
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		fr, err := tx.FacultyRequests().GetRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if fr.Status != domain.RequestPending {
			return ErrAlreadyDecided
		}

		if err := tx.FacultyRequests().SetDecision(ctx, requestID, outcome, adminID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAlreadyDecided
			}
			return err
		}

		userStatus := domain.StatusRejected
		if outcome == domain.RequestApproved {
			userStatus = domain.StatusActive
		}
		if err := tx.Users().UpdateRoleAndStatus(ctx, fr.UserID, domain.RoleFaculty, userStatus); err != nil {
			return err
		}

		fr.Status = outcome
		fr.ReviewedBy = adminID
		fr.ReviewedAt = &now
		fr.UpdatedAt = now
		decided = fr
		return nil
	})
	if err != nil {
		return domain.FacultyRequest{}, err
	}

	// Tell the requester; best effort, the decision already stands.
	note := domain.Notification{
		ID:          idx.New().String(),
		RecipientID: decided.UserID,
		Title:       "Faculty request " + outcome,
		Message:     "Your faculty registration request has been " + outcome + ".",
		Type:        domain.NotificationSystem,
		EntityID:    decided.ID,
		CreatedAt:   now,
	}
	if err := s.Store.Notifications().CreateBatch(ctx, []domain.Notification{note}); err != nil {
		l.Error("failed to notify requester of decision",
			slog.String("request_id", decided.ID),
			slog.Any("error", err),
		)
	}

	l.Info("faculty request decided",
		slog.String("request_id", decided.ID),
		slog.String("outcome", outcome),
		slog.String("reviewed_by", adminID),
	)
	return decided, nil
}
