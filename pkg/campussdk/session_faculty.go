package campussdk

import (
	"context"
	"net/http"
)

// SubmitFacultyRequest puts the caller's pending faculty registration in
// front of the admins again. At most one request exists per identity.
func (s *Session) SubmitFacultyRequest(ctx context.Context) (*FacultyRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/faculty-request", nil, nil)
	if err != nil {
		return nil, err
	}

	var fr FacultyRequest
	if err := decodeJSON(resp, &fr, http.StatusOK); err != nil {
		return nil, err
	}

	return &fr, nil
}

// ListFacultyRequests returns the admin review queue. Requires an admin
// session.
func (s *Session) ListFacultyRequests(ctx context.Context) (*FacultyRequestsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/auth/faculty-requests", nil, nil)
	if err != nil {
		return nil, err
	}

	var list FacultyRequestsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// ApproveFacultyRequest approves a pending faculty request, activating the
// account. Requires an admin session. The decision is final.
func (s *Session) ApproveFacultyRequest(ctx context.Context, requestID string) (*FacultyRequest, error) {
	return s.decideFacultyRequest(ctx, requestID, "approve")
}

// RejectFacultyRequest rejects a pending faculty request. Requires an admin
// session. The decision is final.
func (s *Session) RejectFacultyRequest(ctx context.Context, requestID string) (*FacultyRequest, error) {
	return s.decideFacultyRequest(ctx, requestID, "reject")
}

func (s *Session) decideFacultyRequest(ctx context.Context, requestID, verb string) (*FacultyRequest, error) {
	path := "/auth/faculty-requests/" + requestID + "/" + verb

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var fr FacultyRequest
	if err := decodeJSON(resp, &fr, http.StatusOK); err != nil {
		return nil, err
	}

	return &fr, nil
}
