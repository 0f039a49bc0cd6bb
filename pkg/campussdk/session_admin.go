package campussdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AddUID adds one entry to the student registration allow-list. Requires an
// admin session.
func (s *Session) AddUID(ctx context.Context, req AddUIDRequest) (*StudentUID, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/admin/uids", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var uid StudentUID
	if err := decodeJSON(resp, &uid, http.StatusCreated); err != nil {
		return nil, err
	}

	return &uid, nil
}

// DeactivateUID removes an identifier from the allow-list so it can no
// longer be used to register. Existing accounts are unaffected. Requires an
// admin session.
func (s *Session) DeactivateUID(ctx context.Context, uid string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/admin/uids/"+uid, nil, nil)
	if err != nil {
		return err
	}

	var status StatusResponse
	return decodeJSON(resp, &status, http.StatusOK)
}
