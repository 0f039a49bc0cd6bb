package campussdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateNotice publishes an announcement to a department feed. Requires a
// faculty or admin session. Fan-out to recipient inboxes happens in the
// background after the call returns.
func (s *Session) CreateNotice(ctx context.Context, req CreateNoticeRequest) (*Notice, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/notices", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var notice Notice
	if err := decodeJSON(resp, &notice, http.StatusCreated); err != nil {
		return nil, err
	}

	return &notice, nil
}
