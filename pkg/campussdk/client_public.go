package campussdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetProfile returns the public view of an identity by handle. No
// authentication required.
func (c *SDKClient) GetProfile(ctx context.Context, username string) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/auth/users/"+url.PathEscape(username), nil, nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListNotices returns a department's feed, newest first. The feed includes
// campus-wide notices. Department "all" returns everything. No
// authentication required.
func (c *SDKClient) ListNotices(ctx context.Context, department string) (*NoticesResponse, error) {
	path := "/notices"
	if department != "" {
		path += "?department=" + url.QueryEscape(department)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var feed NoticesResponse
	if err := decodeJSON(resp, &feed, http.StatusOK); err != nil {
		return nil, err
	}

	return &feed, nil
}
