package campussdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/campusconnect/campuscore/pkg/httpx"
)

// Error codes shared between the server and SDK clients.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeExpiredToken       = "expired_token"
	ErrorCodePendingApproval    = "pending_approval"
	ErrorCodeAccountRejected    = "account_rejected"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeUsernameTaken      = "username_taken"
	ErrorCodeInvalidUID         = "invalid_uid"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error envelope every endpoint returns on failure. It
// implements the error interface so the SDK client can surface it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials covers both unknown handles and wrong passwords
	// so responses do not leak which one it was.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	// ErrInvalidToken is returned for missing, malformed or tampered tokens.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "invalid or missing token",
	}

	// ErrExpiredToken is returned for authentic tokens past their expiry.
	// Clients holding one should call the refresh endpoint.
	ErrExpiredToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeExpiredToken,
		Description: "token has expired",
	}

	// ErrPendingApproval is returned on login while the identity is still
	// awaiting an admin decision. Distinct code so clients can render
	// guidance, but still a 401 like any other failed login.
	ErrPendingApproval = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodePendingApproval,
		Description: "account is pending approval",
	}

	// ErrAccountRejected is returned on login when the identity was rejected.
	ErrAccountRejected = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeAccountRejected,
		Description: "account registration was rejected",
	}

	// ErrForbidden is returned when the identity is authenticated but not
	// allowed to perform the operation.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "not allowed to perform this operation",
	}

	// ErrNotFound is returned when the named resource does not exist or does
	// not belong to the caller.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrConflict is returned when the operation lost a race, e.g. a faculty
	// request that was already decided.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "resource was already modified",
	}

	// ErrUsernameTaken is returned when the requested handle is claimed,
	// reserved, or differs from an existing one only by case.
	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "username is already taken",
	}

	// ErrInvalidUID is returned when the college identifier is unknown,
	// deactivated, or already bound to another identity.
	ErrInvalidUID = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidUID,
		Description: "college identifier is not valid for registration",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse attempts to parse an HTTP error response into a typed
// *APIError. Falls back to a generic APIError carrying the raw body when the
// payload is not the standard error envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)),
	}
}
