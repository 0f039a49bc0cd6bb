package campus_test

import (
	"net/http"
	"testing"

	"github.com/campusconnect/campuscore/pkg/campussdk"
)

// TestLoginRateLimiting verifies the strict limiter on the login endpoint
// kicks in under production defaults. Uses the default-rate-limit container
// since every other test relaxes the limits.
func TestLoginRateLimiting(t *testing.T) {
	baseURL, cleanup := setupCampusContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := campussdk.NewSDKClient(baseURL)

	// The strict profile allows 5 requests per minute per IP. Burn through
	// the budget with bad credentials, then expect 429.
	var lastErr error
	for range 10 {
		_, lastErr = client.Login(t.Context(), "nobody", "wrong-password")
	}

	assertAPIError(t, lastErr, http.StatusTooManyRequests, "rate_limit_exceeded")
}
